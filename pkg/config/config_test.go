package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig(t *testing.T) {
	t.Run("correct config", func(t *testing.T) {
		configContent := `
rules_file: "rules.txt"
words_file: "words.txt"
index_file: "index.json"
db_file: "stems.json"
db_path: "/var/lib/test"
srv_port: "8080"
pg_dsn: "user=postgres password=secret dbname=test sslmode=disable"
parallel: 5
concurrency_limit: 10
rate_limit: 1000
token_max_time: 3600
jwt_secret: "supersecretkey"
stemmer: "paice"
update_hours: 24
`
		tempFile, err := os.CreateTemp("", "config-*.yaml")
		assert.NoError(t, err)
		defer os.Remove(tempFile.Name())

		_, err = tempFile.Write([]byte(configContent))
		assert.NoError(t, err)
		tempFile.Close()

		config, err := Load(tempFile.Name())
		assert.NoError(t, err)

		assert.Equal(t, "rules.txt", config.RulesFile)
		assert.Equal(t, "words.txt", config.WordsFile)
		assert.Equal(t, "index.json", config.IndexFile)
		assert.Equal(t, "stems.json", config.DbFile)
		assert.Equal(t, "/var/lib/test", config.DbPath)
		assert.Equal(t, "8080", config.SrvPort)
		assert.Equal(t, "user=postgres password=secret dbname=test sslmode=disable", config.DSN)
		assert.Equal(t, 5, config.Parallel)
		assert.Equal(t, 10, config.ConcurrencyLimit)
		assert.Equal(t, 1000, config.RateLimit)
		assert.Equal(t, 3600, config.TokenMaxTime)
		assert.Equal(t, "supersecretkey", config.JWTSecret)
		assert.Equal(t, "paice", config.Stemmer)
		assert.Equal(t, 24, config.UpdateHours)
	})

	t.Run("incorrect config", func(t *testing.T) {
		configContent := "1234"
		tempFile, err := os.CreateTemp("", "config-*.yaml")
		assert.NoError(t, err)
		defer os.Remove(tempFile.Name())

		_, err = tempFile.Write([]byte(configContent))
		assert.NoError(t, err)
		tempFile.Close()

		_, err = Load(tempFile.Name())
		assert.Error(t, err)
	})

	t.Run("no file", func(t *testing.T) {
		_, err := Load("nonexistent-config.yaml")
		assert.Error(t, err)
	})
}
