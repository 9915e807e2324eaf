package config

import (
	"os"

	"gopkg.in/yaml.v2"
)

type Config struct {
	RulesFile        string `yaml:"rules_file"`
	WordsFile        string `yaml:"words_file"`
	IndexFile        string `yaml:"index_file"`
	DbFile           string `yaml:"db_file"`
	DbPath           string `yaml:"db_path"`
	SrvPort          string `yaml:"srv_port"`
	DSN              string `yaml:"pg_dsn"`
	Parallel         int    `yaml:"parallel"`
	ConcurrencyLimit int    `yaml:"concurrency_limit"`
	RateLimit        int    `yaml:"rate_limit"`
	TokenMaxTime     int    `yaml:"token_max_time"`
	JWTSecret        string `yaml:"jwt_secret"`
	Stemmer          string `yaml:"stemmer"`
	UpdateHours      int    `yaml:"update_hours"`
}

func Load(path string) (*Config, error) {
	yamlFile, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	c := &Config{}
	err = yaml.Unmarshal(yamlFile, c)
	if err != nil {
		return nil, err
	}

	return c, nil
}
