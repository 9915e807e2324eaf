package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"
)

type Postgres struct {
	db *pgxpool.Pool
}

func NewPostgres(ctx context.Context, dbConnect string) (*Postgres, error) {
	config, err := pgxpool.ParseConfig(dbConnect)
	if err != nil {
		return nil, fmt.Errorf("error parsing connection string: %w", err)
	}

	db, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	err = db.Ping(ctx)
	if err != nil {
		return nil, fmt.Errorf("error pinging to database: %w", err)
	}

	return &Postgres{db: db}, nil
}

// Entry is one stemmed word.
type Entry struct {
	Word string `json:"word"`
	Stem string `json:"stem"`
}

func (db *Postgres) SaveStem(ctx context.Context, entry Entry) error {
	// check if the word was already stemmed
	query := `
	SELECT stem FROM stems WHERE word = $1;`

	row := db.db.QueryRow(ctx, query, entry.Word)

	var stem string
	err := row.Scan(&stem)

	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("database: %w", err)
	}
	if stem != "" {
		return nil
	}

	stmt := `
	INSERT INTO stems (word, stem)
	VALUES ($1, $2);`

	_, err = db.db.Exec(ctx, stmt, entry.Word, entry.Stem)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}

	return nil
}

// Reverse rebuilds the inverted stem -> words index from the stems
// table.
func (db *Postgres) Reverse(ctx context.Context) error {
	indexed := make(map[string][]string)

	query := `SELECT word, stem FROM stems`

	rows, err := db.db.Query(ctx, query)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}

	for rows.Next() {
		var entry Entry
		if err := rows.Scan(&entry.Word, &entry.Stem); err != nil {
			logrus.Info(err)
			continue
		}
		indexed[entry.Stem] = append(indexed[entry.Stem], entry.Word)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("database: %w", err)
	}

	if _, err := db.db.Exec(ctx, `TRUNCATE indexes`); err != nil {
		return fmt.Errorf("database: %w", err)
	}

	stmt := `
	INSERT INTO indexes (stem, words)
	VALUES ($1, $2);`

	for stem, ws := range indexed {
		_, err = db.db.Exec(ctx, stmt, stem, ws)
		if err != nil {
			logrus.Info(err)
			return fmt.Errorf("database: %w", err)
		}
	}

	return nil
}

// InvertSearch looks every query stem up in the inverted index.
func (db *Postgres) InvertSearch(ctx context.Context, stems []string) (map[string][]string, error) {
	indexed := make(map[string][]string)

	query := `
	SELECT words FROM indexes
	WHERE stem = $1;`

	for _, stem := range stems {
		var ws []string
		row := db.db.QueryRow(ctx, query, stem)
		err := row.Scan(&ws)
		if err != nil && !errors.Is(err, pgx.ErrNoRows) {
			logrus.Info(err)
		}
		if errors.Is(err, pgx.ErrNoRows) {
			continue
		}
		indexed[stem] = ws
	}

	return indexed, nil
}

type User struct {
	Login string
	Role  string
}

func (db *Postgres) GetUserByLogin(ctx context.Context, login string) (User, error) {
	stmt := `SELECT login, role FROM users WHERE login = $1;`

	row := db.db.QueryRow(ctx, stmt, login)
	var user User
	err := row.Scan(&user.Login, &user.Role)
	if err != nil {
		logrus.Info(err)
		return User{}, fmt.Errorf("database: %w", err)
	}

	return user, nil
}

func (db *Postgres) GetUserPasswordByLogin(ctx context.Context, login string) (string, error) {
	stmt := `SELECT password FROM users WHERE login = $1;`

	row := db.db.QueryRow(ctx, stmt, login)

	var password string

	err := row.Scan(&password)
	if err != nil {
		logrus.Info(err)
		return "", fmt.Errorf("database: %w", err)
	}

	return password, nil
}
