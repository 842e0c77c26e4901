package db

import (
	"database/sql"
	"errors"
	"os"

	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

// ErrDuplicate is returned when an insert violates one of the unique
// indexes below (duplicate barrier, follow edge, profile or username).
var ErrDuplicate = errors.New("db: duplicate record")

var schema = []string{
	`CREATE TABLE users(
		id SERIAL PRIMARY KEY,
		username VARCHAR NOT NULL UNIQUE,
		password VARCHAR NOT NULL)`,
	`CREATE TABLE freets(
		id SERIAL PRIMARY KEY,
		author_id INT NOT NULL,
		content VARCHAR NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW())`,
	`CREATE TABLE follower_barriers(
		id SERIAL PRIMARY KEY,
		username VARCHAR NOT NULL UNIQUE,
		passcode VARCHAR NOT NULL)`,
	`CREATE TABLE followings(
		id SERIAL PRIMARY KEY,
		username VARCHAR NOT NULL,
		following VARCHAR NOT NULL,
		UNIQUE(username, following))`,
	`CREATE TABLE interactions(
		id SERIAL PRIMARY KEY,
		author_id INT NOT NULL,
		type VARCHAR NOT NULL,
		freet_id INT NOT NULL,
		content VARCHAR NOT NULL)`,
	`CREATE TABLE profiles(
		id SERIAL PRIMARY KEY,
		user_id INT NOT NULL UNIQUE,
		picture VARCHAR NOT NULL,
		bio VARCHAR NOT NULL)`,
	`CREATE TABLE fcm_tokens(
		id SERIAL PRIMARY KEY,
		user_id INT NOT NULL,
		token VARCHAR NOT NULL,
		UNIQUE(user_id, token))`,
}

// DB is the Postgres-backed Store.
type DB struct {
	conn *sql.DB
}

// Init opens the connection named by $POSTGRES_URL and creates the tables.
// Tables that already exist are left alone.
func Init() (*DB, error) {
	postgresAddr := os.Getenv("POSTGRES_URL")
	if postgresAddr == "" {
		return nil, errors.New("$POSTGRES_URL not set")
	}

	conn, err := sql.Open("postgres", postgresAddr)
	if err != nil {
		return nil, err
	}

	logrus.Info("creating tables")
	for _, stmt := range schema {
		if _, err := conn.Exec(stmt); err != nil {
			perr, ok := err.(*pq.Error)
			if !ok || perr.Code.Name() != "duplicate_table" {
				return nil, err
			}
			logrus.WithField("code", perr.Code.Name()).Debug(perr.Error())
		}
	}

	return &DB{conn: conn}, nil
}

// Close closes the underlying connection pool.
func (d *DB) Close() error {
	return d.conn.Close()
}

// isUniqueViolation reports whether err is a Postgres unique_violation.
func isUniqueViolation(err error) bool {
	perr, ok := err.(*pq.Error)
	return ok && perr.Code.Name() == "unique_violation"
}
