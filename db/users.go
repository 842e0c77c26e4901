package db

import (
	"database/sql"

	"github.com/fritter-app/fritter-backend/models"
)

func (d *DB) CreateUser(username, passwordHash string) (models.User, error) {
	var u models.User
	err := d.conn.QueryRow(`
		INSERT INTO users (username, password)
		VALUES ($1, $2)
		RETURNING id, username, password`,
		username, passwordHash,
	).Scan(&u.ID, &u.Username, &u.Password)
	if err != nil {
		if isUniqueViolation(err) {
			return models.User{}, ErrDuplicate
		}
		return models.User{}, err
	}
	return u, nil
}

func (d *DB) FindUserByID(id int) (*models.User, error) {
	var u models.User
	err := d.conn.QueryRow(`
		SELECT id, username, password FROM users WHERE id = $1`, id).
		Scan(&u.ID, &u.Username, &u.Password)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (d *DB) FindUserByUsername(username string) (*models.User, error) {
	var u models.User
	err := d.conn.QueryRow(`
		SELECT id, username, password FROM users WHERE username = $1`, username).
		Scan(&u.ID, &u.Username, &u.Password)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (d *DB) DeleteUser(id int) error {
	_, err := d.conn.Exec(`DELETE FROM users WHERE id = $1`, id)
	return err
}
