package db

import (
	"database/sql"

	"github.com/fritter-app/fritter-backend/models"
)

func (d *DB) CreateFreet(authorID int, content string) (models.Freet, error) {
	var f models.Freet
	err := d.conn.QueryRow(`
		INSERT INTO freets (author_id, content, created_at)
		VALUES ($1, $2, NOW())
		RETURNING id, author_id, content, created_at`,
		authorID, content,
	).Scan(&f.ID, &f.AuthorID, &f.Content, &f.CreatedAt)
	if err != nil {
		return models.Freet{}, err
	}
	return f, nil
}

func (d *DB) FindFreetByID(id int) (*models.Freet, error) {
	var f models.Freet
	err := d.conn.QueryRow(`
		SELECT id, author_id, content, created_at FROM freets WHERE id = $1`, id).
		Scan(&f.ID, &f.AuthorID, &f.Content, &f.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (d *DB) FindAllFreets() ([]models.Freet, error) {
	return d.scanFreets(`
		SELECT id, author_id, content, created_at FROM freets
		ORDER BY created_at DESC`)
}

func (d *DB) FindFreetsByAuthorID(authorID int) ([]models.Freet, error) {
	return d.scanFreets(`
		SELECT id, author_id, content, created_at FROM freets
		WHERE author_id = $1
		ORDER BY created_at DESC`, authorID)
}

func (d *DB) scanFreets(query string, args ...interface{}) ([]models.Freet, error) {
	rows, err := d.conn.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var freets []models.Freet
	for rows.Next() {
		var f models.Freet
		if err := rows.Scan(&f.ID, &f.AuthorID, &f.Content, &f.CreatedAt); err != nil {
			return nil, err
		}
		freets = append(freets, f)
	}
	return freets, rows.Err()
}

func (d *DB) DeleteFreet(id int) error {
	_, err := d.conn.Exec(`DELETE FROM freets WHERE id = $1`, id)
	return err
}
