package db

import (
	"database/sql"

	"github.com/fritter-app/fritter-backend/models"
)

func (d *DB) CreateFollowing(follower, followee string) (models.Following, error) {
	var f models.Following
	err := d.conn.QueryRow(`
		INSERT INTO followings (username, following)
		VALUES ($1, $2)
		RETURNING id, username, following`,
		follower, followee,
	).Scan(&f.ID, &f.Username, &f.Following)
	if err != nil {
		if isUniqueViolation(err) {
			return models.Following{}, ErrDuplicate
		}
		return models.Following{}, err
	}
	return f, nil
}

func (d *DB) FindEdge(follower, followee string) (*models.Following, error) {
	var f models.Following
	err := d.conn.QueryRow(`
		SELECT id, username, following FROM followings
		WHERE username = $1 AND following = $2`,
		follower, followee,
	).Scan(&f.ID, &f.Username, &f.Following)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// ListFollowing returns the edges fanning out from username.
func (d *DB) ListFollowing(username string) ([]models.Following, error) {
	return d.scanEdges(`
		SELECT id, username, following FROM followings
		WHERE username = $1
		ORDER BY id`, username)
}

// ListFollowers returns the edges fanning in to username.
func (d *DB) ListFollowers(username string) ([]models.Following, error) {
	return d.scanEdges(`
		SELECT id, username, following FROM followings
		WHERE following = $1
		ORDER BY id`, username)
}

func (d *DB) scanEdges(query string, args ...interface{}) ([]models.Following, error) {
	rows, err := d.conn.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var edges []models.Following
	for rows.Next() {
		var f models.Following
		if err := rows.Scan(&f.ID, &f.Username, &f.Following); err != nil {
			return nil, err
		}
		edges = append(edges, f)
	}
	return edges, rows.Err()
}

func (d *DB) DeleteEdge(follower, followee string) error {
	_, err := d.conn.Exec(`
		DELETE FROM followings WHERE username = $1 AND following = $2`,
		follower, followee)
	return err
}

func (d *DB) DeleteAllByFollower(username string) error {
	_, err := d.conn.Exec(`DELETE FROM followings WHERE username = $1`, username)
	return err
}

func (d *DB) DeleteAllByFollowee(username string) error {
	_, err := d.conn.Exec(`DELETE FROM followings WHERE following = $1`, username)
	return err
}
