package db

import (
	"database/sql"

	"github.com/fritter-app/fritter-backend/models"
)

func (d *DB) CreateBarrier(username, passcode string) (models.FollowerBarrier, error) {
	var b models.FollowerBarrier
	err := d.conn.QueryRow(`
		INSERT INTO follower_barriers (username, passcode)
		VALUES ($1, $2)
		RETURNING id, username, passcode`,
		username, passcode,
	).Scan(&b.ID, &b.Username, &b.Passcode)
	if err != nil {
		if isUniqueViolation(err) {
			return models.FollowerBarrier{}, ErrDuplicate
		}
		return models.FollowerBarrier{}, err
	}
	return b, nil
}

func (d *DB) FindBarrierByUsername(username string) (*models.FollowerBarrier, error) {
	var b models.FollowerBarrier
	err := d.conn.QueryRow(`
		SELECT id, username, passcode FROM follower_barriers WHERE username = $1`,
		username,
	).Scan(&b.ID, &b.Username, &b.Passcode)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (d *DB) UpdateBarrierPasscode(username, passcode string) (models.FollowerBarrier, error) {
	var b models.FollowerBarrier
	err := d.conn.QueryRow(`
		UPDATE follower_barriers SET passcode = $1
		WHERE username = $2
		RETURNING id, username, passcode`,
		passcode, username,
	).Scan(&b.ID, &b.Username, &b.Passcode)
	if err != nil {
		return models.FollowerBarrier{}, err
	}
	return b, nil
}

func (d *DB) DeleteBarrier(username string) error {
	_, err := d.conn.Exec(`DELETE FROM follower_barriers WHERE username = $1`, username)
	return err
}
