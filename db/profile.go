package db

import (
	"database/sql"

	"github.com/fritter-app/fritter-backend/models"
)

func (d *DB) CreateProfile(userID int, picture, bio string) (models.Profile, error) {
	var p models.Profile
	err := d.conn.QueryRow(`
		INSERT INTO profiles (user_id, picture, bio)
		VALUES ($1, $2, $3)
		RETURNING id, user_id, picture, bio`,
		userID, picture, bio,
	).Scan(&p.ID, &p.UserID, &p.Picture, &p.Bio)
	if err != nil {
		if isUniqueViolation(err) {
			return models.Profile{}, ErrDuplicate
		}
		return models.Profile{}, err
	}
	return p, nil
}

func (d *DB) FindProfileByUserID(userID int) (*models.Profile, error) {
	var p models.Profile
	err := d.conn.QueryRow(`
		SELECT id, user_id, picture, bio FROM profiles WHERE user_id = $1`,
		userID,
	).Scan(&p.ID, &p.UserID, &p.Picture, &p.Bio)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (d *DB) FindAllProfiles() ([]models.Profile, error) {
	rows, err := d.conn.Query(`
		SELECT id, user_id, picture, bio FROM profiles ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var profiles []models.Profile
	for rows.Next() {
		var p models.Profile
		if err := rows.Scan(&p.ID, &p.UserID, &p.Picture, &p.Bio); err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	return profiles, rows.Err()
}

// UpdateProfile applies a partial patch: nil fields are left unchanged.
func (d *DB) UpdateProfile(userID int, bio, picture *string) (models.Profile, error) {
	var p models.Profile
	err := d.conn.QueryRow(`
		UPDATE profiles
		SET bio = COALESCE($1, bio), picture = COALESCE($2, picture)
		WHERE user_id = $3
		RETURNING id, user_id, picture, bio`,
		bio, picture, userID,
	).Scan(&p.ID, &p.UserID, &p.Picture, &p.Bio)
	if err != nil {
		return models.Profile{}, err
	}
	return p, nil
}

func (d *DB) DeleteProfile(userID int) error {
	_, err := d.conn.Exec(`DELETE FROM profiles WHERE user_id = $1`, userID)
	return err
}
