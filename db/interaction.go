package db

import (
	"database/sql"

	"github.com/fritter-app/fritter-backend/models"
)

func (d *DB) CreateInteraction(authorID int, interactionType string, freetID int, content string) (models.Interaction, error) {
	var in models.Interaction
	err := d.conn.QueryRow(`
		INSERT INTO interactions (author_id, type, freet_id, content)
		VALUES ($1, $2, $3, $4)
		RETURNING id, author_id, type, freet_id, content`,
		authorID, interactionType, freetID, content,
	).Scan(&in.ID, &in.AuthorID, &in.Type, &in.FreetID, &in.Content)
	if err != nil {
		return models.Interaction{}, err
	}
	return in, nil
}

func (d *DB) FindAllInteractions() ([]models.Interaction, error) {
	return d.scanInteractions(`
		SELECT id, author_id, type, freet_id, content FROM interactions
		ORDER BY id`)
}

func (d *DB) FindInteractionByID(id int) (*models.Interaction, error) {
	var in models.Interaction
	err := d.conn.QueryRow(`
		SELECT id, author_id, type, freet_id, content FROM interactions
		WHERE id = $1`, id,
	).Scan(&in.ID, &in.AuthorID, &in.Type, &in.FreetID, &in.Content)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &in, nil
}

func (d *DB) FindInteractionsByFreetID(freetID int) ([]models.Interaction, error) {
	return d.scanInteractions(`
		SELECT id, author_id, type, freet_id, content FROM interactions
		WHERE freet_id = $1
		ORDER BY id`, freetID)
}

func (d *DB) FindInteractionsByAuthorID(authorID int) ([]models.Interaction, error) {
	return d.scanInteractions(`
		SELECT id, author_id, type, freet_id, content FROM interactions
		WHERE author_id = $1
		ORDER BY id`, authorID)
}

// CountInteractionsByType counts interactions of one type on a freet with a
// linear scan over the freet's rows.
func (d *DB) CountInteractionsByType(freetID int, interactionType string) (int, error) {
	interactions, err := d.FindInteractionsByFreetID(freetID)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, in := range interactions {
		if in.Type == interactionType {
			count++
		}
	}
	return count, nil
}

// HasLikeOrDislike reports whether the author already holds a like or
// dislike row on the freet.
func (d *DB) HasLikeOrDislike(authorID, freetID int) (bool, error) {
	interactions, err := d.FindInteractionsByFreetID(freetID)
	if err != nil {
		return false, err
	}
	for _, in := range interactions {
		if in.AuthorID != authorID {
			continue
		}
		if in.Type == models.InteractionLike || in.Type == models.InteractionDislike {
			return true, nil
		}
	}
	return false, nil
}

func (d *DB) UpdateInteractionContent(id int, content string) (models.Interaction, error) {
	var in models.Interaction
	err := d.conn.QueryRow(`
		UPDATE interactions SET content = $1
		WHERE id = $2
		RETURNING id, author_id, type, freet_id, content`,
		content, id,
	).Scan(&in.ID, &in.AuthorID, &in.Type, &in.FreetID, &in.Content)
	if err != nil {
		return models.Interaction{}, err
	}
	return in, nil
}

func (d *DB) DeleteInteraction(id int) error {
	_, err := d.conn.Exec(`DELETE FROM interactions WHERE id = $1`, id)
	return err
}

func (d *DB) DeleteAllByFreetID(freetID int) error {
	_, err := d.conn.Exec(`DELETE FROM interactions WHERE freet_id = $1`, freetID)
	return err
}

func (d *DB) scanInteractions(query string, args ...interface{}) ([]models.Interaction, error) {
	rows, err := d.conn.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var interactions []models.Interaction
	for rows.Next() {
		var in models.Interaction
		if err := rows.Scan(&in.ID, &in.AuthorID, &in.Type, &in.FreetID, &in.Content); err != nil {
			return nil, err
		}
		interactions = append(interactions, in)
	}
	return interactions, rows.Err()
}
