package db

func (d *DB) SaveDeviceToken(userID int, token string) error {
	_, err := d.conn.Exec(`
		INSERT INTO fcm_tokens (user_id, token)
		VALUES ($1, $2)
		ON CONFLICT (user_id, token) DO NOTHING`,
		userID, token)
	return err
}

func (d *DB) DeviceTokensByUserID(userID int) ([]string, error) {
	rows, err := d.conn.Query(`
		SELECT token FROM fcm_tokens
		WHERE user_id = $1 AND token != ''`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tokens []string
	for rows.Next() {
		var token string
		if err := rows.Scan(&token); err != nil {
			return nil, err
		}
		tokens = append(tokens, token)
	}
	return tokens, rows.Err()
}

// DeleteDeviceToken drops a dead token reported by FCM.
func (d *DB) DeleteDeviceToken(token string) error {
	_, err := d.conn.Exec(`DELETE FROM fcm_tokens WHERE token = $1`, token)
	return err
}
