package repositories

import (
	"database/sql"
	"fmt"
)

// Migrate は users / events テーブルを作成します。
// 起動時とテストセットアップの両方から呼ばれます。
func Migrate(db *sql.DB) error {
	createUserTableSQL := `
		CREATE TABLE IF NOT EXISTS users (
			id INT AUTO_INCREMENT PRIMARY KEY,
			username VARCHAR(255) NOT NULL UNIQUE,
			email VARCHAR(255) NOT NULL UNIQUE,
			password_hash VARCHAR(255) NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
		);`
	if _, err := db.Exec(createUserTableSQL); err != nil {
		return fmt.Errorf("could not create users table: %w", err)
	}

	// date は文字列 "YYYY-MM-DD" のまま保存し、完全一致で検索する
	createEventTableSQL := `
		CREATE TABLE IF NOT EXISTS events (
			id VARCHAR(32) PRIMARY KEY,
			user_id INT NOT NULL,
			title VARCHAR(255) NOT NULL,
			description TEXT NULL,
			date CHAR(10) NOT NULL,
			is_todo BOOLEAN NOT NULL DEFAULT FALSE,
			is_all_day BOOLEAN NOT NULL DEFAULT TRUE,
			start_time VARCHAR(20) NULL,
			end_time VARCHAR(20) NULL,
			completed BOOLEAN NOT NULL DEFAULT FALSE,
			created_at DATETIME(6) DEFAULT CURRENT_TIMESTAMP(6),
			updated_at DATETIME(6) DEFAULT CURRENT_TIMESTAMP(6) ON UPDATE CURRENT_TIMESTAMP(6),
			INDEX idx_events_user_date (user_id, date),
			FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE
		);`
	if _, err := db.Exec(createEventTableSQL); err != nil {
		return fmt.Errorf("could not create events table: %w", err)
	}

	return nil
}
