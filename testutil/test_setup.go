// Package testutil はテスト用のデータベース・ルーターのセットアップを提供します。
package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"literary-calendar/backend/internal/models"
	"literary-calendar/backend/internal/repositories"
	"literary-calendar/backend/internal/routes"

	"github.com/joho/godotenv"

	"github.com/gin-gonic/gin"
	_ "github.com/go-sql-driver/mysql"
)

// SetupTestDB はテスト用のデータベース接続を確立し、テーブルを作成し、テストデータを投入します。
func SetupTestDB(t *testing.T) (*sql.DB, *gin.Engine, *repositories.EventRepository, *repositories.UserRepository) {

	_ = godotenv.Load("../../.env")

	if os.Getenv("JWT_SECRET") == "" {
		os.Setenv("JWT_SECRET", "test-secret")
	}

	dbUser := os.Getenv("TEST_DB_USER")
	dbPass := os.Getenv("TEST_DB_PASS")
	dbHost := os.Getenv("TEST_DB_HOST")
	dbPort := os.Getenv("TEST_DB_PORT")
	dbName := os.Getenv("TEST_DB_NAME")

	if dbHost == "" {
		t.Skip("TEST_DB_HOST not set, skipping database test")
	}

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true", dbUser, dbPass, dbHost, dbPort, dbName)

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		t.Fatalf("Failed to open database connection: %v", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		t.Fatalf("Failed to ping database: %v", err)
	}

	// 既存のテーブルを削除 (テストのたびにクリーンな状態にするため)
	// Foreign Key Constraint があるため、一時的に無効化して両方TRUNCATEする
	if _, err := db.Exec("SET FOREIGN_KEY_CHECKS=0;"); err != nil {
		log.Printf("Failed to disable foreign key checks: %v", err)
	}
	if _, err := db.Exec("TRUNCATE TABLE events"); err != nil {
		log.Printf("Failed to truncate events table (it might not exist yet): %v", err)
	}
	if _, err := db.Exec("TRUNCATE TABLE users"); err != nil {
		log.Printf("Failed to truncate users table (it might not exist yet): %v", err)
	}
	if _, err := db.Exec("SET FOREIGN_KEY_CHECKS=1;"); err != nil {
		log.Printf("Failed to enable foreign key checks: %v", err)
	}

	if err := repositories.Migrate(db); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	// テストユーザーの挿入
	userRepo := repositories.NewUserRepository(db)
	CreateTestUser(t, userRepo, "alice_user", "alice@example.com", "password123")
	CreateTestUser(t, userRepo, "bob_user", "bob@example.com", "password456")

	gin.SetMode(gin.TestMode)
	router := routes.SetupRouter(db)
	eventRepo := repositories.NewEventRepository(db)

	return db, router, eventRepo, userRepo
}

// CreateTestUser はテスト用のユーザーを作成し、データベースに保存します。
func CreateTestUser(t *testing.T, userRepo *repositories.UserRepository, username, email, password string) *models.User {
	hashedPassword, err := repositories.HashPassword(password)
	require.NoError(t, err)

	newUser := models.User{
		Username:     username,
		Email:        email,
		PasswordHash: hashedPassword,
	}

	createdUser, err := userRepo.Create(&newUser)
	require.NoError(t, err)
	require.NotNil(t, createdUser)
	require.NotEqual(t, 0, createdUser.ID)
	return createdUser
}

// CreateTestEvent はAPI経由でテスト用のイベントを作成します。
func CreateTestEvent(t *testing.T, router *gin.Engine, token, title, date string, isTodo bool) *models.Event {
	payload := map[string]interface{}{
		"title":  title,
		"date":   date,
		"isTodo": isTodo,
	}
	body, _ := json.Marshal(payload)

	req, _ := http.NewRequest(http.MethodPost, "/api/events", bytes.NewBuffer(body))
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	require.Equal(t, http.StatusCreated, resp.Code, "イベント作成に失敗しました: %s", resp.Body.String())

	var created models.Event
	err := json.Unmarshal(resp.Body.Bytes(), &created)
	require.NoError(t, err)
	return &created
}

// LoginAndGetToken はログインAPIを呼び出してJWTトークンを取得します。
func LoginAndGetToken(t *testing.T, router *gin.Engine, email, password string) (string, error) {
	loginPayload := map[string]string{
		"email":    email,
		"password": password,
	}
	body, _ := json.Marshal(loginPayload)

	req, _ := http.NewRequest(http.MethodPost, "/api/login", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		return "", fmt.Errorf("login failed with status %d: %s", resp.Code, resp.Body.String())
	}

	var loginRes map[string]interface{}
	err := json.Unmarshal(resp.Body.Bytes(), &loginRes)
	if err != nil {
		return "", fmt.Errorf("failed to unmarshal login response: %w", err)
	}

	token, ok := loginRes["token"].(string)
	if !ok {
		return "", errors.New("token not found or not a string in login response")
	}
	return token, nil
}
