package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"literary-calendar/backend/internal/models"
	"literary-calendar/backend/testutil"
)

func TestRegisterUser_Success(t *testing.T) {
	db, router, _, _ := testutil.SetupTestDB(t)
	defer db.Close()

	payload := models.UserRegisterRequest{
		Username: "carol_user",
		Email:    "carol@example.com",
		Password: "password789",
	}
	body, _ := json.Marshal(payload)

	req, _ := http.NewRequest(http.MethodPost, "/api/register", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var created models.User
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.NotZero(t, created.ID)
	assert.Equal(t, "carol_user", created.Username)
	// パスワードハッシュはレスポンスに含まれない
	assert.NotContains(t, w.Body.String(), "password")
}

func TestRegisterUser_DuplicateEmail(t *testing.T) {
	db, router, _, _ := testutil.SetupTestDB(t)
	defer db.Close()

	payload := models.UserRegisterRequest{
		Username: "alice_twin",
		Email:    "alice@example.com", // 既存
		Password: "password789",
	}
	body, _ := json.Marshal(payload)

	req, _ := http.NewRequest(http.MethodPost, "/api/register", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestLogin_Success(t *testing.T) {
	db, router, _, _ := testutil.SetupTestDB(t)
	defer db.Close()

	token, err := testutil.LoginAndGetToken(t, router, "alice@example.com", "password123")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
}

func TestLogin_WrongPassword(t *testing.T) {
	db, router, _, _ := testutil.SetupTestDB(t)
	defer db.Close()

	_, err := testutil.LoginAndGetToken(t, router, "alice@example.com", "wrong-password")
	assert.Error(t, err)
}
