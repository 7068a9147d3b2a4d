package view

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"literary-calendar/backend/internal/models"
)

// APIClient がスペック通りのルーティング（クエリパラメータの位置・メソッド）で
// APIを呼び出すことを確認します。
func TestAPIClient_Routing(t *testing.T) {
	var gotMethod, gotPath, gotQuery, gotAuth string
	var gotBody map[string]any

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		gotAuth = r.Header.Get("Authorization")
		gotBody = nil
		if r.Body != nil {
			_ = json.NewDecoder(r.Body).Decode(&gotBody)
		}
		switch r.Method {
		case http.MethodGet:
			_ = json.NewEncoder(w).Encode([]models.Event{{ID: "e1", Title: "本を読む"}})
		case http.MethodDelete:
			_ = json.NewEncoder(w).Encode(map[string]bool{"success": true})
		default:
			_ = json.NewEncoder(w).Encode(models.Event{ID: "e1"})
		}
	}))
	defer server.Close()

	client := NewAPIClient(server.URL, "test-token")

	events, err := client.ListByDate("2024-03-01")
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, http.MethodGet, gotMethod)
	assert.Equal(t, "/api/events", gotPath)
	assert.Equal(t, "date=2024-03-01", gotQuery)
	assert.Equal(t, "Bearer test-token", gotAuth)

	isTodo := true
	_, err = client.Create(models.EventCreateRequest{Title: "散歩", Date: "2024-03-01", IsTodo: &isTodo})
	require.NoError(t, err)
	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "散歩", gotBody["title"])
	assert.Equal(t, true, gotBody["isTodo"])

	completed := true
	_, err = client.Update("e1", models.EventUpdateRequest{Completed: &completed})
	require.NoError(t, err)
	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, "id=e1", gotQuery)
	assert.Equal(t, true, gotBody["completed"])

	require.NoError(t, client.Delete("e1"))
	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "id=e1", gotQuery)
}

func TestAPIClient_ErrorResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "Unauthorized"})
	}))
	defer server.Close()

	client := NewAPIClient(server.URL, "bad-token")
	_, err := client.ListByDate("2024-03-01")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Unauthorized")
}
