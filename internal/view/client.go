package view

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"literary-calendar/backend/internal/models"
)

// APIClient はイベントAPIを呼び出す EventSource のHTTP実装です。
// token はログインで取得したJWTトークンです。
type APIClient struct {
	BaseURL string
	Token   string
	HTTP    *http.Client
}

// NewAPIClient は新しいAPIClientを作成します。
func NewAPIClient(baseURL, token string) *APIClient {
	return &APIClient{BaseURL: baseURL, Token: token, HTTP: http.DefaultClient}
}

func (c *APIClient) do(method, path string, query url.Values, body any, out any) error {
	u := c.BaseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("could not marshal request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, u, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.Token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr struct {
			Error string `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Error != "" {
			return fmt.Errorf("api error (%d): %s", resp.StatusCode, apiErr.Error)
		}
		return fmt.Errorf("api error (%d)", resp.StatusCode)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("could not decode response: %w", err)
		}
	}
	return nil
}

// ListByDate は GET /api/events?date= を呼び出します。
func (c *APIClient) ListByDate(date string) ([]models.Event, error) {
	var events []models.Event
	q := url.Values{"date": {date}}
	if err := c.do(http.MethodGet, "/api/events", q, nil, &events); err != nil {
		return nil, err
	}
	return events, nil
}

// Create は POST /api/events を呼び出します。
func (c *APIClient) Create(req models.EventCreateRequest) (*models.Event, error) {
	var event models.Event
	if err := c.do(http.MethodPost, "/api/events", nil, req, &event); err != nil {
		return nil, err
	}
	return &event, nil
}

// Update は PUT /api/events?id= を呼び出します。
func (c *APIClient) Update(id string, req models.EventUpdateRequest) (*models.Event, error) {
	var event models.Event
	q := url.Values{"id": {id}}
	if err := c.do(http.MethodPut, "/api/events", q, req, &event); err != nil {
		return nil, err
	}
	return &event, nil
}

// Delete は DELETE /api/events?id= を呼び出します。
func (c *APIClient) Delete(id string) error {
	q := url.Values{"id": {id}}
	return c.do(http.MethodDelete, "/api/events", q, nil, nil)
}
