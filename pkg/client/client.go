// Package client is the HTTP client for a running kiosk server: it logs in
// with the shared password, keeps the session cookie, and fetches the
// catalog collections the navigation state machine works on.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/mhorak/kiosek/pkg/models"
)

// Client talks to one kiosk server.
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a client for the server at baseURL.
func New(baseURL string) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("create cookie jar: %w", err)
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Jar:     jar,
			Timeout: 30 * time.Second,
		},
	}, nil
}

// Login authenticates with the shared kiosk password. A wrong password
// returns the server's localized message as an error.
func (c *Client) Login(ctx context.Context, password string) error {
	body, _ := json.Marshal(map[string]string{"password": password})
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/login", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var payload struct {
			Message string `json:"message"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&payload)
		if payload.Message == "" {
			payload.Message = resp.Status
		}
		return fmt.Errorf("login: %s", payload.Message)
	}
	return nil
}

// Categories fetches the category forest and the catalog mode flag.
func (c *Client) Categories(ctx context.Context) ([]*models.CategoryNode, bool, error) {
	var payload struct {
		Categories []*models.CategoryNode `json:"categories"`
		IsLegacy   bool                   `json:"isLegacy"`
	}
	if err := c.getJSON(ctx, "/api/categories", nil, &payload); err != nil {
		return nil, false, err
	}
	return payload.Categories, payload.IsLegacy, nil
}

// Items fetches items, optionally filtered by category id/path or search
// text. The kiosk client loads the full list once and filters locally, so
// both filters are normally empty here.
func (c *Client) Items(ctx context.Context, category, search string) ([]*models.Item, error) {
	params := url.Values{}
	if category != "" {
		params.Set("category", category)
	}
	if search != "" {
		params.Set("search", search)
	}
	var payload struct {
		Items []*models.Item `json:"items"`
	}
	if err := c.getJSON(ctx, "/api/items", params, &payload); err != nil {
		return nil, err
	}
	return payload.Items, nil
}

// Text fetches the raw content of a text-type item.
func (c *Client) Text(ctx context.Context, path string) (string, error) {
	params := url.Values{}
	params.Set("path", path)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/text?"+params.Encode(), nil)
	if err != nil {
		return "", err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch text: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetch text: %s", resp.Status)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("fetch text: %w", err)
	}
	return string(data), nil
}

// TextSize fetches the persisted text-size preference.
func (c *Client) TextSize(ctx context.Context) (string, error) {
	var payload struct {
		TextSize string `json:"textSize"`
	}
	if err := c.getJSON(ctx, "/api/prefs/textsize", nil, &payload); err != nil {
		return "", err
	}
	return payload.TextSize, nil
}

// SetTextSize persists the text-size preference.
func (c *Client) SetTextSize(ctx context.Context, size string) error {
	body, _ := json.Marshal(map[string]string{"textSize": size})
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, c.baseURL+"/api/prefs/textsize", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("set text size: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("set text size: %s", resp.Status)
	}
	return nil
}

func (c *Client) getJSON(ctx context.Context, path string, params url.Values, out any) error {
	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("GET %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("GET %s: %s", path, resp.Status)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("GET %s: decode: %w", path, err)
	}
	return nil
}
