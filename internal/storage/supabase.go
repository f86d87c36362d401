// Package storage provides a lightweight HTTP client for Supabase
// object storage. Uploaded files become publicly readable and the
// client returns their public URL. If not configured, the client
// operates as a no-op that reports ErrNotConfigured.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrNotConfigured indicates the storage backend is not configured.
var ErrNotConfigured = errors.New("storage not configured")

// objectPrefix is the folder all record attachments land in.
const objectPrefix = "sleep-records"

var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)

// Client is the interface for file storage operations.
type Client interface {
	// IsEnabled returns true if storage is configured.
	IsEnabled() bool
	// Upload stores the file and returns its public URL.
	Upload(ctx context.Context, filename, contentType string, body io.Reader) (string, error)
}

// Config holds Supabase storage configuration.
type Config struct {
	BaseURL string
	APIKey  string
	Bucket  string
}

type client struct {
	baseURL    string
	apiKey     string
	bucket     string
	enabled    bool
	httpClient *http.Client
}

// NewClient creates a new Supabase storage client.
// If the base URL, key or bucket is empty, returns a disabled no-op client.
func NewClient(cfg Config) Client {
	enabled := cfg.BaseURL != "" && cfg.APIKey != "" && cfg.Bucket != ""

	if !enabled {
		log.Println("[storage] disabled: SUPABASE_URL, key or bucket is empty")
	} else {
		log.Printf("[storage] enabled: base_url=%s bucket=%s", cfg.BaseURL, cfg.Bucket)
	}

	return &client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		bucket:  cfg.Bucket,
		enabled: enabled,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (c *client) IsEnabled() bool {
	return c.enabled
}

func (c *client) Upload(ctx context.Context, filename, contentType string, body io.Reader) (string, error) {
	if !c.enabled {
		return "", ErrNotConfigured
	}

	objectPath := fmt.Sprintf("%s/%s_%s", objectPrefix, uuid.New().String()[:8], SanitizeFilename(filename))

	url := fmt.Sprintf("%s/storage/v1/object/%s/%s", c.baseURL, c.bucket, objectPath)
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, body)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}

	if contentType == "" {
		contentType = "application/octet-stream"
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("x-upsert", "true")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("upload failed with status %d: %s", resp.StatusCode, strings.TrimSpace(string(detail)))
	}

	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", c.baseURL, c.bucket, objectPath), nil
}

// SanitizeFilename collapses characters outside [a-zA-Z0-9._-] into
// single dashes so the name is safe as an object path segment.
func SanitizeFilename(name string) string {
	sanitized := unsafeChars.ReplaceAllString(name, "-")
	sanitized = strings.Trim(sanitized, "-.")
	if sanitized == "" {
		return "file"
	}
	return sanitized
}
