package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/skleeno/showroom-cli/internal/session"
)

// Client wraps HTTP calls to the showroom REST backend.
type Client struct {
	baseURL    string
	session    *session.Session
	httpClient *http.Client
}

// NewClient creates a client for the given base URL. The session
// supplies the bearer token for every request and is expired when the
// server rejects the credential.
func NewClient(baseURL string, sess *session.Session, timeout ...time.Duration) *Client {
	httpTimeout := 30 * time.Second
	if len(timeout) > 0 && timeout[0] > 0 {
		httpTimeout = timeout[0]
	}
	if sess == nil {
		sess = session.New()
	}
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		session: sess,
		httpClient: &http.Client{
			Timeout: httpTimeout,
		},
	}
}

// Session returns the session this client authenticates with.
func (c *Client) Session() *session.Session {
	return c.session
}

// WithTimeout clones the client with a different HTTP timeout.
func (c *Client) WithTimeout(timeout time.Duration) *Client {
	return NewClient(c.baseURL, c.session, timeout)
}

// do executes a JSON request and returns the raw response body.
func (c *Client) do(method, path string, body any) ([]byte, int, error) {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, 0, fmt.Errorf("marshal body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, 0, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.send(req)
}

// doForm executes a multipart/form-data request with text fields and
// file attachments, as the car endpoints require.
func (c *Client) doForm(method, path string, fields map[string][]string, files []FileAttachment) ([]byte, int, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for key, values := range fields {
		for _, v := range values {
			if err := w.WriteField(key, v); err != nil {
				return nil, 0, fmt.Errorf("write field %s: %w", key, err)
			}
		}
	}
	for _, f := range files {
		part, err := w.CreateFormFile(f.Field, f.Name)
		if err != nil {
			return nil, 0, fmt.Errorf("attach %s: %w", f.Name, err)
		}
		if _, err := part.Write(f.Data); err != nil {
			return nil, 0, fmt.Errorf("attach %s: %w", f.Name, err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, 0, fmt.Errorf("finalize form: %w", err)
	}

	req, err := http.NewRequest(method, c.baseURL+path, &buf)
	if err != nil {
		return nil, 0, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	return c.send(req)
}

func (c *Client) send(req *http.Request) ([]byte, int, error) {
	if token := c.session.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNoContent {
		return nil, resp.StatusCode, nil
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		if resp.StatusCode == http.StatusUnauthorized {
			c.session.Expire()
		}
		if msg, ok := extractErrorMessage(respBody); ok {
			return nil, resp.StatusCode, fmt.Errorf("%s", msg)
		}
		return nil, resp.StatusCode, fmt.Errorf("request failed with status %d", resp.StatusCode)
	}

	return respBody, resp.StatusCode, nil
}

// get performs a GET request.
func (c *Client) get(path string) ([]byte, error) {
	body, _, err := c.do(http.MethodGet, path, nil)
	return body, err
}

// post performs a JSON POST request.
func (c *Client) post(path string, body any) ([]byte, error) {
	b, _, err := c.do(http.MethodPost, path, body)
	return b, err
}

// patch performs a JSON PATCH request.
func (c *Client) patch(path string, body any) ([]byte, error) {
	b, _, err := c.do(http.MethodPatch, path, body)
	return b, err
}

// del performs a DELETE request.
func (c *Client) del(path string) ([]byte, error) {
	b, _, err := c.do(http.MethodDelete, path, nil)
	return b, err
}

// decodeOne decodes a bare single-record response.
func decodeOne[T any](data []byte) (*T, error) {
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &v, nil
}

// decodeList decodes a collection response that is either a bare JSON
// array or wrapped in a `{success, count, data}` envelope; the backend
// is inconsistent about which shape it uses per endpoint.
func decodeList[T any](data []byte) ([]T, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var items []T
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, fmt.Errorf("decode response: %w", err)
		}
		return items, nil
	}
	var resp listResponse[T]
	if err := json.Unmarshal(trimmed, &resp); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return resp.Data, nil
}

// extractErrorMessage pulls the human-readable message out of a
// `{message}` error body.
func extractErrorMessage(body []byte) (string, bool) {
	if len(body) == 0 {
		return "", false
	}
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return "", false
	}
	msg := strings.TrimSpace(payload.Message)
	if msg == "" {
		return "", false
	}
	return msg, true
}
