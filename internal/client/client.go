package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strings"

	"go.uber.org/zap"
)

// APIError is the error half of the content API envelope.
type APIError struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

// Pagination mirrors the content API pagination block.
type Pagination struct {
	Page      int   `json:"page"`
	PageSize  int   `json:"pageSize"`
	PageCount int   `json:"pageCount"`
	Total     int64 `json:"total"`
}

// Meta carries list metadata.
type Meta struct {
	Pagination Pagination `json:"pagination"`
}

// Envelope is the uniform result shape of every Fetch call. Exactly one of
// Data and Error is meaningful; callers check Error before touching Data.
type Envelope struct {
	Data  json.RawMessage `json:"data"`
	Meta  *Meta           `json:"meta,omitempty"`
	Error *APIError       `json:"error,omitempty"`
}

// Client is a thin wrapper over the content API. One best-effort round trip
// per call: no retries, no caching.
type Client struct {
	baseURL string
	token   string
	httpc   *http.Client
	log     *zap.Logger
}

func New(baseURL, token string, log *zap.Logger) *Client {
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		httpc:   http.DefaultClient,
		log:     log,
	}
}

// Fetch issues a GET against the content API and decodes the envelope.
// Transport and decode failures come back as a 500 envelope error, non-2xx
// responses as the server's error block. Fetch never panics and never
// returns a Go error; the envelope is the whole contract.
func (c *Client) Fetch(ctx context.Context, path string, params map[string]any) Envelope {
	target := c.baseURL + "/" + strings.TrimLeft(path, "/")
	if query := EncodeQuery(params); query != "" {
		target += "?" + query
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return errorEnvelope(http.StatusInternalServerError, err.Error())
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		c.log.Warn("content api unreachable", zap.String("path", path), zap.Error(err))
		return errorEnvelope(http.StatusInternalServerError, "content api unreachable")
	}
	defer resp.Body.Close()

	var envelope Envelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		c.log.Warn("content api returned malformed body", zap.String("path", path), zap.Error(err))
		return errorEnvelope(http.StatusInternalServerError, "malformed response body")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if envelope.Error == nil {
			envelope.Error = &APIError{Status: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		}
		envelope.Data = nil
	}
	return envelope
}

func errorEnvelope(status int, message string) Envelope {
	return Envelope{Error: &APIError{Status: status, Message: message}}
}

// EncodeQuery flattens nested params into bracket notation, e.g.
// {"filters": {"slug": {"$eq": "x"}}} -> filters[slug][$eq]=x.
// Scalar slices become indexed keys. Key order is stable.
func EncodeQuery(params map[string]any) string {
	if len(params) == 0 {
		return ""
	}
	values := url.Values{}
	for _, key := range sortedKeys(params) {
		encodeValue(values, key, params[key])
	}
	return values.Encode()
}

func encodeValue(values url.Values, key string, value any) {
	switch v := value.(type) {
	case map[string]any:
		for _, sub := range sortedKeys(v) {
			encodeValue(values, key+"["+sub+"]", v[sub])
		}
	case []any:
		for i, item := range v {
			encodeValue(values, fmt.Sprintf("%s[%d]", key, i), item)
		}
	case []string:
		for i, item := range v {
			values.Set(fmt.Sprintf("%s[%d]", key, i), item)
		}
	case nil:
	default:
		values.Set(key, fmt.Sprint(v))
	}
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
