package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/oauth2"
)

const defaultRESTTimeout = 10 * time.Second

// RESTBackend talks to a PostgREST-compatible HTTP API.
type RESTBackend struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewRESTBackend builds a client for cfg.URL. Requests carry the API key
// header and, when an access token is configured, a bearer token.
func NewRESTBackend(ctx context.Context, cfg Config) (*RESTBackend, error) {
	if cfg.URL == "" {
		return nil, fmt.Errorf("rest backend: empty url")
	}
	if _, err := url.Parse(cfg.URL); err != nil {
		return nil, fmt.Errorf("rest backend url: %w", err)
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultRESTTimeout
	}

	bearer := cfg.AccessToken
	if bearer != "" {
		info, err := ParseAccessToken(bearer)
		if err != nil {
			return nil, err
		}
		if info.Expired(time.Now()) {
			return nil, ErrTokenExpired
		}
	} else {
		bearer = cfg.APIKey
	}

	base := &http.Client{Timeout: timeout}
	client := base
	if bearer != "" {
		ctx = context.WithValue(ctx, oauth2.HTTPClient, base)
		client = oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{
			AccessToken: bearer,
			TokenType:   "Bearer",
		}))
		client.Timeout = timeout
	}

	return &RESTBackend{
		baseURL: strings.TrimRight(cfg.URL, "/"),
		apiKey:  cfg.APIKey,
		client:  client,
	}, nil
}

func (b *RESTBackend) tableURL(table string, query url.Values) string {
	u := b.baseURL + "/rest/v1/" + url.PathEscape(table)
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

func (b *RESTBackend) Upsert(ctx context.Context, table string, record map[string]any, conflict ...string) error {
	body, err := json.Marshal([]map[string]any{record})
	if err != nil {
		return fmt.Errorf("encode %s record: %w", table, err)
	}

	q := url.Values{}
	if len(conflict) > 0 {
		q.Set("on_conflict", strings.Join(conflict, ","))
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, b.tableURL(table, q), bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Prefer", "resolution=merge-duplicates,return=minimal")
	b.setHeaders(req)

	resp, err := b.client.Do(req)
	if err != nil {
		return fmt.Errorf("upsert %s: %w", table, err)
	}
	defer resp.Body.Close()
	return checkStatus(resp, "upsert "+table)
}

func (b *RESTBackend) Select(ctx context.Context, table string, filters map[string]any) ([]map[string]any, error) {
	q := url.Values{}
	q.Set("select", "*")
	for _, col := range sortedColumns(filters) {
		q.Set(col, fmt.Sprintf("eq.%v", filters[col]))
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, b.tableURL(table, q), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	b.setHeaders(req)

	resp, err := b.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("select %s: %w", table, err)
	}
	defer resp.Body.Close()
	if err := checkStatus(resp, "select "+table); err != nil {
		return nil, err
	}

	var rows []map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		return nil, fmt.Errorf("decode %s rows: %w", table, err)
	}
	return rows, nil
}

func (b *RESTBackend) Close() error {
	b.client.CloseIdleConnections()
	return nil
}

func (b *RESTBackend) setHeaders(req *http.Request) {
	if b.apiKey != "" {
		req.Header.Set("apikey", b.apiKey)
	}
}

func checkStatus(resp *http.Response, op string) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	return fmt.Errorf("%s: status %d: %s", op, resp.StatusCode, strings.TrimSpace(string(msg)))
}
