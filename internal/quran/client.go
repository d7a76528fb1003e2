package quran

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	DefaultBaseURL = "https://api.alquran.cloud/v1"
	DefaultEdition = "quran-simple"
	DefaultTimeout = 15 * time.Second

	// maxBodyBytes bounds a single response; a full juz is well under 1 MiB.
	maxBodyBytes = 8 << 20
)

// Client fetches ayat and the surah directory from the alquran.cloud API.
type Client struct {
	baseURL string
	edition string
	client  *http.Client
	log     *zap.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API base URL.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = strings.TrimRight(u, "/") }
}

// WithEdition selects the text edition, e.g. "quran-simple" or "quran-uthmani".
func WithEdition(e string) Option {
	return func(c *Client) { c.edition = e }
}

// WithTimeout sets the per-request timeout of the default HTTP client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.client = &http.Client{Timeout: d} }
}

// WithHTTPClient replaces the HTTP client entirely.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.client = hc }
}

// WithLogger attaches a logger for request diagnostics.
func WithLogger(l *zap.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.log = l
		}
	}
}

// NewClient creates a Client with defaults applied before opts.
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		edition: DefaultEdition,
		client:  &http.Client{Timeout: DefaultTimeout},
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type response[T any] struct {
	Code   int    `json:"code"`
	Status string `json:"status"`
	Data   T      `json:"data"`
}

type juzData struct {
	Number int    `json:"number"`
	Ayahs  []Ayah `json:"ayahs"`
}

type surahData struct {
	Surah
	Ayahs []Ayah `json:"ayahs"`
}

// FetchJuz returns the ayat of juz id (1..30) in mushaf order.
func (c *Client) FetchJuz(ctx context.Context, id int) ([]Ayah, error) {
	path := fmt.Sprintf("/juz/%d/%s", id, c.edition)
	data, err := get[juzData](ctx, c, "fetch juz", path, juzSchema)
	if err != nil {
		return nil, err
	}
	return data.Ayahs, nil
}

// FetchSurah returns the ayat of surah id, each annotated with its surah.
func (c *Client) FetchSurah(ctx context.Context, id int) ([]Ayah, error) {
	path := fmt.Sprintf("/surah/%d/%s", id, c.edition)
	data, err := get[surahData](ctx, c, "fetch surah", path, surahSchema)
	if err != nil {
		return nil, err
	}

	// The surah endpoint omits the per-ayah surah object.
	ref := data.Surah.Ref()
	ayahs := make([]Ayah, len(data.Ayahs))
	for i, a := range data.Ayahs {
		a.Surah = ref
		ayahs[i] = a
	}
	return ayahs, nil
}

// FetchSurahList returns the surah directory.
func (c *Client) FetchSurahList(ctx context.Context) ([]Surah, error) {
	return get[[]Surah](ctx, c, "fetch surah list", "/surah", surahListSchema)
}

func get[T any](ctx context.Context, c *Client, op, path string, schema *Schema) (T, error) {
	var zero T
	url := c.baseURL + path

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return zero, &ErrProviderUnavailable{Op: op, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		c.log.Warn("content request failed", zap.String("op", op), zap.String("url", url), zap.Error(err))
		return zero, &ErrProviderUnavailable{Op: op, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	c.log.Debug("content request",
		zap.String("op", op),
		zap.String("url", url),
		zap.Int("status", resp.StatusCode),
		zap.Duration("latency", time.Since(start)),
	)

	if resp.StatusCode != http.StatusOK {
		return zero, &ErrProviderUnavailable{Op: op, Err: fmt.Errorf("HTTP %d for %s", resp.StatusCode, url)}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return zero, &ErrProviderUnavailable{Op: op, Err: fmt.Errorf("read body: %w", err)}
	}

	if err := validateBody(schema, body); err != nil {
		c.log.Warn("content response rejected", zap.String("op", op), zap.Error(err))
		return zero, &ErrProviderUnavailable{Op: op, Err: err}
	}

	var out response[T]
	if err := json.Unmarshal(body, &out); err != nil {
		return zero, &ErrProviderUnavailable{Op: op, Err: fmt.Errorf("decode: %w", err)}
	}
	if out.Code != http.StatusOK {
		return zero, &ErrProviderUnavailable{Op: op, Err: fmt.Errorf("API code %d (%s)", out.Code, out.Status)}
	}
	return out.Data, nil
}
