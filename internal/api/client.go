package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/Laisky/errors/v2"
	logSDK "github.com/Laisky/go-utils/v6/log"
	"github.com/Laisky/zap"

	"quran-wbw/internal/log"
	"quran-wbw/internal/quran"
)

const (
	DefaultBaseURL = "https://quran.com/api/proxy/content/api/qdc"
	defaultTimeout = 30 * time.Second

	wordFields = "verse_key,position,text_uthmani,char_type_name"
)

// translationIDs maps a language code to the content API's translation resource.
var translationIDs = map[string]string{
	"en": "131", // Saheeh International
	"ur": "234", // Fateh Muhammad Jalandhry
}

// TranslationID returns the translation resource for lang, falling back to English.
func TranslationID(lang string) string {
	if id, ok := translationIDs[lang]; ok {
		return id
	}
	return translationIDs["en"]
}

type CacheInterface interface {
	Get(key string) ([]byte, bool)
	Set(key string, body []byte)
}

type Client struct {
	httpClient *http.Client
	baseURL    string
	cache      CacheInterface
	logger     logSDK.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithBaseURL points the client at another deployment, mostly for tests.
func WithBaseURL(base string) Option {
	return func(c *Client) {
		if base = strings.TrimRight(strings.TrimSpace(base), "/"); base != "" {
			c.baseURL = base
		}
	}
}

// WithTimeout sets the per-request timeout of the default HTTP client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

// WithLogger overrides the client logger.
func WithLogger(logger logSDK.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

func NewClient(opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: defaultTimeout},
		baseURL:    DefaultBaseURL,
		logger:     log.Logger.Named("api"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) SetCache(cache CacheInterface) {
	c.cache = cache
}

// GetChapterWords fetches one page of a chapter's verses with word-by-word data
// in wordLang.
func (c *Client) GetChapterWords(ctx context.Context, chapter int, w quran.Window, wordLang string) ([]Verse, error) {
	params := url.Values{}
	params.Set("words", "true")
	params.Set("word_translation_language", wordLang)
	params.Set("word_fields", wordFields)
	params.Set("page", strconv.Itoa(w.Page))
	params.Set("per_page", strconv.Itoa(w.PerPage))

	endpoint := fmt.Sprintf("%s/verses/by_chapter/%d?%s", c.baseURL, chapter, params.Encode())

	var resp ChapterVersesResponse
	if err := c.getJSON(ctx, "chapter words", endpoint, &resp); err != nil {
		return nil, err
	}

	c.logger.Debug("chapter words",
		zap.Int("chapter", chapter),
		zap.Int("page", w.Page),
		zap.Int("per_page", w.PerPage),
		zap.Int("first", w.First()),
		zap.Int("last", w.Last()),
		zap.String("lang", wordLang),
		zap.Int("verses", len(resp.Verses)))
	return resp.Verses, nil
}

// GetTranslationText fetches the lang translation of from..to as one block of
// text and returns it keyed by verse key.
func (c *Client) GetTranslationText(ctx context.Context, from, to quran.VerseRef, lang string) (map[string]string, error) {
	params := url.Values{}
	params.Set("raw", "true")
	params.Set("from", from.Key())
	params.Set("to", to.Key())
	params.Set("footnote", "false")
	params.Set("translator_name", "false")
	params.Set("translations", TranslationID(lang))

	endpoint := fmt.Sprintf("%s/verses/advanced_copy?%s", c.baseURL, params.Encode())

	var resp AdvancedCopyResponse
	if err := c.getJSON(ctx, "translation text", endpoint, &resp); err != nil {
		return nil, err
	}

	texts := ParseCopyText(resp.Result)
	c.logger.Debug("translation text",
		zap.String("from", from.Key()),
		zap.String("to", to.Key()),
		zap.String("lang", lang),
		zap.Int("verses", len(texts)))
	return texts, nil
}

func (c *Client) getJSON(ctx context.Context, op, endpoint string, out any) error {
	if c.cache != nil {
		if body, ok := c.cache.Get(endpoint); ok {
			c.logger.Debug("cache hit", zap.String("url", endpoint))
			return c.decode(op, endpoint, body, out)
		}
	}

	body, err := c.get(ctx, op, endpoint)
	if err != nil {
		return err
	}
	if err := c.decode(op, endpoint, body, out); err != nil {
		return err
	}

	if c.cache != nil {
		c.cache.Set(endpoint, body)
	}
	return nil
}

func (c *Client) decode(op, endpoint string, body []byte, out any) error {
	if err := json.Unmarshal(body, out); err != nil {
		return &RemoteRequestError{Op: op, URL: endpoint, Err: errors.Wrap(err, "decode response")}
	}
	return nil
}

func (c *Client) get(ctx context.Context, op, endpoint string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, &RemoteRequestError{Op: op, URL: endpoint, Err: errors.Wrap(err, "new request")}
	}
	req.Header.Set("accept", "*/*")
	req.Header.Set("referer", "https://quran.com/")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &RemoteRequestError{Op: op, URL: endpoint, Err: errors.WithStack(err)}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &RemoteRequestError{Op: op, URL: endpoint, StatusCode: resp.StatusCode,
			Err: errors.Wrap(err, "read response")}
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &RemoteRequestError{Op: op, URL: endpoint, StatusCode: resp.StatusCode,
			Err: errors.Errorf("API returned status %d: %s", resp.StatusCode, truncate(body, 256))}
	}

	return body, nil
}

func truncate(body []byte, n int) string {
	if len(body) <= n {
		return string(body)
	}
	return string(body[:n]) + "..."
}
