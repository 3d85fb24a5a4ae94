// Package fetch retrieves the raw monthly schedule pages. The source
// serves EUC-JP encoded HTML behind basic auth; this package decodes each
// page to UTF-8 before handing it to the parser.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/sirupsen/logrus"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"
)

const (
	UserAgent = "shinbukan-ics/1.0"
	Timeout   = 30 * time.Second

	maxRetries = 3
)

// Config carries the source endpoint and its credentials. Credentials are
// supplied by the caller; nothing in this package reads ambient state.
type Config struct {
	BaseURL  string
	Username string
	Password string
}

// Client fetches schedule pages for individual months.
type Client struct {
	Log    *logrus.Entry
	Config Config
	HTTP   *http.Client
}

// New creates a Client with the default timeout.
func New(log *logrus.Entry, cfg Config) *Client {
	return &Client{
		Log:    log,
		Config: cfg,
		HTTP:   &http.Client{Timeout: Timeout},
	}
}

// PageURL returns the schedule page URL for one month, without
// credentials. This is the form embedded in calendar output.
func (c *Client) PageURL(year int, month time.Month) string {
	base := strings.TrimRight(c.Config.BaseURL, "/")
	return fmt.Sprintf("%s/%d/%d%02d.html", base, year, year, int(month))
}

// FetchMonth retrieves and decodes the schedule page for one month,
// retrying transient failures. Anything still failing after the retry
// budget is a transport error for that month alone.
func (c *Client) FetchMonth(ctx context.Context, year int, month time.Month) (string, error) {
	url := c.PageURL(year, month)
	c.Log.WithField("url", url).Debug("fetching schedule page")

	var page string
	operation := func() error {
		var err error
		page, err = c.fetchOnce(ctx, url)
		return err
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), maxRetries), ctx)
	if err := backoff.Retry(operation, policy); err != nil {
		return "", fmt.Errorf("fetching %s: %w", url, err)
	}
	return page, nil
}

func (c *Client) fetchOnce(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", backoff.Permanent(fmt.Errorf("creating request: %w", err))
	}
	req.Header.Set("User-Agent", UserAgent)
	req.SetBasicAuth(c.Config.Username, c.Config.Password)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return "", fmt.Errorf("performing request: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		// fall through to decode
	case resp.StatusCode >= 500:
		return "", fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	default:
		// 4xx will not improve on retry
		return "", backoff.Permanent(fmt.Errorf("unexpected status code: %d", resp.StatusCode))
	}

	decoded, err := io.ReadAll(transform.NewReader(resp.Body, japanese.EUCJP.NewDecoder()))
	if err != nil {
		return "", fmt.Errorf("decoding response body: %w", err)
	}
	return string(decoded), nil
}
