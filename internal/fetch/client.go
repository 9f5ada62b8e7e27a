package fetch

import (
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/ulikunitz/xz/lzma"

	"ordis.dev/itembuilder/internal/app/appconfig"
)

var ErrUpstreamStatus = errors.New("unexpected upstream status")

// Client is the shared upstream HTTP client. Every adapter goes through it
// so retries, timeout, User-Agent and snapshot bookkeeping behave the same
// for all five sources.
type Client struct {
	conf *appconfig.Config
	http *http.Client
}

func NewClient(conf *appconfig.Config) *Client {
	return &Client{
		conf: conf,
		http: &http.Client{
			Timeout: conf.HTTPTimeout,
		},
	}
}

// Get fetches url with retry/backoff. A still-failing request aborts the
// build: downstream correctness assumes every source loaded for the run.
func (c *Client) Get(ctx context.Context, url string) ([]byte, error) {
	var body []byte
	err := retry.Do(
		func() error {
			req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
			if err != nil {
				return retry.Unrecoverable(err)
			}
			req.Header.Set("User-Agent", c.conf.UserAgent)

			resp, err := c.http.Do(req)
			if err != nil {
				return err
			}
			defer resp.Body.Close()

			if resp.StatusCode != http.StatusOK {
				return errors.Wrapf(ErrUpstreamStatus, "%s: %d", url, resp.StatusCode)
			}

			body, err = io.ReadAll(resp.Body)
			return err
		},
		retry.Context(ctx),
		retry.Attempts(c.conf.HTTPRetries),
		retry.DelayType(retry.BackOffDelay),
		retry.OnRetry(func(n uint, err error) {
			log.Warn().Err(err).Uint("attempt", n).Str("url", url).Msg("retrying upstream request")
		}),
	)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to fetch %s", url)
	}
	return body, nil
}

// GetLZMA fetches url and decompresses the body as a raw LZMA stream, the
// format of the game export index.
func (c *Client) GetLZMA(ctx context.Context, url string) ([]byte, error) {
	body, err := c.Get(ctx, url)
	if err != nil {
		return nil, err
	}

	r, err := lzma.NewReader(strings.NewReader(string(body)))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open lzma stream of %s", url)
	}
	out, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to decompress %s", url)
	}
	return out, nil
}

// snapshotPath is where the raw body of a logical source key is kept between
// builds for hash-unchanged and cache-only reuse.
func (c *Client) snapshotPath(key string) string {
	safe := strings.NewReplacer("/", "-", ":", "-").Replace(key)
	return filepath.Join(c.conf.CacheDir, safe+".json")
}

func (c *Client) readSnapshot(key string) ([]byte, error) {
	return os.ReadFile(c.snapshotPath(key))
}

func (c *Client) writeSnapshot(key string, body []byte) {
	if err := os.MkdirAll(c.conf.CacheDir, 0o755); err != nil {
		log.Warn().Err(err).Msg("failed to create cache dir")
		return
	}
	if err := os.WriteFile(c.snapshotPath(key), body, 0o644); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("failed to write source snapshot")
	}
}

// timed logs slow sources; large exports regularly take double-digit
// seconds on cold CDN caches.
func timed(name string) func() {
	start := time.Now()
	return func() {
		log.Debug().Str("source", name).Dur("took", time.Since(start)).Msg("source fetched")
	}
}
