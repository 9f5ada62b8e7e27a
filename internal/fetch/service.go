package fetch

import (
	"context"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/tidwall/gjson"
	"golang.org/x/sync/errgroup"

	"ordis.dev/itembuilder/internal/app/appconfig"
	"ordis.dev/itembuilder/internal/hashcache"
	"ordis.dev/itembuilder/internal/model"
)

// Service pulls all five upstream sources into one RawData snapshot. Any
// source that cannot be loaded fails the whole build; partial-source builds
// would silently produce wrong merges downstream.
type Service struct {
	conf   *appconfig.Config
	client *Client
	hashes *hashcache.Cache
}

func NewService(conf *appconfig.Config, client *Client, hashes *hashcache.Cache) *Service {
	return &Service{
		conf:   conf,
		client: client,
		hashes: hashes,
	}
}

func (s *Service) FetchAll(ctx context.Context, cacheOnly bool) (*model.RawData, error) {
	raw := &model.RawData{}

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		return s.fetchOrigin(egCtx, cacheOnly, raw)
	})
	eg.Go(func() (err error) {
		raw.Drops, err = s.fetchDrops(egCtx, cacheOnly)
		return err
	})
	eg.Go(func() (err error) {
		raw.Patchlogs, err = s.fetchPatchlogs(egCtx, cacheOnly)
		return err
	})
	eg.Go(func() (err error) {
		raw.Wikia, err = s.fetchWikia(egCtx, cacheOnly)
		return err
	})
	eg.Go(func() (err error) {
		raw.VaultData, raw.Relics, err = s.fetchVaultData(egCtx, cacheOnly)
		return err
	})

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	log.Info().
		Int("categories", len(raw.API)).
		Int("blueprints", len(raw.Blueprints)).
		Int("dropRates", len(raw.Drops.Rates)).
		Int("vaultRecords", len(raw.VaultData)).
		Msg("all sources fetched")
	return raw, nil
}

// getSource fetches one logical source, maintaining its snapshot and change
// marker. In cache-only mode an existing snapshot short-circuits the network
// entirely and counts as unchanged.
func (s *Service) getSource(ctx context.Context, key, url string, cacheOnly bool) (body []byte, changed bool, err error) {
	if cacheOnly {
		if b, err := s.client.readSnapshot(key); err == nil {
			return b, false, nil
		}
		log.Debug().Str("key", key).Msg("cache-only build has no snapshot, falling back to fetch")
	}

	body, err = s.client.Get(ctx, url)
	if err != nil {
		return nil, false, err
	}

	changed = s.hashes.Changed(key, body)
	s.client.writeSnapshot(key, body)
	return body, changed, nil
}

// decodeArray decodes the first matching array out of a loosely shaped
// upstream document: the named paths are probed in order, then the document
// root itself.
func decodeArray[T any](b []byte, paths ...string) ([]T, error) {
	doc := gjson.ParseBytes(b)

	candidate := doc
	for _, p := range paths {
		if r := doc.Get(p); r.IsArray() {
			candidate = r
			break
		}
	}
	if !candidate.IsArray() {
		return nil, errors.New("document contains no recognizable array")
	}

	var out []T
	if err := json.Unmarshal([]byte(candidate.Raw), &out); err != nil {
		return nil, errors.Wrap(err, "failed to decode array")
	}
	return out, nil
}
