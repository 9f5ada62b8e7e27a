package fetch

import (
	"bytes"
	"context"
	"strings"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/tidwall/gjson"

	"ordis.dev/itembuilder/internal/constant"
	"ordis.dev/itembuilder/internal/model"
	"ordis.dev/itembuilder/internal/pkg/async"
)

// originEndpoint is one line of the export index: a manifest file name plus
// the upstream content token after the bang. The token doubles as the change
// marker, so unchanged endpoints are served from the on-disk snapshot
// without a second download.
type originEndpoint struct {
	locale string
	name   string
	line   string
}

func (s *Service) fetchOrigin(ctx context.Context, cacheOnly bool, raw *model.RawData) error {
	defer timed("origin")()

	locales := append([]string{constant.LocaleEN}, s.conf.Locales...)

	endpoints := make([]originEndpoint, 0, len(locales)*(len(constant.ExportCategories)+2))
	for _, locale := range locales {
		index, err := s.fetchOriginIndex(ctx, cacheOnly, locale)
		if err != nil {
			return err
		}
		for _, line := range strings.Split(strings.TrimSpace(string(index)), "\n") {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			name, _, _ := strings.Cut(line, "!")
			endpoints = append(endpoints, originEndpoint{locale: locale, name: name, line: line})
		}
	}

	bodies, err := async.Map(endpoints, s.conf.FetchConcurrency, func(ep originEndpoint) ([]byte, error) {
		return s.fetchOriginEndpoint(ctx, cacheOnly, ep)
	})
	if err != nil {
		return err
	}

	raw.I18n = map[string]map[string]map[string]string{}
	for i, ep := range endpoints {
		if err := s.foldOriginEndpoint(raw, ep, bodies[i]); err != nil {
			return errors.Wrapf(err, "failed to decode export endpoint %s", ep.name)
		}
	}
	return nil
}

func (s *Service) fetchOriginIndex(ctx context.Context, cacheOnly bool, locale string) ([]byte, error) {
	key := "OriginIndex:" + locale
	if cacheOnly {
		if b, err := s.client.readSnapshot(key); err == nil {
			return b, nil
		}
	}

	b, err := s.client.GetLZMA(ctx, s.conf.OriginURL+"/PublicExport/index_"+locale+".txt.lzma")
	if err != nil {
		return nil, err
	}
	s.client.writeSnapshot(key, b)
	return b, nil
}

func (s *Service) fetchOriginEndpoint(ctx context.Context, cacheOnly bool, ep originEndpoint) ([]byte, error) {
	key := "Origin:" + ep.name

	// the index token identifies the content; reuse the snapshot when it is
	// unchanged since the previous build
	if !s.hashes.ChangedToken(key, ep.line) || cacheOnly {
		if b, err := s.client.readSnapshot(key); err == nil {
			return b, nil
		}
	}

	body, err := s.client.Get(ctx, s.conf.OriginURL+"/PublicExport/Manifest/"+ep.line)
	if err != nil {
		return nil, err
	}
	body = cleanExport(body)
	s.client.writeSnapshot(key, body)
	return body, nil
}

// foldOriginEndpoint routes one decoded endpoint into the raw snapshot:
// en categories become RawItem chunks, the manifest and recipes are decoded
// typed, and every other locale contributes localized fields only.
func (s *Service) foldOriginEndpoint(raw *model.RawData, ep originEndpoint, body []byte) error {
	switch {
	case strings.HasPrefix(ep.name, "ExportManifest"):
		entries, err := decodeArray[model.ManifestEntry](body, "Manifest")
		if err != nil {
			return err
		}
		raw.Manifest = entries
		return nil

	case ep.locale == constant.LocaleEN && strings.HasPrefix(ep.name, "Export"+constant.ExportRecipes):
		blueprints, err := decodeArray[model.RawBlueprint](body, "ExportRecipes")
		if err != nil {
			return err
		}
		raw.Blueprints = blueprints
		return nil

	case ep.locale == constant.LocaleEN:
		category, ok := exportCategory(ep.name)
		if !ok {
			log.Trace().Str("endpoint", ep.name).Msg("skipping unconsumed export endpoint")
			return nil
		}
		var items []model.RawItem
		arr := gjson.GetBytes(body, "Export"+category)
		if !arr.IsArray() {
			return errors.Errorf("endpoint %s misses key Export%s", ep.name, category)
		}
		if err := json.Unmarshal([]byte(arr.Raw), &items); err != nil {
			return err
		}
		raw.API = append(raw.API, model.RawCategory{Category: category, Data: items})
		return nil

	default:
		s.foldI18n(raw, ep, body)
		return nil
	}
}

func (s *Service) foldI18n(raw *model.RawData, ep originEndpoint, body []byte) {
	category, ok := exportCategory(ep.name)
	if !ok {
		return
	}
	localized := raw.I18n[ep.locale]
	if localized == nil {
		localized = map[string]map[string]string{}
		raw.I18n[ep.locale] = localized
	}

	gjson.GetBytes(body, "Export"+category).ForEach(func(_, rec gjson.Result) bool {
		uniqueName := rec.Get("uniqueName").String()
		if uniqueName == "" {
			return true
		}
		fields := map[string]string{}
		for _, f := range constant.I18nFields {
			if v := rec.Get(f); v.Exists() && v.Type == gjson.String {
				fields[f] = v.String()
			}
		}
		if len(fields) > 0 {
			localized[uniqueName] = fields
		}
		return true
	})
}

// exportCategory extracts the category name out of an endpoint file name
// like "ExportWeapons_en.json".
func exportCategory(endpoint string) (string, bool) {
	name := strings.TrimPrefix(endpoint, "Export")
	if i := strings.IndexAny(name, "_."); i >= 0 {
		name = name[:i]
	}
	for _, c := range constant.ExportCategories {
		if c == name {
			return name, true
		}
	}
	return "", false
}

// cleanExport strips the raw control characters and stray line breaks the
// export is known to ship inside string values, which would otherwise break
// JSON decoding.
func cleanExport(b []byte) []byte {
	b = bytes.ReplaceAll(b, []byte("\r"), nil)
	b = bytes.ReplaceAll(b, []byte("\n"), nil)
	out := make([]byte, 0, len(b))
	for _, c := range b {
		if c >= 0x20 || c == '\t' {
			out = append(out, c)
		}
	}
	return out
}
