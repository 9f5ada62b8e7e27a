package imagecache

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"ordis.dev/itembuilder/internal/app/appconfig"
	"ordis.dev/itembuilder/internal/constant"
	"ordis.dev/itembuilder/internal/fetch"
	"ordis.dev/itembuilder/internal/hashcache"
	"ordis.dev/itembuilder/internal/model"
)

// Service mirrors item render textures into a local image directory. Each
// texture is re-downloaded only when its manifest location or file time
// moved, so a warm cache makes this step close to free.
type Service struct {
	conf   *appconfig.Config
	client *fetch.Client
	hashes *hashcache.Cache
}

func New(conf *appconfig.Config, client *fetch.Client, hashes *hashcache.Cache) *Service {
	return &Service{conf: conf, client: client, hashes: hashes}
}

type target struct {
	uniqueName string
	imageName  string
}

// Refresh downloads and resizes every texture referenced by the built items
// and their components. Per-image failures degrade to warnings; only setup
// errors abort the run.
func (s *Service) Refresh(ctx context.Context, items []*model.Item, manifest []model.ManifestEntry) (*model.Warnings, error) {
	defer func(start time.Time) {
		log.Info().Dur("elapsed", time.Since(start)).Msg("image cache refreshed")
	}(time.Now())

	if err := os.MkdirAll(s.conf.ImageDir, 0o755); err != nil {
		return nil, errors.Wrap(err, "failed to create image dir")
	}

	byUnique := make(map[string]model.ManifestEntry, len(manifest))
	for _, entry := range manifest {
		byUnique[entry.UniqueName] = entry
	}

	warns := model.NewWarnings()
	for _, t := range s.targets(items) {
		entry, ok := byUnique[t.uniqueName]
		if !ok {
			// already reported as a missing image during the build
			continue
		}
		if err := s.refreshOne(ctx, t, entry); err != nil {
			log.Warn().Err(err).Str("uniqueName", t.uniqueName).Msg("image refresh failed")
			warns.Add(constant.WarnFailedImage, t.uniqueName)
		}
	}
	return warns, nil
}

// targets flattens items and components into the set of images to mirror.
// Items arrive sorted, so on image name collisions the first owner wins and
// the result stays deterministic.
func (s *Service) targets(items []*model.Item) []target {
	var out []target
	seen := map[string]struct{}{}
	add := func(it *model.Item) {
		if it.ImageName == "" {
			return
		}
		if _, ok := seen[it.ImageName]; ok {
			return
		}
		seen[it.ImageName] = struct{}{}
		out = append(out, target{uniqueName: it.UniqueName, imageName: it.ImageName})
	}
	for _, it := range items {
		add(it)
		for _, comp := range it.Components {
			add(comp)
		}
	}
	return out
}

func (s *Service) refreshOne(ctx context.Context, t target, entry model.ManifestEntry) error {
	token := fmt.Sprintf("%s|%d", entry.TextureLocation, entry.FileTime)
	path := filepath.Join(s.conf.ImageDir, t.imageName)

	if !s.hashes.ChangedToken("Image:"+t.uniqueName, token) {
		if _, err := os.Stat(path); err == nil {
			return nil
		}
		// cache says current but the file is gone, re-fetch
	}

	location := strings.TrimPrefix(entry.TextureLocation, "/")
	body, err := s.client.Get(ctx, s.conf.OriginURL+"/"+location)
	if err != nil {
		return err
	}

	body, err = s.resize(body)
	if err != nil {
		return err
	}
	return os.WriteFile(path, body, 0o644)
}

// resize caps the longer edge at the configured maximum. Non-image payloads
// and already small textures are stored untouched.
func (s *Service) resize(body []byte) ([]byte, error) {
	img, format, err := image.Decode(bytes.NewReader(body))
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode texture")
	}

	bounds := img.Bounds()
	max := s.conf.ImageMaxSize
	if bounds.Dx() <= max && bounds.Dy() <= max {
		return body, nil
	}

	if bounds.Dx() >= bounds.Dy() {
		img = imaging.Resize(img, max, 0, imaging.Lanczos)
	} else {
		img = imaging.Resize(img, 0, max, imaging.Lanczos)
	}

	var buf bytes.Buffer
	imgFormat, err := imaging.FormatFromExtension("." + format)
	if err != nil {
		imgFormat = imaging.PNG
	}
	if err := imaging.Encode(&buf, img, imgFormat); err != nil {
		return nil, errors.Wrap(err, "failed to encode texture")
	}
	return buf.Bytes(), nil
}
