package build

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"ordis.dev/itembuilder/internal/app/appconfig"
	"ordis.dev/itembuilder/internal/export"
	"ordis.dev/itembuilder/internal/fetch"
	"ordis.dev/itembuilder/internal/hashcache"
	"ordis.dev/itembuilder/internal/imagecache"
)

type RunOptions struct {
	// CacheOnly builds entirely from on-disk snapshots without touching
	// any upstream.
	CacheOnly bool
	// SkipImages leaves the image cache untouched.
	SkipImages bool
}

// Runner wires the full build: fetch, pipeline, export, image cache, and
// finally the hash cache flush that makes the next run incremental.
type Runner struct {
	conf     *appconfig.Config
	fetcher  *fetch.Service
	hashes   *hashcache.Cache
	exporter *export.Exporter
	images   *imagecache.Service
}

func NewRunner(conf *appconfig.Config, fetcher *fetch.Service, hashes *hashcache.Cache, exporter *export.Exporter, images *imagecache.Service) *Runner {
	return &Runner{
		conf:     conf,
		fetcher:  fetcher,
		hashes:   hashes,
		exporter: exporter,
		images:   images,
	}
}

func (r *Runner) Run(ctx context.Context, opts RunOptions) error {
	defer func(start time.Time) {
		log.Info().Dur("elapsed", time.Since(start)).Msg("build finished")
	}(time.Now())

	raw, err := r.fetcher.FetchAll(ctx, opts.CacheOnly)
	if err != nil {
		return err
	}

	prev := LoadPrevious(r.conf.OutputDir)
	result, err := NewPipeline(raw, prev).Run()
	if err != nil {
		return err
	}

	if err := r.exporter.WriteCategories(result.Categories); err != nil {
		return err
	}
	if err := r.exporter.WriteAll(result.All); err != nil {
		return err
	}
	if err := r.exporter.WriteI18n(result.I18n); err != nil {
		return err
	}

	if opts.SkipImages {
		log.Info().Msg("image cache refresh skipped")
	} else {
		imgWarns, err := r.images.Refresh(ctx, result.All, raw.Manifest)
		if err != nil {
			return err
		}
		result.Warnings.Merge(imgWarns)
	}

	if err := r.exporter.WriteWarnings(result.Warnings); err != nil {
		return err
	}

	if err := r.hashes.Save(); err != nil {
		return err
	}

	log.Info().
		Int("items", len(result.All)).
		Int("warnings", result.Warnings.Count()).
		Msg("dataset written")
	return nil
}
