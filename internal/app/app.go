package app

import (
	"go.uber.org/fx"

	"ordis.dev/itembuilder/internal/app/appconfig"
	"ordis.dev/itembuilder/internal/app/appcontext"
	"ordis.dev/itembuilder/internal/build"
	"ordis.dev/itembuilder/internal/export"
	"ordis.dev/itembuilder/internal/export/publisher"
	"ordis.dev/itembuilder/internal/fetch"
	"ordis.dev/itembuilder/internal/hashcache"
	"ordis.dev/itembuilder/internal/imagecache"
	"ordis.dev/itembuilder/internal/pkg/logger"
)

func Options(ctx appcontext.Ctx, additionalOpts ...fx.Option) []fx.Option {
	conf, err := appconfig.Parse(ctx)
	if err != nil {
		panic(err)
	}

	// logger and configuration are the only two things that are not in the fx graph
	// because some other packages need them to be initialized before fx starts
	logger.Configure(conf)

	baseOpts := []fx.Option{
		// fx meta
		fx.WithLogger(logger.Fx),

		// Misc
		fx.Supply(conf),

		// Source adapters
		fetch.Module(),

		// Build pipeline
		fx.Provide(hashcache.New),
		build.Module(),

		// Persistence
		fx.Provide(export.NewExporter),
		fx.Provide(imagecache.New),
		fx.Provide(publisher.New),
	}

	return append(baseOpts, additionalOpts...)
}

func New(ctx appcontext.Ctx, additionalOpts ...fx.Option) *fx.App {
	return fx.New(Options(ctx, additionalOpts...)...)
}

// Single constructs the fx graph and runs the given invoke function once.
// The builder is a one-shot batch process: nothing registers lifecycle
// hooks, so fx.New alone drives the whole run and Err reports its outcome.
func Single(ctx appcontext.Ctx, invoke any) error {
	return New(ctx, fx.Invoke(invoke)).Err()
}
