package build

import (
	"context"

	"github.com/urfave/cli/v2"

	"ordis.dev/itembuilder/internal/app"
	"ordis.dev/itembuilder/internal/app/appcontext"
	"ordis.dev/itembuilder/internal/build"
)

func Command() *cli.Command {
	return &cli.Command{
		Name:  "build",
		Usage: "fetch all upstream sources and build the item dataset",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "cache-only",
				Usage: "reuse on-disk source snapshots for every source the change cache marks unchanged",
			},
			&cli.BoolFlag{
				Name:  "skip-images",
				Usage: "skip refreshing the local image cache",
			},
		},
		Action: func(c *cli.Context) error {
			opts := build.RunOptions{
				CacheOnly:  c.Bool("cache-only"),
				SkipImages: c.Bool("skip-images"),
			}
			return app.Single(appcontext.Declare(appcontext.EnvBuild), func(runner *build.Runner) error {
				return runner.Run(context.Background(), opts)
			})
		},
	}
}
