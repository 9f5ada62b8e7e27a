package publish

import (
	"context"

	"github.com/urfave/cli/v2"

	"ordis.dev/itembuilder/internal/app"
	"ordis.dev/itembuilder/internal/app/appcontext"
	"ordis.dev/itembuilder/internal/export/publisher"
)

func Command() *cli.Command {
	return &cli.Command{
		Name:  "publish",
		Usage: "gzip the built dataset and upload it to the configured S3 bucket",
		Action: func(c *cli.Context) error {
			return app.Single(appcontext.Declare(appcontext.EnvPublish), func(p *publisher.Publisher) error {
				return p.Publish(context.Background())
			})
		},
	}
}
