package app

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"ordis.dev/itembuilder/cmd/app/build"
	"ordis.dev/itembuilder/cmd/app/publish"
	"ordis.dev/itembuilder/internal/pkg/bininfo"
)

func Run() {
	app := &cli.App{
		Name:        "ordis",
		Description: "Offline batch builder for a normalized, versioned in-game item dataset. Scrapes the game export API, wiki data modules, the drop-rate aggregator, the patch-notes archive and the vault tracker, merges them into one canonical schema and persists JSON files plus a local image cache.",
		Version:     bininfo.Version,
		Commands: []*cli.Command{
			build.Command(),
			publish.Command(),
		},
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("failed to run app")
	}
}
