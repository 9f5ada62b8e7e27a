package appconfig

import (
	"fmt"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"

	"ordis.dev/itembuilder/internal/app/appcontext"
	"ordis.dev/itembuilder/internal/pkg/projectpath"
)

func Parse(ctx appcontext.Ctx) (*Config, error) {
	err := godotenv.Load(filepath.Join(projectpath.Root, ".env"))
	if err != nil {
		log.Warn().Err(err).Msg("failed to load .env file")
	}

	var config ConfigSpec
	err = envconfig.Process("ordis", &config)
	if err != nil {
		_ = envconfig.Usage("ordis", &config)
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	return &Config{
		ConfigSpec: config,
		AppContext: ctx,
	}, nil
}
