package fetch

import "go.uber.org/fx"

func Module() fx.Option {
	return fx.Module("fetch", fx.Provide(
		NewClient,
		NewService,
	))
}
