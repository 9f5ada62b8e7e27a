package build

import "go.uber.org/fx"

func Module() fx.Option {
	return fx.Module("build", fx.Provide(NewRunner))
}
