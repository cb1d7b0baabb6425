package logger

import (
	"context"

	"go.uber.org/fx"

	"github.com/philipp01105/pluginlog/binder"
)

// FXModule provides a *binder.Binder and a *Factory to an Fx application.
//
// The application supplies a binder.Discoverer and a binder.Host. Options
// for the factory may be supplied as []Option tagged `group:"pluginlog"`.
// On start the binder is initialized once, so a broken plugin.yml fails
// startup instead of the first log call.
//
//	app := fx.New(
//	    fx.Supply(fx.Annotate(manifest.Static("Tracker"), fx.As(new(binder.Discoverer)))),
//	    fx.Supply(fx.Annotate(registry, fx.As(new(binder.Host)))),
//	    logger.FXModule,
//	)
var FXModule = fx.Module("pluginlog",
	fx.Provide(
		NewBinder,
		NewFactoryFx,
	),
	fx.Invoke(RegisterLifecycle),
)

// NewBinder is the Fx constructor for *binder.Binder
func NewBinder(d binder.Discoverer, h binder.Host) *binder.Binder {
	return binder.New(d, h)
}

// FactoryParams are the dependencies of NewFactoryFx
type FactoryParams struct {
	fx.In

	Binder  *binder.Binder
	Options []Option `group:"pluginlog"`
}

// NewFactoryFx is the Fx constructor for *Factory
func NewFactoryFx(p FactoryParams) *Factory {
	return NewFactory(p.Binder, p.Options...)
}

// RegisterLifecycle binds the factory when the application starts.
func RegisterLifecycle(lc fx.Lifecycle, f *Factory) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return f.Binder().Initialize(false)
		},
	})
}
