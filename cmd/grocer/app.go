package main

import (
	"github.com/samber/do/v2"

	"github.com/grocerapp/grocer/internal/config"
	"github.com/grocerapp/grocer/internal/logger"
	"github.com/grocerapp/grocer/internal/recipe"
	"github.com/grocerapp/grocer/internal/validation"
)

// App holds the services every command needs. Commands receive an App and
// delegate real work to the internal packages.
type App struct {
	Config *config.Config
	Logger *logger.Logger
	Loader *recipe.Loader
}

// newApp bootstraps services through a DI container.
func newApp() (*App, error) {
	injector := do.New()

	do.Provide(injector, provideConfig)
	do.Provide(injector, provideLogger)
	do.Provide(injector, provideValidator)
	do.Provide(injector, provideLoader)

	cfg, err := do.Invoke[*config.Config](injector)
	if err != nil {
		return nil, err
	}
	log, err := do.Invoke[*logger.Logger](injector)
	if err != nil {
		return nil, err
	}
	loader, err := do.Invoke[*recipe.Loader](injector)
	if err != nil {
		return nil, err
	}

	return &App{Config: cfg, Logger: log, Loader: loader}, nil
}

func provideConfig(do.Injector) (*config.Config, error) {
	return config.Load()
}

func provideLogger(i do.Injector) (*logger.Logger, error) {
	cfg := do.MustInvoke[*config.Config](i)
	return logger.New(logger.Config{
		Format: cfg.Logger.Format,
		Level:  logger.ParseLevel(cfg.Logger.Level),
	}), nil
}

func provideValidator(do.Injector) (*validation.Validator, error) {
	return validation.New(), nil
}

func provideLoader(i do.Injector) (*recipe.Loader, error) {
	return recipe.NewLoader(do.MustInvoke[*validation.Validator](i)), nil
}
