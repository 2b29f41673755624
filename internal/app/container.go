package app

import (
	"context"

	"github.com/doeshing/shellsense/internal/infrastructure/ai"
	"github.com/doeshing/shellsense/internal/infrastructure/config"
	"github.com/doeshing/shellsense/internal/infrastructure/history"
	"github.com/doeshing/shellsense/internal/infrastructure/security"
	"github.com/doeshing/shellsense/internal/pkg/logger"
	"github.com/doeshing/shellsense/internal/ports"
	"github.com/doeshing/shellsense/internal/services"
)

// Container wires the resolution core with its infrastructure adapters.
type Container struct {
	Resolution     *services.ResolutionService
	ConfigProvider ports.ConfigProvider
	ConfigLoader   *config.FileLoader
	Library        *security.Library
	HistoryStore   ports.HistoryRepository
	Logger         ports.Logger
}

// BuildContainer constructs the dependency graph. Configuration errors
// are fatal here: a process with an invalid safety setup never starts.
func BuildContainer(ctx context.Context, verbose bool) (*Container, error) {
	cfgLoader := config.NewFileLoader("")
	cfg, err := cfgLoader.Load(ctx)
	if err != nil {
		return nil, err
	}

	log := logger.NewStd(verbose)

	library, err := security.NewLibrary(security.Options{
		Custom:    cfg.Security.CustomDangerPatterns,
		Allowlist: cfg.Security.Allowlist,
		BlockHigh: cfg.Security.BlockHigh,
	})
	if err != nil {
		return nil, err
	}

	var historyRepo ports.HistoryRepository
	if store, err := history.NewSQLiteStore(""); err != nil {
		log.Warn("history store unavailable, resolutions will not be recorded",
			map[string]interface{}{"error": err.Error()})
	} else {
		historyRepo = store
	}

	resolution := &services.ResolutionService{
		ConfigProvider:  cfgLoader,
		ProviderFactory: ai.NewFactory(),
		Safety:          library,
		History:         historyRepo,
		Logger:          log,
		Analyzer:        &services.Analyzer{},
		Questions:       &services.QuestionGenerator{},
		Enhancer:        &services.Enhancer{},
	}

	return &Container{
		Resolution:     resolution,
		ConfigProvider: cfgLoader,
		ConfigLoader:   cfgLoader,
		Library:        library,
		HistoryStore:   historyRepo,
		Logger:         log,
	}, nil
}

// Close releases container-held resources.
func (c *Container) Close() error {
	if c.HistoryStore != nil {
		return c.HistoryStore.Close()
	}
	return nil
}
