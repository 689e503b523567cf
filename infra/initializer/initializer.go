package initializer

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/amirasaad/paygate/infra"
	"github.com/amirasaad/paygate/infra/configuration"
	"github.com/amirasaad/paygate/infra/httpclient"
	"github.com/amirasaad/paygate/infra/repository/paymentmethod"
	"github.com/amirasaad/paygate/pkg/config"
	"github.com/amirasaad/paygate/pkg/gateway"
	"github.com/amirasaad/paygate/pkg/gateway/imoje"
	"github.com/amirasaad/paygate/pkg/gateway/ing"
)

// InitializeDependencies initializes all the application dependencies
func InitializeDependencies(cfg *config.App) (*config.Deps, error) {
	return initialize(cfg, os.Stdout)
}

func initialize(cfg *config.App, logOut io.Writer) (
	deps *config.Deps,
	err error,
) {
	if cfg == nil {
		return nil, errors.New("initializer: nil configuration")
	}
	deps = &config.Deps{Config: cfg}
	logger := setupLogger(cfg.Log, logOut)
	deps.Logger = logger

	// Stored payment methods win over the ones set in the environment.
	var chain gateway.ChainConfigurationProvider
	db, err := infra.NewDBConnection(cfg.DB, cfg.Env)
	switch {
	case errors.Is(err, infra.ErrDatabaseURLNotSet):
		logger.Info("No database configured, using environment payment methods only")
	case err != nil:
		logger.Error("Failed to initialize database", "error", err)
		return nil, err
	default:
		if err := paymentmethod.Migrate(db); err != nil {
			return nil, fmt.Errorf("failed to migrate payment method configurations: %w", err)
		}
		chain = append(chain, paymentmethod.New(db))
	}
	chain = append(chain, configuration.NewEnvProvider(cfg, logger))
	deps.Configurations = chain

	deps.HTTPClient = httpclient.New(cfg.HTTPClient, logger)

	params := gateway.NewJSONParamsProvider()
	deps.Imoje = imoje.NewClientProvider(deps.Configurations, params, deps.HTTPClient, logger)
	deps.Ing = ing.NewClientProvider(deps.Configurations, params, deps.HTTPClient, logger)

	return deps, nil
}
