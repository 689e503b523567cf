package config

import (
	"log/slog"

	"github.com/amirasaad/paygate/pkg/gateway"
	"github.com/amirasaad/paygate/pkg/gateway/imoje"
	"github.com/amirasaad/paygate/pkg/gateway/ing"
)

// Deps holds the infrastructure the server and CLI are built from.
type Deps struct {
	Configurations gateway.ConfigurationProvider
	HTTPClient     gateway.HTTPClient
	Imoje          *imoje.ClientProvider
	Ing            *ing.ClientProvider
	Logger         *slog.Logger
	Config         *App
}
