//go:build wireinject

package bootstrap

import (
	"net/http"

	"auspex-gateway/internal/config"
	httpserver "auspex-gateway/internal/infrastructure/http"

	"github.com/google/wire"
)

var apiSet = wire.NewSet(
	ProvideLogger,
	ProvideHTTPClient,
	ProvideProviders,
	ProvideGatewayService,
	ProvideServer,
	httpserver.NewRouter,
)

// API injector: builds the routed http.Handler from a loaded config.
func InitAPI(cfg config.Config) (http.Handler, error) {
	wire.Build(apiSet)
	return nil, nil
}
