// Command lineage inspects dataset lineage and compares versions.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/custodia-labs/lineage-cli/internal/adapters/driven/auth"
	"github.com/custodia-labs/lineage-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/lineage-cli/internal/adapters/driven/gateway"
	"github.com/custodia-labs/lineage-cli/internal/adapters/driven/gateway/fixture"
	"github.com/custodia-labs/lineage-cli/internal/adapters/driving/cli"
	"github.com/custodia-labs/lineage-cli/internal/core/domain"
	"github.com/custodia-labs/lineage-cli/internal/core/ports/driven"
	"github.com/custodia-labs/lineage-cli/internal/core/services"
	"github.com/custodia-labs/lineage-cli/internal/logger"
)

func main() {
	cli.SetBuilder(build)
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

// build wires the driven adapters into the core services.
func build(opts cli.Options) (*cli.Services, error) {
	configStore, err := file.NewConfigStore(opts.ConfigDir)
	if err != nil {
		return nil, fmt.Errorf("opening config: %w", err)
	}
	logger.Debug("Using config file %s", configStore.Path())
	settingsService := services.NewSettingsService(configStore)

	settings, err := settingsService.Get()
	if err != nil {
		return nil, fmt.Errorf("reading settings: %w", err)
	}

	tokenStore := auth.NewConfigTokenStore(configStore)
	providers, err := auth.NewFactory(tokenStore).Create(settings.Auth)
	if err != nil {
		return nil, fmt.Errorf("configuring auth: %w", err)
	}

	out := &cli.Services{
		Settings: settingsService,
		Auth:     services.NewAuthService(providers.Authenticator, tokenStore, providers.TokenProvider),
	}

	var lineageGateway driven.LineageGateway
	switch {
	case opts.Fixture != "":
		fx, err := fixture.New(opts.Fixture)
		if err != nil {
			return nil, fmt.Errorf("opening fixture: %w", err)
		}
		logger.Debug("Using fixture gateway at %s", fx.Path())
		lineageGateway = fx
		out.Changes = fx
	case settings.Gateway.IsConfigured():
		gw, err := gateway.New(settings.Gateway, providers.TokenProvider)
		if err != nil {
			return nil, fmt.Errorf("configuring gateway: %w", err)
		}
		logger.Debug("Using lineage service at %s", gw.Endpoint())
		lineageGateway = gw
	default:
		lineageGateway = unconfiguredGateway{}
	}
	out.Sessions = services.NewSessionFactory(lineageGateway)

	return out, nil
}

// unconfiguredGateway fails every fetch until a base URL is set, so that
// settings commands keep working without one.
type unconfiguredGateway struct{}

func (unconfiguredGateway) FetchLineage(_ context.Context, lineageID string) (domain.RawPayload, error) {
	return nil, &domain.FetchError{
		LineageID: lineageID,
		Err: fmt.Errorf("%w: lineage service URL is not set; run 'lineage settings gateway <url>' or use --fixture",
			domain.ErrInvalidInput),
	}
}
