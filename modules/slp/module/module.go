// Package module wires the SLP reconciler, its storage backend, the SLPDB oracle and the HTTP API into a worker.
package module

import (
	"context"
	"strings"

	"github.com/btcsuite/btcd/rpcclient"
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/slp-indexer/common/errs"
	"github.com/gaze-network/slp-indexer/core"
	"github.com/gaze-network/slp-indexer/core/datasources"
	"github.com/gaze-network/slp-indexer/core/watcher"
	"github.com/gaze-network/slp-indexer/internal/config"
	"github.com/gaze-network/slp-indexer/internal/postgres"
	"github.com/gaze-network/slp-indexer/modules/slp"
	slpapi "github.com/gaze-network/slp-indexer/modules/slp/api"
	slpdatagateway "github.com/gaze-network/slp-indexer/modules/slp/datagateway"
	slpfilestore "github.com/gaze-network/slp-indexer/modules/slp/repository/filestore"
	slppostgres "github.com/gaze-network/slp-indexer/modules/slp/repository/postgres"
	"github.com/gaze-network/slp-indexer/modules/slp/slpdb"
	slpusecase "github.com/gaze-network/slp-indexer/modules/slp/usecase"
	"github.com/gaze-network/slp-indexer/pkg/httpclient"
	"github.com/gaze-network/slp-indexer/pkg/logger"
	"github.com/gaze-network/slp-indexer/pkg/logger/slogx"
	"github.com/gofiber/fiber/v2"
	"github.com/samber/do/v2"
	"github.com/samber/lo"
)

func New(injector do.Injector) (core.IndexerWorker, error) {
	ctx := do.MustInvoke[context.Context](injector)
	conf := do.MustInvoke[config.Config](injector)
	slpConf := conf.Modules.SLP

	var cacheDg slpdatagateway.CacheDataGateway
	switch strings.ToLower(slpConf.Database) {
	case "filestore", "file", "":
		repo, err := slpfilestore.NewRepository(slpConf.DataDir, slpConf.FilePrefix)
		if err != nil {
			return nil, errors.Wrap(err, "can't create filestore repository")
		}
		cacheDg = repo
	case "postgresql", "postgres", "pg":
		pg, err := postgres.NewPool(ctx, slpConf.Postgres)
		if err != nil {
			if errors.Is(err, errs.InvalidArgument) {
				return nil, errors.Wrap(err, "Invalid Postgres configuration for indexer")
			}
			return nil, errors.Wrap(err, "can't create Postgres connection pool")
		}
		do.ProvideValue(injector, &closer{close: pg.Close})
		cacheDg = slppostgres.NewRepository(pg)
	default:
		return nil, errors.Wrapf(errs.Unsupported, "%q database for indexer is not supported", slpConf.Database)
	}

	if slpConf.SlpdbURL == "" {
		return nil, errors.Wrap(errs.InvalidArgument, "slpdb url is required")
	}
	slpdbClient, err := slpdb.New(slpConf.SlpdbURL, httpclient.Config{
		Timeout: slpConf.SlpdbTimeout,
	})
	if err != nil {
		return nil, errors.Wrap(err, "can't create SLPDB client")
	}

	nodeClient := do.MustInvoke[*rpcclient.Client](injector)
	walletDatasource := datasources.NewWalletNode(nodeClient)

	reconciler := slp.NewReconciler(walletDatasource, slpdbClient, slpdbClient, cacheDg)
	reconciler.LoadCaches(ctx)

	maxPasses := lo.Ternary(slpConf.MaxPasses > 0, slpConf.MaxPasses, slp.DefaultMaxPasses)

	// Mount API
	apiHandlers := lo.Uniq(slpConf.APIHandlers)
	for _, handler := range apiHandlers {
		switch handler {
		case "http":
			httpServer := do.MustInvoke[*fiber.App](injector)
			slpUsecase := slpusecase.New(reconciler, maxPasses)
			slpHTTPHandler := slpapi.NewHTTPHandler(conf.Network, slpUsecase)
			if err := slpHTTPHandler.Mount(httpServer); err != nil {
				return nil, errors.Wrap(err, "can't mount SLP API")
			}
			logger.InfoContext(ctx, "Mounted HTTP handler", slogx.String("module", "slp"))
		default:
			return nil, errors.Wrapf(errs.Unsupported, "%q API handler is not supported", handler)
		}
	}

	processor := slp.NewProcessor(reconciler, maxPasses)
	return watcher.New(processor, walletDatasource, watcher.Config{
		PollInterval:    slpConf.PollInterval,
		RefreshInterval: slpConf.RefreshInterval,
	}), nil
}

// closer releases the connection pool when the injector shuts down.
type closer struct {
	close func()
}

func (c *closer) Shutdown() {
	c.close()
}
