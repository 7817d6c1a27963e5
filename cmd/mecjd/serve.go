package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/lgtm-migrator/mecj-demo/internal/bootstrap"
	"github.com/lgtm-migrator/mecj-demo/internal/classifier"
	"github.com/lgtm-migrator/mecj-demo/internal/config"
	"github.com/lgtm-migrator/mecj-demo/internal/dataset"
	"github.com/lgtm-migrator/mecj-demo/internal/httpapi"
	"github.com/lgtm-migrator/mecj-demo/internal/registry"
	"github.com/lgtm-migrator/mecj-demo/internal/static"
)

// serve runs the HTTP server on ln and trains the tabular model alongside it.
// It returns when ctx is canceled (nil) or when serving or training fails.
func serve(ctx context.Context, cfg config.Config, log zerolog.Logger, ln net.Listener) error {
	reg := registry.New(classifier.NewStaticRules(), registry.WithPublishHook(httpapi.SetModelReady))
	assets, err := static.New(cfg.PublicDir)
	if err != nil {
		_ = ln.Close()
		return err
	}

	httpapi.SetLogger(log)
	httpapi.SetCORSOptions(cfg.CORSEnabled, cfg.CORSAllowedOrigins, cfg.CORSAllowedMethods, cfg.CORSAllowedHeaders)
	srv := &http.Server{
		Handler:           httpapi.NewMux(reg, httpapi.Options{Assets: assets, PublicPrefix: cfg.PublicPrefix}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	log.Info().Str("addr", ln.Addr().String()).Str("public_dir", assets.Root()).Msg("mecjd listening")
	if tcp, ok := ln.Addr().(*net.TCPAddr); ok {
		log.Info().Msgf("Open http://127.0.0.1:%d%s/index.html to access the application", tcp.Port, cfg.PublicPrefix)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		return bootstrap.Run(gctx, bootstrap.Options{
			Source:        datasetSource(cfg),
			Trainer:       classifier.KNNTrainer{Neighbors: cfg.Neighbors, P: cfg.MinkowskiP},
			Registry:      reg,
			CacheSize:     cfg.PredictionCacheSize,
			CacheObserver: httpapi.ObserveCacheLookup,
			Logger:        log,
			OnTrained:     httpapi.ObserveTraining,
		})
	})
	g.Go(func() error {
		<-gctx.Done()
		sctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.ShutdownTimeoutSeconds)*time.Second)
		defer cancel()
		if err := srv.Shutdown(sctx); err != nil {
			log.Warn().Err(err).Msg("graceful shutdown error")
		}
		return nil
	})

	err = g.Wait()
	if err != nil && ctx.Err() != nil && errors.Is(err, context.Canceled) {
		// interrupted while training
		err = nil
	}
	log.Info().Msg("mecjd stopped")
	return err
}

func datasetSource(cfg config.Config) dataset.Source {
	if cfg.DatasetPath == "" {
		return dataset.Embedded()
	}
	return dataset.File(cfg.DatasetPath)
}
