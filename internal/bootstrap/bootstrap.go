// Package bootstrap trains the tabular classifier and publishes it.
//
// Run is meant to execute on its own goroutine after the HTTP listener is
// bound, so /predict answers "not ready" until the model lands in the
// registry. Every failure is terminal; nothing is retried.
package bootstrap

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/lgtm-migrator/mecj-demo/internal/classifier"
	"github.com/lgtm-migrator/mecj-demo/internal/dataset"
	"github.com/lgtm-migrator/mecj-demo/internal/registry"
)

// Publisher is the registry surface the bootstrap writes to.
type Publisher interface {
	Publish(model classifier.Classifier, info registry.PublishInfo) error
	Fail(err error)
}

// Options wires a training run.
type Options struct {
	Source   dataset.Source
	Trainer  classifier.Trainer
	Registry Publisher
	// CacheSize > 0 fronts the trained model with an LRU of that many rows.
	CacheSize     int
	CacheObserver func(hit bool)
	Events        EventPublisher
	Logger        zerolog.Logger
	// OnTrained, if set, receives the wall-clock training duration.
	OnTrained func(time.Duration)
}

// Run loads the dataset, fits the trainer and publishes the result.
func Run(ctx context.Context, opts Options) (err error) {
	if opts.Source == nil || opts.Trainer == nil || opts.Registry == nil {
		return fmt.Errorf("bootstrap: source, trainer and registry are required")
	}
	events := opts.Events
	if events == nil {
		events = noopPublisher{}
	}
	runID := uuid.NewString()
	log := opts.Logger.With().Str("run_id", runID).Str("source", opts.Source.Name()).Logger()

	defer func() {
		if err != nil {
			opts.Registry.Fail(err)
			events.Publish(Event{Name: EventTrainingFailed, RunID: runID, Fields: map[string]any{"error": err.Error()}})
			log.Error().Err(err).Msg("training failed")
		}
	}()

	events.Publish(Event{Name: EventTrainingStarted, RunID: runID})
	log.Info().Msg("training started")
	start := time.Now()

	ds, err := dataset.Load(opts.Source)
	if err != nil {
		return &DatasetLoadError{Source: opts.Source.Name(), Err: err}
	}
	events.Publish(Event{Name: EventDatasetLoaded, RunID: runID, Fields: map[string]any{"samples": ds.Len()}})
	if err := ctx.Err(); err != nil {
		return err
	}

	model, err := opts.Trainer.Fit(ds.X, ds.Y)
	if err != nil {
		return fmt.Errorf("train: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	model, err = classifier.NewCached(model, opts.CacheSize, classifier.WithCacheObserver(opts.CacheObserver))
	if err != nil {
		return err
	}

	dur := time.Since(start)
	if err := opts.Registry.Publish(model, registry.PublishInfo{RunID: runID, Samples: ds.Len(), Duration: dur}); err != nil {
		return fmt.Errorf("publish: %w", err)
	}
	if opts.OnTrained != nil {
		opts.OnTrained(dur)
	}
	events.Publish(Event{Name: EventModelPublished, RunID: runID, Fields: map[string]any{"samples": ds.Len(), "duration": dur}})
	log.Info().Int("samples", ds.Len()).Dur("dur", dur).Msg("Classifier ready for use.")
	return nil
}
