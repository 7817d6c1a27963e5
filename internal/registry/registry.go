// Package registry holds the classifiers served by the gateway.
//
// The sequence slot is filled at construction and is always ready. The
// tabular slot starts unset and is published exactly once through an atomic
// compare-and-swap; readers load it without locks and observe either nothing
// or the fully built model.
package registry

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lgtm-migrator/mecj-demo/internal/classifier"
	"github.com/lgtm-migrator/mecj-demo/pkg/types"
)

// State is the lifecycle state of a slot.
type State string

const (
	StateUnset State = "unset"
	StateReady State = "ready"
	StateError State = "error"
)

// PublishInfo describes the training run that produced a model.
type PublishInfo struct {
	RunID    string
	Samples  int
	Duration time.Duration
}

type handle struct {
	model     classifier.Classifier
	info      PublishInfo
	published time.Time
}

// Registry owns the two model slots.
type Registry struct {
	tabular  atomic.Pointer[handle]
	sequence *handle

	ready     chan struct{}
	readyOnce sync.Once

	failMu  sync.Mutex
	failErr error

	onPublish func(types.Slot)
	now       func() time.Time
	started   time.Time
}

// Option configures a Registry.
type Option func(*Registry)

// WithPublishHook registers fn to run after a slot becomes ready.
func WithPublishHook(fn func(types.Slot)) Option {
	return func(r *Registry) { r.onPublish = fn }
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(r *Registry) { r.now = now }
}

// New builds a registry whose sequence slot is already ready.
func New(sequence classifier.Classifier, opts ...Option) *Registry {
	r := &Registry{ready: make(chan struct{}), now: time.Now}
	for _, o := range opts {
		o(r)
	}
	r.started = r.now()
	r.sequence = &handle{model: sequence, published: r.started}
	if r.onPublish != nil {
		r.onPublish(types.SlotSequence)
	}
	return r
}

// Publish installs the trained tabular model. Only the first call succeeds.
func (r *Registry) Publish(model classifier.Classifier, info PublishInfo) error {
	h := &handle{model: model, info: info, published: r.now()}
	if !r.tabular.CompareAndSwap(nil, h) {
		return ErrAlreadyPublished
	}
	r.readyOnce.Do(func() { close(r.ready) })
	if r.onPublish != nil {
		r.onPublish(types.SlotTabular)
	}
	return nil
}

// Fail records a terminal training failure. The tabular slot stays unset.
func (r *Registry) Fail(err error) {
	if err == nil {
		return
	}
	r.failMu.Lock()
	if r.failErr == nil {
		r.failErr = err
	}
	r.failMu.Unlock()
}

// TryGet returns the model in slot, or a NotReadyError.
func (r *Registry) TryGet(slot types.Slot) (classifier.Classifier, error) {
	switch slot {
	case types.SlotTabular:
		if h := r.tabular.Load(); h != nil {
			return h.model, nil
		}
		return nil, NotReadyError{Slot: slot}
	case types.SlotSequence:
		return r.sequence.model, nil
	default:
		return nil, unknownSlotError{slot: slot}
	}
}

// Ready reports whether the tabular model has been published.
func (r *Registry) Ready() bool { return r.tabular.Load() != nil }

// Wait blocks until the tabular model is published or ctx is done.
func (r *Registry) Wait(ctx context.Context) error {
	select {
	case <-r.ready:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Status builds the /status payload.
func (r *Registry) Status() types.StatusResponse {
	now := r.now()
	tab := types.SlotStatus{Slot: string(types.SlotTabular), State: string(StateUnset)}
	if h := r.tabular.Load(); h != nil {
		tab = slotStatus(types.SlotTabular, h)
	} else {
		r.failMu.Lock()
		if r.failErr != nil {
			tab.State = string(StateError)
			tab.Error = r.failErr.Error()
		}
		r.failMu.Unlock()
	}
	return types.StatusResponse{
		Models:         []types.SlotStatus{tab, slotStatus(types.SlotSequence, r.sequence)},
		Ready:          tab.State == string(StateReady),
		UptimeSeconds:  int64(now.Sub(r.started).Seconds()),
		ServerTimeUnix: now.Unix(),
	}
}

func slotStatus(slot types.Slot, h *handle) types.SlotStatus {
	return types.SlotStatus{
		Slot:           string(slot),
		State:          string(StateReady),
		RunID:          h.info.RunID,
		Samples:        h.info.Samples,
		TrainingMillis: h.info.Duration.Milliseconds(),
		ReadySince:     h.published.Unix(),
	}
}
