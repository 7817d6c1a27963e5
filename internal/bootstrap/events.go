package bootstrap

import "sync"

// Event names published during a training run.
const (
	EventTrainingStarted = "training_started"
	EventDatasetLoaded   = "dataset_loaded"
	EventModelPublished  = "model_published"
	EventTrainingFailed  = "training_failed"
)

// Event represents a bootstrap lifecycle event: name + run ID and optional fields.
type Event struct {
	Name   string
	RunID  string
	Fields map[string]any
}

// EventPublisher receives events from the bootstrap. Publish must not block or panic.
type EventPublisher interface {
	Publish(Event)
}

type noopPublisher struct{}

func (noopPublisher) Publish(Event) {}

// MemoryPublisher stores events in-memory for tests.
type MemoryPublisher struct {
	mu     sync.Mutex
	events []Event
}

func NewMemoryPublisher() *MemoryPublisher { return &MemoryPublisher{} }

func (p *MemoryPublisher) Publish(e Event) {
	p.mu.Lock()
	p.events = append(p.events, e)
	p.mu.Unlock()
}

func (p *MemoryPublisher) Events() []Event {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]Event, len(p.events))
	copy(out, p.events)
	return out
}

// Names returns the event names in publish order.
func (p *MemoryPublisher) Names() []string {
	evs := p.Events()
	out := make([]string, len(evs))
	for i, e := range evs {
		out[i] = e.Name
	}
	return out
}
