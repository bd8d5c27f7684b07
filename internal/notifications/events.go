package notifications

import "sync"

// Event is one progress or status update emitted by the pipeline.
type Event struct {
	RunID    string
	Stage    string
	Percent  float64
	Message  string
	Terminal bool
	// Outcome is set on terminal events: completed, aborted, or failed.
	Outcome string
}

// Publisher is the one-way surface the pipeline publishes through. The
// pipeline never reads back or touches consumer state.
type Publisher interface {
	Publish(Event)
}

// NopPublisher drops every event.
type NopPublisher struct{}

func (NopPublisher) Publish(Event) {}

// Fanout publishes each event to every wrapped publisher in order.
func Fanout(publishers ...Publisher) Publisher {
	return fanout(publishers)
}

type fanout []Publisher

func (f fanout) Publish(ev Event) {
	for _, p := range f {
		if p != nil {
			p.Publish(ev)
		}
	}
}

// ChannelPublisher delivers events through a buffered channel. Publishing
// never blocks the pipeline: when the consumer lags, intermediate progress
// updates are dropped rather than stalling a render.
type ChannelPublisher struct {
	ch        chan Event
	closeOnce sync.Once
}

// NewChannelPublisher builds a publisher with the given buffer size.
func NewChannelPublisher(buffer int) *ChannelPublisher {
	if buffer <= 0 {
		buffer = 16
	}
	return &ChannelPublisher{ch: make(chan Event, buffer)}
}

// Publish enqueues the event, dropping it when the buffer is full.
func (p *ChannelPublisher) Publish(ev Event) {
	select {
	case p.ch <- ev:
	default:
	}
}

// Events returns the consumer side of the channel.
func (p *ChannelPublisher) Events() <-chan Event {
	return p.ch
}

// Close ends the stream. Publish must not be called afterwards.
func (p *ChannelPublisher) Close() {
	p.closeOnce.Do(func() { close(p.ch) })
}
