package diag

import "sync"

// Recorder keeps every event in memory.
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Log appends the event.
func (r *Recorder) Log(event Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

// Events returns a copy of the recorded events in order.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Event(nil), r.events...)
}

// OfKind returns the recorded events of kind k.
func (r *Recorder) OfKind(k Kind) []Event {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []Event
	for _, e := range r.events {
		if e.Kind == k {
			out = append(out, e)
		}
	}
	return out
}

// Count returns the number of recorded events per kind.
func (r *Recorder) Count() map[Kind]int {
	r.mu.Lock()
	defer r.mu.Unlock()

	counts := make(map[Kind]int)
	for _, e := range r.events {
		counts[e.Kind]++
	}
	return counts
}

// Compile-time interface satisfaction check.
var _ Logger = (*Recorder)(nil)
