package publish

import "sync"

// LoadingTracker publishes true on DataLoading while at least one load is in flight.
type LoadingTracker struct {
	mu          sync.Mutex // guards inFlight and orders transitions on dataLoading
	inFlight    int
	dataLoading *Subject[bool]
}

// NewLoadingTracker returns a tracker whose subject starts at false.
func NewLoadingTracker() *LoadingTracker {
	return &LoadingTracker{dataLoading: NewSubject(false)}
}

// DataLoading exposes the loading flag for subscribers.
// Subscribers must not call Begin from their callback.
func (t *LoadingTracker) DataLoading() *Subject[bool] {
	return t.dataLoading
}

// Begin marks one load as started. The returned func marks it finished and is
// safe to call more than once.
func (t *LoadingTracker) Begin() (done func()) {
	t.mu.Lock()
	t.inFlight++
	if t.inFlight == 1 {
		t.dataLoading.Next(true)
	}
	t.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			t.mu.Lock()
			defer t.mu.Unlock()
			t.inFlight--
			if t.inFlight == 0 {
				t.dataLoading.Next(false)
			}
		})
	}
}
