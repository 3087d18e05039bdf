package driven

import "time"

// Observer receives telemetry from the dashboard core.
// It is the observability sink for fetch outcomes and recovered decode failures.
type Observer interface {
	// RecordFetch is called once per completed fetch, successful or not.
	RecordFetch(duration time.Duration, creatives int, err error)

	// RecordDecodeFailure is called whenever a creative field fails to decode.
	// field is one of "metadata", "labels" or "metrics".
	RecordDecodeFailure(field string)
}

// NopObserver discards all telemetry.
type NopObserver struct{}

// RecordFetch implements Observer.
func (NopObserver) RecordFetch(time.Duration, int, error) {}

// RecordDecodeFailure implements Observer.
func (NopObserver) RecordDecodeFailure(string) {}
