package metrics

import "time"

// Recorder receives bridge events. Labels used: "kind" and "operation".
type Recorder interface {
	IncCounter(name string, labels map[string]string)
	ObserveLatency(name string, duration time.Duration, labels map[string]string)
}

// Event names
const (
	EventCodeDefaulted  = "code_defaulted"
	EventRequestInvalid = "request_invalid"
	EventAmountFallback = "amount_fallback"
)

// NoopRecorder drops every event
type NoopRecorder struct{}

func (NoopRecorder) IncCounter(string, map[string]string)                    {}
func (NoopRecorder) ObserveLatency(string, time.Duration, map[string]string) {}
