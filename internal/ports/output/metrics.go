package output

import "time"

// Metrics records what the router did with each request.
type Metrics interface {
	ObserveRequest(handler string, elapsed time.Duration)
	ObserveFault(kind string)
}
