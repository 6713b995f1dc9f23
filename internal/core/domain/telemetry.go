package domain

// LogLevel classifies log messages attached to a telemetry vertex.
type LogLevel int

const (
	// LogLevelInfo is the default level.
	LogLevelInfo LogLevel = iota
	// LogLevelWarn marks recoverable problems.
	LogLevelWarn
	// LogLevelError marks failures.
	LogLevelError
)

// String returns the upper-case level name.
func (l LogLevel) String() string {
	switch l {
	case LogLevelWarn:
		return "WARN"
	case LogLevelError:
		return "ERROR"
	default:
		return "INFO"
	}
}

// VertexStatus is the lifecycle state of a telemetry vertex.
type VertexStatus string

const (
	// VertexRunning marks a step in flight.
	VertexRunning VertexStatus = "running"
	// VertexCompleted marks a successfully finished step.
	VertexCompleted VertexStatus = "completed"
	// VertexFailed marks a failed step.
	VertexFailed VertexStatus = "failed"
	// VertexCached marks a step skipped by a cache hit.
	VertexCached VertexStatus = "cached"
)
