package metrics

import (
	"time"

	"github.com/go-authgate/loginapi/internal/core"
)

// NoopMetrics is a no-operation implementation of Recorder
type NoopMetrics struct{}

// Ensure NoopMetrics implements Recorder interface at compile time
var _ core.Recorder = (*NoopMetrics)(nil)

// NewNoopMetrics creates a new no-operation metrics recorder
func NewNoopMetrics() core.Recorder {
	return &NoopMetrics{}
}

func (n *NoopMetrics) RecordVerification(result string, duration time.Duration) {}
func (n *NoopMetrics) RecordRotation(result string, duration time.Duration)     {}
func (n *NoopMetrics) RecordHash(algorithm string, duration time.Duration)      {}
