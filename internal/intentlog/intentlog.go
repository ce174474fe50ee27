// Package intentlog builds timestamped records of caller-supplied reasoning
// traces. The clock is its only impurity, so it is injectable.
package intentlog

import (
	"io"
	"math/rand"
	"time"

	"github.com/oklog/ulid/v2"
)

// Tags carried by every intent record.
var recordTags = [2]string{"intent", "xi"}

// #region clock

// Clock supplies the record timestamp. Production code uses SystemClock;
// tests pin a fixed instant.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

// Now returns the current UTC time.
func (SystemClock) Now() time.Time { return time.Now().UTC() }

// FixedClock always returns the same instant.
type FixedClock struct {
	Instant time.Time
}

// Now returns the fixed instant.
func (c FixedClock) Now() time.Time { return c.Instant }

// #endregion clock

// #region record

// Record is one annotated intent entry. Timestamp is ISO-8601 (RFC 3339),
// captured at logging time; because of that clock read a Record is the one
// non-reproducible output of the pipeline.
type Record struct {
	ID             string   `json:"id"`
	Timestamp      string   `json:"timestamp"`
	ReasoningTrace []string `json:"reasoning_trace"`
	IntentWeight   float64  `json:"intent_weight"`
	Tags           []string `json:"tags"`
}

// #endregion record

// #region logger

// Logger produces intent records with IDs from its entropy source.
type Logger struct {
	clock   Clock
	entropy io.Reader
}

// NewLogger creates a logger with the given clock and ULID entropy source.
// A nil entropy falls back to a clock-seeded source.
func NewLogger(clock Clock, entropy io.Reader) *Logger {
	if entropy == nil {
		entropy = ulid.Monotonic(rand.New(rand.NewSource(clock.Now().UnixNano())), 0)
	}
	return &Logger{clock: clock, entropy: entropy}
}

// NewSystemLogger creates a logger on the system clock.
func NewSystemLogger() *Logger {
	return NewLogger(SystemClock{}, nil)
}

// LogIntent builds a record from the trace and weight. The trace is copied
// verbatim; later mutation by the caller cannot alter the record.
func (l *Logger) LogIntent(reasoningTrace []string, intentWeight float64) Record {
	now := l.clock.Now()

	trace := make([]string, len(reasoningTrace))
	copy(trace, reasoningTrace)

	return Record{
		ID:             ulid.MustNew(ulid.Timestamp(now), l.entropy).String(),
		Timestamp:      now.Format(time.RFC3339),
		ReasoningTrace: trace,
		IntentWeight:   intentWeight,
		Tags:           []string{recordTags[0], recordTags[1]},
	}
}

// #endregion logger
