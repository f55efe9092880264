package validator

import "fmt"

type ConflictKind string

const (
	ConflictKindSegmentCapacity  ConflictKind = "segment-capacity"
	ConflictKindPlatformCapacity ConflictKind = "platform-capacity"
)

// Window is a time-of-day interval in minutes from midnight. Fractional
// minutes come from travel times.
type Window struct {
	Start float64 `groups:"basic"`
	End   float64 `groups:"basic"`
}

func (w Window) String() string {
	return fmt.Sprintf("%s-%s", formatMinutes(w.Start), formatMinutes(w.End))
}

func formatMinutes(m float64) string {
	whole := int(m)

	return fmt.Sprintf("%02d:%02d", whole/60, whole%60)
}

// Conflict is one detected capacity violation: more trains on a segment
// or platform than it can hold, over the given window. Conflicts are
// recomputed on every validation pass and never persisted.
type Conflict struct {
	Kind       ConflictKind `groups:"basic"`
	ResourceID string       `groups:"basic"` // offending edge or node id
	TrainIDs   []string     `groups:"basic"`
	Window     Window       `groups:"basic"`
}
