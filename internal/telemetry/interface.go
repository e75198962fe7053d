package telemetry

import (
	"context"
	"time"
)

// Collector defines the core domain interface
type Collector interface {
	Record(ctx context.Context, snapshot *StateSnapshot) error
	Close() error
}

// StateSnapshot is one observation of the device state, taken on a watch
// tick. Fields that could not be read are left at their zero values and
// flagged in Missing.
type StateSnapshot struct {
	Timestamp time.Time
	Profile   ProfileSample
	Keyboard  KeyboardSample
	Charge    ChargeSample
	Slash     SlashSample
	Missing   []string
}

// Domain value objects
type ProfileSample struct {
	Active    string
	OnAC      string
	OnBattery string
}

type KeyboardSample struct {
	Brightness string
}

type ChargeSample struct {
	Limit int
}

type SlashSample struct {
	Enabled    bool
	Brightness int
	Interval   int
	Mode       string
}
