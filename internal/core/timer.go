package core

import "time"

// FPS meter tuning: exponential smoothing factor and the ceiling applied to
// delta spikes (window focus loss, debugger pauses) so one slow frame does
// not crater the displayed rate.
const (
	fpsSmoothing = 0.15
	maxFrameMs   = 1000.0
)

// FPSMeter tracks a smoothed frames-per-second estimate across Tick calls.
type FPSMeter struct {
	last time.Time
	fps  float64
}

// NewFPSMeter constructs a meter; the first Tick establishes the baseline.
func NewFPSMeter() *FPSMeter {
	return &FPSMeter{}
}

// Tick records a frame boundary and updates the smoothed estimate.
func (m *FPSMeter) Tick() {
	now := time.Now()
	if m.last.IsZero() {
		m.last = now
		return
	}
	deltaMs := float64(now.Sub(m.last)) / float64(time.Millisecond)
	m.last = now
	if deltaMs <= 0 {
		return
	}
	if deltaMs > maxFrameMs {
		deltaMs = maxFrameMs
	}
	instant := 1000.0 / deltaMs
	if m.fps == 0 {
		m.fps = instant
		return
	}
	m.fps += fpsSmoothing * (instant - m.fps)
}

// FPS returns the current smoothed frames-per-second value.
func (m *FPSMeter) FPS() float64 { return m.fps }
