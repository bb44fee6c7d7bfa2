package model

// Trail returns the model's recorded pose history. Callers must not
// mutate the returned slice.
func (m *Model) Trail() []TrailEntry { return m.trail }

// ClearTrail discards all recorded trail entries.
func (m *Model) ClearTrail() { m.trail = nil }

// RecordTrailTick is called by the world's UpdatePose once per tick for
// every model on the velocity list. It checkpoints the model's current global pose every
// TrailSamplePeriod ticks, dropping the oldest entry once the trail would
// exceed MaxTrailLength.
func (m *Model) RecordTrailTick(simTime int64) {
	m.tickCount++
	if m.tickCount%TrailSamplePeriod != 0 {
		return
	}
	m.trail = append(m.trail, TrailEntry{
		Pose:  m.GetGlobalPose(),
		Color: m.color,
		Time:  simTime,
	})
	if len(m.trail) > MaxTrailLength {
		m.trail = m.trail[len(m.trail)-MaxTrailLength:]
	}
}
