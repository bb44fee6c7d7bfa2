package world

import (
	"go.viam.com/stagesim/geom"
	"go.viam.com/stagesim/model"
)

// UpdatePose advances one velocity-listed model by one tick: it
// checkpoints the trail, computes the pose delta implied by the model's
// velocity over one tick, tests it for collision, and either commits the
// move or sets stall.
func (w *World) UpdatePose(m *model.Model) {
	m.RecordTrailTick(w.simTime)

	dtSeconds := float64(w.intervalSim) / 1e6
	delta := m.Velocity().Scale(dtSeconds)

	if hit := w.TestCollision(m, delta); hit != nil {
		m.SetStall(true)
		return
	}
	m.SetStall(false)
	m.SetPose(geom.PoseSum(m.Pose(), delta))
}

// Tick advances sim_time by one interval, then updates every
// velocity-listed model's pose and runs UpdateIfDue on every
// update-listed model, in insertion order.
func (w *World) Tick() {
	w.simTime += w.intervalSim
	for _, m := range w.velocityList {
		w.UpdatePose(m)
	}
	for _, m := range w.updateList {
		m.UpdateIfDue()
	}
}
