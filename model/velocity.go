package model

import "go.viam.com/stagesim/geom"

// Velocity returns the model's current velocity.
func (m *Model) Velocity() geom.Velocity { return m.velocity }

// SetVelocity assigns the model's velocity and notifies the registry so
// it can maintain the world's velocity list: a model belongs on that list
// iff at least one velocity component is nonzero.
func (m *Model) SetVelocity(v geom.Velocity) {
	m.velocity = v
	m.fire(ChangeVelocity)
	if m.registry != nil {
		m.registry.OnVelocityChanged(m)
	}
}
