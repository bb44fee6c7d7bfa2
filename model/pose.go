package model

import (
	"math"

	"go.viam.com/stagesim/geom"
)

// Pose returns the model's local pose (relative to its parent, or to the
// world if it has none).
func (m *Model) Pose() geom.Pose { return m.pose }

// SetPose sets the model's local pose. If the new pose differs from the
// current one, the model and every descendant are unmapped, the new
// heading is normalized, the pose is committed, the subtree is marked
// gpose-dirty, and everything is remapped. ChangePose always fires, even
// when p equals the current pose. A non-finite heading is a programming
// error and panics.
func (m *Model) SetPose(p geom.Pose) {
	if math.IsNaN(p.A) || math.IsInf(p.A, 0) {
		panic("model: SetPose called with a non-finite heading")
	}
	if p != m.pose {
		m.unmapSubtree()
		p.A = geom.Normalize(p.A)
		m.pose = p
		m.markDirtySubtree()
		m.remapSubtree()
	}
	m.fire(ChangePose)
}

// SetGlobalPose sets the model's pose such that GetGlobalPose() returns p
// in X, Y and heading: with no parent this is identical to SetPose;
// otherwise p is converted into the parent's local frame first. The
// parent's size.Z is not subtracted, so under a parent the resulting
// global Z is p.Z plus the parent's size.Z.
func (m *Model) SetGlobalPose(p geom.Pose) {
	if m.parent == nil {
		m.SetPose(p)
		return
	}
	local := geom.GlobalToLocal(m.parent.GetGlobalPose(), p)
	m.SetPose(local)
}

// GetGlobalPose returns the model's pose composed through every ancestor,
// with each ancestor's size.Z stacking children on top of it. The result
// is cached; it is recomputed only when gposeDirty.
func (m *Model) GetGlobalPose() geom.Pose {
	if !m.gposeDirty {
		return m.globalPose
	}
	if m.parent == nil {
		m.globalPose = m.pose
	} else {
		parentGlobal := m.parent.GetGlobalPose()
		composed := geom.PoseSum(parentGlobal, m.pose)
		composed.Z += m.parent.geometry.Size.Z
		m.globalPose = composed
	}
	m.gposeDirty = false
	return m.globalPose
}

// LocalToGlobal transforms p, expressed in this model's own local frame
// (i.e. already inside its body), into world coordinates:
// global_pose (+) geom.offset (+) p.
func (m *Model) LocalToGlobal(p geom.Pose) geom.Pose {
	return geom.PoseSum(geom.PoseSum(m.GetGlobalPose(), m.geometry.Offset), p)
}

// GlobalPoseAfter returns the global pose the model would have if delta
// were composed into its local pose, without mutating any state. World
// uses this to test a prospective move before committing it.
func (m *Model) GlobalPoseAfter(delta geom.Pose) geom.Pose {
	candidate := geom.PoseSum(m.pose, delta)
	if m.parent == nil {
		return candidate
	}
	parentGlobal := m.parent.GetGlobalPose()
	composed := geom.PoseSum(parentGlobal, candidate)
	composed.Z += m.parent.geometry.Size.Z
	return composed
}

// LocalToGlobalFrom transforms p, expressed in this model's local frame,
// using globalPose as the model's global pose instead of its cached one —
// the hypothetical-pose counterpart to LocalToGlobal.
func (m *Model) LocalToGlobalFrom(globalPose, p geom.Pose) geom.Pose {
	return geom.PoseSum(geom.PoseSum(globalPose, m.geometry.Offset), p)
}

func (m *Model) markDirtySubtree() {
	m.gposeDirty = true
	for _, c := range m.children {
		c.markDirtySubtree()
	}
}

func (m *Model) unmapSubtree() {
	for _, b := range m.blocks {
		if b.IsMapped() {
			b.UnMap()
		}
	}
	for _, c := range m.children {
		c.unmapSubtree()
	}
}

func (m *Model) remapSubtree() {
	idx := m.registry.Index()
	for _, b := range m.blocks {
		b.Map(idx)
	}
	for _, c := range m.children {
		c.remapSubtree()
	}
}
