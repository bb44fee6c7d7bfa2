package model

import "go.viam.com/stagesim/geom"

// ObstacleReturn returns the obstacle visibility attribute. The world's
// collision test treats any value other than Invisible as blocking motion;
// raytraces consult it only through the caller's predicate.
func (m *Model) ObstacleReturn() geom.VisibilityReturn { return m.obstacleReturn }

// SetObstacleReturn assigns the obstacle visibility attribute.
func (m *Model) SetObstacleReturn(v geom.VisibilityReturn) {
	m.obstacleReturn = v
	m.fire(ChangeObstacleReturn)
}

// RangerReturn reports how ranger sensors perceive this model.
func (m *Model) RangerReturn() geom.VisibilityReturn { return m.rangerReturn }

// SetRangerReturn assigns the ranger visibility attribute.
func (m *Model) SetRangerReturn(v geom.VisibilityReturn) {
	m.rangerReturn = v
	m.fire(ChangeRangerReturn)
}

// BlobReturn reports how blob-finder sensors perceive this model.
func (m *Model) BlobReturn() geom.VisibilityReturn { return m.blobReturn }

// SetBlobReturn assigns the blob visibility attribute.
func (m *Model) SetBlobReturn(v geom.VisibilityReturn) {
	m.blobReturn = v
	m.fire(ChangeBlobReturn)
}

// LaserReturn reports how laser range-finders perceive this model.
func (m *Model) LaserReturn() geom.VisibilityReturn { return m.laserReturn }

// SetLaserReturn assigns the laser visibility attribute.
func (m *Model) SetLaserReturn(v geom.VisibilityReturn) {
	m.laserReturn = v
	m.fire(ChangeLaserReturn)
}

// GripperReturn reports whether this model is grippable. No momentum
// transfer is implemented when it is gripped or pushed; this attribute is
// preserved for downstream gripper sensors/controllers.
// TODO: implement push dynamics if a downstream consumer needs them.
func (m *Model) GripperReturn() bool { return m.gripperReturn }

// SetGripperReturn assigns the gripper visibility attribute.
func (m *Model) SetGripperReturn(v bool) {
	m.gripperReturn = v
	m.fire(ChangeGripperReturn)
}

// FiducialReturn returns the model's fiducial id; 0 means "not a
// fiducial".
func (m *Model) FiducialReturn() int { return m.fiducialReturn }

// SetFiducialReturn assigns the model's fiducial id.
func (m *Model) SetFiducialReturn(id int) {
	m.fiducialReturn = id
	m.fire(ChangeFiducialReturn)
}

// FiducialKey returns the model's fiducial key (sub-identity within a
// fiducial id, e.g. distinguishing front/back markers).
func (m *Model) FiducialKey() int { return m.fiducialKey }

// SetFiducialKey assigns the model's fiducial key.
func (m *Model) SetFiducialKey(k int) {
	m.fiducialKey = k
	m.fire(ChangeFiducialKey)
}
