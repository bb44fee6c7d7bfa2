package model

// ChangeKey enumerates every attribute whose mutation fires a callback,
// in place of keying callbacks by the address of the changing attribute.
type ChangeKey int

const (
	ChangePose ChangeKey = iota
	ChangeVelocity
	ChangeColor
	ChangeGeom
	ChangeStall
	ChangeStartup
	ChangeShutdown
	ChangeUpdate
	ChangeObstacleReturn
	ChangeRangerReturn
	ChangeBlobReturn
	ChangeLaserReturn
	ChangeGripperReturn
	ChangeFiducialReturn
	ChangeFiducialKey
	// ChangeParent is carried for API completeness but never fired: a
	// model's parent is fixed at construction (see Config.Parent in
	// model.go) and this module has no reparenting operation. See
	// DESIGN.md for why it's kept unused rather than dropped.
	ChangeParent
	ChangeMapResolution
)

// Callback receives the model that changed and the userData supplied at
// registration; it never receives the raw attribute value.
type Callback func(m *Model, userData interface{})

// CallbackHandle identifies a single registration, for RemoveCallback.
type CallbackHandle struct {
	key ChangeKey
	seq int64
}

type callbackEntry struct {
	seq      int64
	fn       Callback
	userData interface{}
}

// OnChange registers fn to run whenever the attribute identified by key
// changes, and returns a handle that can later be passed to
// RemoveCallback.
func (m *Model) OnChange(key ChangeKey, fn Callback, userData interface{}) CallbackHandle {
	m.callbackSeq++
	seq := m.callbackSeq
	m.callbacks[key] = append(m.callbacks[key], callbackEntry{seq: seq, fn: fn, userData: userData})
	return CallbackHandle{key: key, seq: seq}
}

// RemoveCallback deregisters a callback previously returned by OnChange.
func (m *Model) RemoveCallback(h CallbackHandle) {
	entries := m.callbacks[h.key]
	for i, e := range entries {
		if e.seq == h.seq {
			m.callbacks[h.key] = append(entries[:i], entries[i+1:]...)
			return
		}
	}
}

func (m *Model) fire(key ChangeKey) {
	for _, e := range m.callbacks[key] {
		e.fn(m, e.userData)
	}
}
