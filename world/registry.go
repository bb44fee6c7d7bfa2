package world

import "go.viam.com/stagesim/model"

// OnVelocityChanged implements model.Registry: it keeps the velocity list
// exactly matching the set of models with at least one nonzero velocity
// component.
func (w *World) OnVelocityChanged(m *model.Model) {
	nonzero := !m.Velocity().IsZero()
	onList := w.velocitySet[m.ID()]
	switch {
	case nonzero && !onList:
		w.velocitySet[m.ID()] = true
		w.velocityList = append(w.velocityList, m)
	case !nonzero && onList:
		w.removeFromVelocityList(m)
	}
}

// OnSubscribe implements model.Registry: called exactly on a model's 0->1
// subscriber transition, adding it to the update list.
func (w *World) OnSubscribe(m *model.Model) {
	if w.updateSet[m.ID()] {
		return
	}
	w.updateSet[m.ID()] = true
	w.updateList = append(w.updateList, m)
}

// OnUnsubscribe implements model.Registry: called exactly on a model's
// 1->0 subscriber transition, removing it from the update list.
func (w *World) OnUnsubscribe(m *model.Model) {
	w.removeFromUpdateList(m)
}

func (w *World) removeFromVelocityList(m *model.Model) {
	if !w.velocitySet[m.ID()] {
		return
	}
	delete(w.velocitySet, m.ID())
	w.velocityList = removeModel(w.velocityList, m)
}

func (w *World) removeFromUpdateList(m *model.Model) {
	if !w.updateSet[m.ID()] {
		return
	}
	delete(w.updateSet, m.ID())
	w.updateList = removeModel(w.updateList, m)
}

func removeModel(list []*model.Model, m *model.Model) []*model.Model {
	for i, existing := range list {
		if existing == m {
			return append(list[:i], list[i+1:]...)
		}
	}
	return list
}
