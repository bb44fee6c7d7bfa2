package model

import "math"

// neverUpdated is the lastUpdate value of a model whose UpdateIfDue has not
// fired since construction or since its latest 0->1 subscription.
const neverUpdated = math.MinInt64

// Subscribe increments the model's subscriber count. On the 0->1
// transition the model's driver (if any) is started and the registry is
// told to add the model to its update list.
func (m *Model) Subscribe() {
	m.subscribers++
	if m.subscribers == 1 {
		m.lastUpdate = neverUpdated
		if m.driver != nil {
			m.driver.Startup(m)
		}
		m.fire(ChangeStartup)
		if m.registry != nil {
			m.registry.OnSubscribe(m)
		}
	}
}

// Unsubscribe decrements the model's subscriber count. On the 1->0
// transition the model's driver (if any) is stopped and the registry is
// told to drop the model from its update list. Unsubscribe below zero is
// a programming error and panics.
func (m *Model) Unsubscribe() {
	if m.subscribers == 0 {
		panic("model: Unsubscribe called with no active subscribers")
	}
	m.subscribers--
	if m.subscribers == 0 {
		if m.driver != nil {
			m.driver.Shutdown(m)
		}
		m.fire(ChangeShutdown)
		if m.registry != nil {
			m.registry.OnUnsubscribe(m)
		}
	}
}

// SubscriberCount returns the model's current subscriber count.
func (m *Model) SubscriberCount() int { return m.subscribers }

// UpdateInterval returns the minimum number of microseconds between
// successive Update calls.
func (m *Model) UpdateInterval() int64 { return m.interval }

// SetUpdateInterval overrides the default update interval.
func (m *Model) SetUpdateInterval(us int64) { m.interval = us }

// UpdateIfDue calls Update if at least UpdateInterval microseconds have
// elapsed since the last call (or this is the first call since
// subscription), and records the registry's current sim time as the new
// baseline. It is a no-op when the model has no driver and no update
// callback registered.
func (m *Model) UpdateIfDue() {
	now := m.registry.SimTime()
	if m.lastUpdate != neverUpdated && now-m.lastUpdate < m.interval {
		return
	}
	m.lastUpdate = now
	m.Update()
}

// Update invokes the model's driver (if any) and fires ChangeUpdate,
// regardless of timing. World calls UpdateIfDue on every ticked model
// each tick; Update exists as the unconditional primitive underneath it.
func (m *Model) Update() {
	if m.driver != nil {
		m.driver.Update(m)
	}
	m.fire(ChangeUpdate)
}
