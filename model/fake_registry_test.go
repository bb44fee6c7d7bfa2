package model

import (
	"testing"

	"github.com/golang/geo/r3"

	"go.viam.com/stagesim/spatialidx"
)

func square(cx, cy, half float64) []r3.Vector {
	return []r3.Vector{
		{X: cx - half, Y: cy - half},
		{X: cx + half, Y: cy - half},
		{X: cx + half, Y: cy + half},
		{X: cx - half, Y: cy + half},
	}
}

func assertPanics(t *testing.T, f func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic, got none")
		}
	}()
	f()
}

// fakeRegistry is a minimal Registry for model-package unit tests: it
// records subscribe/velocity-change notifications instead of maintaining
// real world-level lists.
type fakeRegistry struct {
	idx        *spatialidx.Index
	simTime    int64
	subscribed map[int]bool
	velChanges []int
}

func newFakeRegistry() *fakeRegistry {
	return &fakeRegistry{
		idx:        spatialidx.New(1),
		subscribed: make(map[int]bool),
	}
}

func (r *fakeRegistry) Index() *spatialidx.Index { return r.idx }
func (r *fakeRegistry) SimTime() int64           { return r.simTime }

func (r *fakeRegistry) OnVelocityChanged(m *Model) {
	r.velChanges = append(r.velChanges, m.ID())
}

func (r *fakeRegistry) OnSubscribe(m *Model)   { r.subscribed[m.ID()] = true }
func (r *fakeRegistry) OnUnsubscribe(m *Model) { delete(r.subscribed, m.ID()) }

type fakeDriver struct {
	startups  int
	shutdowns int
	updates   int
}

func (d *fakeDriver) Startup(m *Model)  { d.startups++ }
func (d *fakeDriver) Shutdown(m *Model) { d.shutdowns++ }
func (d *fakeDriver) Update(m *Model)   { d.updates++ }
