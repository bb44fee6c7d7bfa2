// Package world owns the model tree, the spatial index, and the
// per-tick kinematic update loop: it is the outermost core component, the
// concrete implementation of model.Registry, and the entry point for
// running a simulation headlessly or under a driving CLI.
package world

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"go.viam.com/stagesim/logging"
	"go.viam.com/stagesim/model"
	"go.viam.com/stagesim/spatialidx"
)

// World owns every model, the spatial index they rasterize into, and the
// simulated clock.
type World struct {
	id     uuid.UUID
	logger *logging.Logger

	index       *spatialidx.Index
	simTime     int64
	intervalSim int64

	modelsByID    map[int]*model.Model
	modelsByToken map[string]*model.Model
	nextModelID   int

	velocityList []*model.Model
	velocitySet  map[int]bool

	updateList []*model.Model
	updateSet  map[int]bool
}

// New constructs an empty world: a spatial index at ppm pixels/meter and a
// tick interval of intervalUS microseconds.
func New(ppm float64, intervalUS int64, logger *logging.Logger) *World {
	if logger == nil {
		logger = logging.New("world", logging.INFO)
	}
	return &World{
		id:            uuid.New(),
		logger:        logger,
		index:         spatialidx.New(ppm),
		intervalSim:   intervalUS,
		modelsByID:    make(map[int]*model.Model),
		modelsByToken: make(map[string]*model.Model),
		nextModelID:   1,
		velocitySet:   make(map[int]bool),
		updateSet:     make(map[int]bool),
	}
}

// ID is this world instance's process-independent identity.
func (w *World) ID() uuid.UUID { return w.id }

// SimTime returns the world's current simulated clock, in microseconds.
// Implements model.Registry.
func (w *World) SimTime() int64 { return w.simTime }

// IntervalSim returns the per-tick simulated duration, in microseconds.
func (w *World) IntervalSim() int64 { return w.intervalSim }

// Index returns the spatial index every block rasterizes into. Implements
// model.Registry.
func (w *World) Index() *spatialidx.Index { return w.index }

// AddModel constructs a new model owned by this world, assigns it the
// next available id, and registers it by id and by token.
func (w *World) AddModel(cfg model.Config) (*model.Model, error) {
	id := w.nextModelID
	token := cfg.Kind
	if cfg.Parent != nil {
		token = cfg.Parent.Token() + "." + cfg.Kind
	}
	if _, exists := w.modelsByToken[token]; exists {
		return nil, errors.Errorf("world: duplicate model token %q", token)
	}
	m := model.New(id, cfg, w)
	w.nextModelID++
	w.modelsByID[id] = m
	w.modelsByToken[token] = m
	w.logger.Infow("model added", "id", id, "token", token)
	return m, nil
}

// RemoveModel unregisters m. m must have no children; removing an
// interior tree node is a programming error and panics, matching the
// module's fail-fast handling of broken tree invariants.
func (w *World) RemoveModel(m *model.Model) {
	if len(m.Children()) > 0 {
		panic("world: RemoveModel called on a model with children")
	}
	m.ClearBlocks()
	if parent := m.Parent(); parent != nil {
		parent.RemoveChild(m)
	}
	delete(w.modelsByID, m.ID())
	delete(w.modelsByToken, m.Token())
	w.removeFromVelocityList(m)
	w.removeFromUpdateList(m)
	w.logger.Infow("model removed", "id", m.ID(), "token", m.Token())
}

// Model looks up a model by id.
func (w *World) Model(id int) (*model.Model, bool) {
	m, ok := w.modelsByID[id]
	return m, ok
}

// ModelByToken looks up a model by its dotted token.
func (w *World) ModelByToken(token string) (*model.Model, bool) {
	m, ok := w.modelsByToken[token]
	return m, ok
}

// Models returns every model currently registered, in no particular
// order. Callers must not mutate the returned slice.
func (w *World) Models() []*model.Model {
	out := make([]*model.Model, 0, len(w.modelsByID))
	for _, m := range w.modelsByID {
		out = append(out, m)
	}
	return out
}
