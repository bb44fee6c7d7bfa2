package model

import (
	"go.viam.com/stagesim/block"
	"go.viam.com/stagesim/geom"
)

// DefaultUpdateInterval is how often UpdateIfDue fires Update, in
// microseconds, unless overridden with SetUpdateInterval.
const DefaultUpdateInterval = 10_000 // 10ms

// TrailEntry is one sample in a model's bounded trail ring buffer.
type TrailEntry struct {
	Pose  geom.Pose
	Color geom.Color
	Time  int64 // world sim_time, microseconds
}

// MaxTrailLength bounds Model.trail; the oldest entry is dropped once the
// trail would exceed this length.
const MaxTrailLength = 100

// TrailSamplePeriod is how many ticks elapse between trail checkpoints.
const TrailSamplePeriod = 10

// Driver supplies per-subtype behavior as a tagged variant: Kind is the
// tag, Driver is the function table standing in for what would otherwise
// be virtual dispatch. A nil Driver is a pure obstacle body with no
// custom startup/shutdown/update behavior.
type Driver interface {
	Startup(m *Model)
	Shutdown(m *Model)
	Update(m *Model)
}

// Model is a node in the scene tree: identity, tree links, kinematic
// state, owned blocks, visibility attributes, and lifecycle.
type Model struct {
	id    int
	token string
	kind  string

	parent   *Model
	children []*Model

	pose       geom.Pose
	globalPose geom.Pose
	gposeDirty bool

	velocity geom.Velocity
	stall    bool

	geometry    geom.Geometry
	blocks      []*block.Block
	needsRedraw bool

	obstacleReturn geom.VisibilityReturn
	rangerReturn   geom.VisibilityReturn
	blobReturn     geom.VisibilityReturn
	laserReturn    geom.VisibilityReturn
	gripperReturn  bool
	fiducialReturn int
	fiducialKey    int

	color         geom.Color
	mapResolution float64

	subscribers int
	driver      Driver

	lastUpdate int64
	interval   int64

	trail     []TrailEntry
	tickCount int64

	callbacks   map[ChangeKey][]callbackEntry
	callbackSeq int64

	registry Registry
}

// Config bundles the construction-time parameters for New.
type Config struct {
	Kind     string
	Parent   *Model
	Geometry geom.Geometry
	Driver   Driver
}

// New constructs a model with the given id (assigned by the owning
// world), wires it into parent's children if parent is non-nil, and keeps
// registry as its link to the owning world (New itself makes no registry
// call; the world records the model by id and token). The token is parent.Token + "." + kind if
// parent is non-nil, else just kind.
func New(id int, cfg Config, registry Registry) *Model {
	token := cfg.Kind
	if cfg.Parent != nil {
		token = cfg.Parent.token + "." + cfg.Kind
	}
	m := &Model{
		id:            id,
		token:         token,
		kind:          cfg.Kind,
		parent:        cfg.Parent,
		geometry:      cfg.Geometry,
		gposeDirty:    true,
		interval:      DefaultUpdateInterval,
		lastUpdate:    neverUpdated,
		driver:        cfg.Driver,
		callbacks:     make(map[ChangeKey][]callbackEntry),
		registry:      registry,
		mapResolution: 1,
	}
	if cfg.Parent != nil {
		cfg.Parent.children = append(cfg.Parent.children, m)
	}
	return m
}

// ID returns the model's unique integer id.
func (m *Model) ID() int { return m.id }

// Token returns the model's stable token string.
func (m *Model) Token() string { return m.token }

// Kind returns the dispatch tag set at construction.
func (m *Model) Kind() string { return m.kind }

// Parent returns the model's parent, or nil if it is a root model.
func (m *Model) Parent() *Model { return m.parent }

// Children returns the model's direct children. Callers must not mutate
// the returned slice.
func (m *Model) Children() []*Model { return m.children }

// Blocks returns the model's owned blocks. Callers must not mutate the
// returned slice.
func (m *Model) Blocks() []*block.Block { return m.blocks }

// Stall reports whether the last UpdatePose was blocked by a collision.
func (m *Model) Stall() bool { return m.stall }

// SetStall sets the stall flag and fires ChangeStall.
func (m *Model) SetStall(v bool) {
	m.stall = v
	m.fire(ChangeStall)
}

// Color returns the model's appearance color.
func (m *Model) Color() geom.Color { return m.color }

// SetColor assigns the model's color and fires ChangeColor.
func (m *Model) SetColor(c geom.Color) {
	m.color = c
	m.fire(ChangeColor)
}

// MapResolution returns the model's map_resolution attribute
// (meters/pixel), used by coarse-resolution sensor models built on top of
// the core.
func (m *Model) MapResolution() float64 { return m.mapResolution }

// SetMapResolution assigns the model's map_resolution and fires
// ChangeMapResolution.
func (m *Model) SetMapResolution(r float64) {
	m.mapResolution = r
	m.fire(ChangeMapResolution)
}

// Geometry returns the model's current size and body offset.
func (m *Model) Geometry() geom.Geometry { return m.geometry }

// NeedsRedraw reports whether the body has changed since the last draw
// (visual bookkeeping only; the core never clears it itself).
func (m *Model) NeedsRedraw() bool { return m.needsRedraw }

// ClearRedraw clears the needs-redraw flag; a renderer calls this after
// drawing.
func (m *Model) ClearRedraw() { m.needsRedraw = false }
