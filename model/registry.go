// Package model implements the Model node: a tree element with
// local/global pose composition, dirty-propagation caching, an owned set
// of blocks, visibility attributes, and a typed change-callback registry.
package model

import "go.viam.com/stagesim/spatialidx"

// Registry is the minimal view of a *world.World a Model needs. It exists
// so this package never imports world (which imports model), breaking
// what would otherwise be an import cycle: the concrete implementation is
// *world.World, handed to New as this interface.
type Registry interface {
	// Index is the spatial index blocks rasterize into.
	Index() *spatialidx.Index
	// SimTime is the world's current simulated clock, in microseconds.
	SimTime() int64
	// OnVelocityChanged is called after every SetVelocity, so the world
	// can keep a model on its velocity list iff any component is nonzero.
	OnVelocityChanged(m *Model)
	// OnSubscribe/OnUnsubscribe fire exactly on the 0->1 and 1->0
	// subscriber-count transitions, so the world can keep its update list
	// exactly matching the set of models with at least one subscriber.
	OnSubscribe(m *Model)
	OnUnsubscribe(m *Model)
}
