package model

import (
	"math"
	"testing"

	"go.viam.com/test"

	"go.viam.com/stagesim/geom"
)

func TestNewAssignsTokensByParentage(t *testing.T) {
	reg := newFakeRegistry()
	root := New(1, Config{Kind: "world"}, reg)
	test.That(t, root.Token(), test.ShouldEqual, "world")

	child := New(2, Config{Kind: "robot", Parent: root}, reg)
	test.That(t, child.Token(), test.ShouldEqual, "world.robot")
	test.That(t, child.Parent(), test.ShouldEqual, root)
	test.That(t, root.Children(), test.ShouldResemble, []*Model{child})
}

func TestTreeRelations(t *testing.T) {
	reg := newFakeRegistry()
	root := New(1, Config{Kind: "world"}, reg)
	child := New(2, Config{Kind: "robot", Parent: root}, reg)
	grandchild := New(3, Config{Kind: "wheel", Parent: child}, reg)
	other := New(4, Config{Kind: "robot", Parent: root}, reg)

	test.That(t, root.IsAntecedent(grandchild), test.ShouldBeTrue)
	test.That(t, grandchild.IsAntecedent(root), test.ShouldBeFalse)
	test.That(t, grandchild.IsDescendent(root), test.ShouldBeTrue)
	test.That(t, root.IsAntecedent(root), test.ShouldBeFalse)
	// other and grandchild aren't ancestor/descendant of each other, but
	// both descend from root, so they share a root and are related.
	test.That(t, other.IsRelated(grandchild), test.ShouldBeTrue)
	test.That(t, child.IsRelated(grandchild), test.ShouldBeTrue)
	test.That(t, grandchild.IsRelated(grandchild), test.ShouldBeTrue)

	unrelatedRoot := New(5, Config{Kind: "world"}, reg)
	test.That(t, unrelatedRoot.IsRelated(grandchild), test.ShouldBeFalse)
}

func TestSetPoseFiresChangePoseEvenWhenUnchanged(t *testing.T) {
	reg := newFakeRegistry()
	m := New(1, Config{Kind: "robot"}, reg)

	fires := 0
	m.OnChange(ChangePose, func(m *Model, userData interface{}) { fires++ }, nil)

	m.SetPose(geom.Pose{})
	test.That(t, fires, test.ShouldEqual, 1)

	m.SetPose(geom.Pose{})
	test.That(t, fires, test.ShouldEqual, 2)
}

func TestGetGlobalPoseComposesThroughAncestorsWithZStack(t *testing.T) {
	reg := newFakeRegistry()
	root := New(1, Config{
		Kind:     "world",
		Geometry: geom.Geometry{Size: geom.Size{Z: 0.2}},
	}, reg)
	root.SetPose(geom.Pose{X: 1, Y: 0, A: math.Pi / 2})

	child := New(2, Config{Kind: "robot", Parent: root}, reg)
	child.SetPose(geom.Pose{X: 1, Y: 0, A: 0})

	got := child.GetGlobalPose()
	test.That(t, got.X, test.ShouldAlmostEqual, 1.0, 1e-9)
	test.That(t, got.Y, test.ShouldAlmostEqual, 1.0, 1e-9)
	test.That(t, got.Z, test.ShouldAlmostEqual, 0.2, 1e-9)

	cached := child.GetGlobalPose()
	test.That(t, cached, test.ShouldResemble, got)
}

func TestSetGlobalPoseRoundTrips(t *testing.T) {
	reg := newFakeRegistry()
	root := New(1, Config{Kind: "world"}, reg)
	root.SetPose(geom.Pose{X: 5, Y: 5, A: math.Pi})

	child := New(2, Config{Kind: "robot", Parent: root}, reg)
	want := geom.Pose{X: 10, Y: 10, A: 0}
	child.SetGlobalPose(want)

	got := child.GetGlobalPose()
	test.That(t, got.X, test.ShouldAlmostEqual, want.X, 1e-9)
	test.That(t, got.Y, test.ShouldAlmostEqual, want.Y, 1e-9)
}

func TestAddBlockMapsImmediately(t *testing.T) {
	reg := newFakeRegistry()
	m := New(1, Config{Kind: "robot"}, reg)

	pts := square(0, 0, 0.5)
	b, err := m.AddBlock(pts, 0, 1, geom.Color{}, false)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, b.IsMapped(), test.ShouldBeTrue)

	m.SetPose(geom.Pose{X: 1})
	test.That(t, b.IsMapped(), test.ShouldBeTrue)

	b2, err := m.AddBlock(pts, 0, 1, geom.Color{}, false)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, b2.IsMapped(), test.ShouldBeTrue)
}

func TestSubscribeUnsubscribeCounting(t *testing.T) {
	reg := newFakeRegistry()
	m := New(1, Config{Kind: "robot"}, reg)
	driver := &fakeDriver{}
	m.driver = driver

	m.Subscribe()
	m.Subscribe()
	test.That(t, m.SubscriberCount(), test.ShouldEqual, 2)
	test.That(t, driver.startups, test.ShouldEqual, 1)
	test.That(t, reg.subscribed[m.ID()], test.ShouldBeTrue)

	m.Unsubscribe()
	test.That(t, driver.shutdowns, test.ShouldEqual, 0)
	m.Unsubscribe()
	test.That(t, driver.shutdowns, test.ShouldEqual, 1)
	test.That(t, reg.subscribed[m.ID()], test.ShouldBeFalse)
}

func TestUnsubscribeWithoutSubscribersPanics(t *testing.T) {
	reg := newFakeRegistry()
	m := New(1, Config{Kind: "robot"}, reg)
	assertPanics(t, m.Unsubscribe)
}

func TestUpdateIfDueRespectsInterval(t *testing.T) {
	reg := newFakeRegistry()
	m := New(1, Config{Kind: "robot"}, reg)
	driver := &fakeDriver{}
	m.driver = driver
	m.SetUpdateInterval(1000)

	reg.simTime = 0
	m.UpdateIfDue()
	test.That(t, driver.updates, test.ShouldEqual, 1)

	reg.simTime = 500
	m.UpdateIfDue()
	test.That(t, driver.updates, test.ShouldEqual, 1)

	reg.simTime = 1000
	m.UpdateIfDue()
	test.That(t, driver.updates, test.ShouldEqual, 2)
}

func TestRemoveCallbackStopsFiring(t *testing.T) {
	reg := newFakeRegistry()
	m := New(1, Config{Kind: "robot"}, reg)

	fires := 0
	h := m.OnChange(ChangeColor, func(m *Model, userData interface{}) { fires++ }, nil)
	m.SetColor(geom.Color{R: 1})
	test.That(t, fires, test.ShouldEqual, 1)

	m.RemoveCallback(h)
	m.SetColor(geom.Color{R: 2})
	test.That(t, fires, test.ShouldEqual, 1)
}

func TestRecordTrailTickSamplesAndBounds(t *testing.T) {
	reg := newFakeRegistry()
	m := New(1, Config{Kind: "robot"}, reg)

	for i := int64(0); i < int64(TrailSamplePeriod)*int64(MaxTrailLength+5); i++ {
		m.RecordTrailTick(i)
	}
	test.That(t, len(m.Trail()), test.ShouldEqual, MaxTrailLength)
}

func TestSetVelocityNotifiesRegistry(t *testing.T) {
	reg := newFakeRegistry()
	m := New(7, Config{Kind: "robot"}, reg)
	m.SetVelocity(geom.Velocity{X: 1})
	test.That(t, reg.velChanges, test.ShouldResemble, []int{7})
}

func TestVisibilitySettersFireMatchingCallback(t *testing.T) {
	reg := newFakeRegistry()
	m := New(1, Config{Kind: "robot"}, reg)

	var fired ChangeKey
	m.OnChange(ChangeObstacleReturn, func(m *Model, userData interface{}) { fired = ChangeObstacleReturn }, nil)
	m.SetObstacleReturn(geom.Bright)
	test.That(t, fired, test.ShouldEqual, ChangeObstacleReturn)
	test.That(t, m.ObstacleReturn(), test.ShouldEqual, geom.Bright)

	m.SetFiducialReturn(42)
	test.That(t, m.FiducialReturn(), test.ShouldEqual, 42)
	m.SetFiducialKey(3)
	test.That(t, m.FiducialKey(), test.ShouldEqual, 3)
	m.SetGripperReturn(true)
	test.That(t, m.GripperReturn(), test.ShouldBeTrue)
}
