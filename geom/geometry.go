package geom

// Size is the (x, y, z) extent of a model's body.
type Size struct {
	X, Y, Z float64
}

// Geometry is a model's body size plus the intrinsic offset pose of the
// body center relative to the model's own pose origin.
type Geometry struct {
	Size   Size
	Offset Pose
}

// Color is an RGBA color, 0-255 per channel, used for block/model
// appearance and trail samples.
type Color struct {
	R, G, B, A uint8
}

// VisibilityReturn is the strength with which a sensor modality perceives a
// model: invisible, a normal return, or a bright (high-reflectivity) one.
type VisibilityReturn int8

const (
	Invisible VisibilityReturn = iota
	Visible
	Bright
)

func (v VisibilityReturn) String() string {
	switch v {
	case Invisible:
		return "invisible"
	case Visible:
		return "visible"
	case Bright:
		return "bright"
	default:
		return "unknown"
	}
}
