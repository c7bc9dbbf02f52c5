package texture

// Rect is a face rectangle in texture space.
type Rect struct {
	X, Y, W, H int
}

// Faces holds the six box-UV face rectangles of one body part.
type Faces struct {
	Top, Bottom, Right, Front, Left, Back Rect
}

// BoxFaces lays out the box-UV faces for a part with origin (u, v) and
// dimensions width x height x depth.
func BoxFaces(u, v, w, h, d int) Faces {
	return Faces{
		Top:    Rect{u + d, v, w, d},
		Bottom: Rect{u + d + w, v, w, d},
		Right:  Rect{u, v + d, d, h},
		Front:  Rect{u + d, v + d, w, h},
		Left:   Rect{u + d + w, v + d, d, h},
		Back:   Rect{u + d + w + d, v + d, w, h},
	}
}

// ForEach visits the faces in a fixed order with their names.
func (f Faces) ForEach(fn func(name string, r Rect)) {
	fn("top", f.Top)
	fn("bottom", f.Bottom)
	fn("right", f.Right)
	fn("front", f.Front)
	fn("left", f.Left)
	fn("back", f.Back)
}

// SkinLayout is the 64x64 entity skin UV map.
type SkinLayout struct {
	Head, Body, RArm, RLeg, LArm, LLeg Faces
}

// SkinUV is the standard 64x64 humanoid layout.
var SkinUV = SkinLayout{
	Head: BoxFaces(0, 0, 8, 8, 8),
	Body: BoxFaces(16, 16, 8, 12, 4),
	RArm: BoxFaces(40, 16, 4, 12, 4),
	RLeg: BoxFaces(0, 16, 4, 12, 4),
	LArm: BoxFaces(32, 48, 4, 12, 4),
	LLeg: BoxFaces(16, 48, 4, 12, 4),
}

// Parts returns every body part.
func (l SkinLayout) Parts() []Faces {
	return []Faces{l.Head, l.Body, l.RArm, l.RLeg, l.LArm, l.LLeg}
}

// Arms returns the two arm parts.
func (l SkinLayout) Arms() []Faces {
	return []Faces{l.RArm, l.LArm}
}

// Legs returns the two leg parts.
func (l SkinLayout) Legs() []Faces {
	return []Faces{l.RLeg, l.LLeg}
}

// Armor model textures (64x32) reuse the skin top-half UVs; left limbs
// mirror right.
var (
	armorHeadUV = BoxFaces(0, 0, 8, 8, 8)
	armorBodyUV = BoxFaces(16, 16, 8, 12, 4)
	armorArmUV  = BoxFaces(40, 16, 4, 12, 4)
	armorLegUV  = BoxFaces(0, 16, 4, 12, 4)
)
