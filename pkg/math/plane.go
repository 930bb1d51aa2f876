package math

// Plane is a half-space plane equation. A point p is on the visible side
// iff Normal.Dot(p) + Constant >= 0.
type Plane struct {
	Normal   Vec3
	Constant float32
}

// PlaneFromPointNormal builds the plane through point p with the given
// (unit) normal.
func PlaneFromPointNormal(p, normal Vec3) Plane {
	return Plane{Normal: normal, Constant: -normal.Dot(p)}
}

// DistanceTo returns the signed distance from point p to the plane.
// Positive means the visible side.
func (pl Plane) DistanceTo(p Vec3) float32 {
	return pl.Normal.Dot(p) + pl.Constant
}
