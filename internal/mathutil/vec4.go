package mathutil

// Vec4 is a 4-component homogeneous vector.
type Vec4 [4]float64

// Vec3W extends a 3D vector with a w component.
func Vec3W(v Vec3, w float64) Vec4 {
	return Vec4{v[0], v[1], v[2], w}
}

// XYZ drops the w component.
func (v Vec4) XYZ() Vec3 {
	return Vec3{v[0], v[1], v[2]}
}

// PerspectiveDivide divides x, y, z by w. No guard against w == 0:
// a vertex behind the eye yields undefined coordinates and is caught
// later by the rasterizer's area and bounds checks.
func (v Vec4) PerspectiveDivide() Vec4 {
	return Vec4{v[0] / v[3], v[1] / v[3], v[2] / v[3], 1}
}
