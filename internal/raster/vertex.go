package raster

import "solar-renderer/internal/mathutil"

// Vertex carries the per-vertex mesh attributes. ScreenPos and
// WorldNormal are filled by TransformVertex and are meaningful only
// downstream of that stage.
type Vertex struct {
	Position mathutil.Vec3
	Normal   mathutil.Vec3
	TexCoord mathutil.Vec2
	Color    Color

	ScreenPos   mathutil.Vec3
	WorldNormal mathutil.Vec3
}

// TransformVertex maps one object-space vertex to screen space:
// viewport · perspectiveDivide(projection · view · model · position).
// The normal is transformed by the inverse transpose of the model's
// rotation/scale submatrix; when that submatrix is singular the
// identity is used instead (degraded lighting, never a failure).
// Pure, safe to run per vertex in any order.
func TransformVertex(v Vertex, u *Uniforms) Vertex {
	clip := u.Projection.MulVec4(u.View.MulVec4(u.Model.MulVec4(mathutil.Vec3W(v.Position, 1))))
	screen := u.Viewport.MulVec4(clip.PerspectiveDivide())

	normalMat := u.Model.ToMat3().Transpose().Inverse()

	out := v
	out.ScreenPos = screen.XYZ()
	out.WorldNormal = normalMat.MulVec3(v.Normal)
	return out
}
