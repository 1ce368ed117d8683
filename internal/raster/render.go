package raster

// Render draws one vertex buffer through the full pipeline: vertex
// transform, primitive assembly, rasterization, fragment shading and
// depth-tested framebuffer writes. One call per drawable per frame;
// the Uniforms bundle is only read.
func Render(fb *Framebuffer, u *Uniforms, verts []Vertex, lc *LightConfig, shader Shader) {
	if lc == nil {
		def := DefaultLightConfig()
		lc = &def
	}

	transformed := make([]Vertex, len(verts))
	for i := range verts {
		transformed[i] = TransformVertex(verts[i], u)
	}

	tris := AssembleTriangles(transformed)

	var frags []Fragment
	for i := range tris {
		frags = RasterizeTriangle(&tris[i][0], &tris[i][1], &tris[i][2], lc, fb.Width, fb.Height, frags[:0])
		for j := range frags {
			c := shader.Shade(&frags[j], u)
			fb.Point(frags[j].X, frags[j].Y, frags[j].Depth, c)
		}
	}
}
