package raster

// AssembleTriangles groups every three consecutive transformed
// vertices into one triangle (indices 0–2, 3–5, ...). A trailing
// remainder of one or two vertices is dropped silently. No indexed
// drawing, strips or culling.
func AssembleTriangles(verts []Vertex) [][3]Vertex {
	n := len(verts) / 3
	tris := make([][3]Vertex, 0, n)
	for i := 0; i+2 < len(verts); i += 3 {
		tris = append(tris, [3]Vertex{verts[i], verts[i+1], verts[i+2]})
	}
	return tris
}
