package mesh

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"solar-renderer/internal/mathutil"
	"solar-renderer/internal/raster"
)

// LoadOBJ reads a Wavefront OBJ file and returns a flat triangle-list
// vertex buffer. Supports v, vt, vn and f records with the usual
// v, v/vt, v//vn and v/vt/vn index forms; faces with more than three
// corners are fan-triangulated. Unreferenced record types are skipped.
func LoadOBJ(path string) ([]raster.Vertex, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("mesh: open %s: %w", path, err)
	}
	defer f.Close()

	verts, err := ParseOBJ(f)
	if err != nil {
		return nil, fmt.Errorf("mesh: parse %s: %w", path, err)
	}
	return verts, nil
}

// ParseOBJ parses OBJ data from a reader.
func ParseOBJ(r io.Reader) ([]raster.Vertex, error) {
	var (
		positions []mathutil.Vec3
		normals   []mathutil.Vec3
		texCoords []mathutil.Vec2
		out       []raster.Vertex
	)
	white := raster.New(255, 255, 255)

	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}

		switch fields[0] {
		case "v":
			p, err := parseVec3(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("line %d: v: %w", line, err)
			}
			positions = append(positions, p)
		case "vn":
			n, err := parseVec3(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("line %d: vn: %w", line, err)
			}
			normals = append(normals, n)
		case "vt":
			if len(fields) < 3 {
				return nil, fmt.Errorf("line %d: vt: want 2 components", line)
			}
			u, err1 := strconv.ParseFloat(fields[1], 64)
			v, err2 := strconv.ParseFloat(fields[2], 64)
			if err1 != nil || err2 != nil {
				return nil, fmt.Errorf("line %d: vt: bad component", line)
			}
			texCoords = append(texCoords, mathutil.Vec2{u, v})
		case "f":
			if len(fields) < 4 {
				return nil, fmt.Errorf("line %d: f: want at least 3 corners", line)
			}
			corners := make([]raster.Vertex, 0, len(fields)-1)
			for _, spec := range fields[1:] {
				v, err := resolveCorner(spec, positions, texCoords, normals)
				if err != nil {
					return nil, fmt.Errorf("line %d: f: %w", line, err)
				}
				v.Color = white
				corners = append(corners, v)
			}
			for i := 1; i+1 < len(corners); i++ {
				out = append(out, corners[0], corners[i], corners[i+1])
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func parseVec3(fields []string) (mathutil.Vec3, error) {
	if len(fields) < 3 {
		return mathutil.Vec3{}, fmt.Errorf("want 3 components, got %d", len(fields))
	}
	var v mathutil.Vec3
	for i := 0; i < 3; i++ {
		f, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return mathutil.Vec3{}, fmt.Errorf("bad component %q", fields[i])
		}
		v[i] = f
	}
	return v, nil
}

func resolveCorner(spec string, positions []mathutil.Vec3, texCoords []mathutil.Vec2, normals []mathutil.Vec3) (raster.Vertex, error) {
	var v raster.Vertex
	parts := strings.Split(spec, "/")

	pi, err := objIndex(parts[0], len(positions))
	if err != nil {
		return v, fmt.Errorf("vertex index %q: %w", spec, err)
	}
	v.Position = positions[pi]

	if len(parts) > 1 && parts[1] != "" {
		ti, err := objIndex(parts[1], len(texCoords))
		if err != nil {
			return v, fmt.Errorf("texcoord index %q: %w", spec, err)
		}
		v.TexCoord = texCoords[ti]
	}
	if len(parts) > 2 && parts[2] != "" {
		ni, err := objIndex(parts[2], len(normals))
		if err != nil {
			return v, fmt.Errorf("normal index %q: %w", spec, err)
		}
		v.Normal = normals[ni]
	}
	return v, nil
}

// objIndex converts a 1-based (or negative, from-the-end) OBJ index
// into a 0-based slice index.
func objIndex(s string, n int) (int, error) {
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("not a number")
	}
	switch {
	case i > 0 && i <= n:
		return i - 1, nil
	case i < 0 && -i <= n:
		return n + i, nil
	default:
		return 0, fmt.Errorf("out of range (%d of %d)", i, n)
	}
}
