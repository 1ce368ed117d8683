package scene

import "solar-renderer/internal/mathutil"

// Trail keeps a bounded history of a body's world positions, oldest
// first. When full, adding a position drops the oldest.
type Trail struct {
	positions []mathutil.Vec3
	max       int
}

func NewTrail(max int) *Trail {
	if max < 2 {
		max = 2
	}
	return &Trail{positions: make([]mathutil.Vec3, 0, max), max: max}
}

func (t *Trail) Add(p mathutil.Vec3) {
	if len(t.positions) >= t.max {
		copy(t.positions, t.positions[1:])
		t.positions = t.positions[:len(t.positions)-1]
	}
	t.positions = append(t.positions, p)
}

// Reset empties the trail, keeping its capacity.
func (t *Trail) Reset() {
	t.positions = t.positions[:0]
}

func (t *Trail) Positions() []mathutil.Vec3 {
	return t.positions
}

func (t *Trail) Len() int {
	return len(t.positions)
}
