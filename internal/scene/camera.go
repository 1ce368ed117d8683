package scene

import (
	"math"

	"solar-renderer/internal/mathutil"
)

// Camera is an orbit camera around a look-at center.
type Camera struct {
	Eye    mathutil.Vec3
	Center mathutil.Vec3
	Up     mathutil.Vec3
}

// NewCamera returns the reference viewpoint: above and behind the sun,
// looking at the system center.
func NewCamera() Camera {
	return Camera{
		Eye:    mathutil.Vec3{0, 10, 100},
		Center: mathutil.Vec3{0, 0, 0},
		Up:     mathutil.Vec3{0, 1, 0},
	}
}

// View builds the view matrix for the current pose.
func (c *Camera) View() mathutil.Mat4 {
	return mathutil.LookAt(c.Eye, c.Center, c.Up)
}

// Orbit rotates the eye around the center by yaw and pitch radians.
// Pitch is limited short of the poles so Up never degenerates.
func (c *Camera) Orbit(yaw, pitch float64) {
	offset := c.Eye.Sub(c.Center)
	radius := offset.Len()
	if radius < 1e-9 {
		return
	}

	curYaw := math.Atan2(offset[0], offset[2])
	curPitch := math.Asin(offset[1] / radius)

	curYaw += yaw
	curPitch += pitch
	const limit = math.Pi/2 - 0.01
	if curPitch > limit {
		curPitch = limit
	}
	if curPitch < -limit {
		curPitch = -limit
	}

	c.Eye = c.Center.Add(mathutil.Vec3{
		radius * math.Cos(curPitch) * math.Sin(curYaw),
		radius * math.Sin(curPitch),
		radius * math.Cos(curPitch) * math.Cos(curYaw),
	})
}

// Zoom moves the eye toward (positive) or away from the center,
// stopping short of passing through it.
func (c *Camera) Zoom(delta float64) {
	dir := c.Center.Sub(c.Eye)
	dist := dir.Len()
	if dist-delta < 1 {
		return
	}
	c.Eye = c.Eye.Add(dir.Normalize().Scale(delta))
}

// MoveCenter pans eye and center together.
func (c *Camera) MoveCenter(delta mathutil.Vec3) {
	c.Center = c.Center.Add(delta)
	c.Eye = c.Eye.Add(delta)
}

// BirdEye switches to the elevated 30° overview, or back to the
// default pose.
func (c *Camera) BirdEye(active bool) {
	if active {
		angle := mathutil.Deg2Rad(30)
		const distance = 100.0
		c.Eye = mathutil.Vec3{0, distance * math.Sin(angle), distance * math.Cos(angle)}
	} else {
		c.Eye = mathutil.Vec3{0, 10, 100}
	}
	c.Center = mathutil.Vec3{0, 0, 0}
	c.Up = mathutil.Vec3{0, 1, 0}
}
