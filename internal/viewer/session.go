// Package viewer holds the window-independent state of the interactive
// preview: which frame to draw, when to re-render and how input moves the
// camera. The window itself lives in cmd/preview.
package viewer

import (
	"context"

	"sphere-raytracer/internal/mathutil"
	"sphere-raytracer/internal/raster"
	"sphere-raytracer/internal/scenefile"
)

// Action is a window-independent input event.
type Action int

const (
	ToggleContinuous Action = iota
	Quit
	YawLeft
	YawRight
	PitchUp
	PitchDown
	Forward
	Back
)

// Camera steps per key press.
const (
	TurnStep = 5.0 // degrees
	MoveStep = 0.25
)

// Session owns one scene and its canvas. It is not safe for concurrent use;
// the window loop drives it from a single goroutine.
type Session struct {
	desc   *scenefile.Description
	canvas *raster.Canvas

	// Continuous re-renders every frame instead of only after a change.
	Continuous bool

	dirty  bool
	closed bool
	frames int
}

// NewSession prepares a session; the first Frame call always renders.
func NewSession(desc *scenefile.Description) *Session {
	return &Session{
		desc:   desc,
		canvas: desc.NewCanvas(),
		dirty:  true,
	}
}

// Handle applies one input action.
func (s *Session) Handle(a Action) {
	cam := &s.desc.Camera
	switch a {
	case ToggleContinuous:
		s.Continuous = !s.Continuous
		return
	case Quit:
		s.closed = true
		return
	case YawLeft:
		cam.Yaw -= TurnStep
	case YawRight:
		cam.Yaw += TurnStep
	case PitchUp:
		cam.Pitch -= TurnStep
	case PitchDown:
		cam.Pitch += TurnStep
	case Forward, Back:
		step := MoveStep
		if a == Back {
			step = -step
		}
		fwd := mathutil.Orientation(cam.Yaw, cam.Pitch, cam.Roll).MulVec3(mathutil.Vec3{0, 0, 1})
		cam.Position = cam.Position.Add(fwd.Scale(step))
	default:
		return
	}
	s.dirty = true
}

// Frame re-renders the canvas when needed and reports whether it did.
func (s *Session) Frame(ctx context.Context) (bool, error) {
	if !s.dirty && !s.Continuous {
		return false, nil
	}
	if err := raster.Render(ctx, &s.desc.Scene, s.canvas, s.desc.NewCamera()); err != nil {
		return false, err
	}
	s.dirty = false
	s.frames++
	return true, nil
}

// Closed reports whether Quit was requested.
func (s *Session) Closed() bool { return s.closed }

// Frames counts completed renders.
func (s *Session) Frames() int { return s.frames }

// Size returns the canvas dimensions.
func (s *Session) Size() (int, int) { return s.canvas.Width, s.canvas.Height }

// Pixels exposes the RGBA canvas bytes. The slice is overwritten by the
// next render.
func (s *Session) Pixels() []byte { return s.canvas.Pix }

// Camera returns the current camera placement.
func (s *Session) Camera() scenefile.CameraSpec { return s.desc.Camera }

// PremultipliedPixels converts the canvas bytes to premultiplied-alpha RGBA
// into dst, growing it as needed, and returns it. Window surfaces expect
// premultiplied input; the canvas stores straight alpha.
func (s *Session) PremultipliedPixels(dst []byte) []byte {
	return Premultiply(dst, s.canvas.Pix)
}

// Premultiply writes src (straight-alpha RGBA) into dst as premultiplied RGBA.
func Premultiply(dst, src []byte) []byte {
	if cap(dst) < len(src) {
		dst = make([]byte, len(src))
	}
	dst = dst[:len(src)]
	for i := 0; i+3 < len(src); i += 4 {
		a := uint32(src[i+3])
		dst[i] = uint8((uint32(src[i])*a + 127) / 255)
		dst[i+1] = uint8((uint32(src[i+1])*a + 127) / 255)
		dst[i+2] = uint8((uint32(src[i+2])*a + 127) / 255)
		dst[i+3] = src[i+3]
	}
	return dst
}
