package tui

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/tekkers/internal/config"
	"github.com/vovakirdan/tekkers/internal/core"
	"github.com/vovakirdan/tekkers/internal/sim"
)

// Camera and scene layout.
const (
	cameraHeight   = 8.0
	cameraDistance = 15.0
	cameraFOV      = 60.0 // Vertical, degrees
	cameraNear     = 0.1
	cameraFar      = 100.0
	swayRate       = 0.5 // Radians per second
	swayAmplitude  = 0.5

	// Terminal cells are roughly twice as tall as they are wide
	cellAspect = 2.0

	// Points projecting further out than this are dropped so that a line
	// never rasterises more than a few thousand cells
	maxCellCoord = 4096.0

	gridY    = -6.0
	gridHalf = 15.0
	gridStep = 2.5
)

// Camera is a look-at camera.
type Camera struct {
	Eye    mgl64.Vec3
	Target mgl64.Vec3
	Up     mgl64.Vec3
}

// CameraAt returns the camera for a simulated time in seconds.
// It sways gently on X and always looks at the origin.
func CameraAt(elapsed float64) Camera {
	sway := math.Sin(elapsed*swayRate) * swayAmplitude
	return Camera{
		Eye:    mgl64.Vec3{sway, cameraHeight, cameraDistance},
		Target: mgl64.Vec3{},
		Up:     mgl64.Vec3{0, 1, 0},
	}
}

// Projector maps world positions to screen cells.
type Projector struct {
	view   mgl64.Mat4
	proj   mgl64.Mat4
	width  int
	height int
}

// NewProjector builds a perspective projection for a width x height cell viewport.
func NewProjector(cam Camera, width, height int) Projector {
	width, height = max(width, 1), max(height, 1)
	aspect := float64(width) / (float64(height) * cellAspect)
	return Projector{
		view:   mgl64.LookAtV(cam.Eye, cam.Target, cam.Up),
		proj:   mgl64.Perspective(mgl64.DegToRad(cameraFOV), aspect, cameraNear, cameraFar),
		width:  width,
		height: height,
	}
}

// Project returns the cell for a world position, or false when the point is
// behind the camera.
func (p Projector) Project(v mgl64.Vec3) (core.Point, bool) {
	eye := p.view.Mul4x1(v.Vec4(1))
	if eye.Z() > -cameraNear {
		return core.Point{}, false
	}

	win := mgl64.Project(v, p.view, p.proj, 0, 0, p.width, p.height)
	if !(math.Abs(win.X()) <= maxCellCoord && math.Abs(win.Y()) <= maxCellCoord) {
		return core.Point{}, false
	}
	// Window coordinates grow upwards, rows grow downwards
	return core.Point{
		X: int(math.Floor(win.X())),
		Y: p.height - 1 - int(math.Floor(win.Y())),
	}, true
}

// line projects and draws a world-space segment.
func (p Projector) line(s *core.Screen, a, b mgl64.Vec3, r rune, c core.Color) {
	pa, okA := p.Project(a)
	pb, okB := p.Project(b)
	if !okA || !okB {
		return
	}
	if r == 0 {
		r = lineRune(pa, pb)
	}
	s.DrawLine(pa, pb, r, c)
}

// lineRune picks a glyph that follows the segment's on-screen slope.
func lineRune(a, b core.Point) rune {
	dx := float64(b.X - a.X)
	dy := float64(b.Y-a.Y) * cellAspect
	if dx == 0 && dy == 0 {
		return '+'
	}
	angle := math.Atan2(-dy, dx) * 180 / math.Pi
	if angle < 0 {
		angle += 180
	}
	switch {
	case angle < 22.5 || angle >= 157.5:
		return '-'
	case angle < 67.5:
		return '/'
	case angle < 112.5:
		return '|'
	default:
		return '\\'
	}
}

// cubeCorners returns the eight corners of a cube in world space.
func cubeCorners(c sim.Cube) [8]mgl64.Vec3 {
	q := mgl64.AnglesToQuat(c.Rotation.X(), c.Rotation.Y(), c.Rotation.Z(), mgl64.XYZ)
	h := c.HalfExtent

	var out [8]mgl64.Vec3
	for i := range out {
		local := mgl64.Vec3{-h, -h, -h}
		if i&1 != 0 {
			local[0] = h
		}
		if i&2 != 0 {
			local[1] = h
		}
		if i&4 != 0 {
			local[2] = h
		}
		out[i] = c.Position.Add(q.Rotate(local))
	}
	return out
}

// cubeEdges lists corner index pairs; corners differ in exactly one bit.
var cubeEdges = [12][2]int{
	{0, 1}, {2, 3}, {4, 5}, {6, 7}, // X
	{0, 2}, {1, 3}, {4, 6}, {5, 7}, // Y
	{0, 4}, {1, 5}, {2, 6}, {3, 7}, // Z
}

// Scene draws one frame of the world into a screen.
type Scene struct {
	proj  Projector
	eye   mgl64.Vec3
	arena config.Arena
}

// NewScene prepares a scene for the frame's camera and the screen size.
func NewScene(frame sim.Frame, arena config.Arena, width, height int) Scene {
	cam := CameraAt(frame.Elapsed)
	return Scene{proj: NewProjector(cam, width, height), eye: cam.Eye, arena: arena}
}

// Draw renders grid, walls, paddle, particles and cube, back to front.
func (sc Scene) Draw(s *core.Screen, frame sim.Frame, flash bool) {
	sc.drawGrid(s)
	sc.drawWalls(s)
	sc.drawPaddle(s, frame.Paddle, flash)
	sc.drawParticles(s, frame.Particles)
	sc.drawCube(s, frame.Cube)
}

func (sc Scene) drawGrid(s *core.Screen) {
	for v := -gridHalf; v <= gridHalf; v += gridStep {
		sc.proj.line(s, mgl64.Vec3{v, gridY, -gridHalf}, mgl64.Vec3{v, gridY, gridHalf}, '.', core.ColorGrid)
		sc.proj.line(s, mgl64.Vec3{-gridHalf, gridY, v}, mgl64.Vec3{gridHalf, gridY, v}, '.', core.ColorGrid)
	}
}

// drawWalls outlines the arena's footprint on the grid plane.
func (sc Scene) drawWalls(s *core.Screen) {
	x, z := sc.arena.WallX, sc.arena.WallZ
	corners := [4]mgl64.Vec3{
		{-x, gridY, -z},
		{x, gridY, -z},
		{x, gridY, z},
		{-x, gridY, z},
	}
	for i := range corners {
		sc.proj.line(s, corners[i], corners[(i+1)%len(corners)], 0, core.ColorWall)
	}
}

func (sc Scene) drawPaddle(s *core.Screen, p sim.Paddle, flash bool) {
	color, fill := core.ColorPaddle, '='
	if flash {
		color, fill = core.ColorFlash, '#'
	}

	hw, hd := p.Width/2, p.Depth/2
	top := p.Top()
	corners := []mgl64.Vec3{
		{p.X - hw, top, p.Z - hd},
		{p.X + hw, top, p.Z - hd},
		{p.X + hw, top, p.Z + hd},
		{p.X - hw, top, p.Z + hd},
	}

	pts := make([]core.Point, 0, len(corners))
	for _, c := range corners {
		pt, ok := sc.proj.Project(c)
		if !ok {
			return
		}
		pts = append(pts, pt)
	}
	s.FillConvex(pts, fill, color)
}

func (sc Scene) drawParticles(s *core.Screen, particles []sim.Particle) {
	for _, p := range particles {
		pt, ok := sc.proj.Project(p.Position)
		if !ok || !pt.In(s.Bounds()) {
			continue
		}
		r := '.'
		if p.Life > 0.5 {
			r = '*'
		}
		s.Set(pt.X, pt.Y, r, core.ColorParticle)
	}
}

func (sc Scene) drawCube(s *core.Screen, c sim.Cube) {
	corners := cubeCorners(c)

	// The corner farthest from the camera only touches hidden edges
	far := 0
	for i := range corners {
		if corners[i].Sub(sc.eye).Len() > corners[far].Sub(sc.eye).Len() {
			far = i
		}
	}

	for _, e := range cubeEdges {
		if e[0] == far || e[1] == far {
			sc.proj.line(s, corners[e[0]], corners[e[1]], 0, core.ColorCubeFar)
		}
	}
	for _, e := range cubeEdges {
		if e[0] != far && e[1] != far {
			sc.proj.line(s, corners[e[0]], corners[e[1]], 0, core.ColorCube)
		}
	}

	if center, ok := sc.proj.Project(c.Position); ok {
		s.Set(center.X, center.Y, '@', core.ColorCube)
	}
}
