package gui

import (
	"fmt"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func (a *App) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(ColBg)

	a.drawStarfield()
	if a.Scene.ShowOrbits {
		a.drawOrbitPaths()
	}
	if a.Scene.ShowTrails {
		a.drawTrails()
	}
	a.drawBodies()
	a.drawFocusRing()
	a.drawHUD()

	rl.EndDrawing()
}

// drawStarfield paints the background stars with a small parallax shift
// against camera pan. Deeper stars move less; positions wrap at the edges.
func (a *App) drawStarfield() {
	cam := a.Scene.Camera
	w := float32(cam.ViewportW)
	h := float32(cam.ViewportH)

	offX := float32(cam.X * cam.BaseScale * parallaxDepth)
	offY := float32(cam.Y * cam.BaseScale * parallaxDepth)

	for _, st := range a.stars {
		x := wrap(st.x*w-offX*st.depth, w)
		y := wrap(st.y*h-offY*st.depth, h)
		alpha := 0.25 + 0.5*st.depth
		rl.DrawCircleV(rl.NewVector2(x, y), st.size, rl.ColorAlpha(ColStar, alpha))
	}
}

func (a *App) drawOrbitPaths() {
	s := a.Scene
	for i := range s.Bodies {
		path := s.OrbitPath(i, 256)
		if path == nil {
			continue
		}
		col := rl.ColorAlpha(a.colors[i], 0.28)
		prev := a.toScreenV(path[0])
		for _, p := range path[1:] {
			cur := a.toScreenV(p)
			rl.DrawLineV(prev, cur, col)
			prev = cur
		}
	}
}

func (a *App) drawTrails() {
	s := a.Scene
	for i := range s.Bodies {
		pts := s.Trail(i).Points()
		if len(pts) < 2 {
			continue
		}
		for k := 1; k < len(pts); k++ {
			alpha := 0.35 * float32(k) / float32(len(pts))
			rl.DrawLineV(
				rl.NewVector2(float32(pts[k-1][0]), float32(pts[k-1][1])),
				rl.NewVector2(float32(pts[k][0]), float32(pts[k][1])),
				rl.ColorAlpha(a.colors[i], alpha))
		}
	}
}

// drawBodies renders the star first; the planets are coplanar and never
// meaningfully occlude each other.
func (a *App) drawBodies() {
	s := a.Scene
	order := make([]int, 0, len(s.Bodies))
	for i, b := range s.Bodies {
		if b.IsStar() {
			order = append([]int{i}, order...)
		} else {
			order = append(order, i)
		}
	}

	for _, i := range order {
		a.drawBody(i)
	}
}

func (a *App) drawBody(i int) {
	s := a.Scene
	b := s.Bodies[i]
	px, py := s.BodyScreen(i)
	r := float32(s.BodyPixelRadius(i))
	cx, cy := float32(px), float32(py)

	if b.IsStar() {
		// Corona: two soft gradient layers, warmer and much wider than the
		// disk.
		rl.DrawCircleGradient(int32(cx), int32(cy), r*3.2,
			rl.ColorAlpha(a.colors[i], 0.18), rl.ColorAlpha(a.colors[i], 0))
		rl.DrawCircleGradient(int32(cx), int32(cy), r*1.8,
			rl.ColorAlpha(a.accents[i], 0.35), rl.ColorAlpha(a.accents[i], 0))
	}

	if b.Ring != nil {
		a.drawRing(i, cx, cy, r, true)
	}

	// Disk with radial shading, bright core to body color.
	rl.DrawCircleGradient(int32(cx), int32(cy), r, a.accents[i], a.colors[i])

	// Rim highlight once the disk is large enough to read as a sphere.
	if r > 6 {
		rl.DrawCircleLines(int32(cx), int32(cy), r, rl.ColorAlpha(a.accents[i], 0.6))
	}

	if b.Ring != nil {
		a.drawRing(i, cx, cy, r, false)
	}

	if s.ShowLabels && !b.IsStar() {
		a.drawText(b.Name, int(cx+r)+6, int(cy)-8, 15, ColText)
	}
}

// drawRing draws half of a tilted ring ellipse: the half behind the disk
// before it, the near half after, so the disk clips the ring naturally.
func (a *App) drawRing(i int, cx, cy, r float32, farHalf bool) {
	b := a.Scene.Bodies[i]
	ring := b.Ring
	flatten := float32(math.Sin(ring.TiltDeg * math.Pi / 180))

	const segments = 48
	bands := []struct {
		ratio float64
		alpha float32
	}{
		{ring.InnerRatio, 0.55},
		{(ring.InnerRatio + ring.OuterRatio) / 2, 0.40},
		{ring.OuterRatio, 0.55},
	}

	for _, band := range bands {
		radius := r * float32(band.ratio)
		col := rl.ColorAlpha(a.colors[i], band.alpha)

		var prev rl.Vector2
		hasPrev := false
		for k := 0; k <= segments; k++ {
			theta := 2 * math.Pi * float64(k) / segments
			sin, cos := math.Sincos(theta)
			if (sin < 0) != farHalf {
				hasPrev = false
				continue
			}
			cur := rl.NewVector2(cx+radius*float32(cos), cy+radius*flatten*float32(sin))
			if hasPrev {
				rl.DrawLineEx(prev, cur, 1.5, col)
			}
			prev = cur
			hasPrev = true
		}
	}
}

func (a *App) drawFocusRing() {
	s := a.Scene
	px, py := s.BodyScreen(s.Focused)
	r := float32(s.BodyPixelRadius(s.Focused))

	rl.DrawCircleLines(int32(px), int32(py), r+6, ColFocus)
	rl.DrawCircleLines(int32(px), int32(py), r+7, rl.ColorAlpha(ColFocus, 0.35))
}

func (a *App) drawHUD() {
	s := a.Scene
	h := int(s.Camera.ViewportH)
	w := int(s.Camera.ViewportW)

	a.drawText("orrery", 30, 26, 24, ColSelect)

	info := s.FocusInfo()
	a.drawText(fmt.Sprintf(":: %s", info.Name), 130, 31, 16, ColText)

	y := 60
	a.drawText(fmt.Sprintf("class   %s", info.Class), 30, y, 14, ColTextDim)
	a.drawText(fmt.Sprintf("radius  %.0f km", info.RadiusKm), 30, y+18, 14, ColTextDim)
	if info.Class != "star" {
		a.drawText(fmt.Sprintf("orbit   %.3f AU", info.SemiMajorAxisAU), 30, y+36, 14, ColTextDim)
		a.drawText(fmt.Sprintf("period  %.2f yr", info.PeriodYears), 30, y+54, 14, ColTextDim)
	}

	status := "RUNNING"
	col := ColSelect
	if s.Clock.Paused {
		status = "PAUSED"
		col = ColTextDim
	}
	a.drawText(status, w-130, 26, 16, col)
	a.drawText(s.DayLabel(), w-130, 48, 14, ColText)
	a.drawText(s.SpeedLabel(), w-200, 66, 14, ColTextDim)
	a.drawText(s.ZoomLabel(), w-200, 84, 14, ColTextDim)

	a.drawText("[1-9] FOCUS  [SPACE] PAUSE  [F] FIT  [O] ORBITS  [L] LABELS  [T] TRAILS  [+/-] SPEED  [R] RESET",
		30, h-30, 13, ColTextDim)
	a.drawText(fmt.Sprintf("%d FPS", int32(rl.GetFPS())), w-90, h-30, 13, ColTextDim)
}

func (a *App) toScreenV(p [2]float64) rl.Vector2 {
	px, py := a.Scene.Camera.ToScreen(p[0], p[1])
	return rl.NewVector2(float32(px), float32(py))
}

func wrap(v, max float32) float32 {
	v = float32(math.Mod(float64(v), float64(max)))
	if v < 0 {
		v += max
	}
	return v
}
