package gui

import (
	"math"
	"math/rand"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/orrery/internal/config"
	"github.com/san-kum/orrery/internal/scene"
)

// Theme colors (dark sky, muted chrome)
var (
	ColBg      = rl.NewColor(6, 8, 14, 255)
	ColText    = rl.NewColor(150, 155, 170, 255)
	ColTextDim = rl.NewColor(70, 74, 88, 255)
	ColSelect  = rl.NewColor(235, 238, 245, 255)
	ColStar    = rl.NewColor(200, 205, 220, 255)
	ColFocus   = rl.NewColor(255, 255, 255, 200)
)

// starfield layers; offset is proportional to camera pan so the background
// conveys depth without being part of the physical scene
const (
	numStars      = 400
	parallaxDepth = 0.04
	dragThreshold = 5.0
	wheelStep     = 1.15
)

type bgStar struct {
	x, y  float32 // normalized [0,1)
	depth float32
	size  float32
}

type App struct {
	Scene *scene.Scene
	Font  rl.Font

	stars     []bgStar
	colors    []rl.Color
	accents   []rl.Color
	dragging  bool
	dragMoved float64
}

func initWindow(w, h int) {
	rl.SetConfigFlags(rl.FlagWindowResizable)
	rl.InitWindow(int32(w), int32(h), "orrery")
	rl.SetTargetFPS(60)
	rl.SetExitKey(0)
}

func loadFont() rl.Font {
	font := rl.LoadFontEx("/usr/share/fonts/liberation/LiberationMono-Regular.ttf", 32, nil, 0)
	if font.Texture.ID == 0 {
		return rl.GetFontDefault()
	}
	rl.SetTextureFilter(font.Texture, rl.FilterBilinear)
	return font
}

// NewApp builds the interactive app around an already-validated scene.
func NewApp(s *scene.Scene) *App {
	app := &App{
		Scene: s,
		Font:  loadFont(),
	}

	app.stars = make([]bgStar, numStars)
	for i := range app.stars {
		app.stars[i] = bgStar{
			x:     rand.Float32(),
			y:     rand.Float32(),
			depth: 0.2 + rand.Float32()*0.8,
			size:  0.5 + rand.Float32()*1.3,
		}
	}

	app.colors = make([]rl.Color, len(s.Bodies))
	app.accents = make([]rl.Color, len(s.Bodies))
	for i, b := range s.Bodies {
		app.colors[i] = parseHexColor(b.Color, ColStar)
		app.accents[i] = parseHexColor(b.AccentColor, ColSelect)
	}

	return app
}

// Run opens the window and drives the scene until it is closed.
func Run(cfg *config.Config) error {
	s, err := scene.New(cfg.ResolveBodies(),
		float64(cfg.Width), float64(cfg.Height), cfg.Zoom, cfg.Speed)
	if err != nil {
		return err
	}
	s.ShowOrbits = cfg.ShowOrbits
	s.ShowLabels = cfg.ShowLabels
	s.ShowTrails = cfg.ShowTrails

	initWindow(cfg.Width, cfg.Height)
	defer rl.CloseWindow()

	app := NewApp(s)
	app.RunLoop()
	return nil
}

func (a *App) RunLoop() {
	for !rl.WindowShouldClose() {
		a.Update(rl.GetTime() * 1000)
		a.Draw()
	}
}

// Update routes input into the scene and advances one frame. Input runs
// before Step so the frame drawn below reflects it.
func (a *App) Update(nowMs float64) {
	s := a.Scene

	if rl.IsWindowResized() {
		s.Resize(float64(rl.GetScreenWidth()), float64(rl.GetScreenHeight()))
	}

	mouse := rl.GetMousePosition()

	// Drag pans immediately; a press-release without movement is a pick.
	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		a.dragging = true
		a.dragMoved = 0
	}
	if a.dragging && rl.IsMouseButtonDown(rl.MouseLeftButton) {
		delta := rl.GetMouseDelta()
		a.dragMoved += math.Hypot(float64(delta.X), float64(delta.Y))
		if a.dragMoved > dragThreshold {
			s.Camera.Pan(float64(delta.X), float64(delta.Y))
		}
	}
	if rl.IsMouseButtonReleased(rl.MouseLeftButton) {
		if a.dragging && a.dragMoved <= dragThreshold {
			if idx := s.Pick(float64(mouse.X), float64(mouse.Y)); idx >= 0 {
				s.FocusIndex(idx, true)
			}
		}
		a.dragging = false
	}

	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		factor := math.Pow(wheelStep, float64(wheel))
		s.Camera.ZoomBy(factor, float64(mouse.X), float64(mouse.Y))
	}

	a.handleKeys()

	s.Step(nowMs)
}

func (a *App) handleKeys() {
	s := a.Scene

	if rl.IsKeyPressed(rl.KeySpace) {
		s.Clock.TogglePause()
	}
	if rl.IsKeyPressed(rl.KeyF) {
		s.FitAll()
	}
	if rl.IsKeyPressed(rl.KeyO) {
		s.ShowOrbits = !s.ShowOrbits
	}
	if rl.IsKeyPressed(rl.KeyL) {
		s.ShowLabels = !s.ShowLabels
	}
	if rl.IsKeyPressed(rl.KeyT) {
		s.ShowTrails = !s.ShowTrails
		if s.ShowTrails {
			s.ClearTrails()
		}
	}
	if rl.IsKeyPressed(rl.KeyR) {
		s.Reset()
	}
	if rl.IsKeyPressed(rl.KeyEqual) || rl.IsKeyPressed(rl.KeyKpAdd) {
		s.Clock.ScaleSpeed(2)
	}
	if rl.IsKeyPressed(rl.KeyMinus) || rl.IsKeyPressed(rl.KeyKpSubtract) {
		s.Clock.ScaleSpeed(0.5)
	}

	// Digits focus by body index; indices past the list are ignored.
	digits := []int32{rl.KeyOne, rl.KeyTwo, rl.KeyThree, rl.KeyFour, rl.KeyFive,
		rl.KeySix, rl.KeySeven, rl.KeyEight, rl.KeyNine, rl.KeyZero}
	for i, key := range digits {
		if rl.IsKeyPressed(key) {
			s.FocusIndex(i, true)
		}
	}
}

func (a *App) drawText(text string, x, y int, size float32, col rl.Color) {
	rl.DrawTextEx(a.Font, text, rl.NewVector2(float32(x), float32(y)), size, 1, col)
}

func parseHexColor(s string, fallback rl.Color) rl.Color {
	if len(s) != 7 || s[0] != '#' {
		return fallback
	}
	var rgb [3]uint8
	for i := 0; i < 3; i++ {
		hi, ok1 := hexNibble(s[1+i*2])
		lo, ok2 := hexNibble(s[2+i*2])
		if !ok1 || !ok2 {
			return fallback
		}
		rgb[i] = hi<<4 | lo
	}
	return rl.NewColor(rgb[0], rgb[1], rgb[2], 255)
}

func hexNibble(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
