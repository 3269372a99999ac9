// Package tui renders the scene in the terminal on a braille canvas. It is
// the fallback surface for hosts without a display; the same scene, camera
// and clock drive it, only the rasterizer differs from the GUI.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/orrery/internal/config"
	"github.com/san-kum/orrery/internal/scene"
)

const (
	panStepPx  = 12.0
	zoomStep   = 1.25
	statusRows = 3
)

type tickMsg time.Time

type Model struct {
	scene  *scene.Scene
	canvas *Canvas
	fps    int
	start  time.Time
	ready  bool
}

// New builds the terminal model; canvas dimensions arrive with the first
// window size message.
func New(cfg *config.Config) (*Model, error) {
	s, err := scene.New(cfg.ResolveBodies(), 160, 96, cfg.Zoom, cfg.Speed)
	if err != nil {
		return nil, err
	}
	s.ShowOrbits = cfg.ShowOrbits
	s.ShowLabels = cfg.ShowLabels
	s.ShowTrails = cfg.ShowTrails

	fps := cfg.FPS
	if fps > 30 {
		fps = 30 // terminals gain nothing past this
	}

	return &Model{scene: s, fps: fps, start: time.Now()}, nil
}

// Run starts the bubbletea program and blocks until quit.
func Run(cfg *config.Config) error {
	m, err := New(cfg)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

func (m *Model) Init() tea.Cmd {
	return m.tick()
}

func (m *Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *Model) nowMs() float64 {
	return float64(time.Since(m.start)) / float64(time.Millisecond)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		rows := msg.Height - statusRows
		if rows < 4 {
			rows = 4
		}
		m.canvas = NewCanvas(msg.Width, rows)
		pw, ph := m.canvas.PixelSize()
		m.scene.Resize(float64(pw), float64(ph))
		m.ready = true
		return m, nil

	case tickMsg:
		m.scene.Step(m.nowMs())
		return m, m.tick()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := m.scene
	cam := s.Camera
	cw, ch := cam.ViewportW/2, cam.ViewportH/2

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case " ":
		s.Clock.TogglePause()
	case "f":
		s.FitAll()
	case "o":
		s.ShowOrbits = !s.ShowOrbits
	case "l":
		s.ShowLabels = !s.ShowLabels
	case "t":
		s.ShowTrails = !s.ShowTrails
		if s.ShowTrails {
			s.ClearTrails()
		}
	case "r":
		s.Reset()
	case "+", "=":
		s.Clock.ScaleSpeed(2)
	case "-":
		s.Clock.ScaleSpeed(0.5)
	case "z":
		cam.ZoomBy(zoomStep, cw, ch)
	case "x":
		cam.ZoomBy(1/zoomStep, cw, ch)
	case "up":
		cam.Pan(0, panStepPx)
	case "down":
		cam.Pan(0, -panStepPx)
	case "left":
		cam.Pan(panStepPx, 0)
	case "right":
		cam.Pan(-panStepPx, 0)
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		s.FocusIndex(int(msg.String()[0]-'1'), true)
	case "0":
		s.FocusIndex(9, true)
	}
	return m, nil
}

func (m *Model) View() string {
	if !m.ready {
		return "measuring terminal..."
	}

	m.render()

	s := m.scene
	info := s.FocusInfo()

	status := statusRunning.Render("RUNNING")
	if s.Clock.Paused {
		status = statusPaused.Render("PAUSED")
	}

	var b strings.Builder
	b.WriteString(m.canvas.String())
	b.WriteString(fmt.Sprintf("%s  %s  %s  %s  %s  %s\n",
		titleStyle.Render("orrery"),
		focusStyle.Render(info.Name),
		status,
		labelStyle.Render(s.DayLabel()),
		labelStyle.Render(s.SpeedLabel()),
		labelStyle.Render(s.ZoomLabel()),
	))
	b.WriteString(dimStyle.Render("[1-9] focus  [space] pause  [arrows] pan  [z/x] zoom  [f] fit  [o/l/t] toggles  [r] reset  [q] quit"))
	return b.String()
}

// render rasterizes one frame in the fixed scene order: orbits, trails,
// bodies (star first), focus ring.
func (m *Model) render() {
	m.canvas.Clear()
	s := m.scene

	if s.ShowOrbits {
		for i := range s.Bodies {
			path := s.OrbitPath(i, 128)
			if path == nil {
				continue
			}
			px, py := s.Camera.ToScreen(path[0][0], path[0][1])
			for _, p := range path[1:] {
				nx, ny := s.Camera.ToScreen(p[0], p[1])
				m.canvas.Line(int(px), int(py), int(nx), int(ny))
				px, py = nx, ny
			}
		}
	}

	if s.ShowTrails {
		for i := range s.Bodies {
			pts := s.Trail(i).Points()
			for k := 1; k < len(pts); k++ {
				m.canvas.Line(int(pts[k-1][0]), int(pts[k-1][1]),
					int(pts[k][0]), int(pts[k][1]))
			}
		}
	}

	for pass := 0; pass < 2; pass++ {
		for i, b := range s.Bodies {
			if b.IsStar() != (pass == 0) {
				continue
			}
			px, py := s.BodyScreen(i)
			r := int(s.BodyPixelRadius(i) / 2) // braille dots are chunky
			m.canvas.FillCircle(int(px), int(py), r)
		}
	}

	fx, fy := s.BodyScreen(s.Focused)
	fr := int(s.BodyPixelRadius(s.Focused)/2) + 3
	m.canvas.CircleOutline(int(fx), int(fy), fr)
}
