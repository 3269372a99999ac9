package tui

import (
	"strings"
	"testing"
)

func TestCanvasSetAndBounds(t *testing.T) {
	c := NewCanvas(10, 5)

	w, h := c.PixelSize()
	if w != 20 || h != 20 {
		t.Fatalf("pixel size = %dx%d, want 20x20", w, h)
	}

	c.Set(0, 0)
	if c.grid[0][0] == 0x2800 {
		t.Error("set pixel left the cell empty")
	}

	// Out-of-range writes are dropped, not panics.
	c.Set(-1, 3)
	c.Set(3, -1)
	c.Set(500, 500)
}

func TestCanvasClear(t *testing.T) {
	c := NewCanvas(4, 4)
	c.Line(0, 0, 7, 15)
	c.Clear()
	for _, row := range c.grid {
		for _, r := range row {
			if r != 0x2800 {
				t.Fatal("clear left dots behind")
			}
		}
	}
}

func TestCanvasLineEndpoints(t *testing.T) {
	c := NewCanvas(10, 10)
	c.Line(2, 3, 17, 30)
	if c.grid[0][1] == 0x2800 {
		t.Error("line start missing")
	}
	if c.grid[7][8] == 0x2800 {
		t.Error("line end missing")
	}
}

func TestFillCircleCenter(t *testing.T) {
	c := NewCanvas(10, 10)
	c.FillCircle(10, 20, 4)
	if c.grid[5][5] == 0x2800 {
		t.Error("circle center missing")
	}
}

func TestStringShape(t *testing.T) {
	c := NewCanvas(6, 3)
	out := c.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Errorf("rendered %d rows, want 3", len(lines))
	}
	for _, l := range lines {
		if len([]rune(l)) != 6 {
			t.Errorf("row width %d, want 6", len([]rune(l)))
		}
	}
}
