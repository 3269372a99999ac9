package scene

// TrailCapacity bounds the number of screen points kept per body.
const TrailCapacity = 240

// Trail is a fixed-capacity ring buffer of recent screen positions. The
// oldest point is evicted on overflow; nothing is ever persisted.
type Trail struct {
	points [TrailCapacity][2]float64
	head   int
	count  int
}

// Push appends a screen position, evicting the oldest when full.
func (t *Trail) Push(px, py float64) {
	t.points[t.head] = [2]float64{px, py}
	t.head = (t.head + 1) % TrailCapacity
	if t.count < TrailCapacity {
		t.count++
	}
}

// Len returns the number of stored points.
func (t *Trail) Len() int { return t.count }

// Points returns the stored positions oldest first.
func (t *Trail) Points() [][2]float64 {
	out := make([][2]float64, t.count)
	start := t.head - t.count
	if start < 0 {
		start += TrailCapacity
	}
	for i := 0; i < t.count; i++ {
		out[i] = t.points[(start+i)%TrailCapacity]
	}
	return out
}

// Reset drops all points.
func (t *Trail) Reset() {
	t.head = 0
	t.count = 0
}
