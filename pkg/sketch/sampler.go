// ABOUTME: Drawing sampler with monotonic-x admission
// ABOUTME: Owns the point sequence and the running maximum x
package sketch

// NoData is the MaxX of an empty drawing, below every valid column
const NoData = -1

// Point is one recorded pointer sample in canvas pixels
type Point struct {
	X int
	Y int
}

// Drawing is an ordered set of points with strictly increasing X
type Drawing struct {
	Points []Point
	MaxX   int
}

// Len returns the number of recorded points
func (d Drawing) Len() int {
	return len(d.Points)
}

// Empty reports whether nothing has been recorded
func (d Drawing) Empty() bool {
	return len(d.Points) == 0
}

// Sampler accumulates a Drawing from drag events
type Sampler struct {
	width  int
	height int
	points []Point
	maxX   int
	active bool
}

// NewSampler creates an empty sampler for a width x height canvas
func NewSampler(width, height int) *Sampler {
	return &Sampler{
		width:  width,
		height: height,
		maxX:   NoData,
	}
}

// BeginDrag enables admission. Existing points are kept so a drag can extend them.
func (s *Sampler) BeginDrag() {
	s.active = true
}

// EndDrag disables admission
func (s *Sampler) EndDrag() {
	s.active = false
}

// Active reports whether a drag gesture is in progress
func (s *Sampler) Active() bool {
	return s.active
}

// Admit records (x, y) if a gesture is active, the point is on the canvas and
// x is past MaxX. It reports whether the point was recorded.
func (s *Sampler) Admit(x, y int) bool {
	if !s.active {
		return false
	}
	if !s.inBounds(x, y) {
		return false
	}
	if x <= s.maxX {
		return false
	}

	s.points = append(s.points, Point{X: x, Y: y})
	s.maxX = x
	return true
}

// Reset discards the drawing and ends any gesture
func (s *Sampler) Reset() {
	s.points = nil
	s.maxX = NoData
	s.active = false
}

// MaxX returns the rightmost recorded column, or NoData
func (s *Sampler) MaxX() int {
	return s.maxX
}

// Len returns the number of recorded points
func (s *Sampler) Len() int {
	return len(s.points)
}

// Drawing returns a copy of the current drawing
func (s *Sampler) Drawing() Drawing {
	points := make([]Point, len(s.points))
	copy(points, s.points)
	return Drawing{
		Points: points,
		MaxX:   s.maxX,
	}
}

// Bounds returns the canvas dimensions
func (s *Sampler) Bounds() (width, height int) {
	return s.width, s.height
}

func (s *Sampler) inBounds(x, y int) bool {
	return x >= 0 && x < s.width && y >= 0 && y < s.height
}
