package shape

// Op identifies a path segment kind.
type Op int

const (
	OpMoveTo Op = iota
	OpLineTo
	OpQuadTo
	OpClose
)

// Point is a position in canvas pixels (y grows downward).
type Point struct {
	X, Y float64
}

// Segment is one path instruction. For OpQuadTo, Ctrl is the control point
// and To the end point; OpClose ignores both.
type Segment struct {
	Op   Op
	Ctrl Point
	To   Point
}

// Tracer receives path segments. *gg.Context satisfies it.
type Tracer interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	QuadraticTo(x1, y1, x2, y2 float64)
	ClosePath()
}

// Path is an ordered list of segments that can be replayed onto a Tracer
// any number of times.
type Path struct {
	Segments []Segment
}

func (p *Path) MoveTo(x, y float64) {
	p.Segments = append(p.Segments, Segment{Op: OpMoveTo, To: Point{x, y}})
}

func (p *Path) LineTo(x, y float64) {
	p.Segments = append(p.Segments, Segment{Op: OpLineTo, To: Point{x, y}})
}

func (p *Path) QuadraticTo(x1, y1, x2, y2 float64) {
	p.Segments = append(p.Segments, Segment{Op: OpQuadTo, Ctrl: Point{x1, y1}, To: Point{x2, y2}})
}

func (p *Path) ClosePath() {
	p.Segments = append(p.Segments, Segment{Op: OpClose})
}

// Empty reports whether the path has no segments.
func (p Path) Empty() bool { return len(p.Segments) == 0 }

// Trace replays the path onto t, translated by (dx, dy).
func (p Path) Trace(t Tracer, dx, dy float64) {
	for _, seg := range p.Segments {
		switch seg.Op {
		case OpMoveTo:
			t.MoveTo(seg.To.X+dx, seg.To.Y+dy)
		case OpLineTo:
			t.LineTo(seg.To.X+dx, seg.To.Y+dy)
		case OpQuadTo:
			t.QuadraticTo(seg.Ctrl.X+dx, seg.Ctrl.Y+dy, seg.To.X+dx, seg.To.Y+dy)
		case OpClose:
			t.ClosePath()
		}
	}
}
