package fontkit

import (
	"fmt"
	"strings"

	"golang.org/x/image/math/f32"
)

// PathBuilder consumes glyph outlines. Coordinates are in font units, y up.
type PathBuilder interface {
	MoveTo(to f32.Vec2)
	LineTo(to f32.Vec2)
	QuadTo(ctrl, to f32.Vec2)
	CubeTo(ctrl1, ctrl2, to f32.Vec2)
	Close()
}

// SegmentOp is the operation of a path segment.
type SegmentOp uint8

const (
	OpMoveTo SegmentOp = iota
	OpLineTo
	OpQuadTo
	OpCubeTo
	OpClose
)

var segmentOpNames = [...]string{"M", "L", "Q", "C", "Z"}

func (op SegmentOp) String() string {
	if int(op) < len(segmentOpNames) {
		return segmentOpNames[op]
	}
	return "?"
}

// Segment is one drawing operation of a path. Only the first
// op-dependent number of points are used.
type Segment struct {
	Op   SegmentOp
	Args [3]f32.Vec2
}

// Points returns the points used by the segment.
func (s Segment) Points() []f32.Vec2 {
	switch s.Op {
	case OpMoveTo, OpLineTo:
		return s.Args[:1]
	case OpQuadTo:
		return s.Args[:2]
	case OpCubeTo:
		return s.Args[:3]
	}
	return nil
}

// Path is a PathBuilder recording segments.
type Path struct {
	Segments []Segment
}

var _ PathBuilder = &Path{}

func (p *Path) MoveTo(to f32.Vec2) {
	p.Segments = append(p.Segments, Segment{Op: OpMoveTo, Args: [3]f32.Vec2{to}})
}

func (p *Path) LineTo(to f32.Vec2) {
	p.Segments = append(p.Segments, Segment{Op: OpLineTo, Args: [3]f32.Vec2{to}})
}

func (p *Path) QuadTo(ctrl, to f32.Vec2) {
	p.Segments = append(p.Segments, Segment{Op: OpQuadTo, Args: [3]f32.Vec2{ctrl, to}})
}

func (p *Path) CubeTo(ctrl1, ctrl2, to f32.Vec2) {
	p.Segments = append(p.Segments, Segment{Op: OpCubeTo, Args: [3]f32.Vec2{ctrl1, ctrl2, to}})
}

func (p *Path) Close() {
	p.Segments = append(p.Segments, Segment{Op: OpClose})
}

// Bounds returns the bounding box of all points of the path, including
// control points.
func (p *Path) Bounds() Rect {
	var r Rect
	first := true
	for _, s := range p.Segments {
		for _, pt := range s.Points() {
			if first {
				r.Min, r.Max = pt, pt
				first = false
				continue
			}
			r.Min[0] = min(r.Min[0], pt[0])
			r.Min[1] = min(r.Min[1], pt[1])
			r.Max[0] = max(r.Max[0], pt[0])
			r.Max[1] = max(r.Max[1], pt[1])
		}
	}
	return r
}

// Contours counts the sub-paths of p.
func (p *Path) Contours() int {
	n := 0
	for _, s := range p.Segments {
		if s.Op == OpMoveTo {
			n++
		}
	}
	return n
}

func (p *Path) String() string {
	var sb strings.Builder
	for i, s := range p.Segments {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(s.Op.String())
		for _, pt := range s.Points() {
			fmt.Fprintf(&sb, " %g,%g", pt[0], pt[1])
		}
	}
	return sb.String()
}
