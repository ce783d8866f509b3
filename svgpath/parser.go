// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package svgpath parses SVG path data ("d" attributes) into raw path
// segments.
//
// The parser is a curve source: it yields segments in drawing order and
// makes no attempt to canonicalize them. Feed it to [path.NewConverter] to
// obtain a well-formed event stream.
//
// Supported commands are M, L, H, V, C, S, Q, T, A and Z in absolute and
// relative forms, with implicit command repetition. Elliptical arcs are
// converted to cubic Beziers of at most 90 degrees each.
package svgpath

import (
	"errors"
	"fmt"

	"github.com/tdewolff/parse/v2/strconv"

	"github.com/gogpu/splatter"
	"github.com/gogpu/splatter/path"
)

// ErrSyntax is returned for malformed path data.
var ErrSyntax = errors.New("svgpath: bad path data")

// Parser streams segments from SVG path data. It implements
// path.SegmentSource; after NextSegment returns false, Err reports whether
// parsing stopped on an error.
type Parser struct {
	d   []byte
	pos int

	cmd      byte // command applied to the next argument set
	prevCmd  byte // command of the previous segment, for S and T
	cur      splatter.Point
	start    splatter.Point
	lastCtrl splatter.Point

	pending []path.Segment
	err     error
}

// NewParser creates a parser over d.
func NewParser(d string) *Parser {
	return &Parser{d: []byte(d)}
}

// Parse parses the whole of d.
func Parse(d string) ([]path.Segment, error) {
	p := NewParser(d)
	var segs []path.Segment
	for {
		s, ok := p.NextSegment()
		if !ok {
			break
		}
		segs = append(segs, s)
	}
	if p.err != nil {
		return nil, p.err
	}
	return segs, nil
}

// Err returns the first syntax error encountered, if any.
func (p *Parser) Err() error { return p.err }

// NextSegment implements path.SegmentSource.
func (p *Parser) NextSegment() (path.Segment, bool) {
	for len(p.pending) == 0 {
		if p.err != nil || !p.parseCommand() {
			return path.Segment{}, false
		}
	}
	s := p.pending[0]
	p.pending = p.pending[1:]
	return s, true
}

func (p *Parser) fail(format string, args ...any) bool {
	p.err = fmt.Errorf("%w: "+format, append([]any{ErrSyntax}, args...)...)
	p.pending = nil
	return false
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f' || c == ','
}

func (p *Parser) skipSpace() {
	for p.pos < len(p.d) && isSpace(p.d[p.pos]) {
		p.pos++
	}
}

func argCount(cmd byte) int {
	switch cmd | 0x20 { // lower case
	case 'm', 'l', 't':
		return 2
	case 'h', 'v':
		return 1
	case 'c':
		return 6
	case 's', 'q':
		return 4
	case 'a':
		return 7
	case 'z':
		return 0
	default:
		return -1
	}
}

// parseCommand reads one argument set (or a close) and queues its segments.
// It returns false at the end of the data or on error.
func (p *Parser) parseCommand() bool {
	p.skipSpace()
	if p.pos >= len(p.d) {
		return false
	}
	cmdPos := p.pos
	c := p.d[p.pos]
	switch {
	case argCount(c) >= 0:
		p.cmd = c
		p.pos++
	case p.cmd == 0:
		return p.fail("path should start with a command at offset %d", cmdPos)
	case p.cmd == 'z' || p.cmd == 'Z':
		return p.fail("unexpected %q after close at offset %d", c, cmdPos)
	}

	if p.cmd == 'z' || p.cmd == 'Z' {
		p.pending = append(p.pending, path.ClosePath())
		p.cur = p.start
		p.prevCmd = 'z'
		return true
	}

	var args [7]float32
	n := argCount(p.cmd)
	for i := 0; i < n; i++ {
		p.skipSpace()
		if (p.cmd|0x20) == 'a' && (i == 3 || i == 4) {
			if p.pos >= len(p.d) || (p.d[p.pos] != '0' && p.d[p.pos] != '1') {
				return p.fail("arc flags should be 0 or 1 in command %q at offset %d", p.cmd, p.pos)
			}
			args[i] = float32(p.d[p.pos] - '0')
			p.pos++
			continue
		}
		f, size := strconv.ParseFloat(p.d[p.pos:])
		if size == 0 {
			return p.fail("sets of %d numbers should follow command %q at offset %d", n, p.cmd, cmdPos)
		}
		args[i] = float32(f)
		p.pos += size
	}
	p.emit(p.cmd, args)
	return true
}

func (p *Parser) emit(cmd byte, a [7]float32) {
	rel := cmd >= 'a'
	var origin splatter.Point
	if rel {
		origin = p.cur
	}
	pt := func(x, y float32) splatter.Point {
		return splatter.Pt(origin.X+x, origin.Y+y)
	}
	lower := cmd | 0x20

	switch lower {
	case 'm':
		to := pt(a[0], a[1])
		p.pending = append(p.pending, path.MoveTo(to))
		p.cur, p.start = to, to
		// Further coordinate pairs are implicit line-tos.
		if rel {
			p.cmd = 'l'
		} else {
			p.cmd = 'L'
		}
	case 'l':
		p.lineTo(pt(a[0], a[1]))
	case 'h':
		x := a[0]
		if rel {
			x += p.cur.X
		}
		p.lineTo(splatter.Pt(x, p.cur.Y))
	case 'v':
		y := a[0]
		if rel {
			y += p.cur.Y
		}
		p.lineTo(splatter.Pt(p.cur.X, y))
	case 'c':
		p.cubicTo(pt(a[0], a[1]), pt(a[2], a[3]), pt(a[4], a[5]))
	case 's':
		c1 := p.cur
		if p.prevCmd == 'c' || p.prevCmd == 's' {
			c1 = reflect(p.lastCtrl, p.cur)
		}
		p.cubicTo(c1, pt(a[0], a[1]), pt(a[2], a[3]))
	case 'q':
		p.quadTo(pt(a[0], a[1]), pt(a[2], a[3]))
	case 't':
		c := p.cur
		if p.prevCmd == 'q' || p.prevCmd == 't' {
			c = reflect(p.lastCtrl, p.cur)
		}
		p.quadTo(c, pt(a[0], a[1]))
	case 'a':
		to := pt(a[5], a[6])
		p.pending = appendArc(p.pending, p.cur, a[0], a[1], a[2], a[3] != 0, a[4] != 0, to)
		p.cur = to
	}
	p.prevCmd = lower
}

func (p *Parser) lineTo(to splatter.Point) {
	p.pending = append(p.pending, path.LineTo(to))
	p.cur = to
}

func (p *Parser) cubicTo(c1, c2, to splatter.Point) {
	p.pending = append(p.pending, path.CubicTo(c1, c2, to))
	p.lastCtrl = c2
	p.cur = to
}

func (p *Parser) quadTo(c, to splatter.Point) {
	p.pending = append(p.pending, path.QuadTo(c, to))
	p.lastCtrl = c
	p.cur = to
}

// reflect mirrors ctrl about center.
func reflect(ctrl, center splatter.Point) splatter.Point {
	return splatter.Pt(2*center.X-ctrl.X, 2*center.Y-ctrl.Y)
}
