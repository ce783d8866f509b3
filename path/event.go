// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package path

import (
	"fmt"

	"github.com/gogpu/splatter"
)

// EventKind identifies the variant of an Event.
type EventKind uint8

// Event kinds.
const (
	KindBegin EventKind = iota
	KindLine
	KindQuadratic
	KindCubic
	KindEnd
)

// String returns the name of the kind.
func (k EventKind) String() string {
	switch k {
	case KindBegin:
		return "Begin"
	case KindLine:
		return "Line"
	case KindQuadratic:
		return "Quadratic"
	case KindCubic:
		return "Cubic"
	case KindEnd:
		return "End"
	default:
		return fmt.Sprintf("EventKind(%d)", uint8(k))
	}
}

// Event is one canonical path instruction. Which fields are meaningful
// depends on Kind:
//
//	Begin      To (the start point, see At)
//	Line       From, To
//	Quadratic  From, Ctrl1, To
//	Cubic      From, Ctrl1, Ctrl2, To
//	End        From (last point), To (first point), Close
type Event struct {
	Kind  EventKind
	From  splatter.Point
	Ctrl1 splatter.Point
	Ctrl2 splatter.Point
	To    splatter.Point
	Close bool
}

// Begin creates a Begin event.
func Begin(at splatter.Point) Event {
	return Event{Kind: KindBegin, To: at}
}

// Line creates a Line event.
func Line(from, to splatter.Point) Event {
	return Event{Kind: KindLine, From: from, To: to}
}

// Quadratic creates a quadratic Bezier event.
func Quadratic(from, ctrl, to splatter.Point) Event {
	return Event{Kind: KindQuadratic, From: from, Ctrl1: ctrl, To: to}
}

// Cubic creates a cubic Bezier event.
func Cubic(from, ctrl1, ctrl2, to splatter.Point) Event {
	return Event{Kind: KindCubic, From: from, Ctrl1: ctrl1, Ctrl2: ctrl2, To: to}
}

// End creates an End event for a sub-path whose last point is last and whose
// first point is first.
func End(last, first splatter.Point, close bool) Event {
	return Event{Kind: KindEnd, From: last, To: first, Close: close}
}

// At returns the start point of a Begin event.
func (e Event) At() splatter.Point { return e.To }

// Last returns the last point of an End event.
func (e Event) Last() splatter.Point { return e.From }

// First returns the first point of an End event.
func (e Event) First() splatter.Point { return e.To }

// IsEdge reports whether the event draws geometry (line or curve).
func (e Event) IsEdge() bool {
	return e.Kind == KindLine || e.Kind == KindQuadratic || e.Kind == KindCubic
}

// Map returns the event with every point passed through f.
func (e Event) Map(f func(splatter.Point) splatter.Point) Event {
	e.From = f(e.From)
	e.Ctrl1 = f(e.Ctrl1)
	e.Ctrl2 = f(e.Ctrl2)
	e.To = f(e.To)
	return e
}

// String returns a debug representation of the event.
func (e Event) String() string {
	switch e.Kind {
	case KindBegin:
		return fmt.Sprintf("Begin(%v)", e.To)
	case KindLine:
		return fmt.Sprintf("Line(%v -> %v)", e.From, e.To)
	case KindQuadratic:
		return fmt.Sprintf("Quadratic(%v, %v -> %v)", e.From, e.Ctrl1, e.To)
	case KindCubic:
		return fmt.Sprintf("Cubic(%v, %v, %v -> %v)", e.From, e.Ctrl1, e.Ctrl2, e.To)
	case KindEnd:
		return fmt.Sprintf("End(last %v, first %v, close %t)", e.From, e.To, e.Close)
	default:
		return e.Kind.String()
	}
}
