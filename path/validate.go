// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package path

import (
	"errors"
	"fmt"
	"iter"
)

// ErrMalformed is returned by Validate for streams that break the Begin/End
// pairing.
var ErrMalformed = errors.New("path: malformed event stream")

// Validate reports the first event that breaks the well-formed stream rules:
// edges and End only inside an open sub-path, no Begin while one is open, and
// no sub-path left open at the end.
func Validate(events iter.Seq[Event]) error {
	open := false
	i := 0
	for e := range events {
		switch {
		case e.Kind == KindBegin && open:
			return fmt.Errorf("%w: event %d: Begin while a sub-path is open", ErrMalformed, i)
		case e.Kind == KindBegin:
			open = true
		case !open:
			return fmt.Errorf("%w: event %d: %s outside a sub-path", ErrMalformed, i, e.Kind)
		case e.Kind == KindEnd:
			open = false
		}
		i++
	}
	if open {
		return fmt.Errorf("%w: sub-path not terminated", ErrMalformed)
	}
	return nil
}
