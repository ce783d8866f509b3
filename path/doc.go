// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package path defines the canonical path event stream and the converters
// that produce it.
//
// A well-formed stream is a sequence of sub-paths, each opened by a Begin
// event and terminated by exactly one End event before the next Begin or the
// end of the stream. Raw segment sources (SVG path data, hand-written
// segment lists) are canonicalized by [Converter], which inserts the End
// events a source omits.
package path
