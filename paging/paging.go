// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package paging computes page sizes and page-aware navigation targets
// for a carousel of items that may have different widths.
package paging

import (
	"fmt"

	"cogentcore.org/swipe/math32"
)

// PageData describes how the items of a carousel are split into pages.
type PageData struct {

	// PageSize is the number of items on one page. It is at least 1.
	PageSize int

	// PageCount is the number of pages.
	PageCount int
}

func (pd PageData) String() string {
	return fmt.Sprintf("PageData{Size: %d, Count: %d}", pd.PageSize, pd.PageCount)
}

// Modes are the paging modes of an [Indexer].
type Modes int32

const (
	// Uniform has one item per page; navigation moves by one item.
	Uniform Modes = iota

	// Variable fits as many items on a page as the viewport holds,
	// based on the first measured item width.
	Variable
)

func (m Modes) String() string {
	switch m {
	case Uniform:
		return "Uniform"
	case Variable:
		return "Variable"
	}
	return fmt.Sprintf("Modes(%d)", int32(m))
}

// Indexer computes page data and navigation targets for a list of items.
// Its fields are read at every call, so it always reflects the current
// item count and viewport.
type Indexer struct {

	// Count is the number of items.
	Count int

	// Viewport is the extent of the visible area along the paging axis.
	Viewport float32

	// Mode is the paging mode.
	Mode Modes

	// Width returns the measured extent of item i along the paging axis,
	// or 0 if it is not measured (for example not realized). It is only
	// used in [Variable] mode.
	Width func(i int) float32
}

// Data returns the current page data.
func (ix *Indexer) Data() PageData {
	if ix.Count <= 0 {
		return PageData{PageSize: 1, PageCount: 0}
	}
	if ix.Mode != Variable {
		return PageData{PageSize: 1, PageCount: ix.Count}
	}
	size := 1
	if ix.Width != nil {
		for i := range ix.Count {
			w := ix.Width(i)
			if w > 0 {
				size = max(int(math32.Floor(ix.Viewport/w)), 1)
				break
			}
		}
	}
	return PageData{PageSize: size, PageCount: (ix.Count + size - 1) / size}
}

// Next returns the target index for advancing from index. The result can
// be out of range at the end of the list, which [Indexer.Valid] reports.
func (ix *Indexer) Next(index int) int {
	if ix.Mode != Variable {
		return index + 1
	}
	size := ix.Data().PageSize
	t := index + size
	switch {
	case t > ix.Count:
		return ix.Count
	case ix.Count-t < size:
		// a partial last page is shown aligned to the end
		return max(ix.Count-size, 0)
	}
	return t
}

// Previous returns the target index for retreating from index.
// The result can be out of range at the start of the list.
func (ix *Indexer) Previous(index int) int {
	if ix.Mode != Variable {
		return index - 1
	}
	size := ix.Data().PageSize
	t := index - size
	switch {
	case t <= 0:
		return 0
	case t%size != 0:
		return index - index%size
	}
	return t
}

// Valid returns whether target is a selectable index different from current.
func (ix *Indexer) Valid(target, current int) bool {
	return target >= 0 && target < ix.Count && target != current
}

// PageOf returns the page that index is shown on, for the page indicator.
// In [Variable] mode an index between page boundaries rounds up, so the
// end-aligned last page is reported as the last page.
func (ix *Indexer) PageOf(index int) int {
	if ix.Mode != Variable {
		return index
	}
	size := ix.Data().PageSize
	return (index + size - 1) / size
}

// IndexOfPage returns the first index of the given page.
func (ix *Indexer) IndexOfPage(page int) int {
	return page * ix.Data().PageSize
}

// Snap returns the page boundary at or below index. It is used when the
// page size changes, so that the selection starts a page again.
func (ix *Indexer) Snap(index int) int {
	size := ix.Data().PageSize
	return index - index%size
}
