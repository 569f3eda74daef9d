// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package surfaces

import (
	"fmt"
	"log/slog"

	"cogentcore.org/swipe/anim"
	"cogentcore.org/swipe/events"
	"cogentcore.org/swipe/gesture"
	"cogentcore.org/swipe/math32"
	"cogentcore.org/swipe/paging"
	"cogentcore.org/swipe/transition"
)

// Styles are the scrolling styles of a [Carousel].
type Styles int32

const (
	// Whole slides the old item out, then the new one in.
	Whole Styles = iota

	// Connected slides all items together, as one strip.
	Connected

	// Single slides all items together, and pages by as many
	// items as fit in the viewport.
	Single

	// System leaves scrolling to the host; gestures are disabled.
	System
)

func (st Styles) String() string {
	switch st {
	case Whole:
		return "Whole"
	case Connected:
		return "Connected"
	case Single:
		return "Single"
	case System:
		return "System"
	}
	return fmt.Sprintf("Styles(%d)", int32(st))
}

// Shared returns whether all items move with one transform.
func (st Styles) Shared() bool {
	return st == Connected || st == Single
}

// Item is one item of a [Carousel].
type Item struct {

	// Value is the data of the item.
	Value any

	// Size is the measured size of the item, or zero if not measured.
	Size math32.Vector2

	// Realized is whether the item has a live container. Only realized
	// items have a transform and can be animated.
	Realized bool

	// Transform positions the item along the carousel axis relative to
	// its scrolled position. It is nil when the item is not realized.
	Transform *anim.Transform
}

func (it *Item) String() string {
	return fmt.Sprintf("Item{%v, Size: %v, Realized: %v}", it.Value, it.Size, it.Realized)
}

// Carousel is a list of items that pages by swiping along its axis,
// with a page indicator. The scroll position is an item index.
type Carousel struct {
	Surface

	// Items are the items.
	Items []*Item

	// Style is the scrolling style.
	Style Styles

	// Axis is the dimension the carousel scrolls along.
	Axis math32.Dims

	// Selected is the index of the selected item, or -1.
	Selected int

	// ScrollOffset is the index of the first item in view.
	ScrollOffset int

	// Window is the number of items on each side of the view that stay
	// realized; 0 realizes every item.
	Window int

	// Indexer computes the pages.
	Indexer paging.Indexer

	// OnSelected is called when the selection changes. It may be nil.
	OnSelected func(index int)

	// Transition is the last scroll transition started, or nil.
	Transition *transition.Handle

	moving int
	scroll transition.Scroll
}

// NewCarousel returns a new carousel in the given style, with the
// given items.
func NewCarousel(sched *anim.Scheduler, cfg *gesture.Config, style Styles, items ...*Item) *Carousel {
	ca := &Carousel{Style: style, Selected: -1, moving: -1}
	ca.init(ca, sched, cfg)
	ca.scroll.Config = ca.Config
	ca.Indexer.Width = ca.width
	ca.SetStyle(style)
	ca.SetItems(items...)
	return ca
}

// NewItems returns items for the given values.
func NewItems(values ...any) []*Item {
	items := make([]*Item, len(values))
	for i, v := range values {
		items[i] = &Item{Value: v}
	}
	return items
}

// OnConfigurationChanged installs a new config.
func (ca *Carousel) OnConfigurationChanged(cfg *gesture.Config) {
	if ca.setConfig(cfg) {
		ca.scroll.Config = cfg
	}
}

// SetStyle sets the scrolling style and resets the items.
func (ca *Carousel) SetStyle(style Styles) {
	ca.Style = style
	ca.scroll.Delay = style == Whole
	ca.scroll.Shared = style.Shared()
	ca.Indexer.Mode = paging.Uniform
	if style == Single {
		ca.Indexer.Mode = paging.Variable
	}
	ca.resetItems()
}

// SetAxis sets the dimension the carousel scrolls along.
func (ca *Carousel) SetAxis(axis math32.Dims) {
	ca.Axis = axis
	ca.Controller.SetAxis(axis)
	ca.Indexer.Viewport = ca.Size.Dim(axis)
	ca.resetItems()
}

// SetItems replaces the items. A carousel without a valid
// selection selects the first item.
func (ca *Carousel) SetItems(items ...*Item) {
	ca.Items = items
	ca.Indexer.Count = len(items)
	if ca.Selected >= len(items) {
		ca.Selected = -1
	}
	if len(items) > 0 && ca.Selected < 0 {
		ca.ScrollToIndex(0)
		return
	}
	ca.realize()
}

// Resize sets the size of the carousel. In [Single] style the page size
// depends on the size, so the selection snaps to the start of its page.
func (ca *Carousel) Resize(size math32.Vector2) {
	ca.Size = size
	ca.Indexer.Viewport = size.Dim(ca.Axis)
	ca.resetItems()
	if ca.Style != Single || ca.Selected < 0 {
		return
	}
	if snap := ca.Indexer.Snap(ca.Selected); snap != ca.Selected {
		ca.ScrollToIndex(snap)
	}
}

// resetItems sizes the items to the carousel in the whole-page styles
// and gives every realized item a fresh transform.
func (ca *Carousel) resetItems() {
	for _, it := range ca.Items {
		if ca.Style != Single && !ca.Size.IsZero() {
			it.Size = ca.Size
		}
		if it.Realized {
			it.Transform = anim.NewTransform(ca.Scheduler, 0)
		}
	}
}

// realize updates which items are realized for the scroll offset.
func (ca *Carousel) realize() {
	for i, it := range ca.Items {
		in := ca.Window <= 0 || (i >= ca.ScrollOffset-ca.Window && i <= ca.ScrollOffset+ca.Window)
		switch {
		case in && !it.Realized:
			it.Realized = true
			it.Transform = anim.NewTransform(ca.Scheduler, 0)
		case !in && it.Realized:
			it.Realized = false
			it.Transform = nil
		}
	}
}

// width returns the measured extent of item i along the axis.
func (ca *Carousel) width(i int) float32 {
	it := ca.Items[i]
	if !it.Realized {
		return 0
	}
	return it.Size.Dim(ca.Axis)
}

// ScrollToIndex scrolls to the given index without animation, selecting
// it. All item transforms are reset.
func (ca *Carousel) ScrollToIndex(index int) {
	if index < 0 || index >= len(ca.Items) {
		return
	}
	ca.ScrollOffset = index
	ca.realize()
	ca.resetItems()
	ca.setSelected(index)
}

func (ca *Carousel) setSelected(index int) {
	if ca.Selected == index {
		return
	}
	ca.Selected = index
	slog.Debug("carousel selected", "index", index)
	if ca.OnSelected != nil {
		ca.OnSelected(index)
	}
}

// Select selects the given index with an animation.
// It returns false if index is not a valid new selection.
func (ca *Carousel) Select(index int) bool {
	return ca.selectIndex(index, 0)
}

// selectIndex animates the selection to index. A force of -1 moves the
// items toward the start and +1 toward the end, whatever the order of
// the indexes; 0 follows the order.
func (ca *Carousel) selectIndex(index int, force float32) bool {
	if !ca.Indexer.Valid(index, ca.Selected) {
		return false
	}
	from := ca.Selected
	ca.setSelected(index)
	if from < 0 || ca.Style == System {
		ca.ScrollToIndex(index)
		return true
	}
	ca.animate(index, from, force)
	return true
}

// animate starts the scroll transition from the item at remove to the
// item at add.
func (ca *Carousel) animate(add, remove int, force float32) {
	in, out := ca.Items[add], ca.Items[remove]
	if !out.Realized {
		ca.ScrollToIndex(add)
		return
	}
	if !in.Realized {
		if !ca.Style.Shared() {
			ca.ScrollToIndex(add)
			return
		}
		in = out
	}
	factor := force
	if factor == 0 {
		factor = 1
		if add > remove {
			factor = -1
		}
	}
	var distance float32
	if ca.Style == Single {
		distance = factor * ca.travel(min(add, remove), max(add, remove), out)
	} else {
		distance = factor * in.Size.Dim(ca.Axis)
	}
	exit := factor * out.Size.Dim(ca.Axis)
	ca.Transition = ca.scroll.Begin(in.Transform, out.Transform, distance, exit,
		func() *anim.Transform { return in.Transform },
		func() { ca.ScrollToIndex(add) })
}

// travel returns the total extent of the items in [start, end). Items
// that are not measured count as the last measured one before them, or
// as fallback.
func (ca *Carousel) travel(start, end int, fallback *Item) float32 {
	var sum, last float32
	for i := start; i < end; i++ {
		w := ca.width(i)
		if w <= 0 {
			if last <= 0 {
				last = fallback.Size.Dim(ca.Axis)
			}
			w = last
		} else {
			last = w
		}
		sum += w
	}
	return sum
}

// ItemAt returns the index of the item at the given position,
// or -1 if there is none.
func (ca *Carousel) ItemAt(where math32.Vector2) int {
	pos := where.Dim(ca.Axis)
	if pos < 0 {
		return -1
	}
	var start float32
	for i := ca.ScrollOffset; i < len(ca.Items); i++ {
		end := start + ca.Items[i].Size.Dim(ca.Axis)
		if pos < end {
			return i
		}
		start = end
	}
	return -1
}

// HandleEvent handles a pointer event. A press selects the item that
// the gesture moves.
func (ca *Carousel) HandleEvent(ev *events.Event) {
	if ev.Type == events.PointerDown {
		ca.moving = ca.ItemAt(ev.Where)
		if ca.moving < 0 {
			ca.moving = ca.Selected
		}
	}
	ca.Controller.HandleEvent(ev)
	if ev.Type == events.PointerUp || ev.Type == events.PointerLeave && !ca.Controller.Session.Active {
		ca.moving = -1
	}
}

func (ca *Carousel) movingItem() *Item {
	if ca.moving < 0 || ca.moving >= len(ca.Items) {
		return nil
	}
	return ca.Items[ca.moving]
}

// ActiveTransform returns the transform of the item being moved.
func (ca *Carousel) ActiveTransform() *anim.Transform {
	if it := ca.movingItem(); it != nil {
		return it.Transform
	}
	return nil
}

// SetActiveTransform sets the transform of the item being moved.
func (ca *Carousel) SetActiveTransform(t *anim.Transform) {
	if it := ca.movingItem(); it != nil {
		it.Transform = t
	}
}

// GesturePressed supersedes the running scroll transition, so that its
// completion cannot reset the transform the new gesture holds, and shares
// the transform of the pressed item with every realized item in the
// shared styles.
func (ca *Carousel) GesturePressed(s *gesture.Session) {
	ca.Transition.Supersede()
	t := ca.ActiveTransform()
	if !ca.Style.Shared() || t == nil {
		return
	}
	for _, it := range ca.Items {
		if it.Realized {
			it.Transform = t
		}
	}
}

// GestureEnabled returns whether a realized item is pressed
// and the style is not [System].
func (ca *Carousel) GestureEnabled() bool {
	it := ca.movingItem()
	return ca.Style != System && it != nil && it.Realized
}

// IgnoreLeave reports a leave inside the carousel as false in the shared
// styles, where a press near an item edge causes spurious leaves.
func (ca *Carousel) IgnoreLeave(where math32.Vector2) bool {
	return ca.Style.Shared() && where.In(ca.Size)
}

// Commit selects the next page on [gesture.Advance] and the previous
// one on [gesture.Retreat]; the items move in the direction of the swipe.
func (ca *Carousel) Commit(o gesture.Outcome, s *gesture.Session) bool {
	if o == gesture.Advance {
		return ca.selectIndex(ca.Indexer.Next(ca.Selected), -1)
	}
	return ca.selectIndex(ca.Indexer.Previous(ca.Selected), 1)
}

// Restore animates the moved item back to its position.
func (ca *Carousel) Restore(s *gesture.Session) {
	ca.restore(ca.ActiveTransform(), 0)
}

// Data returns the current page data.
func (ca *Carousel) Data() paging.PageData {
	return ca.Indexer.Data()
}

// Indicator returns one entry per page, true for the page of the selection.
func (ca *Carousel) Indicator() []bool {
	pd := ca.Indexer.Data()
	ind := make([]bool, pd.PageCount)
	if ca.Selected < 0 || ca.Style == System {
		return ind
	}
	if p := ca.Indexer.PageOf(ca.Selected); p >= 0 && p < len(ind) {
		ind[p] = true
	}
	return ind
}

// IndicatorTap scrolls to the start of the given page without animation.
func (ca *Carousel) IndicatorTap(page int) {
	if page < 0 || page >= ca.Indexer.Data().PageCount {
		return
	}
	ca.ScrollToIndex(ca.Indexer.IndexOfPage(page))
}

// Listen registers the carousel for pointer events on ls.
func (ca *Carousel) Listen(ls *events.Listeners) []events.Handle {
	return listen(ls, ca.HandleEvent)
}
