// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

// Listeners registers lists of event listener functions
// to receive different event types.
// Listeners are closure methods with all context captured,
// registered on specific objects.
type Listeners struct {
	funs   map[Types][]listener
	nextID int
}

type listener struct {
	id  int
	fun func(ev *Event)
}

// Handle identifies a registered listener so that it can be removed.
type Handle struct {
	typ Types
	id  int
}

// Add adds a function for the given type, returning a handle
// that can be passed to [Listeners.Remove].
func (ls *Listeners) Add(typ Types, fun func(ev *Event)) Handle {
	if ls.funs == nil {
		ls.funs = make(map[Types][]listener)
	}
	ls.nextID++
	ls.funs[typ] = append(ls.funs[typ], listener{id: ls.nextID, fun: fun})
	return Handle{typ: typ, id: ls.nextID}
}

// Remove removes the listener with the given handle,
// returning false if it was not registered.
func (ls *Listeners) Remove(h Handle) bool {
	fs := ls.funs[h.typ]
	for i, l := range fs {
		if l.id == h.id {
			ls.funs[h.typ] = append(fs[:i], fs[i+1:]...)
			return true
		}
	}
	return false
}

// Len returns the number of listeners for the given type.
func (ls *Listeners) Len(typ Types) int {
	return len(ls.funs[typ])
}

// Call calls all functions for given event.
// It goes in _reverse_ order to the last functions added are the first called
// and it stops when the event is marked as Handled.  This allows for a natural
// and optional override behavior, as compared to requiring more complex
// priority-based mechanisms.
func (ls *Listeners) Call(ev *Event) {
	if ev.IsHandled() {
		return
	}
	fs := ls.funs[ev.Type]
	for i := len(fs) - 1; i >= 0; i-- {
		fs[i].fun(ev)
		if ev.IsHandled() {
			break
		}
	}
}
