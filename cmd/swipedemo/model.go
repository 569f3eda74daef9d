// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"cogentcore.org/swipe/anim"
	"cogentcore.org/swipe/events"
	"cogentcore.org/swipe/gesture"
	"cogentcore.org/swipe/math32"
	"cogentcore.org/swipe/surfaces"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// frameInterval is the animation tick interval.
const frameInterval = time.Second / 60

type tickMsg time.Time

type configMsg struct {
	cfg *gesture.Config
}

// section is a horizontal band of the screen driving one surface.
type section struct {
	name   string
	top    int
	height int
	target interface{ HandleEvent(ev *events.Event) }
}

// contains returns whether row y is in the section.
func (s *section) contains(y int) bool {
	return y >= s.top && y < s.top+s.height
}

type model struct {
	scale  float32
	width  int
	height int
	sched  anim.Scheduler
	last   time.Time

	frame    *surfaces.Frame
	carousel *surfaces.Carousel
	drawer   *surfaces.Drawer

	sections []*section
	capture  *section
}

func newModel(cfg *gesture.Config, scale float32) *model {
	m := &model{scale: scale, width: 80, height: 24}
	m.frame = surfaces.NewFrame(&m.sched, cfg, "Home", "Inbox", "Archive")
	m.frame.ShowDefault()
	m.carousel = surfaces.NewCarousel(&m.sched, cfg, surfaces.Whole,
		surfaces.NewItems("one", "two", "three", "four", "five")...)
	m.drawer = surfaces.NewDrawer(&m.sched, cfg, 24*scale)
	m.sections = []*section{
		{name: "frame", top: 2, height: 5, target: m.frame},
		{name: "carousel", top: 9, height: 4, target: m.carousel},
		{name: "drawer", top: 15, height: 4, target: m.drawer},
	}
	m.layout()
	return m
}

// layout sizes the surfaces to the terminal width.
func (m *model) layout() {
	w := float32(m.width) * m.scale
	m.frame.Size = math32.Vec2(w, 5*m.scale)
	m.frame.Extent = w / 2
	m.carousel.Resize(math32.Vec2(w, 3*m.scale))
	m.drawer.Size = math32.Vec2(w, 4*m.scale)
}

func tick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *model) Init() tea.Cmd {
	m.last = time.Now()
	return tick()
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.layout()
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "d":
			m.drawer.SetOpen(!m.drawer.Open)
		case "s":
			m.carousel.SetStyle((m.carousel.Style + 1) % surfaces.System)
		}
	case tea.MouseMsg:
		m.mouse(tea.MouseEvent(msg))
	case tickMsg:
		now := time.Time(msg)
		m.sched.Step(now.Sub(m.last))
		m.last = now
		return m, tick()
	case configMsg:
		m.frame.OnConfigurationChanged(msg.cfg)
		m.carousel.OnConfigurationChanged(msg.cfg)
		m.drawer.OnConfigurationChanged(msg.cfg)
	}
	return m, nil
}

// mouse turns a mouse event into a pointer event for the section that
// the press started in. Motion outside that section is a leave.
func (m *model) mouse(me tea.MouseEvent) {
	switch me.Action {
	case tea.MouseActionPress:
		if me.Button != tea.MouseButtonLeft {
			return
		}
		m.capture = nil
		for _, s := range m.sections {
			if s.contains(me.Y) {
				m.capture = s
			}
		}
		m.send(events.PointerDown, me)
	case tea.MouseActionMotion:
		if m.capture == nil {
			return
		}
		if !m.capture.contains(me.Y) || me.X < 0 || me.X >= m.width {
			m.send(events.PointerLeave, me)
			m.capture = nil
			return
		}
		m.send(events.PointerMove, me)
	case tea.MouseActionRelease:
		m.send(events.PointerUp, me)
		m.capture = nil
	}
}

func (m *model) send(typ events.Types, me tea.MouseEvent) {
	s := m.capture
	if s == nil {
		return
	}
	where := math32.Vec2(float32(me.X)*m.scale, float32(me.Y-s.top)*m.scale)
	ev := events.NewPointer(typ, where)
	slog.Debug("pointer", "section", s.name, "event", ev)
	s.target.HandleEvent(ev)
}

// cells converts a gesture distance to whole terminal cells.
func (m *model) cells(v float32) int {
	return int(math32.Floor(v/m.scale + 0.5))
}

// gray returns a gray of the given opacity against a dark background.
func gray(opacity float32) lipgloss.Color {
	v := int(math32.Clamp(opacity, 0, 1)*200) + 40
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", v, v, v))
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	drawerStyle = lipgloss.NewStyle().Background(lipgloss.Color("4")).Foreground(lipgloss.Color("15"))
	dotStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
)

// place writes s into line starting at column col, clipping at both ends.
func place(line []rune, col int, s string) {
	for i, r := range []rune(s) {
		if c := col + i; c >= 0 && c < len(line) {
			line[c] = r
		}
	}
}

func (m *model) blank() []rune {
	return []rune(strings.Repeat(" ", m.width))
}

func (m *model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("swipedemo") + labelStyle.Render("  drag to swipe, d: drawer, s: carousel style, q: quit") + "\n\n")

	// frame
	page := m.blank()
	name := fmt.Sprint(m.frame.Content)
	place(page, (m.width-len(name))/2+m.cells(m.frame.Offset()), name)
	fs := lipgloss.NewStyle().Foreground(gray(m.frame.Opacity))
	b.WriteString(labelStyle.Render("frame") + "\n")
	for row := range 4 {
		if row == 1 {
			b.WriteString(fs.Render(string(page)) + "\n")
			continue
		}
		b.WriteString("\n")
	}
	b.WriteString("\n\n")

	// carousel
	strip := m.blank()
	ca := m.carousel
	for i, it := range ca.Items {
		if !it.Realized || it.Transform == nil {
			continue
		}
		x := float32(i-ca.ScrollOffset)*it.Size.X + it.Transform.Get()
		label := fmt.Sprintf("[ %v ]", it.Value)
		place(strip, m.cells(x+it.Size.X/2)-len(label)/2, label)
	}
	b.WriteString(labelStyle.Render("carousel ("+ca.Style.String()+")") + "\n")
	b.WriteString(string(strip) + "\n")
	var dots strings.Builder
	for _, on := range ca.Indicator() {
		if on {
			dots.WriteString("● ")
		} else {
			dots.WriteString("○ ")
		}
	}
	b.WriteString(dotStyle.Render(dots.String()) + "\n\n\n")

	// drawer
	b.WriteString(labelStyle.Render("drawer") + "\n")
	open := max(m.cells(m.drawer.Offset()+m.drawer.Width), 0)
	for range 3 {
		line := m.blank()
		if open > 0 {
			b.WriteString(drawerStyle.Render(string(line[:min(open, len(line))])))
			line = line[min(open, len(line)):]
		}
		b.WriteString(string(line) + "\n")
	}
	return b.String()
}
