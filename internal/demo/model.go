// Package demo is a terminal harness for a scroll stack. Keys synthesize drag
// gestures and scroll requests; a frame tick steps the animation scheduler and
// the content is drawn as text rows.
package demo

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/go-drift/snapscroll/pkg/animation"
	"github.com/go-drift/snapscroll/pkg/config"
	"github.com/go-drift/snapscroll/pkg/errors"
	"github.com/go-drift/snapscroll/pkg/geometry"
	"github.com/go-drift/snapscroll/pkg/scroll"
)

const (
	// StackID is the id of the demo's scroll stack.
	StackID = "demo"
	// RowHeight is the number of points one terminal row stands for.
	RowHeight = 20
	// ContentWidth is the width of content and container in points.
	ContentWidth = 800
	// FrameInterval is how often the scheduler is stepped.
	FrameInterval = 16 * time.Millisecond

	// dragStep is how far one drag key press moves the finger.
	dragStep = 3 * RowHeight
	// flingDistance is the extra travel a fling key predicts past release.
	flingDistance = 600
	// chromeRows are the terminal rows used by the status and help lines.
	chromeRows = 4
)

type frameMsg time.Time

type line struct {
	text   string
	header bool
}

type section struct {
	id    string
	title string
	top   int
	rows  int
}

// Model is the bubbletea model of the demo. It also implements
// errors.ErrorHandler so reported problems show up in the status line.
type Model struct {
	stack     *scroll.Stack
	scheduler *animation.Scheduler
	keys      keyMap
	help      help.Model

	lines    []line
	sections []section
	width    int
	height   int

	dragging    bool
	translation float64
	background  bool
	section     int
	lastError   string
}

var _ errors.ErrorHandler = (*Model)(nil)

// New builds the demo around a new stack configured by cfg. A nil clock
// uses wall time.
func New(cfg config.Config, clock animation.Clock, opts ...scroll.Option) *Model {
	scheduler := animation.NewScheduler(clock)
	m := &Model{
		stack:     scroll.NewStack(StackID, cfg, scheduler, opts...),
		scheduler: scheduler,
		keys:      defaultKeyMap(),
		help:      help.New(),
		width:     80,
		height:    24,
	}
	m.buildContent()
	m.stack.Anchors().Batch(func() {
		for _, s := range m.sections {
			m.stack.Anchors().Register(scroll.AnchorDescriptor{
				StackID:    StackID,
				SourceRect: geometry.RectFromLTWH(0, float64(s.top*RowHeight), ContentWidth, float64(s.rows*RowHeight)),
				Configurations: []scroll.AnchorConfiguration{{
					ID:   s.id,
					Axes: geometry.AxisY,
				}},
			})
		}
	})
	m.layout()
	return m
}

// Stack returns the demo's scroll stack.
func (m *Model) Stack() *scroll.Stack {
	return m.stack
}

// Sections returns the guide ids of the content sections in order.
func (m *Model) Sections() []string {
	ids := make([]string, 0, len(m.sections))
	for _, s := range m.sections {
		ids = append(ids, s.id)
	}
	return ids
}

// HandleError records err for the status line.
func (m *Model) HandleError(err *errors.ScrollError) {
	m.lastError = err.Error()
}

// HandlePanic records a recovered panic for the status line.
func (m *Model) HandlePanic(err *errors.PanicError) {
	m.lastError = err.Error()
}

func (m *Model) buildContent() {
	titles := []string{"Overview", "Rubber band", "Guides", "Anchors", "Planner", "Gestures", "Tuning", "Colophon"}
	for i, title := range titles {
		s := section{
			id:    fmt.Sprintf("section.%d", i+1),
			title: title,
			top:   len(m.lines),
		}
		m.lines = append(m.lines, line{text: fmt.Sprintf("§%d %s", i+1, title), header: true})
		for j := range 6 + (i*5)%9 {
			m.lines = append(m.lines, line{text: fmt.Sprintf("  %s, line %d", strings.ToLower(title), j+1)})
		}
		m.lines = append(m.lines, line{})
		s.rows = len(m.lines) - s.top
		m.sections = append(m.sections, s)
	}
}

func (m *Model) viewRows() int {
	return max(m.height-chromeRows, 1)
}

func (m *Model) layout() {
	m.stack.Layout(scroll.StaticBounds{
		Content:   geometry.RectFromLTWH(0, 0, ContentWidth, float64(len(m.lines)*RowHeight)),
		Container: geometry.RectFromLTWH(0, 0, ContentWidth, float64(m.viewRows()*RowHeight)),
	})
}

func tick() tea.Cmd {
	return tea.Tick(FrameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// Init starts the frame loop.
func (m *Model) Init() tea.Cmd {
	return tick()
}

// Update handles window, frame and key messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.layout()
		return m, nil
	case frameMsg:
		m.scheduler.Step()
		return m, tick()
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.DragUp):
		m.drag(dragStep)
	case key.Matches(msg, m.keys.DragDown):
		m.drag(-dragStep)
	case key.Matches(msg, m.keys.Release):
		m.release(0)
	case key.Matches(msg, m.keys.FlingUp):
		m.drag(dragStep)
		m.release(flingDistance)
	case key.Matches(msg, m.keys.FlingDown):
		m.drag(-dragStep)
		m.release(-flingDistance)
	case key.Matches(msg, m.keys.Next):
		m.jumpSection(1)
	case key.Matches(msg, m.keys.Prev):
		m.jumpSection(-1)
	case key.Matches(msg, m.keys.Top):
		m.section = 0
		m.stack.ScrollToGuide(scroll.GuideLeading)
	case key.Matches(msg, m.keys.Bottom):
		m.section = len(m.sections) - 1
		m.stack.ScrollToGuide(scroll.GuideTrailing)
	case key.Matches(msg, m.keys.Background):
		m.background = !m.background
		m.stack.SetForeground(!m.background)
		if m.background {
			m.dragging = false
			m.translation = 0
		}
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return nil
}

func (m *Model) drag(dy float64) {
	if !m.dragging {
		m.dragging = true
		m.translation = 0
	}
	m.translation += dy
	m.stack.HandleGesture(scroll.GestureEvent{
		Phase:       scroll.PhaseChanged,
		Location:    geometry.Offset{Y: m.translation},
		Translation: geometry.Offset{Y: m.translation},
	})
}

func (m *Model) release(extra float64) {
	if !m.dragging {
		return
	}
	m.dragging = false
	m.stack.HandleGesture(scroll.GestureEvent{
		Phase:                   scroll.PhaseEnded,
		Location:                geometry.Offset{Y: m.translation},
		Translation:             geometry.Offset{Y: m.translation},
		PredictedEndTranslation: geometry.Offset{Y: m.translation + extra},
	})
	m.translation = 0
}

func (m *Model) jumpSection(delta int) {
	m.section = min(max(m.section+delta, 0), len(m.sections)-1)
	m.stack.ScrollToGuide(m.sections[m.section].id)
}

// View draws the visible rows, a status line and the key help.
func (m *Model) View() string {
	offset := m.stack.Offset()
	guides := m.guideRows()

	var b strings.Builder
	for r := range m.viewRows() {
		contentY := float64(r*RowHeight) - offset.Y
		idx := int(math.Floor(contentY / RowHeight))
		marker := "  "
		if guides[idx] {
			marker = styles.Guide.Render("▸ ")
		}
		switch {
		case idx < 0 || idx >= len(m.lines):
			b.WriteString(styles.Overflow.Render("  ·"))
		case m.lines[idx].header:
			b.WriteString(marker + styles.Header.Render(m.lines[idx].text))
		default:
			b.WriteString(marker + styles.Body.Render(m.lines[idx].text))
		}
		b.WriteByte('\n')
	}

	b.WriteString(m.statusLine(offset))
	b.WriteByte('\n')
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// guideRows returns the content rows that a vertical guide would put at the
// top of the container.
func (m *Model) guideRows() map[int]bool {
	rows := make(map[int]bool)
	for _, g := range m.stack.Guides() {
		if y, ok := g.Value(geometry.AxisY); ok {
			rows[int(math.Round(-y/RowHeight))] = true
		}
	}
	return rows
}

func (m *Model) statusLine(offset geometry.Offset) string {
	state := m.stack.GestureState().String()
	if m.background {
		state += " (background)"
	}
	parts := []string{
		styles.StatusKey.Render("y") + fmt.Sprintf(" %7.1f", offset.Y),
		styles.StatusKey.Render("target") + fmt.Sprintf(" %7.1f", m.stack.Target().Y),
		styles.StatusKey.Render("state") + " " + state,
	}
	if guide := m.stack.LastPlan().GuideY; guide != "" {
		parts = append(parts, styles.StatusKey.Render("guide")+" "+guide)
	}
	status := strings.Join(parts, "  ")
	if m.lastError != "" {
		status += "\n" + styles.Error.Render(m.lastError)
	}
	return styles.Status.Width(max(m.width, 1)).Render(status)
}
