// Package viz - tcell-backed progress monitor.
package viz

import (
	"fmt"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/gatsp/ga"
)

// Drawing glyphs. Kept ASCII-adjacent so narrow terminal fonts render
// the tour legibly.
const (
	glyphCity = 'o'
	glyphEdge = '·'
)

// statusRows is the number of screen rows reserved for the summary
// line at the bottom.
const statusRows = 1

// Monitor draws per-generation snapshots onto a tcell screen.
type Monitor struct {
	screen tcell.Screen
	coords [][2]float64

	// optimum, when positive, is printed as a gap percentage.
	optimum float64

	interrupted atomic.Bool
	done        chan struct{}
}

// NewMonitor opens the real terminal screen for the given city
// coordinates. Call Close when the run finishes.
func NewMonitor(coords [][2]float64) (*Monitor, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}

	return NewMonitorWithScreen(screen, coords)
}

// NewMonitorWithScreen wires a caller-provided screen (the simulation
// screen in tests). The monitor takes ownership: Close finalizes it.
func NewMonitorWithScreen(screen tcell.Screen, coords [][2]float64) (*Monitor, error) {
	if len(coords) == 0 {
		return nil, ErrNoCoordinates
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	m := &Monitor{
		screen: screen,
		coords: append([][2]float64(nil), coords...),
		done:   make(chan struct{}),
	}
	go m.pollKeys()

	return m, nil
}

// SetOptimum registers a known optimal cost; the status line then shows
// the relative gap. Call before the run starts.
func (m *Monitor) SetOptimum(opt float64) {
	if opt > 0 {
		m.optimum = opt
	}
}

// Observer returns the ga.Observer that drives this monitor.
func (m *Monitor) Observer() ga.Observer {
	return func(s ga.Snapshot) error {
		if m.interrupted.Load() {
			return ErrInterrupted
		}
		m.draw(s)

		return nil
	}
}

// Close stops event handling and restores the terminal.
func (m *Monitor) Close() {
	// Fini unblocks the pending PollEvent; the goroutine exits on the
	// nil event it receives afterwards.
	m.screen.Fini()
	<-m.done
}

// pollKeys drains screen events until Fini. Esc and Ctrl-C raise the
// interrupt flag read by the observer.
func (m *Monitor) pollKeys() {
	defer close(m.done)

	for {
		ev := m.screen.PollEvent()
		if ev == nil {
			return
		}
		switch ev := ev.(type) {
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
				m.interrupted.Store(true)
			}
		case *tcell.EventResize:
			m.screen.Sync()
		}
	}
}

// draw renders one snapshot: tour edges first, city markers on top,
// status line last.
func (m *Monitor) draw(s ga.Snapshot) {
	m.screen.Clear()

	width, height := m.screen.Size()
	plotH := height - statusRows
	if width < 2 || plotH < 2 {
		m.screen.Show()
		return
	}

	pts := m.project(width, plotH)

	var (
		edgeStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
		cityStyle = tcell.StyleDefault.Foreground(tcell.ColorYellow)
		i         int
		a, b      [2]int
	)
	for i = 0; i < len(s.BestTour); i++ {
		a = pts[s.BestTour[i]]
		b = pts[s.BestTour[(i+1)%len(s.BestTour)]]
		m.line(a[0], a[1], b[0], b[1], edgeStyle)
	}
	for i = 0; i < len(pts); i++ {
		m.screen.SetContent(pts[i][0], pts[i][1], glyphCity, nil, cityStyle)
	}

	m.status(s, width, height-1)
	m.screen.Show()
}

// project scales the city coordinates into the w×h plot area,
// preserving relative layout.
func (m *Monitor) project(w, h int) [][2]int {
	var (
		minX, maxX = m.coords[0][0], m.coords[0][0]
		minY, maxY = m.coords[0][1], m.coords[0][1]
		c          [2]float64
	)
	for _, c = range m.coords {
		if c[0] < minX {
			minX = c[0]
		}
		if c[0] > maxX {
			maxX = c[0]
		}
		if c[1] < minY {
			minY = c[1]
		}
		if c[1] > maxY {
			maxY = c[1]
		}
	}

	spanX := maxX - minX
	spanY := maxY - minY
	if spanX == 0 {
		spanX = 1
	}
	if spanY == 0 {
		spanY = 1
	}

	pts := make([][2]int, len(m.coords))

	var i int
	for i, c = range m.coords {
		pts[i] = [2]int{
			int((c[0] - minX) / spanX * float64(w-1)),
			int((c[1] - minY) / spanY * float64(h-1)),
		}
	}

	return pts
}

// line draws a Bresenham segment of edge glyphs between two cells.
func (m *Monitor) line(x0, y0, x1, y1 int, style tcell.Style) {
	var (
		dx = abs(x1 - x0)
		dy = -abs(y1 - y0)
		sx = 1
		sy = 1
	)
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}

	var (
		err = dx + dy
		e2  int
	)
	for {
		m.screen.SetContent(x0, y0, glyphEdge, nil, style)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 = 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// status prints the one-line generation summary at row y.
func (m *Monitor) status(s ga.Snapshot, width, y int) {
	text := fmt.Sprintf("gen %d  best %.1f  avg %.1f  unique %.2f  stagnation %d",
		s.Generation, s.BestCost, s.AverageCost, s.Diversity.UniqueRatio, s.Stagnation)
	if m.optimum > 0 {
		text += fmt.Sprintf("  gap %.2f%%", (s.BestCost-m.optimum)/m.optimum*100)
	}
	text += "  [Esc to stop]"

	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)

	var x int
	for _, r := range text {
		if x >= width {
			break
		}
		m.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
