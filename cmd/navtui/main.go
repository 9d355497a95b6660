// navtui drives the scroll camera from a terminal. Section anchors are projected through the live
// camera and drawn as digits; the right column is the scrollbar.
//
// Controls:
//
//	Wheel/Up/Down - scroll the page
//	0-9           - jump to a section
//	n/p           - next/previous section
//	d             - toggle the detail view
//	c             - clear the pending jump
//	Esc/q         - quit
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/Carmen-Shannon/oxy-scroll/common"
	"github.com/Carmen-Shannon/oxy-scroll/engine"
	"github.com/Carmen-Shannon/oxy-scroll/engine/navigator"
	"github.com/Carmen-Shannon/oxy-scroll/engine/scroll"
	"github.com/Carmen-Shannon/oxy-scroll/engine/section"
	"github.com/Carmen-Shannon/oxy-scroll/internal/config"
)

const (
	frameInterval = 16 * time.Millisecond
	// cellAspect is the height/width ratio of one terminal cell.
	cellAspect = 2.0
)

type app struct {
	screen        tcell.Screen
	width, height int

	eng   engine.Engine
	table section.Table
	cue   *cue
}

func newApp(cfg *config.Config, logger *log.Logger) (*app, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.EnableMouse()

	table := section.DefaultTable()
	a := &app{
		screen: screen,
		table:  table,
		eng: engine.NewEngine(
			engine.WithTable(table),
			engine.WithLineHeight(float32(cfg.Scroll.LineHeight)),
			engine.WithContainer(scroll.NewContainer(
				scroll.WithHeights(float32(cfg.Scroll.ContentHeight), float32(cfg.Window.Height)),
			)),
			engine.WithNavigatorOptions(cfg.NavigatorOptions(logger)...),
			engine.WithOrientationOptions(cfg.OrientationOptions(logger)...),
		),
	}
	a.resize()

	a.cue, err = newCue()
	if err != nil {
		// Non-fatal, the host runs without sound
		log.Printf("[navtui] audio initialization failed: %v", err)
	}
	return a, nil
}

func (a *app) resize() {
	a.width, a.height = a.screen.Size()
	if a.height > 0 {
		a.eng.Camera().SetAspect(float32(a.width) / (float32(a.height) * cellAspect))
	}
	a.screen.Sync()
}

// handleInput returns false when the host should exit.
func (a *app) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyUp:
			a.eng.Wheel(1)
		case tcell.KeyDown:
			a.eng.Wheel(-1)
		case tcell.KeyRune:
			a.handleRune(ev.Rune())
			return ev.Rune() != 'q'
		}
	case *tcell.EventMouse:
		buttons := ev.Buttons()
		if buttons&tcell.WheelUp != 0 {
			a.eng.Wheel(1)
		}
		if buttons&tcell.WheelDown != 0 {
			a.eng.Wheel(-1)
		}
	case *tcell.EventResize:
		a.resize()
	}
	return true
}

func (a *app) handleRune(r rune) {
	if digit, ok := common.DigitKey(uint32(r)); ok {
		a.eng.RequestSection(digit)
		return
	}
	effective := a.eng.Snapshot().Nav.Effective()
	switch r {
	case 'n':
		a.eng.RequestSection(effective + 1)
	case 'p':
		a.eng.RequestSection(effective - 1)
	case 'd':
		a.eng.ToggleDetail()
	case 'c':
		a.eng.ClearRequest()
	}
}

func (a *app) draw(snap engine.Snapshot) {
	a.screen.Clear()
	if a.width < 4 || a.height < 3 {
		a.screen.Show()
		return
	}

	// Section anchors through the live camera.
	effective := snap.Nav.Effective()
	cam := a.eng.Camera()
	for i := 0; i < a.table.Count(); i++ {
		x, y, ok := cam.Project(a.table.PoseForSection(i).Target, a.width-1, a.height-1)
		if !ok {
			continue
		}
		col, row := int(x), a.height-2-int(y)
		if col < 0 || col >= a.width-1 || row < 1 || row >= a.height {
			continue
		}
		style := tcell.StyleDefault.Foreground(tcell.ColorGray)
		if i == effective {
			style = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
		}
		a.drawText(col, row, fmt.Sprintf("%d", i%10), style)
	}

	// Scrollbar.
	thumb := 1 + int(snap.Nav.Offset*float32(a.height-2))
	for row := 1; row < a.height; row++ {
		r, style := '│', tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
		if row == thumb {
			r, style = '█', tcell.StyleDefault.Foreground(tcell.ColorWhite)
		}
		a.screen.SetContent(a.width-1, row, r, nil, style)
	}

	// Status line.
	entry := a.table.Entry(effective)
	status := fmt.Sprintf(" %-12s %-8s offset %.3f  world %5.1f°", entry.Name, snap.Nav.Mode, snap.Nav.Offset,
		common.Degrees(snap.World.Rotation))
	a.drawText(0, 0, status, tcell.StyleDefault.Reverse(true))

	// Section card, dimmed until it has faded in.
	if snap.Card.Visible() {
		style := tcell.StyleDefault.Foreground(tcell.ColorGreen)
		if snap.Card.Alpha < 0.5 {
			style = style.Dim(true)
		}
		card := fmt.Sprintf("[ %s ]", a.table.Entry(snap.Card.Card).Name)
		a.drawText((a.width-len(card))/2, a.height-1, card, style)
	}

	a.screen.Show()
}

func (a *app) drawText(x, y int, text string, style tcell.Style) {
	for i, r := range text {
		if x+i >= a.width {
			return
		}
		a.screen.SetContent(x+i, y, r, nil, style)
	}
}

func (a *app) run() {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			eventChan <- a.screen.PollEvent()
		}
	}()

	last := time.Now()
	for {
		select {
		case ev := <-eventChan:
			if ev == nil || !a.handleInput(ev) {
				return
			}

		case now := <-ticker.C:
			snap := a.eng.Step(float32(now.Sub(last).Seconds()))
			last = now
			a.signal(snap.Nav)
			a.draw(snap)
		}
	}
}

// signal plays a cue on navigation edges.
func (a *app) signal(nav navigator.State) {
	switch {
	case nav.Completed:
		a.cue.play(880, 80*time.Millisecond)
	case nav.Interrupted:
		a.cue.play(220, 120*time.Millisecond)
	}
}

func (a *app) cleanup() {
	a.cue.close()
	a.screen.Fini()
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	// The terminal owns stdout; component logs go to a file when requested.
	var logger *log.Logger
	if path := os.Getenv("OXY_SCROLL_LOG_FILE"); path != "" && !cfg.Quiet {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		defer f.Close()
		logger = log.New(f, "", log.LstdFlags)
		log.SetOutput(f)
	} else {
		log.SetOutput(io.Discard)
	}

	a, err := newApp(cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "terminal initialization failed: %v\n", err)
		os.Exit(1)
	}
	defer a.cleanup()

	a.run()
}
