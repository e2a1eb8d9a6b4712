// Package driver owns the simulation: the grid, its drawing surface, the run
// state and the evolution timer. UI code talks to it only through intents.
package driver

import (
	"fmt"
	"time"

	"fortio.org/log"

	"dotlife/internal/core"
	"dotlife/internal/layout"
	"dotlife/internal/life"
	"dotlife/internal/render"
)

// Result is reported after every generation.
type Result struct {
	LiveCount  int
	Generation uint64
}

// Status is a read-only snapshot for UI code.
type Status struct {
	State      State
	Options    Options
	Generation uint64
	LiveCount  int
	Rows, Cols int
	Interval   time.Duration
}

// Driver glues user intents to the grid and the painter. It is not safe for
// concurrent use; a single event loop calls every method.
type Driver struct {
	opts    Options
	surface render.Surface
	painter *render.Painter
	grid    *life.Grid
	layout  layout.Layout
	rng     *core.RNG

	state      State
	timer      *core.Interval
	generation uint64
	now        func() time.Time

	press    core.Point
	pressed  bool
	dragging bool
}

// New builds a driver drawing on surface and prepares the first grid.
func New(opts Options, surface render.Surface) *Driver {
	opts = opts.Normalize()
	d := &Driver{
		opts:    opts,
		surface: surface,
		painter: render.NewPainter(),
		rng:     core.NewRNG(opts.Seed),
		state:   InitialState(),
		timer:   core.NewInterval(opts.Interval()),
		now:     time.Now,
	}
	d.rebuild()
	return d
}

// SetClock replaces the time source used to arm the timer.
func (d *Driver) SetClock(now func() time.Time) { d.now = now }

// Options returns the current options.
func (d *Driver) Options() Options { return d.opts }

// State returns the run state.
func (d *Driver) State() State { return d.state }

// Status returns a snapshot of the driver.
func (d *Driver) Status() Status {
	return Status{
		State:      d.state,
		Options:    d.opts,
		Generation: d.generation,
		LiveCount:  d.grid.LiveCount(),
		Rows:       d.grid.Rows(),
		Cols:       d.grid.Cols(),
		Interval:   d.timer.Period(),
	}
}

// Layout returns the geometry of the current grid.
func (d *Driver) Layout() layout.Layout { return d.layout }

// rebuild discards the grid and builds a fresh one for the surface, then
// repaints everything.
func (d *Driver) rebuild() {
	var size core.Size
	if d.surface != nil {
		size = d.surface.Size()
	}
	d.layout = layout.Compute(float64(size.W), float64(size.H), float64(d.opts.Radius), d.opts.Margin)
	d.grid = life.Build(d.layout, d.opts.Initializer, d.rng)
	d.grid.SetNeighborhood(d.opts.Neighborhood)
	d.generation = 0
	render.Clear(d.surface)
	d.redraw()
	if d.state.Run == Running {
		d.timer.Arm(d.now())
	}
	log.Infof("Built %dx%d grid (%s, radius %d, margin %.1f) on %dx%d surface",
		d.layout.NumRows, d.layout.NumCols, d.opts.Initializer, d.opts.Radius, d.opts.Margin, size.W, size.H)
}

func (d *Driver) redraw() {
	d.painter.Draw(d.grid, d.surface, d.opts.Alive, d.opts.Dead, true, nil)
}

// Resize swaps in a surface of a new size. Like a reset, this stops the
// simulation and rebuilds the grid from scratch.
func (d *Driver) Resize(surface render.Surface) {
	d.surface = surface
	d.Reset()
}

// Rebuild discards the current grid and builds a new one from the options.
func (d *Driver) Rebuild() { d.rebuild() }

// Redraw repaints every cell.
func (d *Driver) Redraw() { d.redraw() }

// Clear wipes the surface without touching the cell data.
func (d *Driver) Clear() { render.Clear(d.surface) }

// EvolveOnce advances one generation and repaints the cells that flipped.
func (d *Driver) EvolveOnce() Result {
	if d.grid.Empty() {
		return Result{Generation: d.generation}
	}
	live := d.grid.Evolve()
	d.generation++
	stats := d.painter.Draw(d.grid, d.surface, d.opts.Alive, d.opts.Dead, false, nil)
	log.LogVf("Generation %d: %d alive, %d repainted", d.generation, live, stats.Painted())
	return Result{LiveCount: live, Generation: d.generation}
}

// Step is the manual single-generation advance.
func (d *Driver) Step() Result { return d.EvolveOnce() }

// Tick runs one generation when the simulation is running and the interval
// has elapsed. An extinct board stops the simulation and prepares a fresh
// grid. ok reports whether a generation ran.
func (d *Driver) Tick(now time.Time) (res Result, ok bool) {
	if d.state.Run != Running || !d.timer.Due(now) {
		return Result{}, false
	}
	res = d.EvolveOnce()
	if res.LiveCount == 0 {
		log.Infof("Extinct after %d generations, stopping", res.Generation)
		d.Stop()
	}
	return res, true
}

func (d *Driver) apply(a Action) {
	prev := d.state
	d.state = d.state.Apply(a)
	if prev.Run != d.state.Run {
		log.LogVf("Run state %s -> %s", prev.Run, d.state.Run)
	}
}

// Start begins running a stopped simulation on the prepared grid.
func (d *Driver) Start() {
	if d.state.Started() {
		return
	}
	d.apply(ActionStart)
	d.timer.Arm(d.now())
	log.Infof("Started %s at %v per generation", d.opts.Initializer, d.timer.Period())
}

// Stop halts the loop, clears the surface and prepares a fresh grid.
func (d *Driver) Stop() {
	d.apply(ActionStop)
	d.timer.Disarm()
	d.rebuild()
}

// Run resumes a paused simulation.
func (d *Driver) Run() {
	if d.state.Run != Paused {
		return
	}
	d.apply(ActionRun)
	d.timer.Arm(d.now())
}

// Pause suspends a running simulation.
func (d *Driver) Pause() {
	if d.state.Run != Running {
		return
	}
	d.apply(ActionPause)
	d.timer.Disarm()
}

// ToggleRun starts, pauses or resumes the simulation and flips the options
// panel.
func (d *Driver) ToggleRun() {
	showing := d.state.ShowOptions
	switch d.state.Run {
	case Stopped:
		d.Start()
	case Running:
		d.Pause()
	default:
		d.Run()
	}
	if showing {
		d.apply(ActionHideOptions)
	} else {
		d.apply(ActionShowOptions)
	}
}

// ToggleOptions hides the options panel and runs, or pauses and shows it.
func (d *Driver) ToggleOptions() {
	if d.state.ShowOptions {
		d.Run()
		d.apply(ActionHideOptions)
		return
	}
	d.Pause()
	d.apply(ActionShowOptions)
}

// Reset stops the simulation, restores the default speed and rebuilds.
func (d *Driver) Reset() {
	d.opts.Speed = DefaultSpeed
	d.timer.SetPeriod(d.opts.Interval())
	d.Stop()
}

// SetFullscreen records the platform's fullscreen state.
func (d *Driver) SetFullscreen(on bool) {
	if on {
		d.apply(ActionEnterFullscreen)
	} else {
		d.apply(ActionExitFullscreen)
	}
}

// ToggleCellAtPixel flips the cell under (x, y). Pixels outside the grid are
// ignored.
func (d *Driver) ToggleCellAtPixel(x, y float64) bool {
	row, col, ok := d.layout.PixelToCell(x, y)
	if !ok || !d.grid.Toggle(row, col) {
		return false
	}
	d.painter.Draw(d.grid, d.surface, d.opts.Alive, d.opts.Dead, true, render.CellRegion(row, col))
	log.LogVf("Toggled cell (%d,%d)", row, col)
	return true
}

// PaintCellAtPixel makes the cell under (x, y) alive.
func (d *Driver) PaintCellAtPixel(x, y float64) bool {
	row, col, ok := d.layout.PixelToCell(x, y)
	if !ok || !d.grid.SetAlive(row, col) {
		return false
	}
	d.painter.Draw(d.grid, d.surface, d.opts.Alive, d.opts.Dead, true, render.CellRegion(row, col))
	return true
}

// Press records where a pointer button went down.
func (d *Driver) Press(x, y float64) {
	d.press = core.Point{X: x, Y: y}
	d.pressed = true
	d.dragging = false
}

// Drag paints under the pointer while a button is held. Painting starts,
// from the pressed cell, once the pointer leaves the click zone so that
// jitter during a click does not paint.
func (d *Driver) Drag(x, y float64) bool {
	if !d.pressed {
		return false
	}
	if !d.dragging {
		if layout.IsClick(d.press, core.Point{X: x, Y: y}, float64(d.opts.Radius)) {
			return false
		}
		d.dragging = true
		d.PaintCellAtPixel(d.press.X, d.press.Y)
	}
	return d.PaintCellAtPixel(x, y)
}

// Release ends a press. A release close enough to the press toggles the
// cell under it; a longer movement was a paint stroke and does nothing more.
func (d *Driver) Release(x, y float64) bool {
	if !d.pressed {
		return false
	}
	d.pressed = false
	d.dragging = false
	if !layout.IsClick(d.press, core.Point{X: x, Y: y}, float64(d.opts.Radius)) {
		return false
	}
	return d.ToggleCellAtPixel(x, y)
}

// SetAliveColor changes the live cell color and repaints every cell.
func (d *Driver) SetAliveColor(s string) error {
	c, err := render.ParseColor(s)
	if err != nil {
		return fmt.Errorf("alive color: %w", err)
	}
	d.opts.Alive = c
	d.redraw()
	return nil
}

// SetDeadColor changes the dead cell color and repaints every cell.
func (d *Driver) SetDeadColor(s string) error {
	c, err := render.ParseColor(s)
	if err != nil {
		return fmt.Errorf("dead color: %w", err)
	}
	d.opts.Dead = c
	d.redraw()
	return nil
}

// SetBackgroundColor changes the color shown behind the cells. The canvas
// itself is transparent there, so no repaint is needed.
func (d *Driver) SetBackgroundColor(s string) error {
	c, err := render.ParseColor(s)
	if err != nil {
		return fmt.Errorf("background color: %w", err)
	}
	d.opts.Background = c
	return nil
}

// SetSpeed changes the generation interval, re-arming a running timer.
func (d *Driver) SetSpeed(speed int) {
	d.opts.Speed = clampSpeed(speed)
	d.timer.SetPeriod(d.opts.Interval())
	if d.state.Run == Running {
		d.timer.Arm(d.now())
	}
}

// SetRadius changes the cell radius and rebuilds the grid.
func (d *Driver) SetRadius(r int) {
	r = clampRadius(r)
	if r == d.opts.Radius {
		return
	}
	d.opts.Radius = r
	d.rebuild()
}

// SetMargin changes the inter-cell margin and rebuilds the grid.
func (d *Driver) SetMargin(m float64) {
	m = clampMargin(m)
	if m == d.opts.Margin {
		return
	}
	d.opts.Margin = m
	d.rebuild()
}

// SetInitializer selects the starting pattern by name and rebuilds the grid.
// Unknown names fall back to random.
func (d *Driver) SetInitializer(name string) {
	in, ok := life.ParseInitializer(name)
	if !ok {
		log.Warnf("Unknown initializer %q, using %s", name, in)
	}
	d.opts.Initializer = in
	d.rebuild()
}

// SetNeighborhood changes how neighbors are counted from the next
// generation on.
func (d *Driver) SetNeighborhood(n life.Neighborhood) {
	d.opts.Neighborhood = n
	d.grid.SetNeighborhood(n)
}
