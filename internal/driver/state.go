package driver

// RunState is the lifecycle of the simulation loop.
type RunState uint8

const (
	Stopped RunState = iota
	Running
	Paused
)

func (s RunState) String() string {
	switch s {
	case Running:
		return "running"
	case Paused:
		return "paused"
	default:
		return "stopped"
	}
}

// Action is an input to the run-state machine.
type Action uint8

const (
	ActionStart Action = iota
	ActionStop
	ActionRun
	ActionPause
	ActionShowOptions
	ActionHideOptions
	ActionEnterFullscreen
	ActionExitFullscreen
)

// State is the application-level run state.
type State struct {
	Run         RunState
	ShowOptions bool
	Fullscreen  bool
}

// InitialState is the state before the first start: stopped with the
// options panel visible.
func InitialState() State {
	return State{Run: Stopped, ShowOptions: true}
}

// Started reports whether the simulation has been started and not stopped.
func (s State) Started() bool { return s.Run != Stopped }

// Apply returns the state after a. Run and Pause only act on a started
// simulation.
func (s State) Apply(a Action) State {
	switch a {
	case ActionStart:
		s.Run = Running
		s.ShowOptions = false
	case ActionStop:
		s.Run = Stopped
		s.ShowOptions = true
	case ActionRun:
		if s.Started() {
			s.Run = Running
		}
	case ActionPause:
		if s.Started() {
			s.Run = Paused
		}
	case ActionShowOptions:
		s.ShowOptions = true
	case ActionHideOptions:
		s.ShowOptions = false
	case ActionEnterFullscreen:
		s.Fullscreen = true
	case ActionExitFullscreen:
		s.Fullscreen = false
	}
	return s
}
