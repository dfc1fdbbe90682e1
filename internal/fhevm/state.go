package fhevm

// Status is the client lifecycle phase.
type Status string

const (
	StatusIdle    Status = "idle"
	StatusLoading Status = "loading"
	StatusReady   Status = "ready"
	StatusError   Status = "error"
)

// ClientState is a snapshot of the client lifecycle. Invariants:
// Initialized implies Instance != nil and Status == StatusReady;
// Status == StatusError implies Err != nil.
type ClientState struct {
	Status      Status
	Instance    Instance
	Err         error
	Initialized bool
}

// clientEvent is a lifecycle transition trigger. Events are produced by the
// client in response to its own async results, never by callers.
type clientEvent interface{ isClientEvent() }

type initStarted struct{}

type initSucceeded struct{ instance Instance }

type initFailed struct{ err error }

type resetState struct{}

func (initStarted) isClientEvent()   {}
func (initSucceeded) isClientEvent() {}
func (initFailed) isClientEvent()    {}
func (resetState) isClientEvent()    {}

// effect names a callback the client must fire after a transition.
type effect int

const (
	effectStatusChanged effect = iota
	effectReady
	effectError
)

// transition is the pure state-transition function: given the current state
// and an event it returns the next state and the effects to run. It never
// touches the outside world, which keeps every lifecycle path testable as a
// plain function call.
func transition(s ClientState, ev clientEvent) (ClientState, []effect) {
	switch ev := ev.(type) {
	case initStarted:
		return ClientState{Status: StatusLoading}, []effect{effectStatusChanged}

	case initSucceeded:
		next := ClientState{
			Status:      StatusReady,
			Instance:    ev.instance,
			Initialized: true,
		}
		return next, []effect{effectStatusChanged, effectReady}

	case initFailed:
		next := ClientState{
			Status: StatusError,
			Err:    ev.err,
		}
		return next, []effect{effectStatusChanged, effectError}

	case resetState:
		if s.Status == StatusIdle {
			// Already idle: destroying twice must not re-fire callbacks.
			return s, nil
		}
		return ClientState{Status: StatusIdle}, []effect{effectStatusChanged}

	default:
		return s, nil
	}
}
