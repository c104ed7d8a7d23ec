package client

import "log"

// Screen identifies one of the fixed app screens.
type Screen string

const (
	ScreenLanding   Screen = "landing"
	ScreenRegister  Screen = "register"
	ScreenDashboard Screen = "dashboard"
	ScreenAdmin     Screen = "admin"
)

var knownScreens = map[Screen]bool{
	ScreenLanding:   true,
	ScreenRegister:  true,
	ScreenDashboard: true,
	ScreenAdmin:     true,
}

// Router keeps exactly one screen current. The current screen is not
// persisted; every start lands on the landing screen.
type Router struct {
	current  Screen
	onChange func(Screen)
}

// NewRouter starts on the landing screen. onChange may be nil.
func NewRouter(onChange func(Screen)) *Router {
	return &Router{current: ScreenLanding, onChange: onChange}
}

// Show switches to the named screen. An unknown name is a programmer error
// and is logged and ignored rather than crashing a running client.
func (r *Router) Show(s Screen) {
	if !knownScreens[s] {
		log.Printf("router: unknown screen %q", s)
		return
	}
	r.current = s
	if r.onChange != nil {
		r.onChange(s)
	}
}

func (r *Router) Current() Screen {
	return r.current
}
