package client

import (
	"errors"
	"strconv"

	"wedlock-backend/models"
)

// Renderer is the thin side-effecting half of the match feed; everything it
// receives is already a view model.
type Renderer interface {
	ShowLoading()
	ShowEmpty()
	ShowCards([]MatchCard)
}

// RegistrationForm carries raw form values. Age stays a string here because
// the form does not validate it; parsing happens on submit.
type RegistrationForm struct {
	Name     string
	Age      string
	Phone    string
	Gender   string
	Religion string
	Job      string
	Income   string
}

// App wires the session, router, notifier, API and checkout into the user
// flows. All methods run on the caller's goroutine; network calls are the
// only blocking points.
type App struct {
	api      *API
	session  *Session
	router   *Router
	notifier *Notifier
	checkout Checkout
	renderer Renderer

	tier      string
	upgrading bool
}

func NewApp(api *API, session *Session, router *Router, notifier *Notifier, checkout Checkout, renderer Renderer) *App {
	return &App{
		api:      api,
		session:  session,
		router:   router,
		notifier: notifier,
		checkout: checkout,
		renderer: renderer,
		tier:     models.TierFree,
	}
}

// Register submits the profile form. Name and phone are the only required
// fields; a missing one never reaches the network.
func (a *App) Register(form RegistrationForm) {
	if form.Name == "" || form.Phone == "" {
		a.notifier.Notify("Please fill all details")
		return
	}

	payload := RegisterPayload{
		Name:     form.Name,
		Phone:    form.Phone,
		Gender:   form.Gender,
		Religion: form.Religion,
		Job:      form.Job,
		Income:   form.Income,
		Tier:     models.TierFree,
	}
	// A non-numeric age is forwarded as absent, not silently repaired.
	if age, err := strconv.Atoi(form.Age); err == nil {
		payload.Age = &age
	}

	if err := a.api.Register(payload); err != nil {
		a.notifier.Notify("Error creating profile")
		return
	}

	a.session.Set(form.Phone)
	a.notifier.Notify("Welcome! AI is finding matches...")
	a.router.Show(ScreenDashboard)
	a.LoadMatches()
}

// LoadMatches drives the feed through Loading -> Populated | Empty |
// AuthFailed. Any backend rejection sends the user back to the landing
// screen, the session is no longer trusted.
func (a *App) LoadMatches() {
	a.renderer.ShowLoading()

	matches, err := a.api.Matches(a.session.Get())
	if err != nil {
		a.router.Show(ScreenLanding)
		return
	}

	if len(matches) == 0 {
		a.renderer.ShowEmpty()
		return
	}
	a.renderer.ShowCards(BuildCards(matches))
}

// Upgrade runs the two-phase payment protocol: create an order, open
// checkout, submit the proof for verification. Re-entry while a round trip
// is in flight is ignored so double clicks cannot create duplicate orders.
func (a *App) Upgrade() {
	if a.upgrading {
		return
	}
	a.upgrading = true
	defer func() { a.upgrading = false }()

	order, err := a.api.CreateOrder()
	if err != nil {
		a.notifier.Notify("Could not start payment")
		return
	}

	proof, err := a.checkout.Open(order)
	if errors.Is(err, ErrCheckoutDismissed) {
		a.notifier.Notify("Payment cancelled")
		return
	}
	if err != nil {
		a.notifier.Notify("Payment failed")
		return
	}

	ok, err := a.api.VerifyPayment(a.session.Get(), proof)
	if err != nil || !ok {
		a.notifier.Notify("Payment verification failed, contact support")
		return
	}

	a.tier = models.TierGold
	a.notifier.Notify("Upgrade successful! Contacts unlocked.")
	a.LoadMatches()
}

// AdminLogin trades the password for an admin token held by the API client.
func (a *App) AdminLogin(password string) {
	if err := a.api.AdminLogin(password); err != nil {
		a.notifier.Notify("Invalid Password")
		return
	}
	a.notifier.Notify("Admin logged in")
	a.router.Show(ScreenAdmin)
}

// Logout drops the session and resets the visible tier.
func (a *App) Logout() {
	a.session.Clear()
	a.tier = models.TierFree
	a.router.Show(ScreenLanding)
}

// Tier is the locally displayed account badge. GOLD only after a verified
// payment in this session.
func (a *App) Tier() string {
	return a.tier
}
