package client

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"wedlock-backend/models"
	"wedlock-backend/payments"
)

// ErrUnauthorized is returned when the backend rejects the session; the app
// reacts by routing back to the landing screen.
var ErrUnauthorized = errors.New("session rejected")

// API is a thin JSON client for the backend. Every call runs under the
// client timeout so a hung request cannot pin the UI in a loading state.
type API struct {
	base       string
	http       *http.Client
	adminToken string
}

func NewAPI(base string) *API {
	return &API{
		base: base,
		http: &http.Client{Timeout: 10 * time.Second},
	}
}

// RegisterPayload mirrors the registration form on the wire. Age is a pointer
// so a non-numeric form value travels as absent instead of a made-up number.
type RegisterPayload struct {
	Name     string `json:"name"`
	Age      *int   `json:"age,omitempty"`
	Phone    string `json:"phone"`
	Gender   string `json:"gender"`
	Religion string `json:"religion"`
	Job      string `json:"job"`
	Income   string `json:"income"`
	Tier     string `json:"tier"`
}

func (a *API) Register(payload RegisterPayload) error {
	resp, err := a.post("/api/register", payload)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("register: status %d", resp.StatusCode)
	}
	return nil
}

// Matches fetches the feed for the given session phone. Any non-success
// status is treated as an invalid session.
func (a *API) Matches(phone string) ([]models.MatchResult, error) {
	resp, err := a.post("/api/matches", map[string]string{"phone": phone})
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, ErrUnauthorized
	}

	var matches []models.MatchResult
	if err := json.NewDecoder(resp.Body).Decode(&matches); err != nil {
		return nil, fmt.Errorf("matches: decode: %w", err)
	}
	return matches, nil
}

func (a *API) CreateOrder() (*payments.Order, error) {
	resp, err := a.post("/api/create-order", nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("create order: status %d", resp.StatusCode)
	}

	var order payments.Order
	if err := json.NewDecoder(resp.Body).Decode(&order); err != nil {
		return nil, fmt.Errorf("create order: decode: %w", err)
	}
	return &order, nil
}

// VerifyPayment forwards checkout proof untouched and reports the backend's
// verdict. A false return means the tier must not change.
func (a *API) VerifyPayment(phone string, proof Proof) (bool, error) {
	body := map[string]string{
		"phone":               phone,
		"razorpay_order_id":   proof.OrderID,
		"razorpay_payment_id": proof.PaymentID,
		"razorpay_signature":  proof.Signature,
	}
	resp, err := a.post("/api/verify-payment", body)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()

	var result struct {
		Success bool `json:"success"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return false, fmt.Errorf("verify payment: decode: %w", err)
	}
	return result.Success, nil
}

// AdminLogin exchanges the password for an admin token, which is kept for
// later privileged calls.
func (a *API) AdminLogin(password string) error {
	resp, err := a.post("/api/admin-login", map[string]string{"password": password})
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("admin login: status %d", resp.StatusCode)
	}

	var result struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("admin login: decode: %w", err)
	}
	a.adminToken = result.Token
	return nil
}

// AdminToken returns the token from the last successful admin login.
func (a *API) AdminToken() string {
	return a.adminToken
}

func (a *API) post(path string, payload interface{}) (*http.Response, error) {
	var body bytes.Buffer
	if payload != nil {
		if err := json.NewEncoder(&body).Encode(payload); err != nil {
			return nil, err
		}
	}

	req, err := http.NewRequest(http.MethodPost, a.base+path, &body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if a.adminToken != "" {
		req.Header.Set("Authorization", "Bearer "+a.adminToken)
	}
	return a.http.Do(req)
}
