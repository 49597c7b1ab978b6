package client

import (
	"context"
	"errors"
	"strings"

	"github.com/Jazz7-Dev/FoodY.com/internal/cart"
	domain "github.com/Jazz7-Dev/FoodY.com/internal/entity"
)

type CheckoutState int

const (
	StateIdle CheckoutState = iota
	StateSubmitting
	StateSuccess
	StateFailed
)

var (
	// ErrAddressRequired is the local validation error raised before any
	// network traffic happens.
	ErrAddressRequired = errors.New("Please enter a valid delivery address")

	// ErrSubmitInFlight guards against re-entrant submission from the same
	// control. It does not prevent a second logical request via another path.
	ErrSubmitInFlight = errors.New("order submission already in progress")
)

// fallbackOrderError is shown when the server gave no message of its own.
const fallbackOrderError = "Failed to place order. Please try again."

// OrderPlacer is the slice of the API client checkout needs.
type OrderPlacer interface {
	PlaceOrder(ctx context.Context, req OrderRequest) (*domain.Order, error)
}

// Checkout drives the order-placement flow:
// Idle -> Submitting -> {Success, Failed}. A failure surfaces its message
// and falls back to Idle so the user can resubmit without reloading.
type Checkout struct {
	api     OrderPlacer
	cart    *cart.Store
	state   CheckoutState
	address string
	lastErr string
}

func NewCheckout(api OrderPlacer, cartStore *cart.Store) *Checkout {
	return &Checkout{api: api, cart: cartStore}
}

func (co *Checkout) State() CheckoutState { return co.state }
func (co *Checkout) Err() string          { return co.lastErr }
func (co *Checkout) Address() string      { return co.address }

func (co *Checkout) SetAddress(addr string) { co.address = addr }

// SetQuantity clamps to [1, 99] before handing the change to the cart; the
// store itself only rejects non-positive values.
func (co *Checkout) SetQuantity(foodID string, q int) {
	if q < 1 {
		q = 1
	}
	if q > 99 {
		q = 99
	}
	co.cart.SetQuantity(foodID, q)
}

// Submit snapshots the cart into an order request and sends it. On success
// the cart and address are cleared; on failure the server's message (or the
// generic fallback) is recorded and the flow returns to Idle, retryable.
func (co *Checkout) Submit(ctx context.Context) (*domain.Order, error) {
	if co.state == StateSubmitting {
		return nil, ErrSubmitInFlight
	}

	addr := strings.TrimSpace(co.address)
	if addr == "" {
		// stays Idle, no request is made
		co.lastErr = ErrAddressRequired.Error()
		return nil, ErrAddressRequired
	}

	co.state = StateSubmitting
	co.lastErr = ""

	req := OrderRequest{
		Items:       co.cart.Items(),
		TotalAmount: co.cart.RoundedTotal(),
		Address:     addr,
	}

	order, err := co.api.PlaceOrder(ctx, req)
	if err != nil {
		// Failed is retryable: the next Submit starts over without a reload.
		co.state = StateFailed
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.Message != "" {
			co.lastErr = apiErr.Message
		} else {
			co.lastErr = fallbackOrderError
		}
		return nil, err
	}

	co.state = StateSuccess
	co.cart.Clear()
	co.address = ""
	return order, nil
}
