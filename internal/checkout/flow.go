// Package checkout sequences the multi-step buy flows: order creation, the
// payment handoff, and the confirmation callback. It keeps local view state
// consistent with what the backend authoritatively holds.
package checkout

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/url"

	"auctionfront/internal/api"
	"auctionfront/internal/domain"
	"auctionfront/internal/payment"
)

// State names the position of a buy attempt in the flow.
type State string

const (
	StateIdle              State = "IDLE"
	StateOrderCreating     State = "ORDER_CREATING"
	StateOrderCreated      State = "ORDER_CREATED"
	StatePaymentRedirected State = "PAYMENT_REDIRECTED"
	StatePaymentConfirming State = "PAYMENT_CONFIRMING"
	StatePaymentConfirmed  State = "PAYMENT_CONFIRMED"
	StatePaymentFailed     State = "PAYMENT_FAILED"
)

// Outcome reports what a buy attempt produced. RedirectURL is set when
// exactly one order was created and the user should be handed to the payment
// gateway; PendingOnly is set when several orders were created and each must
// be paid individually.
type Outcome struct {
	OrderIDs    []string
	RedirectURL string
	PendingOnly bool
}

// Flow drives one buy attempt at a time. It is meant for single-threaded UI
// use; calls are not safe for concurrent goroutines.
type Flow struct {
	client     api.Client
	gateway    payment.Gateway
	successURL string
	failURL    string
	logger     *log.Logger

	state    State
	orderIDs []string
	orderID  string
	lastKey  string
	lastFail *payment.FailCallback
}

func NewFlow(client api.Client, gateway payment.Gateway, successURL, failURL string, logger *log.Logger) *Flow {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Flow{
		client:     client,
		gateway:    gateway,
		successURL: successURL,
		failURL:    failURL,
		logger:     logger,
		state:      StateIdle,
	}
}

func (f *Flow) State() State { return f.state }

// OrderIDs lists the orders created by the current attempt.
func (f *Flow) OrderIDs() []string { return f.orderIDs }

// CurrentOrderID is the single order being paid, empty when none or several.
func (f *Flow) CurrentOrderID() string { return f.orderID }

// LastFailure is the most recent fail-callback payload, nil when none.
func (f *Flow) LastFailure() *payment.FailCallback { return f.lastFail }

// Reset abandons the current attempt.
func (f *Flow) Reset() {
	f.state = StateIdle
	f.orderIDs = nil
	f.orderID = ""
	f.lastKey = ""
	f.lastFail = nil
}

// BuyNow purchases a single auction at its buy-now price and, on success,
// hands the user to the payment gateway for the created order.
func (f *Flow) BuyNow(ctx context.Context, auctionID int64) (*Outcome, error) {
	if !f.client.IsAuthenticated() {
		f.state = StateIdle
		return nil, domain.ErrAuthRequired
	}
	f.state = StateOrderCreating
	orderID, err := f.client.BuyNow(ctx, auctionID)
	if err != nil {
		f.state = StateIdle
		return nil, err
	}
	return f.created(ctx, []string{orderID})
}

// CheckoutCart purchases the selected cart items. Each item becomes its own
// order; with more than one order no redirect happens and the orders are
// surfaced as pending instead.
func (f *Flow) CheckoutCart(ctx context.Context, cartItemIDs []int64) (*Outcome, error) {
	if !f.client.IsAuthenticated() {
		f.state = StateIdle
		return nil, domain.ErrAuthRequired
	}
	f.state = StateOrderCreating
	orderIDs, err := f.client.BuyNowFromCart(ctx, cartItemIDs)
	if err != nil {
		f.state = StateIdle
		return nil, err
	}
	return f.created(ctx, orderIDs)
}

// CheckoutAll purchases every purchasable item in the cart.
func (f *Flow) CheckoutAll(ctx context.Context) (*Outcome, error) {
	if !f.client.IsAuthenticated() {
		f.state = StateIdle
		return nil, domain.ErrAuthRequired
	}
	f.state = StateOrderCreating
	orderIDs, err := f.client.BuyNowAllCart(ctx)
	if err != nil {
		f.state = StateIdle
		return nil, err
	}
	return f.created(ctx, orderIDs)
}

func (f *Flow) created(ctx context.Context, orderIDs []string) (*Outcome, error) {
	if len(orderIDs) == 0 {
		f.state = StateIdle
		return nil, fmt.Errorf("%w: no order created", domain.ErrRequestFailed)
	}
	f.state = StateOrderCreated
	f.orderIDs = orderIDs
	f.lastFail = nil
	if len(orderIDs) > 1 {
		// No bulk payment; the user pays each order individually later.
		f.orderID = ""
		return &Outcome{OrderIDs: orderIDs, PendingOnly: true}, nil
	}
	f.orderID = orderIDs[0]
	redirect, err := f.redirect(ctx)
	if err != nil {
		return nil, err
	}
	return &Outcome{OrderIDs: orderIDs, RedirectURL: redirect}, nil
}

// redirect builds the gateway handoff for the current order using the
// order's authoritative final price.
func (f *Flow) redirect(ctx context.Context) (string, error) {
	order, err := f.client.GetOrderByID(ctx, f.orderID)
	if err != nil {
		return "", err
	}
	var customer string
	if user := f.client.CurrentUser(); user != nil {
		customer = user.Nickname
	}
	redirect, err := f.gateway.RedirectURL(payment.Request{
		Amount:       order.FinalPrice,
		OrderID:      order.OrderID,
		OrderName:    order.AuctionTitle,
		CustomerName: customer,
		SuccessURL:   f.successURL,
		FailURL:      f.failURL,
	})
	if err != nil {
		return "", err
	}
	f.state = StatePaymentRedirected
	return redirect, nil
}

// HandleSuccessCallback processes the success-URL landing. A payload missing
// paymentKey, orderId or amount is malformed and never reaches the confirm
// call. A callback for some other order than the one being paid is stale and
// leaves the flow untouched.
func (f *Flow) HandleSuccessCallback(ctx context.Context, query url.Values) error {
	cb, err := payment.ParseSuccessCallback(query)
	if err != nil {
		return err
	}
	if f.orderID != "" && cb.OrderID != f.orderID {
		f.logger.Printf("ignoring callback for order %s while paying %s", cb.OrderID, f.orderID)
		return fmt.Errorf("%w: callback for a different order", domain.ErrRequestFailed)
	}
	// The success landing can arrive in a fresh process after the full
	// navigation handoff; adopt the callback's order in that case.
	f.orderID = cb.OrderID
	f.state = StatePaymentConfirming
	f.lastKey = cb.PaymentKey
	if err := f.client.ConfirmPayment(ctx, cb.PaymentKey, cb.OrderID, cb.Amount); err != nil {
		// The gateway may already have taken the money. Keep the payment
		// key so the user can retry confirmation or reference it to
		// support, rather than being told to pay again.
		f.state = StatePaymentFailed
		return err
	}
	f.state = StatePaymentConfirmed
	return nil
}

// HandleFailCallback processes the fail-URL landing. Code and message are
// kept verbatim for the view; the flow returns to OrderCreated so a retry
// pays the same order again instead of creating a new one.
func (f *Flow) HandleFailCallback(query url.Values) *payment.FailCallback {
	cb := payment.ParseFailCallback(query)
	f.lastFail = cb
	if cb.OrderID != "" && f.orderID == "" {
		f.orderID = cb.OrderID
	}
	if f.orderID != "" {
		f.state = StateOrderCreated
	} else {
		f.state = StateIdle
	}
	return cb
}

// RetryPayment re-attempts the gateway handoff for the current order. It
// never creates a new order.
func (f *Flow) RetryPayment(ctx context.Context) (*Outcome, error) {
	if f.orderID == "" {
		return nil, fmt.Errorf("%w: no order to retry", domain.ErrRequestFailed)
	}
	redirect, err := f.redirect(ctx)
	if err != nil {
		return nil, err
	}
	return &Outcome{OrderIDs: []string{f.orderID}, RedirectURL: redirect}, nil
}

// RetryConfirm re-sends the confirmation for a payment the gateway accepted
// but the backend did not confirm, using the retained payment key.
func (f *Flow) RetryConfirm(ctx context.Context) error {
	if f.orderID == "" || f.lastKey == "" {
		return fmt.Errorf("%w: no payment to confirm", domain.ErrRequestFailed)
	}
	order, err := f.client.GetOrderByID(ctx, f.orderID)
	if err != nil {
		return err
	}
	f.state = StatePaymentConfirming
	if err := f.client.ConfirmPayment(ctx, f.lastKey, f.orderID, order.FinalPrice); err != nil {
		f.state = StatePaymentFailed
		return err
	}
	f.state = StatePaymentConfirmed
	return nil
}
