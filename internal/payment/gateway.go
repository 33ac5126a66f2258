// Package payment builds the redirect into the hosted payment widget and
// parses what the widget sends back.
package payment

import (
	"fmt"
	"net/url"
	"strconv"

	"auctionfront/internal/domain"
)

// Request carries everything the hosted widget needs to take a payment for
// one order.
type Request struct {
	Amount       int64
	OrderID      string
	OrderName    string
	CustomerName string
	SuccessURL   string
	FailURL      string
}

// Gateway turns a payment request into a redirect URL. The buy flow never
// talks to the payment provider directly; it hands the user off and waits for
// the success or fail callback.
type Gateway interface {
	RedirectURL(req Request) (string, error)
}

// HostedWidget points at the provider's hosted checkout page, identified by
// the storefront's client key.
type HostedWidget struct {
	widgetURL string
	clientKey string
}

func NewHostedWidget(widgetURL, clientKey string) *HostedWidget {
	return &HostedWidget{widgetURL: widgetURL, clientKey: clientKey}
}

func (w *HostedWidget) RedirectURL(req Request) (string, error) {
	if req.OrderID == "" {
		return "", fmt.Errorf("payment: order id is required")
	}
	if req.Amount <= 0 {
		return "", fmt.Errorf("payment: amount must be positive")
	}
	q := url.Values{}
	q.Set("clientKey", w.clientKey)
	q.Set("orderId", req.OrderID)
	q.Set("amount", strconv.FormatInt(req.Amount, 10))
	if req.OrderName != "" {
		q.Set("orderName", req.OrderName)
	}
	if req.CustomerName != "" {
		q.Set("customerName", req.CustomerName)
	}
	q.Set("successUrl", req.SuccessURL)
	q.Set("failUrl", req.FailURL)
	return w.widgetURL + "?" + q.Encode(), nil
}

// SuccessCallback is what the widget appends to the success URL.
type SuccessCallback struct {
	PaymentKey string
	OrderID    string
	Amount     int64
}

// ParseSuccessCallback extracts paymentKey, orderId and amount from the
// success redirect query. Any missing or unparseable field is a malformed
// callback; nothing is guessed.
func ParseSuccessCallback(query url.Values) (*SuccessCallback, error) {
	paymentKey := query.Get("paymentKey")
	orderID := query.Get("orderId")
	rawAmount := query.Get("amount")
	if paymentKey == "" || orderID == "" || rawAmount == "" {
		return nil, domain.ErrMalformedCallback
	}
	amount, err := strconv.ParseInt(rawAmount, 10, 64)
	if err != nil {
		return nil, domain.ErrMalformedCallback
	}
	return &SuccessCallback{PaymentKey: paymentKey, OrderID: orderID, Amount: amount}, nil
}

// FailCallback is what the widget appends to the fail URL. Code and Message
// are surfaced verbatim.
type FailCallback struct {
	Code    string
	Message string
	OrderID string
}

func ParseFailCallback(query url.Values) *FailCallback {
	return &FailCallback{
		Code:    query.Get("code"),
		Message: query.Get("message"),
		OrderID: query.Get("orderId"),
	}
}
