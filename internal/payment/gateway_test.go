package payment

import (
	"errors"
	"net/url"
	"testing"

	"auctionfront/internal/domain"
)

func TestRedirectURLCarriesOrderFields(t *testing.T) {
	w := NewHostedWidget("https://pay.example.com/checkout", "test_ck_123")

	redirect, err := w.RedirectURL(Request{
		Amount:       2500,
		OrderID:      "ord-1",
		OrderName:    "record player",
		CustomerName: "demo",
		SuccessURL:   "http://localhost:5173/payment/success",
		FailURL:      "http://localhost:5173/payment/fail",
	})
	if err != nil {
		t.Fatalf("redirect: %v", err)
	}

	u, err := url.Parse(redirect)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	q := u.Query()
	if q.Get("clientKey") != "test_ck_123" || q.Get("orderId") != "ord-1" || q.Get("amount") != "2500" {
		t.Fatalf("query = %v", q)
	}
	if q.Get("successUrl") == "" || q.Get("failUrl") == "" {
		t.Fatalf("callback urls missing: %v", q)
	}
}

func TestRedirectURLRejectsBadRequests(t *testing.T) {
	w := NewHostedWidget("https://pay.example.com/checkout", "key")

	if _, err := w.RedirectURL(Request{Amount: 100}); err == nil {
		t.Fatal("missing order id should fail")
	}
	if _, err := w.RedirectURL(Request{OrderID: "ord-1"}); err == nil {
		t.Fatal("non-positive amount should fail")
	}
}

func TestParseSuccessCallback(t *testing.T) {
	q := url.Values{"paymentKey": {"pk"}, "orderId": {"ord-1"}, "amount": {"2500"}}
	cb, err := ParseSuccessCallback(q)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cb.PaymentKey != "pk" || cb.OrderID != "ord-1" || cb.Amount != 2500 {
		t.Fatalf("callback = %+v", cb)
	}

	bad := []url.Values{
		{"orderId": {"ord-1"}, "amount": {"2500"}},
		{"paymentKey": {"pk"}, "amount": {"2500"}},
		{"paymentKey": {"pk"}, "orderId": {"ord-1"}},
		{"paymentKey": {"pk"}, "orderId": {"ord-1"}, "amount": {"not-a-number"}},
	}
	for i, q := range bad {
		if _, err := ParseSuccessCallback(q); !errors.Is(err, domain.ErrMalformedCallback) {
			t.Fatalf("case %d: got %v, want malformed callback", i, err)
		}
	}
}

func TestParseFailCallback(t *testing.T) {
	q := url.Values{"code": {"CARD_DECLINED"}, "message": {"declined"}, "orderId": {"ord-1"}}
	cb := ParseFailCallback(q)
	if cb.Code != "CARD_DECLINED" || cb.Message != "declined" || cb.OrderID != "ord-1" {
		t.Fatalf("callback = %+v", cb)
	}
}
