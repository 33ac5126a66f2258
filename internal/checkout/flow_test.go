package checkout

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"testing"

	"auctionfront/internal/api"
	"auctionfront/internal/domain"
	"auctionfront/internal/payment"
)

// stubClient implements api.Client with just enough behavior for flow tests.
type stubClient struct {
	authed bool
	orders map[string]*domain.Order

	buyNowCalls   int
	buyNowResult  string
	buyNowErr     error
	cartOrderIDs  []string
	cartErr       error
	confirmCalls  []string
	confirmErr    error
	confirmedAmts []int64
}

func (s *stubClient) SearchAuctions(context.Context, api.SearchFilter) (*api.SearchResult, error) {
	return &api.SearchResult{}, nil
}
func (s *stubClient) GetAuctionByID(context.Context, int64) (*domain.AuctionItem, error) {
	return nil, domain.ErrNotFound
}
func (s *stubClient) CreateAuction(context.Context, api.CreateAuctionInput, []api.ImageUpload) (*domain.AuctionItem, error) {
	return nil, domain.ErrNotFound
}
func (s *stubClient) Login(context.Context, string, string) (*domain.User, error) {
	return nil, domain.ErrAuthFailed
}
func (s *stubClient) Signup(context.Context, api.SignupInput) (*domain.User, error) {
	return nil, domain.ErrAuthFailed
}
func (s *stubClient) Logout() error         { return nil }
func (s *stubClient) IsAuthenticated() bool { return s.authed }
func (s *stubClient) CurrentUser() *domain.User {
	if !s.authed {
		return nil
	}
	return &domain.User{ID: 1, Nickname: "demo"}
}
func (s *stubClient) GetUser(context.Context, int64) (*domain.User, error) {
	return nil, domain.ErrNotFound
}
func (s *stubClient) PlaceBid(context.Context, int64, int64) (*domain.Bid, error) {
	return nil, domain.ErrNotFound
}
func (s *stubClient) GetMyBids(context.Context) ([]domain.Bid, error) { return nil, nil }
func (s *stubClient) GetAuctionBids(context.Context, int64) ([]domain.Bid, error) {
	return nil, nil
}

func (s *stubClient) BuyNow(context.Context, int64) (string, error) {
	s.buyNowCalls++
	if s.buyNowErr != nil {
		return "", s.buyNowErr
	}
	return s.buyNowResult, nil
}
func (s *stubClient) GetOrderByID(_ context.Context, orderID string) (*domain.Order, error) {
	o, ok := s.orders[orderID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return o, nil
}
func (s *stubClient) GetPublicOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	return s.GetOrderByID(ctx, orderID)
}
func (s *stubClient) GetOrderByAuctionID(context.Context, int64) (*domain.Order, error) {
	return nil, domain.ErrNotFound
}
func (s *stubClient) GetMyOrders(context.Context) ([]domain.Order, error) { return nil, nil }
func (s *stubClient) ConfirmPayment(_ context.Context, paymentKey, orderID string, amount int64) error {
	s.confirmCalls = append(s.confirmCalls, paymentKey+"/"+orderID)
	s.confirmedAmts = append(s.confirmedAmts, amount)
	return s.confirmErr
}

func (s *stubClient) GetCart(context.Context) (*domain.Cart, error) { return &domain.Cart{}, nil }
func (s *stubClient) GetCartItemCount(context.Context) (int, error) { return 0, nil }
func (s *stubClient) AddItemToCart(context.Context, int64) error      { return nil }
func (s *stubClient) RemoveItemFromCart(context.Context, int64) error { return nil }
func (s *stubClient) BuyNowFromCart(context.Context, []int64) ([]string, error) {
	return s.cartOrderIDs, s.cartErr
}
func (s *stubClient) BuyNowAllCart(context.Context) ([]string, error) {
	return s.cartOrderIDs, s.cartErr
}
func (s *stubClient) ClearExpiredItems(context.Context) error { return nil }
func (s *stubClient) GetSettlementHistory(context.Context) (*domain.Settlement, error) {
	return nil, domain.ErrNotFound
}
func (s *stubClient) GetAllSettlements(context.Context) ([]domain.Settlement, error) {
	return nil, nil
}
func (s *stubClient) GetSettlementPendings(context.Context) ([]domain.SettlementPendingItem, error) {
	return nil, nil
}

var _ api.Client = (*stubClient)(nil)

func testFlow(client *stubClient) *Flow {
	gateway := payment.NewHostedWidget("https://pay.example.com/checkout", "test_ck")
	return NewFlow(client, gateway, "http://localhost:5173/payment/success", "http://localhost:5173/payment/fail", nil)
}

func TestBuyNowRequiresAuth(t *testing.T) {
	client := &stubClient{authed: false}
	flow := testFlow(client)

	_, err := flow.BuyNow(context.Background(), 10)
	if !errors.Is(err, domain.ErrAuthRequired) {
		t.Fatalf("got %v, want auth required", err)
	}
	if flow.State() != StateIdle {
		t.Fatalf("state = %s, want IDLE", flow.State())
	}
	if client.buyNowCalls != 0 {
		t.Fatal("no order call should have been made")
	}
}

func TestBuyNowRedirectsForSingleOrder(t *testing.T) {
	client := &stubClient{
		authed:       true,
		buyNowResult: "ord-1",
		orders: map[string]*domain.Order{
			"ord-1": {OrderID: "ord-1", AuctionTitle: "record player", FinalPrice: 2500},
		},
	}
	flow := testFlow(client)

	out, err := flow.BuyNow(context.Background(), 10)
	if err != nil {
		t.Fatalf("buy now: %v", err)
	}
	if flow.State() != StatePaymentRedirected {
		t.Fatalf("state = %s, want PAYMENT_REDIRECTED", flow.State())
	}
	if out.PendingOnly {
		t.Fatal("single order should not be pending-only")
	}
	if !strings.Contains(out.RedirectURL, "orderId=ord-1") || !strings.Contains(out.RedirectURL, "amount=2500") {
		t.Fatalf("redirect = %q", out.RedirectURL)
	}
	if flow.CurrentOrderID() != "ord-1" {
		t.Fatalf("current order = %q", flow.CurrentOrderID())
	}
}

func TestBuyNowErrorReturnsToIdle(t *testing.T) {
	client := &stubClient{authed: true, buyNowErr: domain.NewCodedError(domain.CodeBuyNowNotEnabled, "")}
	flow := testFlow(client)

	_, err := flow.BuyNow(context.Background(), 10)
	if !errors.Is(err, domain.ErrBuyNowNotEnabled) {
		t.Fatalf("got %v, want buy-now not enabled", err)
	}
	if flow.State() != StateIdle {
		t.Fatalf("state = %s, want IDLE", flow.State())
	}
}

func TestCheckoutCartMultipleOrdersStayPending(t *testing.T) {
	client := &stubClient{authed: true, cartOrderIDs: []string{"ord-1", "ord-2"}}
	flow := testFlow(client)

	out, err := flow.CheckoutCart(context.Background(), []int64{1, 2})
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}
	if !out.PendingOnly || out.RedirectURL != "" {
		t.Fatalf("outcome = %+v, want pending-only with no redirect", out)
	}
	if len(out.OrderIDs) != 2 {
		t.Fatalf("orders = %v", out.OrderIDs)
	}
	if flow.State() != StateOrderCreated {
		t.Fatalf("state = %s, want ORDER_CREATED", flow.State())
	}
}

func TestCheckoutCartNoOrdersIsAnError(t *testing.T) {
	client := &stubClient{authed: true, cartOrderIDs: nil}
	flow := testFlow(client)

	_, err := flow.CheckoutCart(context.Background(), []int64{1})
	if !errors.Is(err, domain.ErrRequestFailed) {
		t.Fatalf("got %v, want request failed", err)
	}
	if flow.State() != StateIdle {
		t.Fatalf("state = %s, want IDLE", flow.State())
	}
}

func TestSuccessCallbackMalformed(t *testing.T) {
	client := &stubClient{authed: true}
	flow := testFlow(client)

	q := url.Values{"orderId": {"ord-1"}, "amount": {"2500"}} // no paymentKey
	err := flow.HandleSuccessCallback(context.Background(), q)
	if !errors.Is(err, domain.ErrMalformedCallback) {
		t.Fatalf("got %v, want malformed callback", err)
	}
	if len(client.confirmCalls) != 0 {
		t.Fatal("confirm must not be called on a malformed callback")
	}
}

func TestSuccessCallbackConfirms(t *testing.T) {
	client := &stubClient{
		authed:       true,
		buyNowResult: "ord-1",
		orders: map[string]*domain.Order{
			"ord-1": {OrderID: "ord-1", AuctionTitle: "record player", FinalPrice: 2500},
		},
	}
	flow := testFlow(client)
	if _, err := flow.BuyNow(context.Background(), 10); err != nil {
		t.Fatalf("buy now: %v", err)
	}

	q := url.Values{"paymentKey": {"pk-1"}, "orderId": {"ord-1"}, "amount": {"2500"}}
	if err := flow.HandleSuccessCallback(context.Background(), q); err != nil {
		t.Fatalf("callback: %v", err)
	}
	if flow.State() != StatePaymentConfirmed {
		t.Fatalf("state = %s, want PAYMENT_CONFIRMED", flow.State())
	}
	if len(client.confirmCalls) != 1 || client.confirmCalls[0] != "pk-1/ord-1" {
		t.Fatalf("confirm calls = %v", client.confirmCalls)
	}
	if client.confirmedAmts[0] != 2500 {
		t.Fatalf("confirmed amount = %d", client.confirmedAmts[0])
	}
}

func TestSuccessCallbackForOtherOrderIsIgnored(t *testing.T) {
	client := &stubClient{
		authed:       true,
		buyNowResult: "ord-1",
		orders: map[string]*domain.Order{
			"ord-1": {OrderID: "ord-1", FinalPrice: 2500},
		},
	}
	flow := testFlow(client)
	if _, err := flow.BuyNow(context.Background(), 10); err != nil {
		t.Fatalf("buy now: %v", err)
	}

	q := url.Values{"paymentKey": {"pk-x"}, "orderId": {"ord-other"}, "amount": {"100"}}
	if err := flow.HandleSuccessCallback(context.Background(), q); err == nil {
		t.Fatal("stale callback should report an error")
	}
	if len(client.confirmCalls) != 0 {
		t.Fatal("stale callback must not confirm")
	}
	if flow.State() != StatePaymentRedirected {
		t.Fatalf("state = %s, want PAYMENT_REDIRECTED", flow.State())
	}
}

func TestConfirmFailureKeepsPaymentKey(t *testing.T) {
	client := &stubClient{
		authed:     true,
		confirmErr: domain.NewCodedError(domain.CodePaymentConfirm, "backend unavailable"),
		orders: map[string]*domain.Order{
			"ord-1": {OrderID: "ord-1", FinalPrice: 2500},
		},
	}
	flow := testFlow(client)

	q := url.Values{"paymentKey": {"pk-1"}, "orderId": {"ord-1"}, "amount": {"2500"}}
	err := flow.HandleSuccessCallback(context.Background(), q)
	if !errors.Is(err, domain.ErrPaymentConfirmationFailed) {
		t.Fatalf("got %v, want confirmation failure", err)
	}
	if flow.State() != StatePaymentFailed {
		t.Fatalf("state = %s, want PAYMENT_FAILED", flow.State())
	}

	// The gateway may have taken the money; a retry re-sends the same key.
	client.confirmErr = nil
	if err := flow.RetryConfirm(context.Background()); err != nil {
		t.Fatalf("retry confirm: %v", err)
	}
	if flow.State() != StatePaymentConfirmed {
		t.Fatalf("state = %s, want PAYMENT_CONFIRMED", flow.State())
	}
	if client.confirmCalls[1] != "pk-1/ord-1" {
		t.Fatalf("retry used %q", client.confirmCalls[1])
	}
}

func TestFailCallbackRetriesSameOrder(t *testing.T) {
	client := &stubClient{
		authed:       true,
		buyNowResult: "ord-1",
		orders: map[string]*domain.Order{
			"ord-1": {OrderID: "ord-1", AuctionTitle: "record player", FinalPrice: 2500},
		},
	}
	flow := testFlow(client)
	if _, err := flow.BuyNow(context.Background(), 10); err != nil {
		t.Fatalf("buy now: %v", err)
	}
	buyCalls := client.buyNowCalls

	q := url.Values{"code": {"CARD_DECLINED"}, "message": {"card declined"}, "orderId": {"ord-1"}}
	cb := flow.HandleFailCallback(q)
	if cb.Code != "CARD_DECLINED" || cb.Message != "card declined" {
		t.Fatalf("callback = %+v, want verbatim code and message", cb)
	}
	if flow.State() != StateOrderCreated {
		t.Fatalf("state = %s, want ORDER_CREATED", flow.State())
	}
	if flow.LastFailure() != cb {
		t.Fatal("failure not retained for the view")
	}

	out, err := flow.RetryPayment(context.Background())
	if err != nil {
		t.Fatalf("retry: %v", err)
	}
	if !strings.Contains(out.RedirectURL, "orderId=ord-1") {
		t.Fatalf("retry redirect = %q", out.RedirectURL)
	}
	if client.buyNowCalls != buyCalls {
		t.Fatal("retry must not create a new order")
	}
}
