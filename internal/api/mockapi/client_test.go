package mockapi

import (
	"context"
	"errors"
	"testing"
	"time"

	"auctionfront/internal/api"
	"auctionfront/internal/domain"
	"auctionfront/internal/session"
	"auctionfront/internal/storage"
)

func testClient(t *testing.T, latency time.Duration) (*Client, *Backend, *session.Session) {
	t.Helper()
	store, err := storage.Open("")
	if err != nil {
		t.Fatalf("open storage: %v", err)
	}
	sess, err := session.Init(store)
	if err != nil {
		t.Fatalf("init session: %v", err)
	}
	backend := NewBackend(7, store, nil)
	return NewClient(backend, sess, latency), backend, sess
}

func TestClientAuthGuard(t *testing.T) {
	c, _, _ := testClient(t, 0)
	ctx := context.Background()

	if _, err := c.GetCart(ctx); !errors.Is(err, domain.ErrAuthRequired) {
		t.Fatalf("get cart signed out: got %v, want auth required", err)
	}
	if err := c.AddItemToCart(ctx, 1); !errors.Is(err, domain.ErrAuthRequired) {
		t.Fatalf("add to cart signed out: got %v, want auth required", err)
	}
	if _, err := c.BuyNow(ctx, 1); !errors.Is(err, domain.ErrAuthRequired) {
		t.Fatalf("buy now signed out: got %v, want auth required", err)
	}
}

func TestClientLoginManagesSession(t *testing.T) {
	c, _, sess := testClient(t, 0)
	ctx := context.Background()

	user, err := c.Login(ctx, "demo@example.com", "Passw0rd!")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if !c.IsAuthenticated() {
		t.Fatal("expected authenticated session after login")
	}
	if cu := c.CurrentUser(); cu == nil || cu.ID != user.ID {
		t.Fatalf("current user = %+v, want %+v", cu, user)
	}
	if sess.Token() == "" {
		t.Fatal("session token should be set")
	}

	if err := c.Logout(); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if c.IsAuthenticated() {
		t.Fatal("expected signed-out session after logout")
	}
}

func TestClientSignupSignsIn(t *testing.T) {
	c, _, _ := testClient(t, 0)
	ctx := context.Background()

	user, err := c.Signup(ctx, api.SignupInput{
		Nickname: "newbie",
		Email:    "newbie@example.com",
		Password: "longenough",
	})
	if err != nil {
		t.Fatalf("signup: %v", err)
	}
	if user.Nickname != "newbie" {
		t.Fatalf("nickname = %q", user.Nickname)
	}
	if !c.IsAuthenticated() {
		t.Fatal("signup should sign the user in")
	}
}

func TestClientLatencyHonorsContext(t *testing.T) {
	c, _, _ := testClient(t, time.Minute)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := c.SearchAuctions(ctx, api.SearchFilter{})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("got %v, want deadline exceeded", err)
	}
	if elapsed := time.Since(start); elapsed > 5*time.Second {
		t.Fatalf("cancellation took %v", elapsed)
	}
}

func TestClientEndToEndBuyNow(t *testing.T) {
	c, backend, _ := testClient(t, 0)
	ctx := context.Background()

	if _, err := c.Login(ctx, "demo@example.com", "Passw0rd!"); err != nil {
		t.Fatalf("login: %v", err)
	}

	item := activeAuction(t, backend, sellerUserID, 1000, int64p(2000))
	orderID, err := c.BuyNow(ctx, item.AuctionItemID)
	if err != nil {
		t.Fatalf("buy now: %v", err)
	}

	order, err := c.GetOrderByID(ctx, orderID)
	if err != nil {
		t.Fatalf("get order: %v", err)
	}
	if order.Status != domain.OrderPending {
		t.Fatalf("order status = %s, want PENDING", order.Status)
	}

	if err := c.ConfirmPayment(ctx, "pay-key", orderID, order.FinalPrice); err != nil {
		t.Fatalf("confirm: %v", err)
	}
	confirmed, err := c.GetOrderByID(ctx, orderID)
	if err != nil {
		t.Fatalf("get order: %v", err)
	}
	if confirmed.Status != domain.OrderCompleted {
		t.Fatalf("order status = %s, want COMPLETED", confirmed.Status)
	}

	orders, err := c.GetMyOrders(ctx)
	if err != nil {
		t.Fatalf("my orders: %v", err)
	}
	if len(orders) != 1 {
		t.Fatalf("orders = %d, want 1", len(orders))
	}
}
