package mockapi

import (
	"context"
	"time"

	"auctionfront/internal/api"
	"auctionfront/internal/domain"
	"auctionfront/internal/session"
)

// Client adapts Backend to the api.Client contract, adding a fixed artificial
// delay per call so the UI exercises the same loading states it would against
// a network.
type Client struct {
	backend *Backend
	session *session.Session
	latency time.Duration
}

var _ api.Client = (*Client)(nil)

func NewClient(backend *Backend, sess *session.Session, latency time.Duration) *Client {
	return &Client{backend: backend, session: sess, latency: latency}
}

func (c *Client) delay(ctx context.Context) error {
	if c.latency <= 0 {
		return nil
	}
	t := time.NewTimer(c.latency)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// userID resolves the session token against the backend, gating mutations the
// same way the HTTP binding does.
func (c *Client) userID() (int64, error) {
	if !c.session.IsAuthenticated() {
		return 0, domain.ErrAuthRequired
	}
	return c.backend.Authenticate(c.session.Token())
}

func (c *Client) SearchAuctions(ctx context.Context, filter api.SearchFilter) (*api.SearchResult, error) {
	if err := c.delay(ctx); err != nil {
		return nil, err
	}
	return c.backend.SearchAuctions(filter), nil
}

func (c *Client) GetAuctionByID(ctx context.Context, id int64) (*domain.AuctionItem, error) {
	if err := c.delay(ctx); err != nil {
		return nil, err
	}
	return c.backend.Auction(id)
}

func (c *Client) CreateAuction(ctx context.Context, in api.CreateAuctionInput, images []api.ImageUpload) (*domain.AuctionItem, error) {
	uid, err := c.userID()
	if err != nil {
		return nil, err
	}
	if err := c.delay(ctx); err != nil {
		return nil, err
	}
	return c.backend.CreateAuction(uid, in, images)
}

func (c *Client) Login(ctx context.Context, email, password string) (*domain.User, error) {
	if err := c.delay(ctx); err != nil {
		return nil, err
	}
	token, user, err := c.backend.Login(email, password)
	if err != nil {
		return nil, err
	}
	if err := c.session.SetCredentials(token, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (c *Client) Signup(ctx context.Context, in api.SignupInput) (*domain.User, error) {
	if err := c.delay(ctx); err != nil {
		return nil, err
	}
	user, err := c.backend.Signup(in)
	if err != nil {
		return nil, err
	}
	// Same convenience the mock always had: signup signs the user in.
	token, _, err := c.backend.Login(in.Email, in.Password)
	if err != nil {
		return nil, err
	}
	if err := c.session.SetCredentials(token, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (c *Client) Logout() error { return c.session.Teardown() }

func (c *Client) IsAuthenticated() bool { return c.session.IsAuthenticated() }

func (c *Client) CurrentUser() *domain.User { return c.session.User() }

func (c *Client) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	if err := c.delay(ctx); err != nil {
		return nil, err
	}
	return c.backend.User(id)
}

func (c *Client) PlaceBid(ctx context.Context, auctionID, amount int64) (*domain.Bid, error) {
	uid, err := c.userID()
	if err != nil {
		return nil, err
	}
	if err := c.delay(ctx); err != nil {
		return nil, err
	}
	return c.backend.PlaceBid(uid, auctionID, amount)
}

func (c *Client) GetMyBids(ctx context.Context) ([]domain.Bid, error) {
	uid, err := c.userID()
	if err != nil {
		return nil, err
	}
	if err := c.delay(ctx); err != nil {
		return nil, err
	}
	return c.backend.UserBids(uid), nil
}

func (c *Client) GetAuctionBids(ctx context.Context, auctionID int64) ([]domain.Bid, error) {
	if err := c.delay(ctx); err != nil {
		return nil, err
	}
	return c.backend.AuctionBids(auctionID)
}

func (c *Client) BuyNow(ctx context.Context, auctionID int64) (string, error) {
	uid, err := c.userID()
	if err != nil {
		return "", err
	}
	if err := c.delay(ctx); err != nil {
		return "", err
	}
	order, err := c.backend.BuyNow(uid, auctionID)
	if err != nil {
		return "", err
	}
	return order.OrderID, nil
}

func (c *Client) GetOrderByID(ctx context.Context, orderID string) (*domain.Order, error) {
	uid, err := c.userID()
	if err != nil {
		return nil, err
	}
	if err := c.delay(ctx); err != nil {
		return nil, err
	}
	return c.backend.OrderForUser(uid, orderID)
}

func (c *Client) GetPublicOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	if err := c.delay(ctx); err != nil {
		return nil, err
	}
	return c.backend.Order(orderID)
}

func (c *Client) GetOrderByAuctionID(ctx context.Context, auctionID int64) (*domain.Order, error) {
	uid, err := c.userID()
	if err != nil {
		return nil, err
	}
	if err := c.delay(ctx); err != nil {
		return nil, err
	}
	return c.backend.OrderByAuction(uid, auctionID)
}

func (c *Client) GetMyOrders(ctx context.Context) ([]domain.Order, error) {
	uid, err := c.userID()
	if err != nil {
		return nil, err
	}
	if err := c.delay(ctx); err != nil {
		return nil, err
	}
	return c.backend.UserOrders(uid), nil
}

func (c *Client) ConfirmPayment(ctx context.Context, paymentKey, orderID string, amount int64) error {
	if _, err := c.userID(); err != nil {
		return err
	}
	if err := c.delay(ctx); err != nil {
		return err
	}
	return c.backend.ConfirmPayment(paymentKey, orderID, amount)
}

func (c *Client) GetCart(ctx context.Context) (*domain.Cart, error) {
	uid, err := c.userID()
	if err != nil {
		return nil, err
	}
	if err := c.delay(ctx); err != nil {
		return nil, err
	}
	return c.backend.Cart(uid), nil
}

func (c *Client) GetCartItemCount(ctx context.Context) (int, error) {
	cart, err := c.GetCart(ctx)
	if err != nil {
		return 0, err
	}
	return cart.ActiveItemCount, nil
}

func (c *Client) AddItemToCart(ctx context.Context, auctionID int64) error {
	uid, err := c.userID()
	if err != nil {
		return err
	}
	if err := c.delay(ctx); err != nil {
		return err
	}
	return c.backend.AddItemToCart(uid, auctionID)
}

func (c *Client) RemoveItemFromCart(ctx context.Context, cartItemID int64) error {
	uid, err := c.userID()
	if err != nil {
		return err
	}
	if err := c.delay(ctx); err != nil {
		return err
	}
	return c.backend.RemoveItemFromCart(uid, cartItemID)
}

func (c *Client) BuyNowFromCart(ctx context.Context, cartItemIDs []int64) ([]string, error) {
	uid, err := c.userID()
	if err != nil {
		return nil, err
	}
	if err := c.delay(ctx); err != nil {
		return nil, err
	}
	return c.backend.BuyNowFromCart(uid, cartItemIDs)
}

func (c *Client) BuyNowAllCart(ctx context.Context) ([]string, error) {
	uid, err := c.userID()
	if err != nil {
		return nil, err
	}
	if err := c.delay(ctx); err != nil {
		return nil, err
	}
	return c.backend.BuyNowAllCart(uid)
}

func (c *Client) ClearExpiredItems(ctx context.Context) error {
	uid, err := c.userID()
	if err != nil {
		return err
	}
	if err := c.delay(ctx); err != nil {
		return err
	}
	c.backend.ClearExpiredItems(uid)
	return nil
}

func (c *Client) GetSettlementHistory(ctx context.Context) (*domain.Settlement, error) {
	uid, err := c.userID()
	if err != nil {
		return nil, err
	}
	if err := c.delay(ctx); err != nil {
		return nil, err
	}
	return c.backend.LatestSettlement(uid)
}

func (c *Client) GetAllSettlements(ctx context.Context) ([]domain.Settlement, error) {
	uid, err := c.userID()
	if err != nil {
		return nil, err
	}
	if err := c.delay(ctx); err != nil {
		return nil, err
	}
	return c.backend.Settlements(uid), nil
}

func (c *Client) GetSettlementPendings(ctx context.Context) ([]domain.SettlementPendingItem, error) {
	uid, err := c.userID()
	if err != nil {
		return nil, err
	}
	if err := c.delay(ctx); err != nil {
		return nil, err
	}
	return c.backend.SettlementPendings(uid), nil
}
