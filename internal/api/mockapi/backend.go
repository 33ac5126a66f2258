// Package mockapi is the development substitute for the remote API gateway.
// Backend reproduces the backend's externally observable behavior in memory,
// enforcing the same validation rules for bids, buy-now eligibility, and
// duplicate cart adds, so code exercised against it behaves identically when
// pointed at the real backend.
package mockapi

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"sort"
	"strings"
	"sync"
	"time"

	"auctionfront/internal/api"
	"auctionfront/internal/domain"
	"auctionfront/internal/storage"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type mockUser struct {
	domain.User
	passwordHash string
}

type cartRecord struct {
	ID         int64     `json:"id"`
	AuctionID  int64     `json:"auctionId"`
	PriceAdded int64     `json:"buyNowPriceWhenAdded"`
	AddedAt    time.Time `json:"addedAt"`
}

// Backend holds the authoritative mock state. The catalog is regenerated at
// process start; the cart survives restarts through the storage file under a
// single fixed key, never namespaced per user (same limitation localStorage
// had).
type Backend struct {
	mu     sync.Mutex
	logger *log.Logger
	store  *storage.Store
	now    func() time.Time

	auctions     map[int64]*domain.AuctionItem
	auctionIDs   []int64
	bids         map[int64][]domain.Bid
	users        map[int64]*mockUser
	usersByEmail map[string]int64
	tokens       map[string]tokenMeta
	orders       map[string]*domain.Order
	cart         []cartRecord
	pendings     []domain.SettlementPendingItem
	settlements  []domain.Settlement
	nextID       int64
}

type tokenMeta struct {
	userID    int64
	expiresAt time.Time
}

const tokenTTL = 48 * time.Hour

// NewBackend builds a Backend seeded with a generated catalog, the catalog's
// sellers, and one demo account (demo@example.com / Passw0rd!). A nil store
// keeps the cart purely in memory.
func NewBackend(seed int64, store *storage.Store, logger *log.Logger) *Backend {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	b := &Backend{
		logger:       logger,
		store:        store,
		now:          time.Now,
		auctions:     make(map[int64]*domain.AuctionItem),
		bids:         make(map[int64][]domain.Bid),
		users:        make(map[int64]*mockUser),
		usersByEmail: make(map[string]int64),
		tokens:       make(map[string]tokenMeta),
		orders:       make(map[string]*domain.Order),
		nextID:       1000,
	}

	for _, item := range GenerateCatalog(seed, b.now()) {
		a := item
		b.auctions[a.AuctionItemID] = &a
		b.auctionIDs = append(b.auctionIDs, a.AuctionItemID)
	}

	for n := int64(1); n <= catalogSellerCount; n++ {
		nick := fmt.Sprintf("seller%02d", n)
		b.seedUser(100+n, nick+"@example.com", nick)
	}
	b.seedUser(1, "demo@example.com", "demo")

	if store != nil {
		if _, err := store.GetJSON(storage.KeyMockCart, &b.cart); err != nil {
			logger.Printf("mock backend: discard unreadable cart state: %v", err)
			b.cart = nil
		}
		for _, rec := range b.cart {
			if rec.ID >= b.nextID {
				b.nextID = rec.ID + 1
			}
		}
	}

	return b
}

func (b *Backend) seedUser(id int64, email, nickname string) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("Passw0rd!"), bcrypt.DefaultCost)
	b.users[id] = &mockUser{
		User: domain.User{
			ID:        id,
			Email:     email,
			Nickname:  nickname,
			Status:    "ACTIVE",
			CreatedAt: b.now(),
			UpdatedAt: b.now(),
		},
		passwordHash: string(hash),
	}
	b.usersByEmail[email] = id
}

func (b *Backend) id() int64 {
	b.nextID++
	return b.nextID
}

// --- auth ---

// Signup registers a user and returns the created identity.
func (b *Backend) Signup(in api.SignupInput) (*domain.User, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	email := strings.TrimSpace(strings.ToLower(in.Email))
	if email == "" || strings.TrimSpace(in.Nickname) == "" || len(in.Password) < 8 {
		return nil, domain.NewCodedError(domain.CodeValidationFailed, "nickname, email, and a password of at least 8 characters are required")
	}
	if _, exists := b.usersByEmail[email]; exists {
		return nil, domain.NewCodedError(domain.CodeValidationFailed, "email is already registered")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	u := &mockUser{
		User: domain.User{
			ID:        b.id(),
			Email:     email,
			Nickname:  strings.TrimSpace(in.Nickname),
			Status:    "ACTIVE",
			CreatedAt: b.now(),
			UpdatedAt: b.now(),
		},
		passwordHash: string(hash),
	}
	b.users[u.ID] = u
	b.usersByEmail[email] = u.ID
	user := u.User
	return &user, nil
}

// Login validates credentials and issues an opaque bearer token.
func (b *Backend) Login(email, password string) (string, *domain.User, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	id, ok := b.usersByEmail[strings.TrimSpace(strings.ToLower(email))]
	if !ok {
		return "", nil, domain.NewCodedError(domain.CodeAuthFailed, "invalid credentials")
	}
	u := b.users[id]
	if bcrypt.CompareHashAndPassword([]byte(u.passwordHash), []byte(password)) != nil {
		return "", nil, domain.NewCodedError(domain.CodeAuthFailed, "invalid credentials")
	}
	token, err := randomToken()
	if err != nil {
		return "", nil, err
	}
	b.tokens[token] = tokenMeta{userID: id, expiresAt: b.now().Add(tokenTTL)}
	user := u.User
	return token, &user, nil
}

// Authenticate resolves a bearer token to a user id.
func (b *Backend) Authenticate(token string) (int64, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	meta, ok := b.tokens[token]
	if !ok || b.now().After(meta.expiresAt) {
		delete(b.tokens, token)
		return 0, domain.NewCodedError(domain.CodeAuthRequired, "invalid or expired token")
	}
	return meta.userID, nil
}

// User returns a registered user by id.
func (b *Backend) User(id int64) (*domain.User, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.user(id)
}

func (b *Backend) user(id int64) (*domain.User, error) {
	u, ok := b.users[id]
	if !ok {
		return nil, domain.NewCodedError(domain.CodeNotFound, "user not found")
	}
	user := u.User
	return &user, nil
}

func randomToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

// --- auctions ---

// SearchAuctions filters, sorts, and pages the catalog. Pages are 0-based.
func (b *Backend) SearchAuctions(filter api.SearchFilter) *api.SearchResult {
	b.mu.Lock()
	defer b.mu.Unlock()
	var matched []domain.AuctionItem
	keyword := strings.ToLower(strings.TrimSpace(filter.Keyword))
	for _, id := range b.auctionIDs {
		a := *b.auctions[id]
		if keyword != "" &&
			!strings.Contains(strings.ToLower(a.Title), keyword) &&
			!strings.Contains(strings.ToLower(a.Description), keyword) {
			continue
		}
		if filter.Category != "" && a.Category != filter.Category {
			continue
		}
		if filter.Status != "" && a.Status != filter.Status {
			continue
		}
		matched = append(matched, a)
	}

	if filter.Sort == api.SortPopular {
		sort.SliceStable(matched, func(i, j int) bool { return matched[i].CurrentPrice > matched[j].CurrentPrice })
	} else {
		sort.SliceStable(matched, func(i, j int) bool { return matched[i].CreatedAt.After(matched[j].CreatedAt) })
	}

	size := filter.Size
	if size <= 0 {
		size = 10
	}
	page := filter.Page
	if page < 0 {
		page = 0
	}
	totalPages := (len(matched) + size - 1) / size

	start := page * size
	if start > len(matched) {
		start = len(matched)
	}
	end := start + size
	if end > len(matched) {
		end = len(matched)
	}

	return &api.SearchResult{
		Items:      matched[start:end],
		Page:       page,
		Size:       size,
		TotalPages: totalPages,
	}
}

// Auction returns a copy of one catalog entry.
func (b *Backend) Auction(id int64) (*domain.AuctionItem, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	a, ok := b.auctions[id]
	if !ok {
		return nil, domain.NewCodedError(domain.CodeNotFound, "auction not found")
	}
	item := *a
	return &item, nil
}

// CreateAuction validates and registers a new SCHEDULED listing owned by userID.
func (b *Backend) CreateAuction(userID int64, in api.CreateAuctionInput, images []api.ImageUpload) (*domain.AuctionItem, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if err := api.ValidateCreateAuction(in, b.now()); err != nil {
		return nil, err
	}
	seller, err := b.user(userID)
	if err != nil {
		return nil, err
	}

	item := domain.AuctionItem{
		AuctionItemID: b.id(),
		Title:         in.Title,
		Description:   in.Description,
		Category:      in.Category,
		Status:        domain.AuctionScheduled,
		StartPrice:    in.StartPrice,
		CurrentPrice:  in.StartPrice,
		BuyNowPrice:   in.BuyNowPrice,
		SellerID:      seller.ID,
		SellerName:    seller.Nickname,
		StartAt:       in.StartAt,
		EndAt:         in.EndAt,
		CreatedAt:     b.now(),
		UpdatedAt:     b.now(),
	}
	for range images {
		item.ImageURLs = append(item.ImageURLs, uploadURL())
	}

	stored := item
	b.auctions[item.AuctionItemID] = &stored
	b.auctionIDs = append(b.auctionIDs, item.AuctionItemID)
	b.logger.Printf("mock backend: auction created id=%d seller=%d", item.AuctionItemID, userID)
	return &item, nil
}

func uploadURL() string {
	return "https://cdn.example.com/uploads/" + uuid.NewString() + ".jpg"
}

// ActivateAuction flips a SCHEDULED listing to ACTIVE. Test and dev hook; the
// real backend runs this transition on a schedule.
func (b *Backend) ActivateAuction(id int64) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	a, ok := b.auctions[id]
	if !ok {
		return domain.NewCodedError(domain.CodeNotFound, "auction not found")
	}
	a.Status = domain.AuctionActive
	a.UpdatedAt = b.now()
	return nil
}

// --- bids ---

// PlaceBid accepts a bid strictly above the current price on an ACTIVE
// auction. currentPrice is never mutated on rejection.
func (b *Backend) PlaceBid(userID, auctionID, amount int64) (*domain.Bid, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	a, ok := b.auctions[auctionID]
	if !ok {
		return nil, domain.NewCodedError(domain.CodeNotFound, "auction not found")
	}
	if a.Status != domain.AuctionActive {
		return nil, domain.NewCodedError(domain.CodeAuctionNotActive, "auction is not active")
	}
	if amount <= a.CurrentPrice {
		return nil, domain.NewCodedError(domain.CodeBidTooLow, "bid must exceed the current price")
	}

	bidder, err := b.user(userID)
	if err != nil {
		return nil, err
	}

	a.CurrentPrice = amount
	a.UpdatedAt = b.now()

	history := b.bids[auctionID]
	for i := range history {
		history[i].IsWinning = false
	}
	bid := domain.Bid{
		ID:           b.id(),
		AuctionID:    auctionID,
		AuctionTitle: a.Title,
		BidderID:     userID,
		BidderName:   bidder.Nickname,
		BidAmount:    amount,
		IsWinning:    true,
		CreatedAt:    b.now(),
	}
	b.bids[auctionID] = append(history, bid)
	return &bid, nil
}

// AuctionBids lists the bid history for one auction, newest first.
func (b *Backend) AuctionBids(auctionID int64) ([]domain.Bid, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.auctions[auctionID]; !ok {
		return nil, domain.NewCodedError(domain.CodeNotFound, "auction not found")
	}
	history := b.bids[auctionID]
	out := make([]domain.Bid, len(history))
	copy(out, history)
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

// UserBids lists every bid placed by userID.
func (b *Backend) UserBids(userID int64) []domain.Bid {
	b.mu.Lock()
	defer b.mu.Unlock()
	var out []domain.Bid
	for _, history := range b.bids {
		for _, bid := range history {
			if bid.BidderID == userID {
				out = append(out, bid)
			}
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

// --- orders ---

// BuyNow creates a PENDING order for an ACTIVE, buy-now-enabled auction not
// owned by the buyer, and takes the auction off the market. A second attempt
// on the same auction fails the status check, which is the authoritative
// double-submit guard.
func (b *Backend) BuyNow(userID, auctionID int64) (*domain.Order, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buyNow(userID, auctionID)
}

func (b *Backend) buyNow(userID, auctionID int64) (*domain.Order, error) {
	a, ok := b.auctions[auctionID]
	if !ok {
		return nil, domain.NewCodedError(domain.CodeNotFound, "auction not found")
	}
	if a.Status != domain.AuctionActive {
		return nil, domain.NewCodedError(domain.CodeAuctionNotActive, "auction is not active")
	}
	if a.BuyNowPrice == nil {
		return nil, domain.NewCodedError(domain.CodeBuyNowNotEnabled, "auction does not support buy-now")
	}
	if *a.BuyNowPrice <= 0 {
		return nil, domain.NewCodedError(domain.CodeBuyNowPriceNotSet, "buy-now price is not set")
	}
	if a.SellerID == userID {
		return nil, domain.NewCodedError(domain.CodeCannotBuyOwnItem, "cannot buy your own item")
	}

	buyer, err := b.user(userID)
	if err != nil {
		return nil, err
	}

	a.Status = domain.AuctionSoldBuyNow
	a.UpdatedAt = b.now()

	order := &domain.Order{
		ID:             b.id(),
		OrderID:        uuid.NewString(),
		AuctionID:      auctionID,
		AuctionTitle:   a.Title,
		WinnerID:       userID,
		WinnerNickname: buyer.Nickname,
		SellerID:       a.SellerID,
		SellerNickname: a.SellerName,
		FinalPrice:     *a.BuyNowPrice,
		OrderType:      domain.OrderBuyNow,
		Status:         domain.OrderPending,
		CreatedAt:      b.now(),
	}
	if len(a.ImageURLs) > 0 {
		order.ThumbnailURL = a.ImageURLs[0]
	}
	b.orders[order.OrderID] = order
	b.logger.Printf("mock backend: order created orderId=%s auction=%d buyer=%d", order.OrderID, auctionID, userID)

	out := *order
	return &out, nil
}

// Order looks an order up by its string id without an ownership check; the
// payment page is reachable before login completes.
func (b *Backend) Order(orderID string) (*domain.Order, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.order(orderID)
}

func (b *Backend) order(orderID string) (*domain.Order, error) {
	o, ok := b.orders[orderID]
	if !ok {
		return nil, domain.NewCodedError(domain.CodeNotFound, "order not found")
	}
	out := *o
	return &out, nil
}

// OrderForUser looks an order up and hides it from anyone but its winner.
func (b *Backend) OrderForUser(userID int64, orderID string) (*domain.Order, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	o, err := b.order(orderID)
	if err != nil {
		return nil, err
	}
	if o.WinnerID != userID {
		return nil, domain.NewCodedError(domain.CodeNotFound, "order not found")
	}
	return o, nil
}

// OrderByAuction returns the winner's order for an auction.
func (b *Backend) OrderByAuction(userID, auctionID int64) (*domain.Order, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, o := range b.orders {
		if o.AuctionID == auctionID && o.WinnerID == userID {
			out := *o
			return &out, nil
		}
	}
	return nil, domain.NewCodedError(domain.CodeNotFound, "order not found")
}

// UserOrders lists every order won by userID, newest first.
func (b *Backend) UserOrders(userID int64) []domain.Order {
	b.mu.Lock()
	defer b.mu.Unlock()
	var out []domain.Order
	for _, o := range b.orders {
		if o.WinnerID == userID {
			out = append(out, *o)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

// ConfirmPayment completes a PENDING order. The call is idempotent: confirming
// an already COMPLETED order with a matching amount succeeds. An amount
// mismatch or a cancelled order is a confirmation failure.
func (b *Backend) ConfirmPayment(paymentKey, orderID string, amount int64) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	o, ok := b.orders[orderID]
	if !ok {
		return domain.NewCodedError(domain.CodeNotFound, "order not found")
	}
	if amount != o.FinalPrice {
		return domain.NewCodedError(domain.CodePaymentConfirm, "payment amount does not match the order")
	}
	switch o.Status {
	case domain.OrderCompleted:
		return nil
	case domain.OrderCancelled:
		return domain.NewCodedError(domain.CodePaymentConfirm, "order was cancelled")
	}

	now := b.now()
	o.Status = domain.OrderCompleted
	o.PaymentKey = paymentKey
	o.PaidAt = &now

	payer := ""
	if u, ok := b.users[o.WinnerID]; ok {
		payer = u.Nickname
	}
	b.pendings = append(b.pendings, domain.SettlementPendingItem{
		ID:                  b.id(),
		SettlementEventType: "ORDER_PAYMENT",
		RelTypeCode:         "ORDER",
		RelID:               o.ID,
		PayerName:           payer,
		Amount:              o.FinalPrice,
		PaymentDate:         now,
	})
	b.logger.Printf("mock backend: payment confirmed orderId=%s amount=%d", orderID, amount)
	return nil
}

// --- cart ---

func (b *Backend) persistCart() {
	if b.store == nil {
		return
	}
	if err := b.store.SetJSON(storage.KeyMockCart, b.cart); err != nil {
		b.logger.Printf("mock backend: persist cart: %v", err)
	}
}

func (b *Backend) cartItemStatus(rec cartRecord) domain.CartItemStatus {
	a, ok := b.auctions[rec.AuctionID]
	if !ok {
		return domain.CartItemExpired
	}
	switch a.Status {
	case domain.AuctionActive:
		return domain.CartItemActive
	case domain.AuctionSold, domain.AuctionSoldBuyNow:
		return domain.CartItemSold
	case domain.AuctionEnded:
		return domain.CartItemAuctionEnded
	default:
		return domain.CartItemExpired
	}
}

// Cart projects the stored cart records against the live catalog.
func (b *Backend) Cart(userID int64) *domain.Cart {
	b.mu.Lock()
	defer b.mu.Unlock()
	cart := &domain.Cart{ID: 1, UserID: userID, Items: make([]domain.CartItem, 0, len(b.cart))}
	for _, rec := range b.cart {
		item := domain.CartItem{
			ID:                   rec.ID,
			AuctionID:            rec.AuctionID,
			Status:               b.cartItemStatus(rec),
			BuyNowPriceWhenAdded: rec.PriceAdded,
			AddedAt:              rec.AddedAt,
		}
		if a, ok := b.auctions[rec.AuctionID]; ok {
			item.AuctionTitle = a.Title
			item.CurrentBuyNowPrice = a.BuyNowPrice
			if len(a.ImageURLs) > 0 {
				item.ThumbnailURL = a.ImageURLs[0]
			}
		}
		cart.Items = append(cart.Items, item)
		cart.TotalItemCount++
		if item.Status == domain.CartItemActive {
			cart.ActiveItemCount++
		}
	}
	return cart
}

// AddItemToCart snapshots the current buy-now price. Adding the same auction
// twice is rejected, so the call is deliberately not idempotent.
func (b *Backend) AddItemToCart(userID, auctionID int64) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	a, ok := b.auctions[auctionID]
	if !ok {
		return domain.NewCodedError(domain.CodeNotFound, "auction not found")
	}
	if a.Status != domain.AuctionActive {
		return domain.NewCodedError(domain.CodeAuctionNotActive, "auction is not active")
	}
	if a.BuyNowPrice == nil || *a.BuyNowPrice <= 0 {
		return domain.NewCodedError(domain.CodeBuyNowNotEnabled, "auction does not support buy-now")
	}
	for _, rec := range b.cart {
		if rec.AuctionID == auctionID {
			return domain.NewCodedError(domain.CodeDuplicateCartItem, "item already in cart")
		}
	}
	b.cart = append(b.cart, cartRecord{
		ID:         b.id(),
		AuctionID:  auctionID,
		PriceAdded: *a.BuyNowPrice,
		AddedAt:    b.now(),
	})
	b.persistCart()
	return nil
}

// RemoveItemFromCart drops one record by cart item id.
func (b *Backend) RemoveItemFromCart(userID, cartItemID int64) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i, rec := range b.cart {
		if rec.ID == cartItemID {
			b.cart = append(b.cart[:i], b.cart[i+1:]...)
			b.persistCart()
			return nil
		}
	}
	return domain.NewCodedError(domain.CodeNotFound, "cart item not found")
}

// BuyNowFromCart creates one order per eligible referenced item. Items that
// fail buy-now validation are dropped from the created-order list, not
// retried; every referenced item leaves the cart either way.
func (b *Backend) BuyNowFromCart(userID int64, cartItemIDs []int64) ([]string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.checkoutCart(userID, cartItemIDs)
}

func (b *Backend) checkoutCart(userID int64, cartItemIDs []int64) ([]string, error) {
	requested := make(map[int64]bool, len(cartItemIDs))
	for _, id := range cartItemIDs {
		requested[id] = true
	}

	var orderIDs []string
	var remaining []cartRecord
	for _, rec := range b.cart {
		if !requested[rec.ID] {
			remaining = append(remaining, rec)
			continue
		}
		order, err := b.buyNow(userID, rec.AuctionID)
		if err != nil {
			b.logger.Printf("mock backend: cart checkout skipped item=%d: %v", rec.ID, err)
			continue
		}
		orderIDs = append(orderIDs, order.OrderID)
	}
	b.cart = remaining
	b.persistCart()
	return orderIDs, nil
}

// BuyNowAllCart checks out every ACTIVE item in the cart.
func (b *Backend) BuyNowAllCart(userID int64) ([]string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	var ids []int64
	for _, rec := range b.cart {
		if b.cartItemStatus(rec) == domain.CartItemActive {
			ids = append(ids, rec.ID)
		}
	}
	return b.checkoutCart(userID, ids)
}

// ClearExpiredItems removes every record whose auction left purchasable state.
func (b *Backend) ClearExpiredItems(userID int64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	var remaining []cartRecord
	for _, rec := range b.cart {
		if b.cartItemStatus(rec) == domain.CartItemActive {
			remaining = append(remaining, rec)
		}
	}
	b.cart = remaining
	b.persistCart()
}

// --- settlements ---

// SettlementPendings lists completed-order proceeds awaiting settlement for a
// seller.
func (b *Backend) SettlementPendings(sellerID int64) []domain.SettlementPendingItem {
	b.mu.Lock()
	defer b.mu.Unlock()
	var out []domain.SettlementPendingItem
	for _, p := range b.pendings {
		if o := b.orderByNumericID(p.RelID); o != nil && o.SellerID == sellerID {
			out = append(out, p)
		}
	}
	return out
}

// Settlements lists finalized settlements for a seller, newest first.
func (b *Backend) Settlements(sellerID int64) []domain.Settlement {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.sellerSettlements(sellerID)
}

func (b *Backend) sellerSettlements(sellerID int64) []domain.Settlement {
	var out []domain.Settlement
	for _, s := range b.settlements {
		if s.SellerID == sellerID {
			out = append(out, s)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

// LatestSettlement returns the seller's most recent finalized settlement.
func (b *Backend) LatestSettlement(sellerID int64) (*domain.Settlement, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	all := b.sellerSettlements(sellerID)
	if len(all) == 0 {
		return nil, domain.NewCodedError(domain.CodeNotFound, "no settlement yet")
	}
	s := all[0]
	return &s, nil
}

// FinalizeSettlements rolls a seller's pending items into one settlement whose
// total equals the sum of its items. The real backend does this periodically.
func (b *Backend) FinalizeSettlements(sellerID int64) (*domain.Settlement, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	var items []domain.SettlementItem
	var total int64
	var remaining []domain.SettlementPendingItem
	for _, p := range b.pendings {
		o := b.orderByNumericID(p.RelID)
		if o == nil || o.SellerID != sellerID {
			remaining = append(remaining, p)
			continue
		}
		items = append(items, domain.SettlementItem{ID: p.ID, OrderID: o.OrderID, Amount: p.Amount})
		total += p.Amount
	}
	if len(items) == 0 {
		return nil, domain.NewCodedError(domain.CodeNotFound, "nothing to settle")
	}
	b.pendings = remaining

	now := b.now()
	s := domain.Settlement{
		ID:          b.id(),
		SellerID:    sellerID,
		TotalAmount: total,
		SettledAt:   &now,
		Items:       items,
		CreatedAt:   now,
	}
	b.settlements = append(b.settlements, s)
	return &s, nil
}

func (b *Backend) orderByNumericID(id int64) *domain.Order {
	for _, o := range b.orders {
		if o.ID == id {
			return o
		}
	}
	return nil
}

// LoadCatalog replaces the generated catalog with fixture entries previously
// produced by cmd/catalog.
func (b *Backend) LoadCatalog(r io.Reader) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	var items []domain.AuctionItem
	if err := json.NewDecoder(r).Decode(&items); err != nil {
		return err
	}
	b.auctions = make(map[int64]*domain.AuctionItem, len(items))
	b.auctionIDs = b.auctionIDs[:0]
	for _, item := range items {
		a := item
		b.auctions[a.AuctionItemID] = &a
		b.auctionIDs = append(b.auctionIDs, a.AuctionItemID)
		if a.AuctionItemID >= b.nextID {
			b.nextID = a.AuctionItemID + 1
		}
	}
	return nil
}
