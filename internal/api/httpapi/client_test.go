package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"auctionfront/internal/api"
	"auctionfront/internal/domain"
	"auctionfront/internal/session"
	"auctionfront/internal/storage"
)

func testSession(t *testing.T, token string) *session.Session {
	t.Helper()
	store, err := storage.Open("")
	if err != nil {
		t.Fatalf("open storage: %v", err)
	}
	sess, err := session.Init(store)
	if err != nil {
		t.Fatalf("init session: %v", err)
	}
	if token != "" {
		if err := sess.SetCredentials(token, &domain.User{ID: 1, Nickname: "demo"}); err != nil {
			t.Fatalf("set credentials: %v", err)
		}
	}
	return sess
}

func TestBearerHeaderAndEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer tok-1" {
			t.Errorf("authorization = %q", got)
		}
		if r.URL.Path != "/api/auctions/7" {
			t.Errorf("path = %q", r.URL.Path)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"data": domain.AuctionItem{AuctionItemID: 7, Title: "lamp", Status: domain.AuctionActive},
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, testSession(t, "tok-1"), nil)
	item, err := c.GetAuctionByID(context.Background(), 7)
	if err != nil {
		t.Fatalf("get auction: %v", err)
	}
	if item.AuctionItemID != 7 || item.Title != "lamp" {
		t.Fatalf("item = %+v", item)
	}
}

func TestSearchConvertsPageNumbers(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("page"); got != "3" {
			t.Errorf("server page = %q, want 3", got)
		}
		if got := r.URL.Query().Get("keyword"); got != "lamp" {
			t.Errorf("keyword = %q", got)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"data": map[string]any{
				"content":    []domain.AuctionItem{{AuctionItemID: 1}},
				"page":       3,
				"size":       10,
				"totalPages": 5,
			},
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, testSession(t, ""), nil)
	result, err := c.SearchAuctions(context.Background(), api.SearchFilter{Page: 2, Size: 10, Keyword: "lamp"})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if result.Page != 2 {
		t.Fatalf("client page = %d, want 2", result.Page)
	}
	if result.TotalPages != 5 || len(result.Items) != 1 {
		t.Fatalf("result = %+v", result)
	}
}

func TestErrorBodyMapsToDomainKind(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{
			"code":    "BID_TOO_LOW",
			"message": "bid must exceed the current price",
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, testSession(t, "tok-1"), nil)
	_, err := c.PlaceBid(context.Background(), 1, 100)
	if !errors.Is(err, domain.ErrBidTooLow) {
		t.Fatalf("got %v, want bid too low", err)
	}
	var coded *domain.CodedError
	if !errors.As(err, &coded) || coded.Message != "bid must exceed the current price" {
		t.Fatalf("server message lost: %v", err)
	}
}

func TestUnknownCodeFallsBackToRequestFailed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		json.NewEncoder(w).Encode(map[string]string{"code": "SOMETHING_NEW", "message": "oops"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, testSession(t, ""), nil)
	_, err := c.GetAuctionByID(context.Background(), 1)
	if !errors.Is(err, domain.ErrRequestFailed) {
		t.Fatalf("got %v, want request failed", err)
	}
}

func TestBodylessUnauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, testSession(t, ""), nil)
	_, err := c.GetAuctionByID(context.Background(), 1)
	if !errors.Is(err, domain.ErrAuthRequired) {
		t.Fatalf("got %v, want auth required", err)
	}
}

func TestMutationsGuardedWithoutToken(t *testing.T) {
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
	}))
	defer srv.Close()

	c := NewClient(srv.URL, testSession(t, ""), nil)
	ctx := context.Background()

	if _, err := c.PlaceBid(ctx, 1, 100); !errors.Is(err, domain.ErrAuthRequired) {
		t.Fatalf("place bid: got %v", err)
	}
	if _, err := c.BuyNow(ctx, 1); !errors.Is(err, domain.ErrAuthRequired) {
		t.Fatalf("buy now: got %v", err)
	}
	if err := c.AddItemToCart(ctx, 1); !errors.Is(err, domain.ErrAuthRequired) {
		t.Fatalf("add to cart: got %v", err)
	}
	if hits != 0 {
		t.Fatalf("server was reached %d times; guard must act before the network", hits)
	}
}

func TestLoginStoresCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		json.NewDecoder(r.Body).Decode(&body)
		if body["email"] != "demo@example.com" {
			t.Errorf("email = %q", body["email"])
		}
		json.NewEncoder(w).Encode(map[string]any{
			"data": map[string]any{
				"accessToken": "tok-issued",
				"user":        domain.User{ID: 9, Email: "demo@example.com", Nickname: "demo"},
			},
		})
	}))
	defer srv.Close()

	sess := testSession(t, "")
	c := NewClient(srv.URL, sess, nil)
	user, err := c.Login(context.Background(), "demo@example.com", "Passw0rd!")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if user.ID != 9 {
		t.Fatalf("user = %+v", user)
	}
	if sess.Token() != "tok-issued" {
		t.Fatalf("token = %q", sess.Token())
	}
	if !c.IsAuthenticated() {
		t.Fatal("client should be authenticated after login")
	}
}

func TestCreateAuctionSendsMultipart(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/auctions" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("parse multipart: %v", err)
		}
		var in api.CreateAuctionInput
		if err := json.Unmarshal([]byte(r.FormValue("request")), &in); err != nil {
			t.Errorf("request part: %v", err)
		}
		if in.Title != "lamp" {
			t.Errorf("title = %q", in.Title)
		}
		if files := r.MultipartForm.File["images"]; len(files) != 2 {
			t.Errorf("images = %d, want 2", len(files))
		}
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]any{
			"data": domain.AuctionItem{AuctionItemID: 55, Title: in.Title},
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, testSession(t, "tok-1"), nil)
	price := int64(5000)
	in := api.CreateAuctionInput{
		Title:       "lamp",
		Description: "brass desk lamp",
		Category:    domain.CategoryEtc,
		StartPrice:  1000,
		BuyNowPrice: &price,
		StartAt:     time.Now().Add(time.Hour),
		EndAt:       time.Now().Add(48 * time.Hour),
	}
	images := []api.ImageUpload{
		{Filename: "front.jpg", Data: []byte("front")},
		{Filename: "back.jpg", Data: []byte("back")},
	}
	item, err := c.CreateAuction(context.Background(), in, images)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if item.AuctionItemID != 55 {
		t.Fatalf("item = %+v", item)
	}
}

func TestCreateAuctionValidatesBeforeRequest(t *testing.T) {
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
	}))
	defer srv.Close()

	c := NewClient(srv.URL, testSession(t, "tok-1"), nil)
	_, err := c.CreateAuction(context.Background(), api.CreateAuctionInput{}, nil)
	if !errors.Is(err, domain.ErrValidationFailed) {
		t.Fatalf("got %v, want validation failure", err)
	}
	if hits != 0 {
		t.Fatal("invalid input must not reach the server")
	}
}
