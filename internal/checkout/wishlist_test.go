package checkout

import (
	"errors"
	"testing"

	"auctionfront/internal/domain"
	"auctionfront/internal/session"
	"auctionfront/internal/storage"
)

func testWishlist(t *testing.T, signedIn bool) *Wishlist {
	t.Helper()
	store, err := storage.Open("")
	if err != nil {
		t.Fatalf("open storage: %v", err)
	}
	sess, err := session.Init(store)
	if err != nil {
		t.Fatalf("init session: %v", err)
	}
	if signedIn {
		if err := sess.SetCredentials("tok", &domain.User{ID: 1}); err != nil {
			t.Fatalf("set credentials: %v", err)
		}
	}
	return NewWishlist(store, sess)
}

func TestWishlistRequiresAuth(t *testing.T) {
	w := testWishlist(t, false)
	if _, err := w.Toggle(5); !errors.Is(err, domain.ErrAuthRequired) {
		t.Fatalf("got %v, want auth required", err)
	}
}

func TestWishlistToggleIsAnInvolution(t *testing.T) {
	w := testWishlist(t, true)

	added, err := w.Toggle(5)
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if !added {
		t.Fatal("first toggle should add")
	}
	if ok, _ := w.Contains(5); !ok {
		t.Fatal("id should be a member")
	}

	removed, err := w.Toggle(5)
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if removed {
		t.Fatal("second toggle should remove")
	}
	if ok, _ := w.Contains(5); ok {
		t.Fatal("double toggle must restore the original state")
	}
}

func TestWishlistHoldsMultipleIDs(t *testing.T) {
	w := testWishlist(t, true)
	for _, id := range []int64{3, 5, 8} {
		if _, err := w.Toggle(id); err != nil {
			t.Fatalf("toggle %d: %v", id, err)
		}
	}
	if _, err := w.Toggle(5); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	ids, err := w.IDs()
	if err != nil {
		t.Fatalf("ids: %v", err)
	}
	if len(ids) != 2 || ids[0] != 3 || ids[1] != 8 {
		t.Fatalf("ids = %v, want [3 8]", ids)
	}
}
