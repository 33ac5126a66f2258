package checkout

import (
	"auctionfront/internal/domain"
	"auctionfront/internal/session"
	"auctionfront/internal/storage"
)

// Wishlist is a purely local set of auction ids. It has no server
// counterpart; the stored key is shared across accounts (switching users
// without clearing storage mixes state, a documented limitation).
type Wishlist struct {
	store   *storage.Store
	session *session.Session
}

func NewWishlist(store *storage.Store, sess *session.Session) *Wishlist {
	return &Wishlist{store: store, session: sess}
}

func (w *Wishlist) ids() ([]int64, error) {
	var ids []int64
	if _, err := w.store.GetJSON(storage.KeyWishlist, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDs lists the wishlisted auction ids.
func (w *Wishlist) IDs() ([]int64, error) {
	return w.ids()
}

func (w *Wishlist) Contains(auctionID int64) (bool, error) {
	ids, err := w.ids()
	if err != nil {
		return false, err
	}
	for _, id := range ids {
		if id == auctionID {
			return true, nil
		}
	}
	return false, nil
}

// Toggle flips membership for one auction and reports the new membership
// state. Toggling twice restores the original state. Signed-out users are
// rejected before any storage write.
func (w *Wishlist) Toggle(auctionID int64) (bool, error) {
	if !w.session.IsAuthenticated() {
		return false, domain.ErrAuthRequired
	}
	ids, err := w.ids()
	if err != nil {
		return false, err
	}
	next := make([]int64, 0, len(ids)+1)
	removed := false
	for _, id := range ids {
		if id == auctionID {
			removed = true
			continue
		}
		next = append(next, id)
	}
	if !removed {
		next = append(next, auctionID)
	}
	if err := w.store.SetJSON(storage.KeyWishlist, next); err != nil {
		return false, err
	}
	return !removed, nil
}
