package checkout

import "auctionfront/internal/domain"

// Selection is the cart view's local choice of items to check out. Only
// ACTIVE items are selectable; everything else stays excluded from both the
// selection and the total no matter what the caller asks for.
type Selection struct {
	items    []domain.CartItem
	selected map[int64]bool
}

// NewSelection starts with every ACTIVE item selected, which is the cart
// view's default.
func NewSelection(cart *domain.Cart) *Selection {
	s := &Selection{selected: make(map[int64]bool)}
	if cart == nil {
		return s
	}
	s.items = cart.Items
	for _, item := range cart.Items {
		if item.Status == domain.CartItemActive {
			s.selected[item.ID] = true
		}
	}
	return s
}

// Toggle flips membership for one cart item. Toggling a non-ACTIVE or
// unknown item is a no-op.
func (s *Selection) Toggle(cartItemID int64) {
	for _, item := range s.items {
		if item.ID != cartItemID {
			continue
		}
		if item.Status != domain.CartItemActive {
			return
		}
		if s.selected[cartItemID] {
			delete(s.selected, cartItemID)
		} else {
			s.selected[cartItemID] = true
		}
		return
	}
}

func (s *Selection) IsSelected(cartItemID int64) bool {
	return s.selected[cartItemID]
}

// SelectedIDs lists the selected cart items in cart order.
func (s *Selection) SelectedIDs() []int64 {
	ids := make([]int64, 0, len(s.selected))
	for _, item := range s.items {
		if s.selected[item.ID] {
			ids = append(ids, item.ID)
		}
	}
	return ids
}

// Total sums the effective price over the selected items. It is always
// recomputed from the current cart snapshot, never cached.
func (s *Selection) Total() int64 {
	var total int64
	for _, item := range s.items {
		if item.Status == domain.CartItemActive && s.selected[item.ID] {
			total += item.EffectivePrice()
		}
	}
	return total
}
