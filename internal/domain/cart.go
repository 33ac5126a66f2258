package domain

import "time"

// CartItemStatus reflects whether the referenced auction is still purchasable.
type CartItemStatus string

const (
	CartItemActive       CartItemStatus = "ACTIVE"
	CartItemSold         CartItemStatus = "SOLD"
	CartItemExpired      CartItemStatus = "EXPIRED"
	CartItemAuctionEnded CartItemStatus = "AUCTION_ENDED"
)

type Cart struct {
	ID              int64      `json:"id"`
	UserID          int64      `json:"userId"`
	TotalItemCount  int        `json:"totalItemCount"`
	ActiveItemCount int        `json:"activeItemCount"`
	Items           []CartItem `json:"items"`
}

// CartItem snapshots the buy-now price at add time next to the live price so
// a price-changed flag can be derived by comparison.
type CartItem struct {
	ID                   int64          `json:"id"`
	AuctionID            int64          `json:"auctionId"`
	AuctionTitle         string         `json:"auctionTitle,omitempty"`
	ThumbnailURL         string         `json:"thumbnailUrl,omitempty"`
	Status               CartItemStatus `json:"status"`
	BuyNowPriceWhenAdded int64          `json:"buyNowPriceWhenAdded"`
	CurrentBuyNowPrice   *int64         `json:"currentBuyNowPrice,omitempty"`
	AddedAt              time.Time      `json:"addedAt"`
}

// EffectivePrice is the live buy-now price when known, else the add-time snapshot.
func (i CartItem) EffectivePrice() int64 {
	if i.CurrentBuyNowPrice != nil && *i.CurrentBuyNowPrice > 0 {
		return *i.CurrentBuyNowPrice
	}
	return i.BuyNowPriceWhenAdded
}

// PriceChanged reports whether the live buy-now price differs from the snapshot.
func (i CartItem) PriceChanged() bool {
	return i.CurrentBuyNowPrice != nil && *i.CurrentBuyNowPrice != i.BuyNowPriceWhenAdded
}
