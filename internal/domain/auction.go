package domain

import "time"

// AuctionStatus mirrors the backend's auction lifecycle states.
type AuctionStatus string

const (
	AuctionScheduled  AuctionStatus = "SCHEDULED"
	AuctionActive     AuctionStatus = "ACTIVE"
	AuctionEnded      AuctionStatus = "ENDED"
	AuctionSold       AuctionStatus = "SOLD"
	AuctionSoldBuyNow AuctionStatus = "SOLD_BY_BUY_NOW"
	AuctionCancelled  AuctionStatus = "CANCELLED"
)

type AuctionCategory string

const (
	CategoryElectronics  AuctionCategory = "ELECTRONICS"
	CategoryClothing     AuctionCategory = "CLOTHING"
	CategoryPottery      AuctionCategory = "POTTERY"
	CategoryAppliances   AuctionCategory = "APPLIANCES"
	CategoryBedding      AuctionCategory = "BEDDING"
	CategoryBooks        AuctionCategory = "BOOKS"
	CategoryCollectibles AuctionCategory = "COLLECTIBLES"
	CategoryEtc          AuctionCategory = "ETC"
)

// Categories lists every known category in display order.
func Categories() []AuctionCategory {
	return []AuctionCategory{
		CategoryElectronics,
		CategoryClothing,
		CategoryPottery,
		CategoryAppliances,
		CategoryBedding,
		CategoryBooks,
		CategoryCollectibles,
		CategoryEtc,
	}
}

// AuctionItem is a read-only projection of a backend auction.
// currentPrice never decreases while the auction is ACTIVE; endAt > startAt.
type AuctionItem struct {
	AuctionItemID int64           `json:"auctionItemId"`
	Title         string          `json:"title"`
	Description   string          `json:"description"`
	Category      AuctionCategory `json:"category"`
	Status        AuctionStatus   `json:"status"`
	StartPrice    int64           `json:"startPrice"`
	CurrentPrice  int64           `json:"currentPrice"`
	BuyNowPrice   *int64          `json:"buyNowPrice,omitempty"`
	SellerID      int64           `json:"sellerId,omitempty"`
	SellerName    string          `json:"sellerName,omitempty"`
	StartAt       time.Time       `json:"startAt"`
	EndAt         time.Time       `json:"endAt"`
	ImageURLs     []string        `json:"imageUrls"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// BuyNowEnabled reports whether the item has a configured buy-now price.
func (a AuctionItem) BuyNowEnabled() bool {
	return a.BuyNowPrice != nil && *a.BuyNowPrice > 0
}

type Bid struct {
	ID           int64     `json:"id"`
	AuctionID    int64     `json:"auctionId"`
	AuctionTitle string    `json:"auctionTitle,omitempty"`
	BidderID     int64     `json:"bidderId"`
	BidderName   string    `json:"bidderNickname,omitempty"`
	BidAmount    int64     `json:"bidAmount"`
	IsWinning    bool      `json:"isWinning"`
	CreatedAt    time.Time `json:"createdAt"`
}
