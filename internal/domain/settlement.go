package domain

import "time"

// Settlement aggregates completed-order proceeds owed to a seller.
// Invariant: TotalAmount == sum of Items[i].Amount.
type Settlement struct {
	ID          int64            `json:"id"`
	SellerID    int64            `json:"sellerId"`
	TotalAmount int64            `json:"totalAmount"`
	SettledAt   *time.Time       `json:"settledAt,omitempty"`
	Items       []SettlementItem `json:"items"`
	CreatedAt   time.Time        `json:"createdAt"`
}

type SettlementItem struct {
	ID      int64  `json:"id"`
	OrderID string `json:"orderId"`
	Amount  int64  `json:"amount"`
}

// SettlementPendingItem is a completed order awaiting settlement finalization.
type SettlementPendingItem struct {
	ID                  int64     `json:"id"`
	SettlementEventType string    `json:"settlementEventType"`
	RelTypeCode         string    `json:"relTypeCode"`
	RelID               int64     `json:"relId"`
	PayerName           string    `json:"payerName,omitempty"`
	Amount              int64     `json:"amount"`
	PaymentDate         time.Time `json:"paymentDate"`
}
