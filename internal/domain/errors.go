package domain

import "errors"

var (
	// ErrAuthRequired is the client-side gate: no request was made.
	ErrAuthRequired = errors.New("auth required")
	// ErrAuthFailed indicates invalid credentials on login.
	ErrAuthFailed = errors.New("auth failed")
	// ErrValidationFailed indicates the server rejected request fields.
	ErrValidationFailed = errors.New("validation failed")
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")

	ErrBuyNowNotEnabled  = errors.New("buy-now not enabled")
	ErrBuyNowPriceNotSet = errors.New("buy-now price not set")
	ErrAuctionNotActive  = errors.New("auction not active")
	ErrCannotBuyOwnItem  = errors.New("cannot buy own item")
	ErrBidTooLow         = errors.New("bid too low")
	ErrDuplicateCartItem = errors.New("item already in cart")

	// ErrPaymentConfirmationFailed means the gateway may have accepted the
	// payment but the backend did not confirm it. Surfaced distinctly from
	// payment-request failures; the paymentKey must not be discarded.
	ErrPaymentConfirmationFailed = errors.New("payment confirmation failed")
	// ErrMalformedCallback means a gateway redirect arrived without the
	// required query parameters; confirmation must not be attempted.
	ErrMalformedCallback = errors.New("malformed payment callback")

	// ErrRequestFailed is the catch-all for network and server errors.
	ErrRequestFailed = errors.New("request failed")
)

// Error codes carried on the wire by the backend (and the mock server).
const (
	CodeAuthRequired      = "AUTH_REQUIRED"
	CodeAuthFailed        = "AUTH_FAILED"
	CodeValidationFailed  = "VALIDATION_FAILED"
	CodeNotFound          = "NOT_FOUND"
	CodeBuyNowNotEnabled  = "BUY_NOW_NOT_ENABLED"
	CodeBuyNowPriceNotSet = "BUY_NOW_PRICE_NOT_SET"
	CodeAuctionNotActive  = "AUCTION_NOT_ACTIVE"
	CodeCannotBuyOwnItem  = "CANNOT_BUY_OWN_ITEM"
	CodeBidTooLow         = "BID_TOO_LOW"
	CodeDuplicateCartItem = "DUPLICATE_CART_ITEM"
	CodePaymentConfirm    = "PAYMENT_CONFIRMATION_FAILED"
)

var kindByCode = map[string]error{
	CodeAuthRequired:      ErrAuthRequired,
	CodeAuthFailed:        ErrAuthFailed,
	CodeValidationFailed:  ErrValidationFailed,
	CodeNotFound:          ErrNotFound,
	CodeBuyNowNotEnabled:  ErrBuyNowNotEnabled,
	CodeBuyNowPriceNotSet: ErrBuyNowPriceNotSet,
	CodeAuctionNotActive:  ErrAuctionNotActive,
	CodeCannotBuyOwnItem:  ErrCannotBuyOwnItem,
	CodeBidTooLow:         ErrBidTooLow,
	CodeDuplicateCartItem: ErrDuplicateCartItem,
	CodePaymentConfirm:    ErrPaymentConfirmationFailed,
}

// CodedError pairs a server-provided error code and verbatim message with the
// kind sentinel the code maps to. Unrecognized codes map to ErrRequestFailed
// so callers can always errors.Is against a sentinel.
type CodedError struct {
	Kind    error
	Code    string
	Message string
}

func (e *CodedError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Kind.Error()
}

func (e *CodedError) Unwrap() error { return e.Kind }

// NewCodedError builds a CodedError from a wire code and message.
func NewCodedError(code, message string) *CodedError {
	kind, ok := kindByCode[code]
	if !ok {
		kind = ErrRequestFailed
	}
	return &CodedError{Kind: kind, Code: code, Message: message}
}

// CodeFor returns the wire code for a kind sentinel, or "" if the error is
// not part of the taxonomy.
func CodeFor(err error) string {
	for code, kind := range kindByCode {
		if errors.Is(err, kind) {
			return code
		}
	}
	return ""
}

var userMessages = map[error]string{
	ErrAuthRequired:              "Sign in to continue.",
	ErrAuthFailed:                "Email or password is incorrect.",
	ErrValidationFailed:          "Some fields are invalid. Check the form and try again.",
	ErrNotFound:                  "The requested item could not be found.",
	ErrBuyNowNotEnabled:          "This auction does not support instant purchase.",
	ErrBuyNowPriceNotSet:         "No instant purchase price has been set for this auction.",
	ErrAuctionNotActive:          "This auction is not currently active.",
	ErrCannotBuyOwnItem:          "You cannot purchase your own item.",
	ErrBidTooLow:                 "Your bid must be higher than the current price.",
	ErrDuplicateCartItem:         "This item is already in your cart.",
	ErrPaymentConfirmationFailed: "Payment was accepted but could not be confirmed. Check your order status before retrying.",
	ErrMalformedCallback:         "The payment result could not be read.",
}

// UserMessage maps a domain error to user-facing text. Unrecognized kinds
// fall back to the server-provided message when present, else a generic one.
func UserMessage(err error) string {
	for kind, msg := range userMessages {
		if errors.Is(err, kind) {
			return msg
		}
	}
	var coded *CodedError
	if errors.As(err, &coded) && coded.Message != "" {
		return coded.Message
	}
	return "Something went wrong. Please try again."
}
