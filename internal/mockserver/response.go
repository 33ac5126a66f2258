package mockserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"auctionfront/internal/domain"
)

func respond(c *gin.Context, status int, v any) {
	c.JSON(status, gin.H{"data": v})
}

// respondErr maps a domain error onto an HTTP status and the {code, message}
// error body the real backend uses.
func respondErr(c *gin.Context, err error) {
	c.JSON(statusFor(err), gin.H{
		"code":    codeFor(err),
		"message": domain.UserMessage(err),
	})
}

func codeFor(err error) string {
	if code := domain.CodeFor(err); code != "" {
		return code
	}
	return "REQUEST_FAILED"
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrAuthRequired), errors.Is(err, domain.ErrAuthFailed):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrDuplicateCartItem):
		return http.StatusConflict
	case errors.Is(err, domain.ErrCannotBuyOwnItem):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrValidationFailed),
		errors.Is(err, domain.ErrBidTooLow),
		errors.Is(err, domain.ErrBuyNowNotEnabled),
		errors.Is(err, domain.ErrBuyNowPriceNotSet),
		errors.Is(err, domain.ErrAuctionNotActive),
		errors.Is(err, domain.ErrPaymentConfirmationFailed):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
