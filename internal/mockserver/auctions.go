package mockserver

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"auctionfront/internal/api"
	"auctionfront/internal/domain"
)

func (h *handlers) searchAuctions(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	size, _ := strconv.Atoi(c.DefaultQuery("size", "20"))

	result := h.backend.SearchAuctions(api.SearchFilter{
		Page:     page - 1,
		Size:     size,
		Keyword:  c.Query("keyword"),
		Category: domain.AuctionCategory(c.Query("category")),
		Status:   domain.AuctionStatus(c.Query("status")),
		Sort:     c.Query("sort"),
	})
	respond(c, http.StatusOK, gin.H{
		"content":    result.Items,
		"page":       result.Page + 1,
		"size":       result.Size,
		"totalPages": result.TotalPages,
	})
}

func (h *handlers) getAuction(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondErr(c, domain.ErrNotFound)
		return
	}
	item, err := h.backend.Auction(id)
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, item)
}

// createAuction accepts the multipart form the real backend uses: a
// "request" field holding the listing JSON plus any number of "images" files.
func (h *handlers) createAuction(c *gin.Context) {
	raw := c.PostForm("request")
	if raw == "" {
		respondErr(c, domain.ErrValidationFailed)
		return
	}
	var in api.CreateAuctionInput
	if err := json.Unmarshal([]byte(raw), &in); err != nil {
		respondErr(c, domain.ErrValidationFailed)
		return
	}

	var images []api.ImageUpload
	if form, err := c.MultipartForm(); err == nil {
		for _, fh := range form.File["images"] {
			f, err := fh.Open()
			if err != nil {
				respondErr(c, domain.ErrValidationFailed)
				return
			}
			data, err := io.ReadAll(f)
			f.Close()
			if err != nil {
				respondErr(c, domain.ErrValidationFailed)
				return
			}
			images = append(images, api.ImageUpload{Filename: fh.Filename, Data: data})
		}
	}

	item, err := h.backend.CreateAuction(h.userID(c), in, images)
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusCreated, item)
}

type placeBidRequest struct {
	Amount int64 `json:"amount"`
}

func (h *handlers) placeBid(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondErr(c, domain.ErrNotFound)
		return
	}
	var req placeBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErr(c, domain.ErrValidationFailed)
		return
	}
	bid, err := h.backend.PlaceBid(h.userID(c), id, req.Amount)
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusCreated, bid)
}

func (h *handlers) auctionBids(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondErr(c, domain.ErrNotFound)
		return
	}
	bids, err := h.backend.AuctionBids(id)
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, bids)
}

func (h *handlers) myBids(c *gin.Context) {
	respond(c, http.StatusOK, h.backend.UserBids(h.userID(c)))
}
