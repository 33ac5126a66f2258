package mockserver

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"auctionfront/internal/api"
	"auctionfront/internal/api/mockapi"
	"auctionfront/internal/domain"
)

type handlers struct {
	backend *mockapi.Backend
	logger  *log.Logger
}

const ctxUserID = "userID"

// requireAuth resolves the bearer token and rejects the request before any
// handler runs when it is missing or unknown.
func (h *handlers) requireAuth(c *gin.Context) {
	header := c.GetHeader("Authorization")
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || token == "" {
		respondErr(c, domain.ErrAuthRequired)
		c.Abort()
		return
	}
	userID, err := h.backend.Authenticate(token)
	if err != nil {
		respondErr(c, domain.ErrAuthRequired)
		c.Abort()
		return
	}
	c.Set(ctxUserID, userID)
	c.Next()
}

func (h *handlers) userID(c *gin.Context) int64 {
	return c.GetInt64(ctxUserID)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *handlers) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErr(c, domain.ErrValidationFailed)
		return
	}
	token, user, err := h.backend.Login(req.Email, req.Password)
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, gin.H{"accessToken": token, "user": user})
}

func (h *handlers) signup(c *gin.Context) {
	var in api.SignupInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondErr(c, domain.ErrValidationFailed)
		return
	}
	user, err := h.backend.Signup(in)
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusCreated, user)
}

func (h *handlers) getUser(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondErr(c, domain.ErrNotFound)
		return
	}
	user, err := h.backend.User(id)
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, user)
}
