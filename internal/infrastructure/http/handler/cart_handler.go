package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/mrops-br/storefront-api/internal/app/dto"
	"github.com/mrops-br/storefront-api/internal/app/service"
	"github.com/mrops-br/storefront-api/internal/infrastructure/http/middleware"
	"github.com/mrops-br/storefront-api/internal/infrastructure/http/response"
)

var errMissingProductID = errors.New("product_id is required")

// CartHandler handles HTTP requests for the caller's cart. All routes sit
// behind the auth middleware; the cart owner is the token subject.
type CartHandler struct {
	service *service.CartService
	logger  *slog.Logger
}

// NewCartHandler creates a new cart handler
func NewCartHandler(service *service.CartService, logger *slog.Logger) *CartHandler {
	return &CartHandler{
		service: service,
		logger:  logger,
	}
}

// GetCart handles GET /cart
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	cart, err := h.service.GetCart(r.Context(), middleware.UserID(r.Context()))
	h.respond(w, r, cart, err)
}

// AddItem handles POST /cart/items
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req dto.AddToCartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadBody(w, r, h.logger, err)
		return
	}
	if strings.TrimSpace(req.ProductID) == "" {
		response.Error(w, http.StatusBadRequest, errMissingProductID)
		return
	}

	cart, err := h.service.AddToCart(r.Context(), middleware.UserID(r.Context()), req.ProductID)
	h.respond(w, r, cart, err)
}

// RemoveItem handles DELETE /cart/items/{id}
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	cart, err := h.service.RemoveFromCart(r.Context(), middleware.UserID(r.Context()), chi.URLParam(r, "id"))
	h.respond(w, r, cart, err)
}

// IncreaseItem handles POST /cart/items/{id}/increase
func (h *CartHandler) IncreaseItem(w http.ResponseWriter, r *http.Request) {
	cart, err := h.service.IncreaseQuantity(r.Context(), middleware.UserID(r.Context()), chi.URLParam(r, "id"))
	h.respond(w, r, cart, err)
}

// DecreaseItem handles POST /cart/items/{id}/decrease
func (h *CartHandler) DecreaseItem(w http.ResponseWriter, r *http.Request) {
	cart, err := h.service.DecreaseQuantity(r.Context(), middleware.UserID(r.Context()), chi.URLParam(r, "id"))
	h.respond(w, r, cart, err)
}

// ClearCart handles DELETE /cart
func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	cart, err := h.service.ClearCart(r.Context(), middleware.UserID(r.Context()))
	h.respond(w, r, cart, err)
}

func (h *CartHandler) respond(w http.ResponseWriter, r *http.Request, cart *dto.CartResponse, err error) {
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	response.JSON(w, http.StatusOK, cart)
}
