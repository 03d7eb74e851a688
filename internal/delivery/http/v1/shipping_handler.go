package v1

import (
	"encoding/json"
	"net/http"
	"strconv"

	"pharmaplus-backend/internal/domain"
	"pharmaplus-backend/internal/usecase"
	"pharmaplus-backend/pkg/utils"
)

type ShippingHandler struct {
	shippingUC *usecase.ShippingUsecase
}

func NewShippingHandler(uc *usecase.ShippingUsecase) *ShippingHandler {
	return &ShippingHandler{shippingUC: uc}
}

// GET /api/v1/shipping/zones
// Exposes the normalized snapshot the resolver works from. The
// storefront uses it to show coverage; it is not required for checkout.
func (h *ShippingHandler) GetZones(w http.ResponseWriter, r *http.Request) {
	zones := h.shippingUC.GetZones(r.Context())
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"zones": zones,
	})
}

// GET /api/v1/shipping/quote?department=CO-ANT&subtotal=129900
// Returns the shipping cost and order total for a department. The two
// failure states are part of the payload, not HTTP errors: the
// storefront renders a prompt for no_location and an out-of-coverage
// notice for no_coverage.
func (h *ShippingHandler) GetQuote(w http.ResponseWriter, r *http.Request) {
	department := r.URL.Query().Get("department")
	if department != "" && !domain.IsValidDepartment(department) {
		utils.WriteError(w, http.StatusBadRequest, "unknown department code")
		return
	}

	subtotal, err := strconv.ParseInt(r.URL.Query().Get("subtotal"), 10, 64)
	if err != nil || subtotal < 0 {
		utils.WriteError(w, http.StatusBadRequest, "subtotal must be a non-negative integer")
		return
	}

	quote := h.shippingUC.QuoteOrder(r.Context(), department, subtotal)
	utils.WriteJSON(w, http.StatusOK, quote)
}
