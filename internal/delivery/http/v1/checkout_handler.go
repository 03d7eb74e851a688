package v1

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"pharmaplus-backend/internal/usecase"
	"pharmaplus-backend/pkg/utils"
)

type CheckoutHandler struct {
	checkoutUC *usecase.CheckoutUsecase
}

func NewCheckoutHandler(uc *usecase.CheckoutUsecase) *CheckoutHandler {
	return &CheckoutHandler{checkoutUC: uc}
}

// POST /api/v1/checkout
// Places the order upstream and returns it with the gateway payment
// link. Validation states map to 422 with a machine-readable code so
// the storefront can render the right prompt.
func (h *CheckoutHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	var req usecase.CheckoutReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request")
		return
	}

	order, err := h.checkoutUC.Checkout(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrNoLocationSelected):
			writeCheckoutBlocked(w, "no_location", err.Error())
		case errors.Is(err, usecase.ErrNoCoverage):
			writeCheckoutBlocked(w, "no_coverage", err.Error())
		case errors.Is(err, usecase.ErrCartEmpty), errors.Is(err, usecase.ErrInvalidDepartment):
			utils.WriteError(w, http.StatusBadRequest, err.Error())
		default:
			errMsg := err.Error()
			statusCode := http.StatusBadGateway
			if strings.Contains(errMsg, "out of stock") || strings.Contains(errMsg, "not found") ||
				strings.Contains(errMsg, "quantity") || strings.Contains(errMsg, "prescription") {
				statusCode = http.StatusBadRequest
			}
			utils.WriteError(w, statusCode, errMsg)
		}
		return
	}

	utils.WriteJSON(w, http.StatusCreated, order)
}

func writeCheckoutBlocked(w http.ResponseWriter, code, message string) {
	utils.WriteJSON(w, http.StatusUnprocessableEntity, map[string]string{
		"code":  code,
		"error": message,
	})
}
