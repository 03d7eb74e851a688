package v1

import (
	"encoding/json"
	"net/http"
	"time"

	"pharmaplus-backend/internal/domain"
	"pharmaplus-backend/pkg/cache"
)

type ConfigHandler struct {
	cache cache.CacheService
}

func NewConfigHandler(cache cache.CacheService) *ConfigHandler {
	return &ConfigHandler{cache: cache}
}

// GET /api/v1/config/enums
// Static storefront vocabulary: the department selector and the
// payment method options. The department list is compiled in, so the
// cache only saves the JSON encoding.
func (h *ConfigHandler) GetEnums(w http.ResponseWriter, r *http.Request) {
	cacheKey := "system:config:enums"

	if val, found := h.cache.Get(cacheKey); found {
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Cache-Control", "public, max-age=3600")
		json.NewEncoder(w).Encode(val)
		return
	}

	response := map[string]interface{}{
		"departments":    domain.Departments,
		"paymentMethods": domain.PaymentMethods,
		"currency":       domain.Currency,
	}

	h.cache.Set(cacheKey, response, 1*time.Hour)

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	json.NewEncoder(w).Encode(response)
}
