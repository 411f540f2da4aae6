package handler

import (
	"net/http"

	"github.com/alanyoungcy/arbscan/internal/exchange"
	"github.com/alanyoungcy/arbscan/internal/service"
)

// MetaHandler serves the static catalogue endpoints: the pair universe and
// the supported exchanges.
type MetaHandler struct {
	arb      *service.ArbitrageService
	registry *exchange.Registry
}

func NewMetaHandler(arb *service.ArbitrageService, registry *exchange.Registry) *MetaHandler {
	return &MetaHandler{arb: arb, registry: registry}
}

// ListPairs returns the configured trading-pair universe.
// GET /api/pairs
func (h *MetaHandler) ListPairs(w http.ResponseWriter, r *http.Request) {
	pairs := h.arb.Pairs()
	symbols := make([]string, len(pairs))
	for i, p := range pairs {
		symbols[i] = p.String()
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"pairs":   symbols,
		"total":   len(symbols),
	})
}

// ListExchanges returns the registered exchanges with their display names.
// GET /api/exchanges
func (h *MetaHandler) ListExchanges(w http.ResponseWriter, r *http.Request) {
	infos := h.registry.List()
	writeJSON(w, http.StatusOK, map[string]any{
		"success":   true,
		"exchanges": infos,
		"total":     len(infos),
	})
}
