package handler

import (
	"log/slog"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/alanyoungcy/arbscan/internal/domain"
	"github.com/alanyoungcy/arbscan/internal/service"
)

// symbolPattern matches the URL form of a trading pair, "BASE-QUOTE",
// with a bare base symbol also accepted.
var symbolPattern = regexp.MustCompile(`^[A-Za-z0-9]+(-[A-Za-z0-9]+)?$`)

// PriceHandler serves the price aggregation endpoints.
type PriceHandler struct {
	arb          *service.ArbitrageService
	prices       *service.PriceService
	defaultLimit int
	maxLimit     int
	production   bool
	logger       *slog.Logger
}

// NewPriceHandler creates a PriceHandler. The limit parameters bound the
// snapshot endpoint the same way ArbHandler bounds scans.
func NewPriceHandler(arb *service.ArbitrageService, prices *service.PriceService, defaultLimit, maxLimit int, production bool, logger *slog.Logger) *PriceHandler {
	return &PriceHandler{
		arb:          arb,
		prices:       prices,
		defaultLimit: defaultLimit,
		maxLimit:     maxLimit,
		production:   production,
		logger:       logger,
	}
}

type pricesResponse struct {
	Success        bool                       `json:"success"`
	Prices         map[string]domain.PriceMap `json:"prices"`
	Timestamp      time.Time                  `json:"timestamp"`
	TotalPairs     int                        `json:"totalPairs"`
	ProcessedPairs int                        `json:"processedPairs"`
}

// ListPrices returns an aggregated snapshot over the first limit pairs of
// the universe.
// GET /api/prices?limit=N
func (h *PriceHandler) ListPrices(w http.ResponseWriter, r *http.Request) {
	limit, err := parseLimit(r, h.defaultLimit, h.maxLimit)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	snap, err := h.arb.CollectPrices(r.Context(), limit)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "price snapshot failed",
			slog.Int("limit", limit),
			slog.String("error", err.Error()),
		)
		writeError(w, http.StatusInternalServerError, errorMessage(h.production, err))
		return
	}

	writeJSON(w, http.StatusOK, pricesResponse{
		Success:        true,
		Prices:         snap.Prices,
		Timestamp:      snap.Timestamp,
		TotalPairs:     snap.TotalPairs,
		ProcessedPairs: snap.ProcessedPairs,
	})
}

// GetPrice fetches fresh prices for one pair from every exchange, bypassing
// the cached batch path. The symbol uses the URL-safe "BASE-QUOTE" form.
// GET /api/prices/{symbol}
func (h *PriceHandler) GetPrice(w http.ResponseWriter, r *http.Request) {
	raw := r.PathValue("symbol")
	if len(raw) < 2 || len(raw) > 20 || !symbolPattern.MatchString(raw) {
		writeError(w, http.StatusBadRequest, "invalid symbol format")
		return
	}

	symbol := strings.ToUpper(strings.Replace(raw, "-", "/", 1))
	pair, err := domain.ParsePair(symbol)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid symbol format")
		return
	}

	prices, err := h.prices.GetAllPrices(r.Context(), pair, false)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "price fetch failed",
			slog.String("symbol", symbol),
			slog.String("error", err.Error()),
		)
		writeError(w, http.StatusInternalServerError, errorMessage(h.production, err))
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":   true,
		"symbol":    symbol,
		"prices":    prices,
		"timestamp": time.Now().UTC(),
	})
}
