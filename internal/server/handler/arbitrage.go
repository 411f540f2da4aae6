package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/alanyoungcy/arbscan/internal/domain"
	"github.com/alanyoungcy/arbscan/internal/service"
)

// ArbHandler serves the arbitrage scan endpoint.
type ArbHandler struct {
	svc          *service.ArbitrageService
	defaultLimit int
	maxLimit     int
	production   bool
	logger       *slog.Logger
}

// NewArbHandler creates an ArbHandler. defaultLimit applies when the request
// carries no ?limit; maxLimit bounds the accepted values.
func NewArbHandler(svc *service.ArbitrageService, defaultLimit, maxLimit int, production bool, logger *slog.Logger) *ArbHandler {
	return &ArbHandler{
		svc:          svc,
		defaultLimit: defaultLimit,
		maxLimit:     maxLimit,
		production:   production,
		logger:       logger,
	}
}

type arbitrageResponse struct {
	Success        bool                 `json:"success"`
	Opportunities  []domain.Opportunity `json:"opportunities"`
	Timestamp      time.Time            `json:"timestamp"`
	TotalPairs     int                  `json:"totalPairs"`
	ProcessedPairs int                  `json:"processedPairs"`
}

// GetArbitrage runs (or serves from cache) a scan over the first limit pairs
// of the universe.
// GET /api/arbitrage?limit=N
func (h *ArbHandler) GetArbitrage(w http.ResponseWriter, r *http.Request) {
	limit, err := parseLimit(r, h.defaultLimit, h.maxLimit)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.svc.ComputeArbitrage(r.Context(), limit)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "arbitrage scan failed",
			slog.Int("limit", limit),
			slog.String("error", err.Error()),
		)
		writeError(w, http.StatusInternalServerError, errorMessage(h.production, err))
		return
	}

	opps := result.Opportunities
	if opps == nil {
		opps = []domain.Opportunity{}
	}

	writeJSON(w, http.StatusOK, arbitrageResponse{
		Success:        true,
		Opportunities:  opps,
		Timestamp:      result.Timestamp,
		TotalPairs:     result.TotalPairs,
		ProcessedPairs: result.ProcessedPairs,
	})
}
