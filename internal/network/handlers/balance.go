package handlers

import (
	"errors"
	"net/http"

	"github.com/denmor86/ya-redemption/internal/helpers"
	"github.com/denmor86/ya-redemption/internal/logger"
	"github.com/denmor86/ya-redemption/internal/models"
	"github.com/denmor86/ya-redemption/internal/services"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// GetBalanceHandler - баланс баллов держателя
func GetBalanceHandler(l services.LedgerService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		earnerID, err := helpers.GetEarnerID(r.Context())
		if err != nil {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		earner, err := l.GetBalance(r.Context(), earnerID)
		if err != nil {
			if errors.Is(err, services.ErrEarnerNotFound) {
				http.Error(w, "Earner not found", http.StatusNotFound)
				return
			}
			logger.Error("Failed to get earner balance:", zap.Error(err))
			http.Error(w, "Server Error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, models.BalanceResponse{
			Total:     earner.TotalPoints,
			Redeemed:  earner.RedeemedPoints,
			Available: earner.Available(),
		})
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error("Failed to encode JSON response:", zap.Error(err))
	}
}
