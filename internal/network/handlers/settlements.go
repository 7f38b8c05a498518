package handlers

import (
	"context"
	"net/http"

	"github.com/denmor86/ya-redemption/internal/helpers"
	"github.com/denmor86/ya-redemption/internal/logger"
	"github.com/denmor86/ya-redemption/internal/models"
	"go.uber.org/zap"
)

// SettlementRunner - ручной запуск прохода выплат
type SettlementRunner interface {
	RunSettlement(ctx context.Context) (models.SettlementSummary, error)
}

// RunSettlementHandler - внеочередной проход выплат, только для оператора
func RunSettlementHandler(runner SettlementRunner) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !helpers.IsOperator(r.Context()) {
			http.Error(w, "Forbidden", http.StatusForbidden)
			return
		}
		summary, err := runner.RunSettlement(r.Context())
		if err != nil {
			logger.Error("Manual settlement failed:", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, summary)
	})
}
