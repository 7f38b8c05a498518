package handlers

import (
	"errors"
	"net/http"

	"github.com/denmor86/ya-redemption/internal/helpers"
	"github.com/denmor86/ya-redemption/internal/logger"
	"github.com/denmor86/ya-redemption/internal/models"
	"github.com/denmor86/ya-redemption/internal/services"
	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// CreateRedemptionHandler - запрос на вывод баллов
func CreateRedemptionHandler(s services.RedemptionService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		earnerID, err := helpers.GetEarnerID(r.Context())
		if err != nil {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		var req models.RedemptionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Warn("Invalid request format:", zap.Error(err))
			http.Error(w, "Invalid request format", http.StatusBadRequest)
			return
		}

		redemption, err := s.CreateRedemption(r.Context(), earnerID, req)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInsufficientPoints):
				http.Error(w, "Insufficient points", http.StatusPaymentRequired)
			case errors.Is(err, services.ErrInvalidMethodForDestination):
				http.Error(w, "Invalid method for destination", http.StatusUnprocessableEntity)
			case errors.Is(err, services.ErrBelowMinimumPoints):
				http.Error(w, "Points below minimum redemption", http.StatusUnprocessableEntity)
			case errors.Is(err, services.ErrTooManyRequests):
				http.Error(w, "Too many requests", http.StatusTooManyRequests)
			case errors.Is(err, services.ErrEarnerNotFound):
				http.Error(w, "Earner not found", http.StatusNotFound)
			default:
				logger.Error("Failed to create redemption:", zap.Error(err))
				http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusCreated, models.NewRedemptionResponse(*redemption))
	})
}

// GetRedemptionsHandler - список заявок держателя
func GetRedemptionsHandler(s services.RedemptionService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		earnerID, err := helpers.GetEarnerID(r.Context())
		if err != nil {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		redemptions, err := s.GetRedemptions(r.Context(), earnerID)
		if err != nil {
			logger.Error("Failed to get redemptions:", zap.Error(err))
			http.Error(w, "Server Error", http.StatusInternalServerError)
			return
		}
		if len(redemptions) == 0 {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		response := make([]models.RedemptionResponse, 0, len(redemptions))
		for _, redemption := range redemptions {
			response = append(response, models.NewRedemptionResponse(redemption))
		}
		writeJSON(w, http.StatusOK, response)
	})
}

// GetRedemptionStatusHandler - статус заявки со сверкой со шлюзом выплат
func GetRedemptionStatusHandler(s services.StatusService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		earnerID, err := helpers.GetEarnerID(r.Context())
		if err != nil {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		redemption, err := s.GetRedemptionStatus(r.Context(), earnerID, chi.URLParam(r, "id"))
		if err != nil {
			switch {
			case errors.Is(err, services.ErrRedemptionNotFound):
				http.Error(w, "Redemption not found", http.StatusNotFound)
			case errors.Is(err, services.ErrStatusUnavailable):
				w.Header().Set("Retry-After", "30")
				http.Error(w, "Payout status temporarily unavailable", http.StatusServiceUnavailable)
			default:
				logger.Error("Failed to get redemption status:", zap.Error(err))
				http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusOK, models.NewRedemptionResponse(*redemption))
	})
}
