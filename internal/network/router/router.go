package router

import (
	"github.com/denmor86/ya-redemption/internal/network/handlers"
	"github.com/denmor86/ya-redemption/internal/network/middleware"
	"github.com/denmor86/ya-redemption/internal/services"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
)

type Router struct {
	TokenAuth   *jwtauth.JWTAuth
	Ledger      services.LedgerService
	Redemptions services.RedemptionService
	Status      services.StatusService
	Settlement  handlers.SettlementRunner
}

// NewTokenAuth - проверка токенов, выданных сервисом учётных записей (HS256)
func NewTokenAuth(secret string) *jwtauth.JWTAuth {
	return jwtauth.New("HS256", []byte(secret), nil)
}

func (router *Router) HandleRouter() chi.Router {
	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.LogHandle)
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(router.TokenAuth))
			r.Use(jwtauth.Authenticator(router.TokenAuth))
			r.Get("/balance", handlers.GetBalanceHandler(router.Ledger))
			r.Route("/redemptions", func(r chi.Router) {
				r.Post("/", handlers.CreateRedemptionHandler(router.Redemptions))
				r.Get("/", handlers.GetRedemptionsHandler(router.Redemptions))
				r.Get("/{id}", handlers.GetRedemptionStatusHandler(router.Status))
			})
			r.Post("/admin/settlements", handlers.RunSettlementHandler(router.Settlement))
		})
	})
	return r
}
