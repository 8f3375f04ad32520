package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	accountHandler "github.com/adityarp/duit/internal/http/account"
	analyticsHandler "github.com/adityarp/duit/internal/http/analytics"
	budgetHandler "github.com/adityarp/duit/internal/http/budget"
	categoryHandler "github.com/adityarp/duit/internal/http/category"
	profileHandler "github.com/adityarp/duit/internal/http/profile"
	transactionHandler "github.com/adityarp/duit/internal/http/transaction"

	"github.com/adityarp/duit/internal/auth"
)

func New(
	verifier *auth.Verifier,
	allowedOrigins []string,
	accountsV1 *accountHandler.Handler,
	categoriesV1 *categoryHandler.Handler,
	transactionsV1 *transactionHandler.Handler,
	budgetsV1 *budgetHandler.Handler,
	analyticsV1 *analyticsHandler.Handler,
	profileV1 *profileHandler.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(RequireAuth(verifier))

		r.Route("/accounts", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			accountsV1.Routes(r)
		})

		r.Route("/categories", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			categoriesV1.Routes(r)
		})

		r.Route("/transactions", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			transactionsV1.Routes(r)
		})

		r.Route("/budgets", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			budgetsV1.Routes(r)
		})

		r.Route("/analytics", analyticsV1.Routes)

		r.Route("/profile", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			profileV1.Routes(r)
		})
	})

	return router
}
