package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/MrJamesThe3rd/ledgerly/internal/http/bank"
	"github.com/MrJamesThe3rd/ledgerly/internal/http/category"
	"github.com/MrJamesThe3rd/ledgerly/internal/http/importfile"
	"github.com/MrJamesThe3rd/ledgerly/internal/http/rules"
	"github.com/MrJamesThe3rd/ledgerly/internal/http/transaction"
)

func New(
	transactionsV1 *transaction.Handler,
	importV1 *importfile.Handler,
	rulesV1 *rules.Handler,
	banksV1 *bank.Handler,
	categoriesV1 *category.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/transactions", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			transactionsV1.Routes(r)
		})

		r.Route("/import", importV1.Routes)

		r.Route("/rules", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			rulesV1.Routes(r)
		})

		r.Route("/banks", func(r chi.Router) {
			banksV1.Routes(r)
		})

		r.Route("/categories", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			categoriesV1.Routes(r)
		})
	})

	return router
}
