package rest

import (
	"errors"
	"net/http"

	"kitties/core"
	"kitties/handler/render"

	"github.com/go-chi/chi"
)

// Handle handle rest api request
func Handle(kittyStore core.IKittyStore, balanceStore core.IBalanceStore) http.Handler {
	router := chi.NewRouter()

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		render.NotFoundRequest(w, errors.New("not found"))
	})

	router.Get("/kitties/{kittyID}", kittyHandler(kittyStore))
	router.Get("/accounts/{account}/kitties", ownerKittiesHandler(kittyStore))
	router.Get("/accounts/{account}/balance", balanceHandler(balanceStore))
	router.Get("/stats", statsHandler(kittyStore))

	return router
}
