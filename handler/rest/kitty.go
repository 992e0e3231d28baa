package rest

import (
	"net/http"

	"kitties/core"
	"kitties/handler/render"
	"kitties/handler/views"

	"github.com/go-chi/chi"
	"github.com/spf13/cast"
)

func kittyHandler(kittyStr core.IKittyStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		kittyID := chi.URLParam(r, "kittyID")

		kitty, err := kittyStr.Find(r.Context(), kittyID)
		if err != nil {
			if err == core.ErrKittyNotFound {
				render.NotFoundRequest(w, err)
				return
			}
			render.BadRequest(w, err)
			return
		}

		render.JSON(w, views.NewKitty(kitty))
	}
}

func ownerKittiesHandler(kittyStr core.IKittyStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		account := chi.URLParam(r, "account")

		ids, err := kittyStr.OwnerList(r.Context(), account)
		if err != nil {
			render.BadRequest(w, err)
			return
		}

		limit := cast.ToInt(r.URL.Query().Get("limit"))
		if limit > 0 && limit < len(ids) {
			ids = ids[:limit]
		}

		kittyViews := make([]*views.Kitty, 0, len(ids))
		for _, id := range ids {
			kitty, err := kittyStr.Find(r.Context(), id)
			if err != nil {
				render.BadRequest(w, err)
				return
			}
			kittyViews = append(kittyViews, views.NewKitty(kitty))
		}

		render.JSON(w, kittyViews)
	}
}

func balanceHandler(balanceStr core.IBalanceStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		account := chi.URLParam(r, "account")

		balance, err := balanceStr.Find(r.Context(), account)
		if err != nil {
			render.BadRequest(w, err)
			return
		}

		render.JSON(w, views.Balance{
			Account: balance.Account,
			Amount:  balance.Amount.String(),
		})
	}
}

func statsHandler(kittyStr core.IKittyStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		total, err := kittyStr.Count(r.Context())
		if err != nil {
			render.BadRequest(w, err)
			return
		}

		render.JSON(w, views.Stats{TotalKitties: total})
	}
}
