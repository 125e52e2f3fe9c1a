package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (s Server) RegisterRoutes(r chi.Router) { //nolint:funlen
	r.Route("/", func(r chi.Router) {
		r.Route("/v1", func(r chi.Router) {
			r.Route("/deals", func(r chi.Router) {
				r.Get("/", handler(s.getV1Deals))
				r.Post("/", handler(s.postV1Deals))
				r.Get("/{id}", handler(s.getV1Deal))
				r.Put("/{id}", handler(s.putV1Deal))
				r.Delete("/{id}", handler(s.deleteV1Deal))
				r.Post("/{id}/rescore", handler(s.postV1DealRescore))
				r.Get("/{id}/matches", handler(s.getV1DealMatches))
				r.Post("/{id}/matches", handler(s.postV1DealMatches))
				r.Get("/{id}/fit/{buyer_id}", handler(s.getV1DealFit))
			})

			r.Route("/buyers", func(r chi.Router) {
				r.Get("/", handler(s.getV1Buyers))
				r.Post("/", handler(s.postV1Buyers))
				r.Get("/{id}", handler(s.getV1Buyer))
				r.Put("/{id}", handler(s.putV1Buyer))
				r.Delete("/{id}", handler(s.deleteV1Buyer))
				r.Get("/{id}/matches", handler(s.getV1BuyerMatches))
				r.Get("/{id}/preferences", handler(s.getV1BuyerPreferences))
				r.Post("/{id}/unsubscribe", handler(s.postV1BuyerUnsubscribe))
			})

			r.Route("/matches", func(r chi.Router) {
				r.Get("/", handler(s.getV1Matches))
				r.Get("/{id}", handler(s.getV1Match))
				r.Put("/{id}", handler(s.putV1Match))
				r.Get("/{id}/notifications", handler(s.getV1MatchNotifications))
				// GET приходит по ссылкам из уведомлений.
				r.Get("/{id}/track", handler(s.getV1MatchTrack))
				r.Post("/{id}/track", handler(s.postV1MatchTrack))
			})

			r.Route("/admin", func(r chi.Router) {
				r.Get("/stats", handler(s.getV1AdminStats))
			})
		})
	})
}

func handler(f func(http.ResponseWriter, *http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := f(w, r); err != nil {
			replyError(r.Context(), w, err)
		}
	}
}
