package main

import (
	"token-lifecycle-server/internal/handler"
	"token-lifecycle-server/internal/ports"
	"token-lifecycle-server/internal/security"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type handlers struct {
	auth      *handler.AuthenticationHandler
	user      *handler.UserHandler
	favorites *handler.MediaListHandler
	watchList *handler.MediaListHandler
}

func setupRoutes(router chi.Router, h handlers, signer ports.TokenSigner) {
	router.Use(middleware.Recoverer)
	router.Get("/swagger/*", httpSwagger.WrapHandler)

	router.Route("/api/auth", func(r chi.Router) {
		r.Post("/signup", h.user.Signup)
		r.Post("/login", h.auth.Login)
		r.Post("/token/refresh", h.auth.RefreshToken)

		r.Group(func(r chi.Router) {
			r.Use(security.JWTMiddleware(signer))
			r.Post("/token/revoke", h.auth.Revoke)
			r.Get("/getuser", h.user.GetUser)
			r.Put("/updatename", h.user.UpdateName)
		})
	})

	router.Route("/api/favorites", func(r chi.Router) {
		r.Use(security.JWTMiddleware(signer))
		mediaListRoutes(r, h.favorites)
	})
	router.Route("/api/watchlist", func(r chi.Router) {
		r.Use(security.JWTMiddleware(signer))
		mediaListRoutes(r, h.watchList)
	})
}

func mediaListRoutes(r chi.Router, h *handler.MediaListHandler) {
	r.Get("/", h.List)
	r.Post("/add", h.Add)
	r.Delete("/remove", h.Remove)
	r.Get("/check", h.Check)
}
