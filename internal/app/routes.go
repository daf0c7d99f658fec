package app

import (
	"github.com/vancomm/codeword/internal/handlers"
)

func (a *App) loadRoutes() {
	codeword := handlers.NewCodewordHandler(a.log, a.store, a.hideChance)

	a.router.HandleFunc("GET /v1/status", handlers.Status)

	a.router.HandleFunc("POST /v1/codeword", codeword.Create)
	a.router.HandleFunc("GET /v1/codeword/{id}", codeword.Fetch)
	a.router.HandleFunc("GET /v1/codeword/{id}/html", codeword.FetchHTML)
}
