package http

import (
	"net/http"

	"github.com/glowcare/clinic/internal/delivery/http/handler"
	"github.com/glowcare/clinic/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type TreatmentRouter struct {
	router           *mux.Router
	treatmentHandler *handler.TreatmentHandler
	corsMiddleware   *middleware.CORSMiddleware
}

func NewTreatmentRouter(treatmentHandler *handler.TreatmentHandler, corsMiddleware *middleware.CORSMiddleware) *TreatmentRouter {
	return &TreatmentRouter{
		router:           mux.NewRouter(),
		treatmentHandler: treatmentHandler,
		corsMiddleware:   corsMiddleware,
	}
}

func (r *TreatmentRouter) Setup() *mux.Router {
	r.router.HandleFunc("/", serviceInfo("treatment-service")).Methods(http.MethodGet)
	r.router.HandleFunc("/health", healthCheck("treatment-service")).Methods(http.MethodGet)

	r.router.HandleFunc("/treatments", r.treatmentHandler.Create).Methods(http.MethodPost)
	r.router.HandleFunc("/treatments", r.treatmentHandler.GetAll).Methods(http.MethodGet)
	r.router.HandleFunc("/treatments/{id}", r.treatmentHandler.GetByID).Methods(http.MethodGet)
	r.router.HandleFunc("/treatments/{id}", r.treatmentHandler.Update).Methods(http.MethodPut)
	r.router.HandleFunc("/treatments/{id}", r.treatmentHandler.Delete).Methods(http.MethodDelete)
	r.router.HandleFunc("/treatments/{id}/book", r.treatmentHandler.Book).Methods(http.MethodPost)

	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}
