package http

import (
	"net/http"

	"github.com/glowcare/clinic/internal/delivery/http/handler"
	"github.com/glowcare/clinic/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type AppointmentRouter struct {
	router             *mux.Router
	appointmentHandler *handler.AppointmentHandler
	corsMiddleware     *middleware.CORSMiddleware
}

func NewAppointmentRouter(appointmentHandler *handler.AppointmentHandler, corsMiddleware *middleware.CORSMiddleware) *AppointmentRouter {
	return &AppointmentRouter{
		router:             mux.NewRouter(),
		appointmentHandler: appointmentHandler,
		corsMiddleware:     corsMiddleware,
	}
}

func (r *AppointmentRouter) Setup() *mux.Router {
	r.router.HandleFunc("/", serviceInfo("appointment-service")).Methods(http.MethodGet)
	r.router.HandleFunc("/health", healthCheck("appointment-service")).Methods(http.MethodGet)

	r.router.HandleFunc("/appointments", r.appointmentHandler.Create).Methods(http.MethodPost)
	r.router.HandleFunc("/appointments", r.appointmentHandler.GetAll).Methods(http.MethodGet)
	r.router.HandleFunc("/appointments/{id}", r.appointmentHandler.GetByID).Methods(http.MethodGet)
	r.router.HandleFunc("/appointments/{id}", r.appointmentHandler.Update).Methods(http.MethodPut)
	r.router.HandleFunc("/appointments/{id}", r.appointmentHandler.Delete).Methods(http.MethodDelete)
	r.router.HandleFunc("/appointments/{id}/cancel", r.appointmentHandler.Cancel).Methods(http.MethodPost)
	r.router.HandleFunc("/appointments/{id}/confirm-payment", r.appointmentHandler.ConfirmPayment).Methods(http.MethodPost)

	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}
