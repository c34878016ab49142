package http

import (
	"net/http"

	"github.com/glowcare/clinic/internal/delivery/http/handler"
	"github.com/glowcare/clinic/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type PaymentRouter struct {
	router         *mux.Router
	paymentHandler *handler.PaymentHandler
	corsMiddleware *middleware.CORSMiddleware
}

func NewPaymentRouter(paymentHandler *handler.PaymentHandler, corsMiddleware *middleware.CORSMiddleware) *PaymentRouter {
	return &PaymentRouter{
		router:         mux.NewRouter(),
		paymentHandler: paymentHandler,
		corsMiddleware: corsMiddleware,
	}
}

func (r *PaymentRouter) Setup() *mux.Router {
	r.router.HandleFunc("/", serviceInfo("payment-service")).Methods(http.MethodGet)
	r.router.HandleFunc("/health", healthCheck("payment-service")).Methods(http.MethodGet)

	r.router.HandleFunc("/payments", r.paymentHandler.Create).Methods(http.MethodPost)
	r.router.HandleFunc("/payments", r.paymentHandler.GetAll).Methods(http.MethodGet)
	// The appointment lookup must register before the generic {id} route.
	r.router.HandleFunc("/payments/appointment/{id}", r.paymentHandler.GetByAppointment).Methods(http.MethodGet)
	r.router.HandleFunc("/payments/{id}", r.paymentHandler.GetByID).Methods(http.MethodGet)
	r.router.HandleFunc("/payments/{id}/status", r.paymentHandler.UpdateStatus).Methods(http.MethodPut)
	r.router.HandleFunc("/payments/{id}/confirm", r.paymentHandler.Confirm).Methods(http.MethodPost)

	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}
