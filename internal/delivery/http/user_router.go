package http

import (
	"net/http"

	"github.com/glowcare/clinic/internal/delivery/http/handler"
	"github.com/glowcare/clinic/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type UserRouter struct {
	router         *mux.Router
	authHandler    *handler.AuthHandler
	proxyHandler   *handler.ProxyHandler
	authMiddleware *middleware.AuthMiddleware
	corsMiddleware *middleware.CORSMiddleware
}

func NewUserRouter(
	authHandler *handler.AuthHandler,
	proxyHandler *handler.ProxyHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *UserRouter {
	return &UserRouter{
		router:         mux.NewRouter(),
		authHandler:    authHandler,
		proxyHandler:   proxyHandler,
		authMiddleware: authMiddleware,
		corsMiddleware: corsMiddleware,
	}
}

func (r *UserRouter) Setup() *mux.Router {
	r.router.HandleFunc("/", serviceInfo("user-service")).Methods(http.MethodGet)
	r.router.HandleFunc("/health", healthCheck("user-service")).Methods(http.MethodGet)

	// Public routes
	r.router.HandleFunc("/register", r.authHandler.Register).Methods(http.MethodPost)
	r.router.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)

	// Authenticated routes
	authed := r.router.NewRoute().Subrouter()
	authed.Use(r.authMiddleware.Authenticate)
	authed.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authed.HandleFunc("/profile", r.authHandler.GetProfile).Methods(http.MethodGet)
	authed.HandleFunc("/profile", r.authHandler.UpdateProfile).Methods(http.MethodPut)
	authed.HandleFunc("/appointments", r.proxyHandler.ViewAppointments).Methods(http.MethodGet)

	// Proxy routes gated by the policy table
	book := r.router.NewRoute().Subrouter()
	book.Use(r.authMiddleware.Authenticate)
	book.Use(middleware.RequireOperation(middleware.OpBookAppointment))
	book.HandleFunc("/book-appointment", r.proxyHandler.BookAppointment).Methods(http.MethodPost)

	pay := r.router.NewRoute().Subrouter()
	pay.Use(r.authMiddleware.Authenticate)
	pay.Use(middleware.RequireOperation(middleware.OpMakePayment))
	pay.HandleFunc("/make-payment", r.proxyHandler.MakePayment).Methods(http.MethodPost)

	manage := r.router.NewRoute().Subrouter()
	manage.Use(r.authMiddleware.Authenticate)
	manage.Use(middleware.RequireOperation(middleware.OpManageAppointment))
	manage.HandleFunc("/appointments/{id}", r.proxyHandler.ManageAppointment).Methods(http.MethodPut, http.MethodDelete)

	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}
