package handlers

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/gdg-garage/hotel-web/internal/session"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func RegisterRoutes(r *chi.Mux, sessions *session.Manager, pages *PageHandler, registrationHandler *RegistrationHandler, reservationHandler *ReservationHandler) huma.API {
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(sessions.Middleware)

	// Initialize Huma API
	config := huma.DefaultConfig("Hotel API", "1.0.0")
	// No $schema links: the form script expects exactly {valido, errores, redirect}.
	config.CreateHooks = nil
	api := humachi.New(r, config)

	// Public routes
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})
	r.Handle("/static/*", Static())

	// Pages
	r.Get(HomePath, pages.Home)
	r.Get(RegistrationFormPath, pages.RegistrationForm)
	r.Get(ReservationFormPath, pages.ReservationForm)
	r.Get(RegistrationConfirmationPath, pages.RegistrationConfirmation)
	r.Get(ReservationConfirmationPath, pages.ReservationConfirmation)

	// Form validation
	huma.Register(api, huma.Operation{
		OperationID: "validate-registration",
		Method:      http.MethodPost,
		Path:        "/validar",
		Summary:     "Validate the registration form",
	}, registrationHandler.HandleValidate)
	huma.Register(api, huma.Operation{
		OperationID: "validate-reservation",
		Method:      http.MethodPost,
		Path:        "/validar_reserva",
		Summary:     "Validate the reservation form",
	}, reservationHandler.HandleValidate)

	return api
}
