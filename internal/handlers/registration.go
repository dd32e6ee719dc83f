package handlers

import (
	"context"
	"log"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gdg-garage/hotel-web/internal/models"
	"github.com/gdg-garage/hotel-web/internal/notifier"
	"github.com/gdg-garage/hotel-web/internal/session"
	"github.com/gdg-garage/hotel-web/internal/validation"
)

type RegistrationHandler struct {
	store    session.Store
	notifier notifier.Notifier
	policy   validation.Policy
	now      func() time.Time
}

func NewRegistrationHandler(store session.Store, n notifier.Notifier, policy validation.Policy) *RegistrationHandler {
	return &RegistrationHandler{store: store, notifier: n, policy: policy, now: time.Now}
}

type RegistrationRequest struct {
	Body struct {
		// Keys the form sends that are not validated are ignored.
		_ struct{} `json:"-" additionalProperties:"true"`

		Name     string `json:"nombre,omitempty" doc:"Full name, letters and spaces"`
		Email    string `json:"email,omitempty" doc:"Contact email"`
		Phone    string `json:"telefono,omitempty" doc:"10 digit phone number"`
		Document string `json:"cedula,omitempty" doc:"Identity document number"`
		Password string `json:"contrasena,omitempty" doc:"Account password"`
		IDType   string `json:"tipo_identificacion,omitempty" doc:"cedula or pasaporte, used by the colombia policy"`
	}
}

// ValidationResult is the answer to both form validation endpoints.
type ValidationResult struct {
	Valid    bool              `json:"valido"`
	Errors   validation.Errors `json:"errores,omitempty" doc:"Message per failing field"`
	Redirect string            `json:"redirect,omitempty" doc:"Where to go next when valid"`
}

type ValidationResponse struct {
	Body ValidationResult
}

func invalid(errs validation.Errors) *ValidationResponse {
	return &ValidationResponse{Body: ValidationResult{Valid: false, Errors: errs}}
}

func valid(redirect string) *ValidationResponse {
	return &ValidationResponse{Body: ValidationResult{Valid: true, Redirect: redirect}}
}

func (h *RegistrationHandler) HandleValidate(ctx context.Context, input *RegistrationRequest) (*ValidationResponse, error) {
	in := input.Body
	errs := validation.ValidateRegistration(validation.RegistrationInput{
		Name:         in.Name,
		Email:        in.Email,
		Phone:        in.Phone,
		Document:     in.Document,
		DocumentType: in.IDType,
		Password:     in.Password,
	}, h.policy)
	if !errs.Valid() {
		return invalid(errs), nil
	}

	record := models.NewRegistrationRecord(in.Name, in.Email, h.now())
	if err := session.Save(ctx, h.store, session.RegistrationKey, record); err != nil {
		log.Printf("Failed to store registration: %v", err)
		return nil, huma.Error500InternalServerError("Failed to store registration")
	}

	if h.notifier != nil {
		if err := h.notifier.NotifyRegistration(ctx, record); err != nil {
			log.Printf("Registration notification failed for %s: %v", record.Email, err)
		}
	}

	return valid(RegistrationConfirmationPath), nil
}
