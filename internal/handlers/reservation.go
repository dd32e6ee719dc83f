package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gdg-garage/hotel-web/internal/models"
	"github.com/gdg-garage/hotel-web/internal/notifier"
	"github.com/gdg-garage/hotel-web/internal/session"
	"github.com/gdg-garage/hotel-web/internal/validation"
)

// GuestCount accepts the guest count either as a JSON number or as a string,
// since the reservation form posts whatever the select element holds.
type GuestCount string

func (g *GuestCount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*g = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*g = GuestCount(s)
		return nil
	}
	*g = GuestCount(data)
	return nil
}

func (GuestCount) Schema(r huma.Registry) *huma.Schema {
	return &huma.Schema{
		Description: "Number of guests (1-6), as a number or numeric string",
	}
}

type ReservationHandler struct {
	store    session.Store
	notifier notifier.Notifier
	policy   validation.Policy
	now      func() time.Time
}

func NewReservationHandler(store session.Store, n notifier.Notifier, policy validation.Policy) *ReservationHandler {
	return &ReservationHandler{store: store, notifier: n, policy: policy, now: time.Now}
}

type ReservationRequest struct {
	Body struct {
		// Keys the form sends that are not validated are ignored.
		_ struct{} `json:"-" additionalProperties:"true"`

		Name     string     `json:"nombre,omitempty" doc:"Full name of the main guest"`
		Email    string     `json:"email,omitempty" doc:"Contact email"`
		Phone    string     `json:"telefono,omitempty" doc:"10 digit phone number"`
		RoomID   string     `json:"habitacion,omitempty" doc:"Room id from the catalog, e.g. HAB_SUITE_1"`
		CheckIn  string     `json:"fecha_entrada,omitempty" doc:"Check-in date, YYYY-MM-DD"`
		CheckOut string     `json:"fecha_salida,omitempty" doc:"Check-out date, YYYY-MM-DD"`
		Guests   GuestCount `json:"numero_huespedes,omitempty"`
	}
}

func (h *ReservationHandler) HandleValidate(ctx context.Context, input *ReservationRequest) (*ValidationResponse, error) {
	in := input.Body
	errs := validation.ValidateReservation(validation.ReservationInput{
		Name:     in.Name,
		Email:    in.Email,
		Phone:    in.Phone,
		RoomID:   in.RoomID,
		CheckIn:  in.CheckIn,
		CheckOut: in.CheckOut,
		Guests:   string(in.Guests),
	}, h.policy)
	if !errs.Valid() {
		return invalid(errs), nil
	}

	guests, _ := validation.ParseGuests(string(in.Guests))
	record := models.NewReservationRecord(models.ReservationFields{
		Name:     in.Name,
		Email:    in.Email,
		Phone:    in.Phone,
		RoomID:   in.RoomID,
		CheckIn:  in.CheckIn,
		CheckOut: in.CheckOut,
		Guests:   guests,
	}, h.now())
	if err := session.Save(ctx, h.store, session.ReservationKey, record); err != nil {
		log.Printf("Failed to store reservation: %v", err)
		return nil, huma.Error500InternalServerError("Failed to store reservation")
	}

	if h.notifier != nil {
		if err := h.notifier.NotifyReservation(ctx, record); err != nil {
			log.Printf("Reservation notification failed for %s: %v", record.Email, err)
		}
	}

	return valid(ReservationConfirmationPath), nil
}
