package handlers

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/gdg-garage/hotel-web/internal/models"
	"github.com/gdg-garage/hotel-web/internal/session"
	"github.com/gdg-garage/hotel-web/internal/validation"
)

func validReservationRequest() *ReservationRequest {
	req := &ReservationRequest{}
	req.Body.Name = "Julián Ortiz"
	req.Body.Email = "julian@example.com"
	req.Body.Phone = "3157654321"
	req.Body.RoomID = "HAB_DOBLE_1"
	req.Body.CheckIn = "2025-06-10"
	req.Body.CheckOut = "2025-06-11"
	req.Body.Guests = "2"
	return req
}

func newReservationHandler(n *recordingNotifier) (*ReservationHandler, session.Store) {
	store := session.NewMemoryStore(time.Hour)
	h := NewReservationHandler(store, n, validation.PolicyStandard)
	h.now = func() time.Time { return fixedNow }
	return h, store
}

func TestHandleValidateReservation(t *testing.T) {
	n := &recordingNotifier{}
	handler, store := newReservationHandler(n)
	ctx := session.WithID(context.Background(), "visitor-2")

	resp, err := handler.HandleValidate(ctx, validReservationRequest())
	if err != nil {
		t.Fatalf("HandleValidate returned error: %v", err)
	}
	if !resp.Body.Valid || resp.Body.Redirect != "/confirmacion_reserva" {
		t.Fatalf("unexpected response %+v", resp.Body)
	}

	var record models.ReservationRecord
	found, err := store.Get(ctx, "visitor-2", session.ReservationKey, &record)
	if err != nil || !found {
		t.Fatalf("expected reservation in session, found=%v err=%v", found, err)
	}
	if record.Guests != 2 || record.RoomID != "HAB_DOBLE_1" || record.ReservedAt != "01/06/2025 18:45:30" {
		t.Errorf("unexpected record %+v", record)
	}
	if len(n.reservations) != 1 {
		t.Errorf("expected 1 notification, got %d", len(n.reservations))
	}

	// The registration slot of the same session is untouched.
	var reg models.RegistrationRecord
	if found, _ := store.Get(ctx, "visitor-2", session.RegistrationKey, &reg); found {
		t.Error("reservation must not write the registration record")
	}
}

func TestHandleValidateReservation_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ReservationRequest)
		field  string
	}{
		{"uncataloged room", func(r *ReservationRequest) { r.Body.RoomID = "HAB_TRIPLE_9" }, "habitacion"},
		{"no guests", func(r *ReservationRequest) { r.Body.Guests = "0" }, "numero_huespedes"},
		{"too many guests", func(r *ReservationRequest) { r.Body.Guests = "7" }, "numero_huespedes"},
		{"same day", func(r *ReservationRequest) { r.Body.CheckOut = r.Body.CheckIn }, "fecha_salida"},
		{"bad date", func(r *ReservationRequest) { r.Body.CheckIn = "junio 10" }, "fecha_entrada"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := &recordingNotifier{}
			handler, store := newReservationHandler(n)
			ctx := session.WithID(context.Background(), "visitor-2")

			req := validReservationRequest()
			tt.mutate(req)
			resp, err := handler.HandleValidate(ctx, req)
			if err != nil {
				t.Fatalf("HandleValidate returned error: %v", err)
			}
			if resp.Body.Valid {
				t.Fatal("expected invalid response")
			}
			if len(resp.Body.Errors) != 1 || resp.Body.Errors[tt.field] == "" {
				t.Errorf("expected a single error for %s, got %v", tt.field, resp.Body.Errors)
			}

			var record models.ReservationRecord
			if found, _ := store.Get(ctx, "visitor-2", session.ReservationKey, &record); found {
				t.Error("nothing should be stored for an invalid form")
			}
			if len(n.reservations) != 0 {
				t.Error("no notification should be sent for an invalid form")
			}
		})
	}
}

func TestGuestCount_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		raw  string
		want GuestCount
	}{
		{`3`, "3"},
		{`"4"`, "4"},
		{`null`, ""},
		{`2.5`, "2.5"},
	}
	for _, tt := range tests {
		var g GuestCount
		if err := json.Unmarshal([]byte(tt.raw), &g); err != nil {
			t.Fatalf("unmarshal %s: %v", tt.raw, err)
		}
		if g != tt.want {
			t.Errorf("unmarshal %s: expected %q, got %q", tt.raw, tt.want, g)
		}
	}
}
