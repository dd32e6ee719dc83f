package handlers

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gdg-garage/hotel-web/internal/models"
	"github.com/gdg-garage/hotel-web/internal/session"
	"github.com/gdg-garage/hotel-web/internal/validation"
)

var fixedNow = time.Date(2025, 6, 1, 18, 45, 30, 0, time.Local)

type recordingNotifier struct {
	registrations []models.RegistrationRecord
	reservations  []models.ReservationRecord
	err           error
}

func (n *recordingNotifier) NotifyRegistration(_ context.Context, r models.RegistrationRecord) error {
	n.registrations = append(n.registrations, r)
	return n.err
}

func (n *recordingNotifier) NotifyReservation(_ context.Context, r models.ReservationRecord) error {
	n.reservations = append(n.reservations, r)
	return n.err
}

func validRegistrationRequest() *RegistrationRequest {
	req := &RegistrationRequest{}
	req.Body.Name = "Camila Rodríguez"
	req.Body.Email = "camila@example.com"
	req.Body.Phone = "3001234567"
	req.Body.Document = "1020304050"
	req.Body.Password = "Hotel#2025"
	return req
}

func newRegistrationHandler(n *recordingNotifier) (*RegistrationHandler, session.Store) {
	store := session.NewMemoryStore(time.Hour)
	h := NewRegistrationHandler(store, n, validation.PolicyStandard)
	h.now = func() time.Time { return fixedNow }
	return h, store
}

func TestHandleValidateRegistration(t *testing.T) {
	n := &recordingNotifier{}
	handler, store := newRegistrationHandler(n)
	ctx := session.WithID(context.Background(), "visitor-1")

	resp, err := handler.HandleValidate(ctx, validRegistrationRequest())
	if err != nil {
		t.Fatalf("HandleValidate returned error: %v", err)
	}
	if !resp.Body.Valid {
		t.Fatalf("expected valid response, got errors %v", resp.Body.Errors)
	}
	if resp.Body.Redirect != "/confirmacion_registro" {
		t.Errorf("expected redirect to /confirmacion_registro, got %q", resp.Body.Redirect)
	}
	if len(resp.Body.Errors) != 0 {
		t.Errorf("expected no errors, got %v", resp.Body.Errors)
	}

	var record models.RegistrationRecord
	found, err := store.Get(ctx, "visitor-1", session.RegistrationKey, &record)
	if err != nil || !found {
		t.Fatalf("expected registration in session, found=%v err=%v", found, err)
	}
	if record.Name != "Camila Rodríguez" || record.Email != "camila@example.com" {
		t.Errorf("unexpected record %+v", record)
	}
	if record.RegisteredAt != "01/06/2025 18:45:30" {
		t.Errorf("unexpected timestamp %q", record.RegisteredAt)
	}

	if len(n.registrations) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(n.registrations))
	}
}

func TestHandleValidateRegistration_Invalid(t *testing.T) {
	n := &recordingNotifier{}
	handler, store := newRegistrationHandler(n)
	ctx := session.WithID(context.Background(), "visitor-1")

	req := validRegistrationRequest()
	req.Body.Phone = "12345"
	req.Body.Password = "sinmayusculas1!"

	resp, err := handler.HandleValidate(ctx, req)
	if err != nil {
		t.Fatalf("HandleValidate returned error: %v", err)
	}
	if resp.Body.Valid {
		t.Fatal("expected invalid response")
	}
	if resp.Body.Redirect != "" {
		t.Errorf("expected no redirect, got %q", resp.Body.Redirect)
	}
	if len(resp.Body.Errors) != 2 || resp.Body.Errors["telefono"] == "" || resp.Body.Errors["contrasena"] == "" {
		t.Errorf("expected errors for telefono and contrasena, got %v", resp.Body.Errors)
	}

	var record models.RegistrationRecord
	if found, _ := store.Get(ctx, "visitor-1", session.RegistrationKey, &record); found {
		t.Error("nothing should be stored for an invalid form")
	}
	if len(n.registrations) != 0 {
		t.Error("no notification should be sent for an invalid form")
	}
}

func TestHandleValidateRegistration_NotificationFailureIgnored(t *testing.T) {
	n := &recordingNotifier{err: errors.New("email API down")}
	handler, _ := newRegistrationHandler(n)
	ctx := session.WithID(context.Background(), "visitor-1")

	resp, err := handler.HandleValidate(ctx, validRegistrationRequest())
	if err != nil {
		t.Fatalf("notification failure must not fail the request: %v", err)
	}
	if !resp.Body.Valid {
		t.Error("expected valid response despite notification failure")
	}
}

func TestHandleValidateRegistration_Resubmission(t *testing.T) {
	handler, store := newRegistrationHandler(&recordingNotifier{})
	ctx := session.WithID(context.Background(), "visitor-1")

	if _, err := handler.HandleValidate(ctx, validRegistrationRequest()); err != nil {
		t.Fatalf("first HandleValidate returned error: %v", err)
	}

	req := validRegistrationRequest()
	req.Body.Name = "Camila Andrea Rodríguez"
	if _, err := handler.HandleValidate(ctx, req); err != nil {
		t.Fatalf("second HandleValidate returned error: %v", err)
	}

	var record models.RegistrationRecord
	store.Get(ctx, "visitor-1", session.RegistrationKey, &record)
	if record.Name != "Camila Andrea Rodríguez" {
		t.Errorf("expected latest registration, got %q", record.Name)
	}
}

func TestHandleValidateRegistration_NoSession(t *testing.T) {
	handler, _ := newRegistrationHandler(&recordingNotifier{})

	_, err := handler.HandleValidate(context.Background(), validRegistrationRequest())
	var se huma.StatusError
	if !errors.As(err, &se) || se.GetStatus() != 500 {
		t.Fatalf("expected 500 status error, got %v", err)
	}
}

func TestHandleValidateRegistration_NilNotifier(t *testing.T) {
	store := session.NewMemoryStore(time.Hour)
	handler := NewRegistrationHandler(store, nil, validation.PolicyColombia)
	ctx := session.WithID(context.Background(), "visitor-1")

	req := validRegistrationRequest()
	req.Body.IDType = "pasaporte"
	req.Body.Document = "PA12345"

	resp, err := handler.HandleValidate(ctx, req)
	if err != nil {
		t.Fatalf("HandleValidate returned error: %v", err)
	}
	if !resp.Body.Valid {
		t.Errorf("expected valid response, got %v", resp.Body.Errors)
	}
}
