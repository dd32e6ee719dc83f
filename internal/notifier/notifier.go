package notifier

import (
	"context"
	"errors"

	"github.com/gdg-garage/hotel-web/internal/models"
)

// Notifier is told about every registration and reservation that passed
// validation. Callers treat failures as best effort.
type Notifier interface {
	NotifyRegistration(ctx context.Context, record models.RegistrationRecord) error
	NotifyReservation(ctx context.Context, record models.ReservationRecord) error
}

// Multi forwards each notification to all of its notifiers, even when an
// earlier one fails, and reports the joined errors.
type Multi []Notifier

func (m Multi) NotifyRegistration(ctx context.Context, record models.RegistrationRecord) error {
	var errs []error
	for _, n := range m {
		if err := n.NotifyRegistration(ctx, record); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (m Multi) NotifyReservation(ctx context.Context, record models.ReservationRecord) error {
	var errs []error
	for _, n := range m {
		if err := n.NotifyReservation(ctx, record); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Nop drops every notification.
type Nop struct{}

func (Nop) NotifyRegistration(context.Context, models.RegistrationRecord) error { return nil }
func (Nop) NotifyReservation(context.Context, models.ReservationRecord) error   { return nil }
