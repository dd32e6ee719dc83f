package models

import "time"

// DateLayout is the calendar date format used for check-in and check-out.
const DateLayout = "2006-01-02"

// ParseDate reads a check-in or check-out date. Month and day may omit the
// leading zero, so both 2025-06-01 and 2025-6-1 are accepted.
func ParseDate(s string) (time.Time, error) {
	return time.Parse("2006-1-2", s)
}

type ReservationFields struct {
	Name     string `json:"nombre"`
	Email    string `json:"email"`
	Phone    string `json:"telefono"`
	RoomID   string `json:"habitacion"`
	CheckIn  string `json:"fecha_entrada"`
	CheckOut string `json:"fecha_salida"`
	Guests   int    `json:"numero_huespedes"`
}

// ReservationRecord is what a successful reservation leaves in the session.
type ReservationRecord struct {
	ReservationFields
	ReservedAt string `json:"fecha_reserva"`
}

func NewReservationRecord(fields ReservationFields, now time.Time) ReservationRecord {
	return ReservationRecord{
		ReservationFields: fields,
		ReservedAt:        now.Format(TimestampLayout),
	}
}

// Nights is the number of nights between check-in and check-out, or 0 when
// either date does not parse.
func (r ReservationRecord) Nights() int {
	in, err := ParseDate(r.CheckIn)
	if err != nil {
		return 0
	}
	out, err := ParseDate(r.CheckOut)
	if err != nil {
		return 0
	}
	return int(out.Sub(in).Hours() / 24)
}
