package validation

import (
	"strconv"
	"strings"

	"github.com/gdg-garage/hotel-web/internal/models"
)

const (
	MinGuests = 1
	MaxGuests = 6
)

type ReservationInput struct {
	Name     string
	Email    string
	Phone    string
	RoomID   string
	CheckIn  string
	CheckOut string
	// Guests is the submitted guest count as text; JSON numbers are
	// formatted before they get here.
	Guests string
}

func ValidateReservation(in ReservationInput, p Policy) Errors {
	errs := Errors{}

	if !Name(in.Name) {
		errs["nombre"] = msgName
	}
	if !Email(in.Email) {
		errs["email"] = msgEmail
	}
	if !Phone(in.Phone, p) {
		errs["telefono"] = phoneMessage(p)
	}
	checkRoom(errs, in.RoomID)
	checkDates(errs, in.CheckIn, in.CheckOut)
	if _, ok := ParseGuests(in.Guests); !ok {
		errs["numero_huespedes"] = msgGuests
	}

	return errs
}

// ParseGuests reports the guest count and whether it is a whole number
// within [MinGuests, MaxGuests].
func ParseGuests(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, false
	}
	return n, n >= MinGuests && n <= MaxGuests
}

func checkRoom(errs Errors, id string) {
	switch {
	case id == "":
		errs["habitacion"] = msgRoomMissing
	case !roomRe.MatchString(id):
		errs["habitacion"] = msgRoomPattern
	default:
		if _, ok := models.FindRoom(id); !ok {
			errs["habitacion"] = msgRoomUnknown
		}
	}
}

// checkDates requires both dates and a check-out strictly after check-in.
// A date that does not parse is reported against check-in.
func checkDates(errs Errors, checkIn, checkOut string) {
	if checkIn == "" {
		errs["fecha_entrada"] = msgCheckIn
	}
	if checkOut == "" {
		errs["fecha_salida"] = msgCheckOut
	}
	if checkIn == "" || checkOut == "" {
		return
	}

	in, err := models.ParseDate(checkIn)
	if err != nil {
		errs["fecha_entrada"] = msgDateFormat
		return
	}
	out, err := models.ParseDate(checkOut)
	if err != nil {
		errs["fecha_entrada"] = msgDateFormat
		return
	}
	if !out.After(in) {
		errs["fecha_salida"] = msgDateOrder
	}
}
