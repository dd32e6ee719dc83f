// Package validation checks the registration and reservation forms.
//
// Every field is checked on its own and each failing field contributes one
// message keyed by its JSON name, so a form is valid exactly when the
// returned Errors is empty.
package validation

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Errors maps a form field to the message shown next to it.
type Errors map[string]string

func (e Errors) Valid() bool { return len(e) == 0 }

// Policy selects the phone and identity document rules.
type Policy string

const (
	// PolicyStandard accepts any 10 digit phone and a 6-12 character
	// alphanumeric document.
	PolicyStandard Policy = "standard"
	// PolicyColombia requires a mobile number starting with 3 and a
	// document matching the selected identification type.
	PolicyColombia Policy = "colombia"
)

func ParsePolicy(s string) (Policy, error) {
	switch p := Policy(strings.ToLower(strings.TrimSpace(s))); p {
	case "", PolicyStandard:
		return PolicyStandard, nil
	case PolicyColombia:
		return PolicyColombia, nil
	default:
		return "", fmt.Errorf("unknown validation policy %q", s)
	}
}

const (
	IDTypeCedula    = "cedula"
	IDTypePasaporte = "pasaporte"
)

var (
	nameRe         = regexp.MustCompile(`^[A-Za-zÁÉÍÓÚáéíóúÑñ ]{3,60}$`)
	emailRe        = regexp.MustCompile(`^[\w.-]+@[\w.-]+\.\w{2,4}$`)
	phoneRe        = regexp.MustCompile(`^\d{10}$`)
	mobilePhoneRe  = regexp.MustCompile(`^3\d{9}$`)
	documentRe     = regexp.MustCompile(`^[A-Za-z0-9]{6,12}$`)
	cedulaRe       = regexp.MustCompile(`^\d{10}$`)
	passportRe     = regexp.MustCompile(`^[A-Z0-9]{6,9}$`)
	roomRe         = regexp.MustCompile(`^HAB[A-Za-z0-9_]{1,20}$`)
	passwordSymbol = `!@#$%^&*()_+-=[]{};:'",.<>?/~` + "`" + `|\`
)

const (
	msgName        = "Solo letras y espacios (3-60 caracteres)."
	msgEmail       = "Formato de correo no válido."
	msgPhone       = "Debe tener exactamente 10 dígitos."
	msgMobilePhone = "Debe ser un celular de 10 dígitos que empiece por 3."
	msgDocument    = "Entre 6 y 12 caracteres alfanuméricos."
	msgCedula      = "La cédula debe tener exactamente 10 dígitos."
	msgPassport    = "El pasaporte debe tener entre 6 y 9 letras mayúsculas o números."
	msgIDType      = "Tipo de identificación no válido."
	msgPassword    = "Debe tener al menos 8 caracteres, una mayúscula, un número y un carácter especial."
	msgRoomMissing = "Debe ingresar el nombre de una habitación."
	msgRoomPattern = "El nombre debe empezar con 'HAB' seguido de letras, números o guiones bajos (máximo 20 caracteres)."
	msgRoomUnknown = "Esta habitación no está disponible. Selecciona una de las habitaciones disponibles."
	msgCheckIn     = "Debe seleccionar fecha de entrada."
	msgCheckOut    = "Debe seleccionar fecha de salida."
	msgDateFormat  = "Formato de fecha inválido."
	msgDateOrder   = "La fecha de salida debe ser posterior a la de entrada."
	msgGuests      = "Debe ser entre 1 y 6 huéspedes."
)

// Name accepts letters, including Spanish accented vowels and ñ, and spaces.
// Decomposed accents are composed before matching.
func Name(s string) bool {
	return nameRe.MatchString(norm.NFC.String(s))
}

func Email(s string) bool {
	return emailRe.MatchString(s)
}

func Phone(s string, p Policy) bool {
	if p == PolicyColombia {
		return mobilePhoneRe.MatchString(s)
	}
	return phoneRe.MatchString(s)
}

// Password needs 8 or more characters on a single line with at least one
// uppercase letter, one digit and one symbol.
func Password(s string) bool {
	if strings.ContainsAny(s, "\r\n") {
		return false
	}
	var upper, digit, symbol bool
	n := 0
	for _, r := range s {
		n++
		switch {
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		case strings.ContainsRune(passwordSymbol, r):
			symbol = true
		}
	}
	return n >= 8 && upper && digit && symbol
}

func phoneMessage(p Policy) string {
	if p == PolicyColombia {
		return msgMobilePhone
	}
	return msgPhone
}
