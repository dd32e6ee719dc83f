package validation

type RegistrationInput struct {
	Name     string
	Email    string
	Phone    string
	Document string
	// DocumentType is only consulted under PolicyColombia; empty means cedula.
	DocumentType string
	Password     string
}

func ValidateRegistration(in RegistrationInput, p Policy) Errors {
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
	checkDocument(errs, in, p)
	if !Password(in.Password) {
		errs["contrasena"] = msgPassword
	}

	return errs
}

func checkDocument(errs Errors, in RegistrationInput, p Policy) {
	if p != PolicyColombia {
		if !documentRe.MatchString(in.Document) {
			errs["cedula"] = msgDocument
		}
		return
	}

	switch in.DocumentType {
	case "", IDTypeCedula:
		if !cedulaRe.MatchString(in.Document) {
			errs["cedula"] = msgCedula
		}
	case IDTypePasaporte:
		if !passportRe.MatchString(in.Document) {
			errs["cedula"] = msgPassport
		}
	default:
		errs["tipo_identificacion"] = msgIDType
	}
}
