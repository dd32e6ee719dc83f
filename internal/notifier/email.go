package notifier

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gdg-garage/hotel-web/internal/models"
	"github.com/resend/resend-go/v2"
)

//go:embed templates/*.html
var emailFS embed.FS

var emailTemplates = template.Must(template.ParseFS(emailFS, "templates/*.html"))

// EmailNotifier sends the visitor a confirmation through the Resend API.
type EmailNotifier struct {
	client  *resend.Client
	from    string
	siteURL string
}

// NewEmailNotifier builds a notifier against the Resend API at apiURL.
// siteURL is the public address of the site, linked from every email.
func NewEmailNotifier(httpClient *http.Client, apiURL, apiKey, from, siteURL string) (*EmailNotifier, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("email API key is empty")
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	client := resend.NewCustomClient(httpClient, apiKey)
	if apiURL != "" {
		base, err := url.Parse(strings.TrimRight(apiURL, "/") + "/")
		if err != nil {
			return nil, fmt.Errorf("parse email API URL: %w", err)
		}
		client.BaseURL = base
	}

	return &EmailNotifier{
		client:  client,
		from:    from,
		siteURL: strings.TrimRight(siteURL, "/"),
	}, nil
}

type registrationEmail struct {
	models.RegistrationRecord
	SiteURL string
}

type reservationEmail struct {
	models.ReservationRecord
	Room    models.Room
	Nights  int
	Year    int
	SiteURL string
}

func (n *EmailNotifier) NotifyRegistration(ctx context.Context, record models.RegistrationRecord) error {
	body, err := render("registration.html", registrationEmail{
		RegistrationRecord: record,
		SiteURL:            n.siteURL,
	})
	if err != nil {
		return err
	}
	return n.send(ctx, record.Email, "¡Bienvenido, "+record.Name+"!", body)
}

func (n *EmailNotifier) NotifyReservation(ctx context.Context, record models.ReservationRecord) error {
	room, ok := models.FindRoom(record.RoomID)
	if !ok {
		room = models.Room{ID: record.RoomID, Name: record.RoomID}
	}
	body, err := render("reservation.html", reservationEmail{
		ReservationRecord: record,
		Room:              room,
		Nights:            record.Nights(),
		Year:              time.Now().Year(),
		SiteURL:           n.siteURL,
	})
	if err != nil {
		return err
	}
	return n.send(ctx, record.Email, "Confirmación de reserva: "+room.Name, body)
}

func render(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := emailTemplates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return buf.String(), nil
}

func (n *EmailNotifier) send(ctx context.Context, to, subject, html string) error {
	_, err := n.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    n.from,
		To:      []string{to},
		Subject: subject,
		Html:    html,
	})
	if err != nil {
		return fmt.Errorf("send email to %s: %w", to, err)
	}
	return nil
}
