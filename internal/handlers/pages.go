package handlers

import (
	"embed"
	"html/template"
	"io/fs"
	"log"
	"net/http"

	"github.com/gdg-garage/hotel-web/internal/models"
	"github.com/gdg-garage/hotel-web/internal/session"
)

const (
	HomePath                     = "/"
	RegistrationFormPath         = "/registro"
	ReservationFormPath          = "/reserva"
	RegistrationConfirmationPath = "/confirmacion_registro"
	ReservationConfirmationPath  = "/confirmacion_reserva"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

var pageNames = []string{
	"home.html",
	"registro.html",
	"reserva.html",
	"confirmacion_registro.html",
	"confirmacion_reserva.html",
}

// PageHandler renders the site pages. Confirmation pages only render data
// found in the visitor's session and otherwise send the visitor back to the
// form that produces it.
type PageHandler struct {
	store session.Store
	pages map[string]*template.Template
}

func NewPageHandler(store session.Store) (*PageHandler, error) {
	layout, err := template.ParseFS(templateFS, "templates/layout.html")
	if err != nil {
		return nil, err
	}

	pages := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		t, err := layout.Clone()
		if err != nil {
			return nil, err
		}
		if _, err := t.ParseFS(templateFS, "templates/"+name); err != nil {
			return nil, err
		}
		pages[name] = t
	}

	return &PageHandler{store: store, pages: pages}, nil
}

func (h *PageHandler) render(w http.ResponseWriter, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.pages[name].ExecuteTemplate(w, "layout", data); err != nil {
		log.Printf("Failed to render %s: %v", name, err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

func (h *PageHandler) Home(w http.ResponseWriter, r *http.Request) {
	h.render(w, "home.html", nil)
}

func (h *PageHandler) RegistrationForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, "registro.html", nil)
}

func (h *PageHandler) ReservationForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, "reserva.html", struct {
		Rooms []models.Room
	}{Rooms: models.Rooms()})
}

func (h *PageHandler) RegistrationConfirmation(w http.ResponseWriter, r *http.Request) {
	var record models.RegistrationRecord
	found, err := session.Load(r.Context(), h.store, session.RegistrationKey, &record)
	if err != nil {
		log.Printf("Failed to load registration from session: %v", err)
	}
	if err != nil || !found {
		http.Redirect(w, r, RegistrationFormPath, http.StatusFound)
		return
	}

	h.render(w, "confirmacion_registro.html", record)
}

func (h *PageHandler) ReservationConfirmation(w http.ResponseWriter, r *http.Request) {
	var record models.ReservationRecord
	found, err := session.Load(r.Context(), h.store, session.ReservationKey, &record)
	if err != nil {
		log.Printf("Failed to load reservation from session: %v", err)
	}
	if err != nil || !found {
		http.Redirect(w, r, ReservationFormPath, http.StatusFound)
		return
	}

	room, ok := models.FindRoom(record.RoomID)
	if !ok {
		room = models.Room{ID: record.RoomID, Name: record.RoomID}
	}
	h.render(w, "confirmacion_reserva.html", struct {
		models.ReservationRecord
		Room   models.Room
		Nights int
	}{record, room, record.Nights()})
}

// Static serves the embedded stylesheets and scripts under /static/.
func Static() http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.StripPrefix("/static/", http.FileServer(http.FS(sub)))
}
