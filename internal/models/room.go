package models

import "fmt"

type Room struct {
	ID          string `json:"id"`
	Name        string `json:"nombre"`
	Image       string `json:"imagen"`
	Price       int    `json:"precio"`
	Description string `json:"descripcion"`
}

// FormattedPrice renders the nightly price in pesos, e.g. "$150.000".
func (r Room) FormattedPrice() string {
	s := fmt.Sprintf("%d", r.Price)
	out := make([]byte, 0, len(s)+len(s)/3)
	for i := range len(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, '.')
		}
		out = append(out, s[i])
	}
	return "$" + string(out)
}

var catalog = []Room{
	{
		ID:          "HAB_DOBLE_1",
		Name:        "Habitación Doble Premium",
		Image:       "hab_doble_1.jpg",
		Price:       150000,
		Description: "Habitación doble con vista al mar, cama king size y balcón privado.",
	},
	{
		ID:          "HAB_DOBLE_2",
		Name:        "Habitación Doble Estándar",
		Image:       "hab_doble_2.jpg",
		Price:       120000,
		Description: "Habitación doble con vista al jardín, cómoda y acogedora.",
	},
	{
		ID:          "HAB_SENCILLA_1",
		Name:        "Habitación Sencilla Premium",
		Image:       "hab_sencilla_1.jpg",
		Price:       100000,
		Description: "Habitación sencilla con todas las comodidades modernas.",
	},
	{
		ID:          "HAB_SUITE_1",
		Name:        "Suite Presidencial",
		Image:       "hab_suite_1.jpg",
		Price:       250000,
		Description: "Suite de lujo con sala de estar, jacuzzi y vista panorámica.",
	},
}

// Rooms returns the bookable rooms in display order.
func Rooms() []Room {
	out := make([]Room, len(catalog))
	copy(out, catalog)
	return out
}

func FindRoom(id string) (Room, bool) {
	for _, r := range catalog {
		if r.ID == id {
			return r, true
		}
	}
	return Room{}, false
}
