package api

import (
	"strconv"
	"time"
)

// Fallback values shown when the server omits a nested field. Kept
// identical to the web dashboard so both frontends render the same.
const (
	fallbackNA       = "N/A"
	fallbackUserName = "Unknown User"
	fallbackEmail    = "No Email"
	fallbackPhone    = "Not Provided"
)

// transformInspection flattens a server booking into the client shape.
// Missing user or car sub-objects degrade to placeholder text rather
// than failing the whole list.
func transformInspection(raw rawInspection) InspectionBooking {
	b := InspectionBooking{
		ID:        raw.ID,
		UserID:    fallbackNA,
		UserName:  fallbackUserName,
		UserEmail: fallbackEmail,
		UserPhone: fallbackPhone,
		CarID:     fallbackNA,
		CarBrand:  fallbackNA,
		CarModel:  fallbackNA,
		CarYear:   fallbackNA,
		Location:  orFallback(raw.Location, fallbackNA),
		Note:      orFallback(raw.Note, fallbackNA),
		Status:    orFallback(raw.Status, "pending"),
	}

	if raw.User != nil {
		b.UserID = orFallback(raw.User.ID, fallbackNA)
		b.UserName = orFallback(raw.User.Name, fallbackUserName)
		b.UserEmail = orFallback(raw.User.Email, fallbackEmail)
		b.UserPhone = orFallback(raw.User.Phone, fallbackPhone)
	}
	if raw.Car != nil {
		b.CarID = orFallback(raw.Car.ID, fallbackNA)
		b.CarBrand = orFallback(raw.Car.Brand, fallbackNA)
		b.CarModel = orFallback(raw.Car.Model, fallbackNA)
		if raw.Car.Year != 0 {
			b.CarYear = strconv.Itoa(raw.Car.Year)
		}
	}
	if raw.Date != nil {
		b.Date = *raw.Date
	}
	if raw.CreatedAt != nil {
		b.CreatedAt = *raw.CreatedAt
	} else {
		b.CreatedAt = time.Now().UTC()
	}
	return b
}

func orFallback(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
