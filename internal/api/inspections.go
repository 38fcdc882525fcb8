package api

import "fmt"

// --- Inspection Methods ---

// ListInspections fetches all inspection bookings, flattening the
// server's nested user/car sub-objects into the client shape.
func (c *Client) ListInspections() ([]InspectionBooking, error) {
	data, err := c.get("/api/inspections")
	if err != nil {
		return nil, err
	}
	raw, err := decodeList[rawInspection](data)
	if err != nil {
		return nil, err
	}
	bookings := make([]InspectionBooking, len(raw))
	for i, r := range raw {
		bookings[i] = transformInspection(r)
	}
	return bookings, nil
}

// UpdateInspectionStatus sends a minimal status-only patch and returns
// the server's updated booking.
func (c *Client) UpdateInspectionStatus(id, status string) (*InspectionBooking, error) {
	if !InspectionStatuses.Valid(status) {
		return nil, fmt.Errorf("invalid booking status %q (want %s)", status, InspectionStatuses)
	}
	data, err := c.patch(fmt.Sprintf("/api/inspections/%s/status", id), map[string]string{"status": status})
	if err != nil {
		return nil, err
	}
	raw, err := decodeOne[rawInspection](data)
	if err != nil {
		return nil, err
	}
	booking := transformInspection(*raw)
	return &booking, nil
}
