package api

import (
	"fmt"
	"net/http"
	"strconv"
)

// --- Car Methods ---

// ListCars fetches every vehicle listing in server order.
func (c *Client) ListCars() ([]Car, error) {
	data, err := c.get("/api/cars")
	if err != nil {
		return nil, err
	}
	return decodeList[Car](data)
}

// CreateCar uploads a new listing with its image attachments and
// returns the server's canonical record. The client never fabricates
// the identifier.
func (c *Client) CreateCar(draft CarDraft) (*Car, error) {
	data, _, err := c.doForm(http.MethodPost, "/api/admin/cars", carFormFields(draft), draft.Images)
	if err != nil {
		return nil, err
	}
	return decodeOne[Car](data)
}

// UpdateCar patches an existing listing and returns the server's
// canonical updated record.
func (c *Client) UpdateCar(id string, draft CarDraft) (*Car, error) {
	path := fmt.Sprintf("/api/admin/cars/%s", id)
	data, _, err := c.doForm(http.MethodPatch, path, carFormFields(draft), draft.Images)
	if err != nil {
		return nil, err
	}
	return decodeOne[Car](data)
}

// DeleteCar removes a listing. The server answers 204 with no body.
func (c *Client) DeleteCar(id string) error {
	_, err := c.del(fmt.Sprintf("/api/admin/cars/%s", id))
	return err
}

func carFormFields(draft CarDraft) map[string][]string {
	fields := map[string][]string{
		"brand":        {draft.Brand},
		"model":        {draft.Model},
		"year":         {strconv.Itoa(draft.Year)},
		"price":        {strconv.FormatFloat(draft.Price, 'f', -1, 64)},
		"mileage":      {strconv.Itoa(draft.Mileage)},
		"color":        {draft.Color},
		"fuelType":     {draft.FuelType},
		"transmission": {draft.Transmission},
		"description":  {draft.Description},
		"engine":       {draft.Engine},
		"condition":    {draft.Condition},
		"location":     {draft.Location},
		"status":       {draft.Status},
	}
	if len(draft.Features) > 0 {
		fields["features[]"] = draft.Features
	}
	return fields
}
