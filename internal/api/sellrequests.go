package api

import "fmt"

// --- Sell Request Methods ---

// ListSellRequests fetches all sell requests in server order.
func (c *Client) ListSellRequests() ([]SellRequest, error) {
	data, err := c.get("/api/sell-requests")
	if err != nil {
		return nil, err
	}
	return decodeList[SellRequest](data)
}

// UpdateSellRequestStatus sends a status-only patch and returns the
// server's updated request.
func (c *Client) UpdateSellRequestStatus(id, status string) (*SellRequest, error) {
	if !SellRequestStatuses.Valid(status) {
		return nil, fmt.Errorf("invalid sell request status %q (want %s)", status, SellRequestStatuses)
	}
	data, err := c.patch(fmt.Sprintf("/api/admin/sell-requests/%s", id), map[string]string{"status": status})
	if err != nil {
		return nil, err
	}
	return decodeOne[SellRequest](data)
}
