package api

import "fmt"

// --- Purchase Methods ---

// ListPurchases fetches all purchase transactions in server order.
func (c *Client) ListPurchases() ([]Purchase, error) {
	data, err := c.get("/api/purchases")
	if err != nil {
		return nil, err
	}
	return decodeList[Purchase](data)
}

// UpdatePurchaseStatus sends a status-only patch and returns the
// server's updated purchase.
func (c *Client) UpdatePurchaseStatus(id, status string) (*Purchase, error) {
	if !PurchaseStatuses.Valid(status) {
		return nil, fmt.Errorf("invalid purchase status %q (want %s)", status, PurchaseStatuses)
	}
	data, err := c.patch(fmt.Sprintf("/api/purchases/%s/status", id), map[string]string{"status": status})
	if err != nil {
		return nil, err
	}
	return decodeOne[Purchase](data)
}
