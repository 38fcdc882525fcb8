package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListSellRequests(t *testing.T) {
	_, client := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/sell-requests", r.URL.Path)
		w.Write(bare([]map[string]any{
			{"_id": "s1", "ownerName": "Ada", "brand": "Honda", "model": "Civic", "year": 2019, "status": "pending"},
		}))
	})

	requests, err := client.ListSellRequests()
	require.NoError(t, err)
	require.Len(t, requests, 1)
	assert.Equal(t, "Honda", requests[0].Brand)
	assert.Equal(t, "pending", requests[0].RecordStatus())
}

func TestUpdateSellRequestStatus(t *testing.T) {
	_, client := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/api/admin/sell-requests/s1", r.URL.Path)

		var body map[string]string
		json.NewDecoder(r.Body).Decode(&body)
		assert.Equal(t, "approved", body["status"])

		w.Write(bare(map[string]any{"_id": "s1", "status": "approved"}))
	})

	req, err := client.UpdateSellRequestStatus("s1", "approved")
	require.NoError(t, err)
	assert.Equal(t, "approved", req.Status)
}

func TestUpdateSellRequestStatusRejectsInvalid(t *testing.T) {
	called := false
	_, client := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	_, err := client.UpdateSellRequestStatus("s1", "declined")
	assert.Error(t, err)
	assert.False(t, called)
}
