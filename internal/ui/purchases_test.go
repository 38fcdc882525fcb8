package ui

import (
	"encoding/json"
	"net/http"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skleeno/showroom-cli/internal/api"
)

func testPurchaseFixtures() []api.Purchase {
	return []api.Purchase{
		{ID: "pur-1", UserName: "Ada Lovelace", CarDetails: "2021 Toyota Corolla", PurchaseAmount: 24999.5, Status: "pending", TransactionID: "txn-100"},
		{ID: "pur-2", UserName: "Alan Turing", CarDetails: "2019 Honda Civic", PurchaseAmount: 18500, Status: "completed", TransactionID: "txn-101"},
	}
}

func loadedPurchasesModel(t *testing.T, client *api.Client) PurchasesModel {
	m := NewPurchasesModel(client)
	cmd := m.Init()
	require.NotNil(t, cmd)
	m, _ = m.Update(cmd())
	return m
}

func TestPurchasesLoadPopulatesList(t *testing.T) {
	_, client := testUIClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(testPurchaseFixtures())
	})

	m := loadedPurchasesModel(t, client)

	require.Len(t, m.filtered, 2)
	assert.Equal(t, "pur-1", m.filtered[0].ID)
}

func TestPurchasesPickerCyclesStatuses(t *testing.T) {
	_, client := testUIClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(testPurchaseFixtures())
	})

	m := loadedPurchasesModel(t, client)
	m, _ = m.Update(keyRunes("s"))
	require.True(t, m.changingStatus)
	assert.Equal(t, "pending", m.statusChoice)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, "completed", m.statusChoice)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, "failed", m.statusChoice, "left wraps around")
}

func TestPurchasesSameStatusClosesWithoutRequest(t *testing.T) {
	patched := false
	_, client := testUIClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPatch {
			patched = true
		}
		json.NewEncoder(w).Encode(testPurchaseFixtures())
	})

	m := loadedPurchasesModel(t, client)
	m, _ = m.Update(keyRunes("s"))
	m, cmd := m.Update(keyEnter())

	assert.Nil(t, cmd)
	assert.False(t, m.changingStatus)
	assert.False(t, patched)
}

func TestPurchasesStatusUpdateConfirmedByServer(t *testing.T) {
	var patchedPath string
	_, client := testUIClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPatch {
			patchedPath = r.URL.Path
			updated := testPurchaseFixtures()[0]
			updated.Status = "completed"
			json.NewEncoder(w).Encode(updated)
			return
		}
		json.NewEncoder(w).Encode(testPurchaseFixtures())
	})

	m := loadedPurchasesModel(t, client)
	m, _ = m.Update(keyRunes("s"))
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m, cmd := m.Update(keyEnter())
	require.NotNil(t, cmd)

	// Nothing changes until the server confirms.
	assert.Equal(t, "pending", m.coll.Items()[0].Status)

	m, _ = m.Update(cmd())

	assert.Equal(t, "/api/purchases/pur-1/status", patchedPath)
	assert.Equal(t, "completed", m.coll.Items()[0].Status)
	assert.False(t, m.savingStatus)
}

func TestPurchasesStatusUpdateFailureLeavesRecordUntouched(t *testing.T) {
	_, client := testUIClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPatch {
			w.WriteHeader(http.StatusUnprocessableEntity)
			json.NewEncoder(w).Encode(map[string]string{"message": "transaction locked"})
			return
		}
		json.NewEncoder(w).Encode(testPurchaseFixtures())
	})

	m := loadedPurchasesModel(t, client)
	m, _ = m.Update(keyRunes("s"))
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m, cmd := m.Update(keyEnter())
	require.NotNil(t, cmd)

	m, _ = m.Update(cmd())

	assert.Equal(t, "pending", m.coll.Items()[0].Status)
	assert.Contains(t, m.coll.Err(), "transaction locked")
}

func TestPurchasesSearchMatchesTransactionID(t *testing.T) {
	_, client := testUIClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(testPurchaseFixtures())
	})

	m := loadedPurchasesModel(t, client)
	m, _ = m.Update(keyRunes("/"))
	require.True(t, m.searching)
	for _, ch := range "txn-101" {
		m, _ = m.Update(keyRunes(string(ch)))
	}

	require.Len(t, m.filtered, 1)
	assert.Equal(t, "pur-2", m.filtered[0].ID)
}
