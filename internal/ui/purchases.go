package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/skleeno/showroom-cli/internal/api"
	"github.com/skleeno/showroom-cli/internal/collection"
	"github.com/skleeno/showroom-cli/internal/ui/components"
)

// --- Messages ---

type purchasesLoadedMsg struct {
	gen   uint64
	items []api.Purchase
}
type purchasesLoadFailedMsg struct {
	gen uint64
	err error
}
type purchaseStatusSavedMsg struct{ purchase api.Purchase }
type purchaseStatusFailedMsg struct{ err error }

type purchasesView int

const (
	purchasesViewList purchasesView = iota
	purchasesViewDetail
)

// --- Purchases Model ---

type PurchasesModel struct {
	client       *api.Client
	coll         *collection.Collection[api.Purchase]
	filtered     []api.Purchase
	list         *components.List
	view         purchasesView
	detail       *api.Purchase
	searching    bool
	searchBuf    string
	statusFilter string

	changingStatus bool
	statusTarget   api.Purchase
	statusChoice   string
	savingStatus   bool

	width  int
	height int
}

func NewPurchasesModel(client *api.Client) PurchasesModel {
	return PurchasesModel{
		client:       client,
		coll:         collection.New[api.Purchase](),
		list:         components.NewList(12),
		view:         purchasesViewList,
		statusFilter: collection.StatusAll,
	}
}

func (m PurchasesModel) Init() tea.Cmd {
	gen := m.coll.BeginFetch()
	return m.loadPurchases(gen)
}

func (m PurchasesModel) loadPurchases(gen uint64) tea.Cmd {
	return func() tea.Msg {
		items, err := m.client.ListPurchases()
		if err != nil {
			return purchasesLoadFailedMsg{gen: gen, err: err}
		}
		return purchasesLoadedMsg{gen: gen, items: items}
	}
}

func (m PurchasesModel) Update(msg tea.Msg) (PurchasesModel, tea.Cmd) {
	switch msg := msg.(type) {
	case purchasesLoadedMsg:
		if m.coll.ApplyFetch(msg.gen, msg.items) {
			m.applyFilter()
		}
		return m, nil
	case purchasesLoadFailedMsg:
		m.coll.FetchFailed(msg.gen, msg.err)
		return m, nil
	case purchaseStatusSavedMsg:
		// No optimistic change was made; install the confirmed record.
		m.savingStatus = false
		m.coll.Replace(msg.purchase)
		if m.detail != nil && m.detail.ID == msg.purchase.ID {
			p := msg.purchase
			m.detail = &p
		}
		m.applyFilter()
		return m, nil
	case purchaseStatusFailedMsg:
		m.savingStatus = false
		m.coll.SetErr(msg.err.Error())
		return m, nil

	case tea.KeyMsg:
		if m.changingStatus {
			return m.handleStatusPicker(msg)
		}
		if m.view == purchasesViewDetail {
			return m.handleDetailKeys(msg)
		}
		return m.handleListKeys(msg)
	}
	return m, nil
}

func (m PurchasesModel) View() string {
	if m.changingStatus {
		if m.savingStatus {
			return components.Indent(components.CenterLine(MutedStyle.Render("Updating status..."), m.width), 1)
		}
		return components.Indent(components.PickerDialog("Purchase Status", m.statusChoice), 1)
	}
	var body string
	if m.view == purchasesViewDetail {
		body = m.renderDetail()
	} else {
		body = m.renderList()
	}
	return components.Indent(body, 1)
}

// --- List ---

func (m *PurchasesModel) applyFilter() {
	m.filtered = collection.Filter(m.coll.Items(), m.statusFilter, m.searchBuf, func(p api.Purchase) []string {
		return []string{p.UserName, p.UserEmail, p.CarDetails, p.TransactionID}
	})
	labels := make([]string, len(m.filtered))
	for i, p := range m.filtered {
		labels[i] = formatPurchaseLine(p)
	}
	m.list.SetItems(labels)
}

func formatPurchaseLine(p api.Purchase) string {
	return fmt.Sprintf("%s · %s · %s", p.UserName, p.CarDetails, formatMoney(p.PurchaseAmount))
}

func (m PurchasesModel) renderList() string {
	if m.coll.Loading() && m.coll.Len() == 0 {
		return MutedStyle.Render("Loading purchases...")
	}

	var content string
	if len(m.filtered) == 0 {
		content = MutedStyle.Render("No purchases found.")
	} else {
		var rows strings.Builder
		visible := m.list.Visible()
		for i := range visible {
			absIdx := m.list.RelToAbs(i)
			p := m.filtered[absIdx]
			line := formatPurchaseLine(p)
			if m.list.IsSelected(absIdx) {
				rows.WriteString(SelectedStyle.Render("  > "+line) + " " + StatusBadge(p.Status))
			} else {
				rows.WriteString(NormalStyle.Render("    "+line) + " " + StatusBadge(p.Status))
			}
			if i < len(visible)-1 {
				rows.WriteString("\n")
			}
		}
		content = rows.String()
	}

	searchDisplay := m.searchBuf
	if m.searching {
		searchDisplay += "█"
	}
	countLine := MutedStyle.Render(filterCountLine(len(m.filtered), m.coll.Len(), m.statusFilter, searchDisplay))
	box := components.TitledBox("Purchases", countLine+"\n\n"+content, m.width)
	if m.coll.Err() != "" {
		box += "\n\n" + components.ErrorBox("Error", m.coll.Err(), m.width)
	}
	return box
}

func (m PurchasesModel) handleListKeys(msg tea.KeyMsg) (PurchasesModel, tea.Cmd) {
	if m.searching {
		return m.handleSearchKeys(msg)
	}
	switch {
	case isQuit(msg):
		return m, tea.Quit
	case isDown(msg):
		m.list.Down()
	case isUp(msg):
		m.list.Up()
	case isEnter(msg):
		if p, ok := m.selectedPurchase(); ok {
			m.detail = &p
			m.view = purchasesViewDetail
		}
	case isKey(msg, "/"):
		m.searching = true
	case isKey(msg, "s"):
		if p, ok := m.selectedPurchase(); ok {
			m.startStatusPicker(p)
		}
	case isKey(msg, "f"):
		m.statusFilter = cycleFilter(api.PurchaseStatuses, m.statusFilter)
		m.applyFilter()
	case isKey(msg, "r"):
		gen := m.coll.BeginFetch()
		return m, m.loadPurchases(gen)
	case isBack(msg):
		if m.searchBuf != "" || m.statusFilter != collection.StatusAll {
			m.searchBuf = ""
			m.statusFilter = collection.StatusAll
			m.applyFilter()
		}
	}
	return m, nil
}

// handleSearchKeys owns every key while the search prompt is open, so
// query characters never collide with command keys.
func (m PurchasesModel) handleSearchKeys(msg tea.KeyMsg) (PurchasesModel, tea.Cmd) {
	switch {
	case isEnter(msg):
		m.searching = false
	case isBack(msg):
		m.searching = false
		m.searchBuf = ""
		m.applyFilter()
	case isKey(msg, "backspace", "delete"):
		m.searchBuf = dropLastRune(m.searchBuf)
		m.applyFilter()
	default:
		ch := msg.String()
		if len(ch) == 1 {
			if ch == " " && m.searchBuf == "" {
				return m, nil
			}
			m.searchBuf += ch
			m.applyFilter()
		}
	}
	return m, nil
}

func (m PurchasesModel) selectedPurchase() (api.Purchase, bool) {
	if idx := m.list.Selected(); idx < len(m.filtered) {
		return m.filtered[idx], true
	}
	return api.Purchase{}, false
}

// --- Status Change ---

func (m *PurchasesModel) startStatusPicker(p api.Purchase) {
	m.changingStatus = true
	m.statusTarget = p
	m.statusChoice = p.Status
	if !api.PurchaseStatuses.Valid(m.statusChoice) {
		m.statusChoice = api.PurchaseStatuses[0]
	}
	m.savingStatus = false
}

func (m PurchasesModel) handleStatusPicker(msg tea.KeyMsg) (PurchasesModel, tea.Cmd) {
	if m.savingStatus {
		return m, nil
	}
	switch {
	case isBack(msg):
		m.changingStatus = false
	case isLeft(msg):
		m.statusChoice = api.PurchaseStatuses.Prev(m.statusChoice)
	case isRight(msg), isSpace(msg):
		m.statusChoice = api.PurchaseStatuses.Next(m.statusChoice)
	case isEnter(msg):
		status := m.statusChoice
		target := m.statusTarget
		if status == target.Status {
			m.changingStatus = false
			return m, nil
		}
		m.savingStatus = true
		m.changingStatus = false
		m.coll.ClearErr()
		return m, func() tea.Msg {
			p, err := m.client.UpdatePurchaseStatus(target.ID, status)
			if err != nil {
				return purchaseStatusFailedMsg{err: err}
			}
			return purchaseStatusSavedMsg{purchase: *p}
		}
	}
	return m, nil
}

// --- Detail ---

func (m PurchasesModel) renderDetail() string {
	if m.detail == nil {
		return m.renderList()
	}
	p := m.detail
	rows := []components.TableRow{
		{Label: "ID", Value: p.ID},
		{Label: "Customer", Value: p.UserName},
		{Label: "Email", Value: p.UserEmail},
		{Label: "Phone", Value: p.UserPhone},
		{Label: "Vehicle", Value: p.CarDetails},
		{Label: "Amount", Value: formatMoney(p.PurchaseAmount)},
		{Label: "Payment", Value: p.PaymentMethod},
		{Label: "Transaction", Value: p.TransactionID},
		{Label: "Status", Value: p.Status},
	}
	if !p.PurchaseDate.IsZero() {
		rows = append(rows, components.TableRow{Label: "Date", Value: p.PurchaseDate.Format("2006-01-02 15:04")})
	}
	return components.Table("Purchase", rows, m.width)
}

func (m PurchasesModel) handleDetailKeys(msg tea.KeyMsg) (PurchasesModel, tea.Cmd) {
	switch {
	case isBack(msg):
		m.detail = nil
		m.view = purchasesViewList
	case isKey(msg, "s"):
		if m.detail != nil {
			m.startStatusPicker(*m.detail)
		}
	}
	return m, nil
}
