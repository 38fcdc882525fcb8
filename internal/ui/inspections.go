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

type inspectionsLoadedMsg struct {
	gen   uint64
	items []api.InspectionBooking
}
type inspectionsLoadFailedMsg struct {
	gen uint64
	err error
}
type inspectionStatusSavedMsg struct{ booking api.InspectionBooking }
type inspectionStatusFailedMsg struct {
	snap []api.InspectionBooking
	err  error
}

type inspectionsView int

const (
	inspectionsViewList inspectionsView = iota
	inspectionsViewDetail
)

// --- Inspections Model ---

type InspectionsModel struct {
	client       *api.Client
	coll         *collection.Collection[api.InspectionBooking]
	filtered     []api.InspectionBooking
	list         *components.List
	view         inspectionsView
	detail       *api.InspectionBooking
	searching    bool
	searchBuf    string
	statusFilter string

	changingStatus bool
	statusTarget   api.InspectionBooking
	statusBuf      string

	width  int
	height int
}

func NewInspectionsModel(client *api.Client) InspectionsModel {
	return InspectionsModel{
		client:       client,
		coll:         collection.New[api.InspectionBooking](),
		list:         components.NewList(12),
		view:         inspectionsViewList,
		statusFilter: collection.StatusAll,
	}
}

func (m InspectionsModel) Init() tea.Cmd {
	gen := m.coll.BeginFetch()
	return m.loadInspections(gen)
}

func (m InspectionsModel) loadInspections(gen uint64) tea.Cmd {
	return func() tea.Msg {
		items, err := m.client.ListInspections()
		if err != nil {
			return inspectionsLoadFailedMsg{gen: gen, err: err}
		}
		return inspectionsLoadedMsg{gen: gen, items: items}
	}
}

func (m InspectionsModel) Update(msg tea.Msg) (InspectionsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case inspectionsLoadedMsg:
		if m.coll.ApplyFetch(msg.gen, msg.items) {
			m.applyFilter()
		}
		return m, nil
	case inspectionsLoadFailedMsg:
		m.coll.FetchFailed(msg.gen, msg.err)
		return m, nil
	case inspectionStatusSavedMsg:
		// The booking was already patched optimistically; swap in the
		// server's canonical copy.
		m.coll.Replace(msg.booking)
		if m.detail != nil && m.detail.ID == msg.booking.ID {
			booking := msg.booking
			m.detail = &booking
		}
		m.applyFilter()
		return m, nil
	case inspectionStatusFailedMsg:
		m.coll.Rollback(msg.snap, msg.err)
		if m.detail != nil {
			for _, b := range msg.snap {
				if b.ID == m.detail.ID {
					restored := b
					m.detail = &restored
					break
				}
			}
		}
		m.applyFilter()
		return m, nil

	case tea.KeyMsg:
		if m.changingStatus {
			return m.handleStatusInput(msg)
		}
		if m.view == inspectionsViewDetail {
			return m.handleDetailKeys(msg)
		}
		return m.handleListKeys(msg)
	}
	return m, nil
}

func (m InspectionsModel) View() string {
	if m.changingStatus {
		title := fmt.Sprintf("New Status (%s)", api.InspectionStatuses)
		return components.Indent(components.InputDialog(title, m.statusBuf), 1)
	}
	var body string
	if m.view == inspectionsViewDetail {
		body = m.renderDetail()
	} else {
		body = m.renderList()
	}
	return components.Indent(body, 1)
}

// --- List ---

func (m *InspectionsModel) applyFilter() {
	m.filtered = collection.Filter(m.coll.Items(), m.statusFilter, m.searchBuf, func(b api.InspectionBooking) []string {
		return []string{b.UserName, b.UserEmail, b.UserPhone, b.CarBrand, b.CarModel, b.Location}
	})
	labels := make([]string, len(m.filtered))
	for i, b := range m.filtered {
		labels[i] = formatInspectionLine(b)
	}
	m.list.SetItems(labels)
}

func formatInspectionLine(b api.InspectionBooking) string {
	when := "no date"
	if !b.Date.IsZero() {
		when = b.Date.Format("Jan 02 15:04")
	}
	return fmt.Sprintf("%s · %s %s · %s", b.UserName, b.CarBrand, b.CarModel, when)
}

func (m InspectionsModel) renderList() string {
	if m.coll.Loading() && m.coll.Len() == 0 {
		return MutedStyle.Render("Loading bookings...")
	}

	var content string
	if len(m.filtered) == 0 {
		content = MutedStyle.Render("No bookings found.")
	} else {
		var rows strings.Builder
		visible := m.list.Visible()
		for i := range visible {
			absIdx := m.list.RelToAbs(i)
			b := m.filtered[absIdx]
			line := formatInspectionLine(b)
			if m.list.IsSelected(absIdx) {
				rows.WriteString(SelectedStyle.Render("  > "+line) + " " + StatusBadge(b.Status))
			} else {
				rows.WriteString(NormalStyle.Render("    "+line) + " " + StatusBadge(b.Status))
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
	box := components.TitledBox("Inspection Bookings", countLine+"\n\n"+content, m.width)
	if m.coll.Err() != "" {
		box += "\n\n" + components.ErrorBox("Error", m.coll.Err(), m.width)
	}
	return box
}

func (m InspectionsModel) handleListKeys(msg tea.KeyMsg) (InspectionsModel, tea.Cmd) {
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
		if b, ok := m.selectedBooking(); ok {
			m.detail = &b
			m.view = inspectionsViewDetail
		}
	case isKey(msg, "/"):
		m.searching = true
	case isKey(msg, "s"):
		if b, ok := m.selectedBooking(); ok {
			m.changingStatus = true
			m.statusTarget = b
			m.statusBuf = ""
		}
	case isKey(msg, "f"):
		m.statusFilter = cycleFilter(api.InspectionStatuses, m.statusFilter)
		m.applyFilter()
	case isKey(msg, "r"):
		gen := m.coll.BeginFetch()
		return m, m.loadInspections(gen)
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
func (m InspectionsModel) handleSearchKeys(msg tea.KeyMsg) (InspectionsModel, tea.Cmd) {
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

func (m InspectionsModel) selectedBooking() (api.InspectionBooking, bool) {
	if idx := m.list.Selected(); idx < len(m.filtered) {
		return m.filtered[idx], true
	}
	return api.InspectionBooking{}, false
}

// --- Status Change ---

func (m InspectionsModel) handleStatusInput(msg tea.KeyMsg) (InspectionsModel, tea.Cmd) {
	switch {
	case isBack(msg):
		m.changingStatus = false
		m.statusBuf = ""
	case isEnter(msg):
		status := strings.ToLower(strings.TrimSpace(m.statusBuf))
		m.changingStatus = false
		m.statusBuf = ""
		// Reject bad input locally; no request, no collection change.
		if !api.InspectionStatuses.Valid(status) {
			m.coll.SetErr(fmt.Sprintf("invalid status %q (want %s)", status, api.InspectionStatuses))
			return m, nil
		}
		m.coll.ClearErr()

		target := m.statusTarget
		snap := m.coll.Snapshot()
		m.coll.Patch(target.ID, func(b api.InspectionBooking) api.InspectionBooking {
			b.Status = status
			return b
		})
		if m.detail != nil && m.detail.ID == target.ID {
			updated := *m.detail
			updated.Status = status
			m.detail = &updated
		}
		m.applyFilter()
		return m, func() tea.Msg {
			booking, err := m.client.UpdateInspectionStatus(target.ID, status)
			if err != nil {
				return inspectionStatusFailedMsg{snap: snap, err: err}
			}
			return inspectionStatusSavedMsg{booking: *booking}
		}
	case isKey(msg, "backspace"):
		m.statusBuf = dropLastRune(m.statusBuf)
	default:
		ch := msg.String()
		if len(ch) == 1 {
			m.statusBuf += ch
		}
	}
	return m, nil
}

// --- Detail ---

func (m InspectionsModel) renderDetail() string {
	if m.detail == nil {
		return m.renderList()
	}
	b := m.detail
	when := "-"
	if !b.Date.IsZero() {
		when = b.Date.Format("2006-01-02 15:04")
	}
	rows := []components.TableRow{
		{Label: "ID", Value: b.ID},
		{Label: "Customer", Value: b.UserName},
		{Label: "Email", Value: b.UserEmail},
		{Label: "Phone", Value: b.UserPhone},
		{Label: "Vehicle", Value: fmt.Sprintf("%s %s %s", b.CarYear, b.CarBrand, b.CarModel)},
		{Label: "Location", Value: b.Location},
		{Label: "Date", Value: when},
		{Label: "Status", Value: b.Status},
	}
	if b.Note != "" && b.Note != "N/A" {
		rows = append(rows, components.TableRow{Label: "Note", Value: b.Note})
	}
	return components.Table("Inspection Booking", rows, m.width)
}

func (m InspectionsModel) handleDetailKeys(msg tea.KeyMsg) (InspectionsModel, tea.Cmd) {
	switch {
	case isBack(msg):
		m.detail = nil
		m.view = inspectionsViewList
	case isKey(msg, "s"):
		if m.detail != nil {
			m.changingStatus = true
			m.statusTarget = *m.detail
			m.statusBuf = ""
		}
	}
	return m, nil
}
