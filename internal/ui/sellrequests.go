package ui

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/skleeno/showroom-cli/internal/api"
	"github.com/skleeno/showroom-cli/internal/collection"
	"github.com/skleeno/showroom-cli/internal/ui/components"
)

// --- Messages ---

type sellRequestsLoadedMsg struct {
	gen   uint64
	items []api.SellRequest
}
type sellRequestsLoadFailedMsg struct {
	gen uint64
	err error
}
type sellRequestStatusSavedMsg struct{ request api.SellRequest }
type sellRequestStatusFailedMsg struct{ err error }

type sellRequestsView int

const (
	sellRequestsViewList sellRequestsView = iota
	sellRequestsViewDetail
)

// --- Sell Requests Model ---

type SellRequestsModel struct {
	client       *api.Client
	coll         *collection.Collection[api.SellRequest]
	filtered     []api.SellRequest
	list         *components.List
	view         sellRequestsView
	detail       *api.SellRequest
	searching    bool
	searchBuf    string
	statusFilter string

	changingStatus bool
	statusTarget   api.SellRequest
	statusChoice   string
	savingStatus   bool

	width  int
	height int
}

func NewSellRequestsModel(client *api.Client) SellRequestsModel {
	return SellRequestsModel{
		client:       client,
		coll:         collection.New[api.SellRequest](),
		list:         components.NewList(12),
		view:         sellRequestsViewList,
		statusFilter: collection.StatusAll,
	}
}

func (m SellRequestsModel) Init() tea.Cmd {
	gen := m.coll.BeginFetch()
	return m.loadSellRequests(gen)
}

func (m SellRequestsModel) loadSellRequests(gen uint64) tea.Cmd {
	return func() tea.Msg {
		items, err := m.client.ListSellRequests()
		if err != nil {
			return sellRequestsLoadFailedMsg{gen: gen, err: err}
		}
		return sellRequestsLoadedMsg{gen: gen, items: items}
	}
}

func (m SellRequestsModel) Update(msg tea.Msg) (SellRequestsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case sellRequestsLoadedMsg:
		if m.coll.ApplyFetch(msg.gen, msg.items) {
			m.applyFilter()
		}
		return m, nil
	case sellRequestsLoadFailedMsg:
		m.coll.FetchFailed(msg.gen, msg.err)
		return m, nil
	case sellRequestStatusSavedMsg:
		m.savingStatus = false
		m.coll.Replace(msg.request)
		if m.detail != nil && m.detail.ID == msg.request.ID {
			r := msg.request
			m.detail = &r
		}
		m.applyFilter()
		return m, nil
	case sellRequestStatusFailedMsg:
		m.savingStatus = false
		m.coll.SetErr(msg.err.Error())
		return m, nil

	case tea.KeyMsg:
		if m.changingStatus {
			return m.handleStatusPicker(msg)
		}
		if m.view == sellRequestsViewDetail {
			return m.handleDetailKeys(msg)
		}
		return m.handleListKeys(msg)
	}
	return m, nil
}

func (m SellRequestsModel) View() string {
	if m.changingStatus {
		if m.savingStatus {
			return components.Indent(components.CenterLine(MutedStyle.Render("Updating status..."), m.width), 1)
		}
		return components.Indent(components.PickerDialog("Sell Request Status", m.statusChoice), 1)
	}
	var body string
	if m.view == sellRequestsViewDetail {
		body = m.renderDetail()
	} else {
		body = m.renderList()
	}
	return components.Indent(body, 1)
}

// --- List ---

func (m *SellRequestsModel) applyFilter() {
	m.filtered = collection.Filter(m.coll.Items(), m.statusFilter, m.searchBuf, func(r api.SellRequest) []string {
		return []string{r.OwnerName, r.OwnerEmail, r.Brand, r.Model}
	})
	labels := make([]string, len(m.filtered))
	for i, r := range m.filtered {
		labels[i] = formatSellRequestLine(r)
	}
	m.list.SetItems(labels)
}

func formatSellRequestLine(r api.SellRequest) string {
	return fmt.Sprintf("%s · %d %s %s · %s", r.OwnerName, r.Year, r.Brand, r.Model, formatMoney(r.Price))
}

func (m SellRequestsModel) renderList() string {
	if m.coll.Loading() && m.coll.Len() == 0 {
		return MutedStyle.Render("Loading sell requests...")
	}

	var content string
	if len(m.filtered) == 0 {
		content = MutedStyle.Render("No sell requests found.")
	} else {
		var rows strings.Builder
		visible := m.list.Visible()
		for i := range visible {
			absIdx := m.list.RelToAbs(i)
			r := m.filtered[absIdx]
			line := formatSellRequestLine(r)
			if m.list.IsSelected(absIdx) {
				rows.WriteString(SelectedStyle.Render("  > "+line) + " " + StatusBadge(r.Status))
			} else {
				rows.WriteString(NormalStyle.Render("    "+line) + " " + StatusBadge(r.Status))
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
	box := components.TitledBox("Sell Requests", countLine+"\n\n"+content, m.width)
	if m.coll.Err() != "" {
		box += "\n\n" + components.ErrorBox("Error", m.coll.Err(), m.width)
	}
	return box
}

func (m SellRequestsModel) handleListKeys(msg tea.KeyMsg) (SellRequestsModel, tea.Cmd) {
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
		if r, ok := m.selectedRequest(); ok {
			m.detail = &r
			m.view = sellRequestsViewDetail
		}
	case isKey(msg, "/"):
		m.searching = true
	case isKey(msg, "s"):
		if r, ok := m.selectedRequest(); ok {
			m.startStatusPicker(r)
		}
	case isKey(msg, "f"):
		m.statusFilter = cycleFilter(api.SellRequestStatuses, m.statusFilter)
		m.applyFilter()
	case isKey(msg, "r"):
		gen := m.coll.BeginFetch()
		return m, m.loadSellRequests(gen)
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
func (m SellRequestsModel) handleSearchKeys(msg tea.KeyMsg) (SellRequestsModel, tea.Cmd) {
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

func (m SellRequestsModel) selectedRequest() (api.SellRequest, bool) {
	if idx := m.list.Selected(); idx < len(m.filtered) {
		return m.filtered[idx], true
	}
	return api.SellRequest{}, false
}

// --- Status Change ---

func (m *SellRequestsModel) startStatusPicker(r api.SellRequest) {
	m.changingStatus = true
	m.statusTarget = r
	m.statusChoice = r.Status
	if !api.SellRequestStatuses.Valid(m.statusChoice) {
		m.statusChoice = api.SellRequestStatuses[0]
	}
	m.savingStatus = false
}

func (m SellRequestsModel) handleStatusPicker(msg tea.KeyMsg) (SellRequestsModel, tea.Cmd) {
	if m.savingStatus {
		return m, nil
	}
	switch {
	case isBack(msg):
		m.changingStatus = false
	case isLeft(msg):
		m.statusChoice = api.SellRequestStatuses.Prev(m.statusChoice)
	case isRight(msg), isSpace(msg):
		m.statusChoice = api.SellRequestStatuses.Next(m.statusChoice)
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
			r, err := m.client.UpdateSellRequestStatus(target.ID, status)
			if err != nil {
				return sellRequestStatusFailedMsg{err: err}
			}
			return sellRequestStatusSavedMsg{request: *r}
		}
	}
	return m, nil
}

// --- Detail ---

func (m SellRequestsModel) renderDetail() string {
	if m.detail == nil {
		return m.renderList()
	}
	r := m.detail
	rows := []components.TableRow{
		{Label: "ID", Value: r.ID},
		{Label: "Owner", Value: r.OwnerName},
		{Label: "Email", Value: r.OwnerEmail},
		{Label: "Phone", Value: r.OwnerPhone},
		{Label: "Vehicle", Value: fmt.Sprintf("%d %s %s", r.Year, r.Brand, r.Model)},
		{Label: "Asking", Value: formatMoney(r.Price)},
		{Label: "Mileage", Value: fmt.Sprintf("%d km", r.Mileage)},
		{Label: "Status", Value: r.Status},
	}
	if r.Engine != "" {
		rows = append(rows, components.TableRow{Label: "Engine", Value: r.Engine})
	}
	if r.Location != "" {
		rows = append(rows, components.TableRow{Label: "Location", Value: r.Location})
	}
	if len(r.Features) > 0 {
		rows = append(rows, components.TableRow{Label: "Features", Value: strings.Join(r.Features, ", ")})
	}
	photos := len(r.InteriorImages) + len(r.ExteriorImages)
	if photos > 0 {
		rows = append(rows, components.TableRow{Label: "Photos", Value: strconv.Itoa(photos)})
	}
	if !r.CreatedAt.IsZero() {
		rows = append(rows, components.TableRow{Label: "Submitted", Value: r.CreatedAt.Format("2006-01-02 15:04")})
	}

	sections := []string{components.Table("Sell Request", rows, m.width)}
	if strings.TrimSpace(r.Description) != "" {
		sections = append(sections, components.TitledBox("Description", NormalStyle.Render(r.Description), m.width))
	}
	return strings.Join(sections, "\n\n")
}

func (m SellRequestsModel) handleDetailKeys(msg tea.KeyMsg) (SellRequestsModel, tea.Cmd) {
	switch {
	case isBack(msg):
		m.detail = nil
		m.view = sellRequestsViewList
	case isKey(msg, "s"):
		if m.detail != nil {
			m.startStatusPicker(*m.detail)
		}
	}
	return m, nil
}
