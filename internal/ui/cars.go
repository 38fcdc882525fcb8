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

type carsLoadedMsg struct {
	gen   uint64
	items []api.Car
}
type carsLoadFailedMsg struct {
	gen uint64
	err error
}
type carCreatedMsg struct{ car api.Car }
type carUpdatedMsg struct{ car api.Car }
type carDeletedMsg struct{ id string }
type carDeleteFailedMsg struct {
	snap []api.Car
	err  error
}
type carFormErrMsg struct{ err error }

type carsView int

const (
	carsViewList carsView = iota
	carsViewDetail
	carsViewAdd
	carsViewEdit
)

const (
	carFieldBrand = iota
	carFieldModel
	carFieldYear
	carFieldPrice
	carFieldMileage
	carFieldColor
	carFieldFuel
	carFieldTransmission
	carFieldEngine
	carFieldCondition
	carFieldLocation
	carFieldFeatures
	carFieldDescription
	carFieldStatus
	carFieldCount
)

func newCarFormFields() []formField {
	return []formField{
		{label: "Brand"},
		{label: "Model"},
		{label: "Year"},
		{label: "Price"},
		{label: "Mileage"},
		{label: "Color"},
		{label: "Fuel Type"},
		{label: "Transmission"},
		{label: "Engine"},
		{label: "Condition"},
		{label: "Location"},
		{label: "Features (comma separated)"},
		{label: "Description"},
	}
}

// --- Cars Model ---

type CarsModel struct {
	client       *api.Client
	coll         *collection.Collection[api.Car]
	filtered     []api.Car
	list         *components.List
	view         carsView
	detail       *api.Car
	searching    bool
	searchBuf    string
	statusFilter string

	confirmingDelete bool
	confirmDelete    bool
	deleteTarget     api.Car

	fields      []formField
	focus       int
	statusValue string
	editingID   string
	saving      bool
	formErr     string

	width  int
	height int
}

func NewCarsModel(client *api.Client) CarsModel {
	return CarsModel{
		client:        client,
		coll:          collection.New[api.Car](),
		list:          components.NewList(12),
		view:          carsViewList,
		statusFilter:  collection.StatusAll,
		confirmDelete: true,
		fields:        newCarFormFields(),
	}
}

func (m CarsModel) Init() tea.Cmd {
	gen := m.coll.BeginFetch()
	return m.loadCars(gen)
}

func (m CarsModel) loadCars(gen uint64) tea.Cmd {
	return func() tea.Msg {
		items, err := m.client.ListCars()
		if err != nil {
			return carsLoadFailedMsg{gen: gen, err: err}
		}
		return carsLoadedMsg{gen: gen, items: items}
	}
}

func (m CarsModel) Update(msg tea.Msg) (CarsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case carsLoadedMsg:
		if m.coll.ApplyFetch(msg.gen, msg.items) {
			m.applyFilter()
		}
		return m, nil
	case carsLoadFailedMsg:
		m.coll.FetchFailed(msg.gen, msg.err)
		return m, nil
	case carCreatedMsg:
		m.coll.Prepend(msg.car)
		m.saving = false
		m.resetForm()
		m.view = carsViewList
		m.applyFilter()
		m.list.Reset()
		return m, nil
	case carUpdatedMsg:
		m.coll.Replace(msg.car)
		m.saving = false
		m.resetForm()
		m.detail = nil
		m.view = carsViewList
		m.applyFilter()
		return m, nil
	case carDeletedMsg:
		return m, nil
	case carDeleteFailedMsg:
		m.coll.Rollback(msg.snap, msg.err)
		m.applyFilter()
		return m, nil
	case carFormErrMsg:
		// Keep the form open so input is not lost.
		m.saving = false
		m.formErr = msg.err.Error()
		return m, nil

	case tea.KeyMsg:
		if m.confirmingDelete {
			return m.handleDeleteConfirmKeys(msg)
		}
		switch m.view {
		case carsViewAdd, carsViewEdit:
			return m.handleFormKeys(msg)
		case carsViewDetail:
			return m.handleDetailKeys(msg)
		default:
			return m.handleListKeys(msg)
		}
	}
	return m, nil
}

func (m CarsModel) View() string {
	if m.confirmingDelete {
		body := fmt.Sprintf("Delete %d %s %s?", m.deleteTarget.Year, m.deleteTarget.Brand, m.deleteTarget.Model)
		return components.Indent(components.ConfirmDialog("Delete Listing", body), 1)
	}
	var body string
	switch m.view {
	case carsViewAdd:
		body = m.renderForm("Add Listing")
	case carsViewEdit:
		body = m.renderForm("Edit Listing")
	case carsViewDetail:
		body = m.renderDetail()
	default:
		body = m.renderList()
	}
	return components.Indent(body, 1)
}

// --- List ---

func (m *CarsModel) applyFilter() {
	m.filtered = collection.Filter(m.coll.Items(), m.statusFilter, m.searchBuf, func(c api.Car) []string {
		return []string{strconv.Itoa(c.Year), c.Brand, c.Model}
	})
	labels := make([]string, len(m.filtered))
	for i, c := range m.filtered {
		labels[i] = formatCarLine(c)
	}
	m.list.SetItems(labels)
}

func formatCarLine(c api.Car) string {
	return fmt.Sprintf("%d %s %s · %s", c.Year, c.Brand, c.Model, formatMoney(c.Price))
}

func (m CarsModel) renderList() string {
	if m.coll.Loading() && m.coll.Len() == 0 {
		return MutedStyle.Render("Loading listings...")
	}

	var content string
	if len(m.filtered) == 0 {
		content = MutedStyle.Render("No listings found.")
	} else {
		var rows strings.Builder
		visible := m.list.Visible()
		for i := range visible {
			absIdx := m.list.RelToAbs(i)
			c := m.filtered[absIdx]
			line := formatCarLine(c)
			if m.list.IsSelected(absIdx) {
				rows.WriteString(SelectedStyle.Render("  > "+line) + " " + StatusBadge(c.Status))
			} else {
				rows.WriteString(NormalStyle.Render("    "+line) + " " + StatusBadge(c.Status))
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
	box := components.TitledBox("Cars", countLine+"\n\n"+content, m.width)
	if m.coll.Err() != "" {
		box += "\n\n" + components.ErrorBox("Error", m.coll.Err(), m.width)
	}
	return box
}

func (m CarsModel) handleListKeys(msg tea.KeyMsg) (CarsModel, tea.Cmd) {
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
		if car, ok := m.selectedCar(); ok {
			m.detail = &car
			m.view = carsViewDetail
		}
	case isKey(msg, "/"):
		m.searching = true
	case isKey(msg, "n"):
		m.resetForm()
		m.view = carsViewAdd
	case isKey(msg, "e"):
		if car, ok := m.selectedCar(); ok {
			m.startEdit(car)
			m.view = carsViewEdit
		}
	case isKey(msg, "d"):
		if car, ok := m.selectedCar(); ok {
			if !m.confirmDelete {
				return m.deleteCar(car)
			}
			m.confirmingDelete = true
			m.deleteTarget = car
		}
	case isKey(msg, "f"):
		m.statusFilter = cycleFilter(api.CarStatuses, m.statusFilter)
		m.applyFilter()
	case isKey(msg, "r"):
		gen := m.coll.BeginFetch()
		return m, m.loadCars(gen)
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
func (m CarsModel) handleSearchKeys(msg tea.KeyMsg) (CarsModel, tea.Cmd) {
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

func (m CarsModel) selectedCar() (api.Car, bool) {
	if idx := m.list.Selected(); idx < len(m.filtered) {
		return m.filtered[idx], true
	}
	return api.Car{}, false
}

// --- Delete ---

func (m CarsModel) handleDeleteConfirmKeys(msg tea.KeyMsg) (CarsModel, tea.Cmd) {
	switch {
	case isKey(msg, "y"):
		m.confirmingDelete = false
		return m.deleteCar(m.deleteTarget)
	case isKey(msg, "n"), isBack(msg):
		m.confirmingDelete = false
	}
	return m, nil
}

// deleteCar removes the listing locally right away and issues the delete.
// On failure the snapshot carried by the message restores the old state.
func (m CarsModel) deleteCar(target api.Car) (CarsModel, tea.Cmd) {
	m.coll.ClearErr()
	snap, removed := m.coll.Remove(target.ID)
	if !removed {
		return m, nil
	}
	m.applyFilter()
	return m, func() tea.Msg {
		if err := m.client.DeleteCar(target.ID); err != nil {
			return carDeleteFailedMsg{snap: snap, err: err}
		}
		return carDeletedMsg{id: target.ID}
	}
}

// --- Detail ---

func (m CarsModel) renderDetail() string {
	if m.detail == nil {
		return m.renderList()
	}
	c := m.detail
	rows := []components.TableRow{
		{Label: "ID", Value: c.ID},
		{Label: "Brand", Value: c.Brand},
		{Label: "Model", Value: c.Model},
		{Label: "Year", Value: strconv.Itoa(c.Year)},
		{Label: "Price", Value: formatMoney(c.Price)},
		{Label: "Mileage", Value: fmt.Sprintf("%d km", c.Mileage)},
		{Label: "Status", Value: c.Status},
	}
	if c.Color != "" {
		rows = append(rows, components.TableRow{Label: "Color", Value: c.Color})
	}
	if c.FuelType != "" {
		rows = append(rows, components.TableRow{Label: "Fuel", Value: c.FuelType})
	}
	if c.Transmission != "" {
		rows = append(rows, components.TableRow{Label: "Transmission", Value: c.Transmission})
	}
	if c.Engine != "" {
		rows = append(rows, components.TableRow{Label: "Engine", Value: c.Engine})
	}
	if c.Condition != "" {
		rows = append(rows, components.TableRow{Label: "Condition", Value: c.Condition})
	}
	if c.Location != "" {
		rows = append(rows, components.TableRow{Label: "Location", Value: c.Location})
	}
	if len(c.Features) > 0 {
		rows = append(rows, components.TableRow{Label: "Features", Value: strings.Join(c.Features, ", ")})
	}
	if len(c.Images) > 0 {
		rows = append(rows, components.TableRow{Label: "Images", Value: strconv.Itoa(len(c.Images))})
	}
	if !c.CreatedAt.IsZero() {
		rows = append(rows, components.TableRow{Label: "Listed", Value: c.CreatedAt.Format("2006-01-02 15:04")})
	}

	sections := []string{components.Table("Listing", rows, m.width)}
	if strings.TrimSpace(c.Description) != "" {
		sections = append(sections, components.TitledBox("Description", NormalStyle.Render(c.Description), m.width))
	}
	return strings.Join(sections, "\n\n")
}

func (m CarsModel) handleDetailKeys(msg tea.KeyMsg) (CarsModel, tea.Cmd) {
	switch {
	case isBack(msg):
		m.detail = nil
		m.view = carsViewList
	case isKey(msg, "e"):
		if m.detail != nil {
			m.startEdit(*m.detail)
			m.view = carsViewEdit
		}
	case isKey(msg, "d"):
		if m.detail != nil {
			target := *m.detail
			m.detail = nil
			m.view = carsViewList
			if !m.confirmDelete {
				return m.deleteCar(target)
			}
			m.confirmingDelete = true
			m.deleteTarget = target
		}
	}
	return m, nil
}

// --- Form ---

func (m *CarsModel) resetForm() {
	m.fields = newCarFormFields()
	m.focus = 0
	m.statusValue = "available"
	m.editingID = ""
	m.saving = false
	m.formErr = ""
}

func (m *CarsModel) startEdit(c api.Car) {
	m.resetForm()
	m.editingID = c.ID
	m.fields[carFieldBrand].value = c.Brand
	m.fields[carFieldModel].value = c.Model
	m.fields[carFieldYear].value = strconv.Itoa(c.Year)
	m.fields[carFieldPrice].value = strconv.FormatFloat(c.Price, 'f', -1, 64)
	m.fields[carFieldMileage].value = strconv.Itoa(c.Mileage)
	m.fields[carFieldColor].value = c.Color
	m.fields[carFieldFuel].value = c.FuelType
	m.fields[carFieldTransmission].value = c.Transmission
	m.fields[carFieldEngine].value = c.Engine
	m.fields[carFieldCondition].value = c.Condition
	m.fields[carFieldLocation].value = c.Location
	m.fields[carFieldFeatures].value = strings.Join(c.Features, ", ")
	m.fields[carFieldDescription].value = c.Description
	if api.CarStatuses.Valid(c.Status) {
		m.statusValue = c.Status
	}
}

func (m CarsModel) handleFormKeys(msg tea.KeyMsg) (CarsModel, tea.Cmd) {
	if m.saving {
		return m, nil
	}
	switch {
	case isDown(msg):
		m.focus = (m.focus + 1) % carFieldCount
	case isUp(msg):
		m.focus = (m.focus - 1 + carFieldCount) % carFieldCount
	case isKey(msg, "ctrl+s"):
		return m.saveForm()
	case isBack(msg):
		m.resetForm()
		m.view = carsViewList
	case isKey(msg, "backspace"):
		if m.focus < carFieldStatus {
			f := &m.fields[m.focus]
			f.value = dropLastRune(f.value)
		}
	default:
		if m.focus == carFieldStatus {
			switch {
			case isLeft(msg):
				m.statusValue = api.CarStatuses.Prev(m.statusValue)
			case isRight(msg), isSpace(msg):
				m.statusValue = api.CarStatuses.Next(m.statusValue)
			}
			return m, nil
		}
		ch := msg.String()
		if len(ch) == 1 || ch == " " {
			m.fields[m.focus].value += ch
		}
	}
	return m, nil
}

func (m CarsModel) renderForm(title string) string {
	if m.saving {
		return components.CenterLine(MutedStyle.Render("Saving..."), m.width)
	}

	var b strings.Builder
	for i, f := range m.fields {
		if i == m.focus {
			b.WriteString(SelectedStyle.Render("> " + f.label + ":"))
			b.WriteString("\n")
			b.WriteString(NormalStyle.Render("  " + f.value))
			b.WriteString(AccentStyle.Render("█"))
		} else {
			b.WriteString(MutedStyle.Render("  " + f.label + ":"))
			b.WriteString("\n")
			val := f.value
			if val == "" {
				val = "-"
			}
			b.WriteString(NormalStyle.Render("  " + val))
		}
		b.WriteString("\n\n")
	}

	status := m.statusValue
	if m.focus == carFieldStatus {
		b.WriteString(SelectedStyle.Render("> Status:"))
	} else {
		b.WriteString(MutedStyle.Render("  Status:"))
	}
	b.WriteString("\n")
	b.WriteString(NormalStyle.Render("  " + status))

	if m.formErr != "" {
		b.WriteString("\n\n")
		b.WriteString(components.ErrorBox("Error", m.formErr, m.width))
	}
	return components.TitledBox(title, b.String(), m.width)
}

func (m CarsModel) saveForm() (CarsModel, tea.Cmd) {
	draft, err := m.buildDraft()
	if err != nil {
		m.formErr = err.Error()
		return m, nil
	}

	id := m.editingID
	m.saving = true
	m.formErr = ""
	return m, func() tea.Msg {
		if id == "" {
			car, err := m.client.CreateCar(draft)
			if err != nil {
				return carFormErrMsg{err}
			}
			return carCreatedMsg{car: *car}
		}
		car, err := m.client.UpdateCar(id, draft)
		if err != nil {
			return carFormErrMsg{err}
		}
		return carUpdatedMsg{car: *car}
	}
}

func (m CarsModel) buildDraft() (api.CarDraft, error) {
	brand := strings.TrimSpace(m.fields[carFieldBrand].value)
	model := strings.TrimSpace(m.fields[carFieldModel].value)
	if brand == "" || model == "" {
		return api.CarDraft{}, fmt.Errorf("brand and model are required")
	}
	year, err := strconv.Atoi(strings.TrimSpace(m.fields[carFieldYear].value))
	if err != nil {
		return api.CarDraft{}, fmt.Errorf("year must be a number")
	}
	price, err := strconv.ParseFloat(strings.TrimSpace(m.fields[carFieldPrice].value), 64)
	if err != nil {
		return api.CarDraft{}, fmt.Errorf("price must be a number")
	}
	mileage := 0
	if v := strings.TrimSpace(m.fields[carFieldMileage].value); v != "" {
		mileage, err = strconv.Atoi(v)
		if err != nil {
			return api.CarDraft{}, fmt.Errorf("mileage must be a number")
		}
	}

	var features []string
	for _, f := range strings.Split(m.fields[carFieldFeatures].value, ",") {
		if f = strings.TrimSpace(f); f != "" {
			features = append(features, f)
		}
	}

	return api.CarDraft{
		Brand:        brand,
		Model:        model,
		Year:         year,
		Price:        price,
		Mileage:      mileage,
		Color:        strings.TrimSpace(m.fields[carFieldColor].value),
		FuelType:     strings.TrimSpace(m.fields[carFieldFuel].value),
		Transmission: strings.TrimSpace(m.fields[carFieldTransmission].value),
		Engine:       strings.TrimSpace(m.fields[carFieldEngine].value),
		Condition:    strings.TrimSpace(m.fields[carFieldCondition].value),
		Location:     strings.TrimSpace(m.fields[carFieldLocation].value),
		Description:  strings.TrimSpace(m.fields[carFieldDescription].value),
		Features:     features,
		Status:       m.statusValue,
	}, nil
}
