package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/skleeno/showroom-cli/internal/api"
	"github.com/skleeno/showroom-cli/internal/prefs"
	"github.com/skleeno/showroom-cli/internal/session"
	"github.com/skleeno/showroom-cli/internal/ui/components"
)

type tab int

const (
	tabCars tab = iota
	tabInspections
	tabPurchases
	tabSellRequests
	tabCount
)

var tabNames = [tabCount]string{"Cars", "Inspections", "Purchases", "Sell Requests"}

func tabFromName(name string) tab {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "inspections":
		return tabInspections
	case "purchases":
		return tabPurchases
	case "sell-requests", "sell requests":
		return tabSellRequests
	default:
		return tabCars
	}
}

// App is the root model. It owns one model per tab and routes messages
// to whichever is active; async result messages go to every tab since
// each screen only reacts to its own message types.
type App struct {
	client *api.Client
	active tab

	cars         CarsModel
	inspections  InspectionsModel
	purchases    PurchasesModel
	sellRequests SellRequestsModel

	width  int
	height int
}

func NewApp(client *api.Client, p prefs.Prefs) App {
	app := App{
		client:       client,
		active:       tabFromName(p.StartTab),
		cars:         NewCarsModel(client),
		inspections:  NewInspectionsModel(client),
		purchases:    NewPurchasesModel(client),
		sellRequests: NewSellRequestsModel(client),
	}
	app.cars.confirmDelete = p.ConfirmDelete
	if api.CarStatuses.Valid(p.StatusFilter) {
		app.cars.statusFilter = p.StatusFilter
	}
	if api.InspectionStatuses.Valid(p.StatusFilter) {
		app.inspections.statusFilter = p.StatusFilter
	}
	if api.PurchaseStatuses.Valid(p.StatusFilter) {
		app.purchases.statusFilter = p.StatusFilter
	}
	if api.SellRequestStatuses.Valid(p.StatusFilter) {
		app.sellRequests.statusFilter = p.StatusFilter
	}
	return app
}

func (a App) Init() tea.Cmd {
	return tea.Batch(
		a.cars.Init(),
		a.inspections.Init(),
		a.purchases.Init(),
		a.sellRequests.Init(),
	)
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.cars.width, a.cars.height = msg.Width, msg.Height
		a.inspections.width, a.inspections.height = msg.Width, msg.Height
		a.purchases.width, a.purchases.height = msg.Width, msg.Height
		a.sellRequests.width, a.sellRequests.height = msg.Width, msg.Height
		return a, nil

	case tea.KeyMsg:
		// Tab and quit chords never collide with text entry, so they
		// are handled here before the active screen sees the key.
		switch msg.String() {
		case "ctrl+c":
			return a, tea.Quit
		case "tab":
			a.active = (a.active + 1) % tabCount
			return a, nil
		case "shift+tab":
			a.active = (a.active - 1 + tabCount) % tabCount
			return a, nil
		}
		return a.updateActive(msg)

	default:
		return a.updateAll(msg)
	}
}

func (a App) updateActive(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch a.active {
	case tabInspections:
		a.inspections, cmd = a.inspections.Update(msg)
	case tabPurchases:
		a.purchases, cmd = a.purchases.Update(msg)
	case tabSellRequests:
		a.sellRequests, cmd = a.sellRequests.Update(msg)
	default:
		a.cars, cmd = a.cars.Update(msg)
	}
	return a, cmd
}

func (a App) updateAll(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 4)
	var cmd tea.Cmd
	a.cars, cmd = a.cars.Update(msg)
	cmds = append(cmds, cmd)
	a.inspections, cmd = a.inspections.Update(msg)
	cmds = append(cmds, cmd)
	a.purchases, cmd = a.purchases.Update(msg)
	cmds = append(cmds, cmd)
	a.sellRequests, cmd = a.sellRequests.Update(msg)
	cmds = append(cmds, cmd)
	return a, tea.Batch(cmds...)
}

func (a App) View() string {
	var b strings.Builder
	b.WriteString(centerBlock(RenderBanner(), a.width))
	b.WriteString("\n")
	b.WriteString(centerBlock(a.renderTabs(), a.width))
	b.WriteString("\n\n")

	if a.client.Session().State() == session.Expired {
		notice := components.ErrorBox("Session Expired",
			"Your credentials were rejected. Run 'showroom login' to sign in again.", a.width)
		b.WriteString(components.Indent(notice, 1))
		b.WriteString("\n\n")
	}

	switch a.active {
	case tabInspections:
		b.WriteString(a.inspections.View())
	case tabPurchases:
		b.WriteString(a.purchases.View())
	case tabSellRequests:
		b.WriteString(a.sellRequests.View())
	default:
		b.WriteString(a.cars.View())
	}

	b.WriteString("\n\n")
	b.WriteString(components.StatusBar(a.statusHints(), a.width))
	return b.String()
}

func (a App) renderTabs() string {
	parts := make([]string, 0, int(tabCount))
	for i := tab(0); i < tabCount; i++ {
		if i == a.active {
			parts = append(parts, TabActiveStyle.Render(tabNames[i]))
		} else {
			parts = append(parts, TabInactiveStyle.Render(tabNames[i]))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (a App) statusHints() []string {
	hints := []string{
		components.Hint("tab", "Switch"),
		components.Hint("↑/↓", "Navigate"),
		components.Hint("enter", "Details"),
	}
	if a.active == tabCars {
		hints = append(hints,
			components.Hint("n", "New"),
			components.Hint("e", "Edit"),
			components.Hint("d", "Delete"),
		)
	} else {
		hints = append(hints, components.Hint("s", "Status"))
	}
	hints = append(hints,
		components.Hint("f", "Filter"),
		components.Hint("r", "Refresh"),
		components.Hint("/", "Search"),
		components.Hint("q", "Quit"),
	)
	return hints
}

// centerBlock centers a multi-line block horizontally within width.
func centerBlock(block string, width int) string {
	if width <= 0 {
		return block
	}
	blockWidth := lipgloss.Width(block)
	if blockWidth >= width {
		return block
	}
	pad := strings.Repeat(" ", (width-blockWidth)/2)
	lines := strings.Split(block, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = pad + line
		}
	}
	return strings.Join(lines, "\n")
}
