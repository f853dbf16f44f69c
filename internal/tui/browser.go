package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/obadasoukiah/LibrarySystem-OOP-Project/internal/library"
)

// ItemRow wraps one catalog item for display in the browser list.
type ItemRow struct {
	Item library.Item
}

// FilterValue returns the string the list filters on.
func (r ItemRow) FilterValue() string {
	return fmt.Sprintf("%s %s %s", r.Item.Title(), variantName(r.Item), r.Item.Borrower())
}

func variantName(it library.Item) string {
	switch it.(type) {
	case *library.Book:
		return "Book"
	case *library.DVD:
		return "DVD"
	case *library.Magazine:
		return "Magazine"
	default:
		return "Item"
	}
}

// Column width constraints
const (
	variantWidth  = 8
	yearWidth     = 4
	minTitleWidth = 12
	maxTitleWidth = 48
	statusReserve = 20
	columnGap     = 1
)

// padOrTruncate pads s to exactly width visible chars, truncating with "…"
// if necessary. Rune count, not byte length, so UTF-8 titles align.
func padOrTruncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	runes := []rune(s)
	n := len(runes)
	if n > width {
		if width <= 1 {
			return "…"
		}
		return string(runes[:width-1]) + "…"
	}
	if n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}

type rowDelegate struct{}

func (d rowDelegate) Height() int                             { return 1 }
func (d rowDelegate) Spacing() int                            { return 0 }
func (d rowDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }

func (d rowDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	row, ok := item.(ItemRow)
	if !ok {
		return
	}

	listWidth := m.Width()
	if listWidth <= 0 {
		listWidth = 80
	}
	titleW := listWidth - 2 - variantWidth - yearWidth - 3*columnGap - statusReserve
	if titleW > maxTitleWidth {
		titleW = maxTitleWidth
	}
	if titleW < minTitleWidth {
		titleW = minTitleWidth
	}

	gap := strings.Repeat(" ", columnGap)
	variantCol := padOrTruncate(variantName(row.Item), variantWidth)
	titleCol := padOrTruncate(row.Item.Title(), titleW)
	yearCol := fmt.Sprintf("%4d", row.Item.Year())

	status := "Available"
	statusStyle := StyleAvailable
	if row.Item.IsBorrowed() {
		status = "Borrowed by " + row.Item.Borrower()
		statusStyle = StyleBorrowed
	}

	isCursor := index == m.Index()
	prefix := "  "
	if isCursor {
		prefix = StyleHighlight.Render("›") + " "
	}

	titleStyle := StyleNormal
	if isCursor {
		titleStyle = StyleHighlight
	}
	line := prefix + titleStyle.Render(titleCol) + gap + StyleVariant.Render(variantCol) +
		gap + StyleHelp.Render(yearCol) + gap + statusStyle.Render(status)
	_, _ = fmt.Fprint(w, line)
}

// keyMap defines keyboard shortcuts
type keyMap struct {
	quit     key.Binding
	details  key.Binding
	borrow   key.Binding
	doReturn key.Binding
	filter   key.Binding
}

var keys = keyMap{
	quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	details: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "details"),
	),
	borrow: key.NewBinding(
		key.WithKeys("b"),
		key.WithHelp("b", "borrow"),
	),
	doReturn: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "return"),
	),
	filter: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "filter"),
	),
}

// BrowserAction is what the operator asked for when the browser quit.
type BrowserAction string

const (
	ActionNone        BrowserAction = ""
	ActionShowDetails BrowserAction = "details"
	ActionBorrow      BrowserAction = "borrow"
	ActionReturn      BrowserAction = "return"
)

// BrowserResult holds the result of one browser session.
type BrowserResult struct {
	Action BrowserAction
	Row    *ItemRow
}

type model struct {
	list     list.Model
	quitting bool
	action   BrowserAction
	selected *ItemRow
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Don't handle keys while the filter input is active
		if m.list.FilterState() == list.Filtering {
			break
		}

		switch {
		case key.Matches(msg, keys.quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, keys.details):
			if row, ok := m.list.SelectedItem().(ItemRow); ok {
				m.action = ActionShowDetails
				m.selected = &row
				m.quitting = true
				return m, tea.Quit
			}

		case key.Matches(msg, keys.borrow):
			if row, ok := m.list.SelectedItem().(ItemRow); ok {
				m.action = ActionBorrow
				m.selected = &row
				m.quitting = true
				return m, tea.Quit
			}

		case key.Matches(msg, keys.doReturn):
			if row, ok := m.list.SelectedItem().(ItemRow); ok {
				m.action = ActionReturn
				m.selected = &row
				m.quitting = true
				return m, tea.Quit
			}
		}

	case tea.WindowSizeMsg:
		h, v := StyleBorder.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m model) View() string {
	if m.quitting {
		return ""
	}
	return StyleBorder.Render(m.list.View())
}

// RunBrowser launches an interactive catalog browser and reports the
// action the operator chose. Borrow and return are performed by the
// caller after the alt screen closes, so relayed notification lines land
// on a clean terminal.
func RunBrowser(rows []ItemRow) (*BrowserResult, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("no items to display")
	}

	items := make([]list.Item, len(rows))
	for i, r := range rows {
		items[i] = r
	}

	l := list.New(items, rowDelegate{}, 0, 0)
	l.Title = "Catalog"
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = StyleHeader
	l.Styles.PaginationStyle = StyleHelp
	l.Styles.HelpStyle = StyleHelp

	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.borrow, keys.doReturn}
	}
	l.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{keys.borrow, keys.doReturn, keys.details}
	}

	p := tea.NewProgram(model{list: l}, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("running TUI: %w", err)
	}

	if fm, ok := finalModel.(model); ok {
		return &BrowserResult{Action: fm.action, Row: fm.selected}, nil
	}
	return &BrowserResult{Action: ActionNone}, nil
}
