package graphview

import (
	"fmt"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type paneFocus int

const (
	focusList paneFocus = iota
	focusDetail
)

// Model is the interactive browser over a decoded stream's top-level
// values: a filterable list on the left, a scrollable detail pane for the
// selection on the right, and a class-count bar chart underneath.
type Model struct {
	items  []any
	list   list.Model
	detail viewport.Model
	chart  barchart.Model

	focus  paneFocus
	width  int
	height int
}

// New builds a browser Model over items, the value sequence returned by
// javaserial.Decode.
func New(items []any) *Model {
	listItems := make([]list.Item, len(items))
	for i, v := range items {
		listItems[i] = valueItem{index: i, value: v}
	}

	l := list.New(listItems, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Decoded values"
	l.SetShowHelp(false)

	vp := viewport.New(0, 0)

	chart := barchart.New(0, 0)
	chart.PushAll(buildClassCounts(items))
	chart.Draw()

	m := &Model{
		items:  items,
		list:   l,
		detail: vp,
		chart:  chart,
		focus:  focusList,
	}
	m.syncDetail()
	return m
}

// StartTUI launches the browser over items as a full-screen bubbletea
// program.
func StartTUI(items []any) error {
	p := tea.NewProgram(New(items), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "tab":
			if m.focus == focusList {
				m.focus = focusDetail
			} else {
				m.focus = focusList
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	if m.focus == focusList {
		prevIndex := m.list.Index()
		m.list, cmd = m.list.Update(msg)
		if m.list.Index() != prevIndex {
			m.syncDetail()
		}
	} else {
		m.detail, cmd = m.detail.Update(msg)
	}
	return m, cmd
}

func (m *Model) View() string {
	if m.width == 0 {
		return "loading..."
	}

	header := headerStyle.Width(m.width).Render("jserial — decoded stream browser")

	listBox := boxStyle.Render(m.list.View())
	detailBox := boxStyle.Render(m.detail.View())
	top := lipgloss.JoinHorizontal(lipgloss.Top, listBox, detailBox)

	chartBox := boxStyle.Render(m.chart.View())

	status := statusBarStyle.Width(m.width).Render(
		fmt.Sprintf("%d values · tab: switch pane · q: quit", len(m.items)))

	return lipgloss.JoinVertical(lipgloss.Left, header, top, chartBox, status)
}

func (m *Model) resize() {
	listWidth := m.width / 2
	detailWidth := m.width - listWidth
	bodyHeight := m.height * 3 / 5

	m.list.SetSize(listWidth-2, bodyHeight)
	m.detail.Width = detailWidth - 2
	m.detail.Height = bodyHeight

	m.chart.Resize(m.width-4, m.height-bodyHeight-6)
	m.chart.Draw()
}

func (m *Model) syncDetail() {
	if i, ok := m.list.SelectedItem().(valueItem); ok {
		m.detail.SetContent(renderDetail(i.value))
		m.detail.GotoTop()
	}
}
