package model

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bnema/sitepanel/internal/application/usecase"
	"github.com/bnema/sitepanel/internal/cli/styles"
	"github.com/bnema/sitepanel/internal/domain/entity"
	"github.com/bnema/sitepanel/internal/ui/controller"
	"github.com/bnema/sitepanel/internal/ui/panel"
)

// PanelModel is the Bubble Tea model for the interactive site
// permissions panel. It renders through the same binding engine as the
// GTK panel, just against text-backed slots.
type PanelModel struct {
	// UI components
	help  help.Model
	keys  panelKeyMap
	theme *styles.Theme

	// Binding engine
	container *textContainer
	view      *panel.View

	// State
	origin     string
	cursor     int
	showHidden bool
	err        error
	width      int

	// Dependencies
	ctx context.Context
	uc  *usecase.SitePermissionsUseCase
}

// panelKeyMap defines keybindings for the panel.
type panelKeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Toggle     key.Binding
	PrevOption key.Binding
	NextOption key.Binding
	ShowHidden key.Binding
	Refresh    key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// ShortHelp returns keybindings for the short help view.
func (k panelKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Toggle, k.ShowHidden, k.Quit}
}

// FullHelp returns keybindings for the full help view.
func (k panelKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Toggle},
		{k.PrevOption, k.NextOption, k.ShowHidden},
		{k.Refresh, k.Help, k.Quit},
	}
}

func defaultPanelKeyMap() panelKeyMap {
	return panelKeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("↓/j", "down"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "toggle / next mode"),
		),
		PrevOption: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("←/h", "previous mode"),
		),
		NextOption: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("→/l", "next mode"),
		),
		ShowHidden: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "show unset"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// NewPanelModel creates the interactive panel for one origin and runs
// the first render pass.
func NewPanelModel(ctx context.Context, origin string, uc *usecase.SitePermissionsUseCase, theme *styles.Theme) (*PanelModel, error) {
	container := newTextContainer()
	interactor := controller.NewOriginInteractor(ctx, origin, uc, nil)

	view, err := panel.NewView(container, interactor)
	if err != nil {
		return nil, fmt.Errorf("build panel view: %w", err)
	}

	m := &PanelModel{
		help:      help.New(),
		keys:      defaultPanelKeyMap(),
		theme:     theme,
		container: container,
		view:      view,
		origin:    origin,
		ctx:       ctx,
		uc:        uc,
	}

	if err := m.refresh(); err != nil {
		return nil, err
	}
	return m, nil
}

// refresh recomputes the state and re-renders it through the binder.
func (m *PanelModel) refresh() error {
	state, err := m.uc.State(m.ctx, m.origin)
	if err != nil {
		return err
	}
	return m.view.Render(m.ctx, state)
}

// Init implements tea.Model.
func (m *PanelModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *PanelModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}

		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.rows())-1 {
				m.cursor++
			}

		case key.Matches(msg, m.keys.Toggle):
			m.activateCurrent(+1)

		case key.Matches(msg, m.keys.NextOption):
			m.cycleAutoplay(+1)

		case key.Matches(msg, m.keys.PrevOption):
			m.cycleAutoplay(-1)

		case key.Matches(msg, m.keys.ShowHidden):
			m.showHidden = !m.showHidden
			m.clampCursor()

		case key.Matches(msg, m.keys.Refresh):
			m.err = m.refresh()
			m.clampCursor()

		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}
	}

	return m, nil
}

// rows returns the features currently listed, in panel order.
func (m *PanelModel) rows() []entity.Feature {
	var rows []entity.Feature
	for _, f := range entity.Features() {
		if m.showHidden || m.container.labels[f].visible {
			rows = append(rows, f)
		}
	}
	return rows
}

func (m *PanelModel) clampCursor() {
	if n := len(m.rows()); m.cursor >= n && n > 0 {
		m.cursor = n - 1
	} else if n == 0 {
		m.cursor = 0
	}
}

// activateCurrent fires the current row's interaction: a click on a
// toggle row's status control, or a mode step on the autoplay row.
func (m *PanelModel) activateCurrent(direction int) {
	rows := m.rows()
	if m.cursor >= len(rows) {
		return
	}
	f := rows[m.cursor]

	if !m.container.labels[f].enabled {
		return
	}

	if f == entity.FeatureAutoplay {
		m.stepAutoplay(direction)
	} else {
		m.container.statuses[f].activate()
	}

	m.err = m.refresh()
	m.clampCursor()
}

func (m *PanelModel) cycleAutoplay(direction int) {
	rows := m.rows()
	if m.cursor >= len(rows) || rows[m.cursor] != entity.FeatureAutoplay {
		return
	}
	if !m.container.labels[entity.FeatureAutoplay].enabled {
		return
	}
	m.stepAutoplay(direction)
	m.err = m.refresh()
	m.clampCursor()
}

func (m *PanelModel) stepAutoplay(direction int) {
	selector := m.container.autoplay
	if len(selector.options) == 0 {
		return
	}
	next := (selector.selected + direction + len(selector.options)) % len(selector.options)
	selector.userSelect(next)
}

// View implements tea.Model.
func (m *PanelModel) View() string {
	var b strings.Builder

	b.WriteString(m.theme.Title.Render("Site permissions — " + m.origin))
	b.WriteString("\n\n")

	rows := m.rows()
	if len(rows) == 0 {
		b.WriteString(m.theme.Subtle.Render("No permissions set for this site. Press tab to list all features."))
		b.WriteString("\n")
	}

	for i, f := range rows {
		b.WriteString(m.renderRow(f, i == m.cursor))
		b.WriteString("\n")
	}

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(m.theme.ErrorStyle.Render(m.err.Error()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m *PanelModel) renderRow(f entity.Feature, selected bool) string {
	label := m.container.labels[f]

	nameStyle := m.theme.Normal
	if selected {
		nameStyle = m.theme.Selected
	}
	if !label.enabled {
		nameStyle = m.theme.Disabled
	}

	cursor := "  "
	if selected {
		cursor = "> "
	}

	name := nameStyle.Render(fmt.Sprintf("%-20s", f.DisplayName()))

	if f == entity.FeatureAutoplay {
		return cursor + name + m.renderAutoplayOptions(selected)
	}

	status := m.container.statuses[f]
	if !label.visible {
		return cursor + name + m.theme.Subtle.Render("(not set)")
	}
	return cursor + name + m.theme.Normal.Render(status.text)
}

func (m *PanelModel) renderAutoplayOptions(selected bool) string {
	selector := m.container.autoplay
	if !m.container.labels[entity.FeatureAutoplay].visible && !m.showHidden {
		return m.theme.Subtle.Render("(not set)")
	}

	parts := make([]string, 0, len(selector.options))
	for i, option := range selector.options {
		switch {
		case i == selector.selected && selected:
			parts = append(parts, m.theme.Selected.Render("["+option+"]"))
		case i == selector.selected:
			parts = append(parts, m.theme.Normal.Render("["+option+"]"))
		default:
			parts = append(parts, m.theme.Subtle.Render(option))
		}
	}
	return strings.Join(parts, m.theme.Subtle.Render(" · "))
}
