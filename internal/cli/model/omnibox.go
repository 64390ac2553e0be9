// Package model holds the bubbletea models behind interactive commands.
package model

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/localport/internal/application/dispatcher"
	"github.com/bnema/localport/internal/application/usecase"
	"github.com/bnema/localport/internal/cli/styles"
	"github.com/bnema/localport/internal/domain/entity"
	"github.com/bnema/localport/internal/logging"
)

// Events is the event loop as seen by the omnibox.
type Events interface {
	InputEntered(ctx context.Context, text string) *dispatcher.Pending[*usecase.InputEnteredOutput]
	InputChanged(ctx context.Context, text string) *dispatcher.Pending[*usecase.InputChangedOutput]
	SuggestionDeleted(ctx context.Context, text string) *dispatcher.Pending[struct{}]
	ActionClicked(ctx context.Context) *dispatcher.Pending[*usecase.OpenAdjacentTabOutput]
}

// Messages

type defaultSuggestionMsg struct{ desc entity.SuggestionDescription }

type suggestMsg struct{ suggestions []entity.Suggestion }

type notificationMsg struct{ notification entity.Notification }

type changedMsg struct {
	text string
	out  *usecase.InputChangedOutput
	err  error
}

type enteredMsg struct {
	out *usecase.InputEnteredOutput
	err error
}

type deletedMsg struct {
	text string
	err  error
}

type actionMsg struct {
	out *usecase.OpenAdjacentTabOutput
	err error
}

// ThemeMsg swaps the theme, e.g. after the config file changed.
type ThemeMsg struct{ Theme *styles.Theme }

type statusKind int

const (
	statusInfo statusKind = iota
	statusSuccess
	statusError
)

// OmniboxModel is the interactive address bar.
type OmniboxModel struct {
	ctx     context.Context
	events  Events
	session *entity.SessionContext
	theme   *styles.Theme
	keys    styles.OmniboxKeyMap
	help    help.Model
	input   textinput.Model

	// Sink output buffered until the matching InputChanged completes.
	pendingDefault  *entity.SuggestionDescription
	pendingDropdown []entity.Suggestion

	defaultDesc    *entity.SuggestionDescription
	defaultContent string
	dropdown       []entity.Suggestion
	selected       int

	status     string
	statusKind statusKind
	width      int
}

// NewOmniboxModel creates the omnibox. session may be nil.
func NewOmniboxModel(ctx context.Context, theme *styles.Theme, events Events, session *entity.SessionContext) OmniboxModel {
	input := styles.NewPortInput(theme)
	input.Focus()
	return OmniboxModel{
		ctx:     ctx,
		events:  events,
		session: session,
		theme:   theme,
		keys:    styles.DefaultOmniboxKeyMap(),
		help:    styles.NewHelp(theme),
		input:   input,
	}
}

// Init implements tea.Model.
func (OmniboxModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m OmniboxModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case defaultSuggestionMsg:
		desc := msg.desc
		m.pendingDefault = &desc
		return m, nil

	case suggestMsg:
		m.pendingDropdown = msg.suggestions
		return m, nil

	case changedMsg:
		return m.handleChanged(msg), nil

	case enteredMsg:
		return m.handleEntered(msg)

	case deletedMsg:
		if msg.err != nil {
			m.setStatus(statusError, fmt.Sprintf("forget %s: %v", msg.text, msg.err))
			return m, nil
		}
		m.setStatus(statusInfo, fmt.Sprintf("forgot %s", msg.text))
		return m, m.changedCmd(m.input.Value())

	case actionMsg:
		if msg.err != nil {
			m.setStatus(statusError, fmt.Sprintf("new tab: %v", msg.err))
			return m, nil
		}
		text := fmt.Sprintf("opened tab %s at index %d", msg.out.Tab.ID, msg.out.Tab.Index)
		if msg.out.Grouped {
			text += fmt.Sprintf(" in group %d", msg.out.Tab.GroupID)
		}
		m.setStatus(statusSuccess, text)
		return m, nil

	case notificationMsg:
		m.setStatus(statusError, strings.TrimSpace(msg.notification.Title+" "+msg.notification.Message))
		return m, nil

	case ThemeMsg:
		if msg.Theme != nil {
			m.theme = msg.Theme
			m.help = styles.NewHelp(msg.Theme)
			m.help.Width = m.width
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m OmniboxModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Up):
		if m.selected > 0 {
			m.selected--
		}
		return m, nil
	case key.Matches(msg, m.keys.Down):
		if m.selected < m.entries()-1 {
			m.selected++
		}
		return m, nil
	case key.Matches(msg, m.keys.Open):
		return m, m.enterCmd(m.enteredText())
	case key.Matches(msg, m.keys.Delete):
		if content := m.selectedContent(); content != "" {
			return m, m.deleteCmd(content)
		}
		return m, nil
	case key.Matches(msg, m.keys.NewTab):
		return m, m.actionCmd()
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if after := m.input.Value(); after != before {
		return m, tea.Batch(cmd, m.changedCmd(after))
	}
	return m, cmd
}

func (m OmniboxModel) handleChanged(msg changedMsg) OmniboxModel {
	pendingDefault, pendingDropdown := m.pendingDefault, m.pendingDropdown
	m.pendingDefault, m.pendingDropdown = nil, nil

	// A newer keystroke is already queued behind this one.
	if msg.text != m.input.Value() {
		return m
	}
	if msg.err != nil {
		m.setStatus(statusError, msg.err.Error())
		return m
	}

	// The default only changes when a new one was pushed for this text.
	if pendingDefault != nil {
		m.defaultDesc = pendingDefault
		m.defaultContent = ""
		if msg.out != nil && msg.out.Default != nil {
			m.defaultContent = msg.out.Default.Content
		}
	}
	m.dropdown = pendingDropdown
	if m.selected >= m.entries() {
		m.selected = 0
	}
	return m
}

func (m OmniboxModel) handleEntered(msg enteredMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.err != nil:
		m.setStatus(statusError, msg.err.Error())
		return m, nil
	case msg.out.Invalid != nil:
		// The notifier already reported it.
		return m, nil
	}

	text := fmt.Sprintf("%s %s", styles.IconArrow, msg.out.URL)
	if msg.out.Recorded {
		text += " (remembered)"
	}
	m.setStatus(statusSuccess, text)
	m.input.SetValue("")
	m.defaultDesc, m.defaultContent, m.dropdown, m.selected = nil, "", nil, 0
	return m, nil
}

func (m *OmniboxModel) setStatus(kind statusKind, text string) {
	m.statusKind = kind
	m.status = text
}

// entries counts selectable rows: the default plus the dropdown.
func (m OmniboxModel) entries() int {
	n := len(m.dropdown)
	if m.defaultDesc != nil {
		n++
	}
	return n
}

func (m OmniboxModel) dropdownIndex() int {
	if m.defaultDesc != nil {
		return m.selected - 1
	}
	return m.selected
}

// enteredText is the default input (typed text) or the selected dropdown
// entry's content.
func (m OmniboxModel) enteredText() string {
	if i := m.dropdownIndex(); i >= 0 && i < len(m.dropdown) {
		return m.dropdown[i].Content
	}
	return m.input.Value()
}

func (m OmniboxModel) selectedContent() string {
	if i := m.dropdownIndex(); i >= 0 && i < len(m.dropdown) {
		if m.dropdown[i].Deletable {
			return m.dropdown[i].Content
		}
		return ""
	}
	return m.defaultContent
}

func (m OmniboxModel) changedCmd(text string) tea.Cmd {
	ctx, events := m.ctx, m.events
	return func() tea.Msg {
		out, err := events.InputChanged(ctx, text).Wait(ctx)
		return changedMsg{text: text, out: out, err: err}
	}
}

func (m OmniboxModel) enterCmd(text string) tea.Cmd {
	ctx, events := m.ctx, m.events
	return func() tea.Msg {
		logging.FromContext(ctx).Debug().Str("text", text).Msg("omnibox enter")
		out, err := events.InputEntered(ctx, text).Wait(ctx)
		return enteredMsg{out: out, err: err}
	}
}

func (m OmniboxModel) deleteCmd(text string) tea.Cmd {
	ctx, events := m.ctx, m.events
	return func() tea.Msg {
		_, err := events.SuggestionDeleted(ctx, text).Wait(ctx)
		return deletedMsg{text: text, err: err}
	}
}

func (m OmniboxModel) actionCmd() tea.Cmd {
	ctx, events := m.ctx, m.events
	return func() tea.Msg {
		out, err := events.ActionClicked(ctx).Wait(ctx)
		return actionMsg{out: out, err: err}
	}
}

// View implements tea.Model.
func (m OmniboxModel) View() string {
	t := m.theme
	var b strings.Builder

	b.WriteString(t.Title.Render(styles.IconPlug+" localport"))
	if m.session != nil {
		if tab, win, ok := m.session.CurrentTab(); ok {
			b.WriteString(t.Subtle.Render(fmt.Sprintf("  tab %s / window %s", tab, win)))
		}
	}
	b.WriteString("\n")
	b.WriteString(t.InputBox(m.input.View(), true))
	b.WriteString("\n")

	row := 0
	renderRow := func(content string) {
		if row == m.selected {
			b.WriteString(t.ListItemSelected.Render(content))
		} else {
			b.WriteString(t.ListItem.Render(content))
		}
		b.WriteString("\n")
		row++
	}
	if m.defaultDesc != nil {
		renderRow(t.RenderDescription(*m.defaultDesc))
	}
	for _, s := range m.dropdown {
		renderRow(t.RenderDescription(s.Description))
	}

	if m.status != "" {
		style := t.Status
		switch m.statusKind {
		case statusSuccess:
			style = t.Success
		case statusError:
			style = t.ErrorStyle
		}
		b.WriteString("\n")
		b.WriteString(style.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}

// Status returns the current status line text.
func (m OmniboxModel) Status() string {
	return m.status
}
