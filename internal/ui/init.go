package ui

import (
	"genie/internal/prefs"
	"genie/internal/styles"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

func InitialModel(deps Deps) Model {
	log := deps.Log
	if log == nil {
		log = zap.NewNop()
	}

	if pref, ok := deps.Prefs.Get(prefs.KeyTheme); ok {
		styles.ApplyPreference(pref)
	} else {
		styles.ApplyPreference("system")
	}

	name := textinput.New()
	name.Placeholder = "Display name"
	name.CharLimit = 64

	email := textinput.New()
	email.Placeholder = "Email"
	email.CharLimit = 128
	email.Focus()

	pass := textinput.New()
	pass.Placeholder = "Password"
	pass.CharLimit = 128
	pass.EchoMode = textinput.EchoPassword
	pass.EchoCharacter = '•'

	rename := textinput.New()
	rename.Placeholder = "Chat title"
	rename.CharLimit = 80

	ti := textarea.New()
	ti.Placeholder = "Ask about any recipe..."
	ti.Prompt = "❯ "
	ti.ShowLineNumbers = false
	ti.CharLimit = 0
	ti.MaxHeight = 6
	ti.SetHeight(1)
	ti.SetWidth(60)
	ti.FocusedStyle.Prompt = lipgloss.NewStyle().Foreground(styles.CurrentTheme.Primary).Bold(true)
	ti.BlurredStyle.Prompt = lipgloss.NewStyle().Foreground(styles.CurrentTheme.Primary).Bold(true)
	ti.FocusedStyle.Placeholder = lipgloss.NewStyle().Foreground(styles.CurrentTheme.TextMuted)
	ti.BlurredStyle.Placeholder = lipgloss.NewStyle().Foreground(styles.CurrentTheme.TextMuted)
	ti.FocusedStyle.CursorLine = lipgloss.NewStyle()
	ti.BlurredStyle.CursorLine = lipgloss.NewStyle()
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(styles.CurrentTheme.Primary)

	vp := viewport.New(60, 15)

	collapsed := false
	if v, ok := deps.Prefs.Get(prefs.KeySidebarCollapsed); ok {
		collapsed = v == "true"
	}

	return Model{
		deps:             deps,
		log:              log,
		screen:           ScreenAuth,
		authMode:         AuthLogin,
		nameInput:        name,
		emailInpt:        email,
		passInput:        pass,
		renameInput:      rename,
		input:            ti,
		spinner:          sp,
		viewport:         vp,
		sidebarCollapsed: collapsed,
		suggestionIdx:    -1,
	}
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		m.spinner.Tick,
	)
}

// NewProgram wires the model into a bubbletea program. The notify hub
// feeds refresh signals back in through Program.Send, so a successful
// send re-sorts the sidebar without the two components knowing about
// each other.
func NewProgram(deps Deps) *tea.Program {
	m := InitialModel(deps)
	p := tea.NewProgram(&m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	m.Program = p
	if deps.Hub != nil {
		deps.Hub.Subscribe(func() {
			p.Send(RefreshMsg{})
		})
	}
	return p
}
