package ui

import (
	"context"
	"errors"
	"strings"
	"time"

	"genie/internal/chat"
	"genie/internal/prefs"
	"genie/internal/sidebar"
	"genie/internal/styles"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"go.uber.org/zap"
)

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		if m.sending {
			// The optimistic user line lands in the controller before
			// the network round trip finishes; ticks pick it up.
			m.refreshViewport()
		}
		return m, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.desktop = msg.Width >= DesktopWidthThresh
		if m.desktop {
			m.sidebarOpen = false
		}
		m.updateLayout()
		m.rebuildRenderer()
		m.refreshViewport()
		return m, nil

	case RefreshMsg:
		return m, m.loadChatsCmd()

	case authResultMsg:
		m.authBusy = false
		if msg.err != nil {
			m.alert = msg.err.Error()
			return m, nil
		}
		m.deps.Session.SignIn(msg.user)
		m.screen = ScreenChat
		m.input.Focus()
		return m, m.loadChatsCmd()

	case resetSentMsg:
		m.authBusy = false
		if msg.err != nil {
			m.alert = msg.err.Error()
			return m, nil
		}
		m.alert = "Password reset email sent. Check your inbox."
		m.authMode = AuthLogin
		m.setAuthFocus(0)
		return m, nil

	case chatsLoadedMsg, renameDoneMsg:
		m.refreshVisible()
		return m, nil

	case chatSelectedMsg:
		m.activeChatID = msg.chatID
		m.sidebarFocus = false
		m.sidebarOpen = false
		m.input.Focus()
		m.refreshVisible()
		m.refreshViewport()
		return m, nil

	case chatDeletedMsg:
		if msg.chatID == m.activeChatID {
			m.activeChatID = ""
			m.deps.Chat.SelectChat(context.Background(), "")
		}
		m.refreshVisible()
		m.refreshViewport()
		return m, nil

	case sendDoneMsg:
		m.sending = false
		if msg.err != nil && !errors.Is(msg.err, chat.ErrBusy) {
			m.alert = msg.err.Error()
		}
		if m.activeChatID == "" {
			// A lazy creation may have bound the transcript to a chat.
			m.activeChatID = m.deps.Chat.ActiveChatID()
		}
		m.refreshViewport()
		return m, nil

	case tea.MouseMsg:
		return m.updateMouse(msg)

	case tea.KeyMsg:
		if m.alert != "" {
			if msg.String() == "ctrl+c" {
				return m, tea.Quit
			}
			m.alert = ""
			return m, nil
		}
		if m.screen == ScreenAuth {
			return m.updateAuthKeys(msg)
		}
		return m.updateChatKeys(msg)
	}

	return m, nil
}

func (m *Model) updateAuthKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "tab", "down":
		m.setAuthFocus(m.authFocus + 1)
		return m, nil

	case "shift+tab", "up":
		m.setAuthFocus(m.authFocus - 1)
		return m, nil

	case "ctrl+s":
		if m.authMode == AuthSignup {
			m.authMode = AuthLogin
		} else {
			m.authMode = AuthSignup
		}
		m.setAuthFocus(0)
		return m, nil

	case "ctrl+r":
		m.authMode = AuthReset
		m.setAuthFocus(0)
		return m, nil

	case "esc":
		m.authMode = AuthLogin
		m.setAuthFocus(0)
		return m, nil

	case "enter":
		return m, m.submitAuth()
	}

	var cmd tea.Cmd
	switch m.focusedAuthField() {
	case &m.nameInput:
		m.nameInput, cmd = m.nameInput.Update(msg)
	case &m.emailInpt:
		m.emailInpt, cmd = m.emailInpt.Update(msg)
	case &m.passInput:
		m.passInput, cmd = m.passInput.Update(msg)
	}
	return m, cmd
}

func (m *Model) authFieldCount() int {
	switch m.authMode {
	case AuthSignup:
		return 3
	case AuthReset:
		return 1
	default:
		return 2
	}
}

func (m *Model) focusedAuthField() interface{} {
	if m.authMode == AuthSignup {
		switch m.authFocus {
		case 0:
			return &m.nameInput
		case 1:
			return &m.emailInpt
		default:
			return &m.passInput
		}
	}
	if m.authMode == AuthReset {
		return &m.emailInpt
	}
	if m.authFocus == 0 {
		return &m.emailInpt
	}
	return &m.passInput
}

func (m *Model) setAuthFocus(i int) {
	n := m.authFieldCount()
	if i < 0 {
		i = n - 1
	}
	if i >= n {
		i = 0
	}
	m.authFocus = i

	m.nameInput.Blur()
	m.emailInpt.Blur()
	m.passInput.Blur()
	switch m.focusedAuthField() {
	case &m.nameInput:
		m.nameInput.Focus()
	case &m.emailInpt:
		m.emailInpt.Focus()
	case &m.passInput:
		m.passInput.Focus()
	}
}

func (m *Model) submitAuth() tea.Cmd {
	if m.authBusy {
		return nil
	}

	email := strings.TrimSpace(m.emailInpt.Value())
	password := m.passInput.Value()

	switch m.authMode {
	case AuthReset:
		if email == "" {
			m.alert = "Please enter your email address."
			return nil
		}
		m.authBusy = true
		return m.resetCmd(email)

	case AuthSignup:
		if email == "" || password == "" {
			m.alert = "Please enter both email and password."
			return nil
		}
		m.authBusy = true
		return m.signUpCmd(strings.TrimSpace(m.nameInput.Value()), email, password)

	default:
		if email == "" || password == "" {
			m.alert = "Please enter both email and password."
			return nil
		}
		m.authBusy = true
		return m.signInCmd(email, password)
	}
}

func (m *Model) updateChatKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.confirmDelete {
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "enter", "y":
			m.confirmDelete = false
			return m, m.deleteCmd(m.confirmDeleteID)
		case "esc", "n":
			m.confirmDelete = false
			return m, nil
		}
		return m, nil
	}

	if m.renaming {
		switch msg.String() {
		case "enter":
			title := m.renameInput.Value()
			id := ""
			if m.sidebarIdx < len(m.visible) {
				id = m.visible[m.sidebarIdx].ID
			}
			m.renaming = false
			if id == "" {
				return m, nil
			}
			return m, m.renameCmd(id, title)
		case "esc":
			m.renaming = false
			return m, nil
		}
		var cmd tea.Cmd
		m.renameInput, cmd = m.renameInput.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "ctrl+n":
		return m, m.newChatCmd()

	case "ctrl+b":
		m.toggleSidebar()
		return m, nil

	case "ctrl+t":
		m.toggleTheme()
		return m, nil

	case "ctrl+l":
		m.signOut()
		return m, nil

	case "tab":
		if m.sidebarVisible() {
			m.sidebarFocus = !m.sidebarFocus
			if m.sidebarFocus {
				m.input.Blur()
			} else {
				m.input.Focus()
			}
			return m, nil
		}
		if m.welcomeVisible() && strings.TrimSpace(m.input.Value()) == "" {
			m.suggestionIdx = (m.suggestionIdx + 1) % len(WelcomeSuggestions)
			m.refreshViewport()
			return m, nil
		}
	}

	if m.sidebarFocus {
		return m.updateSidebarKeys(msg)
	}

	if isNewlineShortcut(msg) {
		m.input.InsertString("\n")
		m.updateLayout()
		return m, nil
	}

	switch msg.String() {
	case "left", "right":
		if m.welcomeVisible() && strings.TrimSpace(m.input.Value()) == "" {
			delta := 1
			if msg.String() == "left" {
				delta = -1
			}
			m.suggestionIdx += delta
			if m.suggestionIdx < 0 {
				m.suggestionIdx = len(WelcomeSuggestions) - 1
			}
			if m.suggestionIdx >= len(WelcomeSuggestions) {
				m.suggestionIdx = 0
			}
			m.refreshViewport()
			return m, nil
		}

	case "enter":
		text := m.input.Value()
		if strings.TrimSpace(text) == "" && m.welcomeVisible() && m.suggestionIdx >= 0 {
			text = WelcomeSuggestions[m.suggestionIdx]
		}
		if strings.TrimSpace(text) == "" {
			return m, nil
		}
		if m.sending {
			return m, nil
		}
		m.sending = true
		m.suggestionIdx = -1
		m.input.Reset()
		m.updateLayout()
		m.refreshViewport()
		return m, tea.Batch(m.sendCmd(text), m.spinner.Tick)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.updateLayout()

	var vpCmd tea.Cmd
	m.viewport, vpCmd = m.viewport.Update(msg)
	return m, tea.Batch(cmd, vpCmd)
}

func (m *Model) updateSidebarKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if len(m.visible) > 0 {
			m.sidebarIdx--
			if m.sidebarIdx < 0 {
				m.sidebarIdx = len(m.visible) - 1
			}
		}
		return m, nil

	case "down", "j":
		if len(m.visible) > 0 {
			m.sidebarIdx++
			if m.sidebarIdx >= len(m.visible) {
				m.sidebarIdx = 0
			}
		}
		return m, nil

	case "enter":
		if m.sidebarIdx < len(m.visible) {
			return m, m.selectChatCmd(m.visible[m.sidebarIdx].ID)
		}
		return m, nil

	case "r":
		if m.sidebarIdx < len(m.visible) {
			m.renaming = true
			m.renameInput.SetValue(m.visible[m.sidebarIdx].Title)
			m.renameInput.CursorEnd()
			m.renameInput.Focus()
		}
		return m, nil

	case "d", "delete":
		if m.sidebarIdx < len(m.visible) {
			c := m.visible[m.sidebarIdx]
			m.confirmDelete = true
			m.confirmDeleteID = c.ID
			m.confirmDeleteTitle = c.Title
		}
		return m, nil

	case "esc":
		m.sidebarFocus = false
		m.sidebarOpen = false
		m.input.Focus()
		return m, nil
	}
	return m, nil
}

func (m *Model) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.screen != ScreenChat {
		return m, nil
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			m.swipe.begin(msg.X, msg.Y)
		}
	case tea.MouseActionMotion:
		m.swipe.move(msg.X, msg.Y)
	case tea.MouseActionRelease:
		dx, dy, ok := m.swipe.end(msg.X, msg.Y)
		if m.desktop {
			break
		}
		if ok && abs(dx) >= SwipeMinDX && abs(dy) < SwipeMaxDY {
			if dx < 0 && m.sidebarOpen {
				m.sidebarOpen = false
				m.sidebarFocus = false
				m.input.Focus()
			} else if dx > 0 && !m.sidebarOpen {
				m.sidebarOpen = true
				m.sidebarFocus = true
				m.input.Blur()
				m.refreshVisible()
			}
			return m, nil
		}
		// A plain click past the overlay dismisses it.
		if m.sidebarOpen && msg.X >= SidebarWidth {
			m.sidebarOpen = false
			m.sidebarFocus = false
			m.input.Focus()
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *Model) toggleSidebar() {
	if m.desktop {
		m.sidebarCollapsed = !m.sidebarCollapsed
		v := "false"
		if m.sidebarCollapsed {
			v = "true"
		}
		if err := m.deps.Prefs.Set(prefs.KeySidebarCollapsed, v); err != nil {
			m.log.Warn("persisting sidebar state failed", zap.Error(err))
		}
		if m.sidebarCollapsed {
			m.sidebarFocus = false
			m.input.Focus()
		}
		m.updateLayout()
		m.refreshViewport()
		return
	}

	m.sidebarOpen = !m.sidebarOpen
	m.sidebarFocus = m.sidebarOpen
	if m.sidebarOpen {
		m.input.Blur()
		m.refreshVisible()
	} else {
		m.input.Focus()
	}
}

func (m *Model) toggleTheme() {
	pref := "dark"
	if styles.IsDark() {
		pref = "light"
	}
	styles.ApplyPreference(pref)
	if err := m.deps.Prefs.Set(prefs.KeyTheme, pref); err != nil {
		m.log.Warn("persisting theme failed", zap.Error(err))
	}
	m.rebuildRenderer()
	m.refreshViewport()
}

func (m *Model) signOut() {
	m.deps.Session.SignOut()
	m.deps.Chat.SelectChat(context.Background(), "")
	m.activeChatID = ""
	m.visible = nil
	m.sidebarIdx = 0
	m.sidebarFocus = false
	m.sidebarOpen = false
	m.sending = false
	m.suggestionIdx = -1
	m.screen = ScreenAuth
	m.authMode = AuthLogin
	m.passInput.SetValue("")
	m.setAuthFocus(0)
}

func (m *Model) sidebarVisible() bool {
	if m.desktop {
		return !m.sidebarCollapsed
	}
	return m.sidebarOpen
}

func (m *Model) welcomeVisible() bool {
	return m.activeChatID == "" && len(m.deps.Chat.Messages()) == 0 && !m.sending
}

func (m *Model) updateLayout() {
	if m.width == 0 || m.height == 0 {
		return
	}

	mainWidth := m.width
	if m.desktop && !m.sidebarCollapsed {
		mainWidth = m.width - SidebarWidth
	}

	inputWidth := mainWidth - 6
	if inputWidth < 20 {
		inputWidth = 20
	}
	lineCount := strings.Count(m.input.Value(), "\n") + 1
	if lineCount > 6 {
		lineCount = 6
	}
	m.input.SetWidth(inputWidth)
	m.input.SetHeight(lineCount)

	m.viewport.Width = mainWidth - 4
	reserved := m.input.Height() + 7
	m.viewport.Height = m.height - reserved
	if m.viewport.Height < 5 {
		m.viewport.Height = 5
	}
}

func (m *Model) rebuildRenderer() {
	style := "dark"
	if !styles.IsDark() {
		style = "light"
	}
	wrap := m.viewport.Width - 2
	if wrap < 20 {
		wrap = 20
	}
	m.renderer, _ = glamour.NewTermRenderer(
		glamour.WithStylePath(style),
		glamour.WithWordWrap(wrap),
	)
}

func (m *Model) refreshVisible() {
	m.groups = sidebar.GroupByRecency(m.deps.Sidebar.Chats(), time.Now())
	m.visible = flattenGroups(m.groups)
	if m.sidebarIdx >= len(m.visible) {
		m.sidebarIdx = 0
	}
}

// Commands. Controller calls block on the network, so each runs as a
// bubbletea command and reports back with a message.

func (m *Model) signInCmd(email, password string) tea.Cmd {
	a := m.deps.Auth
	return func() tea.Msg {
		u, err := a.SignIn(context.Background(), email, password)
		return authResultMsg{user: u, err: err}
	}
}

func (m *Model) signUpCmd(displayName, email, password string) tea.Cmd {
	a := m.deps.Auth
	return func() tea.Msg {
		u, err := a.SignUp(context.Background(), email, password, displayName)
		return authResultMsg{user: u, err: err}
	}
}

func (m *Model) resetCmd(email string) tea.Cmd {
	a := m.deps.Auth
	return func() tea.Msg {
		return resetSentMsg{err: a.SendPasswordReset(context.Background(), email)}
	}
}

func (m *Model) loadChatsCmd() tea.Cmd {
	c := m.deps.Sidebar
	return func() tea.Msg {
		c.LoadChats(context.Background())
		return chatsLoadedMsg{}
	}
}

func (m *Model) selectChatCmd(chatID string) tea.Cmd {
	c := m.deps.Chat
	return func() tea.Msg {
		c.SelectChat(context.Background(), chatID)
		return chatSelectedMsg{chatID: chatID}
	}
}

func (m *Model) newChatCmd() tea.Cmd {
	sb := m.deps.Sidebar
	c := m.deps.Chat
	return func() tea.Msg {
		id := sb.CreateChat(context.Background())
		c.SelectChat(context.Background(), id)
		return chatSelectedMsg{chatID: id}
	}
}

func (m *Model) renameCmd(chatID, title string) tea.Cmd {
	c := m.deps.Sidebar
	return func() tea.Msg {
		c.RenameChat(context.Background(), chatID, title)
		return renameDoneMsg{}
	}
}

func (m *Model) deleteCmd(chatID string) tea.Cmd {
	c := m.deps.Sidebar
	return func() tea.Msg {
		c.DeleteChat(context.Background(), chatID)
		return chatDeletedMsg{chatID: chatID}
	}
}

func (m *Model) sendCmd(text string) tea.Cmd {
	c := m.deps.Chat
	return func() tea.Msg {
		return sendDoneMsg{err: c.Send(context.Background(), text)}
	}
}

func isNewlineShortcut(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "shift+enter", "ctrl+j", "alt+enter":
		return true
	default:
		return false
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
