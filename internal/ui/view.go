package ui

import (
	"fmt"
	"strings"

	"genie/internal/models"
	"genie/internal/styles"

	"github.com/charmbracelet/lipgloss"
)

func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	if m.alert != "" {
		return m.overlayModal(m.renderAlert())
	}
	if m.confirmDelete {
		return m.overlayModal(m.renderDeleteConfirm())
	}

	if m.screen == ScreenAuth {
		return m.viewAuth()
	}
	return m.viewChat()
}

func (m *Model) viewAuth() string {
	title := styles.TitleStyle.Render("🍳 Recipe Genie")

	var heading string
	switch m.authMode {
	case AuthSignup:
		heading = "Create your account"
	case AuthReset:
		heading = "Reset your password"
	default:
		heading = "Welcome back"
	}

	fields := []string{}
	if m.authMode == AuthSignup {
		fields = append(fields, m.nameInput.View())
	}
	fields = append(fields, m.emailInpt.View())
	if m.authMode != AuthReset {
		fields = append(fields, m.passInput.View())
	}

	var hint string
	switch m.authMode {
	case AuthSignup:
		hint = "enter: sign up • ctrl+s: log in instead • esc: back"
	case AuthReset:
		hint = "enter: send reset email • esc: back to log in"
	default:
		hint = "enter: log in • ctrl+s: sign up • ctrl+r: forgot password"
	}
	if m.authBusy {
		hint = m.spinner.View() + " working..."
	}

	card := styles.ModalStyle.Width(ModalWidth).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			styles.ModalTitleStyle.Render(heading),
			strings.Join(fields, "\n\n"),
			"",
			styles.HintStyle.Render(hint),
		),
	)

	content := lipgloss.JoinVertical(lipgloss.Center, title, "", card)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func (m *Model) viewChat() string {
	main := m.renderMain()

	if m.desktop && !m.sidebarCollapsed {
		side := m.renderSidebar(m.height)
		return lipgloss.JoinHorizontal(lipgloss.Top, side, main)
	}

	if m.sidebarOpen {
		// Mobile overlay: the sidebar slides over the conversation.
		side := m.renderSidebar(m.height)
		return lipgloss.Place(m.width, m.height, lipgloss.Left, lipgloss.Top, side)
	}

	return main
}

func (m *Model) renderMain() string {
	mainWidth := m.width
	if m.desktop && !m.sidebarCollapsed {
		mainWidth = m.width - SidebarWidth
	}

	header := styles.TitleStyle.Render("🍳 Recipe Genie")

	inputBox := styles.InputBoxStyle.Width(mainWidth - 4).Render(m.input.View())

	content := lipgloss.JoinVertical(lipgloss.Left,
		header,
		m.viewport.View(),
		inputBox,
		m.renderStatusBar(mainWidth),
	)
	return lipgloss.NewStyle().Width(mainWidth).Render(content)
}

func (m *Model) renderStatusBar(width int) string {
	who := "signed out"
	if u := m.deps.Session.Current(); u != nil {
		who = u.DisplayName
		if who == "" {
			who = u.Email
		}
	}
	left := styles.HintStyle.Render(who)

	hints := "^N new • ^B chats • ^T theme • ^L sign out • ^C quit"
	right := styles.HintStyle.Render(hints)

	gap := width - lipgloss.Width(left) - lipgloss.Width(right) - 4
	if gap < 1 {
		gap = 1
	}
	bar := left + strings.Repeat(" ", gap) + right
	return styles.StatusBarStyle.Width(width - 2).Render(bar)
}

func (m *Model) renderSidebar(height int) string {
	var rows []string
	rows = append(rows, styles.TitleStyle.Render("Chats"))

	switch {
	case m.deps.Sidebar.Loading():
		rows = append(rows, styles.HintStyle.Render("Loading chats…"))
	case len(m.visible) == 0:
		rows = append(rows, styles.HintStyle.Render("No chats yet"))
	default:
		rows = append(rows, m.renderChatRows()...)
	}

	hint := "enter: open • r: rename • d: delete"
	if !m.sidebarFocus {
		hint = "tab: focus list"
	}
	rows = append(rows, "", styles.HintStyle.Render(hint))

	body := lipgloss.JoinVertical(lipgloss.Left, rows...)
	return styles.SidebarStyle.Width(SidebarWidth - 2).Height(height - 2).Render(body)
}

func (m *Model) renderChatRows() []string {
	var rows []string
	lastLabel := ""
	for i, c := range m.visible {
		label := m.groupLabel(c)
		if label != lastLabel {
			rows = append(rows, styles.SidebarGroupStyle.Render(label))
			lastLabel = label
		}

		title := c.Title
		if title == "" {
			title = "New Chat"
		}
		title = TruncateRunes(title, SidebarWidth-6)

		if m.renaming && m.sidebarFocus && i == m.sidebarIdx {
			rows = append(rows, styles.SidebarSelectedStyle.Render(m.renameInput.View()))
			continue
		}

		switch {
		case m.sidebarFocus && i == m.sidebarIdx:
			rows = append(rows, styles.SidebarSelectedStyle.Render(title))
		case c.ID == m.activeChatID:
			rows = append(rows, styles.SidebarActiveStyle.Render(title))
		default:
			rows = append(rows, styles.SidebarItemStyle.Render(title))
		}
	}
	return rows
}

// groupLabel names the recency bucket a chat lands in. The visible list
// is already in bucket order, so labels come out in display order.
func (m *Model) groupLabel(c models.Chat) string {
	for _, g := range []struct {
		label string
		chats []models.Chat
	}{
		{"Today", m.groups.Today},
		{"Yesterday", m.groups.Yesterday},
		{"Previous 7 Days", m.groups.Previous7Days},
		{"Older", m.groups.Older},
	} {
		for _, gc := range g.chats {
			if gc.ID == c.ID {
				return g.label
			}
		}
	}
	return "Older"
}

func (m *Model) renderAlert() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		styles.ModalTitleStyle.Render("Notice"),
		lipgloss.NewStyle().Width(ModalWidth-6).Render(m.alert),
		"",
		styles.HintStyle.Render("press any key to dismiss"),
	)
}

func (m *Model) renderDeleteConfirm() string {
	title := m.confirmDeleteTitle
	if title == "" {
		title = "this chat"
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		styles.ModalTitleStyle.Render("Delete chat"),
		lipgloss.NewStyle().Width(ModalWidth-6).Render(fmt.Sprintf("Delete %q? This cannot be undone.", title)),
		"",
		styles.HintStyle.Render("enter/y: delete • esc/n: cancel"),
	)
}

func (m *Model) overlayModal(body string) string {
	modal := styles.ModalStyle.Width(ModalWidth).Render(body)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal)
}

func (m *Model) welcomeScreen() string {
	art := styles.WelcomeArtStyle.Render("🍳  Recipe Genie")
	subtitle := styles.WelcomeSubtitleStyle.Render("What are we cooking today?")

	var cards []string
	for i, s := range WelcomeSuggestions {
		card := styles.SuggestionCardStyle.Width(m.viewport.Width - 6)
		if i == m.suggestionIdx {
			card = card.BorderForeground(styles.CurrentTheme.Primary)
		}
		cards = append(cards, card.Render(s))
	}

	hint := styles.HintStyle.Render("tab or ←/→ to pick a suggestion, enter to send")

	content := lipgloss.JoinVertical(lipgloss.Center,
		art,
		subtitle,
		"",
		lipgloss.JoinVertical(lipgloss.Left, cards...),
		"",
		hint,
	)
	return lipgloss.Place(m.viewport.Width, m.viewport.Height, lipgloss.Center, lipgloss.Center, content)
}

func (m *Model) refreshViewport() {
	msgs := m.deps.Chat.Messages()

	if len(msgs) == 0 && !m.sending {
		m.viewport.SetContent(m.welcomeScreen())
		m.viewport.GotoTop()
		return
	}

	parts := make([]string, 0, len(msgs)+1)
	for _, msg := range msgs {
		switch msg.Role {
		case models.RoleUser:
			parts = append(parts, FormatUserMessage(msg.Content, m.viewport.Width))
		case models.RoleAssistant:
			parts = append(parts, FormatAssistantMessage(msg.Content, m.viewport.Width, m.renderer))
		}
	}

	if m.sending {
		waiting := fmt.Sprintf("%s\n%s Cooking up an answer...",
			styles.AiLabelStyle.Render("GENIE"), m.spinner.View())
		parts = append(parts, waiting)
	}

	m.viewport.SetContent(strings.Join(parts, "\n\n"))
	m.viewport.GotoBottom()
}
