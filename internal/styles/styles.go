package styles

import "github.com/charmbracelet/lipgloss"

var (
	TitleStyle lipgloss.Style

	UserLabelStyle lipgloss.Style
	UserMsgStyle   lipgloss.Style

	AiLabelStyle lipgloss.Style
	AiMsgStyle   lipgloss.Style

	HeadingStyle    lipgloss.Style
	SubHeadingStyle lipgloss.Style
	NumberStyle     lipgloss.Style
	BulletStyle     lipgloss.Style

	ErrorStyle lipgloss.Style
	HintStyle  lipgloss.Style

	InputBoxStyle lipgloss.Style

	SidebarStyle         lipgloss.Style
	SidebarGroupStyle    lipgloss.Style
	SidebarItemStyle     lipgloss.Style
	SidebarSelectedStyle lipgloss.Style
	SidebarActiveStyle   lipgloss.Style

	ModalStyle         lipgloss.Style
	ModalTitleStyle    lipgloss.Style
	ModalItemStyle     lipgloss.Style
	ModalSelectedStyle lipgloss.Style

	WelcomeArtStyle      lipgloss.Style
	WelcomeSubtitleStyle lipgloss.Style
	SuggestionCardStyle  lipgloss.Style

	StatusBarStyle lipgloss.Style
	HintColor      lipgloss.Color
)

func init() {
	rebuild()
}

// rebuild derives every style from the active theme. Called once at
// startup and again whenever the theme preference changes.
func rebuild() {
	t := CurrentTheme
	HintColor = t.TextMuted

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Primary).
		Padding(0, 1)

	UserLabelStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(t.RoleUser).
		Bold(true).
		Padding(0, 1).
		MarginRight(1)

	UserMsgStyle = lipgloss.NewStyle().
		Foreground(t.TextPrimary).
		PaddingLeft(2).
		BorderLeft(true).
		BorderStyle(lipgloss.ThickBorder()).
		BorderForeground(t.RoleUser)

	AiLabelStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(t.RoleAssistant).
		Bold(true).
		Padding(0, 1).
		MarginRight(1)

	AiMsgStyle = lipgloss.NewStyle().
		Foreground(t.TextPrimary).
		PaddingTop(1).
		BorderLeft(true).
		BorderStyle(lipgloss.ThickBorder()).
		BorderForeground(t.RoleAssistant)

	HeadingStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Accent)

	SubHeadingStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.TextPrimary)

	NumberStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Primary)

	BulletStyle = lipgloss.NewStyle().
		Foreground(t.Secondary)

	ErrorStyle = lipgloss.NewStyle().
		Foreground(t.Error).
		Bold(true)

	HintStyle = lipgloss.NewStyle().
		Foreground(t.TextMuted)

	InputBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Primary).
		Padding(0, 1)

	SidebarStyle = lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, true, false, false).
		BorderForeground(t.Border).
		Padding(0, 1)

	SidebarGroupStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.TextMuted).
		PaddingTop(1)

	SidebarItemStyle = lipgloss.NewStyle().
		Foreground(t.TextSecondary).
		Padding(0, 1)

	SidebarSelectedStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(t.BgElevated).
		Padding(0, 1)

	SidebarActiveStyle = lipgloss.NewStyle().
		Foreground(t.Primary).
		Bold(true).
		Padding(0, 1)

	ModalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Primary).
		Padding(1, 2)

	ModalTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Primary).
		MarginBottom(1)

	ModalItemStyle = lipgloss.NewStyle().
		Padding(0, 1)

	ModalSelectedStyle = lipgloss.NewStyle().
		Padding(0, 1).
		Background(t.BgElevated).
		Foreground(t.TextPrimary)

	WelcomeArtStyle = lipgloss.NewStyle().
		Foreground(t.Primary).
		Bold(true)

	WelcomeSubtitleStyle = lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Italic(true)

	SuggestionCardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(0, 1).
		MarginRight(1)

	StatusBarStyle = lipgloss.NewStyle().
		BorderTop(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(t.Border).
		Padding(0, 1)
}
