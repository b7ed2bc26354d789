package ui

import (
	"genie/internal/auth"
	"genie/internal/chat"
	"genie/internal/models"
	"genie/internal/notify"
	"genie/internal/prefs"
	"genie/internal/session"
	"genie/internal/sidebar"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"go.uber.org/zap"
)

const (
	// DesktopWidthThresh is the column count at which the sidebar gets
	// its own pane. Below it the sidebar becomes an overlay.
	DesktopWidthThresh = 80

	SidebarWidth = 30
	ModalWidth   = 54

	// A drag counts as a swipe once it covers SwipeMinDX columns while
	// drifting fewer than SwipeMaxDY rows.
	SwipeMinDX = 8
	SwipeMaxDY = 3
)

// WelcomeSuggestions are the starter prompts shown on an empty
// transcript. Picking one fills the input.
var WelcomeSuggestions = []string{
	"Suggest a quick dinner I can make in 20 minutes",
	"How do I make crispy masala dosa at home?",
	"Give me a vegetarian meal plan for the week",
	"What can I cook with rice, eggs, and spinach?",
}

type Screen int

const (
	ScreenAuth Screen = iota
	ScreenChat
)

type AuthMode int

const (
	AuthLogin AuthMode = iota
	AuthSignup
	AuthReset
)

// Messages produced by commands. Controllers are synchronous; each
// command runs one controller call off the update loop and reports back.
type (
	authResultMsg struct {
		user *models.User
		err  error
	}
	resetSentMsg struct{ err error }

	chatsLoadedMsg  struct{}
	chatSelectedMsg struct{ chatID string }
	chatDeletedMsg  struct{ chatID string }
	renameDoneMsg   struct{}
	sendDoneMsg     struct{ err error }

	// RefreshMsg arrives from the notify hub when another component
	// changed the chat list.
	RefreshMsg struct{}
)

// Deps is everything the shell needs, constructed in main and injected.
type Deps struct {
	Log     *zap.Logger
	Auth    *auth.Client
	Session *session.Store
	Prefs   *prefs.Store
	Hub     *notify.Hub
	Chat    *chat.Controller
	Sidebar *sidebar.Controller
}

type Model struct {
	deps Deps
	log  *zap.Logger

	Program *tea.Program

	screen Screen

	// Auth screen state.
	authMode  AuthMode
	authFocus int
	nameInput textinput.Model
	emailInpt textinput.Model
	passInput textinput.Model
	authBusy  bool

	// Alert is a blocking modal; while set, every key dismisses it and
	// nothing else happens.
	alert string

	// Chat screen state.
	viewport viewport.Model
	input    textarea.Model
	spinner  spinner.Model
	sending  bool

	activeChatID string

	sidebarOpen      bool // mobile overlay visible
	sidebarCollapsed bool // desktop pane hidden, persisted
	sidebarFocus     bool
	sidebarIdx       int
	groups           sidebar.Groups
	visible          []models.Chat // grouped order, for cursor math

	renaming    bool
	renameInput textinput.Model

	confirmDelete      bool
	confirmDeleteID    string
	confirmDeleteTitle string

	suggestionIdx int

	renderer *glamour.TermRenderer
	swipe    swipeTracker

	width   int
	height  int
	desktop bool
}
