package dashboard

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/marcus/rd/internal/cart"
	"github.com/marcus/rd/internal/catalog"
	"github.com/marcus/rd/internal/config"
	"github.com/marcus/rd/internal/models"
	"github.com/marcus/rd/internal/store"
)

// Options configures a dashboard model
type Options struct {
	Interval time.Duration // refresh interval
	Dark     bool          // start in the dark palette
	BaseDir  string        // config directory, for persisting the palette toggle
	Version  string        // version string for the footer
}

// Model is the main Bubble Tea model for the dashboard TUI
type Model struct {
	Stores *store.Stores
	Cart   *cart.Cart

	// Window dimensions
	Width  int
	Height int

	// UI state
	ActivePanel  Panel
	Cursor       map[Panel]int
	ScrollOffset map[Panel]int
	HelpOpen     bool

	// Catalog view state
	SearchMode  bool
	SearchInput textinput.Model
	SearchQuery string
	Sort        catalog.SortMode
	SortIdx     int
	CategoryIdx int

	// Reward detail modal
	DetailOpen   bool
	DetailReward *models.Reward
	DetailRender string
	DetailScroll int

	// Cart modal
	CartOpen   bool
	CartCursor int

	// Redemption history modal
	HistoryOpen   bool
	HistoryScroll int

	// User point-history modal
	UserHistoryOpen   bool
	UserHistoryID     int
	UserHistoryScroll int

	// Log-activity form modal
	FormOpen  bool
	FormState *LogFormState

	// Status message (temporary feedback, e.g. "Added to cart")
	StatusMessage string
	StatusIsError bool

	LastRefresh     time.Time
	RefreshInterval time.Duration

	Theme   Theme
	BaseDir string
	Version string
}

// NewModel creates a new dashboard model
func NewModel(stores *store.Stores, c *cart.Cart, opts Options) Model {
	searchInput := textinput.New()
	searchInput.Placeholder = "search rewards"
	searchInput.Prompt = ""
	searchInput.Width = 40
	searchInput.CharLimit = 100

	interval := opts.Interval
	if interval <= 0 {
		interval = 30 * time.Second
	}

	return Model{
		Stores:          stores,
		Cart:            c,
		ActivePanel:     PanelRewards,
		Cursor:          make(map[Panel]int),
		ScrollOffset:    make(map[Panel]int),
		SearchInput:     searchInput,
		Sort:            catalog.SortPointsAsc,
		RefreshInterval: interval,
		Theme:           NewTheme(opts.Dark),
		BaseDir:         opts.BaseDir,
		Version:         opts.Version,
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.fetchAll(),
		m.scheduleTick(),
	)
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle TickMsg before any UI-mode interceptions so an open form cannot
	// swallow it and break the periodic refresh cycle.
	if _, ok := msg.(TickMsg); ok {
		return m, tea.Batch(m.fetchAll(), m.scheduleTick())
	}

	// Form mode: forward all messages to huh form first
	if m.FormOpen && m.FormState != nil && m.FormState.Form != nil {
		return m.handleFormUpdate(msg)
	}

	// Search mode: forward non-key messages to textinput (cursor blink, etc.)
	// Key messages are handled in handleKey() to avoid double-processing
	if m.SearchMode {
		if _, isKey := msg.(tea.KeyMsg); !isKey {
			var inputCmd tea.Cmd
			m.SearchInput, inputCmd = m.SearchInput.Update(msg)
			if inputCmd != nil {
				return m, inputCmd
			}
		}
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		// Re-render the detail markdown if open (width may have changed)
		if m.DetailOpen && m.DetailReward != nil && m.DetailReward.Description != "" {
			return m, m.renderDetailAsync(m.DetailReward.ID, m.DetailReward.Description, m.detailContentWidth())
		}
		return m, nil

	case StoreFetchedMsg:
		if msg.OK {
			m.LastRefresh = msg.Timestamp
		}
		m.clampCursors()
		return m, nil

	case SettleMsg:
		m.Cart.Settle(msg.IDs)
		m.StatusMessage = fmt.Sprintf("%d redemption(s) settled", len(msg.IDs))
		m.StatusIsError = false
		return m, clearStatusAfter()

	case MarkdownRenderedMsg:
		// Only update if this is for the currently open detail modal
		if m.DetailOpen && m.DetailReward != nil && msg.RewardID == m.DetailReward.ID {
			m.DetailRender = msg.Render
		}
		return m, nil

	case ActivityLoggedMsg:
		if msg.Err != nil {
			m.StatusMessage = "Log failed: " + msg.Err.Error()
			m.StatusIsError = true
			return m, clearStatusAfter()
		}
		if msg.Posted {
			m.StatusMessage = "Logged to server: " + msg.Description
		} else {
			m.StatusMessage = "Logged locally: " + msg.Description
		}
		m.StatusIsError = false
		return m, clearStatusAfter()

	case ClearStatusMsg:
		m.StatusMessage = ""
		m.StatusIsError = false
		return m, nil
	}

	return m, nil
}

// View implements tea.Model
func (m Model) View() string {
	return m.renderView()
}

// handleFormUpdate handles all messages when the log form is open
func (m Model) handleFormUpdate(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.FormOpen = false
		m.FormState = nil
		return m, nil
	}

	if sizeMsg, ok := msg.(tea.WindowSizeMsg); ok {
		m.Width = sizeMsg.Width
		m.Height = sizeMsg.Height
	}

	form, cmd := m.FormState.Form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.FormState.Form = f
	}

	// Form completed (user confirmed the last field)
	if m.FormState.Form.State == huh.StateCompleted {
		fs := m.FormState
		m.FormOpen = false
		m.FormState = nil
		return m, m.submitLogActivity(fs)
	}

	return m, cmd
}

// handleKey processes key input
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Search mode: forward most keys to the textinput for cursor support
	if m.SearchMode {
		switch msg.Type {
		case tea.KeyEsc:
			m.SearchMode = false
			m.SearchQuery = ""
			m.SearchInput.SetValue("")
			m.SearchInput.Blur()
			return m, nil
		case tea.KeyEnter:
			m.SearchMode = false
			m.SearchInput.Blur()
			return m, nil
		}
		var inputCmd tea.Cmd
		m.SearchInput, inputCmd = m.SearchInput.Update(msg)
		m.SearchQuery = m.SearchInput.Value()
		m.clampCursors()
		return m, inputCmd
	}

	// Modal keys
	if m.HelpOpen {
		switch msg.String() {
		case "q", "esc", "?":
			m.HelpOpen = false
		}
		return m, nil
	}
	if m.DetailOpen {
		return m.handleDetailKey(msg)
	}
	if m.CartOpen {
		return m.handleCartKey(msg)
	}
	if m.HistoryOpen {
		switch msg.String() {
		case "q", "esc", "h":
			m.HistoryOpen = false
		case "up", "k":
			if m.HistoryScroll > 0 {
				m.HistoryScroll--
			}
		case "down", "j":
			m.HistoryScroll++
		}
		return m, nil
	}
	if m.UserHistoryOpen {
		switch msg.String() {
		case "q", "esc":
			m.UserHistoryOpen = false
		case "up", "k":
			if m.UserHistoryScroll > 0 {
				m.UserHistoryScroll--
			}
		case "down", "j":
			m.UserHistoryScroll++
		}
		return m, nil
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "?":
		m.HelpOpen = true
		return m, nil

	case "tab":
		m.ActivePanel = (m.ActivePanel + 1) % 3
		return m, nil

	case "shift+tab":
		m.ActivePanel = (m.ActivePanel + 2) % 3
		return m, nil

	case "1":
		m.ActivePanel = PanelRewards
		return m, nil

	case "2":
		m.ActivePanel = PanelUsers
		return m, nil

	case "3":
		m.ActivePanel = PanelActivity
		return m, nil

	case "up", "k":
		if m.Cursor[m.ActivePanel] > 0 {
			m.Cursor[m.ActivePanel]--
		}
		m.ensureCursorVisible()
		return m, nil

	case "down", "j":
		if m.Cursor[m.ActivePanel] < m.panelRowCount(m.ActivePanel)-1 {
			m.Cursor[m.ActivePanel]++
		}
		m.ensureCursorVisible()
		return m, nil

	case "enter":
		return m.openSelection()

	case "a":
		return m.addSelectedToCart()

	case "c":
		m.CartOpen = true
		m.CartCursor = 0
		return m, nil

	case "h":
		m.HistoryOpen = true
		m.HistoryScroll = 0
		return m, nil

	case "l":
		m.FormOpen = true
		m.FormState = NewLogFormState(m.Stores.Users.Items(), m.Theme.Dark)
		return m, m.FormState.Form.Init()

	case "/":
		m.SearchMode = true
		m.ActivePanel = PanelRewards
		m.SearchInput.Focus()
		return m, textinput.Blink

	case "s":
		m.SortIdx = (m.SortIdx + 1) % len(sortCycle)
		m.Sort = sortCycle[m.SortIdx]
		m.clampCursors()
		return m, nil

	case "f":
		m.CategoryIdx = (m.CategoryIdx + 1) % len(categoryCycle)
		m.clampCursors()
		return m, nil

	case "d":
		m.Theme = NewTheme(!m.Theme.Dark)
		dark := m.Theme.Dark
		baseDir := m.BaseDir
		return m, func() tea.Msg {
			if baseDir != "" {
				_ = config.SetDarkMode(baseDir, dark)
			}
			return nil
		}

	case "r":
		return m, m.fetchAll()
	}

	return m, nil
}

// handleDetailKey processes keys while the reward detail modal is open
func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc", "enter":
		m.DetailOpen = false
		m.DetailReward = nil
		m.DetailRender = ""
		m.DetailScroll = 0
	case "up", "k":
		if m.DetailScroll > 0 {
			m.DetailScroll--
		}
	case "down", "j":
		m.DetailScroll++
	case "a":
		if m.DetailReward != nil {
			m.Cart.Add(*m.DetailReward)
			m.StatusMessage = "Added to cart: " + m.DetailReward.Name
			m.StatusIsError = false
			return m, clearStatusAfter()
		}
	}
	return m, nil
}

// handleCartKey processes keys while the cart modal is open
func (m Model) handleCartKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	lines := m.Cart.Lines()

	switch msg.String() {
	case "q", "esc", "c":
		m.CartOpen = false
		return m, nil

	case "up", "k":
		if m.CartCursor > 0 {
			m.CartCursor--
		}
		return m, nil

	case "down", "j":
		if m.CartCursor < len(lines)-1 {
			m.CartCursor++
		}
		return m, nil

	case "x", "backspace", "delete":
		if m.CartCursor < len(lines) {
			removed := lines[m.CartCursor].Reward
			m.Cart.Remove(removed.ID)
			if m.CartCursor >= m.Cart.Len() && m.CartCursor > 0 {
				m.CartCursor--
			}
			m.StatusMessage = "Removed from cart: " + removed.Name
			m.StatusIsError = false
			return m, clearStatusAfter()
		}
		return m, nil

	case "enter":
		if len(lines) == 0 {
			return m, nil
		}
		total := m.Cart.Total()
		ids := m.Cart.Checkout(time.Now())
		m.CartOpen = false
		m.CartCursor = 0
		m.HistoryOpen = true
		m.HistoryScroll = 0
		m.StatusMessage = fmt.Sprintf("Checked out %d item(s) for %d pts", len(ids), total)
		m.StatusIsError = false
		return m, tea.Batch(settleAfter(ids), clearStatusAfter())
	}

	return m, nil
}

// openSelection opens the modal for the active panel's selected row
func (m Model) openSelection() (tea.Model, tea.Cmd) {
	switch m.ActivePanel {
	case PanelRewards:
		rewards := m.visibleRewards()
		i := m.Cursor[PanelRewards]
		if i >= len(rewards) {
			return m, nil
		}
		reward := rewards[i]
		m.DetailOpen = true
		m.DetailReward = &reward
		m.DetailRender = ""
		m.DetailScroll = 0
		if reward.Description != "" {
			return m, m.renderDetailAsync(reward.ID, reward.Description, m.detailContentWidth())
		}
		return m, nil

	case PanelUsers:
		users := m.Stores.Users.Items()
		i := m.Cursor[PanelUsers]
		if i >= len(users) {
			return m, nil
		}
		m.UserHistoryOpen = true
		m.UserHistoryID = users[i].ID
		m.UserHistoryScroll = 0
		return m, nil
	}

	return m, nil
}

// addSelectedToCart adds the rewards panel's selected reward to the cart
func (m Model) addSelectedToCart() (tea.Model, tea.Cmd) {
	if m.ActivePanel != PanelRewards {
		return m, nil
	}
	rewards := m.visibleRewards()
	i := m.Cursor[PanelRewards]
	if i >= len(rewards) {
		return m, nil
	}
	m.Cart.Add(rewards[i])
	m.StatusMessage = "Added to cart: " + rewards[i].Name
	m.StatusIsError = false
	return m, clearStatusAfter()
}

// panelRowCount returns how many selectable rows the panel currently has
func (m Model) panelRowCount(p Panel) int {
	switch p {
	case PanelRewards:
		return len(m.visibleRewards())
	case PanelUsers:
		return m.Stores.Users.Len()
	case PanelActivity:
		return m.Stores.Activities.Len()
	}
	return 0
}

// clampCursors keeps every panel cursor within its row count after a refresh
// or filter change
func (m *Model) clampCursors() {
	for _, p := range []Panel{PanelRewards, PanelUsers, PanelActivity} {
		count := m.panelRowCount(p)
		if count == 0 {
			m.Cursor[p] = 0
			m.ScrollOffset[p] = 0
			continue
		}
		if m.Cursor[p] >= count {
			m.Cursor[p] = count - 1
		}
		if m.ScrollOffset[p] > m.Cursor[p] {
			m.ScrollOffset[p] = m.Cursor[p]
		}
	}
}

// ensureCursorVisible scrolls the active panel so the cursor stays on screen
func (m *Model) ensureCursorVisible() {
	p := m.ActivePanel
	visible := m.panelContentHeight()
	if visible <= 0 {
		return
	}
	if m.Cursor[p] < m.ScrollOffset[p] {
		m.ScrollOffset[p] = m.Cursor[p]
	}
	if m.Cursor[p] >= m.ScrollOffset[p]+visible {
		m.ScrollOffset[p] = m.Cursor[p] - visible + 1
	}
}

// detailContentWidth returns the inner width of the detail modal
func (m Model) detailContentWidth() int {
	modalWidth := m.Width * 70 / 100
	if modalWidth > 80 {
		modalWidth = 80
	}
	if modalWidth < 40 {
		modalWidth = 40
	}
	// Content width accounts for border (2) and padding (2) = 4
	return modalWidth - 4
}

// panelContentHeight returns the rows available inside one panel
func (m Model) panelContentHeight() int {
	footerHeight := 1
	searchBarHeight := 0
	if m.SearchMode || m.SearchQuery != "" {
		searchBarHeight = 2
	}
	panelHeight := (m.Height - footerHeight - searchBarHeight) / 3
	return panelHeight - 3 // title + border
}
