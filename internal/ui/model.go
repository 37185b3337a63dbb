package ui

import (
	"log"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"swipepager/internal/config"
	"swipepager/internal/domain"
	"swipepager/internal/eventbus"
	"swipepager/internal/pager"
	"swipepager/internal/ui/input"
	inputtypes "swipepager/internal/ui/input/types"
	"swipepager/internal/ui/views"
)

// Size used until the first WindowSizeMsg arrives
const (
	initialWidth  = 80
	initialHeight = 24
)

// Model represents the UI state
type Model struct {
	bus    eventbus.EventBus
	config *config.Config
	pager  *pager.Pager

	// UI-specific state
	width       int
	height      int
	help        help.Model
	showStatus  bool
	dragStartX  int  // pointer column where the current drag began
	inPagerMode bool // tracks if we're currently in pager mode
	err         error

	renderer     *views.Renderer
	inputHandler *input.Handler
	helpRenderer *HelpRenderer
	helpOps      *HelpOps

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model. The pager starts at a nominal size and
// is resized on the first WindowSizeMsg.
func NewModel(bus eventbus.EventBus, cfg *config.Config) (*Model, error) {
	if bus == nil {
		bus = eventbus.NullBus{}
	}

	m := &Model{
		bus:          bus,
		config:       cfg,
		help:         help.New(),
		showStatus:   cfg.UI.ShowStatus,
		renderer:     views.NewRenderer(cfg.Pager.CornerRadius),
		inputHandler: input.New(),
		helpRenderer: NewHelpRenderer(),
		helpOps:      NewHelpOps(),
	}

	p, err := pager.New(cfg.Pager.Options(initialWidth, float64(m.pagesHeight(initialHeight))), bus)
	if err != nil {
		return nil, err
	}
	m.pager = p
	return m, nil
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	if m.helpOps != nil {
		m.helpOps.SetProgram(p)
	}
}

// Pager returns the pager the model drives
func (m *Model) Pager() *pager.Pager {
	return m.pager
}

// ActiveIndex implements inputtypes.Context
func (m *Model) ActiveIndex() domain.Page {
	return m.pager.ActiveIndex()
}

// Dragging implements inputtypes.Context
func (m *Model) Dragging() bool {
	return m.pager.Gesture().Dragging()
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return tea.SetWindowTitle("swipepager")
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.resizePager()

	case tea.MouseMsg:
		if m.config.UI.Mouse {
			m.handleMouse(msg)
		}

	case tea.KeyMsg:
		var cmds []tea.Cmd
		for _, action := range m.inputHandler.HandleKey(msg, m) {
			if cmd := m.processAction(action); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
		return m, tea.Batch(cmds...)

	case pauseRenderingMsg:
		m.inPagerMode = true

	case resumeRenderingMsg:
		m.inPagerMode = false

	case helpPagerMsg:
		if msg.err != nil {
			// Pager failed: log only; do not surface in status bar
			log.Printf("Help pager failed: %v", msg.err)
		}
	}

	return m, nil
}

// handleMouse turns left-button press, motion and release into a drag. The
// translation is the pointer's column distance from where the press landed.
func (m *Model) handleMouse(msg tea.MouseMsg) {
	dragging := m.Dragging()

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || dragging {
			return
		}
		m.dragStartX = msg.X
		m.pager.HandleDrag(pager.DragEvent{Phase: domain.DragStart})
		m.inputHandler.ChangeMode(inputtypes.ModeDragging, m)

	case tea.MouseActionMotion:
		if !dragging {
			return
		}
		m.pager.HandleDrag(pager.DragEvent{
			Phase:       domain.DragMove,
			Translation: float64(msg.X - m.dragStartX),
		})

	case tea.MouseActionRelease:
		if !dragging {
			return
		}
		// the release may land without a final motion event
		m.pager.HandleDrag(pager.DragEvent{
			Phase:       domain.DragMove,
			Translation: float64(msg.X - m.dragStartX),
		})
		m.pager.HandleDrag(pager.DragEvent{Phase: domain.DragEnd})
		m.inputHandler.ChangeMode(inputtypes.ModeNormal, m)
	}
}

// processAction executes one input action
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.StepAction:
		m.pager.Step(a.Direction)

	case inputtypes.CancelDragAction:
		m.pager.HandleDrag(pager.DragEvent{Phase: domain.DragCancel})
		m.inputHandler.ChangeMode(inputtypes.ModeNormal, m)

	case inputtypes.ToggleStatusAction:
		m.showStatus = !m.showStatus
		m.resizePager()

	case inputtypes.ToggleHelpAction:
		return m.fetchHelpPager(m.helpRenderer.RenderHelpContent(m.inputHandler.Keys()))

	case inputtypes.QuitAction:
		return tea.Quit
	}
	return nil
}

// fetchHelpPager returns a command that shows help using ov pager
func (m *Model) fetchHelpPager(helpContent string) tea.Cmd {
	return func() tea.Msg {
		if m.program == nil {
			return helpPagerMsg{err: m.helpOps.ShowHelpInPager(helpContent)}
		}

		// Send pause message to stop rendering
		m.program.Send(pauseRenderingMsg{})

		err := m.helpOps.ShowHelpInPager(helpContent)

		// Send resume message to restart rendering
		m.program.Send(resumeRenderingMsg{})

		return helpPagerMsg{err: err}
	}
}

// chromeHeight is the number of rows below the pages
func (m *Model) chromeHeight() int {
	rows := 1 // help line
	if m.showStatus {
		rows++
	}
	return rows
}

func (m *Model) pagesHeight(total int) int {
	return max(total-m.chromeHeight(), 1)
}

// resizePager hands the terminal size to the pager. Sizes the pager would
// reject (a zero-width terminal) leave the previous layout in place.
func (m *Model) resizePager() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	if err := m.pager.Resize(float64(m.width), float64(m.pagesHeight(m.height))); err != nil {
		log.Printf("Resize to %dx%d failed: %v", m.width, m.height, err)
		m.err = err
		return
	}
	m.err = nil
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}
	if m.inPagerMode {
		return ""
	}
	if m.err != nil {
		return m.renderer.Error(m.err, m.width, m.height)
	}

	frame := m.pager.Render(m.renderer.Pages())

	var b strings.Builder
	b.WriteString(m.renderer.Render(frame, m.width, m.pagesHeight(m.height)))
	if m.showStatus {
		b.WriteString("\n")
		b.WriteString(m.renderer.Status(frame, m.Dragging(), m.width))
	}
	b.WriteString("\n")
	b.WriteString(m.help.View(m.inputHandler.Keys()))
	return b.String()
}
