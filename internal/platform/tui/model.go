package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-mines/internal/config"
	"github.com/vovakirdan/tui-mines/internal/core"
	"github.com/vovakirdan/tui-mines/internal/dependencies/clock"
	"github.com/vovakirdan/tui-mines/internal/dependencies/random"
	"github.com/vovakirdan/tui-mines/internal/games/minesweeper"
	"github.com/vovakirdan/tui-mines/internal/kit"
)

// headerRows is the number of screen rows above the board frame.
const headerRows = 2

// relayoutMsg carries a coalesced terminal size.
type relayoutMsg struct {
	width  int
	height int
}

// Options configures a Model.
type Options struct {
	Config        config.MinesConfig
	Source        random.Source // Mine placement, crypto if nil
	Clock         clock.Clock   // Play time, wall clock if nil
	Logger        *log.Logger   // Discarded if nil
	Width         int           // Initial terminal size, 0 if unknown
	Height        int
	ScreenshotDir string // Defaults to ~/.arcade/screenshots

	// OnFinish is called once per game when it is won or lost.
	OnFinish func(phase minesweeper.Phase, elapsed time.Duration)
}

// Model is the Bubble Tea model for a Minesweeper session.
type Model struct {
	opts     Options
	session  *minesweeper.Session
	renderer *minesweeper.ScreenRenderer
	screen   *core.Screen
	mapper   CellMapper
	keys     KeyMap
	help     help.Model
	cursor   minesweeper.Coord
	width    int
	height   int
	laidOut  bool
	reported bool // OnFinish already called for the current game
	status   string
	quitting bool

	relayout chan relayoutMsg
	throttle *kit.Throttle[relayoutMsg]

	// done is closed once the program ends; it releases the relayout waiter.
	done      chan struct{}
	closeOnce *sync.Once
}

// NewModel creates a model with a fresh game laid out for the given size.
func NewModel(opts Options) (Model, error) {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Clock == nil {
		opts.Clock = clock.New()
	}
	disp := opts.Config.Display
	msgs := opts.Config.Messages

	screen := core.NewScreen(opts.Width, opts.Height)
	renderer := minesweeper.NewScreenRenderer(screen, 1, headerRows+1, disp.CellWidth, disp.CellHeight)
	session, err := minesweeper.NewSession(minesweeper.Options{
		Source:   opts.Source,
		Renderer: renderer,
		Clock:    opts.Clock,
		Logger:   opts.Logger,
		Messages: minesweeper.Messages{Intro: msgs.Intro, Won: msgs.Won, Lost: msgs.Lost},
	})
	if err != nil {
		return Model{}, fmt.Errorf("cannot start game: %w", err)
	}

	ch := make(chan relayoutMsg, 1)
	m := Model{
		opts:      opts,
		session:   session,
		renderer:  renderer,
		screen:    screen,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		relayout:  ch,
		done:      make(chan struct{}),
		closeOnce: &sync.Once{},
		throttle: kit.NewThrottle(func(msg relayoutMsg) {
			// Keep only the latest size.
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- msg:
			default:
			}
		}, disp.ResizeDelay(), disp.ResizeMaxDelay()),
	}
	m = m.layout(opts.Width, opts.Height)
	m.laidOut = opts.Width > 0 && opts.Height > 0
	return m, nil
}

// Init starts the resize listener and the HUD clock.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.waitForRelayout(), clockCmd(clockInterval))
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg), nil

	case tea.WindowSizeMsg:
		if !m.laidOut {
			m = m.layout(msg.Width, msg.Height)
			m.laidOut = true
			return m, nil
		}
		m.throttle.Call(relayoutMsg{width: msg.Width, height: msg.Height})
		return m, nil

	case relayoutMsg:
		return m.layout(msg.width, msg.height), m.waitForRelayout()

	case ClockMsg:
		return m, clockCmd(clockInterval)
	}

	return m, nil
}

// waitForRelayout blocks until the throttle releases a size or the model
// is closed, in which case it yields no message.
func (m Model) waitForRelayout() tea.Cmd {
	ch, done := m.relayout, m.done
	return func() tea.Msg {
		select {
		case msg := <-ch:
			return msg
		case <-done:
			return nil
		}
	}
}

// Close stops pending relayouts and releases the relayout waiter.
// It is safe to call more than once.
func (m Model) Close() {
	m.closeOnce.Do(func() {
		m.throttle.Stop()
		close(m.done)
	})
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)
	switch action {
	case core.ActionQuit:
		m.quitting = true
		m.Close()
		return m, tea.Quit
	case core.ActionScreenshot:
		path, err := m.saveScreenshot()
		if err != nil {
			m.opts.Logger.Warn("screenshot failed", "error", err)
			m.status = "Screenshot failed"
		} else {
			m.status = "Saved " + path
		}
	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
	case core.ActionRestart:
		return m.restart(), nil
	case core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight:
		dx, dy := action.Delta()
		m.cursor = m.clampCursor(m.cursor.Col+dx, m.cursor.Row+dy)
	case core.ActionPrimary, core.ActionSecondary:
		return m.apply(action, m.cursor), nil
	}
	return m, nil
}

// handleMouse moves the cursor to the cell under the pointer and applies
// clicks to it. Events outside the board are ignored.
func (m Model) handleMouse(msg tea.MouseMsg) Model {
	action, ok := MouseAction(msg)
	if !ok {
		return m
	}
	c, inside := m.mapper.Map(msg.X, msg.Y)
	if !inside {
		return m
	}
	m.cursor = c
	if action == core.ActionNone {
		return m
	}
	return m.apply(action, c)
}

// apply forwards a board action to the session and reports a finished game.
func (m Model) apply(action core.Action, c minesweeper.Coord) Model {
	m.status = ""
	switch action {
	case core.ActionPrimary:
		m.session.HandlePrimary(c)
	case core.ActionSecondary:
		m.session.HandleSecondary(c)
	}

	if m.session.Over() && !m.reported {
		m.reported = true
		if m.opts.OnFinish != nil {
			m.opts.OnFinish(m.session.Phase(), m.session.Elapsed())
		}
	}
	return m
}

func (m Model) restart() Model {
	if err := m.session.Restart(); err != nil {
		m.opts.Logger.Error("restart failed", "error", err)
		return m
	}
	m.reported = false
	m.status = ""
	return m
}

func (m Model) clampCursor(col, row int) minesweeper.Coord {
	last := m.session.Board().Size() - 1
	return minesweeper.C(core.Clamp(col, 0, last), core.Clamp(row, 0, last))
}

// layout sizes the screen for the terminal, centers the board and repaints
// everything from game state.
func (m Model) layout(width, height int) Model {
	size := m.session.Board().Size()
	r := m.renderer
	frameW := size*r.CellWidth + 2
	frameH := size*r.CellHeight + 2

	m.width, m.height = width, height
	m.screen.Resize(max(width, frameW), headerRows+frameH)
	m.screen.Clear()

	r.OriginX = (m.screen.Width()-frameW)/2 + 1
	r.OriginY = headerRows + 1
	r.DrawFrame(size)
	m.session.Redraw()

	m.mapper = CellMapper{
		OriginX:    r.OriginX,
		OriginY:    r.OriginY,
		CellWidth:  r.CellWidth,
		CellHeight: r.CellHeight,
		Size:       size,
	}
	m.help.Width = width
	return m
}

// HUD expands the configured HUD template.
func (m Model) HUD() string {
	b := m.session.Board()
	return kit.StringReplace(m.opts.Config.Messages.HUD, map[string]string{
		"{mines}": strconv.Itoa(b.MineCount()),
		"{flags}": strconv.Itoa(b.FlagCount()),
		"{time}":  kit.FormatClock(m.session.Elapsed()),
	})
}

// drawHeader paints the status line and HUD above the board.
func (m Model) drawHeader() {
	line, color := m.session.Message(), core.ColorWhite
	switch {
	case m.status != "":
		line, color = m.status, core.ColorCyan
	case m.session.Phase() == minesweeper.PhaseWon:
		color = core.ColorBrightGreen
	case m.session.Phase() == minesweeper.PhaseLost:
		color = core.ColorBrightRed
	}

	m.screen.ClearLine(0)
	m.screen.ClearLine(1)
	m.screen.DrawTextCentered(0, line, color)
	m.screen.DrawTextCentered(1, m.HUD(), core.ColorGray)
}

// saveScreenshot writes the current screen as plain text and returns its path.
func (m Model) saveScreenshot() (string, error) {
	m.drawHeader()

	dir := m.opts.ScreenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot get home directory: %w", err)
		}
		dir = filepath.Join(home, ".arcade", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("cannot create screenshot directory: %w", err)
	}

	timestamp := m.opts.Clock.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("mines_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("cannot write screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.drawHeader()
	var highlight core.Rect
	if !m.session.Over() {
		highlight = m.renderer.CellRect(m.cursor)
	}
	return RenderScreen(m.screen, highlight) + "\n" + m.help.View(m.keys)
}

// Session returns the running game.
func (m Model) Session() *minesweeper.Session {
	return m.session
}

// Cursor returns the keyboard cursor position.
func (m Model) Cursor() minesweeper.Coord {
	return m.cursor
}

// Mapper returns the current pointer mapping.
func (m Model) Mapper() CellMapper {
	return m.mapper
}

// Run starts a local game in the terminal.
func Run(opts Options) error {
	model, err := NewModel(opts)
	if err != nil {
		return err
	}

	defer model.Close()

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),      // Use alternate screen buffer
		tea.WithMouseAllMotion(), // Pointer motion moves the cursor
	)

	_, err = p.Run()
	return err
}
