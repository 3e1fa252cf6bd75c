package minesweeper

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-mines/internal/dependencies/clock"
	"github.com/vovakirdan/tui-mines/internal/dependencies/random"
)

// Phase is the session-level game state. Won and Lost are terminal.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseWon
	PhaseLost
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseWon:
		return "won"
	case PhaseLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Renderer draws cell state changes. The session only calls it for cells
// whose state just changed, except on Redraw.
type Renderer interface {
	DrawHidden(c Coord)
	DrawRevealed(c Coord, adjacent int)
	DrawFlagged(c Coord, flagged bool)
	DrawMineField(coords []Coord, exploded bool)
}

// NopRenderer discards all drawing.
type NopRenderer struct{}

func (NopRenderer) DrawHidden(Coord)            {}
func (NopRenderer) DrawRevealed(Coord, int)     {}
func (NopRenderer) DrawFlagged(Coord, bool)     {}
func (NopRenderer) DrawMineField([]Coord, bool) {}

// Messages holds the status lines shown for each phase.
type Messages struct {
	Intro string
	Won   string
	Lost  string
}

// DefaultMessages returns the built-in status lines.
func DefaultMessages() Messages {
	return Messages{
		Intro: "Clear the field without stepping on a mine",
		Won:   "You win!",
		Lost:  "You lose!",
	}
}

// Options configures a Session. Zero fields fall back to defaults.
type Options struct {
	Size     int           // Board side, DefaultFieldSize if 0
	Mines    int           // Mine count, DefaultMineCount if 0
	Source   random.Source // Mine placement randomness, crypto if nil
	Renderer Renderer      // Drawing target, NopRenderer if nil
	Clock    clock.Clock   // Play time source, wall clock if nil
	Logger   *log.Logger   // Phase change log, discarded if nil
	Messages Messages      // Status lines, DefaultMessages if empty
}

// Session is a single game: it owns the board, tracks the phase and turns
// player input into board calls and renderer requests.
// A session must be driven from one goroutine.
type Session struct {
	opts    Options
	board   *Board
	phase   Phase
	started time.Time
	ended   time.Time
}

// NewSession validates opts, places the mines and draws every cell hidden.
func NewSession(opts Options) (*Session, error) {
	if opts.Size == 0 {
		opts.Size = DefaultFieldSize
	}
	if opts.Mines == 0 {
		opts.Mines = DefaultMineCount
	}
	if err := ValidateDimensions(opts.Size, opts.Mines); err != nil {
		return nil, err
	}
	if opts.Source == nil {
		opts.Source = random.NewCrypto()
	}
	if opts.Renderer == nil {
		opts.Renderer = NopRenderer{}
	}
	if opts.Clock == nil {
		opts.Clock = clock.New()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Messages == (Messages{}) {
		opts.Messages = DefaultMessages()
	}

	s := &Session{opts: opts}
	if err := s.Restart(); err != nil {
		return nil, err
	}
	return s, nil
}

// Restart discards the current board and starts a new game.
func (s *Session) Restart() error {
	b, err := NewBoard(s.opts.Size, s.opts.Mines, s.opts.Source)
	if err != nil {
		return err
	}
	s.board = b
	s.phase = PhasePlaying
	s.started = s.opts.Clock.Now()
	s.ended = time.Time{}
	s.opts.Logger.Debug("new game", "size", b.Size(), "mines", b.MineCount())
	s.Redraw()
	return nil
}

// Board returns the board for read access.
func (s *Session) Board() *Board {
	return s.board
}

// Phase returns the current phase.
func (s *Session) Phase() Phase {
	return s.phase
}

// Over reports whether the game reached a terminal phase.
func (s *Session) Over() bool {
	return s.phase != PhasePlaying
}

// Message returns the status line for the current phase.
func (s *Session) Message() string {
	switch s.phase {
	case PhaseWon:
		return s.opts.Messages.Won
	case PhaseLost:
		return s.opts.Messages.Lost
	default:
		return s.opts.Messages.Intro
	}
}

// Elapsed returns the play time. It stops counting once the game is over.
func (s *Session) Elapsed() time.Duration {
	end := s.ended
	if end.IsZero() {
		end = s.opts.Clock.Now()
	}
	return end.Sub(s.started)
}

// HandlePrimary steps on c. Out-of-range and flagged cells are ignored, as is
// any input after the game is over.
func (s *Session) HandlePrimary(c Coord) {
	if s.phase != PhasePlaying || !s.board.InBounds(c) {
		return
	}
	cell := s.board.Cell(c)
	switch {
	case cell.Flagged(), cell.IsRevealed():
		return
	case cell.IsMine():
		s.finish(PhaseLost, c)
		s.opts.Renderer.DrawMineField(s.board.MineCoords(), true)
		return
	}

	changed := s.board.Reveal(c)
	for _, rc := range changed {
		s.opts.Renderer.DrawRevealed(rc, s.board.Cell(rc).Adjacent())
	}
	s.opts.Logger.Debug("reveal", "col", c.Col, "row", c.Row, "revealed", len(changed))

	if s.board.IsWon() {
		s.finish(PhaseWon, c)
		s.opts.Renderer.DrawMineField(s.board.MineCoords(), false)
	}
}

// HandleSecondary toggles the flag on c. Revealed and out-of-range cells are
// ignored, as is any input after the game is over.
func (s *Session) HandleSecondary(c Coord) {
	if s.phase != PhasePlaying || !s.board.InBounds(c) {
		return
	}
	if s.board.Cell(c).IsRevealed() {
		return
	}
	s.opts.Renderer.DrawFlagged(c, s.board.ToggleFlag(c))
}

// Redraw paints every cell from the current state.
func (s *Session) Redraw() {
	r := s.opts.Renderer
	s.board.grid.Each(func(c Coord, cell Cell) {
		switch {
		case cell.IsRevealed():
			r.DrawRevealed(c, cell.Adjacent())
		case cell.Flagged():
			r.DrawFlagged(c, true)
		default:
			r.DrawHidden(c)
		}
	})
	switch s.phase {
	case PhaseLost:
		r.DrawMineField(s.board.MineCoords(), true)
	case PhaseWon:
		r.DrawMineField(s.board.MineCoords(), false)
	}
}

func (s *Session) finish(p Phase, at Coord) {
	s.phase = p
	s.ended = s.opts.Clock.Now()
	s.opts.Logger.Debug("game over",
		"phase", p,
		"col", at.Col,
		"row", at.Row,
		"revealed", s.board.RevealedCount(),
		"elapsed", s.Elapsed(),
	)
}
