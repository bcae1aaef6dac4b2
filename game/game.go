package game

import (
	"errors"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type GameConfig struct {
	Width, Height int
	NumMines      int

	// Seed for mine placement. 0 picks one from the clock.
	Seed int64

	// Maximum number of moves that can be undone. 0 means unlimited.
	MaxUndo int

	// Path to directory where final snapshots of boards should be saved
	SavedSnapshotsDir string

	Logger logrus.FieldLogger
}

func NewGameConfig() GameConfig {
	easy := Difficulties[0]
	return GameConfig{
		Width:    easy.Width,
		Height:   easy.Height,
		NumMines: easy.NumMines,
		MaxUndo:  0,
	}
}

func (config GameConfig) logger() logrus.FieldLogger {
	if config.Logger != nil {
		return config.Logger
	}
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// Session is one game in progress: the live board, its undo history and the
// RNG that lays out mines for this and subsequent games.
type Session struct {
	id     uuid.UUID
	config GameConfig
	seed   int64
	rand   *rand.Rand
	moves  int

	board   *Board
	history *History
	state   BoardState

	log logrus.FieldLogger
}

func StartGame(config GameConfig) (*Session, error) {
	if err := validateDimensions(config.Width, config.Height, config.NumMines); err != nil {
		return nil, err
	}

	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	session := &Session{
		config:  config,
		history: NewHistory(config.MaxUndo),
		log:     config.logger(),
	}
	if err := session.reset(seed); err != nil {
		return nil, err
	}
	return session, nil
}

func (session *Session) reset(seed int64) error {
	rng := rand.New(rand.NewSource(seed))
	board, err := createBoard(session.config.Width, session.config.Height, session.config.NumMines, rng)
	if err != nil {
		return err
	}

	session.id = uuid.New()
	session.seed = seed
	session.rand = rng
	session.moves = 0
	session.board = board
	session.state = Ongoing
	session.history.Clear()

	session.log.WithFields(logrus.Fields{
		"session": session.id,
		"seed":    seed,
		"width":   board.width,
		"height":  board.height,
		"mines":   board.numMines,
	}).Info("game started")
	return nil
}

// NewGame discards the current board and history and lays out a fresh board
// with the next seed from the session's RNG.
func (session *Session) NewGame() error {
	return session.reset(session.rand.Int63())
}

func (session *Session) ID() uuid.UUID {
	return session.id
}

func (session *Session) Seed() int64 {
	return session.seed
}

// Moves counts accepted reveals, flags and chords. Undos are not counted.
func (session *Session) Moves() int {
	return session.moves
}

func (session *Session) Board() *Board {
	return session.board
}

func (session *Session) State() BoardState {
	return session.state
}

func (session *Session) IsWon() bool {
	return session.state == Won
}

func (session *Session) IsLost() bool {
	return session.state == Lost
}

func (session *Session) canPlay() bool {
	return session.state == Ongoing
}

func (session *Session) CanUndo() bool {
	return session.canPlay() && session.history.CanUndo()
}

func (session *Session) UndoDepth() int {
	return session.history.Len()
}

// UndoLimit is the most moves that can be undone, or 0 for no limit.
func (session *Session) UndoLimit() int {
	return session.history.MaxDepth()
}

// Snapshot returns the grid to render. Once the game has ended every mine is
// shown and misplaced flags are marked.
func (session *Session) Snapshot() GridView {
	if session.canPlay() {
		return session.board.Grid()
	}
	return session.board.exposed()
}

func (session *Session) Reveal(row, col int) (RevealResult, error) {
	var result RevealResult
	err := session.move("reveal", row, col, func() (err error) {
		result, err = session.board.Reveal(row, col)
		return err
	})
	return result, err
}

func (session *Session) Chord(row, col int) (RevealResult, error) {
	var result RevealResult
	err := session.move("chord", row, col, func() (err error) {
		result, err = session.board.Chord(row, col)
		return err
	})
	return result, err
}

func (session *Session) ToggleFlag(row, col int) (FlagResult, error) {
	var result FlagResult
	err := session.move("flag", row, col, func() (err error) {
		result, err = session.board.ToggleFlag(row, col)
		return err
	})
	return result, err
}

func (session *Session) Undo() error {
	if !session.canPlay() {
		return ErrGameOver
	}
	if err := session.history.Undo(session.board); err != nil {
		return err
	}

	session.log.WithFields(logrus.Fields{
		"session":   session.id,
		"remaining": session.history.Len(),
	}).Debug("undo")
	return nil
}

// move applies mutate and updates the game state. The board is recorded in
// history only once mutate succeeds, so a rejected move leaves the history
// untouched. Board moves validate before changing anything.
func (session *Session) move(op string, row, col int, mutate func() error) error {
	if !session.canPlay() {
		return ErrGameOver
	}

	before := session.board.snapshot()
	if err := mutate(); err != nil {
		session.log.WithFields(logrus.Fields{
			"session": session.id,
			"row":     row,
			"col":     col,
		}).WithError(err).Debug(op + " rejected")
		return err
	}
	session.history.Push(before)
	session.moves++

	session.log.WithFields(logrus.Fields{
		"session":  session.id,
		"row":      row,
		"col":      col,
		"revealed": session.board.numRevealed,
	}).Debug(op)

	switch {
	case session.board.IsLost():
		session.endGame(Lost)
	case session.board.IsWon():
		session.endGame(Won)
	}
	return nil
}

func (session *Session) endGame(state BoardState) {
	session.state = state

	session.log.WithFields(logrus.Fields{
		"session": session.id,
		"moves":   session.moves,
		"state":   state,
	}).Info("game ended")

	if err := session.saveSnapshot(time.Now()); err != nil {
		session.log.WithField("session", session.id).WithError(err).Warn("could not save board snapshot")
	}
}

func (session *Session) record() *BoardRecord {
	return &BoardRecord{
		Session:         session.id.String(),
		Seed:            session.seed,
		State:           session.state.String(),
		Moves:           session.moves,
		SerializedBoard: session.Snapshot().String(),
	}
}

func (session *Session) saveSnapshot(t time.Time) error {
	dir := session.config.SavedSnapshotsDir
	if dir == "" {
		return nil
	}

	stat, err := os.Stat(dir)
	if err != nil {
		if !os.IsNotExist(err) {
			return err
		}
		if err := os.MkdirAll(dir, 0777); err != nil {
			return err
		}
	} else if !stat.Mode().IsDir() {
		return errors.New(dir + " is not a directory; cannot save snapshots to it")
	}

	out, err := session.record().Serialize()
	if err != nil {
		return err
	}

	path := filepath.Join(dir, session.generateReplayFilename(t))
	if err := os.WriteFile(path, []byte(out), 0644); err != nil {
		return err
	}

	session.log.WithFields(logrus.Fields{
		"session": session.id,
		"path":    path,
	}).Info("saved board snapshot")
	return nil
}

func (session *Session) generateReplayFilename(t time.Time) string {
	filenameBuilder := strings.Builder{}

	filenameBuilder.WriteString(t.Format("20060102_150405_"))
	filenameBuilder.WriteString(session.state.String())
	filenameBuilder.WriteString("_")
	filenameBuilder.WriteString(session.id.String()[:8])
	filenameBuilder.WriteString(".yaml")

	return filenameBuilder.String()
}
