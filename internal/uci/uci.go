// Package uci drives the engine over the Universal Chess Interface protocol.
package uci

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/ianagbip1oti/vesper/internal/board"
	"github.com/ianagbip1oti/vesper/internal/engine"
)

// UCI implements the Universal Chess Interface protocol.
//
// Only lane 0 of the position is the game; moves received from the GUI are
// played in every lane so the helper lanes start each search from the same
// position.
type UCI struct {
	engine   *engine.Engine
	position *board.Position

	in  io.Reader
	out io.Writer
	log zerolog.Logger
}

// New creates a new UCI protocol handler reading commands from in and
// writing responses to out.
func New(eng *engine.Engine, in io.Reader, out io.Writer) *UCI {
	return &UCI{
		engine:   eng,
		position: board.NewPosition(),
		in:       in,
		out:      out,
		log:      zerolog.Nop(),
	}
}

// SetLogger sets the logger for protocol diagnostics.
func (u *UCI) SetLogger(l zerolog.Logger) {
	u.log = l
}

// Run reads commands until "quit" or end of input.
func (u *UCI) Run() error {
	scanner := bufio.NewScanner(u.in)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		parts := strings.Fields(line)
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "uci":
			u.handleUCI()
		case "isready":
			u.println("readyok")
		case "ucinewgame":
			u.position = board.NewPosition()
		case "position":
			u.handlePosition(args)
		case "go":
			u.handleGo(args)
		case "stop":
			// searches run to completion before the next command is read
		case "quit":
			return nil
		case "setoption":
			u.handleSetOption(args)
		// Debug commands
		case "d":
			u.printf("%s", u.position.String())
		case "eval":
			u.handleEval()
		case "perft":
			u.handlePerft(args)
		default:
			u.log.Debug().Str("command", cmd).Msg("unknown-command")
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read commands: %w", err)
	}
	return nil
}

// handleUCI responds to the "uci" command.
func (u *UCI) handleUCI() {
	u.println("id name Vesper")
	u.println("id author Vesper Authors")
	u.println()
	u.printf("option name Depth type spin default %d min 0 max %d\n", engine.DefaultDepth, engine.MaxDepth)
	u.println("uciok")
}

// handlePosition parses and sets up a position.
// Formats:
//   - position startpos
//   - position startpos moves e2e4 e7e5
//   - position fen <fen>
//   - position fen <fen> moves e2e4
func (u *UCI) handlePosition(args []string) {
	if len(args) == 0 {
		return
	}

	movesAt := len(args)
	for i, arg := range args {
		if arg == "moves" {
			movesAt = i
			break
		}
	}

	switch args[0] {
	case "startpos":
		u.position = board.NewPosition()
	case "fen":
		u.position = board.ParseLayout(strings.Join(args[1:movesAt], " "))
	default:
		u.log.Warn().Str("kind", args[0]).Msg("unknown-position")
		return
	}

	if movesAt+1 >= len(args) {
		return
	}
	for _, moveStr := range args[movesAt+1:] {
		move, err := board.ParseLaneMove(moveStr, u.position, 0)
		if err != nil {
			// Unplayable moves are skipped and the rest still applied.
			u.log.Warn().Err(err).Str("move", moveStr).Msg("skip-move")
			continue
		}
		u.position.ApplyLaneMove(move)
	}
}

// handleGo runs a search and reports the best move. Only "depth" is
// honoured; clock parameters are ignored.
func (u *UCI) handleGo(args []string) {
	depth := u.engine.Depth()
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "depth":
			if i+1 < len(args) {
				if d, err := strconv.Atoi(args[i+1]); err == nil {
					depth = d
				}
				i++
			}
		case "wtime", "btime", "winc", "binc", "movestogo", "movetime", "nodes", "mate":
			i++
		}
	}

	u.engine.OnInfo = u.sendInfo
	best := u.engine.Search(u.position.Copy(), depth)
	u.printf("bestmove %s\n", best)
}

// sendInfo outputs search info in UCI format.
func (u *UCI) sendInfo(info engine.SearchInfo) {
	parts := []string{
		fmt.Sprintf("depth %d", info.Depth),
		fmt.Sprintf("score cp %d", info.Score),
		fmt.Sprintf("nodes %d", info.Nodes),
		fmt.Sprintf("time %d", info.Time.Milliseconds()),
	}
	if info.Time > 0 {
		nps := uint64(float64(info.Nodes) / info.Time.Seconds())
		parts = append(parts, fmt.Sprintf("nps %d", nps))
	}
	if !info.Move.IsNull() {
		parts = append(parts, "pv "+info.Move.String())
	}
	if info.Cached {
		parts = append(parts, "string cached")
	}
	u.printf("info %s\n", strings.Join(parts, " "))
}

// handleSetOption handles "setoption name <name> value <value>".
func (u *UCI) handleSetOption(args []string) {
	var name, value string
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "name":
			if i+1 < len(args) {
				name = args[i+1]
				i++
			}
		case "value":
			if i+1 < len(args) {
				value = args[i+1]
				i++
			}
		}
	}

	switch strings.ToLower(name) {
	case "depth":
		d, err := strconv.Atoi(value)
		if err != nil {
			u.log.Warn().Str("value", value).Msg("bad-depth")
			return
		}
		u.engine.SetDepth(d)
	default:
		u.log.Debug().Str("name", name).Msg("unknown-option")
	}
}

// handleEval prints the static score of every lane.
func (u *UCI) handleEval() {
	scores := u.engine.Evaluate(u.position)
	u.printf("info string eval %d %d %d %d\n", scores[0], scores[1], scores[2], scores[3])
}

// handlePerft runs a perft test and prints the node count.
func (u *UCI) handlePerft(args []string) {
	depth := 1
	if len(args) > 0 {
		if d, err := strconv.Atoi(args[0]); err == nil {
			depth = d
		}
	}
	nodes := u.engine.Perft(u.position, depth)
	u.printf("info string perft %d nodes %d\n", depth, nodes)
}

func (u *UCI) println(a ...any) {
	fmt.Fprintln(u.out, a...)
}

func (u *UCI) printf(format string, a ...any) {
	fmt.Fprintf(u.out, format, a...)
}
