package engine

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"sync"

	"blokus/communication"
	"blokus/experiments/metrics"
	"blokus/game"
	"blokus/searcher/agent"

	"github.com/rs/zerolog/log"
)

// remoteAgent asks a player speaking the line protocol for its moves.
type remoteAgent struct {
	name   string
	mu     sync.Mutex
	in     io.Writer
	out    *bufio.Scanner
	seated bool
}

// NewRemoteAgent talks to a player that reads updates from in and answers on out.
func NewRemoteAgent(name string, in io.Writer, out io.Reader) agent.Agent {
	return &remoteAgent{name: name, in: in, out: bufio.NewScanner(out)}
}

// FindMove passes when the remote player fails; the game master then rejects
// the pass if a move was available.
func (a *remoteAgent) FindMove(ctx context.Context, state *game.State, player game.Seat) (game.Move, metrics.SearchMetric) {
	a.mu.Lock()
	defer a.mu.Unlock()

	move, err := a.requestMove(ctx, state, player)
	if err != nil {
		log.Error().Err(err).Str("agent", a.name).Msg("remote player failed")
		return game.PassMove, metrics.SearchMetric{}
	}
	return move, metrics.SearchMetric{}
}

func (a *remoteAgent) requestMove(ctx context.Context, state *game.State, player game.Seat) (game.Move, error) {
	if err := ctx.Err(); err != nil {
		return game.PassMove, err
	}
	if !a.seated {
		if err := a.send(communication.EncodeSeat(player)); err != nil {
			return game.PassMove, err
		}
		a.seated = true
	}

	data, indices, err := communication.EncodeState(state, true)
	if err != nil {
		return game.PassMove, err
	}
	if err := a.send(data); err != nil {
		return game.PassMove, err
	}

	for a.out.Scan() {
		line := a.out.Text()
		if communication.IsDebug(line) {
			log.Debug().Str("agent", a.name).Msg(line)
			continue
		}

		move, err := communication.ParseMove(line)
		if err != nil || move.IsPass() {
			return move, err
		}
		if move.Piece >= len(indices[player]) {
			return game.PassMove, fmt.Errorf("%s answered unknown piece %d", a.name, move.Piece)
		}
		move.Piece = indices[player][move.Piece]
		return move, nil
	}
	if err := a.out.Err(); err != nil {
		return game.PassMove, err
	}
	return game.PassMove, io.ErrUnexpectedEOF
}

func (a *remoteAgent) send(line []byte) error {
	if _, err := a.in.Write(append(line, '\n')); err != nil {
		return fmt.Errorf("failed to send update to %s: %w", a.name, err)
	}
	return nil
}

// StartProcess launches a player program and wires its stdin and stdout to
// a remote agent. Its stderr is passed through. The returned function closes
// the program's input and waits for it to exit.
func StartProcess(ctx context.Context, path string, args ...string) (agent.Agent, func() error, error) {
	cmd := exec.CommandContext(ctx, path, args...)
	cmd.Stderr = os.Stderr
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open stdin of %s: %w", path, err)
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open stdout of %s: %w", path, err)
	}
	if err := cmd.Start(); err != nil {
		return nil, nil, fmt.Errorf("failed to start %s: %w", path, err)
	}

	stop := func() error {
		stdin.Close()
		return cmd.Wait()
	}
	return NewRemoteAgent(path, stdin, stdout), stop, nil
}
