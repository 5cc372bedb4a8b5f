package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/exp/rand"

	cl "chesslib/chesslib"
)

func main() {
	seed := flag.Uint64("seed", 0, "Seed for move selection (0 = time based)")
	flag.Parse()
	if *seed == 0 {
		*seed = uint64(time.Now().UnixNano())
	}
	uciLoop(os.Stdin, os.Stdout, cl.NewRand(*seed))
}

// uciLoop speaks enough UCI to play random pseudo-legal moves.
func uciLoop(in io.Reader, out io.Writer, rng *rand.Rand) {
	scanner := bufio.NewScanner(in)
	board := cl.StartingPosition() // the game board

	for scanner.Scan() {
		line := scanner.Text()
		tokens := strings.Fields(line)
		if len(tokens) == 0 { // ignore blank lines
			continue
		}
		switch strings.ToLower(tokens[0]) {
		case "uci":
			fmt.Fprintln(out, "id name chesslib random mover")
			fmt.Fprintln(out, "id author chesslib")
			fmt.Fprintln(out, "uciok")
		case "isready":
			fmt.Fprintln(out, "readyok")
		case "ucinewgame":
			board = cl.StartingPosition()
		case "quit":
			return
		case "position":
			next, err := parsePosition(tokens[1:])
			if err != nil {
				fmt.Fprintf(out, "info string %v\n", err)
				continue
			}
			board = next
		case "go":
			if m, ok := board.NextMove(rng); ok {
				fmt.Fprintln(out, "bestmove", m)
			} else {
				fmt.Fprintln(out, "bestmove 0000")
			}
		case "d":
			fmt.Fprint(out, board.String())
			fmt.Fprintln(out, "Fen:", board.FEN())
		case "perft":
			if len(tokens) < 2 {
				fmt.Fprintln(out, "info string Malformed perft command")
				continue
			}
			depth, err := strconv.Atoi(tokens[1])
			if err != nil || depth < 1 {
				fmt.Fprintln(out, "info string Malformed perft command; could not convert depth")
				continue
			}
			fmt.Fprintln(out, "nodes", cl.Perft(board, depth))
		default:
			fmt.Fprintf(out, "info string Unknown command %q\n", tokens[0])
		}
	}
}

// parsePosition handles "startpos|fen <fen> [moves m1 m2 ...]". The position is
// only returned when every move applied cleanly.
func parsePosition(args []string) (*cl.Position, error) {
	if len(args) == 0 {
		return nil, errors.New("malformed position command")
	}
	movesAt := len(args)
	for i, a := range args {
		if a == "moves" {
			movesAt = i
			break
		}
	}

	var board *cl.Position
	switch args[0] {
	case "startpos":
		board = cl.StartingPosition()
	case "fen":
		var err error
		board, err = cl.ParseFEN(strings.Join(args[1:movesAt], " "))
		if err != nil {
			return nil, err
		}
	default:
		return nil, errors.New("malformed position command; expected startpos or fen")
	}

	if movesAt >= len(args) {
		return board, nil
	}
	for _, text := range args[movesAt+1:] {
		m, err := cl.ParseMove(text)
		if err != nil {
			return nil, err
		}
		if err := board.TryApply(m); err != nil {
			return nil, fmt.Errorf("move %s: %w", text, err)
		}
	}
	return board, nil
}
