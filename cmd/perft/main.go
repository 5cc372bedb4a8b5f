package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/pprof"
	"sort"
	"time"

	gm "github.com/Oliverans/GooseEngineMG/goosemg"

	cl "chesslib/chesslib"
)

func main() {
	fen := flag.String("fen", cl.FENStartPos, "FEN string (defaults to initial position)")
	depth := flag.Int("depth", 0, "Perft depth (required)")
	divide := flag.Bool("divide", false, "Print per-move node counts at root")
	crosscheck := flag.Bool("crosscheck", false, "Compare root moves with goosemg pseudo-legal generation")
	repeat := flag.Int("repeat", 1, "Repeat perft N times and report aggregate (for steadier timings)")
	label := flag.String("label", "", "Optional label prefix for one-line output")
	cpuProf := flag.String("cpuprofile", "", "Write CPU profile to file during run")
	memProf := flag.String("memprofile", "", "Write heap profile to file after run")
	flag.Parse()

	if *depth <= 0 {
		fmt.Fprintln(os.Stderr, "-depth must be > 0")
		os.Exit(2)
	}

	board, err := cl.ParseFEN(*fen)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ParseFEN error: %v\n", err)
		os.Exit(2)
	}

	if *crosscheck {
		if err := crossCheck(board, *fen); err != nil {
			fmt.Fprintf(os.Stderr, "crosscheck: %v\n", err)
			os.Exit(2)
		}
	}

	// Optional divide output
	if *divide {
		div := cl.PerftDivide(board, *depth)
		type kv struct {
			m cl.Move
			n uint64
		}
		arr := make([]kv, 0, len(div))
		var sum uint64
		for m, n := range div {
			arr = append(arr, kv{m, n})
			sum += n
		}
		sort.Slice(arr, func(i, j int) bool { return arr[i].m.String() < arr[j].m.String() })
		for _, x := range arr {
			fmt.Printf("%s: %d\n", x.m, x.n)
		}
		fmt.Printf("Total: %d\n", sum)
		return
	}

	if *cpuProf != "" {
		f, err := os.Create(*cpuProf)
		if err != nil {
			fmt.Fprintf(os.Stderr, "creating cpuprofile: %v\n", err)
			os.Exit(2)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			fmt.Fprintf(os.Stderr, "start cpu profile: %v\n", err)
			os.Exit(2)
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	var totalNodes uint64
	start := time.Now()
	for i := 0; i < *repeat; i++ {
		totalNodes += cl.Perft(board, *depth)
	}
	elapsed := time.Since(start)
	nps := float64(totalNodes) / elapsed.Seconds()

	// Single line: Depth Nodes Time NPS
	fmt.Printf("%s \t%d \t\t%d \t\t%s \t%.0f\n", *label, *depth, totalNodes, elapsed, nps)

	if *memProf != "" {
		f, err := os.Create(*memProf)
		if err != nil {
			fmt.Fprintf(os.Stderr, "creating memprofile: %v\n", err)
			os.Exit(2)
		}
		if err := pprof.WriteHeapProfile(f); err != nil {
			fmt.Fprintf(os.Stderr, "write heap profile: %v\n", err)
			os.Exit(2)
		}
		_ = f.Close()
	}
}

// crossCheck prints root moves that only one of the two generators produces.
// goosemg also emits castling, en passant and promotions, so differences are
// expected in positions where those apply.
func crossCheck(board *cl.Position, fen string) error {
	ref, err := gm.ParseFEN(fen)
	if err != nil {
		return err
	}
	theirs := make(map[string]bool)
	for _, m := range ref.GeneratePseudoMoves() {
		theirs[m.String()] = true
	}
	ours := make(map[string]bool)
	for _, s := range board.GenerateMoveStrings() {
		ours[s] = true
	}

	var onlyOurs, onlyTheirs []string
	for s := range ours {
		if !theirs[s] {
			onlyOurs = append(onlyOurs, s)
		}
	}
	for s := range theirs {
		if !ours[s] {
			onlyTheirs = append(onlyTheirs, s)
		}
	}
	sort.Strings(onlyOurs)
	sort.Strings(onlyTheirs)
	fmt.Printf("crosscheck: %d chesslib moves, %d goosemg moves\n", len(ours), len(theirs))
	for _, s := range onlyOurs {
		fmt.Printf("  only chesslib: %s\n", s)
	}
	for _, s := range onlyTheirs {
		fmt.Printf("  only goosemg:  %s\n", s)
	}
	return nil
}
