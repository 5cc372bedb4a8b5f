package main

import (
	"flag"
	"fmt"
	"log"
	"math/bits"
	"os"
	"runtime"
	"runtime/pprof"
	"time"

	cl "chesslib/chesslib"
)

func main() {
	plies := flag.Int("plies", 200, "maximum plies per game")
	games := flag.Int("games", 1, "number of random games to play")
	seed := flag.Uint64("seed", 1, "seed for move sampling")
	fen := flag.String("fen", "", "FEN to start from (empty = startpos)")
	verbose := flag.Bool("v", false, "print every move and the final board")
	cpuProfile := flag.String("cpuprofile", "", "write CPU profile to file")
	memProfile := flag.String("memprofile", "", "write memory profile (heap) to file")
	flag.Parse()

	if *plies <= 0 || *games <= 0 {
		log.Fatalf("plies and games must be positive, got %d and %d", *plies, *games)
	}

	if *cpuProfile != "" {
		f, err := os.Create(*cpuProfile)
		if err != nil {
			log.Fatalf("could not create CPU profile: %v", err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatalf("could not start CPU profile: %v", err)
		}
		defer func() {
			pprof.StopCPUProfile()
			f.Close()
		}()
	}

	start := cl.StartingPosition()
	if *fen != "" {
		p, err := cl.ParseFEN(*fen)
		if err != nil {
			log.Fatalf("ParseFEN: %v", err)
		}
		start = p
	}

	fmt.Printf("playout: games=%d plies=%d seed=%d\n", *games, *plies, *seed)

	r := cl.NewRand(*seed)
	var totalPlies, totalMoves int
	startAll := time.Now()
	for g := 0; g < *games; g++ {
		board := *start
		played := 0
		for ; played < *plies; played++ {
			totalMoves += len(board.GenerateMoves())
			m, ok := board.NextMove(r)
			if !ok {
				break
			}
			if *verbose {
				fmt.Printf("%d. %v\n", played+1, m)
			}
			board.Apply(m)
			if !board.Validate() {
				log.Fatalf("game %d ply %d: position invalid after %v", g+1, played+1, m)
			}
		}
		totalPlies += played
		if *verbose {
			fmt.Print(board.String())
			fmt.Println("Fen:", board.FEN())
		}
		fmt.Printf("game %d: plies=%d white=%d black=%d\n", g+1, played,
			bits.OnesCount64(board.AnyWhite()), bits.OnesCount64(board.AnyBlack()))
	}
	elapsed := time.Since(startAll)
	avg := 0.0
	if totalPlies > 0 {
		avg = float64(totalMoves) / float64(totalPlies)
	}
	fmt.Printf("total: plies=%d avg_moves=%.1f time=%v\n", totalPlies, avg, elapsed)

	if *memProfile != "" {
		f, err := os.Create(*memProfile)
		if err != nil {
			log.Fatalf("could not create memory profile: %v", err)
		}
		defer f.Close()

		runtime.GC()
		if err := pprof.WriteHeapProfile(f); err != nil {
			log.Fatalf("could not write memory profile: %v", err)
		}
	}
}

