// Command mines plays a board of any rank in the terminal. Moves are
// read from stdin, one per line:
//
//	d <c0> <c1> ...   dig a cell
//	r                 forfeit
//	q                 quit
package main

import (
	"bufio"
	"flag"
	"fmt"
	"hash/maphash"
	"math/rand/v2"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"

	"github.com/ndsweep/ndsweep-server/internal/mines"
)

var log = logrus.New()

var (
	dimsFlag  string
	mineCount int
	seed      uint64
	logPath   string
)

func init() {
	flag.StringVar(&dimsFlag, "dims", "9x9", "board dimensions, e.g. 9x9 or 4x4x4")
	flag.IntVar(&mineCount, "mines", 10, "number of mines")
	flag.Uint64Var(&seed, "seed", 0, "rng seed (0 picks a random one)")
	flag.StringVar(&logPath, "log", "", "append logs to this file")
}

func setupLogging() {
	log.SetLevel(logrus.InfoLevel)
	log.SetFormatter(&logrus.TextFormatter{ForceColors: true})

	if logPath == "" {
		return
	}
	hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
		Filename:   logPath,
		MaxSize:    10, // MB
		MaxBackups: 3,
		Level:      logrus.DebugLevel,
		Formatter:  &logrus.JSONFormatter{},
	})
	if err != nil {
		log.Fatal("unable to open log file: ", err)
	}
	log.AddHook(hook)
}

func parseDims(s string) (mines.Dims, error) {
	var dims mines.Dims
	for _, axis := range strings.Split(s, "x") {
		v, err := strconv.Atoi(strings.TrimSpace(axis))
		if err != nil {
			return nil, fmt.Errorf("bad axis %q: %w", axis, err)
		}
		dims = append(dims, v)
	}
	if !dims.Valid() {
		return nil, fmt.Errorf("dimensions must be positive")
	}
	return dims, nil
}

func parseCell(args []string, rank int) (mines.Coord, error) {
	if len(args) != rank {
		return nil, fmt.Errorf("dig needs exactly %d components", rank)
	}
	cell := make(mines.Coord, rank)
	for i, arg := range args {
		v, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("component %d must be an int", i)
		}
		cell[i] = v
	}
	return cell, nil
}

// printBoard writes the glyph grid as a stack of 2-D slabs, one per
// combination of the leading axes. Rank-1 boards print as a single row.
func printBoard(game *mines.GameState, revealAll bool) {
	dims := game.Dims
	if dims.Rank() == 1 {
		glyphs := game.Render(revealAll)
		var b strings.Builder
		for i := range dims[0] {
			b.WriteString(glyphs.At(mines.Coord{i}))
		}
		fmt.Println(b.String())
		return
	}

	glyphs := game.Render(revealAll)
	rows, cols := dims[dims.Rank()-2], dims[dims.Rank()-1]
	lead := mines.Dims(dims[:dims.Rank()-2])

	printSlab := func(prefix mines.Coord) {
		if len(prefix) > 0 {
			fmt.Printf("slab %v\n", []int(prefix))
		}
		for row := range rows {
			var b strings.Builder
			for col := range cols {
				cell := append(append(mines.Coord{}, prefix...), row, col)
				b.WriteString(glyphs.At(cell))
			}
			fmt.Println(b.String())
		}
	}

	if lead.Rank() == 0 {
		printSlab(nil)
		return
	}
	for prefix := range lead.Coordinates() {
		printSlab(prefix)
		fmt.Println()
	}
}

func main() {
	flag.Parse()
	setupLogging()

	dims, err := parseDims(dimsFlag)
	if err != nil {
		log.Fatal("bad -dims: ", err)
	}

	if seed == 0 {
		seed = new(maphash.Hash).Sum64()
	}
	rnd := rand.New(rand.NewPCG(seed, seed))
	log.WithFields(logrus.Fields{
		"dims": dims, "mines": mineCount, "seed": seed,
	}).Info("starting game")

	// First dig opens the board center so the opening move is safe.
	center := make(mines.Coord, dims.Rank())
	for i, d := range dims {
		center[i] = d / 2
	}
	mineCoords, err := mines.RandomMines(dims, mineCount, center, rnd)
	if err != nil {
		log.Fatal("unable to place mines: ", err)
	}
	game, err := mines.NewGame(dims, mineCoords)
	if err != nil {
		log.Fatal("unable to create game: ", err)
	}
	if _, err := game.Dig(center); err != nil {
		log.Fatal("unable to open starting cell: ", err)
	}

	printBoard(game, false)

	scanner := bufio.NewScanner(os.Stdin)
	for !game.Status.Terminal() {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		tokens := strings.Fields(scanner.Text())
		if len(tokens) == 0 {
			continue
		}
		switch cmd, args := tokens[0], tokens[1:]; cmd {
		case "q":
			return
		case "r":
			game.Forfeit()
		case "d":
			cell, err := parseCell(args, dims.Rank())
			if err != nil {
				fmt.Println(err)
				continue
			}
			revealed, err := game.Dig(cell)
			if err != nil {
				fmt.Println(err)
				continue
			}
			log.WithFields(logrus.Fields{
				"cell": cell, "revealed": revealed, "status": game.Status,
			}).Debug("dig")
		default:
			fmt.Printf("unknown command %q\n", cmd)
			continue
		}
		printBoard(game, game.Status.Terminal())
	}

	switch game.Status {
	case mines.StatusVictory:
		fmt.Println("you won!")
	case mines.StatusDefeat:
		fmt.Println("you lost.")
	}
}
