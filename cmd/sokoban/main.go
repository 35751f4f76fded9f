// Command sokoban solves a level and prints the shortest move
// sequence. Levels are JSON files holding a grid of feature lists, e.g.
//
//	[[["wall"],["wall"],["wall"]],
//	 [["wall"],["player"],["wall"]], ...]
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/ndsweep/ndsweep-server/internal/sokoban"
)

var log = logrus.New()

func main() {
	levelPath := flag.String("level", "", "path to a JSON level file")
	flag.Parse()

	log.SetFormatter(&logrus.TextFormatter{ForceColors: true})

	if *levelPath == "" {
		log.Fatal("usage: sokoban -level <file>")
	}

	buf, err := os.ReadFile(*levelPath)
	if err != nil {
		log.Fatal("unable to read level: ", err)
	}

	var level [][][]string
	if err := json.Unmarshal(buf, &level); err != nil {
		log.Fatal("unable to parse level: ", err)
	}

	game, err := sokoban.NewGame(level)
	if err != nil {
		log.Fatal("invalid level: ", err)
	}

	moves, ok := sokoban.Solve(game)
	if !ok {
		log.Fatal("level is unsolvable")
	}

	log.WithField("moves", len(moves)).Info("solved")
	for _, move := range moves {
		fmt.Println(move)
	}
}
