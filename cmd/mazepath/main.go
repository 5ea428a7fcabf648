// Command mazepath reads a reindeer maze and prints the lowest score and the
// number of tiles on any best path.
//
// Usage:
//
//	mazepath [flags] [input.txt]
//	mazepath -serve :8080
package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/mazepath/gridmap"
	"github.com/katalvlaran/mazepath/search"
	"github.com/katalvlaran/mazepath/server"
	"github.com/katalvlaran/mazepath/solver"
	"github.com/katalvlaran/mazepath/statespace"
)

var log = logrus.New()

func main() {
	headingName := flag.String("heading", solver.DefaultHeading.String(), "Start heading: N, E, S or W")
	step := flag.Int64("step", statespace.DefaultCosts().Step, "Cost of one step forward")
	turn := flag.Int64("turn", statespace.DefaultCosts().Turn, "Cost of one 90° turn")
	show := flag.Bool("show", false, "Draw the maze with best-path tiles marked O")
	verbose := flag.Bool("v", false, "Debug logging")
	serve := flag.String("serve", "", "Serve POST /solve on this address instead of reading a file")
	flag.Parse()

	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	opts := []search.Option{search.WithStepCost(*step), search.WithTurnCost(*turn)}

	if *serve != "" {
		srv := &http.Server{
			Addr:              *serve,
			Handler:           server.New(server.WithLogger(log)),
			ReadHeaderTimeout: 10 * time.Second,
		}
		log.WithField("addr", *serve).Info("listening")
		log.Fatal(srv.ListenAndServe())
	}

	inputFileName := "input.txt"
	if flag.NArg() > 0 {
		inputFileName = flag.Arg(0)
	}
	heading, err := statespace.ParseHeading(*headingName)
	if err != nil {
		log.Fatal(err)
	}

	text, err := os.ReadFile(inputFileName)
	if err != nil {
		log.Fatal(err)
	}
	pz, err := gridmap.Parse(string(text))
	if err != nil {
		log.WithField("file", inputFileName).Fatal(err)
	}
	log.WithFields(logrus.Fields{
		"file":  inputFileName,
		"rows":  pz.Map.Height(),
		"cols":  pz.Map.Width(),
		"open":  pz.Map.OpenCount(),
		"map":   pz.Map.Fingerprint(),
		"start": pz.Start,
		"goal":  pz.Goal,
	}).Debug("parsed maze")

	if *verbose {
		expanded := 0
		opts = append(opts, search.WithOnExpand(func(s statespace.Stamped) {
			expanded++
			if expanded%10000 == 0 {
				log.WithField("cost", s.Cost).Debugf("expanded %d states", expanded)
			}
		}))
	}

	began := time.Now()
	ans, err := solver.SolvePuzzle(pz, heading, opts...)
	if err != nil {
		log.Fatal(err)
	}
	log.WithFields(logrus.Fields{
		"expanded": ans.Expanded,
		"elapsed":  time.Since(began),
	}).Debug("solved")

	if *show {
		marks := make(map[gridmap.Position]rune, len(ans.Tiles))
		for _, p := range ans.Tiles {
			marks[p] = 'O'
		}
		fmt.Println(pz.Map.Render(marks))
	}
	fmt.Println(ans.MinimalCost)
	fmt.Println(ans.TileCount)
}
