package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"squares/internal/app"
	"squares/internal/core"
	"squares/internal/version"
	_ "squares/pkg/sims/squares"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if cfg.Version {
		fmt.Println(version.String())
		return
	}

	factory, err := core.Lookup(cfg.Sim)
	if err != nil {
		log.Fatal(err)
	}
	cells, err := cfg.SeedCells()
	if err != nil {
		log.Fatalf("seed: %v", err)
	}
	sim, err := factory(cfg.SimConfig(cells))
	if err != nil {
		log.Fatalf("%s: %v", cfg.Sim, err)
	}

	runner := app.New(os.Stdout, core.NewFixedStep(cfg.TPS), cfg.Verify)
	if err := runner.Run(sim, cfg.Iterations); err != nil {
		log.Fatal(err)
	}
}
