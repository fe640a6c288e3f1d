// Command generate runs the accretion engine for one seed and prints the
// resulting star and planets to stdout, without touching Postgres or
// Redis. Useful for scripting and for sanity-checking a seed by hand.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"stellarforge/internal/accretion"
	"stellarforge/internal/stellar"
	"stellarforge/internal/system"
)

func main() {
	seed := flag.Uint64("seed", 0, "seed to generate from (0 draws one from the wall clock)")
	outermost := flag.Float64("outermost-planet-au", 50.0, "outer edge of the legal orbital range, in AU")
	maxInjections := flag.Int("max-injections", 10000, "safety cap on planetesimal injections per run")
	flag.Parse()

	var resolvedSeed *uint64
	if *seed != 0 {
		resolvedSeed = seed
	}
	actualSeed := accretion.ResolveSeed(resolvedSeed)

	constants := accretion.DefaultDoleConstants()
	constants.OutermostPlanet = *outermost
	constants.MaxInjections = *maxInjections

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	rand := accretion.NewLCG(actualSeed)
	star := stellar.NewGenerator(rand).GenerateStar()

	driver, err := accretion.NewDriver(star, constants, rand, logger)
	if err != nil {
		fmt.Fprintln(os.Stderr, "invalid constants:", err)
		os.Exit(1)
	}

	result := driver.GenerateSystem(actualSeed)
	planets := system.BuildPlanets(result, star, constants)

	output := struct {
		Seed    uint64      `json:"seed"`
		Star    interface{} `json:"star"`
		Planets interface{} `json:"planets"`
		Stats   interface{} `json:"stats"`
	}{
		Seed:    actualSeed,
		Star:    star,
		Planets: planets,
		Stats:   result.Stats,
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(output); err != nil {
		fmt.Fprintln(os.Stderr, "failed to encode output:", err)
		os.Exit(1)
	}
}
