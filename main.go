package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"triqui/config"
	"triqui/experiments"
	"triqui/game"
	"triqui/gamemaster"
	"triqui/player"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	configPath := flag.String("config", "config.yml", "YAML config file, skipped when missing")
	mode := flag.String("mode", "play", "play or experiment")
	seed := flag.Uint64("seed", 0, "Random seed, 0 keeps the configured one")
	experiment := flag.String("experiment", "", fmt.Sprintf("Experiment to run, one of %v", experiments.Names))
	flag.Parse()

	defer func() {
		if r := recover(); r != nil {
			log.Error().Msgf("fatal: %v", r)
			os.Exit(1)
		}
	}()

	conf := config.MustLoad(*configPath)
	initLogger(conf)
	if *seed != 0 {
		conf.Seed = *seed
	}

	var err error
	switch *mode {
	case "play":
		err = play(conf)
	case "experiment":
		if *experiment != "" {
			conf.Experiment.Name = *experiment
		}
		err = runExperiment(conf)
	default:
		err = fmt.Errorf("unknown mode %q", *mode)
	}
	if err != nil {
		log.Error().Err(err).Msg("exiting")
		os.Exit(1)
	}
}

func initLogger(conf *config.Config) {
	zerolog.SetGlobalLevel(conf.Level())
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}).
		With().
		Timestamp().
		Logger()
}

func play(conf *config.Config) error {
	options := []gamemaster.Option{
		gamemaster.WithIterations(conf.Play.Iterations),
		gamemaster.WithTreeDepth(conf.Play.TreeDepth),
		gamemaster.WithRand(game.NewRand(conf.Seed)),
	}
	if conf.Play.Preset {
		options = append(options, gamemaster.WithPresetAnalysis(conf.Play.ShowAnalysis, conf.Play.ShowTree))
	}

	gm := gamemaster.NewGameMaster(player.NewPrompter(os.Stdin, os.Stdout), options...)
	return gm.Run()
}

func runExperiment(conf *config.Config) error {
	report, err := experiments.Run(conf.Experiment.Name, experiments.Settings{
		Games:       conf.Experiment.Games,
		Iterations:  conf.Experiment.Iterations,
		Temperature: conf.Experiment.Temperature,
		Dir:         conf.Experiment.Dir,
		Seed:        conf.Seed,
	})
	if err != nil {
		return err
	}

	for id, wins := range report.Wins() {
		if id < 0 {
			log.Info().Int("games", wins).Msg("draws")
			continue
		}
		log.Info().Int("agent", id).Int("games", wins).Msg("wins")
	}
	for _, t := range experiments.SummarizeThroughput(report.Moves) {
		log.Info().
			Int("iterations", t.Iterations).
			Int("searches", t.Searches).
			Float64("iterations_per_second", t.IterationsPerSecond).
			Float64("mean_tree_size", t.MeanTreeSize).
			Msg("throughput")
	}
	return nil
}
