package experiments

import (
	"fmt"

	"triqui/engine"
	"triqui/experiments/metrics"
	"triqui/game"
	"triqui/player"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

const (
	KindMCTS   = "mcts"
	KindRandom = "random"
)

// Names lists the experiments Run knows about
var Names = []string{"strength", "iterations", "throughput"}

// Run starts the experiment with the given name
func Run(name string, settings Settings) (*Report, error) {
	switch name {
	case "strength":
		return RunStrengthExperiment(settings)
	case "iterations":
		return RunIterationsExperiment(settings)
	case "throughput":
		return RunThroughputExperiment(settings)
	default:
		return nil, fmt.Errorf("unknown experiment %q, want one of %v", name, Names)
	}
}

// Settings shared by every experiment
type Settings struct {
	Games       int // Per match up
	Iterations  int // Baseline MCTS iterations
	Temperature float64
	Dir         string
	Seed        uint64
}

// RunStrengthExperiment pairs the baseline MCTS agent against a random
// agent, once with each agent moving first
func RunStrengthExperiment(settings Settings) (*Report, error) {
	mcts := metrics.AgentConfig{ID: 1, Kind: KindMCTS, Iterations: settings.Iterations}
	random := metrics.AgentConfig{ID: 2, Kind: KindRandom}
	matchUps := [][]metrics.AgentConfig{
		{mcts, random},
		{random, mcts},
	}

	return runExperiment("strength", settings, []metrics.AgentConfig{mcts, random}, matchUps)
}

// RunIterationsExperiment pairs agents with growing iteration budgets
// against the baseline agent
func RunIterationsExperiment(settings Settings) (*Report, error) {
	baseline := metrics.AgentConfig{ID: 0, Kind: KindMCTS, Iterations: settings.Iterations}
	configs := []metrics.AgentConfig{
		{ID: 1, Kind: KindMCTS, Iterations: 10},
		{ID: 2, Kind: KindMCTS, Iterations: 100},
		{ID: 3, Kind: KindMCTS, Iterations: 1000},
	}

	// Each matchup pairs the baseline agent against a budget agent
	matchUps := [][]metrics.AgentConfig{}
	for _, config := range configs {
		matchUps = append(matchUps, []metrics.AgentConfig{baseline, config})
	}

	return runExperiment("iterations", settings, append(configs, baseline), matchUps)
}

// Report holds what an experiment played and where it was stored
type Report struct {
	Dir   string
	Games []metrics.GameRecord
	Moves []metrics.MoveRecord
}

// Wins counts won games per agent id. Draws are keyed by -1.
func (r *Report) Wins() map[int]int {
	wins := map[int]int{}
	for _, g := range r.Games {
		switch g.Winner {
		case game.PlayerOne.String():
			wins[g.Agent1]++
		case game.PlayerTwo.String():
			wins[g.Agent2]++
		default:
			wins[-1]++
		}
	}
	return wins
}

func runExperiment(name string, settings Settings, configs []metrics.AgentConfig, matchUps [][]metrics.AgentConfig) (*Report, error) {
	rng := game.NewRand(settings.Seed)

	// Run a number of games for each matchup
	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment...", name)

	for mi, matchup := range matchUps {
		config1 := matchup[0]
		config2 := matchup[1]

		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(matchUps), config1, config2)

		for i := 0; i < settings.Games; i++ {
			outcome, gameMetric, moveMetrics, err := runGame(config1, config2, settings.Temperature, rng)
			if err != nil {
				return nil, fmt.Errorf("failed to run matchup %d game %d: %w", mi+1, i+1, err)
			}

			count++
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Agent1:     config1.ID,
				Agent2:     config2.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			log.Debug().Msgf("completed matchup %d of %d game %d with outcome: %s", mi+1, len(matchUps), i+1, outcome)
		}
		log.Info().Msgf("completed matchup %d of %d", mi+1, len(matchUps))
	}

	log.Info().Msgf("completed %s experiment", name)

	dir, err := store(name, settings.Dir, configs, gameRecords, moveRecords)
	if err != nil {
		return nil, err
	}
	log.Info().Str("dir", dir).Msg("stored experiment results")
	return &Report{Dir: dir, Games: gameRecords, Moves: moveRecords}, nil
}

// store writes the experiment metadata and results under dir/name
func store(name, dir string, configs []metrics.AgentConfig, gameRecords []metrics.GameRecord, moveRecords []metrics.MoveRecord) (string, error) {
	writer, err := metrics.NewWriter(dir, name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	if err := writer.WriteAgentConfigs(configs); err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return "", fmt.Errorf("failed to store game records: %w", err)
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return "", fmt.Errorf("failed to store move records: %w", err)
	}
	return writer.Dir(), nil
}

// runGame executes a single game between two agents
func runGame(config1, config2 metrics.AgentConfig, temperature float64, rng *rand.Rand) (game.Outcome, metrics.GameMetric, []metrics.MoveMetric, error) {
	agents := []engine.Agent{
		createAgent(config1, temperature, rng),
		createAgent(config2, temperature, rng),
	}
	e := engine.LocalEngine(agents, engine.WithBoard(game.NewBoard(game.WithRand(rng))))

	return e.Run()
}

func createAgent(config metrics.AgentConfig, temperature float64, rng *rand.Rand) engine.Agent {
	switch config.Kind {
	case KindRandom:
		return player.NewRandom(rng)
	case KindMCTS:
		machine := player.NewMachine(
			player.WithIterations(config.Iterations),
			player.WithTemperature(temperature),
			player.WithSearchMetrics(),
			player.WithMachineRand(rng),
		)
		log.Debug().Int("agent", config.ID).Int("iterations", machine.Iterations()).Msg("created mcts agent")
		return machine
	default:
		panic(fmt.Sprintf("unknown agent kind %q", config.Kind))
	}
}
