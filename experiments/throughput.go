package experiments

import (
	"time"

	"blokus/experiments/metrics"
	"blokus/game"
	"blokus/meta"
)

// DepthExperiment pits a minimax agent of each depth against three greedy
// agents.
func DepthExperiment(depths []int, weights game.Weights, experiment meta.Experiment) Config {
	baseline := metrics.AgentConfig{ID: 0, Kind: KindGreedy}
	configs := []metrics.AgentConfig{baseline}
	matchUps := []MatchUp{}
	for i, depth := range depths {
		config := metrics.AgentConfig{ID: i + 1, Kind: KindMinimax, Depth: depth, Duration: TimeBudget, Weights: weights}
		configs = append(configs, config)
		matchUps = append(matchUps, MatchUp{config, baseline, baseline, baseline})
	}

	return Config{Name: "depth", Configs: configs, MatchUps: matchUps, Experiment: experiment}
}

// ThroughputExperiment seats the same minimax config at every seat, once per
// depth, for the same playing strength and similar game length. The move
// records give nodes searched per unit of time.
func ThroughputExperiment(depths []int, duration time.Duration, experiment meta.Experiment) Config {
	configs := []metrics.AgentConfig{}
	matchUps := []MatchUp{}
	for i, depth := range depths {
		config := metrics.AgentConfig{ID: i + 1, Kind: KindMinimax, Depth: depth, Duration: duration}
		configs = append(configs, config)
		matchUps = append(matchUps, MatchUp{config, config, config, config})
	}

	return Config{Name: "throughput", Configs: configs, MatchUps: matchUps, Experiment: experiment}
}

// BaselineExperiment measures the greedy agent against random play.
func BaselineExperiment(seed uint64, experiment meta.Experiment) Config {
	greedy := metrics.AgentConfig{ID: 1, Kind: KindGreedy}
	random := metrics.AgentConfig{ID: 2, Kind: KindRandom, Seed: seed}

	return Config{
		Name:       "baseline",
		Configs:    []metrics.AgentConfig{greedy, random},
		MatchUps:   []MatchUp{{greedy, random, random, random}},
		Experiment: experiment,
	}
}

// Throughput is the number of nodes searched per second over all recorded moves.
func Throughput(moves []metrics.MoveRecord) float64 {
	var nodes int
	var elapsed time.Duration
	for _, m := range moves {
		nodes += m.Nodes
		elapsed += m.Duration
	}
	if elapsed <= 0 {
		return 0
	}
	return float64(nodes) / elapsed.Seconds()
}
