package game

// Weights are the linear coefficients of the position heuristic.
type Weights struct {
	Coverage        float64 `yaml:"coverage"`
	BonusMultiplier float64 `yaml:"bonus_multiplier"`
	Corner          float64 `yaml:"corner"`
}

func DefaultWeights() Weights {
	return Weights{
		Coverage:        1,
		BonusMultiplier: 3,
		Corner:          0.5,
	}
}

// BonusSquares is the read-only set of cells worth extra coverage.
type BonusSquares map[Point]struct{}

func NewBonusSquares(points []Point) BonusSquares {
	bonus := make(BonusSquares, len(points))
	for _, p := range points {
		bonus[p] = struct{}{}
	}
	return bonus
}

func (b BonusSquares) Has(p Point) bool {
	_, ok := b[p]
	return ok
}

func (b BonusSquares) Points() []Point {
	points := make([]Point, 0, len(b))
	for p := range b {
		points = append(points, p)
	}
	return points
}

// Score adds up the cells owned by player, a bonus square counting
// BonusMultiplier times, and the player's open corners.
func (w Weights) Score(b *Board, bonus BonusSquares, player Seat) float64 {
	coverage := 0.0
	for x := 0; x < b.n; x++ {
		for y := 0; y < b.n; y++ {
			if b.cells[x*b.n+y] != player.Cell() {
				continue
			}
			if bonus.Has(Point{X: x, Y: y}) {
				coverage += w.BonusMultiplier
			} else {
				coverage++
			}
		}
	}
	return w.Coverage*coverage + w.Corner*float64(OpenCorners(b, player))
}

// Evaluation adapts the weights to the searcher's evaluation signature.
func (w Weights) Evaluation() Evaluate {
	return func(s *State, player Seat) float64 {
		return w.Score(s.Board, s.Bonus, player)
	}
}

// EvaluateScores is the default evaluation function.
var EvaluateScores Evaluate = DefaultWeights().Evaluation()

// OpenCorners counts the empty cells that touch the player's cells diagonally
// but not along an edge, i.e. cells a later placement could start from. A
// player with no cells yet has its empty starting corner as the only one.
func OpenCorners(b *Board, player Seat) int {
	seen := make(map[Point]struct{})
	owned := false
	for x := 0; x < b.n; x++ {
		for y := 0; y < b.n; y++ {
			if b.cells[x*b.n+y] != player.Cell() {
				continue
			}
			owned = true
			for _, d := range diagonal {
				q := Point{X: x, Y: y}.Add(d)
				if _, ok := seen[q]; ok || !b.InBounds(q) || b.cells[q.X*b.n+q.Y] != Empty {
					continue
				}
				if touchesEdge(b, q, player) {
					continue
				}
				seen[q] = struct{}{}
			}
		}
	}

	if !owned {
		if b.At(StartingCorner(player, b.n)) == Empty {
			return 1
		}
		return 0
	}
	return len(seen)
}

func touchesEdge(b *Board, p Point, player Seat) bool {
	for _, d := range orthogonal {
		if b.owns(p.Add(d), player) {
			return true
		}
	}
	return false
}

// ScoreAll evaluates the state once per seat.
func ScoreAll(evaluate Evaluate, s *State) [NumPlayers]float64 {
	var scores [NumPlayers]float64
	for p := Seat(0); p < NumPlayers; p++ {
		scores[p] = evaluate(s, p)
	}
	return scores
}
