// meta/meta.go
package meta

import "time"

// DEPTH defines the default search depth in plies.
const DEPTH = 2

// TIMEOUT defines the default time budget of a single move decision.
const TIMEOUT = 5 * time.Second

// NODE_BUDGET defines the default node budget of a search, 0 for unlimited.
const NODE_BUDGET = 0

// BOARD_SIZE defines the board dimension used for self-play.
const BOARD_SIZE = 20

// MAX_TURNS caps the length of a self-play game.
const MAX_TURNS = 400

// GO_ROUTINES defines the number of games played in parallel during experiments.
const GO_ROUTINES = 8
