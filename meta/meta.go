// meta/meta.go
package meta

// ITERATIONS defines the number of MCTS iterations per machine turn.
const ITERATIONS = 1000

// PROGRESS_INTERVAL defines how many iterations pass between progress lines.
const PROGRESS_INTERVAL = 200

// TREE_DEPTH defines the depth of the printed search tree.
const TREE_DEPTH = 3

// TOP_MOVES defines how many moves the simple analysis lists.
const TOP_MOVES = 3

// MAX_TURNS bounds the number of turns in a game.
const MAX_TURNS = 9
