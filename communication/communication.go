package communication

import "blokus/game"

// Communicator is an interface that abstracts the communication mechanism.
type Communicator interface {
	// Receive blocks until the next update arrives. It returns io.EOF once the input is closed.
	Receive() (Update, error)
	SendMove(move game.Move) error
	SendDebug(message string) error
}
