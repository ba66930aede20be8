package gameplay

import (
	"errors"
	"fmt"
)

// ErrInvalidCommand is the parent of every rejected command. A rejected
// command never changes the game state.
var ErrInvalidCommand = errors.New("invalid command")

var (
	ErrUnknownCommand    = fmt.Errorf("%w: unknown command", ErrInvalidCommand)
	ErrUnknownDirection  = fmt.Errorf("%w: unknown direction", ErrInvalidCommand)
	ErrOutOfBounds       = fmt.Errorf("%w: out of bounds", ErrInvalidCommand)
	ErrBlocked           = fmt.Errorf("%w: blocked by monster", ErrInvalidCommand)
	ErrDoorLocked        = fmt.Errorf("%w: door locked", ErrInvalidCommand)
	ErrNoWeapon          = fmt.Errorf("%w: no weapon", ErrInvalidCommand)
	ErrNothingToAttack   = fmt.Errorf("%w: nothing to attack", ErrInvalidCommand)
	ErrInvalidAnswer     = fmt.Errorf("%w: answer must be y or n", ErrInvalidCommand)
	ErrNoPendingDecision = fmt.Errorf("%w: nothing to answer", ErrInvalidCommand)
	ErrGameOver          = fmt.Errorf("%w: game over", ErrInvalidCommand)
)
