package transaction

import (
	"fmt"

	"library-backend/internal/pkg/errs"
)

var transitions = map[Status][]Status{
	StatusPending:    {StatusInProgress, StatusCancelled},
	StatusInProgress: {StatusFinished, StatusCancelled},
}

func CanTransition(from, to Status) bool {
	for _, allowed := range transitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

type InvalidTransitionError struct {
	From Status
	To   Status
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot change status from %s to %s", e.From, e.To)
}

func newInvalidTransition(from, to Status) error {
	return errs.Mark(&InvalidTransitionError{From: from, To: to}, errs.ErrInvalidTransition)
}
