package repository

import (
	"errors"
	"testing"
)

func TestGrantOutcome(t *testing.T) {
	if err := grantOutcome(1, nil); err != nil {
		t.Errorf("fresh grant: err = %v, want nil", err)
	}
	if err := grantOutcome(0, nil); !errors.Is(err, ErrAlreadyEarned) {
		t.Errorf("duplicate grant: err = %v, want ErrAlreadyEarned", err)
	}
	dbErr := errors.New("deadlock detected")
	if err := grantOutcome(0, dbErr); !errors.Is(err, dbErr) {
		t.Errorf("store failure: err = %v, want the store error", err)
	}
}
