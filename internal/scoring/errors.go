package scoring

import (
	"errors"
	"fmt"
)

// ErrValidation is matched by every round-commit precondition failure.
var ErrValidation = errors.New("validation failed")

// Reason identifies which round precondition failed. The value doubles as
// the translation key suffix used by the presentation layer.
type Reason string

const (
	ReasonWinnerRequired Reason = "winner_required"
	ReasonBidsEqualCards Reason = "bids_equal_cards"
	ReasonWonMismatch    Reason = "won_mismatch"
)

// ValidationError is returned when a round cannot be committed. State is
// left untouched whenever one is returned.
type ValidationError struct {
	Reason Reason
	Detail string
}

func NewValidationError(reason Reason, format string, args ...any) *ValidationError {
	return &ValidationError{Reason: reason, Detail: fmt.Sprintf(format, args...)}
}

func (e *ValidationError) Error() string {
	if e.Detail == "" {
		return string(e.Reason)
	}
	return string(e.Reason) + ": " + e.Detail
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// ReasonOf extracts the validation reason from err, if any.
func ReasonOf(err error) (Reason, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Reason, true
	}
	return "", false
}
