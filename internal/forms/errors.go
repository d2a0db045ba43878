package forms

import "errors"

// IsInvalid reports whether err comes from local form validation, as opposed
// to the remote command.
func IsInvalid(err error) bool {
	var (
		itemErr  *ItemError
		rangeErr *AmountOutOfRangeError
	)
	switch {
	case errors.As(err, &itemErr), errors.As(err, &rangeErr):
		return true
	case errors.Is(err, ErrAmountRequired), errors.Is(err, ErrAmountNotNumber):
		return true
	case errors.Is(err, ErrSubmitDisabled), errors.Is(err, ErrFormClosed):
		return true
	}
	return false
}
