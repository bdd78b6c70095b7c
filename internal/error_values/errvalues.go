package errorvalues

import "errors"

var (
	ErrUserExists       = errors.New("such user already exists")
	ErrUserNotFound     = errors.New("user doesn't exists")
	ErrWrongCredentials = errors.New("wrong name or password")
	ErrInvalidToken     = errors.New("invalid token")

	ErrHabitNotFound       = errors.New("habit doesn't exist")
	ErrWrongOwner          = errors.New("habit has different owner")
	ErrHabitArchived       = errors.New("habit is archived")
	ErrEntryNotFound       = errors.New("entry doesn't exist")
	ErrEntryDateNotAllowed = errors.New("entry date is not allowed")
	ErrStaleEntry          = errors.New("entry is older than the stored one")

	ErrInsufficientFunds = errors.New("not enough coins")
	ErrPremiumRequired   = errors.New("premium subscription required")
)
