package split

import "errors"

// Define errors
var (
	// ErrUsage is returned when a split request has fewer than the two
	// required arguments
	ErrUsage = errors.New("usage: split <total cost> <number of roommates> [names...] [nights...]")

	// ErrParse is returned when the total cost or roommate count cannot
	// be parsed
	ErrParse = errors.New("total cost must be a number and roommate count a positive integer")

	// ErrNameCountMismatch is returned when explicit names do not match
	// the roommate count
	ErrNameCountMismatch = errors.New("number of names must match the roommate count")

	// ErrNightsCountMismatch is returned when nights do not match the
	// roommate count
	ErrNightsCountMismatch = errors.New("number of nights must match the roommate count")

	// ErrRosterMismatch is returned when the stored roster does not
	// match the roommate count
	ErrRosterMismatch = errors.New("stored roommates do not match the roommate count")
)
