package pricing

import "fmt"

// InvalidDateError means a date could not be read as a calendar date.
type InvalidDateError struct {
	Value string
	Err   error
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("invalid date %q", e.Value)
}

func (e *InvalidDateError) Unwrap() error {
	return e.Err
}

// InvalidPlayerCountError means a party size is not a positive integer.
type InvalidPlayerCountError struct {
	Value string
}

func (e *InvalidPlayerCountError) Error() string {
	return fmt.Sprintf("invalid number of players %q: must be a positive integer", e.Value)
}
