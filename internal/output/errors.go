package output

import "errors"

// SilentError marks an error the user has already seen through a sink, so
// the command layer does not print it a second time.
type SilentError struct {
	Err error
}

func (e *SilentError) Error() string {
	return e.Err.Error()
}

func (e *SilentError) Unwrap() error {
	return e.Err
}

func NewSilentError(err error) *SilentError {
	return &SilentError{Err: err}
}

// Silence wraps err in a SilentError unless it is nil or already silent.
func Silence(err error) error {
	if err == nil || IsSilent(err) {
		return err
	}
	return NewSilentError(err)
}

// IsSilent returns true if the error (or any error in its chain) is a SilentError.
func IsSilent(err error) bool {
	var silent *SilentError
	return errors.As(err, &silent)
}
