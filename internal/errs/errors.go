package errs

import (
	"context"
	"errors"
	"fmt"

	pkgerr "github.com/pkg/errors"
)

var (
	ServerUnavailable = errors.New("no upload server available")
	TransferFailure   = errors.New("upload failed")
	Cancelled         = errors.New("upload cancelled by user")
	ParseError        = errors.New("unexpected response")

	EmptyPath  = errors.New("empty path")
	NotFile    = errors.New("not a regular file")
	NoServer   = errors.New("server assignment is empty")
	InvalidURL = errors.New("invalid upload url")
)

// NewErr wrap constant error with an extra message
// use errors.Is(err1, TransferFailure) to check if err belongs to any internal error
func NewErr(err error, format string, a ...any) error {
	return fmt.Errorf("%w; %s", err, fmt.Sprintf(format, a...))
}

func IsServerUnavailable(err error) bool {
	return errors.Is(pkgerr.Cause(err), ServerUnavailable) || errors.Is(err, ServerUnavailable)
}

func IsTransferFailure(err error) bool {
	return errors.Is(pkgerr.Cause(err), TransferFailure) || errors.Is(err, TransferFailure)
}

// IsCancelled reports whether err comes from an interrupted run.
func IsCancelled(err error) bool {
	return errors.Is(err, Cancelled) || errors.Is(err, context.Canceled)
}
