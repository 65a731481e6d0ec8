package main

import (
	"errors"
	"os"
)

// Exit codes for the mdview CLI.
// Unix conventions: 0=success, 1=general, 2=usage, custom codes < 126.
const (
	ExitSuccess = 0 // successful render
	ExitGeneral = 1 // general/unexpected error
	ExitUsage   = 2 // invalid flags or config
	ExitIO      = 3 // file not found, permission denied
)

// exitCodeFor maps an error to its exit code. Uses errors.Is, so callers
// must wrap with fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadInput) ||
		errors.Is(err, ErrWriteOutput) ||
		errors.Is(err, ErrWriteMeta) {
		return ExitIO
	}

	if errors.Is(err, ErrNoInput) ||
		errors.Is(err, ErrInvalidExtension) ||
		errors.Is(err, ErrInvalidMaxLength) ||
		errors.Is(err, ErrConfigNotFound) ||
		errors.Is(err, ErrConfigParse) {
		return ExitUsage
	}

	return ExitGeneral
}
