package inputfile

import (
	"errors"
)

// Sentinel error kinds for this package.
var (
	ErrReadFile     = errors.New("read input file failed")
	ErrNoRecords    = errors.New("input file has no players")
	ErrMissingField = errors.New("missing input field")
	ErrDecodeRecord = errors.New("decode input record failed")
)
