package types

import "errors"

var (
	ErrMissingGridFile     = errors.New("missing grid file")
	ErrMissingSnapshotFile = errors.New("missing snapshot file")
	ErrShapeMismatch       = errors.New("shape mismatch")
	ErrUnknownQuantity     = errors.New("unknown quantity")
)
