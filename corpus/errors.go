package corpus

import "errors"

var (
	// ErrInvalidDataset indicates the source dataset could not be decoded.
	ErrInvalidDataset = errors.New("invalid dataset")

	// ErrDocTypeMissing indicates the dataset has no entry for the requested
	// document type.
	ErrDocTypeMissing = errors.New("document type not in dataset")

	// ErrInvalidCSV indicates the intermediate CSV is malformed.
	ErrInvalidCSV = errors.New("invalid contract csv")
)
