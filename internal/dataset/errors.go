package dataset

import "errors"

var (
	// ErrMalformed indicates a story file that cannot be decoded or a record without a name.
	ErrMalformed = errors.New("dataset: malformed story")

	// ErrDuplicate indicates two records sharing a category name.
	ErrDuplicate = errors.New("dataset: duplicate category")

	// ErrUnknownHighlight indicates a highlight naming no category.
	ErrUnknownHighlight = errors.New("dataset: highlight category not in dataset")
)
