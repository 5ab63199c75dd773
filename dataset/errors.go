package dataset

import "errors"

// ErrEmptyDataset indicates that fewer than two items were supplied. A
// sweep needs at least two items to generate a single exchange event.
var ErrEmptyDataset = errors.New("dataset: fewer than two items")
