package grid

import "errors"

// ErrInvalidGrid is the sentinel backing the InvalidGrid error kind
// (SPEC_FULL.md §7): a grid narrower or shorter than 3 cells cannot hold a
// Horn gradient, let alone a D8 neighbourhood, and is rejected at
// construction rather than producing ill-defined downstream fields.
var ErrInvalidGrid = errors.New("grid: width and height must each be >= 3")
