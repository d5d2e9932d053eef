package dom

import "errors"

// ErrInvalidSelector is returned (wrapped) when a CSS selector does not parse.
var ErrInvalidSelector = errors.New("dom: invalid selector")
