// SPDX-License-Identifier: MIT

// Package methane: sentinel error set. Estimators return only these
// sentinels or the typed errors of package gas, and tests match them
// via errors.Is / errors.As. No panics on user input.

package methane

import "errors"

var (
	// ErrBadOptions reports an Options value outside its documented
	// domain (epsilon, pure-methane threshold or precision).
	ErrBadOptions = errors.New("methane: invalid options")

	// ErrNoRecognized reports a composition whose recognized share is
	// zero after dropping unknown tokens and oxygen.
	ErrNoRecognized = errors.New("methane: no recognized component with a positive fraction")

	// ErrMissingGroup reports an empty group B or C in the strict
	// table-only estimator, which has no base term to substitute.
	ErrMissingGroup = errors.New("methane: composition lacks required group B or C components")
)
