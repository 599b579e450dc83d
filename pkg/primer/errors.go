package primer

import "errors"

var (
	// ErrExtensionNotConverged no candidate met the target Tm and minimum length within MaxExtensionIterations
	ErrExtensionNotConverged = errors.New("extension did not converge")

	// ErrOutOfBases extension on a linear template ran past one of its ends
	ErrOutOfBases = errors.New("out of bases on linear template")

	// ErrInvalidSpan span outside the template, or an empty insert where one is required
	ErrInvalidSpan = errors.New("invalid span")
)
