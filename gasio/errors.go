package gasio

import "github.com/ansel1/merry"

var (
	// ErrUnsupportedFormat reports a file extension no loader handles.
	ErrUnsupportedFormat = merry.New("gasio: unsupported file extension")

	// ErrMissingCompositionKey reports a JSON composition file without
	// the top-level "composition" object.
	ErrMissingCompositionKey = merry.New(`gasio: composition file must carry a "composition" key`)

	// ErrBadHeader reports a CSV composition file whose header does
	// not name the component and mole_fraction columns.
	ErrBadHeader = merry.New(`gasio: csv header must name "component" and "mole_fraction" columns`)
)
