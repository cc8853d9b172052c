package field

import "errors"

// ErrNoTable is reported when a parser returns neither a table nor an error
var ErrNoTable = errors.New("parser returned no table")
