package source

import (
	"errors"
)

var UnsupportedSourceError = errors.New("source does not support this query")
