package source

import "errors"

var UnsupportedSourceError = errors.New("unsupported source for this query")
