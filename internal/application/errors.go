package application

import "errors"

// ErrTickerRequired is a client error: no usable ticker in the request.
var ErrTickerRequired = errors.New("stock ticker required")
