package hostlog

import "errors"

// ErrNoAdapter is returned by Builder.Build when no Adapter was set.
var ErrNoAdapter = errors.New("hostlog: adapter is required")
