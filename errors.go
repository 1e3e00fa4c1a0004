package bloch

import "errors"

// ErrRender marks failures of the rendering backends (figure encoding,
// circuit rasterisation). They are not retried; transports report them as a
// generic display error.
var ErrRender = errors.New("render failed")
