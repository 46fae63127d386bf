package tui

import "errors"

// ErrMissingSession is returned when no lineage session is provided.
var ErrMissingSession = errors.New("tui: lineage session is required")
