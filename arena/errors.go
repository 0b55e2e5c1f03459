package arena

import "errors"

// MinSize is the smallest width or height an arena can have.
const MinSize = 3

// ErrArenaTooSmall is returned when an arena (or the screen it is derived
// from) cannot hold a border ring around at least one free cell.
var ErrArenaTooSmall = errors.New("arena too small")
