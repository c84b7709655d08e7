package mouse

import "errors"

// ErrUnknownPlatform is returned by ParsePlatform for unrecognized names.
var ErrUnknownPlatform = errors.New("unknown platform")
