package builder

import "errors"

// ErrMissingArgument reports a required argument (src, content, name) that
// was empty or absent. Raised before any markup is emitted.
var ErrMissingArgument = errors.New("required argument missing")

// ErrUsageConflict reports mutually exclusive options supplied together,
// such as popup and method on the same link.
var ErrUsageConflict = errors.New("conflicting options")
