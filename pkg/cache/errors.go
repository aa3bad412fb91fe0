package cache

import (
	"errors"
	"fmt"
)

// ErrUnavailable is returned when a remote backend cannot be reached at open time.
var ErrUnavailable = errors.New("cache backend unavailable")

// BackendError reports an unknown backend name.
type BackendError struct {
	Backend string
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("unknown cache backend %q (want file, redis, mongo or none)", e.Backend)
}
