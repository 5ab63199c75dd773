package eventqueue

import "errors"

// ErrEmpty is returned by PopMin when the queue holds no events.
var ErrEmpty = errors.New("eventqueue: queue is empty")
