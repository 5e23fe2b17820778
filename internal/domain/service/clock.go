package service

import "time"

// Clock is the time source for token issuance and visit timestamps.
type Clock interface {
	Now() time.Time
}
