package location

import (
	"fmt"
	"sync"
	"time"
)

var (
	mu       sync.RWMutex
	location = time.UTC
)

// Set loads the named time zone ("Europe/Moscow", "UTC", ...) and makes it the current one.
// An empty name selects UTC.
func Set(name string) error {
	loc := time.UTC
	if name != "" {
		var err error
		loc, err = time.LoadLocation(name)
		if err != nil {
			return fmt.Errorf("error while load time location: %w", err)
		}
	}

	mu.Lock()
	location = loc
	mu.Unlock()
	return nil
}

func Location() *time.Location {
	mu.RLock()
	defer mu.RUnlock()
	return location
}

// Now is the current time in the configured location.
func Now() time.Time {
	return time.Now().In(Location())
}
