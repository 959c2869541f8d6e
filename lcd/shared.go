package lcd

import "sync"

// Shared serializes access to a Driver between goroutines. Each call to Do
// holds the lock until fn returns, so a whole string or sequence of commands
// reaches the bus without interleaving.
type Shared struct {
	lock sync.Mutex
	d    *Driver
}

func NewShared(d *Driver) *Shared {
	return &Shared{d: d}
}

// Do runs fn with exclusive use of the driver.
func (s *Shared) Do(fn func(d *Driver)) {
	s.lock.Lock()
	defer s.lock.Unlock()

	fn(s.d)
}
