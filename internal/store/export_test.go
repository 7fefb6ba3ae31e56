package store

// SetCost lowers the scrypt cost so tests stay fast.
func (s *ProfileFileStore) SetCost(n, r, p int) { s.kdf = kdf{N: n, R: r, P: p} }
