package purefn

// Stats counts what a Store has done since it was created.
type Stats struct {
	Hits       uint64
	Misses     uint64
	Evictions  uint64
	Failures   uint64 // compute returned an error
	Rejections uint64 // arguments could not form a key
}

// HitRatio is Hits / (Hits + Misses), or 0 before the first lookup.
func (s Stats) HitRatio() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total)
}
