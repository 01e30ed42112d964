package admonition

// matchRun counts how far a repeating marker sequence extends in buf,
// starting at from and bounded by max. The character expected at each
// position is marker[(pos-origin) % len(marker)], so a scan that starts
// mid-repetition (origin < from) still lines up with the repetition
// boundary. Returns the first non-matching position.
//
// The number of complete repetitions matched is
// (matchRun(...) - origin) / len(marker). Open and close fences are
// detected with the same scan, which keeps their matching symmetric.
func matchRun(buf []byte, from, max int, marker string, origin int) int {
	pos := from
	for pos < max && buf[pos] == marker[(pos-origin)%len(marker)] {
		pos++
	}
	return pos
}

// markerRepetitions returns the number of complete marker repetitions in
// buf starting at origin, bounded by max.
func markerRepetitions(buf []byte, origin, max int, marker string) int {
	end := matchRun(buf, origin, max, marker, origin)
	return (end - origin) / len(marker)
}
