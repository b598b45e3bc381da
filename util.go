package wpinq

func absInt64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}

// floorDiv performs integer division rounding toward negative infinity,
// unlike Go's built-in / which truncates toward zero. shave's
// weight-retraction branch depends on this distinction (§4.4 requires
// floor, not truncation, for negative divisions).
func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
