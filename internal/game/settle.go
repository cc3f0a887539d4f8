package game

// SplitPot divides pot chips among n winners: an equal base share each,
// with the remainder handed out one chip at a time in selection order. The
// shares always sum to pot exactly and never differ by more than one chip.
func SplitPot(pot, n int) []int {
	if n < 1 || pot < 0 {
		return nil
	}
	base := pot / n
	rem := pot % n

	shares := make([]int, n)
	for i := range shares {
		shares[i] = base
		if i < rem {
			shares[i]++
		}
	}
	return shares
}
