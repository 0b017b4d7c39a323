package menu

// autoDecimals returns the number of decimals needed to print x: the
// smallest count in [0,5] whose rounding matches the 5-decimal rounding.
// 1.5030 needs 3, 1.2000000008 needs 1 (five decimals cannot reach the
// trailing 8 anyway).
//
// Six candidates are formed by truncating the fractional part at 0..5
// decimals and rescaling to a common base, each corrected upward when the
// true scaled value exceeds it by more than 0.5. The answer is the highest
// precision at which a candidate still differs from the next coarser one.
func autoDecimals(x float64) int {
	if x < 0 {
		x = -x
	}
	x -= float64(int(x))

	var cand [6]int
	scale := 1.0
	for i := 0; i <= 5; i++ {
		v := int(scale * x)
		if scale*x-float64(v) > 0.5 {
			v++
		}
		cand[i] = v * (100000 / int(scale))
		scale *= 10
	}

	switch {
	case cand[5] != cand[4]:
		return 5
	case cand[4] != cand[3]:
		return 4
	case cand[3] != cand[2]:
		return 3
	case cand[2] != cand[1]:
		return 2
	case cand[1] == cand[0]:
		return 0
	default:
		return 1
	}
}
