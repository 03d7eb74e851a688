package utils

import "strconv"

// FormatCOP renders an integer peso amount for display, with dot
// thousands separators and no decimals: 129900 -> "$ 129.900".
// Amounts stay exact integers everywhere; formatting is the only place
// the value touches a string.
func FormatCOP(amount int64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}

	digits := strconv.FormatInt(amount, 10)
	var out []byte
	for i, d := range []byte(digits) {
		if i > 0 && (len(digits)-i)%3 == 0 {
			out = append(out, '.')
		}
		out = append(out, d)
	}

	prefix := "$ "
	if neg {
		prefix = "-$ "
	}
	return prefix + string(out)
}
