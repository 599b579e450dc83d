package primer

import (
	"log/slog"
	"math"

	"ivaPrime/pkg/tm"
)

// trimStep drops one more base while the result stays above target or gets strictly closer to it,
// and the current fragment is longer than minLength
func trimStep(cur, next string, target float64, minLength int) bool {
	if len(cur) <= minLength {
		return false
	}
	nextTm := tm.OligoCalcTm(next)
	return nextTm > target || math.Abs(target-nextTm) < math.Abs(target-tm.OligoCalcTm(cur))
}

// TrimSymmetric removes bases from both ends in turn, left first, and returns how many went from each side.
// The trimmed fragment is seq[left:len(seq)-right]. It never shrinks below minLength,
// the result is a best effort when target cannot be met.
func TrimSymmetric(seq string, target float64, minLength int) (left, right int) {
	cur := seq
	for fromLeft := true; len(cur) > 0; fromLeft = !fromLeft {
		var next string
		if fromLeft {
			next = cur[1:]
		} else {
			next = cur[:len(cur)-1]
		}
		if !trimStep(cur, next, target, minLength) {
			break
		}
		cur = next
		if fromLeft {
			left++
		} else {
			right++
		}
	}
	slog.Debug("TrimSymmetric", "length", len(seq), "left", left, "right", right, "tm", tm.OligoCalcTm(cur))
	return left, right
}

// TrimAsymmetric removes bases from the 5' end only, seq[removed:] is the trimmed fragment
func TrimAsymmetric(seq string, target float64, minLength int) (removed int) {
	cur := seq
	for len(cur) > 0 && trimStep(cur, cur[1:], target, minLength) {
		cur = cur[1:]
		removed++
	}
	slog.Debug("TrimAsymmetric", "length", len(seq), "removed", removed, "tm", tm.OligoCalcTm(cur))
	return removed
}
