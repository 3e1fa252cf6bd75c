package kit

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// AddTime sums clock strings of the form HH:MM or HH:MM:SS.
// Fields are aligned from the left, so "02:45" counts as 2h45m even next to
// values with seconds. The result has as many fields as the longest input and
// every field is zero-padded to two digits. Minutes and seconds carry at 60;
// hours grow without bound.
func AddTime(times ...string) (string, error) {
	parsed := make([][]int, len(times))
	operands := 0
	for i, t := range times {
		parts := strings.Split(t, ":")
		fields := make([]int, len(parts))
		for j, p := range parts {
			if p == "" {
				continue
			}
			n, err := strconv.Atoi(p)
			if err != nil || n < 0 {
				return "", fmt.Errorf("kit: invalid time %q", t)
			}
			fields[j] = n
		}
		parsed[i] = fields
		operands = max(operands, len(fields))
	}

	sum := make([]int, operands)
	for _, fields := range parsed {
		for j, n := range fields {
			sum[j] += n
		}
	}
	for i := operands - 2; i >= 0; i-- {
		sum[i] += sum[i+1] / 60
		sum[i+1] %= 60
	}

	out := make([]string, operands)
	for i, n := range sum {
		out[i] = fmt.Sprintf("%02d", n)
	}
	return strings.Join(out, ":"), nil
}

// FormatClock renders d as HH:MM:SS, truncating to whole seconds.
// Negative durations render as zero.
func FormatClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := int(d / time.Second)
	return fmt.Sprintf("%02d:%02d:%02d", secs/3600, secs/60%60, secs%60)
}
