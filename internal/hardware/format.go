package hardware

import "fmt"

// FormatBytes renders a byte count with one decimal and a binary-step unit,
// e.g. 17179869184 -> "16.0 GB". Counts below 1 KB stay integral.
func FormatBytes(n uint64) string {
	const step = 1024.0
	v := float64(n)
	for _, unit := range []string{"B", "KB", "MB", "GB", "TB"} {
		if v < step {
			if unit == "B" {
				return fmt.Sprintf("%d B", n)
			}
			return fmt.Sprintf("%.1f %s", v, unit)
		}
		v /= step
	}
	return fmt.Sprintf("%.1f PB", v)
}
