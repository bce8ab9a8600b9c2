package utils

import (
	"fmt"
	"math"
	"time"
)

const (
	KB = 1 << (10 * (iota + 1))
	MB
	GB
	TB
)

// HumanBytes formats a byte count with binary units.
func HumanBytes(v int64) string {
	units := []string{"B", "KB", "MB", "GB", "TB", "PB"}
	value := float64(v)
	unit := 0
	for value >= 1024 && unit < len(units)-1 {
		value /= 1024
		unit++
	}
	if unit == 0 {
		return fmt.Sprintf("%d %s", v, units[unit])
	}
	return fmt.Sprintf("%.1f %s", value, units[unit])
}

// HumanRate formats bytes per second.
func HumanRate(bytesPerSec float64) string {
	if bytesPerSec <= 0 || math.IsNaN(bytesPerSec) || math.IsInf(bytesPerSec, 0) {
		return "?/s"
	}
	return HumanBytes(int64(bytesPerSec)) + "/s"
}

// HumanETA formats a remaining duration as h:mm:ss, "-:--:--" when unknown.
func HumanETA(d time.Duration) string {
	if d < 0 {
		return "-:--:--"
	}
	d = d.Round(time.Second)
	h := d / time.Hour
	d -= h * time.Hour
	m := d / time.Minute
	d -= m * time.Minute
	return fmt.Sprintf("%d:%02d:%02d", h, m, d/time.Second)
}
