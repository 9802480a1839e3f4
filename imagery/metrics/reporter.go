package metrics

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"time"
)

// PrintTable writes the stage timings and pixel summary of each run
func PrintTable(w io.Writer, runs []*Metrics) {
	fmt.Fprintln(w, "┌ Stage Timing ───────────────────┬──────────────────┬──────────────────┬──────────────────┬──────────────────┬──────────────────┐")
	fmt.Fprintf(w, "│ %-12s │ %-16s │ %-16s │ %-16s │ %-16s │ %-16s │ %-16s │\n",
		"Scene", "Load", "Mask", "Classify", "Color Proc.", "Saving", "Total")
	fmt.Fprintln(w, "├──────────────┼─────────┬────────┼─────────┬────────┼─────────┬────────┼─────────┬────────┼─────────┬────────┼─────────┬────────┤")

	for _, m := range runs {
		stages := []time.Duration{m.LoadTime, m.MaskTime, m.ClassifyTime, m.ColorTime, m.SaveTime}
		fmt.Fprintf(w, "│ %-12s │", shorten(m.Scene, 12))
		for _, d := range stages {
			mag, unit := getMagnitudeAndUnit(d)
			fmt.Fprintf(w, " %s%-2s │ %s%% │", formatNumber(mag, 5), unit, formatNumber(percent(d, m.TotalTime), 5))
		}
		totalMag, totalUnit := getMagnitudeAndUnit(m.TotalTime)
		fmt.Fprintf(w, " %s%-2s │ %s%% │\n", formatNumber(totalMag, 5), totalUnit, "100.0")
	}
	fmt.Fprintln(w, "└──────────────┴─────────┴────────┴─────────┴────────┴─────────┴────────┴─────────┴────────┴─────────┴────────┴─────────┴────────┘")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "┌ Pixel Summary ──┬──────────┬──────────┬──────────┬──────────┬──────────┬──────────┐")
	fmt.Fprintf(w, "│ %-12s │ %-8s │ %-8s │ %-8s │ %-8s │ %-8s │ %-8s │\n",
		"Scene", "Pixels", "No Data", "Unclass.", "Water", "Mean nm", "Img Size")
	fmt.Fprintln(w, "├──────────────┼──────────┼──────────┼──────────┼──────────┼──────────┼──────────┤")

	for _, m := range runs {
		mean := "-"
		if !math.IsNaN(m.Wavelength.Mean) {
			mean = formatNumber(m.Wavelength.Mean, 6)
		}
		fmt.Fprintf(w, "│ %-12s │ %-8s │ %-8s │ %-8s │ %-8s │ %-8s │ %-8s │\n",
			shorten(m.Scene, 12),
			formatPixels(m.Pixels),
			formatPixels(m.NoDataPixels),
			formatPixels(m.Unclassified),
			formatPixels(m.WaterPixels),
			mean,
			formatNumber(float64(m.ImageSize)/(1024*1024), 5)+"MB",
		)
	}
	fmt.Fprintln(w, "└──────────────┴──────────┴──────────┴──────────┴──────────┴──────────┴──────────┘")
}

func percent(d, total time.Duration) float64 {
	if total <= 0 {
		return 0
	}
	return float64(d) / float64(total) * 100
}

// shorten keeps the last n-1 runes of s behind an ellipsis when s is
// longer than n runes.
func shorten(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return "…" + string(r[len(r)-n+1:])
}

func formatPixels(n int) string {
	switch {
	case n >= 1000000:
		return formatNumber(float64(n)/1000000, 4) + "MP"
	case n >= 1000:
		return formatNumber(float64(n)/1000, 4) + "KP"
	default:
		return strconv.Itoa(n) + "P"
	}
}

// getMagnitudeAndUnit returns the appropriate magnitude and unit for a duration
func getMagnitudeAndUnit(d time.Duration) (float64, string) {
	if d < time.Microsecond {
		return float64(d.Nanoseconds()), "ns"
	} else if d < time.Millisecond {
		return float64(d.Nanoseconds()) / 1000, "µs"
	} else if d < time.Second {
		return float64(d.Nanoseconds()) / 1000000, "ms"
	}
	return d.Seconds(), "s"
}

// formatNumber formats num with about desiredLength digits
func formatNumber(num float64, desiredLength int) string {
	integerPart := int(math.Floor(math.Abs(num)))
	integerLength := len(strconv.Itoa(integerPart))

	precision := 0
	if integerLength < desiredLength {
		precision = desiredLength - integerLength - 1
	}

	if precision > 0 {
		return fmt.Sprintf("%.*f", precision, num)
	}
	return strconv.Itoa(integerPart)
}
