package util

import (
	"fmt"
	"math"
	"math/cmplx"
)

func FormatValueFactor(value float64, unit string) string {
	absValue := math.Abs(value)
	switch {
	case absValue == 0:
		return fmt.Sprintf("0.000 %s", unit)
	case absValue >= 1:
		return fmt.Sprintf("%.3f %s", value, unit)
	case absValue >= 1e-3:
		return fmt.Sprintf("%.3f m%s", value*1e3, unit)
	case absValue >= 1e-6:
		return fmt.Sprintf("%.3f u%s", value*1e6, unit)
	case absValue >= 1e-9:
		return fmt.Sprintf("%.3f n%s", value*1e9, unit)
	case absValue >= 1e-12:
		return fmt.Sprintf("%.3f p%s", value*1e12, unit)
	default:
		return fmt.Sprintf("%.3e %s", value, unit)
	}
}

func FormatFrequency(freq float64) string {
	switch {
	case freq >= 1e9:
		return fmt.Sprintf("%7.3f GHz", freq/1e9)
	case freq >= 1e6:
		return fmt.Sprintf("%7.3f MHz", freq/1e6)
	case freq >= 1e3:
		return fmt.Sprintf("%7.3f kHz", freq/1e3)
	default:
		return fmt.Sprintf("%7.3f Hz ", freq)
	}
}

// FormatComplex renders a complex value as magnitude<phase in degrees.
func FormatComplex(value complex128) string {
	mag := cmplx.Abs(value)
	phase := cmplx.Phase(value) * 180.0 / math.Pi

	var magStr string
	if mag >= 1000 || (mag < 0.001 && mag != 0) {
		magStr = fmt.Sprintf("%8.2e", mag)
	} else {
		magStr = fmt.Sprintf("%8.3g", mag)
	}
	return fmt.Sprintf("%s<%6.1fdeg", magStr, phase)
}
