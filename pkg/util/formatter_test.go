package util

import "testing"

func TestFormatValueFactor(t *testing.T) {
	cases := []struct {
		value float64
		unit  string
		want  string
	}{
		{0, "s", "0.000 s"},
		{5, "V", "5.000 V"},
		{2.2e-3, "s", "2.200 ms"},
		{4.7e-6, "F", "4.700 uF"},
		{33e-9, "s", "33.000 ns"},
		{1.5e-12, "F", "1.500 pF"},
		{-0.05, "A", "-50.000 mA"},
	}
	for _, tc := range cases {
		if got := FormatValueFactor(tc.value, tc.unit); got != tc.want {
			t.Errorf("FormatValueFactor(%v, %q) = %q, want %q", tc.value, tc.unit, got, tc.want)
		}
	}
}

func TestFormatFrequency(t *testing.T) {
	cases := []struct {
		freq float64
		want string
	}{
		{2.4e9, "  2.400 GHz"},
		{100e6, "100.000 MHz"},
		{4.5e3, "  4.500 kHz"},
		{60, " 60.000 Hz "},
	}
	for _, tc := range cases {
		if got := FormatFrequency(tc.freq); got != tc.want {
			t.Errorf("FormatFrequency(%v) = %q, want %q", tc.freq, got, tc.want)
		}
	}
}

func TestFormatComplex(t *testing.T) {
	// 3-4-5 triangle: magnitude 5, phase atan2(4,3) = 53.1 deg.
	got := FormatComplex(complex(3, 4))
	want := "       5<  53.1deg"
	if got != want {
		t.Errorf("FormatComplex(3+4i) = %q, want %q", got, want)
	}

	if got := FormatComplex(0); got != "       0<   0.0deg" {
		t.Errorf("FormatComplex(0) = %q", got)
	}
}
