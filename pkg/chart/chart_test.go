package chart

import (
	"bytes"
	"strings"
	"testing"

	"qucskit/pkg/dataset"
)

const sweepDump = `<Qucs Dataset 0.0.19>
<indep frequency 3>
1e9
2e9
3e9
</indep>
<dep 1.v frequency>
1.0e+00+j0.0e+00
5.0e-01-j5.0e-01
0.0e+00+j1.0e+00
</dep>
<dep 2.v frequency>
2.0e+00+j0.0e+00
1.0e+00+j0.0e+00
5.0e-01+j0.0e+00
</dep>
`

func TestRenderSweep(t *testing.T) {
	ds := dataset.Parse(sweepDump)

	var buf bytes.Buffer
	if err := Render(&buf, ds, "AC sweep"); err != nil {
		t.Fatal(err)
	}
	html := buf.String()
	if len(html) == 0 {
		t.Fatalf("expected rendered output")
	}
	for _, want := range []string{"AC sweep", "1.v", "2.v"} {
		if !strings.Contains(html, want) {
			t.Errorf("rendered page missing %q", want)
		}
	}
}

func TestRenderNoVectors(t *testing.T) {
	ds := dataset.Parse("error: nothing ran\n")
	var buf bytes.Buffer
	if err := Render(&buf, ds, "empty"); err == nil {
		t.Fatalf("a dataset without vectors cannot be plotted")
	}
}
