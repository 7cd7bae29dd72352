package result

import (
	"testing"

	"qucskit/pkg/dataset"
)

const acDump = `<Qucs Dataset 0.0.19>
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
<dep V1.i frequency>
1.0e-03+j0.0e+00
2.0e-03+j0.0e+00
3.0e-03+j0.0e+00
</dep>
`

func TestTypedACResult(t *testing.T) {
	ds := dataset.Parse(acDump)
	r := NewAC(ds)

	if r.SweepName != "frequency" {
		t.Errorf("sweep: expected frequency, got %q", r.SweepName)
	}
	if r.Points() != 3 {
		t.Errorf("expected 3 sweep points, got %d", r.Points())
	}
	if len(r.Voltages) != 2 {
		t.Errorf("expected voltages for nodes 1 and 2, got %v", voltageNodes(r))
	}
	if _, ok := r.Voltages["1"]; !ok {
		t.Errorf("node 1 voltage missing")
	}
	if _, ok := r.Currents["V1"]; !ok {
		t.Errorf("V1 branch current missing, have %v", currentNames(r))
	}
	// The current vector must not leak into the voltage map.
	if _, ok := r.Voltages["V1"]; ok {
		t.Errorf("current vector classified as a voltage")
	}
}

func TestTypedDCResult(t *testing.T) {
	raw := `<Qucs Dataset 0.0.19>
<dep 1.V>
5.0e+00
</dep>
<dep V1.I>
-2.5e-03
</dep>
`
	ds := dataset.Parse(raw)
	r := NewDC(ds)

	if r.Points() != 1 {
		t.Errorf("a DC point has one sample, got %d", r.Points())
	}
	v, ok := r.Voltages["1"]
	if !ok || len(v) != 1 || v[0] != 5 {
		t.Errorf("node 1: got %v", v)
	}
	i, ok := r.Currents["V1"]
	if !ok || i[0] != complex(-2.5e-3, 0) {
		t.Errorf("V1 current: got %v", i)
	}
}

func TestTransientMarkers(t *testing.T) {
	raw := `<Qucs Dataset 0.0.19>
<indep time 2>
0.0
1.0e-03
</indep>
<dep 1.Vt time>
0.0
4.9e+00
</dep>
`
	r := NewTransient(dataset.Parse(raw))
	if r.SweepName != "time" {
		t.Errorf("sweep: expected time, got %q", r.SweepName)
	}
	if _, ok := r.Voltages["1"]; !ok {
		t.Errorf("transient node voltage missing")
	}
}

func TestSParamMissingPairIsZero(t *testing.T) {
	raw := `<Qucs Dataset 0.0.19>
<indep frequency 3>
1e9
2e9
3e9
</indep>
<dep S[1,1] frequency>
1.0e-01+j0.0e+00
2.0e-01+j0.0e+00
3.0e-01+j0.0e+00
</dep>
<dep S[2,2] frequency>
4.0e-01+j0.0e+00
5.0e-01+j0.0e+00
6.0e-01+j0.0e+00
</dep>
`
	r := NewSParam(dataset.Parse(raw))

	s11 := r.At(1, 1)
	if len(s11) != 3 || s11[2] != complex(0.3, 0) {
		t.Errorf("S[1,1]: got %v", s11)
	}

	// Two disconnected subnetworks couple exactly zero; absence is data.
	s12 := r.At(1, 2)
	if len(s12) != 3 {
		t.Fatalf("synthesized vector must match sweep length, got %d", len(s12))
	}
	for i, v := range s12 {
		if v != 0 {
			t.Errorf("S[1,2][%d]: expected 0, got %v", i, v)
		}
	}

	pairs := r.Pairs()
	if len(pairs) != 2 || pairs[0] != [2]int{1, 1} || pairs[1] != [2]int{2, 2} {
		t.Errorf("pairs: got %v", pairs)
	}
}
