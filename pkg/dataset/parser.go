package dataset

import (
	"bufio"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	headerRe = regexp.MustCompile(`^<(?:[A-Za-z]+\s+)?Dataset\s+(\S+)\s*>$`)
	indepRe  = regexp.MustCompile(`^<indep\s+(\S+)\s+(\d+)\s*>$`)
	depRe    = regexp.MustCompile(`^<dep\s+(\S+)((?:\s+\S+)*)\s*>$`)

	// A bare signed-exponential real, optionally followed with no embedded
	// whitespace by a sign-and-j-prefixed imaginary part.
	valueRe = regexp.MustCompile(`^([+-]?(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?)(?:([+-])j((?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?))?$`)
)

func parseValue(s string) (complex128, bool) {
	m := valueRe.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}
	re, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, false
	}
	var im float64
	if m[3] != "" {
		im, err = strconv.ParseFloat(m[3], 64)
		if err != nil {
			return 0, false
		}
		if m[2] == "-" {
			im = -im
		}
	}
	return complex(re, im), true
}

// Parse consumes a solver's raw text output and produces a Dataset. It is
// total: malformed input never fails the call, it lands in the returned
// dataset's status, error and warning fields instead. Partial output keeps
// whatever vectors did parse.
func Parse(raw string) *Dataset {
	d := &Dataset{
		Status:      Success,
		Independent: make(map[string]*Vector),
		Dependent:   make(map[string]*Vector),
		Raw:         raw,
	}

	if strings.TrimSpace(raw) == "" {
		d.Status = ParseError
		d.Errors = append(d.Errors, "empty output")
		return d
	}

	var (
		cur      *Vector
		curName  string
		declared int
		sawError bool
	)

	store := func() {
		// Keep the two maps disjoint; the later block wins.
		if cur.Independent {
			delete(d.Dependent, curName)
			d.Independent[curName] = cur
		} else {
			delete(d.Independent, curName)
			d.Dependent[curName] = cur
		}
		cur = nil
	}

	scanner := bufio.NewScanner(strings.NewReader(raw))
	scanner.Buffer(make([]byte, 64*1024), 16*1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if cur != nil {
			if line == "</indep>" || line == "</dep>" {
				if (line == "</indep>") != cur.Independent {
					d.Warnings = append(d.Warnings, fmt.Sprintf(
						"vector %s: block closed with mismatched tag %s", curName, line))
				}
				if cur.Independent && declared != len(cur.Values) {
					d.Warnings = append(d.Warnings, fmt.Sprintf(
						"vector %s: declared %d values, parsed %d", curName, declared, len(cur.Values)))
				}
				store()
				continue
			}
			v, ok := parseValue(line)
			if !ok {
				d.Warnings = append(d.Warnings, fmt.Sprintf(
					"line %d: unparseable value %q in vector %s", lineNo, line, curName))
				continue
			}
			cur.Values = append(cur.Values, v)
			continue
		}

		if m := headerRe.FindStringSubmatch(line); m != nil {
			d.Version = m[1]
			continue
		}
		if m := indepRe.FindStringSubmatch(line); m != nil {
			curName = m[1]
			declared, _ = strconv.Atoi(m[2])
			cur = &Vector{Independent: true}
			continue
		}
		if m := depRe.FindStringSubmatch(line); m != nil {
			curName = m[1]
			cur = &Vector{Dependencies: strings.Fields(m[2])}
			continue
		}

		lower := strings.ToLower(line)
		switch {
		case strings.HasPrefix(lower, "error"), strings.HasPrefix(lower, "fatal"),
			strings.Contains(lower, "error:"):
			d.Errors = append(d.Errors, line)
			d.Status = Error
			sawError = true
		case strings.HasPrefix(lower, "warning"):
			d.Warnings = append(d.Warnings, line)
		}
		// Anything else outside a block is noise; skip it.
	}

	if cur != nil {
		d.Warnings = append(d.Warnings, fmt.Sprintf("vector %s: block not closed before end of output", curName))
		store()
	}

	if d.Version == "" && len(d.Independent) == 0 && len(d.Dependent) == 0 {
		d.Status = ParseError
		if !sawError {
			d.Errors = append(d.Errors, "no valid dataset found")
		}
	}
	return d
}
