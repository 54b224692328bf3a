package planar

// SampleTable holds the per-line, per-pixel deep sample multiplicity for a
// YRes x XRes region, along with the cumulative per-line totals. Channel
// offsets are planned from the per-pixel entries, not from these totals.
//
// For non-deep data every entry is 1. Entries must be >= 1; SampleTable
// does not itself enforce that precondition (it is a caller contract) but
// NewSampleTable does enforce the grid shape.
type SampleTable struct {
	xres, yres int
	samples    [][]int
	lineTotals []int
	cum        []int // len yres+1; cum[l] = sum of lineTotals[0:l]
}

// NewSampleTable builds a SampleTable from a raw S[line][pixel] grid and
// precomputes line totals and cumulative totals. It fails with
// ShapeMismatchError if the grid's dimensions disagree with xres/yres.
func NewSampleTable(samples [][]int, xres, yres int) (*SampleTable, error) {
	if len(samples) != yres {
		return nil, &ShapeMismatchError{Field: "sample table line count", Got: len(samples), Want: yres}
	}
	for _, row := range samples {
		if len(row) != xres {
			return nil, &ShapeMismatchError{Field: "sample table row length", Got: len(row), Want: xres}
		}
	}

	t := &SampleTable{
		xres:       xres,
		yres:       yres,
		samples:    samples,
		lineTotals: make([]int, yres),
		cum:        make([]int, yres+1),
	}
	running := 0
	for l := 0; l < yres; l++ {
		total := 0
		for p := 0; p < xres; p++ {
			total += samples[l][p]
		}
		t.lineTotals[l] = total
		t.cum[l] = running
		running += total
	}
	t.cum[yres] = running
	return t, nil
}

// XRes returns the table's pixel width.
func (t *SampleTable) XRes() int { return t.xres }

// YRes returns the table's line count.
func (t *SampleTable) YRes() int { return t.yres }

// PixelSamples returns S[line][pixel], the deep sample count at that
// pixel.
func (t *SampleTable) PixelSamples(line, pixel int) int {
	return t.samples[line][pixel]
}

// LineSamples returns the total sample count across an entire line,
// ignoring sub-sampling (i.e. as if every channel included every pixel).
func (t *SampleTable) LineSamples(line int) int {
	return t.lineTotals[line]
}

// CumSamples returns the cumulative sample total over lines [0, line),
// for line in [0, YRes]. CumSamples(YRes) is the grand total.
func (t *SampleTable) CumSamples(line int) int {
	return t.cum[line]
}
