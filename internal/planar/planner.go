package planar

// Plan is the output of PlanOffsets: the starting byte offset of each
// channel in the planar buffer, the split position between the half-width
// and single-width groups, the total planar (and packed) buffer size, and
// each channel's post-sub-sampling sample count (exposed so Unpack/Pack can
// bound each channel's region without recomputing it).
type Plan struct {
	Offsets      []int // Offsets[i] is channels[i]'s starting byte offset
	SampleCounts []int // SampleCounts[i] is channels[i]'s channel_sample_count
	SplitPos     int
	TotalBytes   int
}

// PlanOffsets computes the planar layout for an ordered channel list over a
// YRes x XRes region described by table. It iterates the two byte-width
// classes in fixed order — half-width first, then single-width — and
// within each class assigns offsets in strict input order.
func PlanOffsets(channels []Channel, xres, yres int, table *SampleTable) (*Plan, error) {
	if table.XRes() != xres {
		return nil, &ShapeMismatchError{Field: "xres", Got: table.XRes(), Want: xres}
	}
	if table.YRes() != yres {
		return nil, &ShapeMismatchError{Field: "yres", Got: table.YRes(), Want: yres}
	}
	for _, ch := range channels {
		if err := ch.validate(); err != nil {
			return nil, err
		}
	}

	plan := &Plan{
		Offsets:      make([]int, len(channels)),
		SampleCounts: make([]int, len(channels)),
	}

	cursor := 0
	for _, width := range []int{HalfWidth, SingleWidth} {
		for i, ch := range channels {
			if ch.ByteWidth != width {
				continue
			}
			n := channelSampleCount(ch, xres, yres, table)
			plan.Offsets[i] = cursor
			plan.SampleCounts[i] = n
			cursor += ch.ByteWidth * n
		}
		if width == HalfWidth {
			plan.SplitPos = cursor
		}
	}
	plan.TotalBytes = cursor

	return plan, nil
}

// channelSampleCount computes the total number of deep samples a channel
// carries once line and pixel sub-sampling are applied.
func channelSampleCount(ch Channel, xres, yres int, table *SampleTable) int {
	total := 0
	for l := 0; l < yres; l++ {
		if !ch.includesLine(l) {
			continue
		}
		for p := 0; p < xres; p++ {
			if !ch.includesPixel(p) {
				continue
			}
			total += table.PixelSamples(l, p)
		}
	}
	return total
}
