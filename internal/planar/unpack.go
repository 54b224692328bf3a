package planar

// Unpack transforms a packed buffer into a planar buffer: one contiguous
// region per channel, half-width channels grouped before single-width
// channels. It returns the planar buffer and the split position between
// the two groups.
//
// packed must be exactly as long as the total byte count the offset
// planner computes from channels, xres, yres, and table; otherwise Unpack
// fails with LengthDisagreementError before touching either buffer.
func Unpack(packed []byte, channels []Channel, xres, yres int, table *SampleTable) ([]byte, int, error) {
	plan, err := PlanOffsets(channels, xres, yres, table)
	if err != nil {
		return nil, 0, err
	}
	if len(packed) != plan.TotalBytes {
		return nil, 0, &LengthDisagreementError{Got: len(packed), Want: plan.TotalBytes}
	}

	planarBuf := make([]byte, plan.TotalBytes)
	consumed, err := transfer(channels, xres, yres, table, plan, packed, planarBuf, true)
	if err != nil {
		return nil, 0, err
	}
	if consumed != len(packed) {
		return nil, 0, &ShortInputError{Consumed: consumed, Want: len(packed)}
	}

	return planarBuf, plan.SplitPos, nil
}
