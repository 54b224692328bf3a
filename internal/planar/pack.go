package planar

// Pack transforms a planar buffer back into its packed form: the exact
// inverse of Unpack. It shares the offset planner and the same scanline,
// channel, pixel traversal order as Unpack; only the direction of each
// byte copy differs.
//
// planar must be exactly as long as the total byte count the offset
// planner computes from channels, xres, yres, and table; otherwise Pack
// fails with LengthDisagreementError before touching either buffer.
func Pack(planarBuf []byte, channels []Channel, xres, yres int, table *SampleTable) ([]byte, error) {
	plan, err := PlanOffsets(channels, xres, yres, table)
	if err != nil {
		return nil, err
	}
	if len(planarBuf) != plan.TotalBytes {
		return nil, &LengthDisagreementError{Got: len(planarBuf), Want: plan.TotalBytes}
	}

	packed := make([]byte, plan.TotalBytes)
	written, err := transfer(channels, xres, yres, table, plan, packed, planarBuf, false)
	if err != nil {
		return nil, err
	}
	if written != len(packed) {
		return nil, &ShortInputError{Consumed: written, Want: len(packed)}
	}

	return packed, nil
}
