package planar

// transfer walks channels/xres/yres/table in the canonical scanline,
// channel, pixel order shared by Unpack and Pack, copying each run of
// bytes between seq (a flat, sequentially-advancing buffer — the packed
// buffer in both directions) and planarBuf (accessed per-channel through a
// running cursor seeded at plan.Offsets).
//
// When seqIsSrc is true, bytes flow seq -> planarBuf (Unpack's direction).
// When false, bytes flow planarBuf -> seq (Pack's direction). Both
// directions share identical cursor bookkeeping and bounds checking; only
// the copy direction differs.
func transfer(channels []Channel, xres, yres int, table *SampleTable, plan *Plan,
	seq, planarBuf []byte, seqIsSrc bool) (int, error) {

	cursors := make([]int, len(channels))
	copy(cursors, plan.Offsets)

	regionEnd := make([]int, len(channels))
	for i, ch := range channels {
		regionEnd[i] = plan.Offsets[i] + ch.ByteWidth*plan.SampleCounts[i]
	}

	pos := 0
	for line := 0; line < yres; line++ {
		for ci, ch := range channels {
			if !ch.includesLine(line) {
				continue
			}
			for p := 0; p < xres; p++ {
				if !ch.includesPixel(p) {
					continue
				}
				n := table.PixelSamples(line, p)
				k := n * ch.ByteWidth
				if k == 0 {
					continue
				}

				if pos+k > len(seq) {
					return pos, &BufferOverrunError{Channel: ch.Name, Line: line, Detail: "packed buffer exhausted"}
				}
				if cursors[ci]+k > regionEnd[ci] {
					return pos, &BufferOverrunError{Channel: ch.Name, Line: line, Detail: "planar region exhausted"}
				}

				if seqIsSrc {
					copy(planarBuf[cursors[ci]:cursors[ci]+k], seq[pos:pos+k])
				} else {
					copy(seq[pos:pos+k], planarBuf[cursors[ci]:cursors[ci]+k])
				}

				pos += k
				cursors[ci] += k
			}
		}
	}

	return pos, nil
}
