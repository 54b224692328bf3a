package compression

import (
	"github.com/kestrelimaging/go-openexr/internal/interleave"
	"github.com/kestrelimaging/go-openexr/internal/planar"
	"github.com/kestrelimaging/go-openexr/internal/predictor"
	"github.com/kestrelimaging/go-openexr/internal/xdr"
)

// Pixel type constants (matching OpenEXR)
const (
	PixelTypeUint  = 0
	PixelTypeHalf  = 1
	PixelTypeFloat = 2
)

// PlanarChannelInfo describes one channel for planar precision-grouped
// compression.
type PlanarChannelInfo struct {
	Name      string
	Type      int // PixelTypeUint, PixelTypeHalf, PixelTypeFloat
	XSampling int
	YSampling int
}

func (c PlanarChannelInfo) byteWidth() int {
	if c.Type == PixelTypeHalf {
		return planar.HalfWidth
	}
	return planar.SingleWidth
}

// PlanarMethod selects the entropy coder applied to each planar region
// after the predictor and interleave steps.
type PlanarMethod int

const (
	// PlanarMethodZIP compresses each region with zlib.
	PlanarMethodZIP PlanarMethod = iota
	// PlanarMethodRLE compresses each region with OpenEXR run-length
	// encoding. Cheaper than zlib and effective on deep data with long
	// constant runs.
	PlanarMethodRLE
)

func toPlanarChannels(channels []PlanarChannelInfo) []planar.Channel {
	out := make([]planar.Channel, len(channels))
	for i, c := range channels {
		out[i] = planar.Channel{
			Name:      c.Name,
			ByteWidth: c.byteWidth(),
			XSampling: c.XSampling,
			YSampling: c.YSampling,
		}
	}
	return out
}

// PlanarChunkCodec compresses deep/sub-sampled pixel data by repacking it
// into planar (channel-grouped) form and compressing the half-precision
// region and the single-precision region independently.
//
// Grouping same-precision channels before encoding is the reason the
// planar split exists: half and single precision samples have different
// byte-level statistics and each compress better apart than interleaved
// pixel-major.
//
// Method selects the entropy coder; Level applies to PlanarMethodZIP
// only.
type PlanarChunkCodec struct {
	Channels []PlanarChannelInfo
	XRes     int
	YRes     int
	Method   PlanarMethod
	Level    CompressionLevel
}

// PlanarChunkResult holds the independently compressed half and single
// precision regions plus the bookkeeping needed to decompress and repack
// them.
type PlanarChunkResult struct {
	HalfCompressed   []byte
	SingleCompressed []byte
	HalfLen          int
	SingleLen        int
}

// compressRegion runs one planar region through the encoding steps:
// horizontal differencing, byte interleaving at the region's sample
// width, then the selected entropy coder. region is mutated in place by
// the predictor; callers pass slices of a buffer the codec owns.
func (c PlanarChunkCodec) compressRegion(region []byte, width int) ([]byte, error) {
	predictor.Encode(region)
	reordered := interleave.Interleave(region, width, nil)
	if c.Method == PlanarMethodRLE {
		return RLECompress(reordered), nil
	}
	return ZIPCompressLevel(reordered, c.Level)
}

// decompressRegion reverses compressRegion, recovering the raw planar
// region bytes.
func (c PlanarChunkCodec) decompressRegion(compressed []byte, rawLen, width int) ([]byte, error) {
	var reordered []byte
	var err error
	if c.Method == PlanarMethodRLE {
		reordered, err = RLEDecompress(compressed, rawLen)
	} else {
		reordered, err = ZIPDecompress(compressed, rawLen)
	}
	if err != nil {
		return nil, err
	}
	region := interleave.Deinterleave(reordered, width, nil)
	predictor.Decode(region)
	return region, nil
}

// Compress repacks packed pixel data into planar form via
// internal/planar.Unpack, then runs the half-width and single-width
// regions through the encoding pipeline (predictor, interleave, entropy
// coder) separately. sampleCounts is the deep sample multiplicity grid,
// S[line][pixel]; pass an all-ones grid for non-deep data.
func (c PlanarChunkCodec) Compress(packed []byte, sampleCounts [][]int) (PlanarChunkResult, error) {
	table, err := planar.NewSampleTable(sampleCounts, c.XRes, c.YRes)
	if err != nil {
		return PlanarChunkResult{}, err
	}
	channels := toPlanarChannels(c.Channels)

	planarBuf, splitPos, err := planar.Unpack(packed, channels, c.XRes, c.YRes, table)
	if err != nil {
		return PlanarChunkResult{}, err
	}

	halfLen := splitPos
	singleLen := len(planarBuf) - splitPos

	halfCompressed, err := c.compressRegion(planarBuf[:splitPos], planar.HalfWidth)
	if err != nil {
		return PlanarChunkResult{}, err
	}
	singleCompressed, err := c.compressRegion(planarBuf[splitPos:], planar.SingleWidth)
	if err != nil {
		return PlanarChunkResult{}, err
	}

	return PlanarChunkResult{
		HalfCompressed:   halfCompressed,
		SingleCompressed: singleCompressed,
		HalfLen:          halfLen,
		SingleLen:        singleLen,
	}, nil
}

// Decompress reverses Compress: it runs both regions back through the
// encoding pipeline, concatenates them into planar form, and calls
// internal/planar.Pack to recover the original packed buffer.
func (c PlanarChunkCodec) Decompress(result PlanarChunkResult, sampleCounts [][]int) ([]byte, error) {
	table, err := planar.NewSampleTable(sampleCounts, c.XRes, c.YRes)
	if err != nil {
		return nil, err
	}
	channels := toPlanarChannels(c.Channels)

	halfRegion, err := c.decompressRegion(result.HalfCompressed, result.HalfLen, planar.HalfWidth)
	if err != nil {
		return nil, err
	}
	singleRegion, err := c.decompressRegion(result.SingleCompressed, result.SingleLen, planar.SingleWidth)
	if err != nil {
		return nil, err
	}

	planarBuf := make([]byte, result.HalfLen+result.SingleLen)
	copy(planarBuf, halfRegion)
	copy(planarBuf[result.HalfLen:], singleRegion)

	return planar.Pack(planarBuf, channels, c.XRes, c.YRes, table)
}

// planarChunkHeaderSize is the fixed wire header: four little-endian
// uint32 fields (raw half length, raw single length, compressed half
// length, compressed single length).
const planarChunkHeaderSize = 16

// WireSize returns the encoded length of the result: header plus both
// compressed regions.
func (r PlanarChunkResult) WireSize() int {
	return planarChunkHeaderSize + len(r.HalfCompressed) + len(r.SingleCompressed)
}

// MarshalBinary encodes the result as a little-endian chunk: the four
// header fields followed by the compressed half region and the
// compressed single region.
func (r PlanarChunkResult) MarshalBinary() ([]byte, error) {
	buf := make([]byte, r.WireSize())
	w := xdr.NewWriter(buf)
	if err := w.WriteUint32(uint32(r.HalfLen)); err != nil {
		return nil, err
	}
	if err := w.WriteUint32(uint32(r.SingleLen)); err != nil {
		return nil, err
	}
	if err := w.WriteUint32(uint32(len(r.HalfCompressed))); err != nil {
		return nil, err
	}
	if err := w.WriteUint32(uint32(len(r.SingleCompressed))); err != nil {
		return nil, err
	}
	if err := w.WriteBytes(r.HalfCompressed); err != nil {
		return nil, err
	}
	if err := w.WriteBytes(r.SingleCompressed); err != nil {
		return nil, err
	}
	return buf, nil
}

// UnmarshalBinary decodes a chunk produced by MarshalBinary. It fails
// with xdr.ErrShortBuffer if the data is truncated.
func (r *PlanarChunkResult) UnmarshalBinary(data []byte) error {
	rd := xdr.NewReader(data)
	halfLen, err := rd.ReadUint32()
	if err != nil {
		return err
	}
	singleLen, err := rd.ReadUint32()
	if err != nil {
		return err
	}
	halfCompLen, err := rd.ReadUint32()
	if err != nil {
		return err
	}
	singleCompLen, err := rd.ReadUint32()
	if err != nil {
		return err
	}
	halfCompressed, err := rd.ReadBytes(int(halfCompLen))
	if err != nil {
		return err
	}
	singleCompressed, err := rd.ReadBytes(int(singleCompLen))
	if err != nil {
		return err
	}
	r.HalfLen = int(halfLen)
	r.SingleLen = int(singleLen)
	r.HalfCompressed = halfCompressed
	r.SingleCompressed = singleCompressed
	return nil
}
