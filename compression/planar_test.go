package compression

import (
	"bytes"
	"testing"
)

func flatSampleCounts(xres, yres int) [][]int {
	grid := make([][]int, yres)
	for l := range grid {
		grid[l] = make([]int, xres)
		for p := range grid[l] {
			grid[l][p] = 1
		}
	}
	return grid
}

func TestPlanarChunkCodecRoundTrip(t *testing.T) {
	codec := PlanarChunkCodec{
		Channels: []PlanarChannelInfo{
			{Name: "R", Type: PixelTypeHalf, XSampling: 1, YSampling: 1},
			{Name: "G", Type: PixelTypeHalf, XSampling: 1, YSampling: 1},
			{Name: "B", Type: PixelTypeFloat, XSampling: 1, YSampling: 1},
			{Name: "A", Type: PixelTypeHalf, XSampling: 1, YSampling: 1},
		},
		XRes:  2,
		YRes:  1,
		Level: CompressionLevelDefault,
	}
	packed := []byte("r0r1g0g1b000b001a0a1")
	sampleCounts := flatSampleCounts(2, 1)

	result, err := codec.Compress(packed, sampleCounts)
	if err != nil {
		t.Fatalf("Compress: %v", err)
	}
	if result.HalfLen != 12 {
		t.Errorf("HalfLen = %d, want 12", result.HalfLen)
	}
	if result.SingleLen != 8 {
		t.Errorf("SingleLen = %d, want 8", result.SingleLen)
	}

	got, err := codec.Decompress(result, sampleCounts)
	if err != nil {
		t.Fatalf("Decompress: %v", err)
	}
	if !bytes.Equal(got, packed) {
		t.Errorf("round trip mismatch: got %q, want %q", got, packed)
	}
}

func TestPlanarChunkCodecSubSampled(t *testing.T) {
	codec := PlanarChunkCodec{
		Channels: []PlanarChannelInfo{
			{Name: "y", Type: PixelTypeHalf, XSampling: 1, YSampling: 1},
			{Name: "R", Type: PixelTypeHalf, XSampling: 2, YSampling: 2},
			{Name: "B", Type: PixelTypeHalf, XSampling: 2, YSampling: 2},
			{Name: "a", Type: PixelTypeHalf, XSampling: 1, YSampling: 1},
		},
		XRes:  2,
		YRes:  2,
		Level: CompressionLevelDefault,
	}
	packed := []byte("y0y1R0B0a0a1y2y3a2a3")
	sampleCounts := flatSampleCounts(2, 2)

	result, err := codec.Compress(packed, sampleCounts)
	if err != nil {
		t.Fatalf("Compress: %v", err)
	}
	if result.SingleLen != 0 {
		t.Errorf("SingleLen = %d, want 0 (no single-precision channels)", result.SingleLen)
	}

	got, err := codec.Decompress(result, sampleCounts)
	if err != nil {
		t.Fatalf("Decompress: %v", err)
	}
	if !bytes.Equal(got, packed) {
		t.Errorf("round trip mismatch: got %q, want %q", got, packed)
	}
}

func TestPlanarChunkCodecRLEMethod(t *testing.T) {
	codec := PlanarChunkCodec{
		Channels: []PlanarChannelInfo{
			{Name: "r", Type: PixelTypeHalf, XSampling: 1, YSampling: 1},
			{Name: "Z", Type: PixelTypeFloat, XSampling: 1, YSampling: 1},
		},
		XRes:   4,
		YRes:   3,
		Method: PlanarMethodRLE,
	}
	sampleCounts := [][]int{
		{1, 2, 1, 1},
		{3, 1, 1, 2},
		{1, 1, 1, 1},
	}
	total := 0
	for _, row := range sampleCounts {
		for _, n := range row {
			total += n
		}
	}
	packed := make([]byte, total*(2+4))
	for i := range packed {
		packed[i] = byte(i / 16) // long runs, RLE's best case
	}

	result, err := codec.Compress(packed, sampleCounts)
	if err != nil {
		t.Fatalf("Compress: %v", err)
	}
	got, err := codec.Decompress(result, sampleCounts)
	if err != nil {
		t.Fatalf("Decompress: %v", err)
	}
	if !bytes.Equal(got, packed) {
		t.Error("RLE round trip did not recover the packed buffer")
	}
}

func TestPlanarChunkResultWireRoundTrip(t *testing.T) {
	codec := PlanarChunkCodec{
		Channels: []PlanarChannelInfo{
			{Name: "R", Type: PixelTypeHalf, XSampling: 1, YSampling: 1},
			{Name: "Z", Type: PixelTypeFloat, XSampling: 1, YSampling: 1},
		},
		XRes:  4,
		YRes:  2,
		Level: CompressionLevelDefault,
	}
	packed := make([]byte, 48)
	for i := range packed {
		packed[i] = byte(i * 7)
	}
	sampleCounts := flatSampleCounts(4, 2)

	result, err := codec.Compress(packed, sampleCounts)
	if err != nil {
		t.Fatalf("Compress: %v", err)
	}

	wire, err := result.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary: %v", err)
	}
	if len(wire) != result.WireSize() {
		t.Errorf("len(wire) = %d, want %d", len(wire), result.WireSize())
	}

	var decoded PlanarChunkResult
	if err := decoded.UnmarshalBinary(wire); err != nil {
		t.Fatalf("UnmarshalBinary: %v", err)
	}
	if decoded.HalfLen != result.HalfLen || decoded.SingleLen != result.SingleLen {
		t.Errorf("decoded lengths = (%d,%d), want (%d,%d)",
			decoded.HalfLen, decoded.SingleLen, result.HalfLen, result.SingleLen)
	}
	if !bytes.Equal(decoded.HalfCompressed, result.HalfCompressed) ||
		!bytes.Equal(decoded.SingleCompressed, result.SingleCompressed) {
		t.Error("decoded compressed regions differ from original")
	}

	got, err := codec.Decompress(decoded, sampleCounts)
	if err != nil {
		t.Fatalf("Decompress: %v", err)
	}
	if !bytes.Equal(got, packed) {
		t.Error("wire round trip did not recover the packed buffer")
	}
}

func TestPlanarChunkResultUnmarshalTruncated(t *testing.T) {
	codec := PlanarChunkCodec{
		Channels: []PlanarChannelInfo{
			{Name: "R", Type: PixelTypeHalf, XSampling: 1, YSampling: 1},
		},
		XRes:  2,
		YRes:  1,
		Level: CompressionLevelDefault,
	}
	result, err := codec.Compress([]byte("r0r1"), flatSampleCounts(2, 1))
	if err != nil {
		t.Fatalf("Compress: %v", err)
	}
	wire, err := result.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary: %v", err)
	}

	for _, n := range []int{0, 4, planarChunkHeaderSize, len(wire) - 1} {
		var decoded PlanarChunkResult
		if err := decoded.UnmarshalBinary(wire[:n]); err == nil {
			t.Errorf("UnmarshalBinary on %d of %d bytes: want error, got nil", n, len(wire))
		}
	}
}

func TestPlanarChunkCodecDeepSamples(t *testing.T) {
	codec := PlanarChunkCodec{
		Channels: []PlanarChannelInfo{
			{Name: "r", Type: PixelTypeHalf, XSampling: 1, YSampling: 1},
			{Name: "b", Type: PixelTypeUint, XSampling: 1, YSampling: 1},
		},
		XRes:  2,
		YRes:  1,
		Level: CompressionLevelDefault,
	}
	packed := []byte("r0r0r1b000b000b001")
	sampleCounts := [][]int{{2, 1}}

	result, err := codec.Compress(packed, sampleCounts)
	if err != nil {
		t.Fatalf("Compress: %v", err)
	}

	got, err := codec.Decompress(result, sampleCounts)
	if err != nil {
		t.Fatalf("Decompress: %v", err)
	}
	if !bytes.Equal(got, packed) {
		t.Errorf("round trip mismatch: got %q, want %q", got, packed)
	}
}
