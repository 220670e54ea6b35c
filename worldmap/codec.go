package worldmap

import (
	"encoding/binary"
	"fmt"

	"github.com/hupe1980/texloc/internal/conv"
	"github.com/hupe1980/texloc/internal/hash"
)

const (
	headerMagic = "TXHD"
	cellMagic   = "TXCL"

	formatVersion uint16 = 1

	// magic + version + crc
	headerPrefixSize = 4 + 2 + 4
	// magic + version + compression + raw length + crc
	cellPrefixSize = 4 + 2 + 1 + 4 + 4

	maxCellBody  = 1 << 28
	maxCellSize  = 1 << 16
	maxLayerSpan = 1 << 20
)

// EncodeHeader serializes the texture names of one cell header.
func EncodeHeader(names []string) []byte {
	body := binary.AppendUvarint(nil, uint64(len(names)))
	for _, n := range names {
		body = appendString(body, n)
	}

	out := make([]byte, 0, headerPrefixSize+len(body))
	out = append(out, headerMagic...)
	out = binary.LittleEndian.AppendUint16(out, formatVersion)
	out = binary.LittleEndian.AppendUint32(out, hash.CRC32C(body))
	return append(out, body...)
}

// DecodeHeader parses a header blob into its texture names.
func DecodeHeader(data []byte) ([]string, error) {
	if len(data) < headerPrefixSize {
		return nil, corruptf("header too small (%d bytes)", len(data))
	}
	if string(data[:4]) != headerMagic {
		return nil, corruptf("bad header magic %q", data[:4])
	}
	if v := binary.LittleEndian.Uint16(data[4:]); v != formatVersion {
		return nil, corruptf("unsupported header version %d", v)
	}
	body := data[headerPrefixSize:]
	if !hash.Verify(body, binary.LittleEndian.Uint32(data[6:])) {
		return nil, corruptf("header checksum mismatch")
	}

	r := reader{buf: body}
	n := r.uvarint()
	if r.err == nil && n > uint64(len(body)) {
		return nil, corruptf("header count %d exceeds payload", n)
	}
	names := make([]string, 0, n)
	for i := uint64(0); i < n && r.err == nil; i++ {
		names = append(names, r.str())
	}
	if r.err != nil {
		return nil, r.err
	}
	return names, nil
}

// EncodeCell serializes c using compression comp.
func EncodeCell(c *Cell, comp Compression) ([]byte, error) {
	body := binary.AppendUvarint(nil, uint64(c.size))
	body = binary.AppendVarint(body, int64(c.minLayer))
	body = binary.AppendVarint(body, int64(c.maxLayer))
	body = binary.AppendUvarint(body, uint64(len(c.palette)))
	for _, p := range c.palette {
		body = appendString(body, p)
	}
	for i := 0; i < c.squareCount(); i++ {
		sq := c.indices[c.offsets[i]:c.offsets[i+1]]
		body = binary.AppendUvarint(body, uint64(len(sq)))
		for _, p := range sq {
			body = binary.AppendUvarint(body, uint64(p))
		}
	}

	payload, used, err := compress(body, comp)
	if err != nil {
		return nil, fmt.Errorf("worldmap: compress cell: %w", err)
	}

	rawLen, err := conv.IntToUint32(len(body))
	if err != nil || rawLen > maxCellBody {
		return nil, fmt.Errorf("worldmap: cell body of %d bytes exceeds limit", len(body))
	}

	out := make([]byte, 0, cellPrefixSize+len(payload))
	out = append(out, cellMagic...)
	out = binary.LittleEndian.AppendUint16(out, formatVersion)
	out = append(out, byte(used))
	out = binary.LittleEndian.AppendUint32(out, rawLen)
	out = binary.LittleEndian.AppendUint32(out, hash.CRC32C(body))
	return append(out, payload...), nil
}

// DecodeCell parses a cell blob. The returned Cell does not alias data.
func DecodeCell(data []byte) (*Cell, error) {
	if len(data) < cellPrefixSize {
		return nil, corruptf("cell too small (%d bytes)", len(data))
	}
	if string(data[:4]) != cellMagic {
		return nil, corruptf("bad cell magic %q", data[:4])
	}
	if v := binary.LittleEndian.Uint16(data[4:]); v != formatVersion {
		return nil, corruptf("unsupported cell version %d", v)
	}
	comp := Compression(data[6])
	rawLen := binary.LittleEndian.Uint32(data[7:])
	sum := binary.LittleEndian.Uint32(data[11:])
	if rawLen > maxCellBody {
		return nil, corruptf("cell body length %d exceeds limit", rawLen)
	}

	body, err := decompress(data[cellPrefixSize:], comp, rawLen)
	if err != nil {
		return nil, corruptf("cell payload: %v", err)
	}
	if !hash.Verify(body, sum) {
		return nil, corruptf("cell checksum mismatch")
	}

	r := reader{buf: body}
	size := r.uvarint()
	minLayer := r.varint()
	maxLayer := r.varint()
	if r.err != nil {
		return nil, r.err
	}
	if size == 0 || size > maxCellSize {
		return nil, corruptf("invalid cell size %d", size)
	}
	if minLayer < -maxLayerSpan || maxLayer > maxLayerSpan || maxLayer < minLayer {
		return nil, corruptf("invalid layer range [%d,%d)", minLayer, maxLayer)
	}

	c := &Cell{size: int(size), minLayer: int(minLayer), maxLayer: int(maxLayer)}

	// Every square takes at least one byte, which bounds the allocations
	// below by the payload size.
	var squares uint64
	if layers := uint64(maxLayer - minLayer); layers > 0 {
		perLayer := size * size
		if layers > uint64(len(body)) || perLayer > uint64(len(body)) {
			return nil, corruptf("square count exceeds payload")
		}
		squares = layers * perLayer
		if squares > uint64(len(body)) {
			return nil, corruptf("square count exceeds payload")
		}
	}

	np := r.uvarint()
	if r.err == nil && np > uint64(len(body)) {
		return nil, corruptf("palette size %d exceeds payload", np)
	}
	c.palette = make([]string, 0, np)
	for i := uint64(0); i < np && r.err == nil; i++ {
		c.palette = append(c.palette, r.str())
	}

	c.offsets = make([]uint32, squares+1)
	for i := uint64(0); i < squares && r.err == nil; i++ {
		n := r.uvarint()
		if n > uint64(r.remaining()) {
			return nil, corruptf("square %d length %d exceeds payload", i, n)
		}
		for j := uint64(0); j < n && r.err == nil; j++ {
			p := r.uvarint()
			if r.err == nil && p >= np {
				return nil, corruptf("palette index %d out of range", p)
			}
			c.indices = append(c.indices, uint32(p))
		}
		c.offsets[i+1] = uint32(len(c.indices))
	}
	if r.err != nil {
		return nil, r.err
	}
	if r.remaining() != 0 {
		return nil, corruptf("%d trailing bytes", r.remaining())
	}
	return c, nil
}

func appendString(b []byte, s string) []byte {
	b = binary.AppendUvarint(b, uint64(len(s)))
	return append(b, s...)
}

func corruptf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrCorrupt, fmt.Sprintf(format, args...))
}

// reader decodes varints from buf and keeps the first error.
type reader struct {
	buf []byte
	off int
	err error
}

func (r *reader) remaining() int { return len(r.buf) - r.off }

func (r *reader) uvarint() uint64 {
	if r.err != nil {
		return 0
	}
	v, n := binary.Uvarint(r.buf[r.off:])
	if n <= 0 {
		r.err = corruptf("truncated uvarint at offset %d", r.off)
		return 0
	}
	r.off += n
	return v
}

func (r *reader) varint() int64 {
	if r.err != nil {
		return 0
	}
	v, n := binary.Varint(r.buf[r.off:])
	if n <= 0 {
		r.err = corruptf("truncated varint at offset %d", r.off)
		return 0
	}
	r.off += n
	return v
}

func (r *reader) str() string {
	n := r.uvarint()
	if r.err != nil {
		return ""
	}
	l, err := conv.Uint64ToInt(n)
	if err != nil || l > r.remaining() {
		r.err = corruptf("string length %d exceeds payload", n)
		return ""
	}
	s := string(r.buf[r.off : r.off+l])
	r.off += l
	return s
}
