package pixmath

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Digest returns the xxHash64 of the geometry and samples.
// Bitmaps with equal digests almost certainly hold the same pixels; the display window is ignored.
func (b *Bitmap[T]) Digest() uint64 {
	var hdr [32]byte
	binary.LittleEndian.PutUint64(hdr[0:], uint64(b.Width()))
	binary.LittleEndian.PutUint64(hdr[8:], uint64(b.Height()))
	binary.LittleEndian.PutUint64(hdr[16:], uint64(b.Channels()))
	binary.LittleEndian.PutUint64(hdr[24:], uint64(int64(b.Depth())))

	h := xxhash.New()
	_, _ = h.Write(hdr[:])
	if !b.Empty() {
		_, _ = h.Write(b.Bytes())
	}
	return h.Sum64()
}
