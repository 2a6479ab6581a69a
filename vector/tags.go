package vector

import (
	"github.com/bits-and-blooms/bitset"
	"github.com/brimdata/columnar/colerr"
)

// Tags records, for each slot of a two-variant store, which variant the
// slot holds and the slot's offset into that variant's store.  Offsets
// are dense: the k-th slot tagged with a variant has offset k.
type Tags interface {
	// Append adds a slot with the given tag (0 or 1) and returns its
	// offset into the tag's store.
	Append(tag uint8) int
	// Pop removes the last slot and returns its tag and offset.
	Pop() (uint8, int, bool)
	// Lookup returns the tag and offset of a slot.
	Lookup(slot int) (uint8, int)
	Len() int
	// Count returns the number of slots with the given tag.
	Count(tag uint8) int
	Clear()
	HeapSize() (int, int)
}

// TagEncoding selects the representation of a Tags array.
type TagEncoding int

const (
	// WordTags stores a tag byte and a 32-bit offset per slot.
	WordTags TagEncoding = iota
	// BitmapTags stores a single bit per slot and computes offsets by
	// counting the bits that precede a slot.
	BitmapTags
)

func (e TagEncoding) String() string {
	switch e {
	case WordTags:
		return "word"
	case BitmapTags:
		return "bitmap"
	}
	return "unknown"
}

func ParseTagEncoding(s string) (TagEncoding, error) {
	switch s {
	case "word", "":
		return WordTags, nil
	case "bitmap":
		return BitmapTags, nil
	}
	return 0, colerr.E(colerr.Invalid, "unknown tag encoding %q (values: word, bitmap)", s)
}

func NewTags(enc TagEncoding) Tags {
	if enc == BitmapTags {
		return &DenseTags{}
	}
	return &TagMap{}
}

func checkTag(tag uint8) {
	if tag > 1 {
		invariant("tag %d is not 0 or 1", tag)
	}
}

// TagMap holds the tag and the forward offset of every slot.
type TagMap struct {
	Tags    []uint8
	Forward []uint32
	counts  [2]int
}

var _ Tags = (*TagMap)(nil)

func (t *TagMap) Append(tag uint8) int {
	checkTag(tag)
	off := t.counts[tag]
	t.counts[tag]++
	t.Tags = append(t.Tags, tag)
	t.Forward = append(t.Forward, uint32(off))
	return off
}

func (t *TagMap) Pop() (uint8, int, bool) {
	n := len(t.Tags)
	if n == 0 {
		return 0, 0, false
	}
	tag, off := t.Tags[n-1], int(t.Forward[n-1])
	t.Tags = t.Tags[:n-1]
	t.Forward = t.Forward[:n-1]
	t.counts[tag]--
	return tag, off, true
}

func (t *TagMap) Lookup(slot int) (uint8, int) {
	checkSlot(slot, len(t.Tags))
	return t.Tags[slot], int(t.Forward[slot])
}

func (t *TagMap) Len() int {
	return len(t.Tags)
}

func (t *TagMap) Count(tag uint8) int {
	checkTag(tag)
	return t.counts[tag]
}

func (t *TagMap) Clear() {
	t.Tags = t.Tags[:0]
	t.Forward = t.Forward[:0]
	t.counts = [2]int{}
}

func (t *TagMap) HeapSize() (int, int) {
	return len(t.Tags) + offsetSize*len(t.Forward), cap(t.Tags) + offsetSize*cap(t.Forward)
}

// DenseTags holds one bit per slot, set for tag 1.  The offset of a slot
// is the number of preceding slots with the same tag, found by ranking
// the bitmap, so lookups cost time proportional to the slot number in
// exchange for an eighth of a byte per slot.
type DenseTags struct {
	bits bitset.BitSet
	n    int
	ones int
}

var _ Tags = (*DenseTags)(nil)

func (d *DenseTags) Append(tag uint8) int {
	checkTag(tag)
	slot := d.n
	d.n++
	if tag == 1 {
		d.bits.Set(uint(slot))
		d.ones++
		return d.ones - 1
	}
	if s := uint(slot); s >= d.bits.Len() {
		// Grow the bitmap so its words cover every slot.
		d.bits.Set(s).Clear(s)
	}
	return slot - d.ones
}

func (d *DenseTags) Pop() (uint8, int, bool) {
	if d.n == 0 {
		return 0, 0, false
	}
	d.n--
	slot := uint(d.n)
	if d.bits.Test(slot) {
		d.bits.Clear(slot)
		d.ones--
		return 1, d.ones, true
	}
	return 0, d.n - d.ones, true
}

func (d *DenseTags) Lookup(slot int) (uint8, int) {
	checkSlot(slot, d.n)
	// Rank counts the set bits in [0, slot].
	rank := int(d.bits.Rank(uint(slot)))
	if d.bits.Test(uint(slot)) {
		return 1, rank - 1
	}
	return 0, slot - rank
}

func (d *DenseTags) Len() int {
	return d.n
}

func (d *DenseTags) Count(tag uint8) int {
	checkTag(tag)
	if tag == 1 {
		return d.ones
	}
	return d.n - d.ones
}

func (d *DenseTags) Clear() {
	d.bits.ClearAll()
	d.n = 0
	d.ones = 0
}

func (d *DenseTags) HeapSize() (int, int) {
	const wordSize = 8
	return wordSize * ((d.n + 63) / 64), wordSize * cap(d.bits.Words())
}
