package nbt

import (
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
)

// DefaultMaxDepth is the nesting bound applied when no WithMaxDepth option is
// given. Each list or compound entered counts one level; input nested past
// the bound fails with ErrNestingTooDeep instead of growing the call stack
// without limit.
const DefaultMaxDepth = 512

// maxPrealloc caps the capacity hint taken from a declared element count, so
// a hostile count cannot demand a proportional allocation before any element
// has decoded.
const maxPrealloc = 4096

// MaxListLen is the largest element count a list may declare. End-typed
// elements consume no input, so without a hard cap a five-byte list header
// could demand memory proportional to an arbitrary count.
const MaxListLen = 1 << 24

// Decoder reads named tag trees from a raw (already decompressed) stream.
type Decoder struct {
	r        *reader
	maxDepth int
	depth    int
}

// Option configures a Decoder.
type Option func(*Decoder)

// WithMaxDepth overrides DefaultMaxDepth. Values below 1 leave the default
// in place.
func WithMaxDepth(n int) Option {
	return func(d *Decoder) {
		if n > 0 {
			d.maxDepth = n
		}
	}
}

// NewDecoder returns a Decoder reading raw NBT bytes from r.
func NewDecoder(r io.Reader, opts ...Option) *Decoder {
	d := &Decoder{r: newReader(r), maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Decode treats r as a gzip-compressed stream holding one named tag and
// returns the decoded tree. A malformed gzip header fails with an error
// wrapping ErrDecompression; every other failure propagates unchanged from
// the decode step that hit it.
func Decode(r io.Reader, opts ...Option) (NamedTag, error) {
	zr, err := gzip.NewReader(r)
	if err != nil {
		return NamedTag{}, fmt.Errorf("%w: %v", ErrDecompression, err)
	}
	defer zr.Close()
	return NewDecoder(zr, opts...).Decode()
}

// DecodeUncompressed decodes one named tag from raw NBT bytes.
func DecodeUncompressed(r io.Reader, opts ...Option) (NamedTag, error) {
	return NewDecoder(r, opts...).Decode()
}

// Decode reads a single named tag and its full payload. Bytes after the tag
// are left unread.
func (d *Decoder) Decode() (NamedTag, error) {
	return d.named()
}

// named reads one type-id byte, then a name (unless the id is 0, which is
// never named on the wire) and the payload. A bare 0x00 yields the End
// sentinel with an empty name.
func (d *Decoder) named() (NamedTag, error) {
	id, err := d.r.byte()
	if err != nil {
		return NamedTag{}, err
	}
	typ := Type(id)
	if typ == TypeEnd {
		return NamedTag{Content: End{}}, nil
	}
	if !typ.valid() {
		return NamedTag{}, fmt.Errorf("%w 0x%02x", ErrUnknownType, id)
	}
	name, err := d.r.str()
	if err != nil {
		return NamedTag{}, err
	}
	content, err := d.payload(typ)
	if err != nil {
		return NamedTag{}, err
	}
	return NamedTag{Name: name, Content: content}, nil
}

// payload decodes the payload for an already-read type id. This switch is
// the single id-to-decoder mapping; the named-tag path and the list-element
// path both dispatch through it.
func (d *Decoder) payload(typ Type) (Tag, error) {
	switch typ {
	case TypeEnd:
		return End{}, nil
	case TypeByte:
		v, err := d.r.i8()
		if err != nil {
			return nil, err
		}
		return Byte(v), nil
	case TypeShort:
		v, err := d.r.i16()
		if err != nil {
			return nil, err
		}
		return Short(v), nil
	case TypeInt:
		v, err := d.r.i32()
		if err != nil {
			return nil, err
		}
		return Int(v), nil
	case TypeLong:
		v, err := d.r.i64()
		if err != nil {
			return nil, err
		}
		return Long(v), nil
	case TypeFloat:
		v, err := d.r.f32()
		if err != nil {
			return nil, err
		}
		return Float(v), nil
	case TypeDouble:
		v, err := d.r.f64()
		if err != nil {
			return nil, err
		}
		return Double(v), nil
	case TypeByteArray:
		return d.byteArray()
	case TypeString:
		s, err := d.r.str()
		if err != nil {
			return nil, err
		}
		return String(s), nil
	case TypeList:
		return d.list()
	case TypeCompound:
		return d.compound()
	default:
		return nil, fmt.Errorf("%w 0x%02x", ErrUnknownType, byte(typ))
	}
}

// byteArray reads an i32 length prefix and that many signed bytes. The wire
// byte is reinterpreted bit-for-bit as int8, never range-converted.
func (d *Decoder) byteArray() (Tag, error) {
	n, err := d.r.i32()
	if err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, fmt.Errorf("%w: byte array length %d", ErrInvalidLength, n)
	}
	raw, err := d.r.exact(int(n))
	if err != nil {
		return nil, err
	}
	arr := make(ByteArray, len(raw))
	for i, b := range raw {
		arr[i] = int8(b)
	}
	return arr, nil
}

// list reads an element type-id byte and an i32 count, then decodes count
// unnamed payloads of that one type. Element type 0 with a positive count is
// legal and produces that many End sentinels; the element id is otherwise
// only checked when the first element dispatches, so an empty list carries
// whatever id it declared.
func (d *Decoder) list() (Tag, error) {
	if err := d.push(); err != nil {
		return nil, err
	}
	defer d.pop()
	id, err := d.r.byte()
	if err != nil {
		return nil, err
	}
	elem := Type(id)
	n, err := d.r.i32()
	if err != nil {
		return nil, err
	}
	if n < 0 || n > MaxListLen {
		return nil, fmt.Errorf("%w: list count %d", ErrInvalidLength, n)
	}
	hint := int(n)
	if hint > maxPrealloc {
		hint = maxPrealloc
	}
	items := make([]Tag, 0, hint)
	for i := int32(0); i < n; i++ {
		item, err := d.payload(elem)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return List{Elem: elem, Items: items}, nil
}

// compound accumulates named tags until one whose content is End arrives.
// The terminator is consumed and dropped; only substantive tags are kept, in
// encounter order.
func (d *Decoder) compound() (Tag, error) {
	if err := d.push(); err != nil {
		return nil, err
	}
	defer d.pop()
	tags := Compound{}
	for {
		tag, err := d.named()
		if err != nil {
			return nil, err
		}
		if tag.Content.Type() == TypeEnd {
			return tags, nil
		}
		tags = append(tags, tag)
	}
}

func (d *Decoder) push() error {
	d.depth++
	if d.depth > d.maxDepth {
		return fmt.Errorf("%w: more than %d levels", ErrNestingTooDeep, d.maxDepth)
	}
	return nil
}

func (d *Decoder) pop() {
	d.depth--
}
