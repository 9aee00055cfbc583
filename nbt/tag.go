package nbt

import "fmt"

// Type is the one-byte discriminant identifying a tag's payload variant.
type Type byte

const (
	TypeEnd       Type = 0
	TypeByte      Type = 1
	TypeShort     Type = 2
	TypeInt       Type = 3
	TypeLong      Type = 4
	TypeFloat     Type = 5
	TypeDouble    Type = 6
	TypeByteArray Type = 7
	TypeString    Type = 8
	TypeList      Type = 9
	TypeCompound  Type = 10
)

// String returns the classic TAG_* name, used in diagnostics and rendering.
func (t Type) String() string {
	switch t {
	case TypeEnd:
		return "TAG_End"
	case TypeByte:
		return "TAG_Byte"
	case TypeShort:
		return "TAG_Short"
	case TypeInt:
		return "TAG_Int"
	case TypeLong:
		return "TAG_Long"
	case TypeFloat:
		return "TAG_Float"
	case TypeDouble:
		return "TAG_Double"
	case TypeByteArray:
		return "TAG_Byte_Array"
	case TypeString:
		return "TAG_String"
	case TypeList:
		return "TAG_List"
	case TypeCompound:
		return "TAG_Compound"
	default:
		return fmt.Sprintf("TAG_Unknown(0x%02x)", byte(t))
	}
}

// valid reports whether t is one of the eleven wire type ids.
func (t Type) valid() bool {
	return t <= TypeCompound
}

// Tag is a decoded payload without its name. The set of implementations is
// closed: End, Byte, Short, Int, Long, Float, Double, ByteArray, String,
// List and Compound.
type Tag interface {
	// Type reports the wire type id of the payload.
	Type() Type
}

// End is the sentinel payload for type id 0. It carries no data and appears
// as a stored value only inside lists whose declared element type is 0.
type End struct{}

// Byte is an 8-bit signed integer.
type Byte int8

// Short is a 16-bit signed integer.
type Short int16

// Int is a 32-bit signed integer.
type Int int32

// Long is a 64-bit signed integer.
type Long int64

// Float is a 32-bit IEEE-754 value.
type Float float32

// Double is a 64-bit IEEE-754 value.
type Double float64

// ByteArray is an ordered sequence of signed bytes. Wire bytes >= 0x80 keep
// their bit pattern, so they come out negative.
type ByteArray []int8

// String is length-prefixed UTF-8 text.
type String string

// List is a homogeneous sequence of unnamed payloads. Elem is the element
// type id declared on the wire; every entry of Items has that type.
type List struct {
	Elem  Type
	Items []Tag
}

// Compound is an ordered sequence of named tags. The End marker terminating
// a compound on the wire is consumed during decoding and never stored.
type Compound []NamedTag

func (End) Type() Type       { return TypeEnd }
func (Byte) Type() Type      { return TypeByte }
func (Short) Type() Type     { return TypeShort }
func (Int) Type() Type       { return TypeInt }
func (Long) Type() Type      { return TypeLong }
func (Float) Type() Type     { return TypeFloat }
func (Double) Type() Type    { return TypeDouble }
func (ByteArray) Type() Type { return TypeByteArray }
func (String) Type() Type    { return TypeString }
func (List) Type() Type      { return TypeList }
func (Compound) Type() Type  { return TypeCompound }

// NamedTag pairs a name with its payload. Names may be empty; for an End tag
// the name is always empty since End is never named on the wire.
type NamedTag struct {
	Name    string
	Content Tag
}
