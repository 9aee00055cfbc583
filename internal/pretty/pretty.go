// Package pretty renders a decoded NBT tree in the classic textual layout:
//
//	TAG_Compound("hello world"): 1 entries
//	{
//	  TAG_String("name"): Bananrama
//	}
//
// Type names are colorized through fatih/color, which disables itself when
// stdout is not a terminal; callers can force plain output via color.NoColor.
package pretty

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/minetools/nbt/nbt"
)

var (
	typeColor = color.New(color.FgCyan)
	nameColor = color.New(color.FgYellow)
)

// Fprint writes the textual rendering of one named tag tree to w.
func Fprint(w io.Writer, tag nbt.NamedTag) {
	named(w, "", tag)
}

func named(w io.Writer, indent string, tag nbt.NamedTag) {
	head := fmt.Sprintf("%s(%s)", typeColor.Sprint(tag.Content.Type()), nameColor.Sprintf("%q", tag.Name))
	payload(w, indent, head, tag.Content)
}

func payload(w io.Writer, indent, head string, tag nbt.Tag) {
	switch v := tag.(type) {
	case nbt.Compound:
		fmt.Fprintf(w, "%s%s: %d entries\n%s{\n", indent, head, len(v), indent)
		for _, entry := range v {
			named(w, indent+"  ", entry)
		}
		fmt.Fprintf(w, "%s}\n", indent)
	case nbt.List:
		fmt.Fprintf(w, "%s%s: %d entries of type %s\n%s{\n", indent, head, len(v.Items), v.Elem, indent)
		for _, item := range v.Items {
			payload(w, indent+"  ", typeColor.Sprint(item.Type()), item)
		}
		fmt.Fprintf(w, "%s}\n", indent)
	case nbt.ByteArray:
		fmt.Fprintf(w, "%s%s: [%d bytes]\n", indent, head, len(v))
	case nbt.String:
		fmt.Fprintf(w, "%s%s: %s\n", indent, head, string(v))
	case nbt.End:
		fmt.Fprintf(w, "%s%s\n", indent, head)
	default:
		fmt.Fprintf(w, "%s%s: %v\n", indent, head, v)
	}
}
