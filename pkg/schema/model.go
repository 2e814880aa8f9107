package schema

import "strings"

// Label is the occurrence rule of a field
type Label int

const (
	LabelOptional Label = iota + 1
	LabelRepeated
	LabelRequired
)

// Kind is the declared type of a field
type Kind int

// Kind values follow the numbering of descriptorpb.FieldDescriptorProto_Type.
const (
	KindDouble   Kind = 1
	KindFloat    Kind = 2
	KindInt64    Kind = 3
	KindUint64   Kind = 4
	KindInt32    Kind = 5
	KindFixed64  Kind = 6
	KindFixed32  Kind = 7
	KindBool     Kind = 8
	KindString   Kind = 9
	KindGroup    Kind = 10
	KindMessage  Kind = 11
	KindBytes    Kind = 12
	KindUint32   Kind = 13
	KindEnum     Kind = 14
	KindSfixed32 Kind = 15
	KindSfixed64 Kind = 16
	KindSint32   Kind = 17
	KindSint64   Kind = 18
)

var kindNames = map[Kind]string{
	KindDouble:   "double",
	KindFloat:    "float",
	KindInt64:    "int64",
	KindUint64:   "uint64",
	KindInt32:    "int32",
	KindFixed64:  "fixed64",
	KindFixed32:  "fixed32",
	KindBool:     "bool",
	KindString:   "string",
	KindGroup:    "group",
	KindMessage:  "message",
	KindBytes:    "bytes",
	KindUint32:   "uint32",
	KindEnum:     "enum",
	KindSfixed32: "sfixed32",
	KindSfixed64: "sfixed64",
	KindSint32:   "sint32",
	KindSint64:   "sint64",
}

// String returns the protobuf type name of the kind
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return ""
}

// IsScalar reports whether the kind is one of the 15 scalar value types
func (k Kind) IsScalar() bool {
	switch k {
	case KindGroup, KindMessage, KindEnum:
		return false
	}
	_, ok := kindNames[k]
	return ok
}

// Comment holds the comments attached to a schema element
type Comment struct {
	Leading  string
	Trailing string
}

// Text joins the leading and trailing comments
func (c Comment) Text() string {
	switch {
	case c.Leading == "":
		return c.Trailing
	case c.Trailing == "":
		return c.Leading
	default:
		return c.Leading + " " + c.Trailing
	}
}

// Unit is one top-level compilation input (a .proto file)
type Unit struct {
	Name     string
	Package  string
	Messages []*Message
	Enums    []*Enum
}

// Message describes a message type and its nested declarations
type Message struct {
	Name     string
	FullName string
	Fields   []*Field
	Messages []*Message
	Enums    []*Enum
	Comment  Comment
}

// Field describes a message field.
//
// Message is set when Kind is KindMessage or KindGroup, Enum when Kind is
// KindEnum. Default is nil when the field declares no default; otherwise it
// holds a bool, int32, int64, uint32, uint64, float32, float64, string,
// []byte or *EnumValue matching Kind.
type Field struct {
	Name    string
	Number  int
	Label   Label
	Kind    Kind
	Message *Message
	Enum    *Enum
	Default any
	Comment Comment
}

// HasDefault reports whether the field declares a default value
func (f *Field) HasDefault() bool {
	return f.Default != nil
}

// Enum describes an enum type
type Enum struct {
	Name     string
	FullName string
	Values   []*EnumValue
	Comment  Comment
}

// EnumValue describes a single enum element. Number is the declared tag; the
// rendered value of an element is its position within Enum.Values.
type EnumValue struct {
	Name    string
	Number  int
	Comment Comment
}

// QualifiedName joins a parent scope and a simple name with a dot
func QualifiedName(scope, name string) string {
	if scope == "" {
		return name
	}
	return scope + "." + name
}

// Summary returns a short description of the unit contents
func (u *Unit) Summary() string {
	var b strings.Builder
	b.WriteString(u.Name)
	if u.Package != "" {
		b.WriteString(" (")
		b.WriteString(u.Package)
		b.WriteString(")")
	}
	return b.String()
}
