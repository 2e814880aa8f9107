package schema

import (
	"google.golang.org/protobuf/reflect/protoreflect"
)

// FromFileDescriptor converts a compiled file descriptor into a Unit.
//
// The conversion runs in two stages:
// 1. Declare every message and enum of the file so that field references to
// local types resolve to the same nodes the walker renders
// 2. Convert fields, resolving message and enum references. Types declared in
// other files become reference-only nodes carrying just their names
func FromFileDescriptor(fd protoreflect.FileDescriptor) *Unit {
	c := &converter{
		locations:  fd.SourceLocations(),
		messages:   make(map[protoreflect.FullName]*Message),
		enums:      make(map[protoreflect.FullName]*Enum),
		enumValues: make(map[protoreflect.FullName]*EnumValue),
	}

	unit := &Unit{
		Name:     fd.Path(),
		Package:  string(fd.Package()),
		Messages: make([]*Message, 0, fd.Messages().Len()),
		Enums:    make([]*Enum, 0, fd.Enums().Len()),
	}

	// Stage 1: declarations
	for i := 0; i < fd.Messages().Len(); i++ {
		unit.Messages = append(unit.Messages, c.declareMessage(fd.Messages().Get(i)))
	}
	for i := 0; i < fd.Enums().Len(); i++ {
		unit.Enums = append(unit.Enums, c.declareEnum(fd.Enums().Get(i)))
	}

	// Stage 2: fields
	for _, p := range c.pending {
		fields := p.desc.Fields()
		p.msg.Fields = make([]*Field, 0, fields.Len())
		for i := 0; i < fields.Len(); i++ {
			p.msg.Fields = append(p.msg.Fields, c.convertField(fields.Get(i)))
		}
	}

	return unit
}

type pendingMessage struct {
	desc protoreflect.MessageDescriptor
	msg  *Message
}

type converter struct {
	locations  protoreflect.SourceLocations
	messages   map[protoreflect.FullName]*Message
	enums      map[protoreflect.FullName]*Enum
	enumValues map[protoreflect.FullName]*EnumValue
	pending    []pendingMessage
}

func (c *converter) comment(d protoreflect.Descriptor) Comment {
	if c.locations == nil {
		return Comment{}
	}
	loc := c.locations.ByDescriptor(d)
	return Comment{
		Leading:  loc.LeadingComments,
		Trailing: loc.TrailingComments,
	}
}

func (c *converter) declareMessage(md protoreflect.MessageDescriptor) *Message {
	msg := &Message{
		Name:     string(md.Name()),
		FullName: string(md.FullName()),
		Messages: make([]*Message, 0, md.Messages().Len()),
		Enums:    make([]*Enum, 0, md.Enums().Len()),
		Comment:  c.comment(md),
	}
	c.messages[md.FullName()] = msg
	c.pending = append(c.pending, pendingMessage{desc: md, msg: msg})

	for i := 0; i < md.Messages().Len(); i++ {
		msg.Messages = append(msg.Messages, c.declareMessage(md.Messages().Get(i)))
	}
	for i := 0; i < md.Enums().Len(); i++ {
		msg.Enums = append(msg.Enums, c.declareEnum(md.Enums().Get(i)))
	}

	return msg
}

func (c *converter) declareEnum(ed protoreflect.EnumDescriptor) *Enum {
	enum := &Enum{
		Name:     string(ed.Name()),
		FullName: string(ed.FullName()),
		Values:   make([]*EnumValue, 0, ed.Values().Len()),
		Comment:  c.comment(ed),
	}
	c.enums[ed.FullName()] = enum

	for i := 0; i < ed.Values().Len(); i++ {
		vd := ed.Values().Get(i)
		value := &EnumValue{
			Name:    string(vd.Name()),
			Number:  int(vd.Number()),
			Comment: c.comment(vd),
		}
		c.enumValues[vd.FullName()] = value
		enum.Values = append(enum.Values, value)
	}

	return enum
}

func (c *converter) convertField(fd protoreflect.FieldDescriptor) *Field {
	field := &Field{
		Name:    string(fd.Name()),
		Number:  int(fd.Number()),
		Label:   convertLabel(fd.Cardinality()),
		Kind:    Kind(fd.Kind()),
		Comment: c.comment(fd),
	}

	switch fd.Kind() {
	case protoreflect.MessageKind, protoreflect.GroupKind:
		field.Message = c.messageRef(fd.Message())
	case protoreflect.EnumKind:
		field.Enum = c.enumRef(fd.Enum())
	}

	if fd.HasDefault() {
		if fd.Kind() == protoreflect.EnumKind {
			if vd := fd.DefaultEnumValue(); vd != nil {
				field.Default = c.enumValueRef(vd)
			}
		} else {
			field.Default = scalarDefault(fd.Kind(), fd.Default())
		}
	}

	return field
}

// messageRef returns the local node for md, or a reference-only node for types
// declared in another file
func (c *converter) messageRef(md protoreflect.MessageDescriptor) *Message {
	if md == nil {
		return nil
	}
	if msg, ok := c.messages[md.FullName()]; ok {
		return msg
	}
	msg := &Message{Name: string(md.Name()), FullName: string(md.FullName())}
	c.messages[md.FullName()] = msg
	return msg
}

func (c *converter) enumRef(ed protoreflect.EnumDescriptor) *Enum {
	if ed == nil {
		return nil
	}
	if enum, ok := c.enums[ed.FullName()]; ok {
		return enum
	}
	enum := &Enum{Name: string(ed.Name()), FullName: string(ed.FullName())}
	c.enums[ed.FullName()] = enum
	return enum
}

func (c *converter) enumValueRef(vd protoreflect.EnumValueDescriptor) *EnumValue {
	if value, ok := c.enumValues[vd.FullName()]; ok {
		return value
	}
	return &EnumValue{Name: string(vd.Name()), Number: int(vd.Number())}
}

func convertLabel(card protoreflect.Cardinality) Label {
	switch card {
	case protoreflect.Optional:
		return LabelOptional
	case protoreflect.Repeated:
		return LabelRepeated
	case protoreflect.Required:
		return LabelRequired
	default:
		return 0
	}
}

// scalarDefault converts a declared default into the Go type documented on Field
func scalarDefault(kind protoreflect.Kind, v protoreflect.Value) any {
	switch kind {
	case protoreflect.BoolKind:
		return v.Bool()
	case protoreflect.Int32Kind, protoreflect.Sint32Kind, protoreflect.Sfixed32Kind:
		return int32(v.Int())
	case protoreflect.Int64Kind, protoreflect.Sint64Kind, protoreflect.Sfixed64Kind:
		return v.Int()
	case protoreflect.Uint32Kind, protoreflect.Fixed32Kind:
		return uint32(v.Uint())
	case protoreflect.Uint64Kind, protoreflect.Fixed64Kind:
		return v.Uint()
	case protoreflect.FloatKind:
		return float32(v.Float())
	case protoreflect.DoubleKind:
		return v.Float()
	case protoreflect.StringKind:
		return v.String()
	case protoreflect.BytesKind:
		return append([]byte{}, v.Bytes()...)
	default:
		return nil
	}
}
