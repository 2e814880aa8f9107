package docbook

import (
	"strings"

	"github.com/platinummonkey/spoke-docbook/pkg/sink"
)

const (
	documentHeader = `<?xml version="1.0" encoding="utf-8" standalone="no"?>` +
		`<article xmlns="http://docbook.org/ns/docbook" xmlns:xlink="http://www.w3.org/1999/xlink" version="5.0">` + "\n"
	documentFooter = "</article>\n"
)

// scalarType is one row of the scalar value type glossary
type scalarType struct {
	Name  string
	Notes string
	Cpp   string
	Java  string
}

var scalarTypes = []scalarType{
	{"double", "", "double", "double"},
	{"float", "", "float", "float"},
	{"int32", "Uses variable-length encoding. Inefficient for encoding negative numbers. If your field is likely to have negative values, use sint32 instead.", "int32", "int"},
	{"int64", "Uses variable-length encoding. Inefficient for encoding negative numbers. If your field is likely to have negative values, use sint64 instead.", "int64", "long"},
	{"uint32", "Uses variable-length encoding.", "uint32", "int"},
	{"uint64", "Uses variable-length encoding.", "uint64", "long"},
	{"sint32", "Uses variable-length encoding. Signed int value. These more efficiently encode negative numbers than regular int32s.", "int32", "int"},
	{"sint64", "Uses variable-length encoding. Signed int value. These more efficiently encode negative numbers than regular int64s.", "int64", "long"},
	{"fixed32", "Always four bytes. More efficient than uint32 if values are often greater than 2^28.", "uint32", "int"},
	{"fixed64", "Always eight bytes. More efficient than uint64 if values are often greater than 2^56.", "uint64", "long"},
	{"sfixed32", "Always four bytes.", "int32", "int"},
	{"sfixed64", "Always eight bytes.", "int64", "long"},
	{"bool", "", "bool", "boolean"},
	{"string", "A string must always contain UTF-8 encoded or 7-bit ASCII text.", "string", "String"},
	{"bytes", "May contain any arbitrary sequence of bytes.", "string", "ByteString"},
}

// TemplateDocument returns the document every pass is spliced into: the
// article wrapper, the insertion marker and, when enabled, the scalar value
// type glossary after the marker.
func (r *Renderer) TemplateDocument() string {
	var b strings.Builder
	b.WriteString(documentHeader)
	b.WriteString(sink.MarkerComment(r.opts.InsertionPoint) + "\n")
	if r.opts.IncludeTypeGlossary {
		r.writeGlossary(&b)
	}
	b.WriteString(documentFooter)
	return b.String()
}

func (r *Renderer) writeGlossary(b *strings.Builder) {
	b.WriteString("<sect1><title> Scalar Value Types</title>\n")
	r.writeTableHeader(b, GlossaryAnchor, []string{"Type", "Notes", "C++ Type", "Java Type"})
	for i, st := range scalarTypes {
		r.writeRow(b, i, st.Name, Paragraphize(Escape(st.Notes)), st.Cpp, st.Java)
	}
	writeTableFooter(b, 1)
}
