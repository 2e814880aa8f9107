package docbook

import (
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/platinummonkey/spoke-docbook/pkg/schema"
)

// WriteMessageSection writes the section and field table of one message at
// the given section depth. title is the display name used in the heading.
func (r *Renderer) WriteMessageSection(b *strings.Builder, msg *schema.Message, title string, depth int) {
	anchor := Anchor(msg.FullName)
	comment := FormatComment(msg.Comment)

	if len(msg.Fields) == 0 {
		if r.opts.OmitEmptyMessages {
			r.log.WithField("message", msg.FullName).Debug("Skipping message without fields")
			return
		}
		writeBareSection(b, "Message", anchor, title, comment, depth)
		r.metrics.RecordSection("message")
		return
	}

	writeSectionHeader(b, "Message", title, comment, depth)
	r.writeTableHeader(b, anchor, []string{"Element", "Type", "Rule", "Description"})

	for i, field := range msg.Fields {
		if isDangling(field) {
			r.log.WithFields(logrus.Fields{
				"message": msg.FullName,
				"field":   field.Name,
			}).Warn("Field references an unresolved type")
		}

		desc := FormatComment(field.Comment)
		if def := FormatDefault(field, r.opts.BytesDefaultAsHex); def != "" {
			if desc == "" {
				desc = def + "\n"
			} else {
				desc += "<para>" + def + "</para>\n"
			}
		}

		r.writeRow(b, i,
			field.Name,
			ResolveTypeDisplay(field, r.opts.IncludeTypeGlossary),
			ResolveOccurrence(field.Label),
			desc,
		)
	}

	writeTableFooter(b, depth)
	r.metrics.RecordSection("message")
}

// WriteEnumSection writes the section and value table of one enum at the
// given section depth. The Value column is the position of each element.
func (r *Renderer) WriteEnumSection(b *strings.Builder, enum *schema.Enum, title string, depth int) {
	anchor := Anchor(enum.FullName)
	comment := FormatComment(enum.Comment)

	if len(enum.Values) == 0 {
		if r.opts.OmitEmptyMessages {
			r.log.WithField("enum", enum.FullName).Debug("Skipping enum without values")
			return
		}
		writeBareSection(b, "Enum", anchor, title, comment, depth)
		r.metrics.RecordSection("enum")
		return
	}

	writeSectionHeader(b, "Enum", title, comment, depth)
	r.writeTableHeader(b, anchor, []string{"Element", "Value", "Description"})

	for i, value := range enum.Values {
		r.writeRow(b, i,
			value.Name,
			strconv.Itoa(i),
			FormatComment(value.Comment),
		)
	}

	writeTableFooter(b, depth)
	r.metrics.RecordSection("enum")
}

func writeSectionHeader(b *strings.Builder, kind, title, comment string, depth int) {
	b.WriteString("<sect" + strconv.Itoa(depth) + ">")
	b.WriteString("<title> " + kind + ": " + title + "</title>\n")
	if comment != "" {
		b.WriteString(comment + "\n")
	}
}

// writeBareSection writes a section without a table; the anchor moves to the
// section tag so links to the type still resolve
func writeBareSection(b *strings.Builder, kind, anchor, title, comment string, depth int) {
	level := strconv.Itoa(depth)
	b.WriteString("<sect" + level + ` xml:id="` + anchor + `">`)
	b.WriteString("<title> " + kind + ": " + title + "</title>\n")
	if comment != "" {
		b.WriteString(comment + "\n")
	}
	b.WriteString("</sect" + level + ">\n")
}

// columnWidths returns the configured widths of the first n columns
func (r *Renderer) columnWidths(n int) []string {
	widths := []string{
		r.opts.FieldNameColumnWidth,
		r.opts.FieldTypeColumnWidth,
		r.opts.FieldRulesColumnWidth,
		r.opts.FieldDescColumnWidth,
	}
	for i := range widths {
		widths[i] = Escape(widths[i])
	}
	return widths[:n]
}

func (r *Renderer) writeTableHeader(b *strings.Builder, anchor string, columns []string) {
	b.WriteString(`<informaltable frame="all" xml:id="` + anchor + `">` + "\n")
	b.WriteString(`<tgroup cols="` + strconv.Itoa(len(columns)) + `">` + "\n")

	for i, width := range r.columnWidths(len(columns)) {
		if i == 0 {
			b.WriteString(" ")
		}
		col := strconv.Itoa(i + 1)
		b.WriteString(`<colspec colname="c` + col + `" colnum="` + col + `" colwidth="` + width + `*" />` + "\n")
	}

	b.WriteString("<thead>\n<row>\n")
	writeBgcolor(b, r.opts.ColumnHeaderColor)
	for _, column := range columns {
		b.WriteString("\t<entry>" + column + "</entry>\n")
	}
	b.WriteString("</row>\n</thead>\n<tbody>\n")
}

// writeRow writes one body row; even rows use the primary color
func (r *Renderer) writeRow(b *strings.Builder, index int, cells ...string) {
	color := r.opts.RowColorPrimary
	if index%2 == 1 {
		color = r.opts.RowColorAlternate
	}

	b.WriteString("<row>\n")
	writeBgcolor(b, color)
	for _, cell := range cells {
		b.WriteString("\t<entry>" + cell + "</entry>\n")
	}
	b.WriteString("</row>\n\n")
}

func writeBgcolor(b *strings.Builder, color string) {
	color = Escape(color)
	b.WriteString(`<?dbhtml bgcolor="#` + color + `" ?>` + "\n")
	b.WriteString(`<?dbfo bgcolor="#` + color + `" ?>` + "\n")
}

func writeTableFooter(b *strings.Builder, depth int) {
	b.WriteString("</tbody>\n</tgroup>\n</informaltable>\n")
	b.WriteString("</sect" + strconv.Itoa(depth) + ">\n")
}
