package docbook

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/platinummonkey/spoke-docbook/pkg/config"
	"github.com/platinummonkey/spoke-docbook/pkg/schema"
)

func TestWriteMessageSection_Golden(t *testing.T) {
	r := newTestRenderer(nil)
	unit := scenarioUnit()

	var b strings.Builder
	r.WriteMessageSection(&b, unit.Messages[0], "M", 2)

	want := lines(
		`<sect2><title> Message: M</title>`,
		`<informaltable frame="all" xml:id="M">`,
		`<tgroup cols="4">`,
		` <colspec colname="c1" colnum="1" colwidth="4*" />`,
		`<colspec colname="c2" colnum="2" colwidth="3*" />`,
		`<colspec colname="c3" colnum="3" colwidth="3*" />`,
		`<colspec colname="c4" colnum="4" colwidth="8*" />`,
		`<thead>`,
		`<row>`,
		`<?dbhtml bgcolor="#8eb4e3" ?>`,
		`<?dbfo bgcolor="#8eb4e3" ?>`,
		"\t<entry>Element</entry>",
		"\t<entry>Type</entry>",
		"\t<entry>Rule</entry>",
		"\t<entry>Description</entry>",
		`</row>`,
		`</thead>`,
		`<tbody>`,
		`<row>`,
		`<?dbhtml bgcolor="#ffffff" ?>`,
		`<?dbfo bgcolor="#ffffff" ?>`,
		"\t<entry>id</entry>",
		"\t<entry>int32</entry>",
		"\t<entry>required</entry>",
		"\t<entry>",
		"[default = 5 ]",
		"</entry>",
		`</row>`,
		``,
		`<row>`,
		`<?dbhtml bgcolor="#dbe5f1" ?>`,
		`<?dbfo bgcolor="#dbe5f1" ?>`,
		"\t<entry>tag</entry>",
		"\t<entry>string</entry>",
		"\t<entry>repeated</entry>",
		"\t<entry></entry>",
		`</row>`,
		``,
		`</tbody>`,
		`</tgroup>`,
		`</informaltable>`,
		`</sect2>`,
	)

	assert.Equal(t, want, b.String())
}

func TestWriteEnumSection_Golden(t *testing.T) {
	r := newTestRenderer(nil)
	enum := &schema.Enum{
		Name:     "Status",
		FullName: "shop.Order.Status",
		Comment:  schema.Comment{Leading: "Order state."},
		Values: []*schema.EnumValue{
			{Name: "PENDING", Number: 3},
			{Name: "SHIPPED", Number: 7, Comment: schema.Comment{Trailing: "on its way"}},
		},
	}

	var b strings.Builder
	r.WriteEnumSection(&b, enum, "Order.Status", 3)

	want := lines(
		`<sect3><title> Enum: Order.Status</title>`,
		`<para>Order state.</para>`,
		`<informaltable frame="all" xml:id="shop_Order_Status">`,
		`<tgroup cols="3">`,
		` <colspec colname="c1" colnum="1" colwidth="4*" />`,
		`<colspec colname="c2" colnum="2" colwidth="3*" />`,
		`<colspec colname="c3" colnum="3" colwidth="3*" />`,
		`<thead>`,
		`<row>`,
		`<?dbhtml bgcolor="#8eb4e3" ?>`,
		`<?dbfo bgcolor="#8eb4e3" ?>`,
		"\t<entry>Element</entry>",
		"\t<entry>Value</entry>",
		"\t<entry>Description</entry>",
		`</row>`,
		`</thead>`,
		`<tbody>`,
		`<row>`,
		`<?dbhtml bgcolor="#ffffff" ?>`,
		`<?dbfo bgcolor="#ffffff" ?>`,
		"\t<entry>PENDING</entry>",
		"\t<entry>0</entry>",
		"\t<entry></entry>",
		`</row>`,
		``,
		`<row>`,
		`<?dbhtml bgcolor="#dbe5f1" ?>`,
		`<?dbfo bgcolor="#dbe5f1" ?>`,
		"\t<entry>SHIPPED</entry>",
		"\t<entry>1</entry>",
		"\t<entry><para>on its way</para></entry>",
		`</row>`,
		``,
		`</tbody>`,
		`</tgroup>`,
		`</informaltable>`,
		`</sect3>`,
	)

	assert.Equal(t, want, b.String())
}

func TestWriteMessageSection_RowAlternation(t *testing.T) {
	opts := config.Default()
	opts.RowColorPrimary = "aaaaaa"
	opts.RowColorAlternate = "bbbbbb"
	r := newTestRenderer(opts)

	msg := &schema.Message{Name: "Wide", FullName: "Wide"}
	for i := 0; i < 7; i++ {
		msg.Fields = append(msg.Fields, &schema.Field{
			Name:  "f" + string(rune('a'+i)),
			Label: schema.LabelOptional,
			Kind:  schema.KindInt64,
		})
	}

	var b strings.Builder
	r.WriteMessageSection(&b, msg, "Wide", 2)

	rows := bodyRows(b.String())
	require.Len(t, rows, 7)
	for i, row := range rows {
		if i%2 == 0 {
			assert.Contains(t, row, `<?dbhtml bgcolor="#aaaaaa" ?>`, "row %d", i)
			assert.Contains(t, row, `<?dbfo bgcolor="#aaaaaa" ?>`, "row %d", i)
			assert.NotContains(t, row, "bbbbbb", "row %d", i)
		} else {
			assert.Contains(t, row, `<?dbhtml bgcolor="#bbbbbb" ?>`, "row %d", i)
			assert.NotContains(t, row, "aaaaaa", "row %d", i)
		}
	}
}

func TestWriteMessageSection_Description(t *testing.T) {
	r := newTestRenderer(nil)

	tests := []struct {
		name  string
		field *schema.Field
		want  string
	}{
		{
			name:  "comment only",
			field: &schema.Field{Name: "f", Kind: schema.KindString, Comment: schema.Comment{Leading: "a\n\nb"}},
			want:  "\t<entry><para>a</para>\n<para>b</para></entry>\n",
		},
		{
			name:  "default only",
			field: &schema.Field{Name: "f", Kind: schema.KindBool, Default: true},
			want:  "\t<entry>\n[default = true ]\n</entry>\n",
		},
		{
			name:  "comment and default",
			field: &schema.Field{Name: "f", Kind: schema.KindInt32, Default: int32(5), Comment: schema.Comment{Leading: "count"}},
			want:  "\t<entry><para>count</para><para>\n[default = 5 ]</para>\n</entry>\n",
		},
		{
			name:  "whitespace comment with default",
			field: &schema.Field{Name: "f", Kind: schema.KindInt32, Default: int32(1), Comment: schema.Comment{Leading: "  "}},
			want:  "\t<entry>\n[default = 1 ]\n</entry>\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := &schema.Message{Name: "M", FullName: "M", Fields: []*schema.Field{tt.field}}

			var b strings.Builder
			r.WriteMessageSection(&b, msg, "M", 2)
			assert.Contains(t, b.String(), tt.want)
		})
	}
}

func TestWriteMessageSection_MessageComment(t *testing.T) {
	r := newTestRenderer(nil)
	msg := &schema.Message{
		Name:     "M",
		FullName: "M",
		Comment:  schema.Comment{Leading: "first\n\nsecond"},
		Fields:   []*schema.Field{{Name: "f", Kind: schema.KindBool}},
	}

	var b strings.Builder
	r.WriteMessageSection(&b, msg, "M", 2)

	assert.True(t, strings.HasPrefix(b.String(),
		"<sect2><title> Message: M</title>\n<para>first</para>\n<para>second</para>\n<informaltable"))
}

func TestWriteMessageSection_Empty(t *testing.T) {
	msg := &schema.Message{Name: "Empty", FullName: "pkg.Empty", Comment: schema.Comment{Leading: "   "}}

	t.Run("omitted by default", func(t *testing.T) {
		var b strings.Builder
		newTestRenderer(nil).WriteMessageSection(&b, msg, "Empty", 2)
		assert.Empty(t, b.String())
	})

	t.Run("kept without table", func(t *testing.T) {
		opts := config.Default()
		opts.OmitEmptyMessages = false

		var b strings.Builder
		newTestRenderer(opts).WriteMessageSection(&b, msg, "Empty", 4)
		assert.Equal(t, "<sect4 xml:id=\"pkg_Empty\"><title> Message: Empty</title>\n</sect4>\n", b.String())
	})
}

func TestWriteEnumSection_Empty(t *testing.T) {
	enum := &schema.Enum{Name: "None", FullName: "None"}

	var b strings.Builder
	newTestRenderer(nil).WriteEnumSection(&b, enum, "None", 2)
	assert.Empty(t, b.String())

	opts := config.Default()
	opts.OmitEmptyMessages = false
	newTestRenderer(opts).WriteEnumSection(&b, enum, "None", 2)
	assert.Equal(t, "<sect2 xml:id=\"None\"><title> Enum: None</title>\n</sect2>\n", b.String())
}

func TestWriteMessageSection_ConfiguredTable(t *testing.T) {
	opts := config.Default()
	opts.FieldNameColumnWidth = "10"
	opts.FieldTypeColumnWidth = "11"
	opts.FieldRulesColumnWidth = "12"
	opts.FieldDescColumnWidth = "13"
	opts.ColumnHeaderColor = "123456"
	opts.IncludeTypeGlossary = true
	r := newTestRenderer(opts)

	var b strings.Builder
	r.WriteMessageSection(&b, scenarioUnit().Messages[0], "M", 2)
	out := b.String()

	assert.Contains(t, out, ` <colspec colname="c1" colnum="1" colwidth="10*" />`)
	assert.Contains(t, out, `<colspec colname="c2" colnum="2" colwidth="11*" />`)
	assert.Contains(t, out, `<colspec colname="c3" colnum="3" colwidth="12*" />`)
	assert.Contains(t, out, `<colspec colname="c4" colnum="4" colwidth="13*" />`)
	assert.Contains(t, out, `<?dbhtml bgcolor="#123456" ?>`)
	assert.Contains(t, out, `<?dbfo bgcolor="#123456" ?>`)
	assert.Contains(t, out, "\t<entry>"+`<emphasis role="underline" xlink:href="#scalar_value_types">int32</emphasis>`+"</entry>")
}

func TestWriteMessageSection_DanglingReference(t *testing.T) {
	r := newTestRenderer(nil)
	msg := &schema.Message{
		Name:     "M",
		FullName: "M",
		Fields: []*schema.Field{
			{Name: "ref", Label: schema.LabelOptional, Kind: schema.KindMessage},
		},
	}

	var b strings.Builder
	r.WriteMessageSection(&b, msg, "M", 2)
	assert.Contains(t, b.String(), "\t<entry>message</entry>\n")
}
