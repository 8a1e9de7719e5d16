package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"strings"
	"text/template"
)

const fileHeader = "// Code generated by jelcolgen. DO NOT EDIT.\n\n"

var columnTmpl = template.Must(template.New("column").Parse(`package {{.Package}}

import (
	"database/sql/driver"
{{- if .NeedsTimeImport}}
	"time"
{{- end}}

	"github.com/dekarrin/jelcol"
)

// Value implements driver.Valuer. {{.Type}} values are stored as {{.Raw}}
// columns via ToColumn.
func (v {{.Type}}) Value() (driver.Value, error) {
	return jelcol.RawValue(v.ToColumn()), nil
}

// Scan implements sql.Scanner. The column value is coerced to {{.Raw}} and
// handed to {{.FromFunc}}; any error it reports is returned unchanged.
func (v *{{.Type}}) Scan(value interface{}) error {
	raw, err := jelcol.CoerceRaw[{{.Raw}}](value)
	if err != nil {
		return err
	}

	dec, err := {{.FromFunc}}(raw)
	if err != nil {
		return err
	}

	*v = dec
	return nil
}
`))

var queryableTmpl = template.Must(template.New("queryable").Parse(`package {{.Package}}

import (
	"github.com/dekarrin/jelcol"
)

// ScanRow fills v from the current row of r. Columns are assigned to the
// fields of {{.Type}} positionally, in declaration order; the query that
// produced the row must select exactly these columns in this order. If any
// column fails to decode, v is not modified.
func (v *{{.Type}}) ScanRow(r jelcol.Row) error {
	var dec {{.Type}}
	err := r.Scan(
{{- range .Fields}}
		&dec.{{.}},
{{- end}}
	)
	if err != nil {
		return err
	}

	*v = dec
	return nil
}

// RowValues returns the fields of v in declaration order, for use as bind
// arguments when writing a row.
func (v {{.Type}}) RowValues() []interface{} {
	return []interface{}{
{{- range .Fields}}
		v.{{.}},
{{- end}}
	}
}
`))

// GenerateColumn renders the registration glue for c as a formatted Go
// source file.
func GenerateColumn(c Column) ([]byte, error) {
	return render(columnTmpl, c)
}

// GenerateQueryable renders the positional row-scanning glue for q as a
// formatted Go source file.
func GenerateQueryable(q Queryable) ([]byte, error) {
	return render(queryableTmpl, q)
}

// ColumnFileName returns the name of the file GenerateColumn output for the
// named type should be written to.
func ColumnFileName(typeName string) string {
	return strings.ToLower(typeName) + "_column.go"
}

// QueryableFileName returns the name of the file GenerateQueryable output
// for the named type should be written to.
func QueryableFileName(typeName string) string {
	return strings.ToLower(typeName) + "_queryable.go"
}

func render(tmpl *template.Template, data interface{}) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(fileHeader)

	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing %s template: %w", tmpl.Name(), err)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("formatting generated code: %w", err)
	}

	return src, nil
}
