package derive

import (
	"bytes"
	"fmt"
	"go/format"
	"go/parser"
	"go/token"
	"text/template"

	"golang.org/x/tools/go/ast/astutil"
	"golang.org/x/tools/imports"
)

// builtinCodecs maps a Go primitive type name to the expression that constructs its
// storekey.Codec. For a field type outside this table, the generated code calls a
// <Type>Codec() constructor, which must exist in the same package; storekeygen does not emit
// one, not even for a nested //storekey:generate struct.
var builtinCodecs = map[string]string{
	"bool":    "storekey.Bool()",
	"uint8":   "storekey.Uint8()",
	"uint16":  "storekey.Uint16()",
	"uint32":  "storekey.Uint32()",
	"uint64":  "storekey.Uint64()",
	"int8":    "storekey.Int8()",
	"int16":   "storekey.Int16()",
	"int32":   "storekey.Int32()",
	"int64":   "storekey.Int64()",
	"float32": "storekey.Float32()",
	"float64": "storekey.Float64()",
	"string":  "storekey.String()",
	"rune":    "storekey.Char()",
	"[]byte":  "storekey.Bytes()",
}

// codecExprFor returns the Go expression that constructs the storekey.Codec for a field of
// the given declared type. format is the enclosing struct's format-family directive (the
// StructTarget.Format value), or "" for the default family; it currently only affects bool,
// the one builtin with more than one wire format.
func codecExprFor(fieldType, format string) string {
	if fieldType == "bool" && format == "legacy" {
		return "storekey.LegacyBool()"
	}
	if expr, ok := builtinCodecs[fieldType]; ok {
		return expr
	}
	return fieldType + "Codec()"
}

type structView struct {
	Name   string
	Fields []fieldView
}

type fieldView struct {
	Name      string
	Type      string
	CodecExpr string
}

type unionView struct {
	Name         string
	VariantCount int
	Variants     []variantView
}

type variantView struct {
	Index  int
	Struct structView
}

var fileTemplate = template.Must(template.New("file").Funcs(template.FuncMap{}).Parse(`// Code generated by storekeygen. DO NOT EDIT.

package {{.Package}}

{{range .Structs}}
func (v {{.Name}}) Encode(w *storekey.Writer) error {
{{- range .Fields}}
	if err := {{.CodecExpr}}.Encode(w, v.{{.Name}}); err != nil {
		return err
	}
{{- end}}
	return nil
}

func Decode{{.Name}}(r *storekey.Reader) ({{.Name}}, error) {
	var v {{.Name}}
	var err error
{{- range .Fields}}
	v.{{.Name}}, err = {{.CodecExpr}}.Decode(r)
	if err != nil {
		return v, err
	}
{{- end}}
	return v, nil
}

func BorrowDecode{{.Name}}(r *storekey.BorrowReader) ({{.Name}}, error) {
	var v {{.Name}}
	var err error
{{- range .Fields}}
	v.{{.Name}}, err = storekey.BorrowDecodeField[{{.Type}}](r, {{.CodecExpr}})
	if err != nil {
		return v, err
	}
{{- end}}
	return v, nil
}
{{end}}

{{range $u := .Unions}}
func Encode{{$u.Name}}(w *storekey.Writer, v {{$u.Name}}) error {
	switch t := v.(type) {
{{- range $u.Variants}}
	case {{.Struct.Name}}:
		if err := storekey.WriteDiscriminant(w, {{.Index}}, {{$u.VariantCount}}); err != nil {
			return err
		}
		return t.Encode(w)
{{- end}}
	default:
		return storekey.InvalidFormatError{Reason: "unknown {{$u.Name}} variant"}
	}
}

func Decode{{$u.Name}}(r *storekey.Reader) ({{$u.Name}}, error) {
	idx, err := storekey.ReadDiscriminant(r, {{$u.VariantCount}})
	if err != nil {
		return nil, err
	}
	switch idx {
{{- range $u.Variants}}
	case {{.Index}}:
		return Decode{{.Struct.Name}}(r)
{{- end}}
	default:
		return nil, storekey.InvalidFormatError{Reason: "unknown {{$u.Name}} discriminant"}
	}
}

func BorrowDecode{{$u.Name}}(r *storekey.BorrowReader) ({{$u.Name}}, error) {
	idx, err := storekey.BorrowReadDiscriminant(r, {{$u.VariantCount}})
	if err != nil {
		return nil, err
	}
	switch idx {
{{- range $u.Variants}}
	case {{.Index}}:
		return BorrowDecode{{.Struct.Name}}(r)
{{- end}}
	default:
		return nil, storekey.InvalidFormatError{Reason: "unknown {{$u.Name}} discriminant"}
	}
}
{{end}}
`)).Option("missingkey=error")

type fileView struct {
	Package string
	Structs []structView
	Unions  []unionView
}

// Generate renders the Encode/Decode/BorrowDecode method set for every target found in f,
// then runs the result through goimports so the generated file needs no manual cleanup.
func Generate(f *File) ([]byte, error) {
	view := fileView{Package: f.Package}
	for _, s := range f.Structs {
		view.Structs = append(view.Structs, toStructView(s))
	}
	for _, u := range f.Unions {
		uv := unionView{Name: u.Name, VariantCount: len(u.Variants)}
		for i, variant := range u.Variants {
			uv.Variants = append(uv.Variants, variantView{Index: i, Struct: toStructView(variant)})
			view.Structs = append(view.Structs, toStructView(variant))
		}
		view.Unions = append(view.Unions, uv)
	}

	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, view); err != nil {
		return nil, fmt.Errorf("derive: rendering template: %w", err)
	}

	withImport, err := addStorekeyImport(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("derive: inserting storekey import: %w", err)
	}

	formatted, err := imports.Process("storekey_generated.go", withImport, nil)
	if err != nil {
		return nil, fmt.Errorf("derive: formatting generated code: %w", err)
	}
	return formatted, nil
}

// addStorekeyImport parses the rendered template output and uses astutil to splice in the
// storekey import, rather than hand-assembling the import block as text. goimports (run
// afterward by the caller) would add it too, but doing the insertion on the AST keeps the
// template itself free of import bookkeeping: it only has to know which declarations it
// produces, not which package those declarations' types live in.
func addStorekeyImport(src []byte) ([]byte, error) {
	fset := token.NewFileSet()
	astFile, err := parser.ParseFile(fset, "storekey_generated.go", src, parser.ParseComments)
	if err != nil {
		return nil, err
	}
	astutil.AddImport(fset, astFile, "github.com/surrealdb/storekey")

	var buf bytes.Buffer
	if err := format.Node(&buf, fset, astFile); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func toStructView(s StructTarget) structView {
	sv := structView{Name: s.Name}
	for _, field := range s.Fields {
		sv.Fields = append(sv.Fields, fieldView{
			Name:      field.Name,
			Type:      field.Type,
			CodecExpr: codecExprFor(field.Type, s.Format),
		})
	}
	return sv
}
