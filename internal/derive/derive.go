// Package derive implements the source-generation logic behind cmd/storekeygen: parsing Go
// source for types tagged with a //storekey:generate directive and emitting Encode/Decode/
// BorrowDecode methods for them, the Go analogue of the original format's
// #[derive(Encode, Decode, BorrowDecode)] proc-macro.
package derive

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"strings"
)

const directivePrefix = "//storekey:generate"

// Field is one struct field to be encoded/decoded in declared order.
type Field struct {
	Name string
	Type string
}

// StructTarget is a struct type carrying a generate directive.
type StructTarget struct {
	Name   string
	Fields []Field
	// Format is the format family named by a "format=<name>" suffix on the directive, or ""
	// for the default family. Generate uses it only to pick the bool Codec ("legacy" selects
	// storekey.LegacyBool()); the generated type is not generic over format.
	Format string
}

// UnionTarget is a sealed interface type, and the struct types that implement it, treated as
// the Go encoding of a Rust-style enum: one variant per implementing struct, in the order
// they were declared in the parsed file.
type UnionTarget struct {
	Name     string
	Variants []StructTarget
}

// File is the result of parsing one source file for generate directives.
type File struct {
	Package string
	Structs []StructTarget
	Unions  []UnionTarget
}

// Parse reads src (the contents of a Go source file) and collects every type declaration
// immediately preceded by a //storekey:generate directive comment.
func Parse(filename string, src []byte) (*File, error) {
	fset := token.NewFileSet()
	astFile, err := parser.ParseFile(fset, filename, src, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("derive: parsing %s: %w", filename, err)
	}

	result := &File{Package: astFile.Name.Name}
	directives, formats := collectDirectives(astFile)

	interfaceNames := map[string]bool{}
	structsByName := map[string]*ast.StructType{}
	structOrder := []string{}

	for _, decl := range astFile.Decls {
		genDecl, ok := decl.(*ast.GenDecl)
		if !ok || genDecl.Tok != token.TYPE {
			continue
		}
		for _, spec := range genDecl.Specs {
			typeSpec, ok := spec.(*ast.TypeSpec)
			if !ok {
				continue
			}
			switch t := typeSpec.Type.(type) {
			case *ast.StructType:
				structsByName[typeSpec.Name.Name] = t
				structOrder = append(structOrder, typeSpec.Name.Name)
			case *ast.InterfaceType:
				if directives[typeSpec.Name.Name] {
					interfaceNames[typeSpec.Name.Name] = true
				}
			}
		}
	}

	// A struct satisfies a sealed interface, for this tool's purposes, by declaring a method
	// named after the interface ("is<Interface>") with no parameters and no results -- the
	// conventional Go sealing idiom. Real type-checking is left to the compiler; storekeygen
	// only needs to know which structs to treat as variants and in what order.
	variantsOf := map[string][]string{}
	for _, decl := range astFile.Decls {
		funcDecl, ok := decl.(*ast.FuncDecl)
		if !ok || funcDecl.Recv == nil || len(funcDecl.Recv.List) != 1 {
			continue
		}
		recvType := receiverTypeName(funcDecl.Recv.List[0].Type)
		for iface := range interfaceNames {
			if funcDecl.Name.Name == "is"+iface {
				variantsOf[iface] = append(variantsOf[iface], recvType)
			}
		}
	}

	handled := map[string]bool{}
	for iface := range interfaceNames {
		variantNames := variantsOf[iface]
		union := UnionTarget{Name: iface}
		for _, name := range variantNames {
			st, ok := structsByName[name]
			if !ok {
				return nil, fmt.Errorf("derive: variant %s of %s has no struct declaration", name, iface)
			}
			union.Variants = append(union.Variants, StructTarget{
				Name:   name,
				Fields: fieldsOf(st),
				Format: formats[name],
			})
			handled[name] = true
		}
		if len(union.Variants) == 0 {
			return nil, fmt.Errorf("derive: %s needs at least one variant", iface)
		}
		result.Unions = append(result.Unions, union)
	}

	for _, name := range structOrder {
		if handled[name] || !directives[name] {
			continue
		}
		result.Structs = append(result.Structs, StructTarget{
			Name:   name,
			Fields: fieldsOf(structsByName[name]),
			Format: formats[name],
		})
	}

	return result, nil
}

func receiverTypeName(expr ast.Expr) string {
	if star, ok := expr.(*ast.StarExpr); ok {
		expr = star.X
	}
	if ident, ok := expr.(*ast.Ident); ok {
		return ident.Name
	}
	return ""
}

// collectDirectives maps a type name to whether its declaration is immediately preceded by a
// //storekey:generate comment, and to the format family named by an optional
// "format=<name>" suffix on that same comment (e.g. "//storekey:generate format=legacy").
func collectDirectives(astFile *ast.File) (directed map[string]bool, formats map[string]string) {
	directed = map[string]bool{}
	formats = map[string]string{}
	for _, commentGroup := range astFile.Comments {
		last := commentGroup.List[len(commentGroup.List)-1].Text
		directive := strings.TrimPrefix(directivePrefix, "//")
		if !strings.Contains(last, directive) {
			continue
		}
		format := ""
		if _, rest, found := strings.Cut(last, directive); found {
			if _, value, found := strings.Cut(rest, "format="); found {
				if fields := strings.Fields(value); len(fields) > 0 {
					format = fields[0]
				}
			}
		}
		// Find the nearest following type declaration.
		for _, decl := range astFile.Decls {
			genDecl, ok := decl.(*ast.GenDecl)
			if !ok || genDecl.Tok != token.TYPE {
				continue
			}
			if genDecl.Doc == commentGroup {
				for _, spec := range genDecl.Specs {
					if ts, ok := spec.(*ast.TypeSpec); ok {
						directed[ts.Name.Name] = true
						if format != "" {
							formats[ts.Name.Name] = format
						}
					}
				}
			}
		}
	}
	return directed, formats
}

func fieldsOf(st *ast.StructType) []Field {
	var fields []Field
	for _, f := range st.Fields.List {
		typeStr := exprString(f.Type)
		if len(f.Names) == 0 {
			continue
		}
		for _, name := range f.Names {
			fields = append(fields, Field{Name: name.Name, Type: typeStr})
		}
	}
	return fields
}

func exprString(expr ast.Expr) string {
	switch t := expr.(type) {
	case *ast.Ident:
		return t.Name
	case *ast.StarExpr:
		return "*" + exprString(t.X)
	case *ast.ArrayType:
		return "[]" + exprString(t.Elt)
	case *ast.SelectorExpr:
		return exprString(t.X) + "." + t.Sel.Name
	default:
		return fmt.Sprintf("%T", expr)
	}
}
