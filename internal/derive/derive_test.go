package derive_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/surrealdb/storekey/internal/derive"
)

const structSrc = `package models

//storekey:generate
type Point struct {
	X int32
	Y int32
}
`

func TestParseFindsDirectedStruct(t *testing.T) {
	t.Parallel()
	f, err := derive.Parse("point.go", []byte(structSrc))
	require.NoError(t, err)
	require.Len(t, f.Structs, 1)
	require.Equal(t, "Point", f.Structs[0].Name)
	require.Equal(t, []derive.Field{{Name: "X", Type: "int32"}, {Name: "Y", Type: "int32"}}, f.Structs[0].Fields)
}

func TestParseIgnoresUndirectedStruct(t *testing.T) {
	t.Parallel()
	f, err := derive.Parse("point.go", []byte("package models\n\ntype Plain struct{ X int32 }\n"))
	require.NoError(t, err)
	require.Empty(t, f.Structs)
}

const unionSrc = `package models

//storekey:generate
type Shape interface {
	isShape()
}

type Circle struct {
	Radius uint32
}

func (Circle) isShape() {}

type Square struct {
	Side uint32
}

func (Square) isShape() {}
`

func TestParseFindsUnionVariants(t *testing.T) {
	t.Parallel()
	f, err := derive.Parse("shape.go", []byte(unionSrc))
	require.NoError(t, err)
	require.Len(t, f.Unions, 1)
	require.Equal(t, "Shape", f.Unions[0].Name)
	require.Len(t, f.Unions[0].Variants, 2)
}

const legacyBoolSrc = `package models

//storekey:generate format=legacy
type Flag struct {
	Value bool
}
`

func TestParseRecordsFormatDirective(t *testing.T) {
	t.Parallel()
	f, err := derive.Parse("flag.go", []byte(legacyBoolSrc))
	require.NoError(t, err)
	require.Len(t, f.Structs, 1)
	require.Equal(t, "legacy", f.Structs[0].Format)
}

func TestGenerateUsesLegacyBoolForFormatDirective(t *testing.T) {
	t.Parallel()
	f, err := derive.Parse("flag.go", []byte(legacyBoolSrc))
	require.NoError(t, err)
	out, err := derive.Generate(f)
	require.NoError(t, err)
	require.Contains(t, string(out), "storekey.LegacyBool()")
}

func TestGenerateProducesCompilableLookingSource(t *testing.T) {
	t.Parallel()
	f, err := derive.Parse("point.go", []byte(structSrc))
	require.NoError(t, err)
	out, err := derive.Generate(f)
	require.NoError(t, err)
	require.Contains(t, string(out), "func (v Point) Encode(w *storekey.Writer) error")
	require.Contains(t, string(out), "func DecodePoint(r *storekey.Reader) (Point, error)")
	require.Contains(t, string(out), "func BorrowDecodePoint(r *storekey.BorrowReader) (Point, error)")
}

func TestGenerateEmitsBorrowDecodeForUnion(t *testing.T) {
	t.Parallel()
	f, err := derive.Parse("shape.go", []byte(unionSrc))
	require.NoError(t, err)
	out, err := derive.Generate(f)
	require.NoError(t, err)
	require.Contains(t, string(out), "func BorrowDecodeCircle(r *storekey.BorrowReader) (Circle, error)")
	require.Contains(t, string(out), "func BorrowDecodeShape(r *storekey.BorrowReader) (Shape, error)")
	require.Contains(t, string(out), "storekey.BorrowReadDiscriminant(r, 2)")
}
