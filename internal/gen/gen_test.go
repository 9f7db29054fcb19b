package gen

import (
	"go/parser"
	"go/token"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewArity(t *testing.T) {
	a := NewArity(3)
	assert.Equal(t, 3, a.N)
	assert.Equal(t, "three", a.Word)
	assert.Equal(t, "T1, T2, T3", a.Params)
	assert.Equal(t, "t1 T1, t2 T2, t3 T3", a.Args)
	assert.Equal(t, "t1, t2, t3", a.CallArgs)
}

func TestNewArityOutOfRange(t *testing.T) {
	assert.Panics(t, func() { NewArity(0) })
	assert.Panics(t, func() { NewArity(10) })
}

func TestAll(t *testing.T) {
	files, err := All("fnkit")
	require.NoError(t, err)
	require.Len(t, files, 3)

	names := []string{"function_gen.go", "predicate_gen.go", "try_gen.go"}
	for i, file := range files {
		t.Run(file.Name, func(t *testing.T) {
			assert.Equal(t, names[i], file.Name)
			src := string(file.Source)
			assert.True(t, strings.HasPrefix(src, "// Code generated by fngen. DO NOT EDIT."))
			assert.Contains(t, src, "package fnkit")

			fset := token.NewFileSet()
			_, err := parser.ParseFile(fset, file.Name, file.Source, parser.ParseComments)
			assert.NoError(t, err)
		})
	}
}

func TestFunctionsDeclaresBoundedArities(t *testing.T) {
	file, err := Functions("fnkit", 2, 9)
	require.NoError(t, err)

	src := string(file.Source)
	for _, decl := range []string{
		"type Function2[T1, T2, R any] func(T1, T2) R",
		"func AndThen9[T1, T2, T3, T4, T5, T6, T7, T8, T9, R, U any]",
	} {
		assert.Contains(t, src, decl)
	}
	assert.NotContains(t, src, "type Function1[")
	assert.NotContains(t, src, "type Function10[")
}

func TestPredicatesDeclaresBoundedArities(t *testing.T) {
	file, err := Predicates("fnkit", 2, 7)
	require.NoError(t, err)

	src := string(file.Source)
	assert.Contains(t, src, "type Predicate2[T1, T2 any] func(T1, T2) bool")
	assert.Contains(t, src, "func AnyOf7[")
	assert.NotContains(t, src, "type Predicate8[")
}

func TestTryOfsDeclaresBoundedArities(t *testing.T) {
	file, err := TryOfs("fnkit", 2, 9)
	require.NoError(t, err)

	src := string(file.Source)
	assert.Contains(t, src, "func Of2[T1, T2, R any](t1 T1, t2 T2, fn Function2[T1, T2, R]) Try[R]")
	assert.Contains(t, src, "func Of9[")
	assert.NotContains(t, src, "func Of10[")
}
