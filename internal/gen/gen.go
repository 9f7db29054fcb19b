// Package gen renders the bounded arity families (FunctionN, PredicateN,
// Try.OfN) from templates and formats the output with go/format. The
// committed *_gen.go files in the root package are its output; regenerate
// them with cmd/fngen instead of editing by hand.
package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"strings"
	"text/template"
)

// File is a rendered source file ready to be written to disk.
type File struct {
	Name   string
	Source []byte
}

// Arity carries the per-arity strings the templates splice into type
// parameter lists, signatures and call sites.
type Arity struct {
	N        int
	Word     string // "two"
	Params   string // "T1, T2"
	Args     string // "t1 T1, t2 T2"
	CallArgs string // "t1, t2"
}

var arityWords = []string{
	"zero", "one", "two", "three", "four",
	"five", "six", "seven", "eight", "nine",
}

// NewArity builds the Arity for n. It panics for n outside 1..9; the
// zero- and one-argument variants are handwritten exemplars.
func NewArity(n int) Arity {
	if n < 1 || n > 9 {
		panic(fmt.Sprintf("gen: arity %d out of range 1..9", n))
	}
	params := make([]string, n)
	args := make([]string, n)
	callArgs := make([]string, n)
	for i := 1; i <= n; i++ {
		params[i-1] = fmt.Sprintf("T%d", i)
		args[i-1] = fmt.Sprintf("t%d T%d", i, i)
		callArgs[i-1] = fmt.Sprintf("t%d", i)
	}
	return Arity{
		N:        n,
		Word:     arityWords[n],
		Params:   strings.Join(params, ", "),
		Args:     strings.Join(args, ", "),
		CallArgs: strings.Join(callArgs, ", "),
	}
}

type fileData struct {
	Pkg     string
	Arities []Arity
}

const header = `// Code generated by fngen. DO NOT EDIT.

package {{.Pkg}}

import "martianoff/fnkit/fnerr"
`

const functionsTmpl = header + `
{{range .Arities}}
// Function{{.N}} wraps a mapping of {{.Word}} arguments.
type Function{{.N}}[{{.Params}}, R any] func({{.Params}}) R

// Apply invokes the wrapped mapping.
func (f Function{{.N}}[{{.Params}}, R]) Apply({{.Args}}) R {
	return f({{.CallArgs}})
}

// AndThen{{.N}} pipes the result of f through after.
func AndThen{{.N}}[{{.Params}}, R, U any](f Function{{.N}}[{{.Params}}, R], after Function1[R, U]) Function{{.N}}[{{.Params}}, U] {
	if after == nil {
		panic(fnerr.NewArgument("AndThen{{.N}}: after must be provided"))
	}
	return func({{.Args}}) U {
		return after(f({{.CallArgs}}))
	}
}
{{end}}`

const predicatesTmpl = header + `
{{range .Arities}}
// Predicate{{.N}} wraps a boolean-valued test of {{.Word}} arguments.
type Predicate{{.N}}[{{.Params}} any] func({{.Params}}) bool

// Apply invokes the wrapped test.
func (p Predicate{{.N}}[{{.Params}}]) Apply({{.Args}}) bool {
	return p({{.CallArgs}})
}

// And returns the conjunction of p and other. Evaluation short-circuits.
func (p Predicate{{.N}}[{{.Params}}]) And(other Predicate{{.N}}[{{.Params}}]) Predicate{{.N}}[{{.Params}}] {
	if other == nil {
		panic(fnerr.NewArgument("Predicate{{.N}}.And: other must be provided"))
	}
	return func({{.Args}}) bool {
		return p({{.CallArgs}}) && other({{.CallArgs}})
	}
}

// Or returns the disjunction of p and other. Evaluation short-circuits.
func (p Predicate{{.N}}[{{.Params}}]) Or(other Predicate{{.N}}[{{.Params}}]) Predicate{{.N}}[{{.Params}}] {
	if other == nil {
		panic(fnerr.NewArgument("Predicate{{.N}}.Or: other must be provided"))
	}
	return func({{.Args}}) bool {
		return p({{.CallArgs}}) || other({{.CallArgs}})
	}
}

// Not returns the negation of p.
func (p Predicate{{.N}}[{{.Params}}]) Not() Predicate{{.N}}[{{.Params}}] {
	return func({{.Args}}) bool {
		return !p({{.CallArgs}})
	}
}

// Xor returns the exclusive disjunction of p and other.
func (p Predicate{{.N}}[{{.Params}}]) Xor(other Predicate{{.N}}[{{.Params}}]) Predicate{{.N}}[{{.Params}}] {
	if other == nil {
		panic(fnerr.NewArgument("Predicate{{.N}}.Xor: other must be provided"))
	}
	return func({{.Args}}) bool {
		return p({{.CallArgs}}) != other({{.CallArgs}})
	}
}

// AlwaysTrue{{.N}} returns the predicate that accepts every value.
func AlwaysTrue{{.N}}[{{.Params}} any]() Predicate{{.N}}[{{.Params}}] {
	return func({{.Params}}) bool { return true }
}

// AlwaysFalse{{.N}} returns the predicate that rejects every value.
func AlwaysFalse{{.N}}[{{.Params}} any]() Predicate{{.N}}[{{.Params}}] {
	return func({{.Params}}) bool { return false }
}

// AllOf{{.N}} returns the conjunction of all given predicates. With no
// predicates it accepts everything.
func AllOf{{.N}}[{{.Params}} any](ps ...Predicate{{.N}}[{{.Params}}]) Predicate{{.N}}[{{.Params}}] {
	return func({{.Args}}) bool {
		for _, p := range ps {
			if p == nil {
				panic(fnerr.NewArgument("AllOf{{.N}}: predicates must be provided"))
			}
			if !p({{.CallArgs}}) {
				return false
			}
		}
		return true
	}
}

// AnyOf{{.N}} returns the disjunction of all given predicates. With no
// predicates it rejects everything.
func AnyOf{{.N}}[{{.Params}} any](ps ...Predicate{{.N}}[{{.Params}}]) Predicate{{.N}}[{{.Params}}] {
	return func({{.Args}}) bool {
		for _, p := range ps {
			if p == nil {
				panic(fnerr.NewArgument("AnyOf{{.N}}: predicates must be provided"))
			}
			if p({{.CallArgs}}) {
				return true
			}
		}
		return false
	}
}
{{end}}`

const tryOfsTmpl = header + `
{{range .Arities}}
// Of{{.N}} invokes a callable of {{.Word}} arguments inside a guarded region.
func Of{{.N}}[{{.Params}}, R any]({{.Args}}, fn Function{{.N}}[{{.Params}}, R]) Try[R] {
	if fn == nil {
		panic(fnerr.NewArgument("Try.Of{{.N}}: fn must be provided"))
	}
	return guard(func() R { return fn({{.CallArgs}}) })
}
{{end}}`

func render(name, tmpl, pkg string, minArity, maxArity int) (File, error) {
	t, err := template.New(name).Parse(tmpl)
	if err != nil {
		return File{}, fmt.Errorf("gen: parse %s template: %w", name, err)
	}
	arities := make([]Arity, 0, maxArity-minArity+1)
	for n := minArity; n <= maxArity; n++ {
		arities = append(arities, NewArity(n))
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, fileData{Pkg: pkg, Arities: arities}); err != nil {
		return File{}, fmt.Errorf("gen: render %s: %w", name, err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return File{}, fmt.Errorf("gen: format %s: %w", name, err)
	}
	return File{Name: name, Source: src}, nil
}

// Functions renders function_gen.go for arities minArity..maxArity.
func Functions(pkg string, minArity, maxArity int) (File, error) {
	return render("function_gen.go", functionsTmpl, pkg, minArity, maxArity)
}

// Predicates renders predicate_gen.go for arities minArity..maxArity.
func Predicates(pkg string, minArity, maxArity int) (File, error) {
	return render("predicate_gen.go", predicatesTmpl, pkg, minArity, maxArity)
}

// TryOfs renders try_gen.go for arities minArity..maxArity.
func TryOfs(pkg string, minArity, maxArity int) (File, error) {
	return render("try_gen.go", tryOfsTmpl, pkg, minArity, maxArity)
}

// All renders the three families at their default ranges:
// Function2..9, Predicate2..7, Try.Of2..Of9. Arity 0 and 1 stay handwritten.
func All(pkg string) ([]File, error) {
	functions, err := Functions(pkg, 2, 9)
	if err != nil {
		return nil, err
	}
	predicates, err := Predicates(pkg, 2, 7)
	if err != nil {
		return nil, err
	}
	tryOfs, err := TryOfs(pkg, 2, 9)
	if err != nil {
		return nil, err
	}
	return []File{functions, predicates, tryOfs}, nil
}
