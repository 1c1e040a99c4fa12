package glbind_test

import (
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// gofmt keeps a function body on its declaration line only while the whole
// line stays within this many columns.
const oneLineFuncLimit = 100

func TestOneLineFuncsFitGofmt(t *testing.T) {
	files, err := filepath.Glob("*.go")
	if err != nil {
		t.Fatal(err)
	}
	fset := token.NewFileSet()
	for _, name := range files {
		src, err := os.ReadFile(name)
		if err != nil {
			t.Fatal(err)
		}
		f, err := parser.ParseFile(fset, name, src, parser.SkipObjectResolution)
		if err != nil {
			t.Fatal(err)
		}
		lines := strings.Split(string(src), "\n")
		for _, decl := range f.Decls {
			fn, ok := decl.(*ast.FuncDecl)
			if !ok || fn.Body == nil {
				continue
			}
			start := fset.Position(fn.Pos()).Line
			if fset.Position(fn.Body.Rbrace).Line != start {
				continue
			}
			if l := len(lines[start-1]); l > oneLineFuncLimit {
				t.Errorf("%s:%d: one-line func %s is %d columns; gofmt splits it", name, start, fn.Name.Name, l)
			}
		}
	}
}
