package internalcheck

import (
	"fmt"
	"go/build/constraint"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOnlyBackendImportsC(t *testing.T) {
	fset := token.NewFileSet()
	var findings []string
	for _, pkg := range load(t, 0) {
		if pkg.PkgPath == backendPath || strings.HasPrefix(pkg.PkgPath, modulePath+"/_") {
			continue
		}
		for _, file := range sourceFiles(pkg) {
			for _, imp := range fileImports(t, fset, file) {
				if imp == "C" {
					findings = append(findings, fmt.Sprintf("%s: imports \"C\" outside %s", file, backendPath))
				}
			}
		}
	}
	assert.Empty(t, findings, "cgo isolation violation")
}

func TestBackendFilesHaveStubs(t *testing.T) {
	var dir string
	for _, pkg := range load(t, 0) {
		if pkg.PkgPath == backendPath && len(pkg.GoFiles)+len(pkg.IgnoredFiles) > 0 {
			dir = filepath.Dir(sourceFiles(pkg)[0])
			break
		}
	}
	require.NotEmpty(t, dir, "backend package not found")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	names := map[string]bool{}
	for _, e := range entries {
		names[e.Name()] = true
	}

	fset := token.NewFileSet()
	for name := range names {
		if filepath.Ext(name) != ".go" || strings.HasPrefix(name, "stub") ||
			strings.HasSuffix(name, "_test.go") || strings.HasSuffix(name, "_stub.go") {
			continue
		}
		expr := buildConstraint(t, fset, filepath.Join(dir, name))
		if expr == nil || !needsCgo(expr) {
			continue
		}
		stub, shared := cgoOnly[name]
		if shared && stub == "" {
			continue
		}
		if !shared {
			stub = strings.TrimSuffix(name, ".go") + "_stub.go"
		}
		assert.True(t, names[stub], "%s has no %s", name, stub)
	}
}

// cgoOnly maps native files that share a stub, or need none because they
// only carry cgo plumbing, to that stub.
var cgoOnly = map[string]string{
	"core.go":        "stub.go",
	"callbacks.go":   "",
	"trampolines.go": "",
}

func buildConstraint(t *testing.T, fset *token.FileSet, path string) constraint.Expr {
	t.Helper()
	f, err := parser.ParseFile(fset, path, nil, parser.PackageClauseOnly|parser.ParseComments)
	require.NoError(t, err, path)
	for _, group := range f.Comments {
		for _, c := range group.List {
			if constraint.IsGoBuild(c.Text) {
				expr, err := constraint.Parse(c.Text)
				require.NoError(t, err, path)
				return expr
			}
		}
	}
	return nil
}

// needsCgo reports whether expr is false when the cgo tag is absent.
func needsCgo(expr constraint.Expr) bool {
	return !expr.Eval(func(tag string) bool { return tag != "cgo" && tag != "windows" })
}
