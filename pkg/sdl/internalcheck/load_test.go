package internalcheck

import (
	"go/parser"
	"go/token"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/tools/go/packages"
)

const (
	modulePath  = "github.com/hsiuhsiu/sdl3-go"
	backendPath = modulePath + "/pkg/sdl/internal/backend"
)

// load returns every package of the module, test files included.
func load(t *testing.T, mode packages.LoadMode) []*packages.Package {
	t.Helper()
	cfg := &packages.Config{Mode: mode | packages.NeedName | packages.NeedFiles, Tests: true}
	pkgs, err := packages.Load(cfg, modulePath+"/...")
	require.NoError(t, err, "load packages")
	require.NotEmpty(t, pkgs)
	return pkgs
}

// sourceFiles lists a package's files whatever the current build tags; cgo
// files land in IgnoredFiles when CGO_ENABLED=0.
func sourceFiles(pkg *packages.Package) []string {
	seen := map[string]bool{}
	var out []string
	for _, f := range append(append([]string{}, pkg.GoFiles...), pkg.IgnoredFiles...) {
		if filepath.Ext(f) != ".go" || seen[f] {
			continue
		}
		seen[f] = true
		out = append(out, f)
	}
	return out
}

func fileImports(t *testing.T, fset *token.FileSet, path string) []string {
	t.Helper()
	f, err := parser.ParseFile(fset, path, nil, parser.ImportsOnly)
	require.NoError(t, err, path)
	var out []string
	for _, imp := range f.Imports {
		p, err := strconv.Unquote(imp.Path.Value)
		require.NoError(t, err)
		out = append(out, p)
	}
	return out
}
