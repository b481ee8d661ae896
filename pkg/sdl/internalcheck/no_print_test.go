package internalcheck

import (
	"fmt"
	"go/ast"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/tools/go/packages"
)

// Library packages report through errors and the logging package; only
// commands may write to stdout.
func TestLibraryDoesNotPrint(t *testing.T) {
	var findings []string
	for _, pkg := range load(t, packages.NeedSyntax|packages.NeedTypes|packages.NeedTypesInfo|packages.NeedCompiledGoFiles) {
		if !strings.HasPrefix(pkg.PkgPath, modulePath+"/pkg/") {
			continue
		}
		for i, file := range pkg.Syntax {
			if i < len(pkg.CompiledGoFiles) && strings.HasSuffix(pkg.CompiledGoFiles[i], "_test.go") {
				continue
			}
			ast.Inspect(file, func(n ast.Node) bool {
				call, ok := n.(*ast.CallExpr)
				if !ok {
					return true
				}
				sel, ok := call.Fun.(*ast.SelectorExpr)
				if !ok {
					return true
				}
				obj := pkg.TypesInfo.Uses[sel.Sel]
				if obj == nil || obj.Pkg() == nil {
					return true
				}
				if forbiddenPrint(obj.Pkg().Path(), obj.Name()) {
					pos := pkg.Fset.Position(call.Pos())
					findings = append(findings, fmt.Sprintf("%s: %s.%s in library code", pos, obj.Pkg().Name(), obj.Name()))
				}
				return true
			})
		}
	}
	assert.Empty(t, findings, "library printing violation")
}

func forbiddenPrint(pkgPath, name string) bool {
	switch pkgPath {
	case "fmt":
		switch name {
		case "Print", "Printf", "Println":
			return true
		}
	case "log":
		return true
	}
	return false
}
