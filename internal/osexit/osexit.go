// Package osexit -- анализатор прямых вызовов os.Exit в функции main пакета main.
package osexit

import (
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
	"golang.org/x/tools/go/types/typeutil"
)

// Analyzer -- анализатор osexit.
var Analyzer = &analysis.Analyzer{
	Name:     "osexit",
	Doc:      "check for direct os.Exit calls in the main function of package main",
	Run:      run,
	Requires: []*analysis.Analyzer{inspect.Analyzer},
}

// isOSExit -- callee вызова является os.Exit (сверка по объекту, не по тексту:
// алиасы импорта и os.Exit с любым аргументом распознаются одинаково).
func isOSExit(info *types.Info, call *ast.CallExpr) bool {
	fn, ok := typeutil.Callee(info, call).(*types.Func)
	if !ok || fn.Pkg() == nil {
		return false
	}
	return fn.Pkg().Path() == "os" && fn.Name() == "Exit"
}

func run(pass *analysis.Pass) (interface{}, error) {
	if pass.Pkg.Name() != "main" {
		return nil, nil
	}

	insp := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	nodeFilter := []ast.Node{(*ast.FuncDecl)(nil)}
	insp.Preorder(nodeFilter, func(n ast.Node) {
		decl := n.(*ast.FuncDecl)
		if decl.Recv != nil || decl.Name.Name != "main" {
			return
		}
		ast.Inspect(decl.Body, func(n ast.Node) bool {
			if call, ok := n.(*ast.CallExpr); ok && isOSExit(pass.TypesInfo, call) {
				pass.Reportf(call.Pos(), "direct os.Exit call in main function")
			}
			return true
		})
	})
	return nil, nil
}
