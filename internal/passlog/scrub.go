// Package passlog -- анализатор соответствия printf-спецификаторов формата
// аргументам вызовов лог-функций.
// Файл scrub.go -- поиск избыточных вызовов String()/Bytes() на строковых буферах.
package passlog

import (
	"go/ast"
	"go/types"
	"sync"

	"golang.org/x/tools/go/types/typeutil"
)

// scrubMatcher -- предикат "вызов accessor-а строкового буфера без аргументов".
// Шаблон фиксирован конфигурацией на этапе сборки, инвалидация не нужна.
type scrubMatcher struct {
	accessors map[string]bool
}

// buildScrubMatcher -- ленивое одноразовое построение matcher-а.
// Повторное построение на каждый вызов семантически эквивалентно, но медленнее.
var buildScrubMatcher = sync.OnceValue(func() *scrubMatcher {
	return &scrubMatcher{
		accessors: map[string]bool{
			"String": true,
			"Bytes":  true,
		},
	}
})

// match проверяет, является ли выражение аргумента вызовом вида buf.String()
// или buf.Bytes() на значении (или указателе на значение) строкового буферного
// типа. Возвращает сам вызов и селектор для построения правки.
func (m *scrubMatcher) match(info *types.Info, arg ast.Expr) (*ast.CallExpr, *ast.SelectorExpr, bool) {
	call, ok := ast.Unparen(arg).(*ast.CallExpr)
	if !ok || len(call.Args) != 0 {
		return nil, nil, false
	}
	sel, ok := call.Fun.(*ast.SelectorExpr)
	if !ok {
		return nil, nil, false
	}
	fn, ok := typeutil.Callee(info, call).(*types.Func)
	if !ok || !m.accessors[fn.Name()] {
		return nil, nil, false
	}
	sig, ok := fn.Type().(*types.Signature)
	if !ok || sig.Recv() == nil || sig.Results().Len() != 1 {
		return nil, nil, false
	}
	// Результат accessor-а -- строка либо срез байтов.
	res := sig.Results().At(0).Type()
	if b, ok := res.Underlying().(*types.Basic); ok {
		if b.Info()&types.IsString == 0 {
			return nil, nil, false
		}
	} else if !isCharPointer(res) {
		return nil, nil, false
	}
	if !isStringLike(sig.Recv().Type()) {
		return nil, nil, false
	}
	return call, sel, true
}
