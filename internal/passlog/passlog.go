// Package passlog -- анализатор соответствия printf-спецификаторов формата
// аргументам вызовов лог-функций.
// Файл passlog.go -- сам анализатор: поиск вызовов, сверка спецификаторов и аргументов,
// диагностики и предлагаемые правки.
package passlog

import (
	"fmt"
	"go/ast"
	"go/constant"
	"go/types"
	"strings"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
	"golang.org/x/tools/go/types/typeutil"
)

const doc = `check that arguments of log-like calls match the printf format string

The analyzer inspects calls to log-like functions whose first argument is a
constant format string, verifies that every format specifier (including its
length modifier) is consistent with the width and signedness of the argument
supplied at that position, compares the specifier count with the argument
count, and suggests removal of redundant String()/Bytes() calls on string
buffer arguments.`

// defaultLogLikeFuncs -- канонический перечень лог-функций по умолчанию.
// Записи без "/" сопоставляются по имени пакета (или имени типа для методов),
// записи с "/" -- по полному пути пакета.
const defaultLogLikeFuncs = "log.Trace;log.Debug;log.Info;log.Warning;log.Warn;log.Error;log.Critical;log.Fatal;" +
	"log.Tracef;log.Debugf;log.Infof;log.Warningf;log.Warnf;log.Errorf;log.Criticalf;log.Fatalf;" +
	"Log.Trace;Log.Debug;Log.Info;Log.Warning;Log.Warn;Log.Error;Log.Critical;Log.Fatal;" +
	"Log.Tracef;Log.Debugf;Log.Infof;Log.Warningf;Log.Warnf;Log.Errorf;Log.Criticalf;Log.Fatalf"

// Analyzer -- анализатор passlogparams.
var Analyzer = &analysis.Analyzer{
	Name:     "passlogparams",
	Doc:      doc,
	Run:      run,
	Requires: []*analysis.Analyzer{inspect.Analyzer},
}

// logLikeFuncs -- значение флага funcs: список квалифицированных имен лог-функций через ";".
var logLikeFuncs string

func init() {
	Analyzer.Flags.StringVar(&logLikeFuncs, "funcs", "",
		"semicolon-separated list of qualified names of log-like functions; empty means the default log.*/Log.* set")
}

// parseFuncList -- разбор списка имен из строки конфигурации.
func parseFuncList(s string) []string {
	var names []string
	for _, name := range strings.Split(s, ";") {
		name = strings.TrimSpace(name)
		if name != "" {
			names = append(names, name)
		}
	}
	return names
}

// calleeNames -- варианты квалифицированного имени callee для сверки со списком.
// Для функции пакета это "pkgname.Func" и "pkg/path.Func",
// для метода -- "Type.Method", "pkgname.Type.Method" и "pkg/path.Type.Method".
func calleeNames(fn *types.Func) []string {
	pkg := fn.Pkg()
	if pkg == nil {
		return nil
	}
	sig, ok := fn.Type().(*types.Signature)
	if !ok {
		return nil
	}
	if recv := sig.Recv(); recv != nil {
		t := recv.Type()
		if p, ok := t.(*types.Pointer); ok {
			t = p.Elem()
		}
		named, ok := t.(*types.Named)
		if !ok {
			return nil
		}
		method := named.Obj().Name() + "." + fn.Name()
		return []string{
			method,
			pkg.Name() + "." + method,
			pkg.Path() + "." + method,
		}
	}
	return []string{
		pkg.Name() + "." + fn.Name(),
		pkg.Path() + "." + fn.Name(),
	}
}

// shortPkg -- квалификация типов именем пакета в текстах диагностик.
func shortPkg(p *types.Package) string {
	return p.Name()
}

func run(pass *analysis.Pass) (interface{}, error) {
	names := parseFuncList(logLikeFuncs)
	if len(names) == 0 {
		// Пустая конфигурация откатывается к каноническому перечню, а не выключает проверку.
		names = parseFuncList(defaultLogLikeFuncs)
	}
	allow := make(map[string]bool, len(names))
	for _, name := range names {
		allow[name] = true
	}

	insp := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	nodeFilter := []ast.Node{(*ast.CallExpr)(nil)}
	insp.Preorder(nodeFilter, func(n ast.Node) {
		call := n.(*ast.CallExpr)
		fn, ok := typeutil.Callee(pass.TypesInfo, call).(*types.Func)
		if !ok {
			return
		}
		matched := false
		for _, name := range calleeNames(fn) {
			if allow[name] {
				matched = true
				break
			}
		}
		if !matched || len(call.Args) == 0 {
			return
		}
		format, ok := stringConstant(pass, call.Args[0])
		if !ok {
			return
		}
		checkCall(pass, call, format)
	})
	return nil, nil
}

// stringConstant -- значение первого аргумента, если это строковая константа времени компиляции.
func stringConstant(pass *analysis.Pass, e ast.Expr) (string, bool) {
	tv, ok := pass.TypesInfo.Types[e]
	if !ok || tv.Value == nil || tv.Value.Kind() != constant.String {
		return "", false
	}
	return constant.StringVal(tv.Value), true
}

// checkCall -- сверка одного вызова: по-спецификаторные проверки типов,
// затем сверка количества, затем поиск избыточных accessor-вызовов.
// Порядок диагностик детерминирован и совпадает с порядком исходного текста.
func checkCall(pass *analysis.Pass, call *ast.CallExpr, format string) {
	if call.Ellipsis.IsValid() {
		// Разворачивание слайса в вариадик: число и типы аргументов статически не видны.
		return
	}

	specs := parseFormat(format)
	for k, spec := range specs {
		argIndex := k + 1
		if argIndex >= len(call.Args) {
			// Спецификатору не хватило аргумента: тип не проверяем,
			// недостачу покажет сверка количества.
			continue
		}
		// Снимаем только скобки. Явное преобразование -- намерение автора,
		// его тип и есть тип аргумента.
		arg := ast.Unparen(call.Args[argIndex])
		tv, ok := pass.TypesInfo.Types[arg]
		if !ok || tv.Type == nil {
			continue
		}
		if !checkArgumentType(tv.Type, spec) {
			pass.Reportf(arg.Pos(), "argument type <%s> does not match format specifier '%s'",
				types.TypeString(tv.Type, shortPkg), spec.text())
		}
	}

	if required, provided := len(specs), len(call.Args)-1; required != provided {
		pass.Reportf(call.Pos(), "format string requires %d arguments but %d were provided",
			required, provided)
	}

	matcher := buildScrubMatcher()
	for _, arg := range call.Args[1:] {
		accessor, sel, ok := matcher.match(pass.TypesInfo, arg)
		if !ok {
			continue
		}
		name := sel.Sel.Name
		pass.Report(analysis.Diagnostic{
			Pos:     accessor.Pos(),
			End:     accessor.End(),
			Message: fmt.Sprintf("unnecessary %s() call", name),
			SuggestedFixes: []analysis.SuggestedFix{{
				Message: fmt.Sprintf("Remove %s() call", name),
				TextEdits: []analysis.TextEdit{{
					Pos: sel.X.End(),
					End: accessor.End(),
				}},
			}},
		})
	}
}
