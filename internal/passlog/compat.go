// Package passlog -- анализатор соответствия printf-спецификаторов формата
// аргументам вызовов лог-функций.
// Файл compat.go -- проверка совместимости статического типа аргумента со спецификатором.
package passlog

import "go/types"

// intWidthForLength -- таблица "модификатор длины -> требуемая ширина целого в битах".
// Таблица умышленно явная: правило задано шириной, а не sizeof конкретной платформы.
var intWidthForLength = map[string]int{
	"hh": 8,
	"h":  16,
	"":   32,
	"l":  32,
	"ll": 64,
	"z":  64,
}

// floatWidthForLength -- таблица "модификатор длины -> требуемая ширина вещественного в битах".
var floatWidthForLength = map[string]int{
	"":  32,
	"l": 64,
}

// widthOf -- ширина базового типа в битах.
// 0 означает "ширина неизвестна": платформозависимые int/uint/uintptr и нетипизированные
// константы шириной не проверяются (деградация в сторону принятия, не отклонения).
func widthOf(b *types.Basic) int {
	switch b.Kind() {
	case types.Int8, types.Uint8:
		return 8
	case types.Int16, types.Uint16:
		return 16
	case types.Int32, types.Uint32, types.Float32:
		return 32
	case types.Int64, types.Uint64, types.Float64:
		return 64
	}
	return 0
}

// integerBasic -- базовый целочисленный тип аргумента.
// Именованные типы с целочисленным underlying (аналог enum) считаются целыми.
func integerBasic(t types.Type) (*types.Basic, bool) {
	b, ok := t.Underlying().(*types.Basic)
	if !ok || b.Info()&types.IsInteger == 0 {
		return nil, false
	}
	return b, true
}

// floatBasic -- базовый вещественный тип аргумента.
func floatBasic(t types.Type) (*types.Basic, bool) {
	b, ok := t.Underlying().(*types.Basic)
	if !ok || b.Info()&types.IsFloat == 0 {
		return nil, false
	}
	return b, true
}

// isStringLike -- распознавание строкового буферного типа по квалифицированному имени.
// Значение и указатель на него равнозначны.
func isStringLike(t types.Type) bool {
	if p, ok := t.(*types.Pointer); ok {
		t = p.Elem()
	}
	named, ok := t.(*types.Named)
	if !ok {
		return false
	}
	obj := named.Obj()
	if obj.Pkg() == nil {
		return false
	}
	switch obj.Pkg().Path() + "." + obj.Name() {
	case "bytes.Buffer", "strings.Builder":
		return true
	}
	return false
}

// isCharPointer -- указатель на 8-битный символьный тип, []byte считается его аналогом.
func isCharPointer(t types.Type) bool {
	switch u := t.Underlying().(type) {
	case *types.Pointer:
		if b, ok := u.Elem().Underlying().(*types.Basic); ok {
			return b.Info()&types.IsInteger != 0 && widthOf(b) == 8
		}
	case *types.Slice:
		if b, ok := u.Elem().Underlying().(*types.Basic); ok {
			return b.Kind() == types.Byte || b.Kind() == types.Uint8
		}
	}
	return false
}

// checkArgumentType -- совместим ли статический тип аргумента со спецификатором.
// Неразрешимые случаи трактуются как совместимые: ложное срабатывание хуже пропуска.
func checkArgumentType(t types.Type, spec specifier) bool {
	switch spec.verb {
	case 'd', 'i', 'u':
		b, ok := integerBasic(t)
		if !ok {
			return false
		}
		unsigned := b.Info()&types.IsUnsigned != 0
		// Строгая симметрия знаковости: %d/%i отвергают беззнаковые, %u -- знаковые.
		if spec.verb == 'u' {
			if !unsigned {
				return false
			}
		} else if unsigned {
			return false
		}
		want, known := intWidthForLength[spec.length]
		if !known {
			return true
		}
		w := widthOf(b)
		if w == 0 {
			return true
		}
		return w == want

	case 'f', 'F', 'g', 'G', 'e', 'E':
		b, ok := floatBasic(t)
		if !ok {
			return false
		}
		want, known := floatWidthForLength[spec.length]
		if !known {
			return true
		}
		w := widthOf(b)
		if w == 0 {
			return true
		}
		return w == want

	case 'c':
		// Ровно 8-битный символьный/целочисленный тип. rune (32 бита) не подходит.
		b, ok := integerBasic(t)
		return ok && widthOf(b) == 8

	case 's':
		if b, ok := t.Underlying().(*types.Basic); ok && b.Info()&types.IsString != 0 {
			return true
		}
		return isCharPointer(t) || isStringLike(t)

	case 'p':
		if b, ok := t.Underlying().(*types.Basic); ok {
			return b.Kind() == types.UnsafePointer
		}
		_, ok := t.Underlying().(*types.Pointer)
		return ok
	}

	// Нераспознанный базовый символ -- без ограничений.
	return true
}
