// Package passlog -- анализатор соответствия printf-спецификаторов формата
// аргументам вызовов лог-функций.
// Файл format.go -- разбор строки формата на спецификаторы.
package passlog

// specifier -- один %-спецификатор, найденный в строке формата.
type specifier struct {
	verb   byte   // Базовый символ преобразования ('d', 's', 'f', ...).
	length string // Модификатор длины: "", "h", "hh", "l", "ll", "j", "z", "t", "L".
	offset int    // Байтовое смещение символа '%' в строке формата.
}

// text -- текст спецификатора для диагностики, например "%lld".
func (s specifier) text() string {
	return "%" + s.length + string(s.verb)
}

// isAdjustByte -- байты флагов, ширины и точности между '%' и модификатором длины.
func isAdjustByte(b byte) bool {
	return (b >= '0' && b <= '9') || b == '.' || b == '+' || b == '-' || b == ' ' || b == '#'
}

// isLengthByte -- байты модификаторов длины.
func isLengthByte(b byte) bool {
	switch b {
	case 'h', 'l', 'j', 'z', 't', 'L':
		return true
	}
	return false
}

// parseFormat разбирает содержимое строкового литерала формата в упорядоченный
// слева направо список спецификаторов. Экранированный "%%" спецификатором не является.
// Оборванный '%' в конце строки (без базового символа) спецификатора не дает.
// Нераспознанный базовый символ попадает в список наравне с остальными:
// он занимает позицию аргумента, но ограничений на тип не несет.
func parseFormat(s string) []specifier {
	var specs []specifier
	for pos := 0; pos < len(s); pos++ {
		if s[pos] != '%' {
			continue
		}
		if pos+1 >= len(s) {
			break
		}
		if s[pos+1] == '%' {
			pos++
			continue
		}
		start := pos
		i := pos + 1
		for i < len(s) && isAdjustByte(s[i]) {
			i++
		}
		lenStart := i
		for i < len(s) && isLengthByte(s[i]) {
			i++
		}
		if i >= len(s) {
			// Скан ушел за конец строки, не встретив базового символа.
			break
		}
		specs = append(specs, specifier{verb: s[i], length: s[lenStart:i], offset: start})
		pos = i
	}
	return specs
}
