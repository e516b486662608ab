// Package normalize приводит одну сырую строку шаблона к каноничному
// виду (уровень, имя) либо отбрасывает её с указанием причины.
package normalize

import (
	"regexp"
	"strings"
)

// Line — результат успешной нормализации.
type Line struct {
	Level int
	Name  string
}

// Reason — причина отбрасывания строки. Пустая строка = строка принята.
type Reason string

const (
	ReasonNone    Reason = ""
	ReasonEmpty   Reason = "empty line"
	ReasonNoName  Reason = "no filename detected"
	ReasonPrefix  Reason = "invalid name prefix"
	ReasonCharset Reason = "invalid characters in name"
)

// Префикс псевдографики дерева: вертикали/пробелы, затем ветка ├── или └──.
var treePrefixRe = regexp.MustCompile(`^[│\s]*[├└]──\s*`)

// Имена начинающиеся с этих символов считаем комментариями/аннотациями.
var invalidPrefixes = []string{"/", "-", "—", "!", "?", "#", "*", "("}

// Normalize разбирает одну строку шаблона. Поддерживаются два диалекта
// отступов: табы (один таб = один уровень) и псевдографика/пробелы
// (уровень считается чанками по 4 символа: "│   " либо четыре пробела).
func Normalize(raw string) (Line, Reason) {
	line := strings.TrimRight(raw, "\r\n")

	if strings.TrimSpace(line) == "" {
		return Line{}, ReasonEmpty
	}

	var level int
	var content string

	if strings.HasPrefix(line, "\t") {
		level = len(line) - len(strings.TrimLeft(line, "\t"))
		content = strings.TrimSpace(line)
	} else {
		// Чанки считаем по рунам: "│" — многобайтовый символ.
		runes := []rune(line)
		for i := 0; i+4 <= len(runes); i += 4 {
			chunk := string(runes[i : i+4])
			if chunk == "│   " || chunk == "    " {
				level++
				continue
			}
			break
		}
		content = strings.TrimSpace(treePrefixRe.ReplaceAllString(line, ""))
	}

	if content == "" {
		return Line{}, ReasonNoName
	}

	// Имя — первый токен; всё после первого пробела считается комментарием.
	name := strings.Fields(content)[0]

	if strings.HasPrefix(name, "//") {
		return Line{}, ReasonPrefix
	}
	for _, p := range invalidPrefixes {
		if strings.HasPrefix(name, p) {
			return Line{}, ReasonPrefix
		}
	}

	if !validName(name) {
		return Line{}, ReasonCharset
	}

	return Line{Level: level, Name: name}, ReasonNone
}

// validName — допустимы только латиница, цифры и . _ - /.
func validName(name string) bool {
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == '.' || r == '_' || r == '-' || r == '/':
		default:
			return false
		}
	}
	return true
}
