// Package validate проверяет глобальные инварианты распарсенного списка
// записей: наличие корня, непрерывность отступов, «дети только у
// каталогов» и уникальность имён в пределах одного родителя.
package validate

import (
	"fmt"
	"strings"

	"treegen/internal/plan"
)

// Error — одна структурная ошибка шаблона. Ошибки валидации — данные,
// а не исключения: они собираются в список и печатаются вызывающим.
type Error struct {
	Line    int
	Message string
}

func (e Error) String() string {
	if e.Line > 0 {
		return fmt.Sprintf("Line %d: %s", e.Line, e.Message)
	}
	return e.Message
}

// Validate возвращает упорядоченный список ошибок (пустой = шаблон
// корректен). Политика строгая: дубликаты — жёсткая ошибка; прерывается
// проверка только на отсутствии корня либо записях до первого корня.
func Validate(entries []plan.Entry) []Error {
	var errs []Error

	// Жёсткий инвариант: никаких записей до первого корня.
	seenRoot := false
	for _, e := range entries {
		if e.Level == 0 {
			seenRoot = true
			continue
		}
		if !seenRoot {
			errs = append(errs, Error{
				Line: e.Line,
				Message: fmt.Sprintf(
					"entry '%s' has level %d but no root directory defined above",
					e.Name, e.Level),
			})
			return errs
		}
	}

	if !seenRoot {
		errs = append(errs, Error{
			Message: "template must contain at least one root directory (level 0)",
		})
		return errs
	}

	// Стек имён предков по уровням; пересобирается на каждом запуске.
	var stack []string
	// Имена, уже встреченные на (уровень, контекст предков).
	seen := make(map[string]map[string]bool)

	for _, e := range entries {
		if e.Level > len(stack) {
			errs = append(errs, Error{
				Line:    e.Line,
				Message: fmt.Sprintf("invalid indentation jump → %s", e.Name),
			})
		} else if e.Level == len(stack) && len(stack) > 0 {
			// Запись входит ребёнком к вершине стека — вершина обязана
			// быть каталогом.
			parent := stack[len(stack)-1]
			if !strings.HasSuffix(parent, "/") {
				errs = append(errs, Error{
					Line:    e.Line,
					Message: fmt.Sprintf("file cannot have children → %s", parent),
				})
			}
		}

		if e.Level < len(stack) {
			stack = stack[:e.Level]
		}

		ctx := fmt.Sprintf("%d|%s", e.Level, strings.Join(stack, "/"))
		if seen[ctx][e.Name] {
			errs = append(errs, Error{
				Line:    e.Line,
				Message: fmt.Sprintf("duplicate entry at same level → %s", e.Name),
			})
		}
		if seen[ctx] == nil {
			seen[ctx] = make(map[string]bool)
		}
		seen[ctx][e.Name] = true

		stack = append(stack, e.Name)
	}

	return errs
}
