package parser

import (
	"bufio"
	"io"

	"treegen/internal/normalize"
	"treegen/internal/plan"
)

// DropFunc вызывается для каждой отброшенной строки: номер строки,
// причина и исходный текст. Может быть nil.
type DropFunc func(line int, reason normalize.Reason, raw string)

// Parse читает шаблон построчно, нормализует каждую строку и собирает
// принятые в упорядоченный список записей. Отброшенные строки в список
// не попадают, но учитываются в нумерации. Пустой результат — не ошибка:
// пустота проверяется валидатором ниже по конвейеру.
func Parse(r io.Reader, onDrop DropFunc) ([]plan.Entry, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 1024), 1024*1024)

	var entries []plan.Entry
	lineNum := 0

	for sc.Scan() {
		lineNum++
		raw := sc.Text()

		line, reason := normalize.Normalize(raw)
		if reason != normalize.ReasonNone {
			if onDrop != nil {
				onDrop(lineNum, reason, raw)
			}
			continue
		}

		entries = append(entries, plan.Entry{
			Line:  lineNum,
			Level: line.Level,
			Name:  line.Name,
		})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
