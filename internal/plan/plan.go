package plan

import "strings"

// Entry — одна распознанная строка шаблона: номер исходной строки,
// глубина и имя. Дерево задаётся неявно последовательностью Level:
// родитель узла уровня L — ближайший предыдущий узел уровня L-1.
type Entry struct {
	Line  int    // номер строки в исходном файле (с 1)
	Level int    // глубина: 0 — корень
	Name  string // имя как в шаблоне; каталоги заканчиваются на "/"
}

// IsDir — каталог определяется по завершающему "/".
func (e Entry) IsDir() bool {
	return strings.HasSuffix(e.Name, "/")
}

// Base возвращает имя без завершающего "/".
func (e Entry) Base() string {
	return strings.TrimSuffix(e.Name, "/")
}

// Roots возвращает имена всех узлов уровня 0 по порядку.
func Roots(entries []Entry) []string {
	var roots []string
	for _, e := range entries {
		if e.Level == 0 {
			roots = append(roots, e.Name)
		}
	}
	return roots
}

// ProjectName — имя проекта: первый корень без "/", либо "project",
// если корней нет (валидация такого не пропустит, но функция тотальна).
func ProjectName(entries []Entry) string {
	for _, e := range entries {
		if e.Level == 0 {
			return e.Base()
		}
	}
	return "project"
}
