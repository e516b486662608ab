// Package boilerplate хранит фиксированные заготовки для известных имён
// файлов и подставляет в них имя проекта и диаграмму структуры.
package boilerplate

import (
	"strings"

	"treegen/internal/plan"
	"treegen/internal/render"
)

// Плейсхолдеры в текстах заготовок.
const (
	placeholderProject   = "{project_name}"
	placeholderStructure = "{structure}"
)

// presets — соответствие «короткое имя файла → текст заготовки».
// Ровно четыре: точка входа, маркер пакета, README и ignore-список.
var presets = map[string]string{
	"main.py": `def main():
    print("Hello from main")

if __name__ == "__main__":
    main()
`,
	"__init__.py": `"""Package initialization."""
`,
	"README.md": `# {project_name}

## Description
Project generated automatically.

## Structure
{structure}
`,
	".gitignore": `__pycache__/
*.pyc
.env
.venv
venv/
dist/
build/
*.egg-info
`,
}

// Has сообщает, есть ли заготовка для данного короткого имени файла.
func Has(name string) bool {
	_, ok := presets[name]
	return ok
}

// Expand возвращает текст заготовки для имени файла с подставленными
// именем проекта и отрендеренной диаграммой. Чистая функция от списка
// записей: никакого состояния и никакого ввода-вывода.
func Expand(name string, entries []plan.Entry) (string, bool) {
	tpl, ok := presets[name]
	if !ok {
		return "", false
	}
	r := strings.NewReplacer(
		placeholderProject, plan.ProjectName(entries),
		placeholderStructure, render.Tree(entries),
	)
	return r.Replace(tpl), true
}
