package app

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"

	"treegen/internal/boilerplate"
	"treegen/internal/fsops"
	"treegen/internal/normalize"
	"treegen/internal/parser"
	"treegen/internal/plan"
	"treegen/internal/render"
	"treegen/internal/validate"
)

// DefaultTemplate — базовый шаблон, создаваемый по --init. Подходит
// почти под любой проект.
const DefaultTemplate = `myproject/
├── src/
│   ├── __init__.py
│   └── main.py
├── tests/
├── README.md
├── requirements.txt
└── .gitignore
`

// Options — все настройки запуска утилиты.
type Options struct {
	TemplatePath string
	OutDir       string
	Init         bool
	Force        bool
	DryRun       bool
	DirPerm      os.FileMode
	FilePerm     os.FileMode
	Out          io.Writer // куда писать обычные сообщения; nil = stdout
}

var (
	okColor   = color.New(color.FgGreen)
	warnColor = color.New(color.FgYellow)
	errColor  = color.New(color.FgRed)
)

// Run — главная функция приложения: init либо разбор, валидация и
// создание структуры. Ошибки валидации шаблона — не ошибка процесса:
// они печатаются, и команда завершается без создания чего-либо.
func Run(o Options) error {
	w := o.Out
	if w == nil {
		w = os.Stdout
	}

	// 1) Режим --init: записать базовый шаблон и выйти.
	if o.Init {
		return initTemplate(o, w)
	}

	// 2) Открываем шаблон; его отсутствие — единственная фатальная
	// ошибка до начала разбора.
	f, err := os.Open(o.TemplatePath)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf(
				"файл %s не найден, запустите treegen --init для создания базового шаблона",
				o.TemplatePath)
		}
		return fmt.Errorf("не удалось открыть шаблон %q: %w", o.TemplatePath, err)
	}
	defer f.Close()

	// 3) Разбор. Отброшенные строки уходят в лог (уровень Debug,
	// поднимается флагом --explain).
	entries, err := parser.Parse(f, logDrop)
	if err != nil {
		return fmt.Errorf("ошибка чтения шаблона: %w", err)
	}

	// 4) Валидация. Ошибки — данные: печатаем список и выходим чисто.
	if errs := validate.Validate(entries); len(errs) > 0 {
		errColor.Fprintln(w, "❌ Ошибки в шаблоне:")
		fmt.Fprintln(w)
		for _, e := range errs {
			fmt.Fprintln(w, "   "+e.String())
		}
		return nil
	}

	// 5) Dry-run: показать, что будет создано, ничего не трогая.
	if o.DryRun {
		dryRun(w, entries)
		return nil
	}

	// 6) Реальная материализация.
	st, err := fsops.Apply(fsops.Args{
		Entries:  entries,
		DestRoot: o.OutDir,
		Force:    o.Force,
		DirPerm:  o.DirPerm,
		FilePerm: o.FilePerm,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "    Создано каталогов: %d\n", st.Dirs)
	fmt.Fprintf(w, "    Создано файлов: %d\n", st.Files)
	if st.Skipped > 0 {
		fmt.Fprintf(w, "    Пропущено файлов: %d\n", st.Skipped)
	}
	okColor.Fprintln(w, "✅ Структура проекта успешно создана!")
	return nil
}

// initTemplate записывает базовый шаблон; существующий файл не
// перезаписывается без --force.
func initTemplate(o Options, w io.Writer) error {
	if _, err := os.Stat(o.TemplatePath); err == nil && !o.Force {
		warnColor.Fprintf(w,
			"⚠️  %s уже существует. Используйте --force для перезаписи.\n",
			o.TemplatePath)
		return nil
	}

	if err := os.WriteFile(o.TemplatePath, []byte(DefaultTemplate), o.FilePerm); err != nil {
		return fmt.Errorf("не удалось записать %s: %w", o.TemplatePath, err)
	}

	okColor.Fprintf(w, "✅ Базовый %s создан!\n", o.TemplatePath)
	fmt.Fprintln(w, "   Теперь просто запустите: treegen")
	return nil
}

// dryRun печатает диаграмму и список файлов, которые получат заготовки.
func dryRun(w io.Writer, entries []plan.Entry) {
	fmt.Fprintln(w, "Dry run — ничего не будет создано на диске")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Будет создано:")
	fmt.Fprintln(w, render.Tree(entries))
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Файлы, которые получат содержимое:")
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if boilerplate.Has(filepath.Base(e.Base())) {
			fmt.Fprintf(w, "  - %s\n", e.Name)
		}
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Запустите без --dry-run для реального создания.")
}

// logDrop — диагностика нормализатора: номер строки, причина, исходный
// текст. Видна при --explain.
func logDrop(line int, reason normalize.Reason, raw string) {
	logrus.WithFields(logrus.Fields{
		"line":   line,
		"reason": string(reason),
	}).Debugf("строка отброшена: %s", strings.TrimRight(raw, "\r\n"))
}
