package fsops

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"treegen/internal/boilerplate"
	"treegen/internal/plan"
	"treegen/internal/safety"
)

// WrapperDir — синтетический каталог-обёртка: если в шаблоне несколько
// корней, всё создаётся внутри него, а не прямо в каталоге назначения.
const WrapperDir = "treegen_root"

// Args — параметры материализации проверенного списка записей.
type Args struct {
	Entries  []plan.Entry
	DestRoot string // каталог назначения (родитель корня проекта)
	Force    bool   // перезаписывать существующие файлы
	DirPerm  os.FileMode
	FilePerm os.FileMode
}

// Stats — итог материализации для сводки в консоли.
type Stats struct {
	Dirs    int // созданных (или уже существовавших) каталогов
	Files   int // записанных файлов
	Skipped int // пропущенных существующих файлов
}

// Apply создаёт каталоги и файлы согласно списку записей. Ошибки на
// отдельных записях логируются и не прерывают обработку остальных;
// возвращаемая ошибка означает невозможность подготовить сам корень.
func Apply(a Args) (Stats, error) {
	var st Stats

	base := a.DestRoot
	if len(plan.Roots(a.Entries)) > 1 {
		base = filepath.Join(a.DestRoot, WrapperDir)
	}
	if err := os.MkdirAll(base, a.DirPerm); err != nil {
		return st, fmt.Errorf("mkdir %s: %w", base, err)
	}

	// Стек каталогов текущей ветки; пересобирается по уровням записей.
	var stack []string

	for _, e := range a.Entries {
		if e.Level > len(stack) {
			// Проверенный список сюда не приводит; на всякий случай
			// не даём записи упасть мимо ветки.
			logrus.WithFields(logrus.Fields{"line": e.Line, "name": e.Name}).
				Warn("некорректная вложенность, запись пропущена")
			continue
		}
		stack = stack[:e.Level]

		if err := safety.ValidateName(e.Base()); err != nil {
			logrus.WithFields(logrus.Fields{"line": e.Line, "name": e.Name}).
				Warnf("запись пропущена: %v", err)
			continue
		}

		target, err := safety.SafeJoin(base, append(append([]string{}, stack...), e.Base())...)
		if err != nil {
			logrus.WithFields(logrus.Fields{"line": e.Line, "name": e.Name}).
				Warnf("запись пропущена: %v", err)
			continue
		}

		if e.IsDir() {
			if err := ensureDir(target, a.DirPerm); err != nil {
				logrus.WithFields(logrus.Fields{"line": e.Line, "path": target}).
					Warnf("не удалось создать каталог: %v", err)
				continue
			}
			st.Dirs++
			stack = append(stack, e.Base())
			continue
		}

		created, err := ensureFile(target, e, a)
		if err != nil {
			logrus.WithFields(logrus.Fields{"line": e.Line, "path": target}).
				Warnf("не удалось создать файл: %v", err)
			continue
		}
		if created {
			st.Files++
		} else {
			logrus.WithField("path", target).Info("пропущено: файл уже существует")
			st.Skipped++
		}
	}

	return st, nil
}

// ensureDir создаёт каталог (рекурсивно, идемпотентно).
func ensureDir(path string, perm os.FileMode) error {
	info, err := os.Lstat(path)
	switch {
	case err == nil && info.IsDir():
		return nil
	case err == nil && !info.IsDir():
		return fmt.Errorf("конфликт: по пути %s уже существует файл", path)
	case os.IsNotExist(err):
		if err := os.MkdirAll(path, perm); err != nil {
			return fmt.Errorf("mkdir %s: %w", path, err)
		}
		return nil
	default:
		return fmt.Errorf("stat %s: %w", path, err)
	}
}

// ensureFile создаёт файл, если его нет либо задан Force. Возвращает
// true, если файл был записан, false — если пропущен как существующий.
func ensureFile(path string, e plan.Entry, a Args) (bool, error) {
	if err := ensureDir(filepath.Dir(path), a.DirPerm); err != nil {
		return false, err
	}

	info, err := os.Lstat(path)
	switch {
	case err == nil && info.IsDir():
		return false, fmt.Errorf("конфликт: по пути %s уже есть каталог", path)
	case err == nil:
		if !a.Force {
			return false, nil
		}
	case !os.IsNotExist(err):
		return false, fmt.Errorf("stat %s: %w", path, err)
	}

	content, _ := boilerplate.Expand(filepath.Base(path), a.Entries)

	if err := os.WriteFile(path, []byte(content), a.FilePerm); err != nil {
		return false, fmt.Errorf("write %s: %w", path, err)
	}
	return true, nil
}
