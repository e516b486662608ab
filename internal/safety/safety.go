package safety

import (
	"fmt"
	"path/filepath"
	"strings"
)

// ValidateSegment проверяет, что сегмент пути безопасен: не пуст,
// не "." и не "..". Набор допустимых символов проверяет нормализатор;
// здесь отсекаются только имена, меняющие смысл пути.
func ValidateSegment(seg string) error {
	if seg == "" {
		return fmt.Errorf("пустое имя")
	}
	if seg == "." || seg == ".." {
		return fmt.Errorf("недопустимое имя: %q", seg)
	}
	return nil
}

// ValidateName проверяет имя записи шаблона: имя может содержать "/"
// (вложенный путь), но каждый его сегмент обязан быть безопасным.
func ValidateName(name string) error {
	for _, seg := range strings.Split(name, "/") {
		if seg == "" {
			// Пустые сегменты ("a//b", завершающий слэш) Join схлопнет.
			continue
		}
		if err := ValidateSegment(seg); err != nil {
			return err
		}
	}
	return nil
}

// SafeJoin объединяет root и parts и убеждается, что результат остаётся
// внутри root.
func SafeJoin(root string, parts ...string) (string, error) {
	p := filepath.Join(append([]string{root}, parts...)...)
	cleanRoot := filepath.Clean(root)
	cleanP := filepath.Clean(p)

	rel, err := filepath.Rel(cleanRoot, cleanP)
	if err != nil {
		return "", err
	}
	relSl := filepath.ToSlash(rel)
	if relSl == ".." || strings.HasPrefix(relSl, "../") {
		return "", fmt.Errorf("попытка выхода за пределы корня: %s", p)
	}
	return cleanP, nil
}
