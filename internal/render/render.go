// Package render проецирует проверенный список записей обратно в
// каноничную tree-диаграмму. Рендер детерминирован и обратим: повторный
// разбор диаграммы даёт ту же последовательность (уровень, имя).
package render

import (
	"strings"

	"treegen/internal/plan"
)

const (
	connectorTee    = "├── "
	connectorCorner = "└── "
	prefixBar       = "│   "
	prefixBlank     = "    "
)

// Tree строит многострочную диаграмму. Для пустого списка — пустая строка.
func Tree(entries []plan.Entry) string {
	if len(entries) == 0 {
		return ""
	}

	var b strings.Builder
	// Флаги «последний на своём уровне» для текущей цепочки предков.
	var lastAtLevel []bool

	for i, e := range entries {
		if len(lastAtLevel) > e.Level {
			lastAtLevel = lastAtLevel[:e.Level]
		}

		// Последний среди братьев: дальше либо конец списка, либо
		// следующая запись не глубже текущей.
		isLast := i == len(entries)-1 || entries[i+1].Level <= e.Level

		lastAtLevel = append(lastAtLevel, isLast)

		// Префикс: по одному чанку на каждый уровень предков; вертикаль
		// продолжается, пока предок не был последним на своём уровне.
		for lvl := 0; lvl < len(lastAtLevel)-1; lvl++ {
			if lastAtLevel[lvl] {
				b.WriteString(prefixBlank)
			} else {
				b.WriteString(prefixBar)
			}
		}

		if isLast {
			b.WriteString(connectorCorner)
		} else {
			b.WriteString(connectorTee)
		}
		b.WriteString(e.Name)

		if i < len(entries)-1 {
			b.WriteByte('\n')
		}
	}

	return b.String()
}
