package storage

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9_.-]`)

// SecureFilename приводит имя файла к безопасному ASCII-виду: убирает
// разделители пути, пробелы заменяет на "_", выкидывает прочие символы и
// обрезает ведущие/концевые точки и подчёркивания. Может вернуть пустую строку.
func SecureFilename(name string) string {
	// "café.png" -> "cafe.png"
	decomposed := norm.NFKD.String(name)
	var b strings.Builder
	for _, r := range decomposed {
		if r > unicode.MaxASCII {
			continue
		}
		b.WriteRune(r)
	}
	s := strings.NewReplacer("/", " ", "\\", " ").Replace(b.String())
	s = strings.Join(strings.Fields(s), "_")
	s = unsafeChars.ReplaceAllString(s, "")
	return strings.Trim(s, "._")
}

// StoredName строит имя файла фото: id записи, время загрузки в наносекундах и
// очищенное клиентское имя.
func StoredName(itemID uint, at time.Time, clientName string) string {
	return SecureFilename(fmt.Sprintf("%d_%d_%s", itemID, at.UnixNano(), clientName))
}
