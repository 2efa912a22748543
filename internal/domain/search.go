package domain

import "strings"

// SearchFilter результат разбора поисковой строки.
// Active == nil не ограничивает выборку по активности.
type SearchFilter struct {
	Type   *PostingType
	Terms  []string
	Active *bool
}

// ParseSearchQuery разбивает запрос по пробелам. Токены OFFER/SEEK (без учета регистра)
// задают фильтр по типу, остальные становятся текстовыми условиями.
// Если тип указан несколько раз, действует последний токен.
func ParseSearchQuery(raw string) SearchFilter {
	var filter SearchFilter
	for _, token := range strings.Fields(raw) {
		if postingType, ok := ParsePostingType(token); ok {
			t := postingType
			filter.Type = &t
			continue
		}
		filter.Terms = append(filter.Terms, token)
	}
	return filter
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// EscapeLikeTerm экранирует спецсимволы LIKE, чтобы термин искался как подстрока.
func EscapeLikeTerm(term string) string {
	return likeEscaper.Replace(term)
}
