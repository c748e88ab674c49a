package view

import (
	"strings"

	"golang.org/x/text/cases"
)

// Search filtra items cuyo algún campo contiene term sin distinguir mayúsculas.
// Con term vacío devuelve todos.
func Search[T any](items []T, term string, fields func(T) []string) []T {
	term = strings.TrimSpace(term)
	if term == "" {
		return items
	}
	fold := cases.Fold()
	needle := fold.String(term)
	out := make([]T, 0, len(items))
	for _, it := range items {
		for _, f := range fields(it) {
			if strings.Contains(fold.String(f), needle) {
				out = append(out, it)
				break
			}
		}
	}
	return out
}

// Contains comparación insensible a mayúsculas de un solo campo.
func Contains(s, term string) bool {
	fold := cases.Fold()
	return strings.Contains(fold.String(s), fold.String(strings.TrimSpace(term)))
}

// DefaultPerPage filas por página.
const DefaultPerPage = 10

// Page una página de resultados.
type Page[T any] struct {
	Items      []T
	Page       int
	PerPage    int
	Total      int
	TotalPages int
}

// HasPrev indica si hay página anterior.
func (p Page[T]) HasPrev() bool { return p.Page > 1 }

// HasNext indica si hay página siguiente.
func (p Page[T]) HasNext() bool { return p.Page < p.TotalPages }

// Prev número de la página anterior.
func (p Page[T]) Prev() int { return p.Page - 1 }

// Next número de la página siguiente.
func (p Page[T]) Next() int { return p.Page + 1 }

// Paginate corta items. page fuera de rango se ajusta a [1, TotalPages].
func Paginate[T any](items []T, page, perPage int) Page[T] {
	if perPage <= 0 {
		perPage = DefaultPerPage
	}
	total := len(items)
	pages := (total + perPage - 1) / perPage
	if pages == 0 {
		pages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > pages {
		page = pages
	}
	start := (page - 1) * perPage
	end := min(start+perPage, total)
	return Page[T]{
		Items:      items[start:end],
		Page:       page,
		PerPage:    perPage,
		Total:      total,
		TotalPages: pages,
	}
}
