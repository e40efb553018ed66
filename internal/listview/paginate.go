// Package listview holds the filter/paginate contract shared by every list
// screen, plus the guard that discards superseded fetches.
package listview

// Page is one visible slice of a filtered collection.
type Page[T any] struct {
	Items      []T
	PageIndex  int // 1-based, always within [1, PageCount]
	PageSize   int
	PageCount  int // never below 1
	Total      int // filtered count; 0 when the backend pages
	StartIndex int // 1-based position of the first visible item, 0 when empty
	EndIndex   int
	HasPrev    bool
	HasNext    bool
}

// Empty reports whether the page has no rows.
func (p Page[T]) Empty() bool { return len(p.Items) == 0 }

// Pages lists page numbers for numbered pagination controls.
func (p Page[T]) Pages() []int {
	out := make([]int, p.PageCount)
	for i := range out {
		out[i] = i + 1
	}
	return out
}

// Predicate selects items for the active filter. A nil predicate keeps everything.
type Predicate[T any] func(T) bool

// Filter returns the items accepted by pred, preserving order.
func Filter[T any](items []T, pred Predicate[T]) []T {
	if pred == nil {
		return items
	}
	out := make([]T, 0, len(items))
	for _, it := range items {
		if pred(it) {
			out = append(out, it)
		}
	}
	return out
}

// FieldEquals builds an exact, case-sensitive equality predicate on one field.
// An empty want disables the filter.
func FieldEquals[T any](field func(T) string, want string) Predicate[T] {
	if want == "" {
		return nil
	}
	return func(it T) bool { return field(it) == want }
}

// All combines predicates; nil entries are skipped.
func All[T any](preds ...Predicate[T]) Predicate[T] {
	active := make([]Predicate[T], 0, len(preds))
	for _, p := range preds {
		if p != nil {
			active = append(active, p)
		}
	}
	if len(active) == 0 {
		return nil
	}
	return func(it T) bool {
		for _, p := range active {
			if !p(it) {
				return false
			}
		}
		return true
	}
}

// Paginate filters items and slices out the requested page.
// pageIndex is clamped to [1, PageCount] and PageCount is at least 1.
func Paginate[T any](items []T, pred Predicate[T], pageSize, pageIndex int) Page[T] {
	if pageSize < 1 {
		pageSize = 1
	}
	filtered := Filter(items, pred)
	n := len(filtered)

	count := (n + pageSize - 1) / pageSize
	if count < 1 {
		count = 1
	}
	pageIndex = clamp(pageIndex, 1, count)

	start := (pageIndex - 1) * pageSize
	end := min(start+pageSize, n)
	if start > n {
		start = n
	}

	p := Page[T]{
		Items:     filtered[start:end],
		PageIndex: pageIndex,
		PageSize:  pageSize,
		PageCount: count,
		Total:     n,
		HasPrev:   pageIndex > 1,
		HasNext:   pageIndex < count,
	}
	if end > start {
		p.StartIndex = start + 1
		p.EndIndex = end
	}
	return p
}

// ServerPage wraps a slice the backend already paged, trusting its totalPages.
func ServerPage[T any](items []T, pageIndex, totalPages int) Page[T] {
	if totalPages < 1 {
		totalPages = 1
	}
	pageIndex = clamp(pageIndex, 1, totalPages)
	p := Page[T]{
		Items:     items,
		PageIndex: pageIndex,
		PageSize:  len(items),
		PageCount: totalPages,
		HasPrev:   pageIndex > 1,
		HasNext:   pageIndex < totalPages,
	}
	if len(items) > 0 {
		p.StartIndex = 1
		p.EndIndex = len(items)
	}
	return p
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
