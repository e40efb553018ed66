package httpx

import (
	"net/http"

	"github.com/jhaverenterprises/uniform-admin/internal/domain/model"
	"github.com/jhaverenterprises/uniform-admin/internal/listview"
)

// PageLink is one numbered pagination link.
type PageLink struct {
	Number  int
	URL     string
	Current bool
}

// PaginationData contains pagination information for list views.
type PaginationData struct {
	PageIndex  int
	PageCount  int
	Total      int // 0 when the backend pages and does not report a total
	StartIndex int
	EndIndex   int
	HasPrev    bool
	HasNext    bool
	PrevURL    string
	NextURL    string
	Links      []PageLink
}

func paginationFor[T any](p listview.Page[T], q listview.Query, basePath string) PaginationData {
	pd := PaginationData{
		PageIndex:  p.PageIndex,
		PageCount:  p.PageCount,
		Total:      p.Total,
		StartIndex: p.StartIndex,
		EndIndex:   p.EndIndex,
		HasPrev:    p.HasPrev,
		HasNext:    p.HasNext,
	}
	if p.HasPrev {
		pd.PrevURL = q.WithPage(basePath, p.PageIndex-1)
	}
	if p.HasNext {
		pd.NextURL = q.WithPage(basePath, p.PageIndex+1)
	}
	for _, n := range p.Pages() {
		pd.Links = append(pd.Links, PageLink{Number: n, URL: q.WithPage(basePath, n), Current: n == p.PageIndex})
	}
	return pd
}

// TabLink is one status tab of a list screen.
type TabLink struct {
	Label  string
	URL    string
	Active bool
}

// FilterOption is one entry of a store or school picker.
type FilterOption struct {
	Label    string
	Value    string
	URL      string
	Selected bool
}

// storeOptions builds the store filter, led by an "All Stores" entry.
func storeOptions(q listview.Query, basePath string, stores []model.StoreName) []FilterOption {
	opts := make([]FilterOption, 0, len(stores)+1)
	opts = append(opts, FilterOption{
		Label:    "All Stores",
		URL:      q.WithStore(basePath, ""),
		Selected: q.Store == "",
	})
	for _, s := range stores {
		opts = append(opts, FilterOption{
			Label:    s.StoreName,
			Value:    s.StoreID,
			URL:      q.WithStore(basePath, s.StoreID),
			Selected: q.Store == s.StoreID,
		})
	}
	return opts
}

// TemplateDataBuilder provides a fluent API for building template data maps.
type TemplateDataBuilder struct {
	data map[string]any
}

// NewTemplateData creates a new TemplateDataBuilder initialized with basePageData.
func NewTemplateData(r *http.Request, meta PageMeta) *TemplateDataBuilder {
	return &TemplateDataBuilder{data: basePageData(r, meta)}
}

// WithPagination adds pagination data under "Pagination".
func (b *TemplateDataBuilder) WithPagination(p PaginationData) *TemplateDataBuilder {
	b.data["Pagination"] = p
	return b
}

// WithError sets a general error message.
func (b *TemplateDataBuilder) WithError(msg string) *TemplateDataBuilder {
	if msg == "" {
		return b
	}
	b.data["Error"] = true
	b.data["ErrorMessage"] = msg
	return b
}

// WithSuccess sets the success banner.
func (b *TemplateDataBuilder) WithSuccess(msg string) *TemplateDataBuilder {
	if msg != "" {
		b.data["SuccessMessage"] = msg
	}
	return b
}

// WithFieldErrors adds field-level validation errors.
func (b *TemplateDataBuilder) WithFieldErrors(errs map[string]string) *TemplateDataBuilder {
	if len(errs) > 0 {
		b.data["Errors"] = errs
	}
	return b
}

// With adds a custom field to the template data.
func (b *TemplateDataBuilder) With(key string, value any) *TemplateDataBuilder {
	b.data[key] = value
	return b
}

// Build returns the final template data map.
func (b *TemplateDataBuilder) Build() map[string]any {
	return b.data
}
