package httpx

import (
	"context"
	"net/http"

	"github.com/jhaverenterprises/uniform-admin/internal/listview"
)

// ListHandlerOpts contains all options needed for the generic list handler.
type ListHandlerOpts[T any] struct {
	// Handler is the UIHandlers instance for rendering (required)
	Handler *UIHandlers
	// W is the HTTP response writer (required)
	W http.ResponseWriter
	// R is the HTTP request (required)
	R *http.Request
	// Meta contains page metadata for rendering
	Meta PageMeta
	// BasePath is the base URL path for tab, filter and page links (e.g., "/coupon")
	BasePath string
	// Tabs declares the status tabs; zero value means the screen has none.
	Tabs listview.Tabs
	// TabLabels overrides the display text of tab values. Optional.
	TabLabels map[string]string
	PageSize  int
	// ItemsKey is the template data key for the visible page (e.g., "Coupons")
	ItemsKey string
	// ErrorMessage is shown when fetching fails without an operator-facing message
	ErrorMessage string

	// Fetch loads the whole collection; the page is cut locally.
	Fetch func(ctx context.Context, q listview.Query) ([]T, error)
	// Filter narrows the collection for q. Optional.
	Filter func(q listview.Query) listview.Predicate[T]
	// FetchPage loads one backend-paged slice and the backend page count.
	// Use this OR Fetch.
	FetchPage func(ctx context.Context, q listview.Query) ([]T, int, error)

	// Enrich adds screen-specific data after a successful fetch. Optional.
	Enrich func(b *TemplateDataBuilder, q listview.Query)
}

// HandleList runs the list-view contract shared by every list screen: parse
// tab/filter/page from the URL, fetch under the stale-response guard, page
// the result and render. A fetch superseded by a newer one for the same
// operator and screen is answered with 204 so the browser keeps what the
// newer one renders.
func HandleList[T any](opts ListHandlerOpts[T]) {
	if opts.W == nil || opts.R == nil || opts.Handler == nil || (opts.Fetch == nil && opts.FetchPage == nil) {
		if opts.W != nil {
			http.Error(opts.W, "Internal configuration error", http.StatusInternalServerError)
		}
		return
	}

	q := listview.ParseQuery(opts.R.URL.Query(), opts.Tabs)
	ctx, current, done := opts.Handler.beginFetch(opts.R, opts.Meta.CurrentPage)
	defer done()

	page, err := opts.load(ctx, q)
	if !current() {
		HTMX(opts.W).Discard()
		return
	}
	if err != nil {
		opts.renderError(q, err)
		return
	}

	b := NewTemplateData(opts.R, opts.Meta).
		With(opts.ItemsKey, page.Items).
		With("Page", page).
		With("Query", q).
		With("BasePath", opts.BasePath).
		With("Tabs", opts.tabLinks(q)).
		WithPagination(paginationFor(page, q, opts.BasePath))
	if opts.Enrich != nil {
		opts.Enrich(b, q)
	}
	if WantsPartial(opts.R) {
		HTMX(opts.W).PushURL(q.URL(opts.BasePath))
	}
	opts.Handler.renderDashboardPage(opts.W, opts.R, b.Build())
}

func (opts ListHandlerOpts[T]) load(ctx context.Context, q listview.Query) (listview.Page[T], error) {
	if opts.FetchPage != nil {
		items, totalPages, err := opts.FetchPage(ctx, q)
		if err != nil {
			return listview.Page[T]{}, err
		}
		return listview.ServerPage(items, q.Page, totalPages), nil
	}
	items, err := opts.Fetch(ctx, q)
	if err != nil {
		return listview.Page[T]{}, err
	}
	var pred listview.Predicate[T]
	if opts.Filter != nil {
		pred = opts.Filter(q)
	}
	return listview.Paginate(items, pred, opts.PageSize, q.Page), nil
}

// renderError keeps the rows already on screen: htmx requests get only the
// banner, retargeted at the list's error slot.
func (opts ListHandlerOpts[T]) renderError(q listview.Query, err error) {
	h := opts.Handler
	if h.handleUnauthorized(opts.W, opts.R, err) {
		return
	}
	h.logger().WarnContext(opts.R.Context(), "list fetch failed",
		"page", opts.Meta.CurrentPage, "query", q.Key(), "error", err)
	msg := processError(err, opts.ErrorMessage, nil)

	if WantsPartial(opts.R) {
		HTMX(opts.W).Retarget("#list-error", "innerHTML")
		if renderErr := h.T.RenderTemplate(opts.W, "list-error", map[string]any{"ErrorMessage": msg}); renderErr != nil {
			h.logAndRenderTemplateError(opts.W, opts.R, renderErr, "list error render")
		}
		return
	}

	b := NewTemplateData(opts.R, opts.Meta).
		With(opts.ItemsKey, []T(nil)).
		With("Page", listview.Page[T]{PageIndex: 1, PageCount: 1}).
		With("Query", q).
		With("BasePath", opts.BasePath).
		With("Tabs", opts.tabLinks(q)).
		WithPagination(PaginationData{PageIndex: 1, PageCount: 1}).
		WithError(msg)
	if opts.Enrich != nil {
		opts.Enrich(b, q)
	}
	h.renderPageStatus(opts.W, opts.R, b.Build(), DetermineErrorStatus(err))
}

func (opts ListHandlerOpts[T]) tabLinks(q listview.Query) []TabLink {
	if len(opts.Tabs.Allowed) == 0 {
		return nil
	}
	links := make([]TabLink, 0, len(opts.Tabs.Allowed))
	for _, v := range opts.Tabs.Allowed {
		label := v
		if l, ok := opts.TabLabels[v]; ok {
			label = l
		}
		links = append(links, TabLink{Label: label, URL: q.WithTab(opts.BasePath, v), Active: v == q.Tab})
	}
	return links
}

// beginFetch registers a fetch for the operator and screen. current reports
// whether no newer fetch has started since; done releases the slot.
func (h *UIHandlers) beginFetch(r *http.Request, screen string) (ctx context.Context, current func() bool, done func()) {
	if h.Guard == nil {
		return r.Context(), func() bool { return true }, func() {}
	}
	key := screen
	if s := GetSessionFromContext(r.Context()); s != nil {
		key = s.ID + "|" + screen
	}
	ctx, ticket := h.Guard.Begin(r.Context(), key)
	return ctx, func() bool { return h.Guard.Current(ticket) }, func() { h.Guard.End(ticket) }
}
