package listview

import (
	"net/url"
	"slices"
	"strconv"
	"strings"
)

// Query parameter names.
const (
	ParamTab       = "tab"
	ParamStore     = "store"
	ParamGroup     = "group"
	ParamPage      = "page"
	ParamPrevTab   = "prev_tab"
	ParamPrevStore = "prev_store"
	ParamPrevGroup = "prev_group"
)

// Tabs declares the allowed values of a screen's status tab.
type Tabs struct {
	Default string
	Allowed []string
}

// Normalize maps unknown values onto the default tab.
func (t Tabs) Normalize(v string) string {
	if len(t.Allowed) == 0 {
		return v
	}
	if slices.Contains(t.Allowed, v) {
		return v
	}
	return t.Default
}

// Dependencies is the state whose change triggers a refetch.
type Dependencies struct {
	Tab   string
	Store string
	Group string
}

// Query is the list state carried in the URL.
type Query struct {
	Dependencies
	Page int
	// Changed is true when the request moved to a different tab, store or group.
	Changed bool
}

// ParseQuery reads list state from values. When the request carries the previous
// dependency values and they differ from the current ones, Page resets to 1.
func ParseQuery(v url.Values, tabs Tabs) Query {
	q := Query{
		Dependencies: Dependencies{
			Tab:   tabs.Normalize(strings.TrimSpace(v.Get(ParamTab))),
			Store: strings.TrimSpace(v.Get(ParamStore)),
			Group: strings.TrimSpace(v.Get(ParamGroup)),
		},
		Page: 1,
	}
	if n, err := strconv.Atoi(v.Get(ParamPage)); err == nil && n > 1 {
		q.Page = n
	}

	if v.Has(ParamPrevTab) || v.Has(ParamPrevStore) || v.Has(ParamPrevGroup) {
		prev := Dependencies{
			Tab:   tabs.Normalize(strings.TrimSpace(v.Get(ParamPrevTab))),
			Store: strings.TrimSpace(v.Get(ParamPrevStore)),
			Group: strings.TrimSpace(v.Get(ParamPrevGroup)),
		}
		if prev != q.Dependencies {
			q.Changed = true
			q.Page = 1
		}
	}
	return q
}

// Values encodes the query, recording the current dependencies as the previous ones.
func (q Query) Values() url.Values {
	v := url.Values{}
	set := func(k, val string) {
		if val != "" {
			v.Set(k, val)
		}
	}
	set(ParamTab, q.Tab)
	set(ParamStore, q.Store)
	set(ParamGroup, q.Group)
	set(ParamPrevTab, q.Tab)
	set(ParamPrevStore, q.Store)
	set(ParamPrevGroup, q.Group)
	if q.Page > 1 {
		v.Set(ParamPage, strconv.Itoa(q.Page))
	}
	return v
}

// URL builds a link to basePath for this query.
func (q Query) URL(basePath string) string {
	enc := q.Values().Encode()
	if enc == "" {
		return basePath
	}
	return basePath + "?" + enc
}

// WithPage returns a link to another page under the same dependencies.
func (q Query) WithPage(basePath string, page int) string {
	next := q
	next.Page = page
	return next.URL(basePath)
}

// WithTab returns a link switching the tab. The previous tab travels along so
// the receiving request resets to page 1.
func (q Query) WithTab(basePath, tab string) string {
	return q.switchTo(basePath, Dependencies{Tab: tab, Store: q.Store, Group: q.Group})
}

// WithStore returns a link switching the store filter.
func (q Query) WithStore(basePath, store string) string {
	return q.switchTo(basePath, Dependencies{Tab: q.Tab, Store: store, Group: q.Group})
}

// WithGroup returns a link switching the group filter.
func (q Query) WithGroup(basePath, group string) string {
	return q.switchTo(basePath, Dependencies{Tab: q.Tab, Store: q.Store, Group: group})
}

func (q Query) switchTo(basePath string, next Dependencies) string {
	v := url.Values{}
	set := func(k, val string) {
		if val != "" {
			v.Set(k, val)
		}
	}
	set(ParamTab, next.Tab)
	set(ParamStore, next.Store)
	set(ParamGroup, next.Group)
	v.Set(ParamPrevTab, q.Tab)
	v.Set(ParamPrevStore, q.Store)
	v.Set(ParamPrevGroup, q.Group)
	return basePath + "?" + v.Encode()
}

// Key identifies the dependency state, for guard keys and logs.
func (d Dependencies) Key() string {
	return d.Tab + "|" + d.Store + "|" + d.Group
}
