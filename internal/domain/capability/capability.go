// Package capability derives the reachable routes and the side-menu entries
// of an operator from a single role table.
package capability

import (
	"strings"

	"github.com/jhaverenterprises/uniform-admin/internal/domain/auth"
)

// Capability names one console screen together with its detail pages.
type Capability string

const (
	Overview          Capability = "overview"
	Inventory         Capability = "inventory"
	UploadHistory     Capability = "upload-history"
	StoreBills        Capability = "store-bills"
	Stores            Capability = "stores"
	RaisedInventory   Capability = "raised-inventory"
	OnlineOrders      Capability = "online-orders"
	CancelOrders      Capability = "cancel-orders"
	Coupons           Capability = "coupons"
	Quotes            Capability = "quotes"
	AssignedInventory Capability = "assigned-inventory"
	EditBills         Capability = "edit-bills"
	DeletedBills      Capability = "deleted-bills"
	Contacts          Capability = "contacts"
)

// LandingPath is reachable by every authenticated operator, known role or not.
const LandingPath = "/"

// Screen describes where a capability lives.
type Screen struct {
	Capability Capability
	Label      string
	Icon       string
	Path       string
	// DeepLinks are reachable GET routes with no nav entry of their own,
	// downloads included.
	DeepLinks []string
}

// Route is one reachable path pattern.
type Route struct {
	Path       string
	Capability Capability
}

// NavEntry is one side-menu link.
type NavEntry struct {
	Label string
	Icon  string
	Path  string
}

var screens = []Screen{
	{Overview, "Overview", "chart", "/overview", nil},
	{Inventory, "Inventory", "boxes", "/inventory", []string{"/inventory/download", "/inventory/download/{schoolName}"}},
	{UploadHistory, "Uploaded History", "history", "/uploaded-history", []string{"/upload-history/{uploadId}/products", "/upload-history/{uploadId}/barcodes"}},
	{StoreBills, "Store Bills", "receipt", "/store-bills", []string{"/store-bills-details/{billId}", "/store-bills-details/{billId}/invoice.pdf"}},
	{Stores, "Store Creation", "store", "/store-creation", []string{"/store-details/{storeId}"}},
	{RaisedInventory, "Raised Inventory Requests", "inbox", "/raised-inventory", []string{"/raised-inventory/{id}"}},
	{OnlineOrders, "Online Orders", "cart", "/online-orders", []string{"/order-details/{orderId}", "/tracking/{awb}"}},
	{CancelOrders, "Cancel Orders", "ban", "/cancel-orders", []string{"/cancel-details/{orderId}"}},
	{Coupons, "Coupons", "ticket", "/coupon", nil},
	{Quotes, "Quote", "quote", "/quote", []string{"/quote/{quoteId}"}},
	{AssignedInventory, "Assigned Inventory", "truck", "/assigned-inventory", []string{"/inventory-details/{inventoryId}"}},
	{EditBills, "Requested Edit Bills", "edit", "/req-edit-bills", []string{"/req-edit-bills/download", "/req-edit-bills/{id}", "/req-edit-bills/{id}/invoice.pdf"}},
	{DeletedBills, "Deleted Bills", "trash", "/deleted-bills", []string{"/deleted-bills/{billId}"}},
	{Contacts, "Contact Form Data", "mail", "/form-data", []string{"/form-data/download"}},
}

var managerCapabilities = []Capability{
	Overview, Inventory, OnlineOrders, CancelOrders, Stores, RaisedInventory, AssignedInventory,
}

var roleTable = map[auth.Role][]Capability{
	auth.RoleSuperAdmin:       allCapabilities(),
	auth.RoleProductManager:   managerCapabilities,
	auth.RoleInventoryManager: managerCapabilities,
	auth.RoleCustomerCare:     {Overview, OnlineOrders, CancelOrders, Quotes},
}

func allCapabilities() []Capability {
	out := make([]Capability, 0, len(screens))
	for _, s := range screens {
		out = append(out, s.Capability)
	}
	return out
}

// Screens returns the full screen table in menu order.
func Screens() []Screen {
	out := make([]Screen, len(screens))
	copy(out, screens)
	return out
}

// ScreenFor looks up a capability's screen.
func ScreenFor(c Capability) (Screen, bool) {
	for _, s := range screens {
		if s.Capability == c {
			return s, true
		}
	}
	return Screen{}, false
}

// CapabilitiesFor returns the ordered capabilities of role; nil for unknown roles.
func CapabilitiesFor(role auth.Role) []Capability {
	caps, ok := roleTable[role]
	if !ok {
		return nil
	}
	out := make([]Capability, len(caps))
	copy(out, caps)
	return out
}

// Resolution is the routing surface of one role.
type Resolution struct {
	Role       auth.Role
	Routes     []Route
	NavEntries []NavEntry
}

// Resolve builds routes and nav entries from the same capability list, so a
// nav entry can never point outside the route set.
func Resolve(role auth.Role) Resolution {
	res := Resolution{
		Role:   role,
		Routes: []Route{{Path: LandingPath}},
	}
	for _, c := range roleTable[role] {
		s, ok := ScreenFor(c)
		if !ok {
			continue
		}
		res.NavEntries = append(res.NavEntries, NavEntry{Label: s.Label, Icon: s.Icon, Path: s.Path})
		res.Routes = append(res.Routes, Route{Path: s.Path, Capability: c})
		for _, dl := range s.DeepLinks {
			res.Routes = append(res.Routes, Route{Path: dl, Capability: c})
		}
	}
	return res
}

// Match returns the route whose pattern matches path.
func (r Resolution) Match(path string) (Route, bool) {
	for _, rt := range r.Routes {
		if MatchPattern(rt.Path, path) {
			return rt, true
		}
	}
	return Route{}, false
}

// Allows reports whether path resolves to a real screen for this role.
func (r Resolution) Allows(path string) bool {
	_, ok := r.Match(path)
	return ok
}

// Has reports whether the role holds capability c.
func (r Resolution) Has(c Capability) bool {
	for _, rt := range r.Routes {
		if rt.Capability == c {
			return true
		}
	}
	return false
}

// Allows is shorthand for Resolve(role).Allows(path).
func Allows(role auth.Role, path string) bool {
	return Resolve(role).Allows(path)
}

// MatchPattern matches ServeMux-style patterns where a "{name}" segment
// matches any single non-empty segment. A trailing slash on path is ignored.
func MatchPattern(pattern, path string) bool {
	if pattern == path {
		return true
	}
	if len(path) > 1 {
		path = strings.TrimSuffix(path, "/")
	}
	ps := strings.Split(strings.Trim(pattern, "/"), "/")
	xs := strings.Split(strings.Trim(path, "/"), "/")
	if len(ps) != len(xs) {
		return false
	}
	for i, seg := range ps {
		if strings.HasPrefix(seg, "{") && strings.HasSuffix(seg, "}") {
			if xs[i] == "" {
				return false
			}
			continue
		}
		if seg != xs[i] {
			return false
		}
	}
	return true
}
