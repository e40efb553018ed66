package viewmodel

// Operator is the signed-in operator shown in the header.
type Operator struct {
	Name string
	Role string
}

// NavItem is one side-menu link.
type NavItem struct {
	Label  string
	Icon   string
	Path   string
	Active bool
}

// Layout captures shared chrome metadata (titles, navigation state, auth flags).
type Layout struct {
	Title           string
	PageTitle       string
	CurrentPage     string
	CSRFToken       string
	IsAuthenticated bool
	Operator        *Operator
	Nav             []NavItem
}
