package billing

// Scope limits which invoices a caller may see. The zero value is the
// administrator scope and sees everything.
type Scope struct {
	RepresentativeID   string
	RepresentativeName string
	// NameOnly matches on the exact representative name and ignores ids.
	NameOnly bool

	none bool
}

// Nobody is a scope that allows no invoice at all.
func Nobody() Scope {
	return Scope{none: true}
}

// ByName narrows to one representative by exact name.
func ByName(name string) Scope {
	return Scope{RepresentativeName: name, NameOnly: true}
}

func (s Scope) IsAdmin() bool {
	return !s.none && s.RepresentativeID == "" && s.RepresentativeName == ""
}

// Allows reports whether inv belongs to the scoped representative. Invoices
// carrying a representative id are matched by id only; older ones without
// an id fall back to the exact representative name.
func (s Scope) Allows(inv Invoice) bool {
	switch {
	case s.none:
		return false
	case s.IsAdmin():
		return true
	case s.NameOnly:
		return s.RepresentativeName != "" && inv.RepresentativeName == s.RepresentativeName
	case inv.RepresentativeID != "":
		return s.RepresentativeID != "" && inv.RepresentativeID == s.RepresentativeID
	}

	return s.RepresentativeName != "" && inv.RepresentativeName == s.RepresentativeName
}

// Apply keeps the invoices the scope allows, in order.
func (s Scope) Apply(invoices []Invoice) []Invoice {
	if s.IsAdmin() {
		return invoices
	}

	out := make([]Invoice, 0, len(invoices))

	for _, inv := range invoices {
		if s.Allows(inv) {
			out = append(out, inv)
		}
	}

	return out
}
