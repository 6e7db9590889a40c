package principal

// Kind identifies the role a request identity resolved to.
type Kind string

// Principal kinds. Admin covers both anonymous requests and staff accounts
// that carry no faculty profile; both fall through to unscoped access.
const (
	KindAdmin   Kind = "admin"
	KindStudent Kind = "student"
	KindFaculty Kind = "faculty"
)

// Identity is the authenticated identity extracted from the request, before
// role classification. Username is empty for anonymous requests.
type Identity struct {
	Username      string
	Groups        []string
	Authenticated bool
}

// Principal is the classified role of the current request, resolved once per
// request and threaded through scoping and mutation checks. It is never
// persisted.
type Principal struct {
	Kind      Kind
	StudentID uint
	Sections  []string
	Subjects  []string
}

// IsAdmin reports whether the principal has unscoped access.
func (p Principal) IsAdmin() bool {
	return p.Kind == KindAdmin
}

// IsStudent reports whether the principal is a student over their own records.
func (p Principal) IsStudent() bool {
	return p.Kind == KindStudent
}

// IsFaculty reports whether the principal is scoped by section membership.
func (p Principal) IsFaculty() bool {
	return p.Kind == KindFaculty
}

// CoversSection reports whether a faculty principal's section list contains
// the given section. Comparison is exact and case-sensitive. A faculty
// principal with an empty section list covers every section; that mirrors the
// unscoped admin fallback applied on the read path.
func (p Principal) CoversSection(section string) bool {
	if len(p.Sections) == 0 {
		return true
	}
	for _, s := range p.Sections {
		if s == section {
			return true
		}
	}
	return false
}
