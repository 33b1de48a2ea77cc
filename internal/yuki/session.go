package yuki

// session holds the identifiers of one authenticated session. Both fields
// are written exactly once, by a successful Login, and read by every call
// after it. A connector wanting a different administration starts over with
// a fresh instance.
type session struct {
	id               string
	administrationID string
}

func (s session) authenticated() bool {
	return s.id != "" && s.administrationID != ""
}
