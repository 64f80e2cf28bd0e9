package domain

// Viewer is the authenticated caller resolved against the user and member tables.
// User and Member are nil when the email has no matching row.
type Viewer struct {
	Email  string
	User   *User
	Member *Member
}

func (v *Viewer) IsMember() bool {
	return v != nil && v.Member != nil
}

func (v *Viewer) IsOfficer() bool {
	return v.IsMember() && v.Member.President
}
