package domain

import "time"

// User is a person known to the site, keyed by the email the identity provider vouches for.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Birth     *string   `json:"birth"`
	Sex       *string   `json:"sex"`
	School    *string   `json:"school"`
	CreatedAt time.Time `json:"created_at"`
}

type MemberRole string

const (
	MemberRolePresident MemberRole = "president"
	MemberRoleMember    MemberRole = "member"
	MemberRoleExternal  MemberRole = "external"
)

// UserProfile is a person with the optional member and applicant rows attached.
type UserProfile struct {
	User
	Member    *Member    `json:"members"`
	Applicant *Applicant `json:"applicants"`
}

func (p *UserProfile) Role() MemberRole {
	if p.Member == nil {
		return MemberRoleExternal
	}
	if p.Member.President {
		return MemberRolePresident
	}
	return MemberRoleMember
}
