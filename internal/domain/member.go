package domain

import "time"

type Member struct {
	UserID     string     `json:"-"`
	Org        *string    `json:"org"`
	MemberCode *string    `json:"member_code"`
	President  bool       `json:"president"`
	Role       *string    `json:"role,omitempty"`
	JoinedAt   *time.Time `json:"joined_at,omitempty"`
}

// DirectoryEntry is one row of the public member listing.
type DirectoryEntry struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Birth      *string `json:"birth"`
	Sex        *string `json:"sex"`
	School     *string `json:"school"`
	Org        *string `json:"org"`
	Role       *string `json:"role"`
	MemberCode *string `json:"member_code"`
	President  bool    `json:"president"`
}
