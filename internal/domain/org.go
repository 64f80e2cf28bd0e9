package domain

// Organization is a department node in the society's org chart.
type Organization struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	ParentID *string `json:"parent_id"`
	Depth    int     `json:"depth"`
}

// OrgNode is an Organization with its children, used for the nested chart feed.
type OrgNode struct {
	Organization
	Children []*OrgNode `json:"children"`
}
