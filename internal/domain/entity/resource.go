package entity

// Resource is a document, template, guide, video or contact surfaced in
// the resource centre. Public resources are visible without any role filter.
type Resource struct {
	ID          string
	Title       string
	Type        string // document, template, guide, video, contact
	Category    string
	TargetRoles []string
	URL         string
	Content     string
	Tags        []string
	IsPublic    bool
}
