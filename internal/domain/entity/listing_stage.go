package entity

// ListingStage is one phase of the listing journey. Order defines the total
// ordering used to segment tasks into phases on the dashboards.
type ListingStage struct {
	ID           string
	Name         string
	Description  string
	Order        int
	RoleSpecific []string // roles that see this stage prominently
}
