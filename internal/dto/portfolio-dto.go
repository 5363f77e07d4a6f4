package dto

import "github.com/campusgig/gig_service/internal/domain"

// UpdatePortfolioRequest overwrites only the fields that are present.
type UpdatePortfolioRequest struct {
	GithubLink    *string          `json:"github_link,omitempty"`
	LinkedinLink  *string          `json:"linkedin_link,omitempty"`
	PortfolioLink *string          `json:"portfolio_link,omitempty"`
	Description   *string          `json:"description,omitempty"`
	Projects      []domain.Project `json:"projects,omitempty"`
	Resume        string           `json:"resume,omitempty"` // data URI or URL
}
