package domain

import "time"

type Project struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	ProjectLink  string `json:"project_link,omitempty"`
	Technologies string `json:"technologies,omitempty"`
}

// Portfolio is the per-student showcase record. One row per user, created on
// first write, last writer wins.
type Portfolio struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	UserID        uint      `gorm:"uniqueIndex;not null" json:"user_id"`
	GithubLink    string    `json:"github_link"`
	LinkedinLink  string    `json:"linkedin_link"`
	PortfolioLink string    `json:"portfolio_link"`
	Description   string    `json:"description"`
	Projects      []Project `gorm:"serializer:json" json:"projects"`
	Resume        FileRef   `gorm:"embedded;embeddedPrefix:resume_" json:"resume"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
