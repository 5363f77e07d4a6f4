package services

import (
	"context"
	"errors"

	"github.com/campusgig/gig_service/internal/domain"
	"github.com/campusgig/gig_service/internal/dto"
	"github.com/campusgig/gig_service/internal/interfaces"
	"github.com/campusgig/gig_service/internal/repository"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type PortfolioService struct {
	Repo     repository.PortfolioRepository
	Uploader interfaces.Uploader
}

// Get returns the user's portfolio, or an empty one when nothing has been
// saved yet.
func (s *PortfolioService) Get(userID uint) (*domain.Portfolio, error) {
	p, err := s.Repo.FindByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &domain.Portfolio{UserID: userID, Projects: []domain.Project{}}, nil
		}
		return nil, err
	}
	return p, nil
}

// Update overwrites only the fields present in the request; concurrent writes
// resolve last-writer-wins at the row level.
func (s *PortfolioService) Update(ctx context.Context, userID uint, input dto.UpdatePortfolioRequest) (*domain.Portfolio, error) {
	p, err := s.Get(userID)
	if err != nil {
		return nil, err
	}

	if input.GithubLink != nil {
		p.GithubLink = *input.GithubLink
	}
	if input.LinkedinLink != nil {
		p.LinkedinLink = *input.LinkedinLink
	}
	if input.PortfolioLink != nil {
		p.PortfolioLink = *input.PortfolioLink
	}
	if input.Description != nil {
		p.Description = *input.Description
	}
	if input.Projects != nil {
		p.Projects = input.Projects
	}
	if input.Resume != "" {
		ref, err := resolveFileRef(ctx, s.Uploader, "portfolio-resumes", input.Resume)
		if err != nil {
			log.Warnf("upload portfolio resume: %v", err)
		} else {
			p.Resume = ref
		}
	}

	if err := s.Repo.Upsert(p); err != nil {
		return nil, err
	}
	return p, nil
}
