package services

import (
	"context"
	"testing"

	"github.com/campusgig/gig_service/internal/domain"
	"github.com/campusgig/gig_service/internal/dto"
	"github.com/campusgig/gig_service/internal/repository"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPortfolioGetReturnsEmptyDefault(t *testing.T) {
	db := newTestDB(t)
	svc := &PortfolioService{Repo: repository.NewPortfolioRepository(db)}
	student := seedUser(t, db, domain.RoleStudent)

	p, err := svc.Get(student.ID)
	require.NoError(t, err)
	assert.Equal(t, student.ID, p.UserID)
	assert.Zero(t, p.ID)
	assert.Empty(t, p.Projects)
}

func TestPortfolioUpdateOverwritesOnlyProvidedFields(t *testing.T) {
	db := newTestDB(t)
	svc := &PortfolioService{Repo: repository.NewPortfolioRepository(db)}
	student := seedUser(t, db, domain.RoleStudent)

	p, err := svc.Update(context.Background(), student.ID, dto.UpdatePortfolioRequest{
		GithubLink: lo.ToPtr("https://github.com/asha"),
		Projects: []domain.Project{
			{Title: "Fest site", Description: "built the fest landing page"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "https://github.com/asha", p.GithubLink)
	require.Len(t, p.Projects, 1)

	p, err = svc.Update(context.Background(), student.ID, dto.UpdatePortfolioRequest{
		Description: lo.ToPtr("design and frontend work"),
	})
	require.NoError(t, err)
	assert.Equal(t, "design and frontend work", p.Description)
	// fields not in the request stay put
	assert.Equal(t, "https://github.com/asha", p.GithubLink)
	assert.Len(t, p.Projects, 1)

	stored, err := svc.Get(student.ID)
	require.NoError(t, err)
	assert.Equal(t, p.ID, stored.ID)
	assert.Equal(t, "https://github.com/asha", stored.GithubLink)
}

func TestPortfolioLastWriterWins(t *testing.T) {
	db := newTestDB(t)
	svc := &PortfolioService{Repo: repository.NewPortfolioRepository(db)}
	student := seedUser(t, db, domain.RoleStudent)

	_, err := svc.Update(context.Background(), student.ID, dto.UpdatePortfolioRequest{
		Description: lo.ToPtr("first"),
	})
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), student.ID, dto.UpdatePortfolioRequest{
		Description: lo.ToPtr("second"),
	})
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&domain.Portfolio{}).Where("user_id = ?", student.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	stored, err := svc.Get(student.ID)
	require.NoError(t, err)
	assert.Equal(t, "second", stored.Description)
}
