package services

import (
	"context"
	"testing"
	"time"

	"github.com/campusgig/gig_service/internal/domain"
	"github.com/campusgig/gig_service/internal/dto"
	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func listQuery(mut func(*dto.JobQuery)) dto.JobQuery {
	q := dto.JobQuery{Sort: dto.SortRecent, Page: 1, Limit: 12}
	if mut != nil {
		mut(&q)
	}
	return q
}

func resultIDs(t *testing.T, svc *JobService, q dto.JobQuery) []uint {
	t.Helper()
	res, err := svc.List(q)
	require.NoError(t, err)
	return lo.Map(res.Jobs, func(j domain.Job, _ int) uint { return j.ID })
}

func TestListShowsOnlyApprovedActiveGigs(t *testing.T) {
	db := newTestDB(t)
	recruiter := seedUser(t, db, domain.RoleRecruiter)
	svc := newJobService(db)

	visible := seedJob(t, db, recruiter.ID, nil)
	seedJob(t, db, recruiter.ID, func(j *domain.Job) { j.IsApproved = false })
	seedJob(t, db, recruiter.ID, func(j *domain.Job) { j.Status = domain.JobStatusClosed })

	res, err := svc.List(listQuery(nil))
	require.NoError(t, err)
	require.Len(t, res.Jobs, 1)
	assert.Equal(t, visible.ID, res.Jobs[0].ID)
	assert.EqualValues(t, 1, res.Total)
}

func TestListStudentGigsFlag(t *testing.T) {
	db := newTestDB(t)
	recruiter := seedUser(t, db, domain.RoleRecruiter)
	svc := newJobService(db)

	gig := seedJob(t, db, recruiter.ID, nil)
	fullTime := seedJob(t, db, recruiter.ID, func(j *domain.Job) {
		j.IsStudentGig = false
		j.EmploymentType = "full-time"
	})

	// the flag defaults to student gigs
	assert.Equal(t, []uint{gig.ID}, resultIDs(t, svc, listQuery(nil)))

	ids := resultIDs(t, svc, listQuery(func(q *dto.JobQuery) { q.StudentGigs = lo.ToPtr(false) }))
	assert.Equal(t, []uint{fullTime.ID}, ids)
}

func TestListPayRangeBoundsAreInclusive(t *testing.T) {
	db := newTestDB(t)
	recruiter := seedUser(t, db, domain.RoleRecruiter)
	svc := newJobService(db)

	low := seedJob(t, db, recruiter.ID, func(j *domain.Job) { j.PayMin = 100; j.PayMax = 200 })
	mid := seedJob(t, db, recruiter.ID, func(j *domain.Job) { j.PayMin = 300; j.PayMax = 600 })
	high := seedJob(t, db, recruiter.ID, func(j *domain.Job) { j.PayMin = 700; j.PayMax = 900 })

	ids := resultIDs(t, svc, listQuery(func(q *dto.JobQuery) { q.PayMin = lo.ToPtr(250) }))
	assert.ElementsMatch(t, []uint{mid.ID, high.ID}, ids)

	ids = resultIDs(t, svc, listQuery(func(q *dto.JobQuery) { q.PayMax = lo.ToPtr(650) }))
	assert.ElementsMatch(t, []uint{low.ID, mid.ID}, ids)

	ids = resultIDs(t, svc, listQuery(func(q *dto.JobQuery) {
		q.PayMin = lo.ToPtr(250)
		q.PayMax = lo.ToPtr(650)
	}))
	assert.Equal(t, []uint{mid.ID}, ids)

	// a job whose range merely touches the bound still matches
	ids = resultIDs(t, svc, listQuery(func(q *dto.JobQuery) { q.PayMin = lo.ToPtr(200) }))
	assert.Contains(t, ids, low.ID)
	ids = resultIDs(t, svc, listQuery(func(q *dto.JobQuery) { q.PayMax = lo.ToPtr(700) }))
	assert.Contains(t, ids, high.ID)
}

func TestListEligibilityBounds(t *testing.T) {
	db := newTestDB(t)
	recruiter := seedUser(t, db, domain.RoleRecruiter)
	svc := newJobService(db)

	narrow := seedJob(t, db, recruiter.ID, func(j *domain.Job) {
		j.Eligibility = domain.Eligibility{MinYear: 2, MaxYear: 3}
	})
	wide := seedJob(t, db, recruiter.ID, func(j *domain.Job) {
		j.Eligibility = domain.Eligibility{MinYear: 1, MaxYear: 4}
	})

	// a first-year student only sees gigs whose range starts at 1
	ids := resultIDs(t, svc, listQuery(func(q *dto.JobQuery) { q.MinYear = lo.ToPtr(1) }))
	assert.Equal(t, []uint{wide.ID}, ids)

	ids = resultIDs(t, svc, listQuery(func(q *dto.JobQuery) { q.MinYear = lo.ToPtr(2) }))
	assert.ElementsMatch(t, []uint{narrow.ID, wide.ID}, ids)

	// a fourth-year student is outside the narrow gig's range
	ids = resultIDs(t, svc, listQuery(func(q *dto.JobQuery) { q.MaxYear = lo.ToPtr(4) }))
	assert.Equal(t, []uint{wide.ID}, ids)

	ids = resultIDs(t, svc, listQuery(func(q *dto.JobQuery) { q.MaxYear = lo.ToPtr(3) }))
	assert.ElementsMatch(t, []uint{narrow.ID, wide.ID}, ids)
}

func TestListSkillsMatchAll(t *testing.T) {
	db := newTestDB(t)
	recruiter := seedUser(t, db, domain.RoleRecruiter)
	svc := newJobService(db)

	both := seedJob(t, db, recruiter.ID, func(j *domain.Job) { j.SkillsRequired = []string{"go", "sql"} })
	goOnly := seedJob(t, db, recruiter.ID, func(j *domain.Job) { j.SkillsRequired = []string{"go"} })

	ids := resultIDs(t, svc, listQuery(func(q *dto.JobQuery) { q.Skills = []string{"go"} }))
	assert.ElementsMatch(t, []uint{both.ID, goOnly.ID}, ids)

	ids = resultIDs(t, svc, listQuery(func(q *dto.JobQuery) { q.Skills = []string{"go", "sql"} }))
	assert.Equal(t, []uint{both.ID}, ids)

	ids = resultIDs(t, svc, listQuery(func(q *dto.JobQuery) { q.Skills = []string{"go", "rust"} }))
	assert.Empty(t, ids)
}

func TestListFreeTextNarrowsOtherFilters(t *testing.T) {
	db := newTestDB(t)
	recruiter := seedUser(t, db, domain.RoleRecruiter)
	svc := newJobService(db)

	poster := seedJob(t, db, recruiter.ID, func(j *domain.Job) {
		j.Title = "Poster design"
		j.SkillsRequired = []string{"design"}
	})
	seedJob(t, db, recruiter.ID, func(j *domain.Job) {
		j.Title = "Backend intern"
		j.SkillsRequired = []string{"design"}
	})
	tutoring := seedJob(t, db, recruiter.ID, func(j *domain.Job) {
		j.Title = "Math help"
		j.Category = "tutoring"
	})

	ids := resultIDs(t, svc, listQuery(func(q *dto.JobQuery) {
		q.Q = "Poster"
		q.Skills = []string{"design"}
	}))
	assert.Equal(t, []uint{poster.ID}, ids)

	// category participates in the text match
	ids = resultIDs(t, svc, listQuery(func(q *dto.JobQuery) { q.Q = "tutoring" }))
	assert.Equal(t, []uint{tutoring.ID}, ids)
}

func TestListFreeTextIsCaseInsensitive(t *testing.T) {
	db := newTestDB(t)
	recruiter := seedUser(t, db, domain.RoleRecruiter)
	svc := newJobService(db)

	job := seedJob(t, db, recruiter.ID, func(j *domain.Job) { j.Title = "Poster Design" })
	seedJob(t, db, recruiter.ID, func(j *domain.Job) { j.Title = "Backend intern" })

	for _, needle := range []string{"poster", "POSTER", "Poster"} {
		ids := resultIDs(t, svc, listQuery(func(q *dto.JobQuery) { q.Q = needle }))
		assert.Equal(t, []uint{job.ID}, ids, "query %q", needle)
	}
}

func TestListSkillWildcardsAreLiteral(t *testing.T) {
	db := newTestDB(t)
	recruiter := seedUser(t, db, domain.RoleRecruiter)
	svc := newJobService(db)

	underscore := seedJob(t, db, recruiter.ID, func(j *domain.Job) { j.SkillsRequired = []string{"go_lang"} })
	seedJob(t, db, recruiter.ID, func(j *domain.Job) { j.SkillsRequired = []string{"goXlang"} })
	percent := seedJob(t, db, recruiter.ID, func(j *domain.Job) { j.SkillsRequired = []string{"100% remote ops"} })

	// "_" must not act as a single-character wildcard
	ids := resultIDs(t, svc, listQuery(func(q *dto.JobQuery) { q.Skills = []string{"go_lang"} }))
	assert.Equal(t, []uint{underscore.ID}, ids)

	// "%" must not act as a multi-character wildcard
	ids = resultIDs(t, svc, listQuery(func(q *dto.JobQuery) { q.Skills = []string{"100% remote ops"} }))
	assert.Equal(t, []uint{percent.ID}, ids)

	ids = resultIDs(t, svc, listQuery(func(q *dto.JobQuery) { q.Skills = []string{"100%"} }))
	assert.Empty(t, ids)
}

func TestListSortAndPagination(t *testing.T) {
	db := newTestDB(t)
	recruiter := seedUser(t, db, domain.RoleRecruiter)
	svc := newJobService(db)

	a := seedJob(t, db, recruiter.ID, func(j *domain.Job) { j.PayMin = 100; j.PayMax = 200 })
	b := seedJob(t, db, recruiter.ID, func(j *domain.Job) { j.PayMin = 300; j.PayMax = 600 })
	c := seedJob(t, db, recruiter.ID, func(j *domain.Job) { j.PayMin = 700; j.PayMax = 900 })

	ids := resultIDs(t, svc, listQuery(func(q *dto.JobQuery) { q.Sort = dto.SortPayDesc }))
	assert.Equal(t, []uint{c.ID, b.ID, a.ID}, ids)

	ids = resultIDs(t, svc, listQuery(func(q *dto.JobQuery) { q.Sort = dto.SortPayAsc }))
	assert.Equal(t, []uint{a.ID, b.ID, c.ID}, ids)

	page1, err := svc.List(listQuery(func(q *dto.JobQuery) { q.Sort = dto.SortPayAsc; q.Limit = 2 }))
	require.NoError(t, err)
	require.Len(t, page1.Jobs, 2)
	assert.EqualValues(t, 3, page1.Total)

	page2, err := svc.List(listQuery(func(q *dto.JobQuery) { q.Sort = dto.SortPayAsc; q.Limit = 2; q.Page = 2 }))
	require.NoError(t, err)
	require.Len(t, page2.Jobs, 1)
	assert.Equal(t, c.ID, page2.Jobs[0].ID)
	assert.EqualValues(t, 3, page2.Total)
}

func TestListIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	recruiter := seedUser(t, db, domain.RoleRecruiter)
	svc := newJobService(db)

	for i := 0; i < 5; i++ {
		seedJob(t, db, recruiter.ID, nil)
	}

	q := listQuery(func(q *dto.JobQuery) { q.PayMin = lo.ToPtr(50) })
	first := resultIDs(t, svc, q)
	second := resultIDs(t, svc, q)
	assert.Equal(t, first, second)
}

func TestCreateJobDefaultsAndApproval(t *testing.T) {
	db := newTestDB(t)
	svc := newJobService(db)

	unverified := seedUser(t, db, domain.RoleRecruiter)
	verified := seedUser(t, db, domain.RoleRecruiter)
	verified.VerifiedRecruiter = true
	require.NoError(t, db.Save(verified).Error)

	input := dto.CreateJobRequest{
		Title:       "Poster design",
		Description: "One poster for the fest",
		CompanyName: "Test Co",
		PayMin:      300,
	}

	pending, err := svc.CreateJob(context.Background(), unverified, input)
	require.NoError(t, err)
	assert.False(t, pending.IsApproved)
	assert.Equal(t, "micro-gig", pending.EmploymentType)
	assert.Equal(t, domain.PayTypeFixed, pending.PayType)
	assert.Equal(t, "remote", pending.RemoteType)
	assert.Equal(t, "no experience", pending.Experience)
	assert.Equal(t, 50, pending.MaxApplicants)
	assert.Equal(t, domain.Eligibility{MinYear: 1, MaxYear: 4}, pending.Eligibility)
	assert.Equal(t, 300, pending.PayMax)
	assert.True(t, pending.IsStudentGig)
	assert.Equal(t, domain.JobStatusActive, pending.Status)

	live, err := svc.CreateJob(context.Background(), verified, input)
	require.NoError(t, err)
	assert.True(t, live.IsApproved)
}

func TestCreateJobValidation(t *testing.T) {
	db := newTestDB(t)
	svc := newJobService(db)
	recruiter := seedUser(t, db, domain.RoleRecruiter)
	student := seedUser(t, db, domain.RoleStudent)

	valid := dto.CreateJobRequest{Title: "t", Description: "d", CompanyName: "c"}

	_, err := svc.CreateJob(context.Background(), student, valid)
	requireServiceError(t, err, fiber.StatusForbidden, "only recruiters can post gigs")

	bad := valid
	bad.PayMin = 500
	bad.PayMax = 100
	_, err = svc.CreateJob(context.Background(), recruiter, bad)
	requireServiceError(t, err, fiber.StatusBadRequest, "payMin cannot be greater than payMax")

	bad = valid
	bad.EmploymentType = "gig-economy"
	_, err = svc.CreateJob(context.Background(), recruiter, bad)
	requireServiceError(t, err, fiber.StatusBadRequest, "invalid employment type")

	bad = valid
	bad.EligibilityMinYear = 3
	bad.EligibilityMaxYear = 2
	_, err = svc.CreateJob(context.Background(), recruiter, bad)
	requireServiceError(t, err, fiber.StatusBadRequest, "invalid eligibility range")

	bad = valid
	bad.Deadline = "next week"
	_, err = svc.CreateJob(context.Background(), recruiter, bad)
	requireServiceError(t, err, fiber.StatusBadRequest, "invalid deadline format")
}

func TestUpdateJobOwnership(t *testing.T) {
	db := newTestDB(t)
	svc := newJobService(db)
	owner := seedUser(t, db, domain.RoleRecruiter)
	other := seedUser(t, db, domain.RoleRecruiter)
	admin := seedUser(t, db, domain.RoleAdmin)
	job := seedJob(t, db, owner.ID, nil)

	input := dto.UpdateJobRequest{Title: "New title", Description: "d", CompanyName: "c"}

	_, err := svc.UpdateJob(context.Background(), other, job.ID, input)
	requireServiceError(t, err, fiber.StatusForbidden, "you are not allowed to modify this gig")

	updated, err := svc.UpdateJob(context.Background(), owner, job.ID, input)
	require.NoError(t, err)
	assert.Equal(t, "New title", updated.Title)

	input.Title = "Admin title"
	updated, err = svc.UpdateJob(context.Background(), admin, job.ID, input)
	require.NoError(t, err)
	assert.Equal(t, "Admin title", updated.Title)
}

func TestToggleSaveRoundTrip(t *testing.T) {
	db := newTestDB(t)
	svc := newJobService(db)
	recruiter := seedUser(t, db, domain.RoleRecruiter)
	student := seedUser(t, db, domain.RoleStudent)
	job := seedJob(t, db, recruiter.ID, nil)

	saved, err := svc.ToggleSave(student, job.ID)
	require.NoError(t, err)
	assert.True(t, saved)

	jobs, err := svc.SavedJobs(student.ID)
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, job.ID, jobs[0].ID)

	saved, err = svc.ToggleSave(student, job.ID)
	require.NoError(t, err)
	assert.False(t, saved)

	jobs, err = svc.SavedJobs(student.ID)
	require.NoError(t, err)
	assert.Empty(t, jobs)

	_, err = svc.ToggleSave(student, 9999)
	requireServiceError(t, err, fiber.StatusNotFound, "gig not found")
}

func TestDeleteJobKeepsApplicationsWithoutCascade(t *testing.T) {
	db := newTestDB(t)
	recruiter := seedUser(t, db, domain.RoleRecruiter)
	student := seedUser(t, db, domain.RoleStudent)
	job := seedJob(t, db, recruiter.ID, nil)

	appSvc := newApplicationService(db)
	_, err := appSvc.Create(context.Background(), student, job.ID, dto.CreateApplicationRequest{})
	require.NoError(t, err)

	jobSvc := newJobService(db)
	require.NoError(t, jobSvc.DeleteJob(recruiter, job.ID))

	var count int64
	require.NoError(t, db.Model(&domain.Application{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestDeleteJobCascade(t *testing.T) {
	db := newTestDB(t)
	recruiter := seedUser(t, db, domain.RoleRecruiter)
	student := seedUser(t, db, domain.RoleStudent)
	job := seedJob(t, db, recruiter.ID, nil)

	appSvc := newApplicationService(db)
	_, err := appSvc.Create(context.Background(), student, job.ID, dto.CreateApplicationRequest{})
	require.NoError(t, err)

	jobSvc := newJobService(db)
	jobSvc.Config.JobDeleteCascade = true
	require.NoError(t, jobSvc.DeleteJob(recruiter, job.ID))

	var count int64
	require.NoError(t, db.Model(&domain.Application{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestDeadlineParsing(t *testing.T) {
	db := newTestDB(t)
	svc := newJobService(db)
	recruiter := seedUser(t, db, domain.RoleRecruiter)

	deadline := time.Now().Add(48 * time.Hour).UTC().Truncate(time.Second)
	job, err := svc.CreateJob(context.Background(), recruiter, dto.CreateJobRequest{
		Title:       "t",
		Description: "d",
		CompanyName: "c",
		Deadline:    deadline.Format(time.RFC3339),
	})
	require.NoError(t, err)
	require.NotNil(t, job.Deadline)
	assert.True(t, job.Deadline.Equal(deadline))
}
