package dto

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseQuery(t *testing.T, rawQuery string) JobQuery {
	t.Helper()
	app := fiber.New()
	var got JobQuery
	app.Get("/jobs", func(c *fiber.Ctx) error {
		got = ParseJobQuery(c)
		return c.SendStatus(fiber.StatusOK)
	})

	req := httptest.NewRequest("GET", "/jobs?"+rawQuery, nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	return got
}

func TestParseJobQueryDefaults(t *testing.T) {
	q := parseQuery(t, "")
	assert.Nil(t, q.StudentGigs)
	assert.Nil(t, q.PayMin)
	assert.Nil(t, q.PayMax)
	assert.Empty(t, q.Skills)
	assert.Equal(t, SortRecent, q.Sort)
	assert.Equal(t, 1, q.Page)
	assert.Equal(t, 12, q.Limit)
}

func TestParseJobQueryValues(t *testing.T) {
	q := parseQuery(t, "q=design&payMin=100&payMax=500&minYear=2&maxYear=3&skills=go,%20sql%20,&employmentType=freelance&remoteType=hybrid&sort=payDesc&page=3&limit=20&studentGigs=false")
	assert.Equal(t, "design", q.Q)
	require.NotNil(t, q.StudentGigs)
	assert.False(t, *q.StudentGigs)
	require.NotNil(t, q.PayMin)
	assert.Equal(t, 100, *q.PayMin)
	require.NotNil(t, q.PayMax)
	assert.Equal(t, 500, *q.PayMax)
	require.NotNil(t, q.MinYear)
	assert.Equal(t, 2, *q.MinYear)
	require.NotNil(t, q.MaxYear)
	assert.Equal(t, 3, *q.MaxYear)
	assert.Equal(t, []string{"go", "sql"}, q.Skills)
	assert.Equal(t, "freelance", q.Employment)
	assert.Equal(t, "hybrid", q.RemoteType)
	assert.Equal(t, SortPayDesc, q.Sort)
	assert.Equal(t, 3, q.Page)
	assert.Equal(t, 20, q.Limit)
}

func TestParseJobQueryMalformedNumericsAreIgnored(t *testing.T) {
	q := parseQuery(t, "payMin=cheap&payMax=12abc&minYear=x&page=zero&limit=ten")
	assert.Nil(t, q.PayMin)
	assert.Nil(t, q.PayMax)
	assert.Nil(t, q.MinYear)
	assert.Equal(t, 1, q.Page)
	assert.Equal(t, 12, q.Limit)
}

func TestParseJobQueryLimitsAndPageFloor(t *testing.T) {
	q := parseQuery(t, "limit=1000&page=-2")
	assert.Equal(t, 100, q.Limit)
	assert.Equal(t, 1, q.Page)

	q = parseQuery(t, "limit=0")
	assert.Equal(t, 12, q.Limit)
}
