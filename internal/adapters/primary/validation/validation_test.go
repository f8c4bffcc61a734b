package validation

import (
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/lorrc/kpi-service/internal/core/domain"
	apperrors "github.com/lorrc/kpi-service/internal/core/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePageRequest(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  domain.PageRequest
	}{
		{"defaults", "", domain.PageRequest{Page: 1, Limit: 10}},
		{"explicit", "?page=3&limit=25", domain.PageRequest{Page: 3, Limit: 25}},
		{"page floored", "?page=-2", domain.PageRequest{Page: 1, Limit: 10}},
		{"zero page floored", "?page=0", domain.PageRequest{Page: 1, Limit: 10}},
		{"limit capped", "?limit=500", domain.PageRequest{Page: 1, Limit: 50}},
		{"limit floored", "?limit=0", domain.PageRequest{Page: 1, Limit: 1}},
		{"negative limit floored", "?limit=-7", domain.PageRequest{Page: 1, Limit: 1}},
		{"garbage falls back", "?page=abc&limit=x", domain.PageRequest{Page: 1, Limit: 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/kpi/team"+tt.query, nil)
			assert.Equal(t, tt.want, ParsePageRequest(r))
		})
	}
}

func TestRequireWorkspaceID(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		id := uuid.New()
		r := httptest.NewRequest("GET", "/kpi/overall?workspaceId="+id.String(), nil)

		got, err := RequireWorkspaceID(r)

		require.NoError(t, err)
		assert.Equal(t, id, got)
	})

	t.Run("missing", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/kpi/overall", nil)

		_, err := RequireWorkspaceID(r)

		assert.ErrorIs(t, err, apperrors.ErrWorkspaceIDRequired)
		var appErr *apperrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, 400, appErr.StatusCode)
	})

	t.Run("malformed", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/kpi/overall?workspaceId=not-a-uuid", nil)

		_, err := RequireWorkspaceID(r)

		assert.ErrorIs(t, err, apperrors.ErrInvalidWorkspaceID)
	})
}

func TestParseUUIDQueryParam(t *testing.T) {
	id := uuid.New()

	r := httptest.NewRequest("GET", "/kpi/team?workspaceId="+id.String(), nil)
	require.NotNil(t, ParseUUIDQueryParam(r, "workspaceId"))
	assert.Equal(t, id, *ParseUUIDQueryParam(r, "workspaceId"))

	r = httptest.NewRequest("GET", "/kpi/team?workspaceId=nope", nil)
	assert.Nil(t, ParseUUIDQueryParam(r, "workspaceId"))

	r = httptest.NewRequest("GET", "/kpi/team", nil)
	assert.Nil(t, ParseUUIDQueryParam(r, "workspaceId"))
}

func TestParseDateRange(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*60*60)

	t.Run("calendar dates widen to whole days", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/kpi/team?startDate=2024-03-01&endDate=2024-03-31", nil)

		got := ParseDateRange(r, loc)

		require.NotNil(t, got.Start)
		require.NotNil(t, got.End)
		assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, loc), *got.Start)
		assert.Equal(t, time.Date(2024, 3, 31, 23, 59, 59, 999_000_000, loc), *got.End)
	})

	t.Run("timestamps are read in the configured zone", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/kpi/team?startDate=2024-03-01T23:30:00Z", nil)

		got := ParseDateRange(r, loc)

		require.NotNil(t, got.Start)
		assert.Equal(t, time.Date(2024, 3, 2, 0, 0, 0, 0, loc), *got.Start)
		assert.Nil(t, got.End)
	})

	t.Run("malformed bounds are ignored", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/kpi/team?startDate=yesterday&endDate=2024-13-45", nil)

		got := ParseDateRange(r, loc)

		assert.Nil(t, got.Start)
		assert.Nil(t, got.End)
	})
}
