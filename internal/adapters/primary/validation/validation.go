package validation

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lorrc/kpi-service/internal/core/domain"
	apperrors "github.com/lorrc/kpi-service/internal/core/errors"
)

// DateLayout is the calendar date form accepted for report date filters.
const DateLayout = "2006-01-02"

// ParseIntQueryParam safely parses an integer query parameter
func ParseIntQueryParam(r *http.Request, key string, defaultValue int) int {
	valueStr := strings.TrimSpace(r.URL.Query().Get(key))
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}

	return value
}

// ParsePageRequest reads page and limit. Unparseable values fall back to the
// defaults, then page is floored at 1 and limit clamped to [1, MaxPageLimit].
func ParsePageRequest(r *http.Request) domain.PageRequest {
	page := ParseIntQueryParam(r, "page", domain.DefaultPage)
	limit := ParseIntQueryParam(r, "limit", domain.DefaultPageLimit)
	return domain.NewPageRequest(page, limit)
}

// ParseUUIDQueryParam returns the parameter as a UUID, or nil when it is
// absent or malformed.
func ParseUUIDQueryParam(r *http.Request, key string) *uuid.UUID {
	valueStr := strings.TrimSpace(r.URL.Query().Get(key))
	if valueStr == "" {
		return nil
	}

	id, err := uuid.Parse(valueStr)
	if err != nil {
		return nil
	}

	return &id
}

// RequireWorkspaceID reads the mandatory workspaceId query parameter.
func RequireWorkspaceID(r *http.Request) (uuid.UUID, error) {
	valueStr := strings.TrimSpace(r.URL.Query().Get("workspaceId"))
	if valueStr == "" {
		return uuid.Nil, apperrors.NewBadRequestError(apperrors.ErrWorkspaceIDRequired, "workspaceId is required")
	}

	id, err := uuid.Parse(valueStr)
	if err != nil || id == uuid.Nil {
		return uuid.Nil, apperrors.NewBadRequestError(apperrors.ErrInvalidWorkspaceID, "workspaceId must be a valid UUID")
	}

	return id, nil
}

// ParseDateQueryParam accepts a calendar date or an RFC 3339 timestamp. A
// calendar date is read in loc. Malformed values are treated as absent.
func ParseDateQueryParam(r *http.Request, key string, loc *time.Location) *time.Time {
	valueStr := strings.TrimSpace(r.URL.Query().Get(key))
	if valueStr == "" {
		return nil
	}
	if loc == nil {
		loc = time.Local
	}

	if t, err := time.ParseInLocation(DateLayout, valueStr, loc); err == nil {
		return &t
	}
	if t, err := time.Parse(time.RFC3339Nano, valueStr); err == nil {
		return &t
	}

	return nil
}

// ParseDateRange reads startDate and endDate and widens them to whole days in loc.
func ParseDateRange(r *http.Request, loc *time.Location) domain.DateRange {
	return domain.NewDateRange(
		ParseDateQueryParam(r, "startDate", loc),
		ParseDateQueryParam(r, "endDate", loc),
		loc,
	)
}
