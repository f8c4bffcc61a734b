package domain

import "time"

const (
	DefaultPage      = 1
	DefaultPageLimit = 10
	MaxPageLimit     = 50
)

// PageRequest is a normalized page/limit pair.
type PageRequest struct {
	Page  int
	Limit int
}

// NewPageRequest floors page at 1 and clamps limit to [1, MaxPageLimit].
// An explicit limit of 0 or below is clamped to 1, not treated as unset;
// only an absent or unparseable limit gets DefaultPageLimit.
func NewPageRequest(page, limit int) PageRequest {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = 1
	}
	if limit > MaxPageLimit {
		limit = MaxPageLimit
	}
	return PageRequest{Page: page, Limit: limit}
}

// Offset returns the index of the first item on the page.
func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Pagination describes the page of a report that was returned.
type Pagination struct {
	Page       int
	Limit      int
	Total      int
	TotalPages int
	HasMore    bool
}

// NewPagination computes the page metadata for total items.
func NewPagination(req PageRequest, total int) Pagination {
	totalPages := 0
	if total > 0 && req.Limit > 0 {
		totalPages = (total + req.Limit - 1) / req.Limit
	}
	return Pagination{
		Page:       req.Page,
		Limit:      req.Limit,
		Total:      total,
		TotalPages: totalPages,
		HasMore:    req.Page < totalPages,
	}
}

// Paginate returns the slice of items that falls on the requested page.
func Paginate[T any](items []T, req PageRequest) []T {
	start := req.Offset()
	if start >= len(items) {
		return []T{}
	}
	end := start + req.Limit
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

// DateRange bounds task creation time. A nil bound is open.
type DateRange struct {
	Start *time.Time
	End   *time.Time
}

// NewDateRange widens start to the first instant of its day and end to the
// last millisecond of its day, both in loc.
func NewDateRange(start, end *time.Time, loc *time.Location) DateRange {
	if loc == nil {
		loc = time.Local
	}

	var r DateRange
	if start != nil {
		s := start.In(loc)
		begin := time.Date(s.Year(), s.Month(), s.Day(), 0, 0, 0, 0, loc)
		r.Start = &begin
	}
	if end != nil {
		e := end.In(loc)
		finish := time.Date(e.Year(), e.Month(), e.Day(), 23, 59, 59, int(999*time.Millisecond), loc)
		r.End = &finish
	}
	return r
}

// Contains reports whether t falls inside the range, bounds included.
func (r DateRange) Contains(t time.Time) bool {
	if r.Start != nil && t.Before(*r.Start) {
		return false
	}
	if r.End != nil && t.After(*r.End) {
		return false
	}
	return true
}
