package utils

import (
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// ToUUID converts a domain UUID to a pgtype.UUID.
// The nil UUID is considered invalid (NULL).
func ToUUID(id uuid.UUID) pgtype.UUID {
	return pgtype.UUID{
		Bytes: id,
		Valid: id != uuid.Nil,
	}
}

// ToUUIDs converts a list of domain UUIDs for use as a uuid[] parameter.
func ToUUIDs(ids []uuid.UUID) []pgtype.UUID {
	out := make([]pgtype.UUID, len(ids))
	for i, id := range ids {
		out[i] = ToUUID(id)
	}
	return out
}

// FromNullUUID converts a nullable pgtype.UUID to a pointer.
// A NULL value is converted to nil.
func FromNullUUID(id pgtype.UUID) *uuid.UUID {
	if !id.Valid {
		return nil
	}
	value := uuid.UUID(id.Bytes)
	return &value
}

// FromUUIDs converts a uuid[] column, skipping NULL elements.
func FromUUIDs(ids []pgtype.UUID) []uuid.UUID {
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if id.Valid {
			out = append(out, id.Bytes)
		}
	}
	return out
}

// ToNullTime converts an optional time to a pgtype.Timestamptz.
// A nil pointer is considered invalid (NULL).
func ToNullTime(t *time.Time) pgtype.Timestamptz {
	if t == nil {
		return pgtype.Timestamptz{Valid: false}
	}
	return pgtype.Timestamptz{
		Time:  *t,
		Valid: true,
	}
}

// FromNullTime converts a pgtype.Timestamptz to an optional time.
// A NULL value is converted to nil.
func FromNullTime(t pgtype.Timestamptz) *time.Time {
	if !t.Valid {
		return nil
	}
	value := t.Time
	return &value
}
