package utils

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUUIDConversions(t *testing.T) {
	id := uuid.New()

	assert.True(t, ToUUID(id).Valid)
	assert.False(t, ToUUID(uuid.Nil).Valid)

	got := FromNullUUID(ToUUID(id))
	require.NotNil(t, got)
	assert.Equal(t, id, *got)
	assert.Nil(t, FromNullUUID(pgtype.UUID{}))

	ids := []uuid.UUID{uuid.New(), uuid.New()}
	assert.Equal(t, ids, FromUUIDs(ToUUIDs(ids)))
	assert.Equal(t, []uuid.UUID{id}, FromUUIDs([]pgtype.UUID{{}, ToUUID(id)}))
	assert.Empty(t, FromUUIDs(nil))
}

func TestTimeConversions(t *testing.T) {
	now := time.Now()

	assert.False(t, ToNullTime(nil).Valid)
	assert.Nil(t, FromNullTime(pgtype.Timestamptz{}))

	got := FromNullTime(ToNullTime(&now))
	require.NotNil(t, got)
	assert.True(t, now.Equal(*got))
}
