package audit_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmfalves/anidex/internal/audit"
)

// memoryRepo collects inserted entries; failErr makes every insert fail.
type memoryRepo struct {
	entries []*audit.Entry
	failErr error
}

func (r *memoryRepo) Insert(_ context.Context, entry *audit.Entry) error {
	if r.failErr != nil {
		return r.failErr
	}
	entry.ID = len(r.entries) + 1
	r.entries = append(r.entries, entry)
	return nil
}

func (r *memoryRepo) ListEntries(_ context.Context) ([]*audit.Entry, error) {
	return r.entries, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

/*
TestService_Record verifies the entry shape including the RFC 3339 UTC timestamp.
*/
func TestService_Record(t *testing.T) {
	repo := &memoryRepo{}
	service := audit.NewService(repo, discardLogger())

	before := time.Now().UTC()
	service.Record(context.Background(), `Anime "Naruto" #1 created.`, audit.LevelInfo, audit.ActionCreate)

	require.Len(t, repo.entries, 1)
	entry := repo.entries[0]

	assert.Equal(t, `Anime "Naruto" #1 created.`, entry.Message)
	assert.Equal(t, audit.LevelInfo, entry.Level)
	assert.Equal(t, audit.ActionCreate, entry.Action)

	stamp, err := time.Parse(time.RFC3339Nano, entry.Timestamp)
	require.NoError(t, err)
	assert.WithinDuration(t, before, stamp, 5*time.Second)
	assert.Equal(t, time.UTC, stamp.Location())
}

/*
TestService_Record_StoreFailureSwallowed proves the fire-and-forget contract:
a failed audit write never surfaces to the caller.
*/
func TestService_Record_StoreFailureSwallowed(t *testing.T) {
	repo := &memoryRepo{failErr: errors.New("connection refused")}
	service := audit.NewService(repo, discardLogger())

	assert.NotPanics(t, func() {
		service.Record(context.Background(), "Anime #1 deleted.", audit.LevelInfo, audit.ActionDelete)
	})
	assert.Empty(t, repo.entries)
}

/*
TestService_List returns entries in insertion order.
*/
func TestService_List(t *testing.T) {
	repo := &memoryRepo{}
	service := audit.NewService(repo, discardLogger())

	service.Record(context.Background(), "first", audit.LevelInfo, audit.ActionCreate)
	service.Record(context.Background(), "second", audit.LevelInfo, audit.ActionUpdate)

	entries, err := service.List(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "first", entries[0].Message)
	assert.Equal(t, "second", entries[1].Message)
}
