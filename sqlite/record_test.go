package sqlite_test

import (
	"context"
	"testing"

	"github.com/fwojciec/roster"
	"github.com/fwojciec/roster/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *sqlite.DB {
	t.Helper()
	db := sqlite.NewDB(sqlite.MemoryDSN)
	require.NoError(t, db.Open())
	t.Cleanup(func() { db.Close() })
	return db
}

func testRecords() []*roster.Record {
	return []*roster.Record{
		{
			PersonName:        "Jane Smith",
			FirstName:         "Jane",
			LastName:          "Smith",
			DegreeTypeName:    "PhD",
			DegreeInstitution: "State University",
			DegreeYear:        "2001",
			IsEmeritus:        true,
		},
		{PersonName: "John Doe", IsAdministration: true},
		{PersonName: "Ada King", FirstName: "Ada"},
	}
}

func TestRecordService_CreateRecords(t *testing.T) {
	t.Parallel()

	t.Run("assigns IDs and positions", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewRecordService(setupTestDB(t))
		records := testRecords()

		err := svc.CreateRecords(context.Background(), records)
		require.NoError(t, err)

		for i, r := range records {
			assert.NotEmpty(t, r.ID)
			assert.Equal(t, i, r.Position)
		}
	})

	t.Run("appends after existing records", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewRecordService(setupTestDB(t))
		ctx := context.Background()
		require.NoError(t, svc.CreateRecords(ctx, testRecords()))

		more := []*roster.Record{{PersonName: "Grace Hopper"}}
		require.NoError(t, svc.CreateRecords(ctx, more))

		assert.Equal(t, 3, more[0].Position)
		n, err := svc.CountRecords(ctx)
		require.NoError(t, err)
		assert.Equal(t, 4, n)
	})

	t.Run("accepts empty slice", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewRecordService(setupTestDB(t))

		require.NoError(t, svc.CreateRecords(context.Background(), nil))
	})
}

func TestRecordService_FindRecords(t *testing.T) {
	t.Parallel()

	t.Run("returns all records in source order with fields intact", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewRecordService(setupTestDB(t))
		ctx := context.Background()
		created := testRecords()
		require.NoError(t, svc.CreateRecords(ctx, created))

		found, err := svc.FindRecords(ctx, roster.RecordFilter{})
		require.NoError(t, err)

		require.Len(t, found, 3)
		assert.Equal(t, created[0], found[0])
		assert.Equal(t, "John Doe", found[1].PersonName)
		assert.True(t, found[1].IsAdministration)
		assert.False(t, found[1].IsEmeritus)
		assert.Equal(t, "Ada King", found[2].PersonName)
	})

	t.Run("filters by person name", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewRecordService(setupTestDB(t))
		ctx := context.Background()
		require.NoError(t, svc.CreateRecords(ctx, testRecords()))

		name := "John Doe"
		found, err := svc.FindRecords(ctx, roster.RecordFilter{PersonName: &name})
		require.NoError(t, err)

		require.Len(t, found, 1)
		assert.Equal(t, "John Doe", found[0].PersonName)
	})

	t.Run("applies limit and offset", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewRecordService(setupTestDB(t))
		ctx := context.Background()
		require.NoError(t, svc.CreateRecords(ctx, testRecords()))

		found, err := svc.FindRecords(ctx, roster.RecordFilter{Limit: 1, Offset: 1})
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, "John Doe", found[0].PersonName)

		found, err = svc.FindRecords(ctx, roster.RecordFilter{Offset: 2})
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, "Ada King", found[0].PersonName)
	})

	t.Run("returns empty for empty table", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewRecordService(setupTestDB(t))

		found, err := svc.FindRecords(context.Background(), roster.RecordFilter{})
		require.NoError(t, err)
		assert.Empty(t, found)
	})
}
