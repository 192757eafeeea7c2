package pagination_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/ahmetcoskunkizilkaya/admin-api/internal/pagination"
)

type item struct {
	ID    int64  `gorm:"primaryKey"`
	Score int    `gorm:"index"`
	Label string `gorm:"size:50"`
}

func (i item) CursorID() int64 { return i.ID }

var itemSchema = &pagination.Schema{
	Table: "items",
	Columns: map[string]pagination.Column{
		"id":    {Sortable: true, Projectable: true},
		"score": {Sortable: true, Projectable: true},
		"label": {Projectable: true},
	},
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&item{}))
	return db
}

// seedItems inserts n rows whose score is non-decreasing in id and full of
// ties, so the id tie-break decides the order within each score group.
func seedItems(t *testing.T, db *gorm.DB, n int) {
	t.Helper()
	for i := 1; i <= n; i++ {
		require.NoError(t, db.Create(&item{
			ID:    int64(i),
			Score: i / 3,
			Label: fmt.Sprintf("item-%d", i),
		}).Error)
	}
}

func walk(t *testing.T, db *gorm.DB, params pagination.Params) []int64 {
	t.Helper()
	var ids []int64
	for {
		page, err := pagination.Paginate[item](db.Model(&item{}), itemSchema, params)
		require.NoError(t, err)
		for _, it := range page.Items {
			ids = append(ids, it.ID)
		}
		if !page.HasMore {
			assert.Nil(t, page.NextCursor)
			return ids
		}
		require.NotNil(t, page.NextCursor)
		params.Cursor = page.NextCursor
	}
}

func TestPaginateWalkCoversWholeCollection(t *testing.T) {
	db := newTestDB(t)
	seedItems(t, db, 23)

	for _, tc := range []struct {
		orderBy   string
		direction pagination.Direction
	}{
		{"id", pagination.Asc},
		{"id", pagination.Desc},
		{"score", pagination.Asc},
		{"score", pagination.Desc},
	} {
		t.Run(tc.orderBy+"_"+string(tc.direction), func(t *testing.T) {
			ids := walk(t, db, pagination.Params{
				Limit:     4,
				OrderBy:   tc.orderBy,
				Direction: tc.direction,
			})

			assert.Len(t, ids, 23, "no gaps")
			seen := map[int64]bool{}
			for _, id := range ids {
				assert.False(t, seen[id], "no duplicates, id %d", id)
				seen[id] = true
			}
		})
	}
}

func TestPaginateTieBreakOrderIsDeterministic(t *testing.T) {
	db := newTestDB(t)
	// All rows share one score; order must fall back to id.
	for i := 1; i <= 6; i++ {
		require.NoError(t, db.Create(&item{ID: int64(i), Score: 7}).Error)
	}

	page, err := pagination.Paginate[item](db.Model(&item{}), itemSchema, pagination.Params{
		Limit: 6, OrderBy: "score", Direction: pagination.Desc,
	})
	require.NoError(t, err)
	require.Len(t, page.Items, 6)
	for i, it := range page.Items {
		assert.Equal(t, int64(6-i), it.ID)
	}
}

func TestPaginateOverfetchSetsHasMore(t *testing.T) {
	db := newTestDB(t)
	seedItems(t, db, 5)

	page, err := pagination.Paginate[item](db.Model(&item{}), itemSchema, pagination.Params{Limit: 4})
	require.NoError(t, err)
	assert.Len(t, page.Items, 4)
	assert.True(t, page.HasMore)
	require.NotNil(t, page.NextCursor)
	assert.Equal(t, page.Items[3].ID, *page.NextCursor)
	assert.Equal(t, int64(5), page.Total)

	// Exactly limit rows left: the overfetch comes back short, so the
	// page is final even though it is full.
	page, err = pagination.Paginate[item](db.Model(&item{}), itemSchema, pagination.Params{
		Limit: 4, Cursor: page.NextCursor,
	})
	require.NoError(t, err)
	assert.Len(t, page.Items, 1)
	assert.False(t, page.HasMore)
	assert.Nil(t, page.NextCursor)
}

func TestPaginateTotalReflectsFilteredCollection(t *testing.T) {
	db := newTestDB(t)
	seedItems(t, db, 10)

	base := db.Model(&item{}).Where("score >= ?", 2)
	page, err := pagination.Paginate[item](base, itemSchema, pagination.Params{Limit: 2})
	require.NoError(t, err)
	assert.Len(t, page.Items, 2)
	assert.Equal(t, int64(5), page.Total, "count runs over the filter, not the page")
}

func TestPaginateDefaults(t *testing.T) {
	db := newTestDB(t)
	seedItems(t, db, 3)

	page, err := pagination.Paginate[item](db.Model(&item{}), itemSchema, pagination.Params{})
	require.NoError(t, err)
	assert.Equal(t, pagination.DefaultLimit, page.Limit)
	assert.Equal(t, "id", page.OrderBy.Column)
	assert.Equal(t, pagination.Asc, page.OrderBy.Direction)
}

func TestPaginateRejectsInvalidSortColumn(t *testing.T) {
	db := newTestDB(t)

	_, err := pagination.Paginate[item](db.Model(&item{}), itemSchema, pagination.Params{OrderBy: "password"})
	var invalid *pagination.InvalidSortColumnError
	require.True(t, errors.As(err, &invalid))
	assert.Equal(t, "password", invalid.Column)
	assert.Equal(t, []string{"id", "score"}, invalid.Allowed)
	assert.Contains(t, err.Error(), "id, score")
}

func TestPaginateRejectsInvalidSortDirection(t *testing.T) {
	db := newTestDB(t)

	_, err := pagination.Paginate[item](db.Model(&item{}), itemSchema, pagination.Params{
		OrderBy: "id", Direction: "sideways",
	})
	var invalid *pagination.InvalidSortDirectionError
	require.True(t, errors.As(err, &invalid))
	assert.Equal(t, "sideways", invalid.Direction)
}

func TestSchemaExcludesNonProjectable(t *testing.T) {
	schema := &pagination.Schema{
		Table: "users",
		Columns: map[string]pagination.Column{
			"id":       {Sortable: true, Projectable: true},
			"password": {},
			"name":     {Sortable: true, SortExpr: []string{"first_name", "last_name"}},
		},
	}
	assert.Equal(t, []string{"id"}, schema.ProjectedColumns())
	assert.Equal(t, []string{"first_name", "last_name"}, schema.SortExprs("name"))
	assert.Equal(t, []string{"id"}, schema.SortExprs("id"))
}
