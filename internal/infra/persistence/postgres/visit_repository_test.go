package postgres

import (
	"testing"

	"checkin/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newDryRunDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(gormpostgres.New(gormpostgres.Config{DSN: "host=localhost"}), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
	})
	require.NoError(t, err)

	return db
}

func TestVisitLogQuery(t *testing.T) {
	db := newDryRunDB(t)
	establishmentID := uuid.New()

	sql := db.ToSQL(func(tx *gorm.DB) *gorm.DB {
		return visitLogQuery(tx, establishmentID, 50).Find(&[]*model.VisitLogRow{})
	})

	// Orphaned visits must not surface as blank names in the log.
	assert.Contains(t, sql, "INNER JOIN visitors ON visitors.id = visit_records.visitor_id")
	assert.NotContains(t, sql, "LEFT JOIN")
	assert.Contains(t, sql, establishmentID.String())
	assert.Contains(t, sql, "ORDER BY visit_records.created_at DESC")
	assert.Contains(t, sql, "LIMIT 50")
}
