package repositories

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/logger"

	"github.com/share_registry/internal/models"
	"github.com/share_registry/pkg/db"
)

func TestFolioRepository_FindByIDs(t *testing.T) {
	conn, err := db.Open("sqlite", filepath.Join(t.TempDir(), "registry.db"), logger.Silent)
	require.NoError(t, err)
	require.NoError(t, db.Migrate(conn))
	t.Cleanup(func() {
		if sqlDB, err := conn.DB(); err == nil {
			sqlDB.Close()
		}
	})

	first := models.Folio{ShareCertificateID: 1, FolioNumber: "A1"}
	second := models.Folio{ShareCertificateID: 1, FolioNumber: "B2"}
	require.NoError(t, conn.Create(&first).Error)
	require.NoError(t, conn.Create(&second).Error)

	day := func(y int) *time.Time {
		d := time.Date(y, 1, 1, 0, 0, 0, 0, time.UTC)
		return &d
	}
	certs := []models.Certificate{
		{FolioID: first.ID, CertificateNumber: "late", NoOfShares: 10, ActionDate: day(2010)},
		{FolioID: first.ID, CertificateNumber: "undated", NoOfShares: 5},
		{FolioID: first.ID, CertificateNumber: "early", NoOfShares: 20, ActionDate: day(2001)},
	}
	require.NoError(t, conn.Create(&certs).Error)

	repo := NewGormFolioRepository(conn)
	ctx := context.Background()

	folios, err := repo.FindByIDs(ctx, models.IDList{second.ID, first.ID, second.ID})
	require.NoError(t, err)
	require.Len(t, folios, 2)
	assert.Equal(t, "B2", folios[0].FolioNumber)
	assert.Empty(t, folios[0].Certificates)

	var numbers []string
	for _, c := range folios[1].Certificates {
		numbers = append(numbers, c.CertificateNumber)
	}
	// 空日期排在最前，最新日期的证书永远是最后一张
	assert.Equal(t, []string{"undated", "early", "late"}, numbers)
	assert.Equal(t, "late", folios[1].LatestCertificate().CertificateNumber)

	empty, err := repo.FindByIDs(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}
