package settings

import (
	"context"
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/omytic/storefront/models"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Setting{}))
	return db
}

func settingCount(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Model(&models.Setting{}).Count(&count).Error)
	return count
}

func TestGetReturnsDefaultsWhenEmpty(t *testing.T) {
	db := testDB(t)
	svc := New(db, zap.NewNop())

	record, err := svc.Get(context.Background())
	require.NoError(t, err)

	assert.Equal(t, Defaults(), record)
	assert.Empty(t, record.ID)

	// Defaults are lazily materialized, never persisted by Get.
	assert.EqualValues(t, 0, settingCount(t, db))
}

func TestSaveInsertsThenUpdatesSameRow(t *testing.T) {
	db := testDB(t)
	svc := New(db, zap.NewNop())

	first, err := svc.Save(context.Background(), models.Setting{
		Phone:     "+90 111 111 11 11",
		SiteTitle: "İlk başlık",
	})
	require.NoError(t, err)
	require.NotEmpty(t, first.ID)
	assert.EqualValues(t, 1, settingCount(t, db))

	second, err := svc.Save(context.Background(), models.Setting{
		Phone:              "+90 222 222 22 22",
		SiteTitle:          "Yeni başlık",
		AnnouncementText:   "Kampanya",
		AnnouncementActive: true,
	})
	require.NoError(t, err)

	// Same row, no duplicate.
	assert.Equal(t, first.ID, second.ID)
	assert.EqualValues(t, 1, settingCount(t, db))

	stored, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "+90 222 222 22 22", stored.Phone)
	assert.Equal(t, "Yeni başlık", stored.SiteTitle)
	assert.True(t, stored.AnnouncementActive)
}

func TestSaveRepeatedKeepsSingleton(t *testing.T) {
	db := testDB(t)
	svc := New(db, zap.NewNop())

	for i := 0; i < 5; i++ {
		_, err := svc.Save(context.Background(), Defaults())
		require.NoError(t, err)
	}
	assert.EqualValues(t, 1, settingCount(t, db))
}
