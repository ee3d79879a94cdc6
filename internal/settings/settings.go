// Package settings is the accessor for the singleton site settings row.
package settings

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/omytic/storefront/models"
)

// Service reads and writes the singleton settings row. Save enforces
// the singleton with check-then-write; the check-then-act race is
// accepted under the single-admin assumption.
type Service struct {
	db  *gorm.DB
	log *zap.Logger
}

func New(db *gorm.DB, log *zap.Logger) *Service {
	return &Service{db: db, log: log}
}

// Defaults is the in-memory record served before an admin ever saves.
// It is never persisted by Get.
func Defaults() models.Setting {
	return models.Setting{
		Phone:           "+90 553 588 69 36",
		Whatsapp:        "+90 553 588 69 36",
		Email:           "info@omytic.com",
		SiteTitle:       "OMY Ticaret - Kaliteli Toptan Ticaret",
		SiteDescription: "OMY Ticaret; kaliteli ürün yelpazesi ve hızlı tedarik zinciriyle, müşterilerinin ihtiyaçlarına özel çözümler sunan güvenilir bir iş ortağıdır.",
	}
}

// Get returns the stored settings row, or the defaults when none
// exists yet.
func (s *Service) Get(ctx context.Context) (models.Setting, error) {
	var row models.Setting
	err := s.db.WithContext(ctx).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Defaults(), nil
	}
	if err != nil {
		return models.Setting{}, err
	}
	return row, nil
}

// Save writes the whole record: update by id when a row exists, insert
// otherwise. Repeated saves keep the table at one row.
func (s *Service) Save(ctx context.Context, in models.Setting) (models.Setting, error) {
	var existing models.Setting
	err := s.db.WithContext(ctx).Select("id").First(&existing).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		in.ID = ""
		if err := s.db.WithContext(ctx).Create(&in).Error; err != nil {
			return models.Setting{}, err
		}
	case err != nil:
		return models.Setting{}, err
	default:
		in.ID = existing.ID
		if err := s.db.WithContext(ctx).Save(&in).Error; err != nil {
			return models.Setting{}, err
		}
	}
	s.log.Info("settings saved", zap.String("id", in.ID))
	return in, nil
}
