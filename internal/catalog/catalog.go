// Package catalog is the product accessor: CRUD against the products
// table plus the category split the storefront renders from.
package catalog

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/omytic/storefront/models"
)

// Validation failures carry the message shown inline to the admin.
var (
	ErrNameRequired = errors.New("Ürün adı gerekli")
	ErrBadCategory  = errors.New("Geçersiz kategori")
)

// Remover deletes a stored object by its public URL. Satisfied by
// *storage.Bucket; faked in tests.
type Remover interface {
	Remove(ctx context.Context, url string) error
}

// Service reads and writes product rows. Object cleanup on update and
// delete is best effort: failures are logged, never surfaced, and never
// block the row operation.
type Service struct {
	db      *gorm.DB
	objects Remover
	log     *zap.Logger
}

func New(db *gorm.DB, objects Remover, log *zap.Logger) *Service {
	return &Service{db: db, objects: objects, log: log}
}

// Input is one admin form submission. Blank optional fields become
// NULL; Features is the raw newline-delimited block from the form.
type Input struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	ImageURL    string          `json:"image_url"`
	Category    models.Category `json:"category"`
	AmazonLink  string          `json:"amazon_link"`
	Features    string          `json:"features"`
}

func (in Input) validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return ErrNameRequired
	}
	if !in.Category.Valid() {
		return ErrBadCategory
	}
	return nil
}

// IsValidationErr reports whether err came from form validation rather
// than the backend.
func IsValidationErr(err error) bool {
	return errors.Is(err, ErrNameRequired) || errors.Is(err, ErrBadCategory)
}

// List returns all products, newest first.
func (s *Service) List(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := s.db.WithContext(ctx).Order("created_at DESC").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// Create inserts one product row. Validation runs before any backend
// call so an empty name never reaches the insert path.
func (s *Service) Create(ctx context.Context, in Input) (models.Product, error) {
	if err := in.validate(); err != nil {
		return models.Product{}, err
	}
	product := models.Product{
		Name:        strings.TrimSpace(in.Name),
		Description: nullable(in.Description),
		ImageURL:    nullable(in.ImageURL),
		Category:    in.Category,
		AmazonLink:  nullable(in.AmazonLink),
		Features:    ParseFeatures(in.Features),
	}
	if err := s.db.WithContext(ctx).Create(&product).Error; err != nil {
		return models.Product{}, err
	}
	return product, nil
}

// Update replaces every mutable field of the row, last writer wins.
// When the image reference changed, the previously stored object is
// removed first; that removal failing does not fail the update.
func (s *Service) Update(ctx context.Context, id string, in Input) (models.Product, error) {
	if err := in.validate(); err != nil {
		return models.Product{}, err
	}

	var prev models.Product
	if err := s.db.WithContext(ctx).First(&prev, "id = ?", id).Error; err != nil {
		return models.Product{}, err
	}

	if prev.ImageURL != nil && *prev.ImageURL != in.ImageURL {
		s.removeObject(ctx, *prev.ImageURL)
	}

	prev.Name = strings.TrimSpace(in.Name)
	prev.Description = nullable(in.Description)
	prev.ImageURL = nullable(in.ImageURL)
	prev.Category = in.Category
	prev.AmazonLink = nullable(in.AmazonLink)
	prev.Features = ParseFeatures(in.Features)

	if err := s.db.WithContext(ctx).Save(&prev).Error; err != nil {
		return models.Product{}, err
	}
	return prev, nil
}

// Delete removes the row, deleting its stored image first when one is
// referenced. The object deletion is best effort.
func (s *Service) Delete(ctx context.Context, id string) error {
	var product models.Product
	if err := s.db.WithContext(ctx).First(&product, "id = ?", id).Error; err != nil {
		return err
	}
	if product.ImageURL != nil {
		s.removeObject(ctx, *product.ImageURL)
	}
	return s.db.WithContext(ctx).Delete(&models.Product{}, "id = ?", id).Error
}

func (s *Service) removeObject(ctx context.Context, url string) {
	if s.objects == nil {
		return
	}
	if err := s.objects.Remove(ctx, url); err != nil {
		s.log.Warn("failed to remove stale product image", zap.String("url", url), zap.Error(err))
	}
}

// ParseFeatures splits a newline-delimited block into trimmed non-blank
// lines. An empty block yields nil, stored and serialized as null.
func ParseFeatures(block string) []string {
	if strings.TrimSpace(block) == "" {
		return nil
	}
	var features []string
	for _, line := range strings.Split(block, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			features = append(features, line)
		}
	}
	return features
}

// Partition splits products into the fabric and other display lists,
// preserving relative order.
func Partition(products []models.Product) (fabrics, others []models.Product) {
	for _, p := range products {
		switch p.Category {
		case models.CategoryFabric:
			fabrics = append(fabrics, p)
		case models.CategoryOther:
			others = append(others, p)
		}
	}
	return fabrics, others
}

func nullable(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
