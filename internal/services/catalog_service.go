package services

import (
	"fmt"
	"strings"

	"github.com/stepwise-saude/insole-platform-backend/internal/database/repository"
	"github.com/stepwise-saude/insole-platform-backend/internal/models"
)

// CatalogService manages the admin-maintained catalog: coatings, insole
// models and coupons.
type CatalogService struct {
	coatingRepo     *repository.CoatingRepository
	insoleModelRepo *repository.InsoleModelRepository
	couponRepo      *repository.CouponRepository
}

func NewCatalogService(
	coatingRepo *repository.CoatingRepository,
	insoleModelRepo *repository.InsoleModelRepository,
	couponRepo *repository.CouponRepository,
) *CatalogService {
	return &CatalogService{
		coatingRepo:     coatingRepo,
		insoleModelRepo: insoleModelRepo,
		couponRepo:      couponRepo,
	}
}

func (s *CatalogService) CreateCoating(req *models.CoatingRequest) (*models.Coating, error) {
	c := &models.Coating{
		Name:        req.Name,
		Description: req.Description,
		PriceCents:  req.PriceCents,
		IsActive:    true,
	}
	if req.IsActive != nil {
		c.IsActive = *req.IsActive
	}
	if err := s.coatingRepo.Create(c); err != nil {
		return nil, fmt.Errorf("failed to create coating: %w", err)
	}
	return c, nil
}

func (s *CatalogService) ListCoatings(activeOnly bool) ([]models.Coating, error) {
	return s.coatingRepo.GetAll(activeOnly)
}

func (s *CatalogService) UpdateCoating(id string, req *models.CoatingRequest) (*models.Coating, error) {
	c, err := s.coatingRepo.GetByID(id)
	if err != nil {
		return nil, models.ErrNotFound
	}
	c.Name = req.Name
	c.Description = req.Description
	c.PriceCents = req.PriceCents
	if req.IsActive != nil {
		c.IsActive = *req.IsActive
	}
	if err := s.coatingRepo.Update(c); err != nil {
		return nil, fmt.Errorf("failed to update coating: %w", err)
	}
	return c, nil
}

func (s *CatalogService) DeleteCoating(id string) error {
	if _, err := s.coatingRepo.GetByID(id); err != nil {
		return models.ErrNotFound
	}
	return s.coatingRepo.Delete(id)
}

func (s *CatalogService) CreateInsoleModel(req *models.InsoleModelRequest) (*models.InsoleModel, error) {
	m := &models.InsoleModel{
		Name:        req.Name,
		Description: req.Description,
		Indication:  req.Indication,
		PriceCents:  req.PriceCents,
		ImageURL:    req.ImageURL,
		IsActive:    true,
	}
	if req.IsActive != nil {
		m.IsActive = *req.IsActive
	}
	if err := s.insoleModelRepo.Create(m); err != nil {
		return nil, fmt.Errorf("failed to create insole model: %w", err)
	}
	return m, nil
}

func (s *CatalogService) ListInsoleModels(activeOnly bool) ([]models.InsoleModel, error) {
	return s.insoleModelRepo.GetAll(activeOnly)
}

func (s *CatalogService) UpdateInsoleModel(id string, req *models.InsoleModelRequest) (*models.InsoleModel, error) {
	m, err := s.insoleModelRepo.GetByID(id)
	if err != nil {
		return nil, models.ErrNotFound
	}
	m.Name = req.Name
	m.Description = req.Description
	m.Indication = req.Indication
	m.PriceCents = req.PriceCents
	m.ImageURL = req.ImageURL
	if req.IsActive != nil {
		m.IsActive = *req.IsActive
	}
	if err := s.insoleModelRepo.Update(m); err != nil {
		return nil, fmt.Errorf("failed to update insole model: %w", err)
	}
	return m, nil
}

func (s *CatalogService) DeleteInsoleModel(id string) error {
	if _, err := s.insoleModelRepo.GetByID(id); err != nil {
		return models.ErrNotFound
	}
	return s.insoleModelRepo.Delete(id)
}

func (s *CatalogService) CreateCoupon(req *models.CouponRequest) (*models.Coupon, error) {
	c := &models.Coupon{
		Code:       strings.ToUpper(req.Code),
		Kind:       req.Kind,
		Value:      req.Value,
		ExpiresAt:  req.ExpiresAt,
		UsageLimit: req.UsageLimit,
		IsActive:   true,
	}
	if req.IsActive != nil {
		c.IsActive = *req.IsActive
	}
	if err := s.couponRepo.Create(c); err != nil {
		return nil, fmt.Errorf("failed to create coupon: %w", err)
	}
	return c, nil
}

func (s *CatalogService) ListCoupons() ([]models.Coupon, error) {
	return s.couponRepo.GetAll()
}

func (s *CatalogService) UpdateCoupon(id string, req *models.CouponRequest) (*models.Coupon, error) {
	c, err := s.couponRepo.GetByID(id)
	if err != nil {
		return nil, models.ErrNotFound
	}
	c.Code = strings.ToUpper(req.Code)
	c.Kind = req.Kind
	c.Value = req.Value
	c.ExpiresAt = req.ExpiresAt
	c.UsageLimit = req.UsageLimit
	if req.IsActive != nil {
		c.IsActive = *req.IsActive
	}
	if err := s.couponRepo.Update(c); err != nil {
		return nil, fmt.Errorf("failed to update coupon: %w", err)
	}
	return c, nil
}

func (s *CatalogService) DeleteCoupon(id string) error {
	if _, err := s.couponRepo.GetByID(id); err != nil {
		return models.ErrNotFound
	}
	return s.couponRepo.Delete(id)
}
