package masterdata

import (
	"context"
	"errors"
	"fmt"

	"github.com/petfit/booking-service/internal/domain"
	holidayRepo "github.com/petfit/booking-service/internal/infra/storage/holiday"
	masterdataRepo "github.com/petfit/booking-service/internal/infra/storage/masterdata"
	"github.com/petfit/booking-service/internal/service/masterdata/models"
)

// Service сервис для работы со справочниками
type Service struct {
	repo     MasterDataRepository
	holidays HolidayRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса справочников
func NewService(repo MasterDataRepository, holidays HolidayRepository, logger Logger) *Service {
	return &Service{
		repo:     repo,
		holidays: holidays,
		logger:   logger,
	}
}

func validateName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if len(name) > domain.MaxNameLength {
		return fmt.Errorf("%w: name exceeds %d characters", ErrInvalidInput, domain.MaxNameLength)
	}
	return nil
}

// CreateCategory создает категорию услуг
func (s *Service) CreateCategory(ctx context.Context, req *models.CategoryRequest) (*models.CategoryResponse, error) {
	if err := validateName(req.Name); err != nil {
		return nil, err
	}

	created, err := s.repo.CreateCategory(ctx, &domain.Category{
		Name:        req.Name,
		Description: req.Description,
		IsActive:    req.IsActive,
	})
	if err != nil {
		s.logger.Error("CreateCategory: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateCategory - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateCategory: created category id=%d", created.ID)
	return models.FromDomainCategory(created), nil
}

// GetCategory получает категорию по ID
func (s *Service) GetCategory(ctx context.Context, id int64) (*models.CategoryResponse, error) {
	c, err := s.repo.GetCategoryByID(ctx, id)
	if err != nil {
		if errors.Is(err, masterdataRepo.ErrNotFound) {
			return nil, ErrNotFound
		}
		s.logger.Error("GetCategory: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetCategory - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainCategory(c), nil
}

// ListCategories возвращает все категории
func (s *Service) ListCategories(ctx context.Context) ([]*models.CategoryResponse, error) {
	categories, err := s.repo.ListCategories(ctx)
	if err != nil {
		s.logger.Error("ListCategories: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListCategories - repository error: %v", ErrInternal, err)
	}

	result := make([]*models.CategoryResponse, 0, len(categories))
	for _, c := range categories {
		result = append(result, models.FromDomainCategory(c))
	}
	return result, nil
}

// UpdateCategory обновляет категорию
func (s *Service) UpdateCategory(ctx context.Context, id int64, req *models.CategoryRequest) (*models.CategoryResponse, error) {
	if err := validateName(req.Name); err != nil {
		return nil, err
	}

	err := s.repo.UpdateCategory(ctx, &domain.Category{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		IsActive:    req.IsActive,
	})
	if err != nil {
		if errors.Is(err, masterdataRepo.ErrNotFound) {
			return nil, ErrNotFound
		}
		s.logger.Error("UpdateCategory: repository error: %v", err)
		return nil, fmt.Errorf("%w: UpdateCategory - repository error: %v", ErrInternal, err)
	}

	return s.GetCategory(ctx, id)
}

// DeleteCategory удаляет категорию
func (s *Service) DeleteCategory(ctx context.Context, id int64) error {
	if err := s.repo.DeleteCategory(ctx, id); err != nil {
		if errors.Is(err, masterdataRepo.ErrNotFound) {
			return ErrNotFound
		}
		s.logger.Error("DeleteCategory: repository error: %v", err)
		return fmt.Errorf("%w: DeleteCategory - repository error: %v", ErrInternal, err)
	}
	s.logger.Info("DeleteCategory: deleted category id=%d", id)
	return nil
}

// CreateSessionType создает тип занятия
func (s *Service) CreateSessionType(ctx context.Context, req *models.SessionTypeRequest) (*models.SessionTypeResponse, error) {
	if err := validateName(req.Name); err != nil {
		return nil, err
	}

	created, err := s.repo.CreateSessionType(ctx, &domain.SessionType{
		Name:        req.Name,
		Description: req.Description,
		IsActive:    req.IsActive,
	})
	if err != nil {
		s.logger.Error("CreateSessionType: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateSessionType - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateSessionType: created session type id=%d", created.ID)
	return models.FromDomainSessionType(created), nil
}

// GetSessionType получает тип занятия по ID
func (s *Service) GetSessionType(ctx context.Context, id int64) (*models.SessionTypeResponse, error) {
	st, err := s.repo.GetSessionTypeByID(ctx, id)
	if err != nil {
		if errors.Is(err, masterdataRepo.ErrNotFound) {
			return nil, ErrNotFound
		}
		s.logger.Error("GetSessionType: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetSessionType - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainSessionType(st), nil
}

// ListSessionTypes возвращает все типы занятий
func (s *Service) ListSessionTypes(ctx context.Context) ([]*models.SessionTypeResponse, error) {
	sessionTypes, err := s.repo.ListSessionTypes(ctx)
	if err != nil {
		s.logger.Error("ListSessionTypes: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListSessionTypes - repository error: %v", ErrInternal, err)
	}

	result := make([]*models.SessionTypeResponse, 0, len(sessionTypes))
	for _, st := range sessionTypes {
		result = append(result, models.FromDomainSessionType(st))
	}
	return result, nil
}

// UpdateSessionType обновляет тип занятия
func (s *Service) UpdateSessionType(ctx context.Context, id int64, req *models.SessionTypeRequest) (*models.SessionTypeResponse, error) {
	if err := validateName(req.Name); err != nil {
		return nil, err
	}

	err := s.repo.UpdateSessionType(ctx, &domain.SessionType{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		IsActive:    req.IsActive,
	})
	if err != nil {
		if errors.Is(err, masterdataRepo.ErrNotFound) {
			return nil, ErrNotFound
		}
		s.logger.Error("UpdateSessionType: repository error: %v", err)
		return nil, fmt.Errorf("%w: UpdateSessionType - repository error: %v", ErrInternal, err)
	}

	return s.GetSessionType(ctx, id)
}

// DeleteSessionType удаляет тип занятия
func (s *Service) DeleteSessionType(ctx context.Context, id int64) error {
	if err := s.repo.DeleteSessionType(ctx, id); err != nil {
		if errors.Is(err, masterdataRepo.ErrNotFound) {
			return ErrNotFound
		}
		s.logger.Error("DeleteSessionType: repository error: %v", err)
		return fmt.Errorf("%w: DeleteSessionType - repository error: %v", ErrInternal, err)
	}
	s.logger.Info("DeleteSessionType: deleted session type id=%d", id)
	return nil
}

// CreateLocation создает адресную запись
func (s *Service) CreateLocation(ctx context.Context, req *models.LocationRequest) (*models.LocationResponse, error) {
	if err := validateLocation(req); err != nil {
		return nil, err
	}

	created, err := s.repo.CreateLocation(ctx, &domain.Location{
		StreetName: req.StreetName,
		Landmark:   req.Landmark,
		City:       req.City,
		Country:    req.Country,
		Latitude:   req.Latitude,
		Longitude:  req.Longitude,
	})
	if err != nil {
		s.logger.Error("CreateLocation: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateLocation - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateLocation: created location id=%d", created.ID)
	return models.FromDomainLocation(created), nil
}

// GetLocation получает адресную запись по ID
func (s *Service) GetLocation(ctx context.Context, id int64) (*models.LocationResponse, error) {
	l, err := s.repo.GetLocationByID(ctx, id)
	if err != nil {
		if errors.Is(err, masterdataRepo.ErrNotFound) {
			return nil, ErrNotFound
		}
		s.logger.Error("GetLocation: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetLocation - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainLocation(l), nil
}

// ListLocations возвращает все адресные записи
func (s *Service) ListLocations(ctx context.Context) ([]*models.LocationResponse, error) {
	locations, err := s.repo.ListLocations(ctx)
	if err != nil {
		s.logger.Error("ListLocations: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListLocations - repository error: %v", ErrInternal, err)
	}

	result := make([]*models.LocationResponse, 0, len(locations))
	for _, l := range locations {
		result = append(result, models.FromDomainLocation(l))
	}
	return result, nil
}

// UpdateLocation обновляет адресную запись
func (s *Service) UpdateLocation(ctx context.Context, id int64, req *models.LocationRequest) (*models.LocationResponse, error) {
	if err := validateLocation(req); err != nil {
		return nil, err
	}

	err := s.repo.UpdateLocation(ctx, &domain.Location{
		ID:         id,
		StreetName: req.StreetName,
		Landmark:   req.Landmark,
		City:       req.City,
		Country:    req.Country,
		Latitude:   req.Latitude,
		Longitude:  req.Longitude,
	})
	if err != nil {
		if errors.Is(err, masterdataRepo.ErrNotFound) {
			return nil, ErrNotFound
		}
		s.logger.Error("UpdateLocation: repository error: %v", err)
		return nil, fmt.Errorf("%w: UpdateLocation - repository error: %v", ErrInternal, err)
	}

	return s.GetLocation(ctx, id)
}

// DeleteLocation удаляет адресную запись
func (s *Service) DeleteLocation(ctx context.Context, id int64) error {
	if err := s.repo.DeleteLocation(ctx, id); err != nil {
		if errors.Is(err, masterdataRepo.ErrNotFound) {
			return ErrNotFound
		}
		s.logger.Error("DeleteLocation: repository error: %v", err)
		return fmt.Errorf("%w: DeleteLocation - repository error: %v", ErrInternal, err)
	}
	s.logger.Info("DeleteLocation: deleted location id=%d", id)
	return nil
}

// CreateTaxRate создает налоговую ставку
func (s *Service) CreateTaxRate(ctx context.Context, req *models.TaxRateRequest) (*models.TaxRateResponse, error) {
	if err := validateTaxRate(req); err != nil {
		return nil, err
	}

	created, err := s.repo.CreateTaxRate(ctx, &domain.TaxRate{
		Name:     req.Name,
		Percent:  req.Percent,
		IsActive: req.IsActive,
	})
	if err != nil {
		s.logger.Error("CreateTaxRate: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateTaxRate - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateTaxRate: created tax rate id=%d", created.ID)
	return models.FromDomainTaxRate(created), nil
}

// GetTaxRate получает налоговую ставку по ID
func (s *Service) GetTaxRate(ctx context.Context, id int64) (*models.TaxRateResponse, error) {
	t, err := s.repo.GetTaxRateByID(ctx, id)
	if err != nil {
		if errors.Is(err, masterdataRepo.ErrNotFound) {
			return nil, ErrNotFound
		}
		s.logger.Error("GetTaxRate: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetTaxRate - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainTaxRate(t), nil
}

// ListTaxRates возвращает все налоговые ставки
func (s *Service) ListTaxRates(ctx context.Context) ([]*models.TaxRateResponse, error) {
	taxRates, err := s.repo.ListTaxRates(ctx)
	if err != nil {
		s.logger.Error("ListTaxRates: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListTaxRates - repository error: %v", ErrInternal, err)
	}

	result := make([]*models.TaxRateResponse, 0, len(taxRates))
	for _, t := range taxRates {
		result = append(result, models.FromDomainTaxRate(t))
	}
	return result, nil
}

// UpdateTaxRate обновляет налоговую ставку
func (s *Service) UpdateTaxRate(ctx context.Context, id int64, req *models.TaxRateRequest) (*models.TaxRateResponse, error) {
	if err := validateTaxRate(req); err != nil {
		return nil, err
	}

	err := s.repo.UpdateTaxRate(ctx, &domain.TaxRate{
		ID:       id,
		Name:     req.Name,
		Percent:  req.Percent,
		IsActive: req.IsActive,
	})
	if err != nil {
		if errors.Is(err, masterdataRepo.ErrNotFound) {
			return nil, ErrNotFound
		}
		s.logger.Error("UpdateTaxRate: repository error: %v", err)
		return nil, fmt.Errorf("%w: UpdateTaxRate - repository error: %v", ErrInternal, err)
	}

	return s.GetTaxRate(ctx, id)
}

// DeleteTaxRate удаляет налоговую ставку
func (s *Service) DeleteTaxRate(ctx context.Context, id int64) error {
	if err := s.repo.DeleteTaxRate(ctx, id); err != nil {
		if errors.Is(err, masterdataRepo.ErrNotFound) {
			return ErrNotFound
		}
		s.logger.Error("DeleteTaxRate: repository error: %v", err)
		return fmt.Errorf("%w: DeleteTaxRate - repository error: %v", ErrInternal, err)
	}
	s.logger.Info("DeleteTaxRate: deleted tax rate id=%d", id)
	return nil
}

// CreateHoliday создает блэкаут-период
func (s *Service) CreateHoliday(ctx context.Context, req *models.HolidayRequest) (*models.HolidayResponse, error) {
	if err := validateHoliday(req); err != nil {
		return nil, err
	}

	created, err := s.holidays.Create(ctx, &domain.Holiday{
		GroomerID: req.GroomerID,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Reason:    req.Reason,
	})
	if err != nil {
		s.logger.Error("CreateHoliday: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateHoliday - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateHoliday: created holiday id=%d", created.ID)
	return models.FromDomainHoliday(created), nil
}

// GetHoliday получает блэкаут-период по ID
func (s *Service) GetHoliday(ctx context.Context, id int64) (*models.HolidayResponse, error) {
	h, err := s.holidays.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, holidayRepo.ErrHolidayNotFound) {
			return nil, ErrNotFound
		}
		s.logger.Error("GetHoliday: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetHoliday - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainHoliday(h), nil
}

// ListHolidays возвращает все блэкаут-периоды
func (s *Service) ListHolidays(ctx context.Context) ([]*models.HolidayResponse, error) {
	holidays, err := s.holidays.List(ctx)
	if err != nil {
		s.logger.Error("ListHolidays: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListHolidays - repository error: %v", ErrInternal, err)
	}

	result := make([]*models.HolidayResponse, 0, len(holidays))
	for _, h := range holidays {
		result = append(result, models.FromDomainHoliday(h))
	}
	return result, nil
}

// UpdateHoliday обновляет блэкаут-период
func (s *Service) UpdateHoliday(ctx context.Context, id int64, req *models.HolidayRequest) (*models.HolidayResponse, error) {
	if err := validateHoliday(req); err != nil {
		return nil, err
	}

	err := s.holidays.Update(ctx, &domain.Holiday{
		ID:        id,
		GroomerID: req.GroomerID,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Reason:    req.Reason,
	})
	if err != nil {
		if errors.Is(err, holidayRepo.ErrHolidayNotFound) {
			return nil, ErrNotFound
		}
		s.logger.Error("UpdateHoliday: repository error: %v", err)
		return nil, fmt.Errorf("%w: UpdateHoliday - repository error: %v", ErrInternal, err)
	}

	return s.GetHoliday(ctx, id)
}

// DeleteHoliday удаляет блэкаут-период
func (s *Service) DeleteHoliday(ctx context.Context, id int64) error {
	if err := s.holidays.Delete(ctx, id); err != nil {
		if errors.Is(err, holidayRepo.ErrHolidayNotFound) {
			return ErrNotFound
		}
		s.logger.Error("DeleteHoliday: repository error: %v", err)
		return fmt.Errorf("%w: DeleteHoliday - repository error: %v", ErrInternal, err)
	}
	s.logger.Info("DeleteHoliday: deleted holiday id=%d", id)
	return nil
}

func validateLocation(req *models.LocationRequest) error {
	if req.StreetName == "" {
		return fmt.Errorf("%w: streetName is required", ErrInvalidInput)
	}
	if req.City == "" {
		return fmt.Errorf("%w: city is required", ErrInvalidInput)
	}
	if req.Country == "" {
		return fmt.Errorf("%w: country is required", ErrInvalidInput)
	}
	if req.Latitude < -90 || req.Latitude > 90 {
		return fmt.Errorf("%w: latitude out of range", ErrInvalidInput)
	}
	if req.Longitude < -180 || req.Longitude > 180 {
		return fmt.Errorf("%w: longitude out of range", ErrInvalidInput)
	}
	return nil
}

func validateTaxRate(req *models.TaxRateRequest) error {
	if err := validateName(req.Name); err != nil {
		return err
	}
	if req.Percent < 0 || req.Percent > 100 {
		return fmt.Errorf("%w: percent must be between 0 and 100", ErrInvalidInput)
	}
	return nil
}

func validateHoliday(req *models.HolidayRequest) error {
	if req.StartDate.IsZero() || req.EndDate.IsZero() {
		return fmt.Errorf("%w: startDate and endDate are required", ErrInvalidInput)
	}
	if req.EndDate.Before(req.StartDate) {
		return fmt.Errorf("%w: endDate must not precede startDate", ErrInvalidInput)
	}
	if req.GroomerID != nil && *req.GroomerID <= 0 {
		return fmt.Errorf("%w: groomerId must be positive", ErrInvalidInput)
	}
	return nil
}
