package subscriptions

import (
	"context"
	"errors"
	"fmt"

	"github.com/petfit/booking-service/internal/domain"
	subscriptionRepo "github.com/petfit/booking-service/internal/infra/storage/subscription"
	"github.com/petfit/booking-service/internal/service/subscriptions/models"
)

// Service сервис для работы с подписками
type Service struct {
	repo         SubscriptionRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса подписок
func NewService(repo SubscriptionRepository, txManager TransactionManager, logger Logger) *Service {
	return &Service{
		repo:         repo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Create создает подписку после проверки дат и времени
func (s *Service) Create(ctx context.Context, req *models.CreateSubscriptionRequest) (*models.SubscriptionResponse, error) {
	s.logger.Info("Create: creating subscription name=%q trainer=%d", req.Name, req.TrainerID)

	if err := validateCommonFields(req.Name, req.CategoryID, req.SessionTypeID, req.TrainerID, req.LocationID, req.Price); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	now := s.timeProvider.Now()
	if err := validateDatesAndTimes(req.StartDate, req.EndDate, req.StartTime, req.EndTime, req.IsSingleClass, now); err != nil {
		s.logger.Warn("Create: date validation failed: %v", err)
		return nil, err
	}

	subscription := &domain.Subscription{
		Name:          req.Name,
		CategoryID:    req.CategoryID,
		SessionTypeID: req.SessionTypeID,
		TrainerID:     req.TrainerID,
		LocationID:    req.LocationID,
		Price:         req.Price,
		MediaURL:      req.MediaURL,
		Description:   req.Description,
		IsSingleClass: req.IsSingleClass,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		StartTime:     req.StartTime,
		EndTime:       req.EndTime,
		IsActive:      true,
		CreatedBy:     req.CreatedBy,
	}

	created, err := s.repo.Create(ctx, subscription)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created subscription id=%d", created.ID)
	return models.FromDomainSubscription(created), nil
}

// Update обновляет подписку; даты и время проходят ту же проверку,
// что и при создании
func (s *Service) Update(ctx context.Context, req *models.UpdateSubscriptionRequest) (*models.SubscriptionResponse, error) {
	s.logger.Info("Update: updating subscription id=%d", req.ID)

	if req.ID <= 0 {
		return nil, fmt.Errorf("%w: id must be positive", ErrInvalidInput)
	}

	if err := validateCommonFields(req.Name, req.CategoryID, req.SessionTypeID, req.TrainerID, req.LocationID, req.Price); err != nil {
		s.logger.Warn("Update: validation failed: %v", err)
		return nil, err
	}

	now := s.timeProvider.Now()
	if err := validateDatesAndTimes(req.StartDate, req.EndDate, req.StartTime, req.EndTime, req.IsSingleClass, now); err != nil {
		s.logger.Warn("Update: date validation failed: %v", err)
		return nil, err
	}

	subscription := &domain.Subscription{
		ID:            req.ID,
		Name:          req.Name,
		CategoryID:    req.CategoryID,
		SessionTypeID: req.SessionTypeID,
		TrainerID:     req.TrainerID,
		LocationID:    req.LocationID,
		Price:         req.Price,
		MediaURL:      req.MediaURL,
		Description:   req.Description,
		IsSingleClass: req.IsSingleClass,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		StartTime:     req.StartTime,
		EndTime:       req.EndTime,
		IsActive:      req.IsActive,
		UpdatedBy:     req.UpdatedBy,
	}

	if err := s.repo.Update(ctx, subscription); err != nil {
		if errors.Is(err, subscriptionRepo.ErrSubscriptionNotFound) {
			s.logger.Warn("Update: subscription id=%d not found", req.ID)
			return nil, ErrSubscriptionNotFound
		}
		s.logger.Error("Update: repository error: %v", err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	updated, err := s.repo.GetByID(ctx, req.ID)
	if err != nil {
		s.logger.Error("Update: failed to reload subscription id=%d: %v", req.ID, err)
		return nil, fmt.Errorf("%w: Update - reload error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated subscription id=%d", req.ID)
	return models.FromDomainSubscription(updated), nil
}

// GetByID получает подписку по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.SubscriptionResponse, error) {
	s.logger.Info("GetByID: fetching subscription id=%d", id)

	subscription, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, subscriptionRepo.ErrSubscriptionNotFound) {
			s.logger.Warn("GetByID: subscription id=%d not found", id)
			return nil, ErrSubscriptionNotFound
		}
		s.logger.Error("GetByID: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSubscription(subscription), nil
}

// Delete удаляет подписку
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting subscription id=%d", id)

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, subscriptionRepo.ErrSubscriptionNotFound) {
			s.logger.Warn("Delete: subscription id=%d not found", id)
			return ErrSubscriptionNotFound
		}
		s.logger.Error("Delete: repository error: %v", err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted subscription id=%d", id)
	return nil
}

// List возвращает подписки по фильтру с пагинацией.
// Перед выборкой запускает ленивый sweep истечения: флаг is_expired
// в ответе не отстаёт от дат больше, чем на один запрос.
func (s *Service) List(ctx context.Context, req *models.FilterRequest) (*models.SubscriptionListResponse, error) {
	s.logger.Info("List: fetching subscriptions page=%d limit=%d", req.Page, req.Limit)

	if _, err := s.RecomputeExpiry(ctx); err != nil {
		// Выборка важнее актуальности флага
		s.logger.Warn("List: expiry sweep failed: %v", err)
	}

	filter := req.ToDomainFilter()

	subscriptions, err := s.repo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		s.logger.Error("List: count error: %v", err)
		return nil, fmt.Errorf("%w: List - count error: %v", ErrInternal, err)
	}

	resp := models.FromDomainSubscriptionList(subscriptions, total)
	resp.Page = req.Page
	resp.Limit = req.Limit
	return resp, nil
}

// Search ищет подписки по подстроке имени
func (s *Service) Search(ctx context.Context, keyword string) (*models.SubscriptionListResponse, error) {
	s.logger.Info("Search: keyword=%q", keyword)

	if keyword == "" {
		return nil, fmt.Errorf("%w: keyword is required", ErrInvalidInput)
	}

	subscriptions, err := s.repo.SearchByName(ctx, keyword)
	if err != nil {
		s.logger.Error("Search: repository error: %v", err)
		return nil, fmt.Errorf("%w: Search - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSubscriptionList(subscriptions, int64(len(subscriptions))), nil
}

// GetByTrainer возвращает подписки тренера, опционально по истечению
func (s *Service) GetByTrainer(ctx context.Context, trainerID int64, isExpired *bool) (*models.SubscriptionListResponse, error) {
	s.logger.Info("GetByTrainer: trainer=%d", trainerID)

	if trainerID <= 0 {
		return nil, fmt.Errorf("%w: trainerID must be positive", ErrInvalidInput)
	}

	subscriptions, err := s.repo.GetByTrainer(ctx, trainerID, isExpired)
	if err != nil {
		s.logger.Error("GetByTrainer: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetByTrainer - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSubscriptionList(subscriptions, int64(len(subscriptions))), nil
}

// GetByLocation возвращает подписки по адресной записи
func (s *Service) GetByLocation(ctx context.Context, locationID int64) (*models.SubscriptionListResponse, error) {
	s.logger.Info("GetByLocation: location=%d", locationID)

	if locationID <= 0 {
		return nil, fmt.Errorf("%w: locationID must be positive", ErrInvalidInput)
	}

	subscriptions, err := s.repo.GetByLocation(ctx, locationID)
	if err != nil {
		s.logger.Error("GetByLocation: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetByLocation - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSubscriptionList(subscriptions, int64(len(subscriptions))), nil
}

// GetByDateWindow возвращает подписки, действующие в окне дат
func (s *Service) GetByDateWindow(ctx context.Context, window domain.DateWindow) (*models.SubscriptionListResponse, error) {
	s.logger.Info("GetByDateWindow: from=%s to=%s",
		window.From.Format(domain.DateFormat), window.To.Format(domain.DateFormat))

	if window.From.IsZero() || window.To.IsZero() {
		return nil, fmt.Errorf("%w: date window is required", ErrInvalidInput)
	}
	if window.To.Before(window.From) {
		return nil, ErrDateRangeInverted
	}

	subscriptions, err := s.repo.GetByDateWindow(ctx, window)
	if err != nil {
		s.logger.Error("GetByDateWindow: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetByDateWindow - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSubscriptionList(subscriptions, int64(len(subscriptions))), nil
}

// GetNearby возвращает подписки в радиусе от точки.
// Выборка оборачивается в read-only транзакцию: join с локациями
// читается из одного снимка.
func (s *Service) GetNearby(ctx context.Context, req *models.NearbyRequest) (*models.SubscriptionListResponse, error) {
	radiusMiles := domain.DefaultNearbyRadiusMiles
	if req.RadiusMiles != nil {
		radiusMiles = *req.RadiusMiles
	}

	s.logger.Info("GetNearby: lat=%f lon=%f radius=%.1fmi", req.Latitude, req.Longitude, radiusMiles)

	if req.Latitude < -90 || req.Latitude > 90 {
		return nil, fmt.Errorf("%w: latitude out of range", ErrInvalidInput)
	}
	if req.Longitude < -180 || req.Longitude > 180 {
		return nil, fmt.Errorf("%w: longitude out of range", ErrInvalidInput)
	}
	if radiusMiles <= 0 {
		return nil, fmt.Errorf("%w: radius must be positive", ErrInvalidInput)
	}

	var subscriptions []*domain.Subscription
	err := s.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
		var err error
		subscriptions, err = s.repo.GetNearby(txCtx, req.Latitude, req.Longitude, radiusMiles*domain.MetersPerMile)
		return err
	})
	if err != nil {
		s.logger.Error("GetNearby: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetNearby - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSubscriptionList(subscriptions, int64(len(subscriptions))), nil
}

// RecomputeExpiry проставляет is_expired подпискам с прошедшей последней
// датой. Идемпотентен: повторный запуск с тем же "сейчас" ничего не меняет.
func (s *Service) RecomputeExpiry(ctx context.Context) (int64, error) {
	now := s.timeProvider.Now()

	affected, err := s.repo.MarkExpired(ctx, now)
	if err != nil {
		return 0, fmt.Errorf("%w: RecomputeExpiry - repository error: %v", ErrInternal, err)
	}

	if affected > 0 {
		s.logger.Info("RecomputeExpiry: marked %d subscriptions expired", affected)
	}
	return affected, nil
}

// GetExpired возвращает истёкшие подписки, предварительно прогнав sweep
func (s *Service) GetExpired(ctx context.Context) (*models.SubscriptionListResponse, error) {
	s.logger.Info("GetExpired: fetching expired subscriptions")

	if _, err := s.RecomputeExpiry(ctx); err != nil {
		s.logger.Warn("GetExpired: expiry sweep failed: %v", err)
	}

	expired := true
	filter := domain.SubscriptionFilter{IsExpired: &expired}

	subscriptions, err := s.repo.List(ctx, filter)
	if err != nil {
		s.logger.Error("GetExpired: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetExpired - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSubscriptionList(subscriptions, int64(len(subscriptions))), nil
}
