package inventory

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/sbmotors/dealership/cmd/config"
	"github.com/sbmotors/dealership/constant"
	"github.com/sbmotors/dealership/model"
	carrepo "github.com/sbmotors/dealership/repository/car"
	redisrepo "github.com/sbmotors/dealership/repository/redis"
	"github.com/sbmotors/dealership/utils/errors"
	"github.com/sbmotors/dealership/utils/ident"
	"github.com/sbmotors/dealership/utils/logger"
)

// InventoryApp is the car catalogue. Public listings are served from a Redis
// cache of the full table and filtered in process; every mutation drops the
// cache key so the next read repopulates it.
type InventoryApp interface {
	ListPublic(ctx context.Context, typeFilter string) ([]model.Car, error)
	ListAll(ctx context.Context) ([]model.Car, error)
	GetCar(ctx context.Context, id string) (*model.Car, error)
	CreateCar(ctx context.Context, req *model.CreateCarRequest) (*model.Car, error)
	UpdateCar(ctx context.Context, id string, req *model.UpdateCarRequest) (*model.Car, error)
	DeleteCar(ctx context.Context, id string) error
}

type inventoryAppImpl struct {
	config    *config.Config
	carRepo   carrepo.CarRepository
	redisRepo redisrepo.Repository
}

func NewInventoryApp(config *config.Config, carRepo carrepo.CarRepository, redisRepo redisrepo.Repository) InventoryApp {
	return &inventoryAppImpl{config: config, carRepo: carRepo, redisRepo: redisRepo}
}

func (s *inventoryAppImpl) ListPublic(ctx context.Context, typeFilter string) ([]model.Car, error) {
	var cars []model.Car
	hit, err := s.redisRepo.GetJSON(ctx, constant.CacheKeyCars, &cars)
	if err != nil {
		logger.Warn("[ListPublic] read car cache", zap.String("error", err.Error()))
	}
	if !hit {
		cars, err = s.carRepo.List(ctx)
		if err != nil {
			logger.Error("[ListPublic] list cars", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		if err := s.redisRepo.SetJSON(ctx, constant.CacheKeyCars, cars, s.config.Redis.CacheTTL); err != nil {
			logger.Warn("[ListPublic] write car cache", zap.String("error", err.Error()))
		}
	}

	return filterByType(cars, typeFilter), nil
}

func (s *inventoryAppImpl) ListAll(ctx context.Context) ([]model.Car, error) {
	cars, err := s.carRepo.List(ctx)
	if err != nil {
		logger.Error("[ListAll] list cars", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return cars, nil
}

func (s *inventoryAppImpl) GetCar(ctx context.Context, id string) (*model.Car, error) {
	car, err := s.carRepo.Get(ctx, id)
	if err != nil {
		logger.Error("[GetCar] get car", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if car == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return car, nil
}

func (s *inventoryAppImpl) CreateCar(ctx context.Context, req *model.CreateCarRequest) (*model.Car, error) {
	car := &model.Car{
		ID:           ident.New("car-"),
		Make:         req.Make,
		Model:        req.Model,
		Year:         req.Year,
		Price:        req.Price,
		Mileage:      req.Mileage,
		Fuel:         defaultString(req.Fuel, "Petrol"),
		Transmission: defaultString(req.Transmission, "Manual"),
		Owner:        defaultString(req.Owner, "1st Owner"),
		Type:         defaultString(req.Type, "sedan"),
		Image:        req.Image,
		Description:  req.Description,
		Status:       defaultString(req.Status, constant.CarStatusAvailable),
	}
	if err := s.carRepo.Insert(ctx, car); err != nil {
		logger.Error("[CreateCar] insert car", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	s.invalidateCache(ctx)
	logger.Info("[CreateCar] created", zap.String("car_id", car.ID))
	return car, nil
}

func (s *inventoryAppImpl) UpdateCar(ctx context.Context, id string, req *model.UpdateCarRequest) (*model.Car, error) {
	existing, err := s.carRepo.Get(ctx, id)
	if err != nil {
		logger.Error("[UpdateCar] get car", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if existing == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	if err := s.carRepo.Update(ctx, id, req); err != nil {
		logger.Error("[UpdateCar] update car", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	updated, err := s.carRepo.Get(ctx, id)
	if err != nil {
		logger.Error("[UpdateCar] reload car", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	s.invalidateCache(ctx)
	return updated, nil
}

func (s *inventoryAppImpl) DeleteCar(ctx context.Context, id string) error {
	existing, err := s.carRepo.Get(ctx, id)
	if err != nil {
		logger.Error("[DeleteCar] get car", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if existing == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}

	if err := s.carRepo.Delete(ctx, id); err != nil {
		logger.Error("[DeleteCar] delete car", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	s.invalidateCache(ctx)
	logger.Info("[DeleteCar] deleted", zap.String("car_id", id))
	return nil
}

func (s *inventoryAppImpl) invalidateCache(ctx context.Context) {
	if err := s.redisRepo.Delete(ctx, constant.CacheKeyCars); err != nil {
		logger.Warn("[invalidateCache] delete car cache", zap.String("error", err.Error()))
	}
}

func filterByType(cars []model.Car, typeFilter string) []model.Car {
	if typeFilter == "" || strings.EqualFold(typeFilter, "all") {
		return cars
	}
	filtered := make([]model.Car, 0, len(cars))
	for _, c := range cars {
		if strings.EqualFold(c.Type, typeFilter) {
			filtered = append(filtered, c)
		}
	}
	return filtered
}

func defaultString(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
