package cart

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/sbmotors/dealership/constant"
	"github.com/sbmotors/dealership/model"
	carrepo "github.com/sbmotors/dealership/repository/car"
	cartrepo "github.com/sbmotors/dealership/repository/cart"
	redisrepo "github.com/sbmotors/dealership/repository/redis"
	salerepo "github.com/sbmotors/dealership/repository/sale"
	txrepo "github.com/sbmotors/dealership/repository/tx"
	"github.com/sbmotors/dealership/thirdparty/rabbitmq"
	"github.com/sbmotors/dealership/utils/errors"
	"github.com/sbmotors/dealership/utils/ident"
	"github.com/sbmotors/dealership/utils/logger"
)

// CartApp manages per-session shopping carts and turns them into sales. A
// cart is a JSON array of car ids keyed by the customer session token;
// duplicates are legal and each occurrence becomes its own order line at
// checkout.
type CartApp interface {
	Add(ctx context.Context, sessionID, carID string) (int, error)
	Remove(ctx context.Context, sessionID, carID string) (int, error)
	Clear(ctx context.Context, sessionID string) error
	List(ctx context.Context, sessionID string) ([]model.Car, error)
	Checkout(ctx context.Context, sessionID string) (*model.CheckoutResponse, error)
}

type cartAppImpl struct {
	txRepo    txrepo.TxRepository
	cartRepo  cartrepo.CartRepository
	carRepo   carrepo.CarRepository
	saleRepo  salerepo.SaleRepository
	redisRepo redisrepo.Repository
	publisher *rabbitmq.Publisher
}

func NewCartApp(txRepo txrepo.TxRepository, cartRepo cartrepo.CartRepository, carRepo carrepo.CarRepository, saleRepo salerepo.SaleRepository, redisRepo redisrepo.Repository, publisher *rabbitmq.Publisher) CartApp {
	return &cartAppImpl{
		txRepo:    txRepo,
		cartRepo:  cartRepo,
		carRepo:   carRepo,
		saleRepo:  saleRepo,
		redisRepo: redisRepo,
		publisher: publisher,
	}
}

// Add appends the car to the cart. Two concurrent adds to the same session
// may collapse into one entry because the whole list is rewritten; the cart
// is per-customer so the window is harmless.
func (s *cartAppImpl) Add(ctx context.Context, sessionID, carID string) (int, error) {
	car, err := s.carRepo.Get(ctx, carID)
	if err != nil {
		logger.Error("[CartAdd] get car", zap.String("error", err.Error()))
		return 0, errors.SetCustomError(constant.ErrInternal)
	}
	if car == nil {
		return 0, errors.SetCustomError(constant.ErrNotFound)
	}

	items, err := s.loadItems(ctx, sessionID)
	if err != nil {
		return 0, err
	}
	items = append(items, carID)
	if err := s.storeItems(ctx, sessionID, items); err != nil {
		return 0, err
	}
	return len(items), nil
}

// Remove drops one occurrence of the car id, keeping any duplicates.
func (s *cartAppImpl) Remove(ctx context.Context, sessionID, carID string) (int, error) {
	items, err := s.loadItems(ctx, sessionID)
	if err != nil {
		return 0, err
	}

	kept := make([]string, 0, len(items))
	removed := false
	for _, id := range items {
		if !removed && id == carID {
			removed = true
			continue
		}
		kept = append(kept, id)
	}
	if err := s.storeItems(ctx, sessionID, kept); err != nil {
		return 0, err
	}
	return len(kept), nil
}

func (s *cartAppImpl) Clear(ctx context.Context, sessionID string) error {
	if err := s.cartRepo.Delete(ctx, sessionID); err != nil {
		logger.Error("[CartClear] delete cart", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

// List resolves the cart into car rows. Ids whose car has been deleted since
// they were added are silently dropped from the view; the stored list is left
// untouched.
func (s *cartAppImpl) List(ctx context.Context, sessionID string) ([]model.Car, error) {
	items, err := s.loadItems(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	cars := make([]model.Car, 0, len(items))
	for _, id := range items {
		car, err := s.carRepo.Get(ctx, id)
		if err != nil {
			logger.Error("[CartList] get car", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		if car == nil {
			continue
		}
		cars = append(cars, *car)
	}
	return cars, nil
}

// Checkout converts every resolvable cart entry into a sale, marks the cars
// sold and empties the cart, all in one transaction. Entries whose car no
// longer exists are skipped without failing the rest of the order.
func (s *cartAppImpl) Checkout(ctx context.Context, sessionID string) (*model.CheckoutResponse, error) {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[Checkout] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	cart, err := s.cartRepo.GetTx(ctx, tx, sessionID)
	if err != nil {
		logger.Error("[Checkout] get cart", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	items := decodeItems(cart)
	if len(items) == 0 {
		return nil, errors.SetCustomError(constant.ErrEmptyCart)
	}

	now := time.Now()
	orders := make([]string, 0, len(items))
	messages := make([]rabbitmq.SaleRecordedMessage, 0, len(items))
	for _, carID := range items {
		car, err := s.carRepo.GetTx(ctx, tx, carID)
		if err != nil {
			logger.Error("[Checkout] get car", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		if car == nil {
			logger.Info("[Checkout] skipping missing car", zap.String("car_id", carID))
			continue
		}

		sale := &model.SaleEntity{
			OrderID:   ident.New("ord-"),
			SessionID: sessionID,
			CarID:     car.ID,
			Price:     car.Price,
			Timestamp: now,
		}
		if err := s.saleRepo.InsertTx(ctx, tx, sale); err != nil {
			logger.Error("[Checkout] insert sale", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		if err := s.carRepo.SetStatusTx(ctx, tx, car.ID, constant.CarStatusSold); err != nil {
			logger.Error("[Checkout] mark car sold", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		orders = append(orders, sale.OrderID)
		messages = append(messages, rabbitmq.SaleRecordedMessage{
			OrderID:   sale.OrderID,
			SessionID: sale.SessionID,
			CarID:     sale.CarID,
			Price:     sale.Price,
			Timestamp: sale.Timestamp,
		})
	}

	if err := s.cartRepo.DeleteTx(ctx, tx, sessionID); err != nil {
		logger.Error("[Checkout] clear cart", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[Checkout] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	if err := s.redisRepo.Delete(ctx, constant.CacheKeyCars); err != nil {
		logger.Warn("[Checkout] invalidate car cache", zap.String("error", err.Error()))
	}
	if s.publisher != nil {
		for _, msg := range messages {
			if err := s.publisher.PublishSaleRecorded(msg); err != nil {
				logger.Error("[Checkout] publish sale", zap.String("error", err.Error()))
			}
		}
	}

	logger.Info("[Checkout] completed", zap.String("session_id", sessionID), zap.Int("orders", len(orders)))
	return &model.CheckoutResponse{Message: "checkout completed", Orders: orders}, nil
}

func (s *cartAppImpl) loadItems(ctx context.Context, sessionID string) ([]string, error) {
	cart, err := s.cartRepo.Get(ctx, sessionID)
	if err != nil {
		logger.Error("[CartLoad] get cart", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return decodeItems(cart), nil
}

func (s *cartAppImpl) storeItems(ctx context.Context, sessionID string, items []string) error {
	body, err := json.Marshal(items)
	if err != nil {
		logger.Error("[CartStore] marshal items", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	entity := &model.CartEntity{SessionID: sessionID, ItemsJSON: string(body), UpdatedAt: time.Now()}
	if err := s.cartRepo.Upsert(ctx, entity); err != nil {
		logger.Error("[CartStore] upsert cart", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

// decodeItems tolerates a missing row and a corrupt column; both read as an
// empty cart.
func decodeItems(cart *model.CartEntity) []string {
	if cart == nil || cart.ItemsJSON == "" {
		return []string{}
	}
	var items []string
	if err := json.Unmarshal([]byte(cart.ItemsJSON), &items); err != nil {
		logger.Warn("[decodeItems] corrupt cart payload", zap.String("session_id", cart.SessionID))
		return []string{}
	}
	return items
}
