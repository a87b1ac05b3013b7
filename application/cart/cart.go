package cart

import (
	"context"
	"time"

	"github.com/valentinalvarez/ecommerce-accounts/constant"
	"github.com/valentinalvarez/ecommerce-accounts/model"
	cartrepo "github.com/valentinalvarez/ecommerce-accounts/repository/cart"
	productrepo "github.com/valentinalvarez/ecommerce-accounts/repository/product"
	txrepo "github.com/valentinalvarez/ecommerce-accounts/repository/tx"
	"github.com/valentinalvarez/ecommerce-accounts/utils/errors"
	"github.com/valentinalvarez/ecommerce-accounts/utils/logger"
	"go.uber.org/zap"
)

// abandonAfter is how long an untouched active cart stays claimable before
// the cleanup endpoint flags it.
const abandonAfter = 48 * time.Hour

type CartApp interface {
	GetCart(ctx context.Context, userID uint64) (*model.CartDetail, error)
	AddItem(ctx context.Context, userID uint64, req *model.AddCartItemRequest) (*model.CartDetail, error)
	Checkout(ctx context.Context, userID uint64) (*model.CheckoutResponse, error)
	CleanupAbandoned(ctx context.Context) (int64, error)
}

type cartAppImpl struct {
	txRepo      txrepo.TxRepository
	cartRepo    cartrepo.CartRepository
	productRepo productrepo.ProductRepository
}

func NewCartApp(txRepo txrepo.TxRepository, cartRepo cartrepo.CartRepository, productRepo productrepo.ProductRepository) CartApp {
	return &cartAppImpl{txRepo: txRepo, cartRepo: cartRepo, productRepo: productRepo}
}

func (s *cartAppImpl) GetCart(ctx context.Context, userID uint64) (*model.CartDetail, error) {
	cart, err := s.cartRepo.GetActiveCart(ctx, userID)
	if err != nil {
		logger.Error("[GetCart] err cartRepo.GetActiveCart", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if cart == nil {
		return &model.CartDetail{Status: "empty", Items: []model.CartItem{}}, nil
	}

	items, err := s.cartRepo.GetCartItems(ctx, cart.ID)
	if err != nil {
		logger.Error("[GetCart] err cartRepo.GetCartItems", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return buildDetail(cart.ID, items), nil
}

func (s *cartAppImpl) AddItem(ctx context.Context, userID uint64, req *model.AddCartItemRequest) (*model.CartDetail, error) {
	product, err := s.productRepo.GetByID(ctx, req.ProductID)
	if err != nil {
		logger.Error("[AddItem] err productRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if product == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	if product.Stock < int64(req.Quantity) {
		return nil, errors.SetCustomError(constant.ErrInsufficientStock)
	}

	cart, err := s.cartRepo.GetActiveCart(ctx, userID)
	if err != nil {
		logger.Error("[AddItem] err cartRepo.GetActiveCart", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if cart == nil {
		cart, err = s.cartRepo.CreateCart(ctx, userID)
		if err != nil {
			logger.Error("[AddItem] err cartRepo.CreateCart", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
	}

	if err := s.cartRepo.UpsertItem(ctx, cart.ID, req); err != nil {
		logger.Error("[AddItem] err cartRepo.UpsertItem", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	items, err := s.cartRepo.GetCartItems(ctx, cart.ID)
	if err != nil {
		logger.Error("[AddItem] err cartRepo.GetCartItems", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return buildDetail(cart.ID, items), nil
}

// Checkout purchases the active cart in one transaction: every item's stock
// is re-checked under lock, decremented, and the cart flips to purchased.
func (s *cartAppImpl) Checkout(ctx context.Context, userID uint64) (*model.CheckoutResponse, error) {
	cart, err := s.cartRepo.GetActiveCart(ctx, userID)
	if err != nil {
		logger.Error("[Checkout] err cartRepo.GetActiveCart", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if cart == nil {
		return nil, errors.SetCustomError(constant.ErrInvalidCartStatus)
	}

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

	items, err := s.cartRepo.GetCartItemsTx(ctx, tx, cart.ID)
	if err != nil {
		logger.Error("[Checkout] err cartRepo.GetCartItemsTx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if len(items) == 0 {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	var total float64
	for _, item := range items {
		stock, err := s.productRepo.GetAvailableStockTx(ctx, tx, item.ProductID)
		if err != nil {
			logger.Error("[Checkout] err productRepo.GetAvailableStockTx", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		if stock < int64(item.Quantity) {
			logger.Info("[Checkout] insufficient stock",
				zap.Uint64("product_id", item.ProductID), zap.Int("need", item.Quantity), zap.Int64("available", stock))
			return nil, errors.SetCustomError(constant.ErrInsufficientStock)
		}

		if err := s.productRepo.DecrementStockTx(ctx, tx, item.ProductID, item.Quantity); err != nil {
			logger.Error("[Checkout] err productRepo.DecrementStockTx", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}

		total += item.UnitPrice * float64(item.Quantity)
	}

	if err := s.cartRepo.UpdateCartStatusTx(ctx, tx, cart.ID, constant.CartStatusPurchased); err != nil {
		logger.Error("[Checkout] err cartRepo.UpdateCartStatusTx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[Checkout] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	return &model.CheckoutResponse{
		CartID:      cart.ID,
		Total:       total,
		PurchasedAt: time.Now(),
	}, nil
}

// CleanupAbandoned is called by the internal cleanup endpoint.
func (s *cartAppImpl) CleanupAbandoned(ctx context.Context) (int64, error) {
	cutoff := time.Now().Add(-abandonAfter)
	count, err := s.cartRepo.AbandonStale(ctx, cutoff)
	if err != nil {
		logger.Error("[CleanupAbandoned] err cartRepo.AbandonStale", zap.String("error", err.Error()))
		return 0, errors.SetCustomError(constant.ErrInternal)
	}
	return count, nil
}

func buildDetail(cartID uint64, items []model.CartItem) *model.CartDetail {
	var total float64
	for _, it := range items {
		total += it.UnitPrice * float64(it.Quantity)
	}
	return &model.CartDetail{
		CartID: cartID,
		Status: "active",
		Items:  items,
		Total:  total,
	}
}
