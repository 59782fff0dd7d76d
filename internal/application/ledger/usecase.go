package ledger

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/credimovil/backoffice-api/internal/domain"
	"github.com/credimovil/backoffice-api/internal/domain/entity"
	"github.com/credimovil/backoffice-api/internal/domain/repository"
)

// UseCase es el ledger de inventario: único escritor de StockBalance y único
// creador de MovementRecord/TransferRecord. No cachea balances en memoria;
// cada operación relee el estado vigente dentro de una transacción con
// SELECT FOR UPDATE, de modo que dos callers concurrentes sobre el mismo par
// (producto, tienda) se serializan en la fila y no se pierden actualizaciones.
type UseCase struct {
	txRunner     TxRunner
	balanceRepo  repository.BalanceRepository
	movementRepo repository.MovementRepository
	productRepo  repository.ProductRepository
	audit        AuditSink
}

// NewUseCase construye el ledger.
func NewUseCase(
	txRunner TxRunner,
	balanceRepo repository.BalanceRepository,
	movementRepo repository.MovementRepository,
	productRepo repository.ProductRepository,
	audit AuditSink,
) *UseCase {
	return &UseCase{
		txRunner:     txRunner,
		balanceRepo:  balanceRepo,
		movementRepo: movementRepo,
		productRepo:  productRepo,
		audit:        audit,
	}
}

// BalanceRef referencia un balance por su id directo o por
// (código de producto | product_id) + tienda.
type BalanceRef struct {
	BalanceID   string
	ProductID   string
	ProductCode string
	StoreID     string
}

// MovementInput entrada para RecordMovement. Quantity debe ser > 0 para
// entrance/exit; para adjustment lleva el signo del delta y no puede ser 0.
type MovementInput struct {
	Balance        BalanceRef
	Quantity       int64
	Type           string
	Reason         string
	PerformedBy    string
	IdempotencyKey *string
}

// TransferInput entrada para TransferStock.
type TransferInput struct {
	ProductID          string
	OriginStoreID      string
	DestinationStoreID string
	Quantity           int64
	PerformedBy        string
	IdempotencyKey     *string
}

// RecordMovement aplica un movimiento (entrance, exit o adjustment) sobre un
// balance y agrega exactamente un MovementRecord con el delta realmente
// aplicado, todo en una transacción. Una salida que dejaría cualquiera de las
// dos cantidades en negativo falla con ErrInsufficientStock sin escribir nada.
func (uc *UseCase) RecordMovement(ctx context.Context, in MovementInput) (*entity.StockBalance, error) {
	if !entity.ValidMovementType(in.Type) {
		return nil, domain.ErrInvalidInput
	}
	switch in.Type {
	case entity.MovementTypeAdjustment:
		if in.Quantity == 0 {
			return nil, domain.ErrInvalidInput
		}
	default:
		if in.Quantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
	}
	ref, err := uc.resolveProduct(ctx, in.Balance)
	if err != nil {
		return nil, err
	}

	var updated *entity.StockBalance
	err = uc.txRunner.Run(ctx, func(
		balanceRepo repository.BalanceRepository,
		movementRepo repository.MovementRepository,
		_ repository.TransferRepository,
	) error {
		balance, err := resolveForUpdate(ctx, balanceRepo, ref)
		if err != nil {
			return err
		}

		// Delta según el tipo de movimiento: la entrada y la salida mueven
		// stock y conteo físico juntos; el ajuste reconcilia solo el conteo
		// físico y deja el stock vendible intacto.
		var deltaQty, deltaPhys int64
		switch in.Type {
		case entity.MovementTypeEntrance:
			deltaQty, deltaPhys = in.Quantity, in.Quantity
		case entity.MovementTypeExit:
			deltaQty, deltaPhys = -in.Quantity, -in.Quantity
		case entity.MovementTypeAdjustment:
			deltaQty, deltaPhys = 0, in.Quantity
		}
		newQty := balance.Quantity + deltaQty
		newPhys := balance.PhysicalQuantity + deltaPhys
		if newQty < 0 || newPhys < 0 {
			return domain.ErrInsufficientStock
		}

		if err := balanceRepo.UpdateQuantities(ctx, balance.ID, newQty, newPhys); err != nil {
			return err
		}
		record := &entity.MovementRecord{
			ID:             uuid.New().String(),
			BalanceID:      balance.ID,
			Delta:          deltaPhys,
			Type:           in.Type,
			Reason:         in.Reason,
			PerformedBy:    in.PerformedBy,
			IdempotencyKey: in.IdempotencyKey,
			CreatedAt:      time.Now(),
		}
		if err := movementRepo.Create(ctx, record); err != nil {
			return err
		}

		out := *balance
		out.Quantity = newQty
		out.PhysicalQuantity = newPhys
		updated = &out
		return nil
	})
	if err != nil {
		return nil, timeoutOr(err)
	}

	uc.audit.Record(ctx, "MOVEMENT", in.PerformedBy, "stock_balances", map[string]any{
		"balance_id": updated.ID,
		"type":       in.Type,
		"quantity":   in.Quantity,
		"reason":     in.Reason,
	})
	return updated, nil
}

// TransferStock debita la tienda origen y acredita la destino para el mismo
// producto, creando el balance destino si no existe, y agrega un
// TransferRecord; las cuatro escrituras viajan en una sola transacción, así
// que un fallo posterior al débito deshace también el débito.
func (uc *UseCase) TransferStock(ctx context.Context, in TransferInput) error {
	if in.ProductID == "" || in.OriginStoreID == "" || in.DestinationStoreID == "" {
		return domain.ErrInvalidInput
	}
	if in.OriginStoreID == in.DestinationStoreID || in.Quantity <= 0 {
		return domain.ErrInvalidInput
	}

	err := uc.txRunner.Run(ctx, func(
		balanceRepo repository.BalanceRepository,
		_ repository.MovementRepository,
		transferRepo repository.TransferRepository,
	) error {
		origin, err := balanceRepo.GetByProductAndStoreForUpdate(ctx, in.ProductID, in.OriginStoreID)
		if err != nil {
			return err
		}
		if origin == nil {
			return domain.ErrNotFound
		}
		// Ambas cantidades deben alcanzar: un ajuste negativo previo puede
		// dejar el conteo físico por debajo del stock vendible.
		if origin.Quantity < in.Quantity || origin.PhysicalQuantity < in.Quantity {
			return domain.ErrInsufficientStock
		}
		if err := balanceRepo.UpdateQuantities(ctx, origin.ID,
			origin.Quantity-in.Quantity, origin.PhysicalQuantity-in.Quantity); err != nil {
			return err
		}

		dest, err := balanceRepo.GetByProductAndStoreForUpdate(ctx, in.ProductID, in.DestinationStoreID)
		if err != nil {
			return err
		}
		if dest == nil {
			// Primera llegada del producto a la tienda destino.
			if err := balanceRepo.Create(ctx, &entity.StockBalance{
				ID:               uuid.New().String(),
				StoreID:          in.DestinationStoreID,
				ProductID:        in.ProductID,
				Quantity:         in.Quantity,
				PhysicalQuantity: in.Quantity,
				CreatedAt:        time.Now(),
			}); err != nil {
				return err
			}
		} else {
			if err := balanceRepo.UpdateQuantities(ctx, dest.ID,
				dest.Quantity+in.Quantity, dest.PhysicalQuantity+in.Quantity); err != nil {
				return err
			}
		}

		return transferRepo.Create(ctx, &entity.TransferRecord{
			ID:                 uuid.New().String(),
			ProductID:          in.ProductID,
			OriginStoreID:      in.OriginStoreID,
			DestinationStoreID: in.DestinationStoreID,
			Quantity:           in.Quantity,
			PerformedBy:        in.PerformedBy,
			IdempotencyKey:     in.IdempotencyKey,
			CreatedAt:          time.Now(),
		})
	})
	if err != nil {
		return timeoutOr(err)
	}

	uc.audit.Record(ctx, "TRANSFER", in.PerformedBy, "stock_balances", map[string]any{
		"product_id":  in.ProductID,
		"origin":      in.OriginStoreID,
		"destination": in.DestinationStoreID,
		"quantity":    in.Quantity,
	})
	return nil
}

// SetBalance es el override administrativo: fija ambas cantidades al valor
// contado y persiste el IMEI opcional. No agrega MovementRecord — es una
// corrección, no un evento del ledger. Falla con ErrNotFound si el balance no
// existe (no crea).
func (uc *UseCase) SetBalance(ctx context.Context, ref BalanceRef, quantity int64, imei *string, performedBy string) (*entity.StockBalance, error) {
	if quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	ref, err := uc.resolveProduct(ctx, ref)
	if err != nil {
		return nil, err
	}
	balance, err := uc.resolve(ctx, ref)
	if err != nil {
		return nil, timeoutOr(err)
	}
	if imei == nil {
		imei = balance.IMEI
	}
	if err := uc.balanceRepo.SetQuantities(ctx, balance.ID, quantity, quantity, imei); err != nil {
		return nil, timeoutOr(err)
	}

	uc.audit.Record(ctx, "UPDATE", performedBy, "stock_balances", map[string]any{
		"balance_id": balance.ID,
		"quantity":   quantity,
	})
	out := *balance
	out.Quantity = quantity
	out.PhysicalQuantity = quantity
	out.IMEI = imei
	return &out, nil
}

// ListBalances lista balances con filtros de igualdad y paginación.
func (uc *UseCase) ListBalances(ctx context.Context, filter repository.BalanceFilter, limit, offset int) ([]*entity.StockBalance, error) {
	list, err := uc.balanceRepo.List(ctx, filter, limit, offset)
	if err != nil {
		return nil, timeoutOr(err)
	}
	return list, nil
}

// ListMovements devuelve el historial de movimientos de un balance.
func (uc *UseCase) ListMovements(ctx context.Context, balanceID string, limit, offset int) ([]*entity.MovementRecord, error) {
	if balanceID == "" {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.movementRepo.ListByBalance(ctx, balanceID, limit, offset)
	if err != nil {
		return nil, timeoutOr(err)
	}
	return list, nil
}

// DeleteBalance elimina una fila de balance. Operación administrativa fuera
// de los invariantes del ledger; protegida por rol en el router.
func (uc *UseCase) DeleteBalance(ctx context.Context, id, performedBy string) error {
	balance, err := uc.balanceRepo.GetByID(ctx, id)
	if err != nil {
		return timeoutOr(err)
	}
	if balance == nil {
		return domain.ErrNotFound
	}
	if err := uc.balanceRepo.Delete(ctx, id); err != nil {
		return timeoutOr(err)
	}
	uc.audit.Record(ctx, "DELETE", performedBy, "stock_balances", map[string]any{
		"balance_id": id,
	})
	return nil
}

// resolveProduct resuelve el código de producto a product_id vía el
// directorio de productos, antes de abrir la transacción.
func (uc *UseCase) resolveProduct(ctx context.Context, ref BalanceRef) (BalanceRef, error) {
	if ref.BalanceID != "" || ref.ProductID != "" || ref.ProductCode == "" {
		return ref, nil
	}
	product, err := uc.productRepo.GetByCode(ctx, ref.ProductCode)
	if err != nil {
		return ref, timeoutOr(err)
	}
	if product == nil {
		return ref, domain.ErrNotFound
	}
	ref.ProductID = product.ID
	return ref, nil
}

// resolve localiza el balance sin bloquear la fila (lecturas y override).
func (uc *UseCase) resolve(ctx context.Context, ref BalanceRef) (*entity.StockBalance, error) {
	var (
		balance *entity.StockBalance
		err     error
	)
	switch {
	case ref.BalanceID != "":
		balance, err = uc.balanceRepo.GetByID(ctx, ref.BalanceID)
	case ref.ProductID != "" && ref.StoreID != "":
		balance, err = uc.balanceRepo.GetByProductAndStore(ctx, ref.ProductID, ref.StoreID)
	default:
		return nil, domain.ErrInvalidInput
	}
	if err != nil {
		return nil, err
	}
	if balance == nil {
		return nil, domain.ErrNotFound
	}
	// Si el caller referenció por id y además mandó tienda, deben coincidir.
	if ref.BalanceID != "" && ref.StoreID != "" && balance.StoreID != ref.StoreID {
		return nil, domain.ErrNotFound
	}
	return balance, nil
}

// resolveForUpdate localiza el balance bloqueando la fila (SELECT FOR UPDATE).
func resolveForUpdate(ctx context.Context, balanceRepo repository.BalanceRepository, ref BalanceRef) (*entity.StockBalance, error) {
	var (
		balance *entity.StockBalance
		err     error
	)
	switch {
	case ref.BalanceID != "":
		balance, err = balanceRepo.GetByIDForUpdate(ctx, ref.BalanceID)
	case ref.ProductID != "" && ref.StoreID != "":
		balance, err = balanceRepo.GetByProductAndStoreForUpdate(ctx, ref.ProductID, ref.StoreID)
	default:
		return nil, domain.ErrInvalidInput
	}
	if err != nil {
		return nil, err
	}
	if balance == nil {
		return nil, domain.ErrNotFound
	}
	if ref.BalanceID != "" && ref.StoreID != "" && balance.StoreID != ref.StoreID {
		return nil, domain.ErrNotFound
	}
	return balance, nil
}

// timeoutOr traduce la cancelación del contexto a ErrTimeout. El caller debe
// tratar el timeout como "resultado desconocido": el commit pudo o no haber
// llegado, y solo es seguro reintentar con idempotency_key.
func timeoutOr(err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return domain.ErrTimeout
	}
	return err
}
