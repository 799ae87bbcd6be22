package usecase

import (
	"context"
	"strings"

	"github.com/bapesu/bapesu-api/internal/application/dto"
	"github.com/bapesu/bapesu-api/internal/application/ports"
	"github.com/bapesu/bapesu-api/internal/application/validation"
	"github.com/bapesu/bapesu-api/internal/domain"
	"github.com/bapesu/bapesu-api/internal/domain/entity"
	"github.com/bapesu/bapesu-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// OrderUseCase checkout, consulta y gestión administrativa de pedidos.
type OrderUseCase struct {
	repo     repository.OrderRepository
	tx       repository.OrderTxRunner
	receipts ports.ReceiptRenderer
	activity ports.ActivityRecorder
}

// NewOrderUseCase construye el caso de uso. receipts y activity pueden ser nil.
func NewOrderUseCase(
	repo repository.OrderRepository,
	tx repository.OrderTxRunner,
	receipts ports.ReceiptRenderer,
	activity ports.ActivityRecorder,
) *OrderUseCase {
	return &OrderUseCase{repo: repo, tx: tx, receipts: receipts, activity: recorderOrNop(activity)}
}

// Create registra cabecera e items en una sola transacción. total_price = price × quantity.
func (uc *OrderUseCase) Create(ctx context.Context, actor Actor, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	var negative []string
	for _, f := range []struct {
		name  string
		value *decimal.Decimal
	}{
		{"subtotal", in.Subtotal}, {"shipping_cost", in.ShippingCost}, {"total_amount", in.TotalAmount},
	} {
		if f.value.IsNegative() {
			negative = append(negative, f.name)
		}
	}
	for _, it := range in.Items {
		if it.Price.IsNegative() {
			negative = append(negative, "items.price")
			break
		}
	}
	if len(negative) > 0 {
		return nil, domain.NewValidationError("Los montos no pueden ser negativos", negative...)
	}

	order := &entity.Order{
		UserID:          actor.ID,
		CustomerName:    strings.TrimSpace(in.CustomerName),
		CustomerEmail:   strings.TrimSpace(in.CustomerEmail),
		CustomerPhone:   strings.TrimSpace(in.CustomerPhone),
		ShippingAddress: in.ShippingAddress,
		ShippingCity:    in.ShippingCity,
		ShippingState:   in.ShippingState,
		ShippingZipCode: in.ShippingZipCode,
		ShippingCountry: in.ShippingCountry,
		Subtotal:        *in.Subtotal,
		ShippingCost:    *in.ShippingCost,
		TotalAmount:     *in.TotalAmount,
		PaymentMethod:   in.PaymentMethod,
		ShippingMethod:  in.ShippingMethod,
		Status:          entity.OrderPending,
		Comments:        in.Comments,
		WhatsappSent:    true,
	}
	if order.ShippingCountry == "" {
		order.ShippingCountry = entity.DefaultShippingCountry
	}
	if in.WhatsappSent != nil {
		order.WhatsappSent = *in.WhatsappSent
	}

	err := uc.tx.RunOrder(ctx, func(orders repository.OrderRepository) error {
		if err := orders.Create(ctx, order); err != nil {
			return err
		}
		order.Items = make([]entity.OrderItem, 0, len(in.Items))
		for _, it := range in.Items {
			item := entity.OrderItem{
				OrderID:      order.ID,
				ProductID:    it.ProductID,
				ProductName:  it.Name,
				ProductPrice: *it.Price,
				Quantity:     it.Quantity,
				TotalPrice:   entity.LineTotal(*it.Price, it.Quantity),
			}
			if err := orders.AddItem(ctx, &item); err != nil {
				return err
			}
			order.Items = append(order.Items, item)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.activity.Record(ctx, activity(entity.ActivityOrderCreated, actor, order.ID, order.CustomerName,
		map[string]any{"total_amount": order.TotalAmount.String(), "items": len(order.Items)}))
	return toOrderResponse(order), nil
}

// GetForUser devuelve el pedido con items solo si pertenece al usuario.
func (uc *OrderUseCase) GetForUser(ctx context.Context, userID, id string) (*dto.OrderResponse, error) {
	o, err := uc.loadWithItems(ctx, id)
	if err != nil {
		return nil, err
	}
	if o.UserID != userID {
		return nil, domain.ErrNotFound
	}
	return toOrderResponse(o), nil
}

// Get devuelve cualquier pedido con items (administración).
func (uc *OrderUseCase) Get(ctx context.Context, id string) (*dto.OrderResponse, error) {
	o, err := uc.loadWithItems(ctx, id)
	if err != nil {
		return nil, err
	}
	return toOrderResponse(o), nil
}

func (uc *OrderUseCase) loadWithItems(ctx context.Context, id string) (*entity.Order, error) {
	o, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, domain.ErrNotFound
	}
	items, err := uc.repo.Items(ctx, id)
	if err != nil {
		return nil, err
	}
	o.Items = items
	return o, nil
}

// ListForUser pedidos del usuario, más recientes primero.
func (uc *OrderUseCase) ListForUser(ctx context.Context, userID string, page, perPage int) (*dto.ListResult[dto.OrderResponse], error) {
	return uc.list(ctx, repository.OrderFilter{UserID: userID}, page, perPage)
}

// ListAll todos los pedidos, opcionalmente filtrados por estado.
func (uc *OrderUseCase) ListAll(ctx context.Context, status string, page, perPage int) (*dto.ListResult[dto.OrderResponse], error) {
	status = ignoreAll(status)
	if status != "" && !entity.OrderStatus(status).Valid() {
		return nil, invalidOrderStatus()
	}
	return uc.list(ctx, repository.OrderFilter{Status: status}, page, perPage)
}

func (uc *OrderUseCase) list(ctx context.Context, f repository.OrderFilter, page, perPage int) (*dto.ListResult[dto.OrderResponse], error) {
	list, total, err := uc.repo.List(ctx, f, repository.Page{Number: page, Size: perPage})
	if err != nil {
		return nil, err
	}
	return &dto.ListResult[dto.OrderResponse]{
		Items:      toOrderResponses(list),
		Pagination: dto.NewPagination(page, perPage, total),
	}, nil
}

// UpdateStatus cambia el estado del pedido.
func (uc *OrderUseCase) UpdateStatus(ctx context.Context, actor Actor, id string, in dto.UpdateOrderStatusRequest) (*dto.OrderResponse, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	status := entity.OrderStatus(in.Status)
	if !status.Valid() {
		return nil, invalidOrderStatus()
	}
	ok, err := uc.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrNotFound
	}
	uc.activity.Record(ctx, activity(entity.ActivityOrderStatus, actor, id, "", map[string]any{"status": status}))
	return uc.Get(ctx, id)
}

// Update modifica únicamente los campos permitidos para administración.
func (uc *OrderUseCase) Update(ctx context.Context, actor Actor, id string, in dto.UpdateOrderRequest) (*dto.OrderResponse, error) {
	if in.Empty() {
		return nil, domain.NewValidationError("No hay campos válidos para actualizar")
	}
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	o, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, domain.ErrNotFound
	}

	if in.Status != nil {
		st := entity.OrderStatus(*in.Status)
		if !st.Valid() {
			return nil, invalidOrderStatus()
		}
		o.Status = st
	}
	setString(&o.CustomerName, in.CustomerName)
	setString(&o.CustomerEmail, in.CustomerEmail)
	setString(&o.CustomerPhone, in.CustomerPhone)
	setString(&o.ShippingAddress, in.ShippingAddress)
	setString(&o.ShippingCity, in.ShippingCity)
	setString(&o.ShippingState, in.ShippingState)
	setString(&o.ShippingZipCode, in.ShippingZipCode)
	setString(&o.Comments, in.Comments)
	setString(&o.TrackingNumber, in.TrackingNumber)
	setString(&o.TrackingURL, in.TrackingURL)

	if err := uc.repo.Update(ctx, o); err != nil {
		return nil, err
	}
	uc.activity.Record(ctx, activity(entity.ActivityOrderStatus, actor, id, o.CustomerName,
		map[string]any{"status": o.Status, "tracking_number": o.TrackingNumber}))
	return uc.Get(ctx, id)
}

// Delete elimina el pedido y sus items.
func (uc *OrderUseCase) Delete(ctx context.Context, actor Actor, id string) error {
	ok, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	uc.activity.Record(ctx, activity(entity.ActivityOrderDeleted, actor, id, "", nil))
	return nil
}

// Stats total, conteo por estado y ventas entregadas.
func (uc *OrderUseCase) Stats(ctx context.Context) (*dto.OrderStatsResponse, error) {
	s, err := uc.repo.Stats(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.OrderStatsResponse{
		TotalOrders:  s.Total,
		StatusCounts: s.StatusCounts,
		TotalSales:   s.TotalSales,
	}, nil
}

// Receipt genera el comprobante PDF de un pedido propio.
func (uc *OrderUseCase) Receipt(ctx context.Context, userID, id string) ([]byte, error) {
	if uc.receipts == nil {
		return nil, domain.ErrNotFound
	}
	o, err := uc.loadWithItems(ctx, id)
	if err != nil {
		return nil, err
	}
	if o.UserID != userID {
		return nil, domain.ErrNotFound
	}
	return uc.receipts.RenderOrderReceipt(o)
}

func invalidOrderStatus() error {
	names := make([]string, 0, len(entity.OrderStatuses))
	for _, s := range entity.OrderStatuses {
		names = append(names, string(s))
	}
	return domain.NewValidationError("Estado inválido. Estados válidos: "+strings.Join(names, ", "), "status")
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = strings.TrimSpace(*v)
	}
}
