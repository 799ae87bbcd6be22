package ports

import "github.com/bapesu/bapesu-api/internal/domain/entity"

// ReceiptRenderer genera el comprobante PDF de un pedido (con sus items cargados).
type ReceiptRenderer interface {
	RenderOrderReceipt(order *entity.Order) ([]byte, error)
}
