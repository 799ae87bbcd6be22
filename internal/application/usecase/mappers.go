package usecase

import (
	"time"

	"github.com/bapesu/bapesu-api/internal/application/dto"
	"github.com/bapesu/bapesu-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

func nullDecimalPtr(d decimal.NullDecimal) *decimal.Decimal {
	if !d.Valid {
		return nil
	}
	v := d.Decimal
	return &v
}

func toNullDecimal(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: *d, Valid: true}
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:                 p.ID,
		Name:               p.Name,
		Description:        p.Description,
		Category:           p.Category,
		SKU:                p.SKU,
		Barcode:            p.Barcode,
		ImageURL:           p.ImageURL,
		Price:              p.Price,
		CostPrice:          nullDecimalPtr(p.CostPrice),
		DiscountPercentage: p.DiscountPercentage,
		Weight:             nullDecimalPtr(p.Weight),
		Stock:              p.Stock,
		Status:             string(p.Status),
		IsActive:           p.IsActive,
		IsFeatured:         p.IsFeatured,
		Dimensions:         p.Dimensions,
		Tags:               p.Tags,
		Specifications:     p.Specifications,
		SupplierInfo:       p.SupplierInfo,
		InventoryAlerts:    p.InventoryAlerts,
		SEOData:            p.SEOData,
		CreatedBy:          p.CreatedBy,
		CreatedAt:          p.CreatedAt,
		UpdatedAt:          p.UpdatedAt,
	}
}

func toProductResponses(list []*entity.Product) []dto.ProductResponse {
	out := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, *toProductResponse(p))
	}
	return out
}

func toCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	if c == nil {
		return nil
	}
	return &dto.CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Slug:        c.Slug,
		Description: c.Description,
		Color:       c.Color,
		Icon:        c.Icon,
		IsActive:    c.IsActive,
		IsFeatured:  c.IsFeatured,
		SortOrder:   c.SortOrder,
		ParentID:    c.ParentID,
		CreatedBy:   c.CreatedBy,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func toCategoryResponses(list []*entity.Category) []dto.CategoryResponse {
	out := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		out = append(out, *toCategoryResponse(c))
	}
	return out
}

func toOrderResponse(o *entity.Order) *dto.OrderResponse {
	if o == nil {
		return nil
	}
	resp := &dto.OrderResponse{
		ID:              o.ID,
		UserID:          o.UserID,
		CustomerName:    o.CustomerName,
		CustomerEmail:   o.CustomerEmail,
		CustomerPhone:   o.CustomerPhone,
		ShippingAddress: o.ShippingAddress,
		ShippingCity:    o.ShippingCity,
		ShippingState:   o.ShippingState,
		ShippingZipCode: o.ShippingZipCode,
		ShippingCountry: o.ShippingCountry,
		Subtotal:        o.Subtotal,
		ShippingCost:    o.ShippingCost,
		TotalAmount:     o.TotalAmount,
		PaymentMethod:   o.PaymentMethod,
		ShippingMethod:  o.ShippingMethod,
		Status:          string(o.Status),
		Comments:        o.Comments,
		WhatsappSent:    o.WhatsappSent,
		TrackingNumber:  o.TrackingNumber,
		TrackingURL:     o.TrackingURL,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
	if o.Items != nil {
		resp.Items = make([]dto.OrderItemResponse, 0, len(o.Items))
		for _, it := range o.Items {
			resp.Items = append(resp.Items, dto.OrderItemResponse{
				ID:           it.ID,
				OrderID:      it.OrderID,
				ProductID:    it.ProductID,
				ProductName:  it.ProductName,
				ProductPrice: it.ProductPrice,
				Quantity:     it.Quantity,
				TotalPrice:   it.TotalPrice,
				CreatedAt:    it.CreatedAt,
			})
		}
	}
	return resp
}

func toOrderResponses(list []*entity.Order) []dto.OrderResponse {
	out := make([]dto.OrderResponse, 0, len(list))
	for _, o := range list {
		out = append(out, *toOrderResponse(o))
	}
	return out
}

func toRatingResponse(r *entity.ProductRating) *dto.RatingResponse {
	if r == nil {
		return nil
	}
	resp := &dto.RatingResponse{
		ID:         r.ID,
		ProductID:  r.ProductID,
		UserID:     r.UserID,
		OrderID:    r.OrderID,
		Rating:     r.Rating,
		Comment:    r.Comment,
		IsApproved: r.IsApproved,
		IsFlagged:  r.IsFlagged,
		FlagReason: r.FlagReason,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
	if r.ReviewerFirstName != "" || r.ReviewerLastName != "" {
		resp.Reviewer = &dto.ReviewerResponse{FirstName: r.ReviewerFirstName, LastName: r.ReviewerLastName}
	}
	return resp
}

func toRatingResponses(list []*entity.ProductRating) []dto.RatingResponse {
	out := make([]dto.RatingResponse, 0, len(list))
	for _, r := range list {
		out = append(out, *toRatingResponse(r))
	}
	return out
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Role:      u.Role,
		IsActive:  u.IsActive,
		Phone:     u.Phone,
		AvatarURL: u.AvatarURL,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func toUserResponses(list []*entity.User) []dto.UserResponse {
	out := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		out = append(out, *toUserResponse(u))
	}
	return out
}

func toDailyMetricsResponse(m *entity.DailyMetrics) dto.DailyMetricsResponse {
	return dto.DailyMetricsResponse{
		Date:             m.Date.Format(time.DateOnly),
		TotalOrders:      m.TotalOrders,
		TotalRevenue:     m.TotalRevenue,
		PendingOrders:    m.PendingOrders,
		NewUsers:         m.NewUsers,
		ActiveProducts:   m.ActiveProducts,
		LowStockProducts: m.LowStockProducts,
		UpdatedAt:        m.UpdatedAt,
	}
}

func toActivityResponses(list []*entity.Activity) []dto.ActivityResponse {
	out := make([]dto.ActivityResponse, 0, len(list))
	for _, a := range list {
		out = append(out, dto.ActivityResponse{
			ID:           a.ID,
			ActivityType: a.ActivityType,
			EntityID:     a.EntityID,
			EntityName:   a.EntityName,
			UserID:       a.UserID,
			UserName:     a.UserName,
			Metadata:     a.Metadata,
			CreatedAt:    a.CreatedAt,
		})
	}
	return out
}
