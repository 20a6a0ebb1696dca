package http

import (
	"orders/internal/core/application/usecases/queries"
	"orders/internal/core/domain/model/order"
	"orders/internal/generated/servers"
)

func toOrder(o *order.Order) servers.Order {
	delivery := o.Delivery()
	product := o.Product()
	return servers.Order{
		Id:                  o.ID().Int64(),
		UserId:              o.UserID().Int64(),
		ProductId:           product.ProductID().Int64(),
		ProductName:         product.Name(),
		ProductPrice:        product.Price(),
		Quantity:            o.Quantity(),
		Status:              servers.OrderStatus(o.Status().String()),
		Receiver:            delivery.Receiver(),
		ReceiverPhoneNumber: delivery.ReceiverPhoneNumber(),
		DeliveryName:        delivery.Name(),
		DeliveryAddress:     delivery.Address(),
		PostCode:            delivery.PostCode(),
		DeliveryRequest:     delivery.Request(),
		CreatedAt:           o.CreatedAt(),
		ConfirmedAt:         o.ConfirmedAt(),
	}
}

func toOrderDetails(d queries.OrderDetails) servers.Order {
	return servers.Order{
		Id:                  d.ID.Int64(),
		UserId:              d.UserID.Int64(),
		ProductId:           d.ProductID.Int64(),
		ProductName:         d.ProductName,
		ProductPrice:        d.ProductPrice,
		Quantity:            d.Quantity,
		Status:              servers.OrderStatus(d.Status.String()),
		Receiver:            d.Delivery.Receiver,
		ReceiverPhoneNumber: d.Delivery.ReceiverPhoneNumber,
		DeliveryName:        d.Delivery.Name,
		DeliveryAddress:     d.Delivery.Address,
		PostCode:            d.Delivery.PostCode,
		DeliveryRequest:     d.Delivery.Request,
		CreatedAt:           d.CreatedAt,
		ConfirmedAt:         d.ConfirmedAt,
	}
}

// toOrderList keeps Data non-nil so an empty result renders as [].
func toOrderList(list queries.OrderListResponse) servers.OrderList {
	data := make([]servers.OrderSummary, 0, len(list.Orders))
	for _, o := range list.Orders {
		data = append(data, servers.OrderSummary{
			Id:           o.ID.Int64(),
			Status:       servers.OrderStatus(o.Status.String()),
			ProductName:  o.ProductName,
			ProductPrice: o.ProductPrice,
			Quantity:     o.Quantity,
			CreatedAt:    o.CreatedAt,
		})
	}
	return servers.OrderList{OrderCount: list.Count, Data: data}
}

func pageOf(limit *servers.Limit, offset *servers.Offset) (queries.Page, error) {
	return queries.NewPage(deref(limit), deref(offset))
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
