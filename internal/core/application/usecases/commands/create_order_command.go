package commands

import (
	"errors"
	"fmt"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrQuantityIsInvalid = errors.New("quantity must be greater than 0")
)

// CreateOrderCommand represents a purchase of quantity items of one product,
// placed by userID and shipped to delivery.
//
// Example:
//
//	delivery, _ := order.NewDelivery("Kim", "010-1234-5678", "Home", "1 Main St", "04524", "")
//	cmd, err := NewCreateOrderCommand(7, 42, 2, delivery)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	userID    kernel.ID
	productID kernel.ID
	quantity  int
	delivery  order.Delivery

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates ids, quantity and delivery.
func NewCreateOrderCommand(
	userID kernel.ID,
	productID kernel.ID,
	quantity int,
	delivery order.Delivery,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUserID(userID),
		cmd.setProductID(productID),
		cmd.setQuantity(quantity),
		cmd.setDelivery(delivery),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// UserID returns the acting user, who becomes the owner.
func (c CreateOrderCommand) UserID() kernel.ID {
	return c.userID
}

func (c CreateOrderCommand) ProductID() kernel.ID {
	return c.productID
}

func (c CreateOrderCommand) Quantity() int {
	return c.quantity
}

func (c CreateOrderCommand) Delivery() order.Delivery {
	return c.delivery
}

func (c *CreateOrderCommand) setUserID(userID kernel.ID) error {
	if err := userID.Validate(); err != nil {
		return fmt.Errorf("user id: %w", err)
	}

	c.userID = userID
	return nil
}

func (c *CreateOrderCommand) setProductID(productID kernel.ID) error {
	if err := productID.Validate(); err != nil {
		return fmt.Errorf("product id: %w", err)
	}

	c.productID = productID
	return nil
}

func (c *CreateOrderCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return ErrQuantityIsInvalid
	}

	c.quantity = quantity
	return nil
}

func (c *CreateOrderCommand) setDelivery(delivery order.Delivery) error {
	if err := delivery.Validate(); err != nil {
		return err
	}

	c.delivery = delivery
	return nil
}
