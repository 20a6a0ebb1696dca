package order

import (
	"errors"
	"strings"

	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

var ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery constructor")

// Delivery holds where and to whom an order is shipped. All six fields are
// replaced together; there is no partial update.
type Delivery struct {
	receiver            string
	receiverPhoneNumber string
	name                string
	address             string
	postCode            string
	request             string

	guard guard.ConstructorGuard
}

// NewDelivery validates and builds a Delivery. Receiver, phone number, address
// and post code are required; the delivery name (e.g. "Home") and the
// free-form request for the courier are optional.
func NewDelivery(receiver, receiverPhoneNumber, name, address, postCode, request string) (Delivery, error) {
	d := Delivery{
		receiver:            strings.TrimSpace(receiver),
		receiverPhoneNumber: strings.TrimSpace(receiverPhoneNumber),
		name:                strings.TrimSpace(name),
		address:             strings.TrimSpace(address),
		postCode:            strings.TrimSpace(postCode),
		request:             strings.TrimSpace(request),
		guard:               guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		required("receiver", d.receiver),
		required("receiver_phone_number", d.receiverPhoneNumber),
		required("delivery_address", d.address),
		required("post_code", d.postCode),
	); err != nil {
		return Delivery{}, err
	}

	return d, nil
}

func (d Delivery) Validate() error {
	return d.guard.Validate(ErrDeliveryIsNotConstructed)
}

func (d Delivery) Receiver() string {
	return d.receiver
}

func (d Delivery) ReceiverPhoneNumber() string {
	return d.receiverPhoneNumber
}

// Name is the label of the destination, such as "Home" or "Office".
func (d Delivery) Name() string {
	return d.name
}

func (d Delivery) Address() string {
	return d.address
}

func (d Delivery) PostCode() string {
	return d.postCode
}

// Request is the buyer's note for the courier.
func (d Delivery) Request() string {
	return d.request
}

func required(param, value string) error {
	if value == "" {
		return errs.NewValueIsRequiredError(param)
	}
	return nil
}
