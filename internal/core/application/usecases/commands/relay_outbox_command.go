package commands

import (
	"errors"

	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

var ErrRelayOutboxCommandIsNotConstructed = errors.New(
	"RelayOutboxCommand must be created via NewRelayOutboxCommand constructor",
)

const maxRelayBatch = 1000

// RelayOutboxCommand publishes up to BatchSize pending outbox messages.
type RelayOutboxCommand struct { //nolint:recvcheck //using for validation
	batchSize int

	guard guard.ConstructorGuard
}

func NewRelayOutboxCommand(batchSize int) (RelayOutboxCommand, error) {
	if batchSize <= 0 || batchSize > maxRelayBatch {
		return RelayOutboxCommand{}, errs.NewValueIsOutOfRangeError("batchSize", batchSize, 1, maxRelayBatch)
	}
	return RelayOutboxCommand{batchSize: batchSize, guard: guard.NewConstructorGuard()}, nil
}

func (c RelayOutboxCommand) Validate() error {
	return c.guard.Validate(ErrRelayOutboxCommandIsNotConstructed)
}

func (c RelayOutboxCommand) BatchSize() int {
	return c.batchSize
}
