package commands

import (
	"errors"
	"time"

	"exchange/internal/pkg/guard"
)

var (
	ErrExpireStaleRequestsCommandIsNotConstructed = errors.New(
		"ExpireStaleRequestsCommand must be created via NewExpireStaleRequestsCommand constructor",
	)
	ErrTTLIsInvalid = errors.New("ttl must be greater than 0")
)

// ExpireStaleRequestsCommand represents a sweep over pending requests that
// providers never answered. Requests older than the TTL are rejected on the
// provider's behalf so requesters are not left waiting forever.
type ExpireStaleRequestsCommand struct { //nolint:recvcheck //using for validation
	ttl time.Duration

	guard guard.ConstructorGuard
}

// NewExpireStaleRequestsCommand creates a command to expire stale requests
// older than the given TTL.
func NewExpireStaleRequestsCommand(ttl time.Duration) (ExpireStaleRequestsCommand, error) {
	expireCommand := ExpireStaleRequestsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := expireCommand.setTTL(ttl); err != nil {
		return ExpireStaleRequestsCommand{}, err
	}

	return expireCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c ExpireStaleRequestsCommand) Validate() error {
	return c.guard.Validate(ErrExpireStaleRequestsCommandIsNotConstructed)
}

// TTL returns how long a pending request may wait before it is expired.
func (c ExpireStaleRequestsCommand) TTL() time.Duration {
	return c.ttl
}

func (c *ExpireStaleRequestsCommand) setTTL(ttl time.Duration) error {
	if ttl <= 0 {
		return ErrTTLIsInvalid
	}

	c.ttl = ttl
	return nil
}
