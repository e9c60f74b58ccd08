package ports

import (
	"context"

	"exchange/internal/core/domain/model/kernel"
)

// IdentityProvider is the actor-identity collaborator. Authentication itself
// lives outside this core; the provider only answers capability questions
// about an already-authenticated actor id.
//
// Handlers resolve the admin capability ONCE per operation and inject the
// resulting boolean into the command, rather than querying mid-flight.
type IdentityProvider interface {
	// IsAdmin reports whether the actor holds the administrator capability.
	IsAdmin(ctx context.Context, actorID kernel.UUID) (bool, error)

	// IsActive reports whether the actor's account is in good standing.
	IsActive(ctx context.Context, actorID kernel.UUID) (bool, error)
}
