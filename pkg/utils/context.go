package utils

import (
	"context"

	"github.com/google/uuid"
)

type actorKey struct{}

// Actor is the staff member behind a request, put on the context by the session
// middleware.
type Actor struct {
	UserID uuid.UUID
	Role   string
	Token  string
}

func WithActor(ctx context.Context, actor Actor) context.Context {
	return context.WithValue(ctx, actorKey{}, actor)
}

// ActorFrom reports false on routes without a session.
func ActorFrom(ctx context.Context) (Actor, bool) {
	actor, ok := ctx.Value(actorKey{}).(Actor)
	if !ok || actor.UserID == uuid.Nil {
		return Actor{}, false
	}
	return actor, true
}
