package service

import (
	"context"

	"github.com/kevinzhou/rentflow/internal/application/port"
	"github.com/kevinzhou/rentflow/internal/domain/entity"
)

// representingAgentID resolves the agent representing a user by trying an
// ordered list of lookup strategies and returning the first non-empty
// result. Lookups are best-effort: a failing profile read resolves to "",
// never to an error.
func representingAgentID(ctx context.Context, user *entity.User, profiles port.ProfileRepository) string {
	strategies := []func() string{
		func() string {
			return user.RepresentedByID
		},
		func() string {
			profile, err := profiles.GetByUserID(ctx, user.ID)
			if err != nil || profile == nil {
				return ""
			}
			return profile.RepresentedByID
		},
	}

	for _, lookup := range strategies {
		if id := lookup(); id != "" {
			return id
		}
	}
	return ""
}
