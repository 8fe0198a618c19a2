package authz_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mzawadzki/ludoteka-api/internal/authz"
)

func TestCheck(t *testing.T) {
	member := &authz.Identity{UserID: 7}
	admin := &authz.Identity{UserID: 1, IsAdmin: true}

	tests := []struct {
		name     string
		id       *authz.Identity
		required authz.Privilege
		ownerID  uint
		wantErr  error
	}{
		{"public allows anonymous", nil, authz.Public, 0, nil},
		{"public allows member", member, authz.Public, 0, nil},
		{"self-or-admin rejects anonymous", nil, authz.SelfOrAdmin, 7, authz.ErrUnauthorized},
		{"self-or-admin allows owner", member, authz.SelfOrAdmin, 7, nil},
		{"self-or-admin rejects foreign member", member, authz.SelfOrAdmin, 8, authz.ErrForbidden},
		{"self-or-admin allows admin", admin, authz.SelfOrAdmin, 8, nil},
		{"admin-only rejects anonymous", nil, authz.AdminOnly, 0, authz.ErrUnauthorized},
		{"admin-only rejects member", member, authz.AdminOnly, 7, authz.ErrForbidden},
		{"admin-only allows admin", admin, authz.AdminOnly, 0, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := authz.Check(tt.id, tt.required, tt.ownerID)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}
