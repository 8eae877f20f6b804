package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/homehero/homehero-server/internal/model"
)

func TestAuthorizeOwner(t *testing.T) {
	uid := model.StringPtr("u1")
	email := model.StringPtr("Pro@Example.com")

	tests := []struct {
		name   string
		owner  model.Ownership
		caller model.Caller
		want   bool
	}{
		{"uid match", model.Ownership{UID: uid}, model.Caller{UID: "u1"}, true},
		{"uid mismatch", model.Ownership{UID: uid}, model.Caller{UID: "u2"}, false},
		{"uid owner ignores email", model.Ownership{UID: uid, ProviderEmail: email}, model.Caller{Email: "pro@example.com"}, false},
		{"uid owner with empty caller", model.Ownership{UID: uid}, model.Caller{}, false},
		{"email match case-insensitive", model.Ownership{ProviderEmail: email}, model.Caller{Email: "pro@example.COM"}, true},
		{"email mismatch", model.Ownership{ProviderEmail: email}, model.Caller{Email: "other@example.com"}, false},
		{"email owner ignores uid", model.Ownership{ProviderEmail: email}, model.Caller{UID: "u1"}, false},
		{"no owner fails closed", model.Ownership{}, model.Caller{UID: "u1", Email: "pro@example.com"}, false},
		{"empty owner fields fail closed", model.Ownership{UID: model.StringPtr(""), ProviderEmail: new(string)}, model.Caller{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, reason := AuthorizeOwner(tt.owner, tt.caller)
			assert.Equal(t, tt.want, ok)
			if tt.want {
				assert.Empty(t, reason)
			} else {
				assert.Equal(t, ReasonNotAllowed, reason)
			}
		})
	}
}

func TestIsSelfBooking(t *testing.T) {
	owner := model.Ownership{UID: model.StringPtr("u1"), ProviderEmail: model.StringPtr("pro@example.com")}

	assert.True(t, IsSelfBooking(owner, model.Caller{UID: "u1", Email: "someone@else.io"}))
	assert.True(t, IsSelfBooking(owner, model.Caller{UID: "u9", Email: "PRO@example.com"}))
	assert.False(t, IsSelfBooking(owner, model.Caller{UID: "u9", Email: "someone@else.io"}))
	assert.False(t, IsSelfBooking(model.Ownership{}, model.Caller{}))
	assert.False(t, IsSelfBooking(model.Ownership{UID: model.StringPtr("u1")}, model.Caller{Email: "x@y.z"}))
}
