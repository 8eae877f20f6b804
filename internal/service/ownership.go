package service

import (
	"strings"

	"github.com/homehero/homehero-server/internal/model"
)

// ReasonNotAllowed is the denial message for a failed ownership check.
const ReasonNotAllowed = "Not allowed"

// AuthorizeOwner decides whether caller may mutate a resource owned by owner.
//
// An owner uid is authoritative: when set, only an exact uid match passes
// and email is ignored. Otherwise a recorded provider email must match
// case-insensitively. A resource with no owner recorded is editable by no one.
func AuthorizeOwner(owner model.Ownership, caller model.Caller) (bool, string) {
	if uid := model.Deref(owner.UID); uid != "" {
		if caller.UID == uid {
			return true, ""
		}
		return false, ReasonNotAllowed
	}

	if email := model.Deref(owner.ProviderEmail); email != "" {
		if caller.Email != "" && strings.EqualFold(caller.Email, email) {
			return true, ""
		}
		return false, ReasonNotAllowed
	}

	return false, ReasonNotAllowed
}

// IsSelfBooking reports whether the customer is the owner of the service,
// by uid or by case-insensitive email. Either match alone is enough.
func IsSelfBooking(owner model.Ownership, customer model.Caller) bool {
	if uid := model.Deref(owner.UID); uid != "" && customer.UID == uid {
		return true
	}

	email := model.Deref(owner.ProviderEmail)
	return email != "" && customer.Email != "" && strings.EqualFold(email, customer.Email)
}
