// Package objects stores uploaded media and evaluates access to it.
//
// Every object carries an ownership and visibility policy committed exactly
// once when the upload is finalized; CanAccess is a pure function over that
// policy, the requester, and the requested permission.
package objects

import "time"

// Visibility classifies who may read an object.
type Visibility string

const (
	// VisibilityPrivate restricts reads to the owner.
	VisibilityPrivate Visibility = "private"
	// VisibilityPublic allows anyone, including anonymous requesters, to read.
	VisibilityPublic Visibility = "public"
)

// Permission is an action requested against an object.
type Permission string

const (
	// PermissionRead covers retrieving object bytes and metadata.
	PermissionRead Permission = "read"
	// PermissionWrite covers mutating or deleting the object.
	PermissionWrite Permission = "write"
)

// Object is a stored media object with its access policy.
//
// OwnerID may be empty when the owning identity has been removed; such
// orphaned objects keep working for public reads and reject everything else.
type Object struct {
	ID          string
	Filename    string
	ContentType string
	Data        []byte
	Size        int64
	OwnerID     string
	Visibility  Visibility
	CreatedAt   time.Time
}

// CanAccess evaluates whether the requester may perform the permission on
// the object. requesterID is empty for anonymous requests.
//
//   - read: allowed when the object is public, or the requester owns it
//   - write: allowed only for the owner
//   - an ownerless object never matches a requester, so only public reads
//     survive orphaning
func CanAccess(obj Object, requesterID string, permission Permission) bool {
	isOwner := obj.OwnerID != "" && requesterID != "" && requesterID == obj.OwnerID

	switch permission {
	case PermissionRead:
		return obj.Visibility == VisibilityPublic || isOwner
	case PermissionWrite:
		return isOwner
	default:
		return false
	}
}

// ParseVisibility maps a client-supplied value onto a Visibility, defaulting
// empty input to public (gallery images are served openly).
func ParseVisibility(value string) (Visibility, bool) {
	switch Visibility(value) {
	case VisibilityPrivate:
		return VisibilityPrivate, true
	case VisibilityPublic, Visibility(""):
		return VisibilityPublic, true
	default:
		return "", false
	}
}
