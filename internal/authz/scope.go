// internal/authz/scope.go
//
// Package authz resolves an identity into a visibility scope. Every read and
// write path on grievances consults ResolveScope rather than branching on the
// role string, so the authorization policy lives in exactly one place.
package authz

import (
	"github.com/google/uuid"

	"github.com/idracore/gms/internal/model"
)

type ScopeKind string

const (
	// ScopeAll sees every grievance (regulator staff).
	ScopeAll ScopeKind = "all"
	// ScopeOwnedBy sees grievances submitted by the identity itself.
	ScopeOwnedBy ScopeKind = "owned_by"
	// ScopeCompanyOf sees grievances filed against the identity's company.
	ScopeCompanyOf ScopeKind = "company_of"
	// ScopePublicOnly sees grievances flagged public (unauthenticated).
	ScopePublicOnly ScopeKind = "public_only"
)

// Scope is the capability an identity holds over the grievance corpus.
type Scope struct {
	Kind       ScopeKind
	IdentityID uuid.UUID
	CompanyID  uuid.UUID
}

// ResolveScope maps an identity (nil for anonymous requests) to its scope.
// Pure function, no side effects.
//
// An insurance_company identity without a bound company resolves to
// PublicOnly: its scope is defined as exactly its company, and with no
// company there is nothing it may see.
func ResolveScope(identity *model.Identity) Scope {
	if identity == nil || !identity.IsActive {
		return Scope{Kind: ScopePublicOnly}
	}

	switch identity.Role {
	case model.RoleSuperAdmin, model.RoleIDRAAdmin:
		return Scope{Kind: ScopeAll, IdentityID: identity.ID}
	case model.RoleInsuranceCompany:
		if identity.CompanyID == nil {
			return Scope{Kind: ScopePublicOnly, IdentityID: identity.ID}
		}
		return Scope{Kind: ScopeCompanyOf, IdentityID: identity.ID, CompanyID: *identity.CompanyID}
	case model.RolePolicyholder:
		return Scope{Kind: ScopeOwnedBy, IdentityID: identity.ID}
	}

	return Scope{Kind: ScopePublicOnly, IdentityID: identity.ID}
}

// Allows reports whether a single grievance falls inside the scope.
func (s Scope) Allows(g *model.Grievance) bool {
	switch s.Kind {
	case ScopeAll:
		return true
	case ScopeOwnedBy:
		return g.SubmittedByID != nil && *g.SubmittedByID == s.IdentityID
	case ScopeCompanyOf:
		return g.CompanyID != nil && *g.CompanyID == s.CompanyID
	case ScopePublicOnly:
		return g.IsPublic
	}
	return false
}
