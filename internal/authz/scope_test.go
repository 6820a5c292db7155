package authz_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/idracore/gms/internal/authz"
	"github.com/idracore/gms/internal/model"
)

func TestResolveScope(t *testing.T) {
	identityID := uuid.New()
	companyID := uuid.New()

	tests := []struct {
		name     string
		identity *model.Identity
		want     authz.Scope
	}{
		{
			name:     "anonymous resolves to public only",
			identity: nil,
			want:     authz.Scope{Kind: authz.ScopePublicOnly},
		},
		{
			name: "deactivated identity resolves to public only",
			identity: &model.Identity{
				ID:       identityID,
				Role:     model.RoleIDRAAdmin,
				IsActive: false,
			},
			want: authz.Scope{Kind: authz.ScopePublicOnly},
		},
		{
			name: "idra admin sees everything",
			identity: &model.Identity{
				ID:       identityID,
				Role:     model.RoleIDRAAdmin,
				IsActive: true,
			},
			want: authz.Scope{Kind: authz.ScopeAll, IdentityID: identityID},
		},
		{
			name: "super admin sees everything",
			identity: &model.Identity{
				ID:       identityID,
				Role:     model.RoleSuperAdmin,
				IsActive: true,
			},
			want: authz.Scope{Kind: authz.ScopeAll, IdentityID: identityID},
		},
		{
			name: "policyholder sees own submissions",
			identity: &model.Identity{
				ID:       identityID,
				Role:     model.RolePolicyholder,
				IsActive: true,
			},
			want: authz.Scope{Kind: authz.ScopeOwnedBy, IdentityID: identityID},
		},
		{
			name: "company identity sees its company",
			identity: &model.Identity{
				ID:        identityID,
				Role:      model.RoleInsuranceCompany,
				CompanyID: &companyID,
				IsActive:  true,
			},
			want: authz.Scope{Kind: authz.ScopeCompanyOf, IdentityID: identityID, CompanyID: companyID},
		},
		{
			name: "company identity without a company sees public only",
			identity: &model.Identity{
				ID:       identityID,
				Role:     model.RoleInsuranceCompany,
				IsActive: true,
			},
			want: authz.Scope{Kind: authz.ScopePublicOnly, IdentityID: identityID},
		},
		{
			name: "unknown role sees public only",
			identity: &model.Identity{
				ID:       identityID,
				Role:     model.Role("auditor"),
				IsActive: true,
			},
			want: authz.Scope{Kind: authz.ScopePublicOnly, IdentityID: identityID},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, authz.ResolveScope(tt.identity))
		})
	}
}

func TestScopeAllows(t *testing.T) {
	ownerID := uuid.New()
	otherID := uuid.New()
	companyID := uuid.New()
	otherCompanyID := uuid.New()

	grievance := &model.Grievance{
		SubmittedByID: &ownerID,
		CompanyID:     &companyID,
		IsPublic:      false,
	}

	t.Run("all scope allows any grievance", func(t *testing.T) {
		scope := authz.Scope{Kind: authz.ScopeAll}
		assert.True(t, scope.Allows(grievance))
	})

	t.Run("owned_by matches only the submitter", func(t *testing.T) {
		assert.True(t, authz.Scope{Kind: authz.ScopeOwnedBy, IdentityID: ownerID}.Allows(grievance))
		assert.False(t, authz.Scope{Kind: authz.ScopeOwnedBy, IdentityID: otherID}.Allows(grievance))
	})

	t.Run("owned_by rejects anonymous submissions", func(t *testing.T) {
		anonymous := &model.Grievance{CompanyID: &companyID}
		assert.False(t, authz.Scope{Kind: authz.ScopeOwnedBy, IdentityID: ownerID}.Allows(anonymous))
	})

	t.Run("company_of matches only the named company", func(t *testing.T) {
		assert.True(t, authz.Scope{Kind: authz.ScopeCompanyOf, CompanyID: companyID}.Allows(grievance))
		assert.False(t, authz.Scope{Kind: authz.ScopeCompanyOf, CompanyID: otherCompanyID}.Allows(grievance))
	})

	t.Run("company_of rejects grievances without a company", func(t *testing.T) {
		unassigned := &model.Grievance{SubmittedByID: &ownerID}
		assert.False(t, authz.Scope{Kind: authz.ScopeCompanyOf, CompanyID: companyID}.Allows(unassigned))
	})

	t.Run("public_only sees flagged grievances only", func(t *testing.T) {
		public := &model.Grievance{IsPublic: true}
		assert.True(t, authz.Scope{Kind: authz.ScopePublicOnly}.Allows(public))
		assert.False(t, authz.Scope{Kind: authz.ScopePublicOnly}.Allows(grievance))
	})
}
