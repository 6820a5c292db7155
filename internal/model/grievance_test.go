package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/idracore/gms/internal/model"
)

func TestFormatReference(t *testing.T) {
	assert.Equal(t, "GRV-2025-00001", model.FormatReference(2025, 1))
	assert.Equal(t, "GRV-2025-00042", model.FormatReference(2025, 42))
	assert.Equal(t, "GRV-2026-99999", model.FormatReference(2026, 99999))
	// Past five digits the reference widens rather than wrapping.
	assert.Equal(t, "GRV-2026-100000", model.FormatReference(2026, 100000))
}

func TestStatusTerminal(t *testing.T) {
	assert.False(t, model.StatusOpen.Terminal())
	assert.False(t, model.StatusUnderReview.Terminal())
	assert.False(t, model.StatusPendingResponse.Terminal())
	assert.True(t, model.StatusResolved.Terminal())
	assert.True(t, model.StatusClosed.Terminal())
}

func TestEnumValidity(t *testing.T) {
	assert.True(t, model.StatusPendingResponse.Valid())
	assert.False(t, model.GrievanceStatus("escalated").Valid())

	assert.True(t, model.PriorityUrgent.Valid())
	assert.False(t, model.GrievancePriority("critical").Valid())

	assert.True(t, model.CategoryFraudConcern.Valid())
	assert.False(t, model.GrievanceCategory("gossip").Valid())

	assert.True(t, model.RoleSuperAdmin.Valid())
	assert.False(t, model.Role("auditor").Valid())
}

func TestRoleIsAdmin(t *testing.T) {
	assert.True(t, model.RoleIDRAAdmin.IsAdmin())
	assert.True(t, model.RoleSuperAdmin.IsAdmin())
	assert.False(t, model.RolePolicyholder.IsAdmin())
	assert.False(t, model.RoleInsuranceCompany.IsAdmin())
}

func TestIdentityFullName(t *testing.T) {
	full := &model.Identity{FirstName: "Alice", LastName: "Rahman"}
	assert.Equal(t, "Alice Rahman", full.FullName())

	single := &model.Identity{FirstName: "Alice"}
	assert.Equal(t, "Alice", single.FullName())
}
