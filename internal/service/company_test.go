package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/idracore/gms/internal/domain"
	"github.com/idracore/gms/internal/mocks"
	"github.com/idracore/gms/internal/model"
	"github.com/idracore/gms/internal/service"
)

func TestCompanyCreate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	input := service.CreateCompanyInput{
		Name:              "Dhaka Insurance Limited",
		LicenseNumber:     "DIN-001",
		EstablishedYear:   1985,
		Address:           "Motijheel Commercial Area, Dhaka-1000",
		Phone:             "+880-2-9560560",
		Email:             "info@dhakainsurance.com",
		RegistrationDate:  "1985-03-15",
		LicenseExpiryDate: "2025-12-31",
		AuthorizedCapital: 1_000_000_000,
		PaidUpCapital:     500_000_000,
	}

	t.Run("regulator registers a company", func(t *testing.T) {
		repo := mocks.NewMockCompanyRepositoryIface(ctrl)
		svc := service.NewCompanyService(repo, nil)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		company, err := svc.Create(context.Background(), input, adminIdentity(), nil)

		require.NoError(t, err)
		assert.Equal(t, "Dhaka Insurance Limited", company.Name)
		assert.Equal(t, time.Date(1985, time.March, 15, 0, 0, 0, 0, time.UTC), company.RegistrationDate)
		assert.Equal(t, time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC), company.LicenseExpiryDate)
		assert.True(t, company.IsActive)
	})

	t.Run("non-regulator roles are denied", func(t *testing.T) {
		repo := mocks.NewMockCompanyRepositoryIface(ctrl)
		svc := service.NewCompanyService(repo, nil)

		_, err := svc.Create(context.Background(), input, policyholderIdentity(), nil)
		assert.ErrorIs(t, err, domain.ErrPermissionDenied)

		_, err = svc.Create(context.Background(), input, nil, nil)
		assert.ErrorIs(t, err, domain.ErrPermissionDenied)
	})

	t.Run("malformed dates fail validation", func(t *testing.T) {
		repo := mocks.NewMockCompanyRepositoryIface(ctrl)
		svc := service.NewCompanyService(repo, nil)

		bad := input
		bad.RegistrationDate = "15/03/1985"

		_, err := svc.Create(context.Background(), bad, adminIdentity(), nil)

		var verr *domain.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Contains(t, verr.Violations, "registrationdate must be a date in YYYY-MM-DD form")
	})

	t.Run("duplicate license surfaces as conflict", func(t *testing.T) {
		repo := mocks.NewMockCompanyRepositoryIface(ctrl)
		svc := service.NewCompanyService(repo, nil)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(domain.ErrDuplicateCompany)

		_, err := svc.Create(context.Background(), input, adminIdentity(), nil)
		assert.ErrorIs(t, err, domain.ErrDuplicateCompany)
	})
}

func TestCompanyGet(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("deactivated companies read as not found", func(t *testing.T) {
		repo := mocks.NewMockCompanyRepositoryIface(ctrl)
		svc := service.NewCompanyService(repo, nil)
		companyID := uuid.New()

		repo.EXPECT().
			FindByID(gomock.Any(), companyID).
			Return(&model.Company{ID: companyID, IsActive: false}, nil)

		_, err := svc.Get(context.Background(), companyID)
		assert.ErrorIs(t, err, domain.ErrCompanyNotFound)
	})

	t.Run("active company is returned", func(t *testing.T) {
		repo := mocks.NewMockCompanyRepositoryIface(ctrl)
		svc := service.NewCompanyService(repo, nil)
		company := &model.Company{ID: uuid.New(), Name: "United Insurance Company", IsActive: true}

		repo.EXPECT().FindByID(gomock.Any(), company.ID).Return(company, nil)

		got, err := svc.Get(context.Background(), company.ID)
		require.NoError(t, err)
		assert.Equal(t, company, got)
	})
}
