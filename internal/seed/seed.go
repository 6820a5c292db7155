// internal/seed/seed.go
package seed

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/idracore/gms/internal/auth"
	"github.com/idracore/gms/internal/model"
	"github.com/idracore/gms/internal/repository"
)

// DemoPassword is the login password shared by every seeded identity.
const DemoPassword = "demo123"

// Run loads a small demo dataset: three licensed companies, a handful of
// identities across all roles, and a few grievances in different lifecycle
// states. Seeding is idempotent; existing rows keyed by license number or
// email are left untouched.
func Run(ctx context.Context, db *gorm.DB) error {
	hasher := auth.NewPasswordHasher()
	passwordHash, err := hasher.Hash(DemoPassword)
	if err != nil {
		return fmt.Errorf("hashing demo password: %w", err)
	}

	companies, err := seedCompanies(ctx, db)
	if err != nil {
		return fmt.Errorf("seeding companies: %w", err)
	}

	identities, err := seedIdentities(ctx, db, companies, passwordHash)
	if err != nil {
		return fmt.Errorf("seeding identities: %w", err)
	}

	if err := seedGrievances(ctx, db, companies, identities); err != nil {
		return fmt.Errorf("seeding grievances: %w", err)
	}

	slog.InfoContext(ctx, "demo data seeded",
		"companies", len(companies),
		"identities", len(identities),
		"demo_password", DemoPassword,
	)
	return nil
}

func date(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

func seedCompanies(ctx context.Context, db *gorm.DB) ([]*model.Company, error) {
	companies := []*model.Company{
		{
			Name:              "Dhaka Insurance Limited",
			LicenseNumber:     "DIN-001",
			EstablishedYear:   1985,
			Address:           "Motijheel Commercial Area, Dhaka-1000",
			Phone:             "+880-2-9560560",
			Email:             "info@dhakainsurance.com",
			Website:           "https://dhakainsurance.com",
			RegistrationDate:  date(1985, 3, 15),
			LicenseExpiryDate: date(2025, 12, 31),
			AuthorizedCapital: 1_000_000_000,
			PaidUpCapital:     500_000_000,
			IsActive:          true,
		},
		{
			Name:              "Bangladesh General Insurance",
			LicenseNumber:     "BGI-002",
			EstablishedYear:   1973,
			Address:           "Gulshan Avenue, Dhaka-1212",
			Phone:             "+880-2-8851234",
			Email:             "contact@bginsurance.com",
			Website:           "https://bginsurance.com",
			RegistrationDate:  date(1973, 8, 20),
			LicenseExpiryDate: date(2025, 12, 31),
			AuthorizedCapital: 800_000_000,
			PaidUpCapital:     400_000_000,
			IsActive:          true,
		},
		{
			Name:              "United Insurance Company",
			LicenseNumber:     "UIC-003",
			EstablishedYear:   1990,
			Address:           "Dhanmondi, Dhaka-1205",
			Phone:             "+880-2-9661234",
			Email:             "info@unitedinsurance.bd",
			Website:           "https://unitedinsurance.bd",
			RegistrationDate:  date(1990, 5, 10),
			LicenseExpiryDate: date(2025, 12, 31),
			AuthorizedCapital: 600_000_000,
			PaidUpCapital:     300_000_000,
			IsActive:          true,
		},
	}

	for _, company := range companies {
		result := db.WithContext(ctx).
			Where(model.Company{LicenseNumber: company.LicenseNumber}).
			Attrs(*company).
			FirstOrCreate(company)
		if result.Error != nil {
			return nil, result.Error
		}
		if result.RowsAffected > 0 {
			slog.InfoContext(ctx, "created company", "name", company.Name, "license_number", company.LicenseNumber)
		}
	}
	return companies, nil
}

func seedIdentities(ctx context.Context, db *gorm.DB, companies []*model.Company, passwordHash string) (map[string]*model.Identity, error) {
	identities := []*model.Identity{
		{
			Email:     "alice@example.com",
			FirstName: "Alice",
			LastName:  "Rahman",
			Phone:     "+880-1711-123456",
			Role:      model.RolePolicyholder,
		},
		{
			Email:     "bob@dhakainsurance.com",
			FirstName: "Bob",
			LastName:  "Ahmed",
			Phone:     "+880-1711-234567",
			Role:      model.RoleInsuranceCompany,
			CompanyID: &companies[0].ID,
		},
		{
			Email:     "carol@bginsurance.com",
			FirstName: "Carol",
			LastName:  "Khan",
			Phone:     "+880-1711-345678",
			Role:      model.RoleInsuranceCompany,
			CompanyID: &companies[1].ID,
		},
		{
			Email:     "david@idra.gov.bd",
			FirstName: "David",
			LastName:  "Hassan",
			Phone:     "+880-1711-456789",
			Role:      model.RoleIDRAAdmin,
		},
		{
			Email:     "emma@example.com",
			FirstName: "Emma",
			LastName:  "Begum",
			Phone:     "+880-1711-567890",
			Role:      model.RolePolicyholder,
		},
	}

	byEmail := make(map[string]*model.Identity, len(identities))
	for _, identity := range identities {
		identity.PasswordHash = passwordHash
		identity.IsActive = true

		result := db.WithContext(ctx).
			Where("email = ?", identity.Email).
			Attrs(*identity).
			FirstOrCreate(identity)
		if result.Error != nil {
			return nil, result.Error
		}
		if result.RowsAffected > 0 {
			slog.InfoContext(ctx, "created identity", "email", identity.Email, "role", identity.Role)
		}
		byEmail[identity.Email] = identity
	}
	return byEmail, nil
}

func seedGrievances(ctx context.Context, db *gorm.DB, companies []*model.Company, identities map[string]*model.Identity) error {
	var existing int64
	if err := db.WithContext(ctx).Model(&model.Grievance{}).Count(&existing).Error; err != nil {
		return err
	}
	if existing > 0 {
		slog.InfoContext(ctx, "grievances already present, skipping", "count", existing)
		return nil
	}

	repo := repository.NewGrievanceRepository(db)
	now := time.Now().UTC()

	claimAmount := func(v float64) *float64 { return &v }
	submittedBy := func(email string) *uuid.UUID {
		if identity, ok := identities[email]; ok {
			return &identity.ID
		}
		return nil
	}

	grievances := []*model.Grievance{
		{
			Title:            "Claim Settlement Delay for Motor Insurance",
			Description:      "My motor insurance claim has been pending for over 45 days without any response from the company.",
			Category:         model.CategoryClaimSettlement,
			ComplainantName:  "Alice Rahman",
			ComplainantEmail: "alice@example.com",
			ComplainantPhone: "+880-1711-123456",
			PolicyNumber:     "MOT-2024-001234",
			CompanyID:        &companies[0].ID,
			SubmittedByID:    submittedBy("alice@example.com"),
			Priority:         model.PriorityHigh,
			ClaimAmount:      claimAmount(150000),
		},
		{
			Title:            "Premium Calculation Discrepancy",
			Description:      "There is a significant discrepancy in my health insurance premium calculation compared to what was initially quoted.",
			Category:         model.CategoryPremiumIssues,
			ComplainantName:  "Emma Begum",
			ComplainantEmail: "emma@example.com",
			ComplainantPhone: "+880-1711-567890",
			PolicyNumber:     "HLT-2024-005678",
			CompanyID:        &companies[1].ID,
			SubmittedByID:    submittedBy("emma@example.com"),
			Priority:         model.PriorityMedium,
			ClaimAmount:      claimAmount(75000),
		},
		{
			Title:            "Agent Misconduct and Misrepresentation",
			Description:      "The insurance agent provided false information about policy coverage and benefits during the sales process.",
			Category:         model.CategoryAgentConduct,
			ComplainantName:  "Mohammad Karim",
			ComplainantEmail: "karim@example.com",
			ComplainantPhone: "+880-1711-987654",
			PolicyNumber:     "LIF-2024-009876",
			CompanyID:        &companies[2].ID,
			Priority:         model.PriorityUrgent,
		},
	}

	for _, grievance := range grievances {
		reference, err := repo.AllocateReference(ctx, now.Year())
		if err != nil {
			return err
		}
		grievance.Reference = reference
		grievance.Status = model.StatusOpen
		grievance.SubmittedAt = now
		grievance.SLADeadline = now.Add(7 * 24 * time.Hour)

		if err := repo.Create(ctx, grievance); err != nil {
			return err
		}
		slog.InfoContext(ctx, "created grievance", "reference", grievance.Reference, "title", grievance.Title)
	}
	return nil
}
