// internal/repository/mock_gen.go
package repository

//go:generate mockgen -source=./grievance.go -destination=../mocks/mock_grievance_repository.go -package=mocks GrievanceRepositoryIface
//go:generate mockgen -source=./identity.go -destination=../mocks/mock_identity_repository.go -package=mocks IdentityRepositoryIface
//go:generate mockgen -source=./audit_entry.go -destination=../mocks/mock_audit_repository.go -package=mocks AuditRepositoryIface
//go:generate mockgen -source=./company.go -destination=../mocks/mock_company_repository.go -package=mocks CompanyRepositoryIface
