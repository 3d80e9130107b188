package seeds

import (
	"gorm.io/gorm"

	"chamados/internal/infrastructure/auth"
	"chamados/internal/infrastructure/persistence/models"
	"chamados/internal/shared/authorization"
)

type seedAccount struct {
	Name     string
	Email    string
	Password string
	Role     authorization.UserRole
}

// SeedUsers creates the demo accounts used by local development and the
// standard frontend. Existing rows are left untouched, so reseeding is
// safe.
func SeedUsers(db *gorm.DB, bcryptCost int) error {
	accounts := []seedAccount{
		{
			Name:     "Demo User",
			Email:    "user@chamados.local",
			Password: "user123",
			Role:     authorization.RoleUser,
		},
		{
			Name:     "Demo Technician",
			Email:    "tech@chamados.local",
			Password: "tech123",
			Role:     authorization.RoleTech,
		},
		{
			Name:     "Demo Admin",
			Email:    "admin@chamados.local",
			Password: "admin123",
			Role:     authorization.RoleAdmin,
		},
	}

	hasher := auth.NewBcryptPasswordHasher(bcryptCost)

	for _, account := range accounts {
		hash, err := hasher.Hash(account.Password)
		if err != nil {
			return err
		}

		row := models.UserModel{
			Name:         account.Name,
			Email:        account.Email,
			PasswordHash: hash,
			Role:         account.Role.String(),
		}

		if err := db.FirstOrCreate(&row, models.UserModel{
			Email: account.Email,
		}).Error; err != nil {
			return err
		}
	}

	return nil
}
