// Seeds a development database with an admin, an employee, and a payroll
// record for the employee. Running it twice reuses the existing users.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/kerjahub/hrm-backend-go/internal/config"
	"github.com/kerjahub/hrm-backend-go/internal/domain/payroll"
	"github.com/kerjahub/hrm-backend-go/internal/domain/user"
	"github.com/kerjahub/hrm-backend-go/internal/pkg/database"
	"github.com/kerjahub/hrm-backend-go/internal/pkg/jwt"
	"github.com/kerjahub/hrm-backend-go/internal/repository/postgresql"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		log.Fatal("Error connecting to database: ", err)
	}
	defer db.Close()

	ctx := context.Background()
	userRepo := postgresql.NewUserRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)
	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	var admin, employee user.User
	err = postgresql.WithTransaction(ctx, db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		var err error
		admin, err = ensureUser(txCtx, userRepo, "admin@kerjahub.dev", "admin123", user.RoleAdmin)
		if err != nil {
			return err
		}

		employee, err = ensureUser(txCtx, userRepo, "employee@kerjahub.dev", "employee123", user.RoleEmployee)
		if err != nil {
			return err
		}

		if _, err := payrollRepo.GetByUserID(txCtx, employee.ID); err == nil {
			return nil
		} else if !errors.Is(err, payroll.ErrPayrollRecordNotFound) {
			return err
		}

		record := payroll.PayrollRecord{
			ID:         uuid.NewString(),
			UserID:     employee.ID,
			BaseSalary: decimal.NewFromInt(5000),
			Allowances: decimal.NewFromInt(500),
			Deductions: decimal.NewFromInt(200),
			Currency:   "USD",
			Period:     "2026-08",
		}
		record.NetSalary = record.ComputeNet()

		_, err = payrollRepo.Create(txCtx, record)
		return err
	})
	if err != nil {
		log.Fatal("Error seeding database: ", err)
	}

	for _, u := range []user.User{admin, employee} {
		token, _, err := JWTService.GenerateAccessToken(u.ID, u.Email, u.Role)
		if err != nil {
			log.Fatal("Error generating token: ", err)
		}
		fmt.Printf("%s (%s)\n  id:    %s\n  token: %s\n", u.Email, u.Role, u.ID, token)
	}
}

func ensureUser(ctx context.Context, repo user.UserRepository, email, password string, role user.Role) (user.User, error) {
	existing, err := repo.GetByEmail(ctx, email)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, user.ErrUserNotFound) {
		return user.User{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return user.User{}, err
	}
	hash := string(hashed)

	return repo.Create(ctx, user.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: &hash,
		Role:         role,
	})
}
