// Command cli bootstraps a deployment: it seeds the role table and creates
// admin accounts with a password read from the terminal.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"golang.org/x/term"

	"github.com/splitmoney/splitmoney/infra"
	rolerepo "github.com/splitmoney/splitmoney/infra/repository/role"
	userrepo "github.com/splitmoney/splitmoney/infra/repository/user"
	"github.com/splitmoney/splitmoney/pkg/config"
	"github.com/splitmoney/splitmoney/pkg/domain"
	"github.com/splitmoney/splitmoney/pkg/logging"
	rolesvc "github.com/splitmoney/splitmoney/pkg/service/role"
	usersvc "github.com/splitmoney/splitmoney/pkg/service/user"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: cli <command> [arguments]")
		fmt.Println("Commands:")
		fmt.Println("  seed-roles")
		fmt.Println("  create-admin <email> <full name>")
		return
	}

	cfg, err := config.Load(".env")
	if err != nil {
		color.Red("Failed to load configuration: %v", err)
		os.Exit(1)
	}
	logger := logging.New(cfg.Log)

	db, err := infra.NewDBConnection(cfg.DB, cfg.Env)
	if err != nil {
		color.Red("Failed to connect to database: %v", err)
		os.Exit(1)
	}
	if err = infra.Migrate(db); err != nil {
		color.Red("Failed to run migrations: %v", err)
		os.Exit(1)
	}

	users := userrepo.New(db)
	roles := rolerepo.New(db)
	userSvc := usersvc.New(users, logger)
	roleSvc := rolesvc.New(roles, users, logger)
	ctx := context.Background()

	switch os.Args[1] {
	case "seed-roles":
		if err := seedRoles(ctx, roleSvc); err != nil {
			color.Red("Failed to seed roles: %v", err)
			os.Exit(1)
		}
		color.Green("Roles seeded")
	case "create-admin":
		if len(os.Args) < 4 {
			fmt.Println("Usage: cli create-admin <email> <full name>")
			os.Exit(1)
		}
		email := os.Args[2]
		fullName := strings.Join(os.Args[3:], " ")
		if err := createAdmin(ctx, userSvc, roleSvc, email, fullName); err != nil {
			color.Red("Failed to create admin: %v", err)
			os.Exit(1)
		}
		color.Green("Admin account created: %s", email)
	default:
		fmt.Println("Unknown command:", os.Args[1])
		os.Exit(1)
	}
}

func seedRoles(ctx context.Context, roleSvc *rolesvc.Service) error {
	for _, name := range []string{domain.AdminRoleName, domain.DefaultRoleName} {
		if _, err := roleSvc.Create(ctx, name); err != nil {
			if errors.Is(err, domain.ErrValidation) {
				color.Yellow("Role %q already exists, skipping", name)
				continue
			}
			return err
		}
		fmt.Printf("Created role %q\n", name)
	}
	return nil
}

func createAdmin(
	ctx context.Context,
	userSvc *usersvc.Service,
	roleSvc *rolesvc.Service,
	email, fullName string,
) error {
	password, err := promptPassword()
	if err != nil {
		return err
	}

	u, err := userSvc.Register(ctx, fullName, email, "", password)
	if err != nil {
		return err
	}

	adminRole, err := roleSvc.List(ctx)
	if err != nil {
		return err
	}
	var adminRoleID uuid.UUID
	for _, r := range adminRole {
		if domain.IsAdminRole(r.Name) {
			adminRoleID = r.ID
			break
		}
	}
	if adminRoleID == uuid.Nil {
		return fmt.Errorf("admin role not found, run seed-roles first")
	}
	return roleSvc.Assign(ctx, u.ID, adminRoleID)
}

func promptPassword() (string, error) {
	fmt.Print("Password: ")
	password, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return "", err
	}
	fmt.Print("Confirm password: ")
	confirm, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return "", err
	}
	if string(password) != string(confirm) {
		return "", fmt.Errorf("passwords do not match")
	}
	if len(password) < 8 {
		return "", fmt.Errorf("password must be at least 8 characters")
	}
	return string(password), nil
}
