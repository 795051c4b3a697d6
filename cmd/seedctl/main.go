package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/krzysztofpiesio89/czystepomniki-app-backend/internal/config"
	"github.com/krzysztofpiesio89/czystepomniki-app-backend/internal/infra"
	"github.com/krzysztofpiesio89/czystepomniki-app-backend/internal/models/db_models"
	"github.com/krzysztofpiesio89/czystepomniki-app-backend/internal/repositories"
	"github.com/krzysztofpiesio89/czystepomniki-app-backend/pkg/utils"
)

var (
	adminEmail    string
	adminPassword string

	rootCmd = &cobra.Command{
		Use:   "seedctl",
		Short: "Database seeding utility",
		Long: `Seedctl populates the database with the cemetery catalogue
and the initial administrator account. Safe to run repeatedly:
cemeteries are upserted and the admin account is only created
when it does not exist yet.`,
	}

	cemeteriesCmd = &cobra.Command{
		Use:   "cemeteries",
		Short: "Upsert the cemetery catalogue",
		RunE: func(cmd *cobra.Command, args []string) error {
			return seedCemeteries(cmd.Context())
		},
	}

	adminCmd = &cobra.Command{
		Use:   "admin",
		Short: "Create the initial administrator account",
		RunE: func(cmd *cobra.Command, args []string) error {
			return seedAdmin(cmd.Context())
		},
	}

	allCmd = &cobra.Command{
		Use:   "all",
		Short: "Seed everything",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := seedAdmin(cmd.Context()); err != nil {
				return err
			}
			return seedCemeteries(cmd.Context())
		},
	}
)

func init() {
	adminCmd.Flags().StringVar(&adminEmail, "email", "admin@czystepomniki.pl", "administrator email")
	adminCmd.Flags().StringVar(&adminPassword, "password", "Admin123!", "initial administrator password")
	allCmd.Flags().StringVar(&adminEmail, "email", "admin@czystepomniki.pl", "administrator email")
	allCmd.Flags().StringVar(&adminPassword, "password", "Admin123!", "initial administrator password")

	rootCmd.AddCommand(cemeteriesCmd)
	rootCmd.AddCommand(adminCmd)
	rootCmd.AddCommand(allCmd)
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	rootCmd.CompletionOptions.DisableDefaultCmd = true
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func seedCemeteries(ctx context.Context) error {
	cfg := config.Load()
	db := infra.InitPostgresql(cfg.PostgresURL)
	defer infra.ClosePostgresql(db)

	repo := repositories.NewCemeteryRepository(db)
	for i := range cemeterySeed {
		if err := repo.Upsert(ctx, &cemeterySeed[i]); err != nil {
			return err
		}
	}
	log.Printf("Seeded %d cemeteries", len(cemeterySeed))
	return nil
}

func seedAdmin(ctx context.Context) error {
	cfg := config.Load()
	db := infra.InitPostgresql(cfg.PostgresURL)
	defer infra.ClosePostgresql(db)

	repo := repositories.NewUserRepository(db)
	existing, err := repo.FindByEmail(ctx, adminEmail)
	if err != nil {
		return err
	}
	if existing != nil {
		log.Printf("Administrator %s already exists, skipping", adminEmail)
		return nil
	}

	hash, err := utils.HashPassword(adminPassword)
	if err != nil {
		return err
	}
	user := &db_models.User{
		Email:        adminEmail,
		PasswordHash: hash,
		Name:         "Super Administrator",
		Role:         "superadmin",
		IsFirstLogin: true,
	}
	if err := repo.Insert(ctx, user); err != nil {
		return err
	}
	log.Printf("Administrator %s created", adminEmail)
	return nil
}
