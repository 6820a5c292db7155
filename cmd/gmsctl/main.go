// cmd/gmsctl/main.go
package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/spf13/cobra"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/idracore/gms/internal/config"
	"github.com/idracore/gms/internal/model"
	"github.com/idracore/gms/internal/seed"
)

var (
	dbConnString string
	verbose      bool
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&dbConnString, "db", "d", "", "Database connection string (defaults to DB_* environment)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(versionCmd)
}

var rootCmd = &cobra.Command{
	Use:   "gmsctl",
	Short: "gmsctl manages the grievance management database",
	Long:  `gmsctl runs schema migrations and loads demo data for the IDRA grievance management service.`,
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply the database schema",
	Long:  `Apply the database schema for identities, companies, grievances, messages, sequences, and audit entries.`,
	Run: func(cmd *cobra.Command, args []string) {
		db, err := openDatabase()
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}

		err = db.AutoMigrate(
			&model.Company{},
			&model.Identity{},
			&model.Grievance{},
			&model.GrievanceMessage{},
			&model.GrievanceSequence{},
			&model.AuditEntry{},
		)
		if err != nil {
			log.Fatalf("Failed to migrate schema: %v", err)
		}

		fmt.Println("Schema migration completed")
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load demo data",
	Long:  `Load demo companies, identities, and grievances. Safe to run repeatedly; existing rows are kept.`,
	Run: func(cmd *cobra.Command, args []string) {
		db, err := openDatabase()
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}

		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()

		if err := seed.Run(ctx, db); err != nil {
			log.Fatalf("Failed to seed demo data: %v", err)
		}

		fmt.Println("Demo data seeding completed")
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("gmsctl v0.1.0")
	},
}

func openDatabase() (*gorm.DB, error) {
	dsn := dbConnString
	if dsn == "" {
		cfg := config.Load()
		dsn = fmt.Sprintf(
			"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s search_path=%s",
			cfg.Database.Host,
			cfg.Database.Port,
			cfg.Database.User,
			cfg.Database.Password,
			cfg.Database.Name,
			cfg.Database.SSLMode,
			cfg.Database.SearchPath,
		)
	}

	logLevel := logger.Warn
	if verbose {
		logLevel = logger.Info
	}

	return gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logLevel),
		TranslateError: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
