// Package main provides data seeding for ProcureFlow.
//
// Seeds the default users and the baseline approval policy table. A custom
// seed set can be supplied as a YAML file via -file; without it the built-in
// defaults apply. All writes are idempotent.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"

	"procureflow.io/procureflow/ent"
	"procureflow.io/procureflow/ent/user"
	"procureflow.io/procureflow/internal/config"
	"procureflow.io/procureflow/internal/infrastructure"
	"procureflow.io/procureflow/internal/pkg/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "seed error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	seedFile := flag.String("file", "", "optional YAML seed file")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if err := logger.Init(cfg.Log.Level, cfg.Log.Format); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync()

	ctx := context.Background()

	db, err := infrastructure.NewDatabaseClients(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("init database: %w", err)
	}
	defer db.Close()

	client := db.EntClient

	logger.Info("Starting data seeding...")

	// Database and River migrations are expected to be executed before seeding.
	// This command only performs idempotent data bootstrap.

	set := defaultSeedSet()
	if *seedFile != "" {
		set, err = loadSeedSet(*seedFile)
		if err != nil {
			return fmt.Errorf("load seed file %s: %w", *seedFile, err)
		}
	}

	if err := seedUsers(ctx, client, set.Users); err != nil {
		return fmt.Errorf("seed users: %w", err)
	}
	if err := seedPolicies(ctx, client, set.Policies); err != nil {
		return fmt.Errorf("seed policies: %w", err)
	}

	logger.Info("Data seeding completed successfully")
	return nil
}

// seedSet is the YAML shape of a seed file.
type seedSet struct {
	Users    []seedUser   `yaml:"users"`
	Policies []seedPolicy `yaml:"policies"`
}

type seedUser struct {
	ID       string `yaml:"id"`
	Email    string `yaml:"email"`
	FullName string `yaml:"full_name"`
	Role     string `yaml:"role"`
	Password string `yaml:"password"`
}

type seedPolicy struct {
	ID             string `yaml:"id"`
	Title          string `yaml:"title"`
	MinAmount      string `yaml:"min_amount"`
	MaxAmount      string `yaml:"max_amount"`
	RequiredLevels int    `yaml:"required_levels"`
}

func defaultSeedSet() seedSet {
	return seedSet{
		Users: []seedUser{
			{ID: "user-default-admin", Email: "admin@localhost", FullName: "Default Administrator", Role: "admin", Password: "admin"},
			{ID: "user-default-approver", Email: "approver@localhost", FullName: "Default Approver", Role: "approver", Password: "approver"},
			{ID: "user-default-finance", Email: "finance@localhost", FullName: "Default Finance", Role: "finance", Password: "finance"},
			{ID: "user-default-staff", Email: "staff@localhost", FullName: "Default Staff", Role: "staff", Password: "staff"},
		},
		Policies: []seedPolicy{
			{ID: "policy-small", Title: "Small purchases", MinAmount: "0.00", MaxAmount: "500.00", RequiredLevels: 1},
			{ID: "policy-medium", Title: "Medium purchases", MinAmount: "500.01", MaxAmount: "5000.00", RequiredLevels: 2},
			{ID: "policy-large", Title: "Large purchases", MinAmount: "5000.01", MaxAmount: "999999.99", RequiredLevels: 3},
		},
	}
}

func loadSeedSet(path string) (seedSet, error) {
	var set seedSet
	raw, err := os.ReadFile(path)
	if err != nil {
		return set, err
	}
	if err := yaml.Unmarshal(raw, &set); err != nil {
		return set, fmt.Errorf("parse yaml: %w", err)
	}
	return set, nil
}

// seedUsers creates users with bcrypt-hashed passwords. Existing emails are
// skipped.
func seedUsers(ctx context.Context, client *ent.Client, users []seedUser) error {
	for _, u := range users {
		hashBytes, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hash password for %s: %w", u.Email, err)
		}

		id := u.ID
		if id == "" {
			uid, _ := uuid.NewV7()
			id = uid.String()
		}

		_, err = client.User.Create().
			SetID(id).
			SetEmail(u.Email).
			SetFullName(u.FullName).
			SetRole(user.Role(u.Role)).
			SetPasswordHash(string(hashBytes)).
			Save(ctx)
		if err != nil {
			if ent.IsConstraintError(err) {
				logger.Info("User already exists, skipping", zap.String("email", u.Email))
				continue
			}
			return fmt.Errorf("create user %s: %w", u.Email, err)
		}
		logger.Info("Seeded user", zap.String("email", u.Email), zap.String("role", u.Role))
	}
	return nil
}

// seedPolicies creates the baseline policy bands. Existing IDs are skipped.
func seedPolicies(ctx context.Context, client *ent.Client, policies []seedPolicy) error {
	for _, p := range policies {
		minAmount, err := decimal.NewFromString(p.MinAmount)
		if err != nil {
			return fmt.Errorf("policy %s: parse min_amount: %w", p.Title, err)
		}
		maxAmount, err := decimal.NewFromString(p.MaxAmount)
		if err != nil {
			return fmt.Errorf("policy %s: parse max_amount: %w", p.Title, err)
		}

		id := p.ID
		if id == "" {
			uid, _ := uuid.NewV7()
			id = uid.String()
		}

		_, err = client.ApprovalPolicy.Create().
			SetID(id).
			SetTitle(p.Title).
			SetMinAmount(minAmount).
			SetMaxAmount(maxAmount).
			SetRequiredLevels(p.RequiredLevels).
			SetActive(true).
			SetCreatedBy("system-seed").
			Save(ctx)
		if err != nil {
			if ent.IsConstraintError(err) {
				logger.Info("Policy already exists, skipping", zap.String("policy", p.Title))
				continue
			}
			return fmt.Errorf("create policy %s: %w", p.Title, err)
		}
		logger.Info("Seeded approval policy",
			zap.String("policy", p.Title),
			zap.Int("required_levels", p.RequiredLevels),
		)
	}
	return nil
}
