package bootstrap

import (
	"context"
	"log/slog"

	"library-backend/internal/domain/account"
	"library-backend/internal/pkg/config"
	"library-backend/internal/usecase/commands"

	"go.uber.org/fx"
)

var SeedModule = fx.Module("seed",
	fx.Invoke(SeedAccounts),
)

// SeedAccounts provisions the configured ADMIN and STAFF accounts before the
// server starts accepting requests.
func SeedAccounts(lc fx.Lifecycle, cfg config.Config, seeder commands.AccountSeeder, logger *slog.Logger) {
	accounts := seedAccountsFromConfig(cfg.Seed)
	if len(accounts) == 0 {
		return
	}
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			created, err := seeder.Seed(ctx, accounts)
			if err != nil {
				return err
			}
			logger.Info("Seeded accounts", "created", created, "configured", len(accounts))
			return nil
		},
	})
}

func seedAccountsFromConfig(c config.SeedConfig) []commands.SeedAccount {
	var out []commands.SeedAccount
	if c.AdminEmail != "" {
		out = append(out, commands.SeedAccount{
			Role: account.RoleAdmin,
			Input: commands.AccountInput{
				Name:     c.AdminName,
				Email:    c.AdminEmail,
				Password: c.AdminPassword,
				CPF:      c.AdminCPF,
			},
		})
	}
	if c.StaffEmail != "" {
		out = append(out, commands.SeedAccount{
			Role: account.RoleStaff,
			Input: commands.AccountInput{
				Name:     c.StaffName,
				Email:    c.StaffEmail,
				Password: c.StaffPassword,
				CPF:      c.StaffCPF,
			},
		})
	}
	return out
}
