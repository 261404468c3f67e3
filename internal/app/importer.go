package app

import (
	"context"
	"io"

	"github.com/JaSamMarko/back-office/internal/account"
	"github.com/JaSamMarko/back-office/internal/config"
	"github.com/JaSamMarko/back-office/internal/directory"
	"github.com/JaSamMarko/back-office/internal/employee"
	"github.com/JaSamMarko/back-office/internal/ldapsync"
	"github.com/JaSamMarko/back-office/internal/shared/connection"

	"go.uber.org/zap"
)

// RunImporter performs one directory reconciliation pass. Progress goes to
// stdout, per-record and terminal errors to stderr.
func RunImporter(ctx context.Context, cfg config.Config, newOnly bool, stdout, stderr io.Writer) (ldapsync.Report, error) {
	logger := zap.L()

	if err := cfg.ValidateLDAP(); err != nil {
		return ldapsync.Report{}, err
	}

	gormDB, err := connection.ConnectGORMWithRetry(cfg.DB)
	if err != nil {
		return ldapsync.Report{}, err
	}
	if sqlDB, err := gormDB.DB(); err == nil {
		defer sqlDB.Close()
	}

	store := ldapsync.NewStore(account.NewRepository(gormDB), employee.NewRepository(gormDB))
	client := directory.NewClient(cfg.LDAP, directory.WithLogger(logger))
	importer := ldapsync.NewImporter(
		client,
		store,
		ldapsync.NewConfig(cfg.LDAP, newOnly),
		ldapsync.NewReporter(stdout, stderr),
		logger,
	)

	return importer.Run(ctx)
}
