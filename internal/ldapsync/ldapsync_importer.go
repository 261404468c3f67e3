package ldapsync

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/JaSamMarko/back-office/internal/account"
	"github.com/JaSamMarko/back-office/internal/directory"
	"github.com/JaSamMarko/back-office/internal/employee"

	"go.uber.org/zap"
)

// Directory returns the active person entries. Implementations release
// their connection before returning.
type Directory interface {
	SearchActiveUsers(ctx context.Context) ([]directory.Entry, error)
}

type Importer struct {
	dir      Directory
	store    Store
	cfg      Config
	reporter *Reporter
	logger   *zap.Logger
}

func NewImporter(dir Directory, store Store, cfg Config, reporter *Reporter, logger ...*zap.Logger) *Importer {
	l := zap.L().Named("ldapsync.importer")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("ldapsync.importer")
	}
	if reporter == nil {
		reporter = NewReporter(io.Discard, io.Discard)
	}
	return &Importer{dir: dir, store: store, cfg: cfg, reporter: reporter, logger: l}
}

// Run performs one reconciliation pass. The returned error is non-nil
// only when the directory could not be reached or searched; per-record
// failures are in the report.
func (i *Importer) Run(ctx context.Context) (Report, error) {
	var rep Report
	i.reporter.SkipPrefixes(i.cfg.SkipPrefixes)

	entries, err := i.search(ctx)
	if err != nil {
		var connErr *directory.ConnectError
		if errors.As(err, &connErr) {
			i.reporter.ConnectFailed(err)
			i.logger.Error("directory connect failed", zap.Error(err))
		} else {
			i.reporter.SearchFailed(err)
			i.logger.Error("directory search failed", zap.Error(err))
		}
		return rep, err
	}
	i.logger.Info("directory entries fetched", zap.Int("entries", len(entries)), zap.Bool("new_only", i.cfg.NewOnly))

	for _, entry := range entries {
		i.process(ctx, entry, &rep)
	}

	i.reporter.Summary(rep)
	i.logger.Info("directory import completed",
		zap.Int("new_accounts", rep.NewAccounts),
		zap.Int("new_employees", rep.NewEmployees),
		zap.Int("existing_accounts", rep.ExistingAccounts),
		zap.Int("skipped_accounts", rep.SkippedAccounts),
		zap.Int("failed", len(rep.Failed())),
	)
	return rep, nil
}

func (i *Importer) search(ctx context.Context) ([]directory.Entry, error) {
	sctx, cancel := context.WithTimeout(ctx, i.cfg.searchTimeout())
	defer cancel()
	return i.dir.SearchActiveUsers(sctx)
}

func (i *Importer) process(ctx context.Context, entry directory.Entry, rep *Report) {
	username, err := entry.AccountName()
	if err != nil {
		i.fail(rep, entry.DN, err)
		return
	}
	if username == "" {
		return
	}

	if i.skipped(username) {
		rep.SkippedAccounts++
		rep.add(username, StatusSkipped, nil)
		i.reporter.Skipped(username)
		return
	}

	if i.cfg.NewOnly {
		exists, err := i.store.AccountExists(ctx, username)
		if err != nil {
			i.fail(rep, username, err)
			return
		}
		if exists {
			rep.ExistingAccounts++
			rep.add(username, StatusExisting, nil)
			i.reporter.Existing(username)
			return
		}
	}

	person, err := entry.Decode()
	if err != nil {
		i.fail(rep, username, err)
		return
	}
	firstName := directory.StringOrEmpty(person.GivenName)
	lastName := directory.StringOrEmpty(person.Surname)

	acc, created, err := i.store.GetOrCreateAccount(ctx, username, account.Defaults{
		FirstName: firstName,
		LastName:  lastName,
	})
	if err != nil {
		i.fail(rep, username, err)
		return
	}

	// An existing account never gets an employee backfilled.
	if !created {
		rep.ExistingAccounts++
		rep.add(username, StatusExisting, nil)
		i.reporter.Existing(username)
		return
	}

	rep.NewAccounts++
	i.reporter.CreatedAccount(username)
	i.logger.Info("account created", zap.String("username", username), zap.String("account_id", acc.ID.String()))

	if err := i.store.CreateEmployee(ctx, employee.NewFromAccount(acc.ID, firstName, lastName)); err != nil {
		i.fail(rep, username, err)
		return
	}
	rep.NewEmployees++
	rep.add(username, StatusCreated, nil)
	i.reporter.CreatedEmployee(username)
}

func (i *Importer) skipped(username string) bool {
	lower := strings.ToLower(username)
	for _, prefix := range i.cfg.SkipPrefixes {
		if strings.HasPrefix(lower, prefix) {
			return true
		}
	}
	return false
}

func (i *Importer) fail(rep *Report, username string, err error) {
	rep.add(username, StatusFailed, err)
	i.reporter.RecordFailed(username, err)
	i.logger.Warn("directory entry failed", zap.String("username", username), zap.Error(err))
}
