package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/JaSamMarko/back-office/internal/app"
	"github.com/JaSamMarko/back-office/internal/config"
	"github.com/JaSamMarko/back-office/internal/directory"

	"github.com/spf13/cobra"
)

type importOptions struct {
	newOnly bool
}

type importFunc func(ctx context.Context, opts importOptions, stdout, stderr io.Writer) error

func runImport(ctx context.Context, opts importOptions, stdout, stderr io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "ERROR loading config: %v\n", err)
		return err
	}
	_, err = app.RunImporter(ctx, cfg, opts.newOnly, stdout, stderr)
	if err != nil && !reported(err) {
		fmt.Fprintf(stderr, "ERROR: %v\n", err)
	}
	return err
}

// reported tells whether the importer already wrote err to stderr.
func reported(err error) bool {
	var connErr *directory.ConnectError
	var searchErr *directory.SearchError
	return errors.As(err, &connErr) || errors.As(err, &searchErr)
}

func newRootCmd(run importFunc) *cobra.Command {
	root := &cobra.Command{
		Use:   "importer",
		Short: "Back office maintenance commands",
		// failures are already written to stderr by the import itself
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	root.AddCommand(newImportDirectoryUsersCmd(run))
	return root
}

func newImportDirectoryUsersCmd(run importFunc) *cobra.Command {
	var opts importOptions

	cmd := &cobra.Command{
		Use:   "import-directory-users",
		Short: "Import active directory users as accounts and employees",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), opts, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	cmd.Flags().BoolVar(&opts.newOnly, "new-only", false, "Only process users that do not exist locally yet")
	return cmd
}
