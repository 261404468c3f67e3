package ldapsync

import (
	"fmt"
	"io"
)

// Reporter writes the line oriented progress output of a pass. Progress
// goes to out, errors to errOut.
type Reporter struct {
	out    io.Writer
	errOut io.Writer
}

func NewReporter(out, errOut io.Writer) *Reporter {
	return &Reporter{out: out, errOut: errOut}
}

func (r *Reporter) SkipPrefixes(prefixes []string) {
	fmt.Fprintf(r.out, "Skipping prefixes: %v\n", prefixes)
}

func (r *Reporter) Skipped(username string) {
	fmt.Fprintf(r.out, "SKIPPED (prefix): %s\n", username)
}

func (r *Reporter) CreatedAccount(username string) {
	fmt.Fprintf(r.out, "CREATED USER: %s\n", username)
}

func (r *Reporter) CreatedEmployee(username string) {
	fmt.Fprintf(r.out, "CREATED EMPLOYEE: %s\n", username)
}

func (r *Reporter) Existing(username string) {
	fmt.Fprintf(r.out, "EXISTING USER: %s\n", username)
}

func (r *Reporter) ConnectFailed(err error) {
	fmt.Fprintf(r.errOut, "ERROR connecting to LDAP: %v\n", unwrapOnce(err))
}

func (r *Reporter) SearchFailed(err error) {
	fmt.Fprintf(r.errOut, "ERROR searching LDAP: %v\n", unwrapOnce(err))
}

func (r *Reporter) RecordFailed(username string, err error) {
	fmt.Fprintf(r.errOut, "ERROR processing %s: %v\n", username, err)
}

func (r *Reporter) Summary(rep Report) {
	fmt.Fprintf(r.out,
		"\nCompleted!\nNew users: %d\nNew employees: %d\nExisting users: %d\nSkipped users: %d\n",
		rep.NewAccounts, rep.NewEmployees, rep.ExistingAccounts, rep.SkippedAccounts,
	)
}

// unwrapOnce drops the phase prefix the directory errors already carry.
func unwrapOnce(err error) error {
	if u, ok := err.(interface{ Unwrap() error }); ok && u.Unwrap() != nil {
		return u.Unwrap()
	}
	return err
}
