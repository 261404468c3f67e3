package directory

import "fmt"

// ConnectError means the server could not be reached or rejected the bind.
type ConnectError struct {
	Err error
}

func (e *ConnectError) Error() string {
	return fmt.Sprintf("connecting to LDAP: %v", e.Err)
}

func (e *ConnectError) Unwrap() error { return e.Err }

// SearchError means the search request itself failed.
type SearchError struct {
	Err error
}

func (e *SearchError) Error() string {
	return fmt.Sprintf("searching LDAP: %v", e.Err)
}

func (e *SearchError) Unwrap() error { return e.Err }
