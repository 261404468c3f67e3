package directory

import (
	"context"
	"crypto/tls"
	"time"

	"github.com/JaSamMarko/back-office/internal/config"

	"github.com/go-ldap/ldap/v3"
	"go.uber.org/zap"
)

// ActiveUserFilter matches person objects whose ACCOUNTDISABLE bit (0x2)
// in userAccountControl is unset.
const ActiveUserFilter = "(&(objectClass=user)(objectCategory=person)(!(userAccountControl:1.2.840.113556.1.4.803:=2)))"

// Conn is the subset of *ldap.Conn the client uses.
type Conn interface {
	Bind(username, password string) error
	Search(req *ldap.SearchRequest) (*ldap.SearchResult, error)
	SetTimeout(timeout time.Duration)
	Unbind() error
}

type Dialer func(uri string) (Conn, error)

// DialLDAP connects without verifying the server certificate, matching
// the internal domain controllers this job talks to.
func DialLDAP(uri string) (Conn, error) {
	conn, err := ldap.DialURL(uri, ldap.DialWithTLSConfig(&tls.Config{InsecureSkipVerify: true}))
	if err != nil {
		return nil, err
	}
	return conn, nil
}

type Client struct {
	cfg    config.LDAPConfig
	dial   Dialer
	logger *zap.Logger
}

type Option func(*Client)

func WithDialer(d Dialer) Option {
	return func(c *Client) { c.dial = d }
}

func WithLogger(l *zap.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l.Named("directory.client")
		}
	}
}

func NewClient(cfg config.LDAPConfig, opts ...Option) *Client {
	c := &Client{
		cfg:    cfg,
		dial:   DialLDAP,
		logger: zap.L().Named("directory.client"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SearchActiveUsers connects, binds, runs one subtree search for active
// person objects and releases the connection before returning. The
// connection is unbound exactly once whenever the dial succeeded.
func (c *Client) SearchActiveUsers(ctx context.Context) ([]Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, &ConnectError{Err: err}
	}

	conn, err := c.dial(c.cfg.ServerURI)
	if err != nil {
		c.logger.Error("ldap dial failed", zap.String("uri", c.cfg.ServerURI), zap.Error(err))
		return nil, &ConnectError{Err: err}
	}
	defer func() {
		if err := conn.Unbind(); err != nil {
			c.logger.Debug("ldap unbind failed", zap.Error(err))
		}
	}()

	conn.SetTimeout(c.timeout(ctx))

	if err := conn.Bind(c.cfg.BindDN, c.cfg.BindPassword); err != nil {
		c.logger.Error("ldap bind failed", zap.String("bind_dn", c.cfg.BindDN), zap.Error(err))
		return nil, &ConnectError{Err: err}
	}

	req := ldap.NewSearchRequest(
		c.cfg.SearchBase,
		ldap.ScopeWholeSubtree,
		ldap.NeverDerefAliases,
		0, 0, false,
		ActiveUserFilter,
		[]string{AttrAccountName, AttrGivenName, AttrSurname},
		nil,
	)

	res, err := conn.Search(req)
	if err != nil {
		c.logger.Error("ldap search failed", zap.String("base", c.cfg.SearchBase), zap.Error(err))
		return nil, &SearchError{Err: err}
	}

	entries := make([]Entry, 0, len(res.Entries))
	for _, e := range res.Entries {
		if e == nil {
			continue
		}
		entries = append(entries, fromLDAP(e))
	}
	c.logger.Info("ldap search finished", zap.Int("entries", len(entries)))
	return entries, nil
}

func (c *Client) timeout(ctx context.Context) time.Duration {
	timeout := c.cfg.SearchTimeout
	if deadline, ok := ctx.Deadline(); ok {
		if left := time.Until(deadline); timeout <= 0 || left < timeout {
			timeout = left
		}
	}
	return timeout
}
