package graph

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"golang.org/x/oauth2"

	"github.com/philipdalen/mcp-workspace/internal/common"
)

// Scopes requested for the mail server.
var Scopes = []string{"Calendars.ReadWrite", "Mail.Read", "Mail.Send", "User.Read", "offline_access", "openid", "profile"}

// DefaultAuthority is the Microsoft identity platform host.
const DefaultAuthority = "https://login.microsoftonline.com"

// ErrNotAuthenticated means no usable record exists and an interactive
// login is required.
var ErrNotAuthenticated = errors.New("not authenticated")

// AuthState is the authenticator's lifecycle state.
type AuthState int

const (
	StateUnauthenticated AuthState = iota
	StateAwaitingDeviceCode
	StateAuthenticated
)

func (s AuthState) String() string {
	switch s {
	case StateAwaitingDeviceCode:
		return "awaiting_device_code"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "unauthenticated"
	}
}

// AuthOptions configures an Authenticator.
type AuthOptions struct {
	ClientID  string
	TenantID  string
	Authority string
	// HTTPClient is used for token endpoint calls when set.
	HTTPClient *http.Client
}

// Authenticator obtains Graph tokens via the OAuth device code flow and
// keeps them in a RecordStore.
type Authenticator struct {
	opts   AuthOptions
	store  *RecordStore
	logger *common.Logger

	mu    sync.Mutex
	state AuthState
}

// NewAuthenticator creates an authenticator. TenantID defaults to common.
func NewAuthenticator(opts AuthOptions, store *RecordStore, logger *common.Logger) *Authenticator {
	if opts.TenantID == "" {
		opts.TenantID = "common"
	}
	if opts.Authority == "" {
		opts.Authority = DefaultAuthority
	}
	opts.Authority = strings.TrimRight(opts.Authority, "/")
	return &Authenticator{opts: opts, store: store, logger: logger}
}

// State reports the current lifecycle state.
func (a *Authenticator) State() AuthState {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state
}

func (a *Authenticator) setState(s AuthState) {
	a.mu.Lock()
	a.state = s
	a.mu.Unlock()
}

func (a *Authenticator) oauthConfig() *oauth2.Config {
	base := a.opts.Authority + "/" + a.opts.TenantID + "/oauth2/v2.0"
	return &oauth2.Config{
		ClientID: a.opts.ClientID,
		Scopes:   Scopes,
		Endpoint: oauth2.Endpoint{
			AuthURL:       base + "/authorize",
			DeviceAuthURL: base + "/devicecode",
			TokenURL:      base + "/token",
			AuthStyle:     oauth2.AuthStyleInParams,
		},
	}
}

func (a *Authenticator) context(ctx context.Context) context.Context {
	if a.opts.HTTPClient != nil {
		return context.WithValue(ctx, oauth2.HTTPClient, a.opts.HTTPClient)
	}
	return ctx
}

// Silent restores the stored session and returns a token source that
// refreshes and persists tokens as needed.
func (a *Authenticator) Silent(ctx context.Context) (oauth2.TokenSource, *AuthRecord, error) {
	rec, err := a.store.Load()
	if err != nil {
		if errors.Is(err, ErrNoRecord) {
			return nil, nil, ErrNotAuthenticated
		}
		return nil, nil, err
	}
	if rec.Token == nil || (rec.ClientID != "" && rec.ClientID != a.opts.ClientID) {
		return nil, nil, ErrNotAuthenticated
	}

	ts := &persistingSource{
		base:   a.oauthConfig().TokenSource(a.context(ctx), rec.Token),
		record: rec,
		store:  a.store,
		logger: a.logger,
		last:   rec.Token.AccessToken,
	}
	if _, err := ts.Token(); err != nil {
		a.setState(StateUnauthenticated)
		return nil, nil, fmt.Errorf("%w: %v", ErrNotAuthenticated, err)
	}
	a.setState(StateAuthenticated)
	return ts, rec, nil
}

// Logout discards the stored record.
func (a *Authenticator) Logout() error {
	a.setState(StateUnauthenticated)
	return a.store.Remove()
}

// DeviceFlow is a started device code login. Show Message to the user and
// call Wait for the outcome.
type DeviceFlow struct {
	UserCode        string
	VerificationURL string
	Message         string
	ExpiresAt       time.Time

	done   chan struct{}
	record *AuthRecord
	err    error
}

// Wait blocks until the user completes sign-in, the code expires or ctx is
// done.
func (f *DeviceFlow) Wait(ctx context.Context) (*AuthRecord, error) {
	select {
	case <-f.done:
		return f.record, f.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// StartDeviceFlow requests a device code and polls for the token in the
// background until ctx is done.
func (a *Authenticator) StartDeviceFlow(ctx context.Context) (*DeviceFlow, error) {
	cfg := a.oauthConfig()
	octx := a.context(ctx)

	da, err := cfg.DeviceAuth(octx)
	if err != nil {
		return nil, fmt.Errorf("failed to request device code: %w", err)
	}

	verification := da.VerificationURI
	flow := &DeviceFlow{
		UserCode:        da.UserCode,
		VerificationURL: verification,
		Message: fmt.Sprintf("To sign in, use a web browser to open the page %s and enter the code %s to authenticate.",
			verification, da.UserCode),
		ExpiresAt: da.Expiry,
		done:      make(chan struct{}),
	}
	a.setState(StateAwaitingDeviceCode)

	go func() {
		defer close(flow.done)

		tok, err := cfg.DeviceAccessToken(octx, da)
		if err != nil {
			a.setState(StateUnauthenticated)
			flow.err = fmt.Errorf("Authentication failed: %w", err)
			return
		}

		rec := a.recordFromToken(tok)
		if err := a.store.Save(rec); err != nil {
			a.setState(StateUnauthenticated)
			flow.err = fmt.Errorf("failed to save auth record: %w", err)
			return
		}
		a.setState(StateAuthenticated)
		flow.record = rec
	}()

	return flow, nil
}

func (a *Authenticator) recordFromToken(tok *oauth2.Token) *AuthRecord {
	rec := &AuthRecord{
		TenantID:  a.opts.TenantID,
		ClientID:  a.opts.ClientID,
		Authority: a.opts.Authority,
		Token:     tok,
	}
	if raw, ok := tok.Extra("id_token").(string); ok {
		claims := decodeIDToken(raw)
		rec.Username = claims.PreferredUsername
		if claims.TenantID != "" {
			rec.TenantID = claims.TenantID
		}
		if claims.ObjectID != "" && claims.TenantID != "" {
			rec.HomeAccountID = claims.ObjectID + "." + claims.TenantID
		}
	}
	return rec
}

type idTokenClaims struct {
	PreferredUsername string `json:"preferred_username"`
	ObjectID          string `json:"oid"`
	TenantID          string `json:"tid"`
}

// decodeIDToken reads the id_token payload without verifying it; the token
// came straight from the token endpoint over TLS.
func decodeIDToken(raw string) idTokenClaims {
	var claims idTokenClaims
	parts := strings.Split(raw, ".")
	if len(parts) != 3 {
		return claims
	}
	payload, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		return claims
	}
	_ = json.Unmarshal(payload, &claims)
	return claims
}

// persistingSource writes refreshed tokens back to the record store.
type persistingSource struct {
	base   oauth2.TokenSource
	record *AuthRecord
	store  *RecordStore
	logger *common.Logger

	mu   sync.Mutex
	last string
}

func (p *persistingSource) Token() (*oauth2.Token, error) {
	tok, err := p.base.Token()
	if err != nil {
		return nil, err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if tok.AccessToken != p.last {
		p.last = tok.AccessToken
		p.record.Token = tok
		if err := p.store.Save(p.record); err != nil {
			p.logger.Warn().Str("error", err.Error()).Msg("failed to persist refreshed token")
		}
	}
	return tok, nil
}
