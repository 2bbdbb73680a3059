// Package auth signs users in through a federated identity provider and
// exchanges the resulting ID token for an IDE session.
package auth

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/cloudpebble/cptui/internal/errors"
	"github.com/cloudpebble/cptui/internal/logger"
)

// ErrPopupClosed is returned by a Popup when the user abandons sign-in.
var ErrPopupClosed = stderrors.New("sign-in popup closed")

// Provider is a federated identity provider.
type Provider struct {
	ID    string
	Label string
}

// Providers are the sign-in options offered on the splash screen.
var Providers = []Provider{
	{ID: "google.com", Label: "Google"},
	{ID: "github.com", Label: "GitHub"},
	{ID: "apple.com", Label: "Apple"},
}

// ProviderByID looks up one of Providers.
func ProviderByID(id string) (Provider, bool) {
	i := slices.IndexFunc(Providers, func(p Provider) bool { return p.ID == id })
	if i < 0 {
		return Provider{}, false
	}
	return Providers[i], true
}

// Credential is what a provider hands back after the user authorizes.
type Credential struct {
	ProviderID  string
	IDToken     string
	AccessToken string
}

// Session is a signed-in identity platform user.
type Session struct {
	IDToken      string
	RefreshToken string
	Email        string
	LocalID      string
}

// AccountExistsError means the credential's email already belongs to an
// account registered with a different provider.
type AccountExistsError struct {
	Email   string
	Pending Credential
}

func (e *AccountExistsError) Error() string {
	return fmt.Sprintf("an account already exists for %s with a different sign-in method", e.Email)
}

// Popup obtains a provider credential from the user.
type Popup interface {
	Authorize(ctx context.Context, p Provider) (Credential, error)
}

// IdentityService is the identity platform.
type IdentityService interface {
	SignInWithCredential(ctx context.Context, cred Credential) (Session, error)
	SignInMethods(ctx context.Context, email string) ([]string, error)
	LinkCredential(ctx context.Context, idToken string, cred Credential) (Session, error)
}

// Chooser asks the user which provider owns email when the identity
// platform cannot say.
type Chooser interface {
	Choose(ctx context.Context, email string, options []Provider) (Provider, error)
}

// TokenExchanger trades an ID token for an IDE session. *api.Client
// implements it.
type TokenExchanger interface {
	FirebaseLogin(ctx context.Context, idToken string) error
}

// PasswordAuthenticator signs in with a username and password. *api.Client
// implements it.
type PasswordAuthenticator interface {
	Login(ctx context.Context, username, password string) error
}

// Result describes a completed sign-in.
type Result struct {
	Email    string
	Provider string
	Linked   bool
	Claims   Claims
}

// Flow runs federated sign-in from popup to IDE session.
type Flow struct {
	popup    Popup
	identity IdentityService
	chooser  Chooser
	exchange TokenExchanger
	log      *slog.Logger
}

// NewFlow wires a Flow. chooser may be nil, in which case an ambiguous
// account-exists case fails instead of prompting.
func NewFlow(popup Popup, identity IdentityService, chooser Chooser, exchange TokenExchanger) *Flow {
	return &Flow{
		popup:    popup,
		identity: identity,
		chooser:  chooser,
		exchange: exchange,
		log:      logger.WithComponent("auth"),
	}
}

// SignIn authenticates with p. A closed popup yields a KindCancelled error
// the UI ignores.
func (f *Flow) SignIn(ctx context.Context, p Provider) (Result, error) {
	const op = errors.Op("auth.SignIn")

	cred, err := f.authorize(ctx, op, p)
	if err != nil {
		return Result{}, err
	}

	sess, err := f.identity.SignInWithCredential(ctx, cred)
	linked := false
	var exists *AccountExistsError
	if stderrors.As(err, &exists) {
		f.log.Info("account exists with another provider", "provider", p.ID)
		sess, err = f.link(ctx, exists)
		linked = true
	}
	if err != nil {
		return Result{}, errors.E(op, err)
	}

	res, err := f.finish(ctx, op, sess, p.ID)
	res.Linked = linked
	return res, err
}

func (f *Flow) authorize(ctx context.Context, op errors.Op, p Provider) (Credential, error) {
	cred, err := f.popup.Authorize(ctx, p)
	switch {
	case stderrors.Is(err, ErrPopupClosed), stderrors.Is(err, context.Canceled):
		f.log.Debug("popup closed", "provider", p.ID)
		return Credential{}, errors.E(op, errors.KindCancelled, err)
	case errors.Is(err, errors.KindTimeout):
		return Credential{}, errors.E(op, err)
	case err != nil:
		return Credential{}, errors.E(op, errors.KindAuth, err)
	}
	if cred.ProviderID == "" {
		cred.ProviderID = p.ID
	}
	return cred, nil
}

// link signs in with the provider that owns the account and attaches the
// pending credential to it.
func (f *Flow) link(ctx context.Context, exists *AccountExistsError) (Session, error) {
	const op = errors.Op("auth.link")

	owner, err := f.owningProvider(ctx, exists)
	if err != nil {
		return Session{}, err
	}
	f.log.Info("linking accounts", "owner", owner.ID, "pending", exists.Pending.ProviderID)

	cred, err := f.authorize(ctx, op, owner)
	if err != nil {
		return Session{}, err
	}
	sess, err := f.identity.SignInWithCredential(ctx, cred)
	if err != nil {
		return Session{}, errors.E(op, err)
	}
	return f.identity.LinkCredential(ctx, sess.IDToken, exists.Pending)
}

func (f *Flow) owningProvider(ctx context.Context, exists *AccountExistsError) (Provider, error) {
	const op = errors.Op("auth.owningProvider")

	methods, err := f.identity.SignInMethods(ctx, exists.Email)
	if err != nil {
		return Provider{}, errors.E(op, err)
	}
	for _, m := range methods {
		if m == exists.Pending.ProviderID {
			continue
		}
		if p, ok := ProviderByID(m); ok {
			return p, nil
		}
	}

	if f.chooser == nil {
		return Provider{}, errors.E(op, errors.KindAuth, exists)
	}
	options := slices.DeleteFunc(slices.Clone(Providers), func(p Provider) bool {
		return p.ID == exists.Pending.ProviderID
	})
	p, err := f.chooser.Choose(ctx, exists.Email, options)
	if err != nil {
		if stderrors.Is(err, ErrPopupClosed) || stderrors.Is(err, context.Canceled) {
			return Provider{}, errors.E(op, errors.KindCancelled, err)
		}
		return Provider{}, errors.E(op, err)
	}
	return p, nil
}

func (f *Flow) finish(ctx context.Context, op errors.Op, sess Session, providerID string) (Result, error) {
	claims, err := ParseClaims(sess.IDToken)
	if err != nil {
		f.log.Warn("unreadable id token claims", "error", err)
	}
	if err := f.exchange.FirebaseLogin(ctx, sess.IDToken); err != nil {
		return Result{}, errors.E(op, err)
	}

	email := sess.Email
	if email == "" {
		email = claims.Email
	}
	f.log.Info("signed in", "provider", providerID, "expires", claims.ExpiresAt)
	return Result{Email: email, Provider: providerID, Claims: claims}, nil
}

// ValidatePassword checks that both credentials were entered.
func ValidatePassword(username, password string) error {
	if username == "" || password == "" {
		return errors.Validation(errors.Op("auth.PasswordLogin"), "username and password are required")
	}
	return nil
}

// PasswordLogin signs in with IDE credentials directly.
func PasswordLogin(ctx context.Context, a PasswordAuthenticator, username, password string) error {
	const op = errors.Op("auth.PasswordLogin")
	if err := ValidatePassword(username, password); err != nil {
		return err
	}
	if err := a.Login(ctx, username, password); err != nil {
		return errors.E(op, err)
	}
	return nil
}
