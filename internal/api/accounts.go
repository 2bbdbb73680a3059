package api

import (
	"context"
	"net/url"

	"github.com/cloudpebble/cptui/internal/errors"
)

// Login signs in with a username and password.
func (c *Client) Login(ctx context.Context, username, password string) error {
	form := url.Values{"username": {username}, "password": {password}}
	return asAuth("api.Login", c.postForm(ctx, "api.Login", "/accounts/api/login", form, nil))
}

// FirebaseLogin exchanges an identity-platform ID token for a server session.
func (c *Client) FirebaseLogin(ctx context.Context, idToken string) error {
	form := url.Values{"id_token": {idToken}}
	return asAuth("api.FirebaseLogin", c.postForm(ctx, "api.FirebaseLogin", "/accounts/api/firebase-login", form, nil))
}

// asAuth reclassifies a server rejection as an auth failure. Transport and
// cancellation errors keep their kind.
func asAuth(op errors.Op, err error) error {
	if err == nil || !errors.Is(err, errors.KindServer) {
		return err
	}
	return errors.E(op, errors.KindAuth, err)
}
