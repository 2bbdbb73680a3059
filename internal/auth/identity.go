package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cloudpebble/cptui/internal/errors"
)

// requestURI is sent as the continue and request URI. The identity
// platform only checks that it is an authorized domain.
const requestURI = "http://localhost"

// IdentityClient talks to the Identity Toolkit REST API.
type IdentityClient struct {
	base   string
	apiKey string
	http   *http.Client
}

// NewIdentityClient returns a client for the API rooted at baseURL, such as
// https://identitytoolkit.googleapis.com/v1.
func NewIdentityClient(baseURL, apiKey string, hc *http.Client) *IdentityClient {
	if hc == nil {
		hc = &http.Client{Timeout: 30 * time.Second}
	}
	return &IdentityClient{base: strings.TrimRight(baseURL, "/"), apiKey: apiKey, http: hc}
}

type signInWithIdpRequest struct {
	PostBody            string `json:"postBody"`
	RequestURI          string `json:"requestUri"`
	IDToken             string `json:"idToken,omitempty"`
	ReturnIdpCredential bool   `json:"returnIdpCredential"`
	ReturnSecureToken   bool   `json:"returnSecureToken"`
}

type signInWithIdpResponse struct {
	IDToken          string `json:"idToken"`
	RefreshToken     string `json:"refreshToken"`
	Email            string `json:"email"`
	LocalID          string `json:"localId"`
	ProviderID       string `json:"providerId"`
	NeedConfirmation bool   `json:"needConfirmation"`
	OAuthIDToken     string `json:"oauthIdToken"`
	OAuthAccessToken string `json:"oauthAccessToken"`
	ErrorMessage     string `json:"errorMessage"`
}

type apiError struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func postBody(cred Credential) string {
	v := url.Values{"providerId": {cred.ProviderID}}
	if cred.IDToken != "" {
		v.Set("id_token", cred.IDToken)
	}
	if cred.AccessToken != "" {
		v.Set("access_token", cred.AccessToken)
	}
	return v.Encode()
}

func (r signInWithIdpResponse) session() Session {
	return Session{IDToken: r.IDToken, RefreshToken: r.RefreshToken, Email: r.Email, LocalID: r.LocalID}
}

// SignInWithCredential signs in with a provider credential. An email
// already registered with another provider yields *AccountExistsError.
func (c *IdentityClient) SignInWithCredential(ctx context.Context, cred Credential) (Session, error) {
	const op = errors.Op("auth.SignInWithCredential")

	var resp signInWithIdpResponse
	err := c.call(ctx, op, "accounts:signInWithIdp", signInWithIdpRequest{
		PostBody:            postBody(cred),
		RequestURI:          requestURI,
		ReturnIdpCredential: true,
		ReturnSecureToken:   true,
	}, &resp)
	if err != nil {
		return Session{}, err
	}
	if resp.NeedConfirmation || resp.ErrorMessage == "FEDERATED_USER_ID_ALREADY_LINKED" {
		pending := Credential{ProviderID: cred.ProviderID, IDToken: resp.OAuthIDToken, AccessToken: resp.OAuthAccessToken}
		if pending.IDToken == "" && pending.AccessToken == "" {
			pending = cred
		}
		return Session{}, &AccountExistsError{Email: resp.Email, Pending: pending}
	}
	if resp.IDToken == "" {
		return Session{}, errors.E(op, errors.KindAuth, "identity platform returned no token")
	}
	return resp.session(), nil
}

// SignInMethods lists the providers registered for email.
func (c *IdentityClient) SignInMethods(ctx context.Context, email string) ([]string, error) {
	var resp struct {
		Registered    bool     `json:"registered"`
		SigninMethods []string `json:"signinMethods"`
		AllProviders  []string `json:"allProviders"`
	}
	err := c.call(ctx, "auth.SignInMethods", "accounts:createAuthUri", map[string]string{
		"identifier":  email,
		"continueUri": requestURI,
	}, &resp)
	if err != nil {
		return nil, err
	}
	if len(resp.SigninMethods) == 0 {
		return resp.AllProviders, nil
	}
	return resp.SigninMethods, nil
}

// LinkCredential attaches cred to the user identified by idToken.
func (c *IdentityClient) LinkCredential(ctx context.Context, idToken string, cred Credential) (Session, error) {
	const op = errors.Op("auth.LinkCredential")

	var resp signInWithIdpResponse
	err := c.call(ctx, op, "accounts:signInWithIdp", signInWithIdpRequest{
		PostBody:            postBody(cred),
		RequestURI:          requestURI,
		IDToken:             idToken,
		ReturnIdpCredential: true,
		ReturnSecureToken:   true,
	}, &resp)
	if err != nil {
		return Session{}, err
	}
	if resp.ErrorMessage != "" {
		return Session{}, errors.E(op, errors.KindAuth, resp.ErrorMessage)
	}
	return resp.session(), nil
}

func (c *IdentityClient) call(ctx context.Context, op errors.Op, method string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return errors.E(op, errors.KindInvalid, err)
	}
	endpoint := c.base + "/" + method + "?key=" + url.QueryEscape(c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.E(op, errors.KindInvalid, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return errors.E(op, errors.KindCancelled, ctx.Err())
		}
		return errors.E(op, errors.KindNetwork, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return errors.E(op, errors.KindNetwork, err)
	}
	if resp.StatusCode/100 != 2 {
		var ae apiError
		if json.Unmarshal(data, &ae) == nil && ae.Error.Message != "" {
			return errors.E(op, errors.KindAuth, ae.Error.Message)
		}
		return errors.HTTPStatus(op, resp.StatusCode, strings.TrimSpace(string(data)))
	}
	if err := json.Unmarshal(data, out); err != nil {
		return errors.E(op, errors.KindInvalid, fmt.Sprintf("decode %s response", method), err)
	}
	return nil
}
