package auth

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloudpebble/cptui/internal/errors"
)

func identityServer(t *testing.T, handle func(method string, body map[string]any) (int, any)) *IdentityClient {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		status, out := handle(r.URL.Path[len("/v1/"):], body)
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(out)
	}))
	t.Cleanup(srv.Close)
	return NewIdentityClient(srv.URL+"/v1/", "test-key", srv.Client())
}

func TestIdentity_SignIn(t *testing.T) {
	c := identityServer(t, func(method string, body map[string]any) (int, any) {
		assert.Equal(t, "accounts:signInWithIdp", method)
		post, err := url.ParseQuery(body["postBody"].(string))
		require.NoError(t, err)
		assert.Equal(t, "google.com", post.Get("providerId"))
		assert.Equal(t, "g-token", post.Get("id_token"))
		return http.StatusOK, map[string]any{"idToken": "fb", "email": "a@example.com", "localId": "u1"}
	})

	sess, err := c.SignInWithCredential(context.Background(), Credential{ProviderID: "google.com", IDToken: "g-token"})
	require.NoError(t, err)
	assert.Equal(t, Session{IDToken: "fb", Email: "a@example.com", LocalID: "u1"}, sess)
}

func TestIdentity_NeedConfirmation(t *testing.T) {
	c := identityServer(t, func(string, map[string]any) (int, any) {
		return http.StatusOK, map[string]any{
			"needConfirmation": true,
			"email":            "a@example.com",
			"oauthAccessToken": "gh-access",
		}
	})

	_, err := c.SignInWithCredential(context.Background(), Credential{ProviderID: "github.com", AccessToken: "code"})
	var exists *AccountExistsError
	require.True(t, stderrors.As(err, &exists))
	assert.Equal(t, "a@example.com", exists.Email)
	assert.Equal(t, Credential{ProviderID: "github.com", AccessToken: "gh-access"}, exists.Pending)
}

func TestIdentity_SignInMethods(t *testing.T) {
	c := identityServer(t, func(method string, body map[string]any) (int, any) {
		assert.Equal(t, "accounts:createAuthUri", method)
		assert.Equal(t, "a@example.com", body["identifier"])
		return http.StatusOK, map[string]any{"registered": true, "signinMethods": []string{"google.com"}}
	})

	methods, err := c.SignInMethods(context.Background(), "a@example.com")
	require.NoError(t, err)
	assert.Equal(t, []string{"google.com"}, methods)
}

func TestIdentity_LinkSendsIDToken(t *testing.T) {
	c := identityServer(t, func(_ string, body map[string]any) (int, any) {
		assert.Equal(t, "owner-token", body["idToken"])
		return http.StatusOK, map[string]any{"idToken": "linked"}
	})

	sess, err := c.LinkCredential(context.Background(), "owner-token", Credential{ProviderID: "github.com", AccessToken: "x"})
	require.NoError(t, err)
	assert.Equal(t, "linked", sess.IDToken)
}

func TestIdentity_ErrorResponse(t *testing.T) {
	c := identityServer(t, func(string, map[string]any) (int, any) {
		return http.StatusBadRequest, map[string]any{"error": map[string]any{"code": 400, "message": "INVALID_IDP_RESPONSE"}}
	})

	_, err := c.SignInWithCredential(context.Background(), Credential{ProviderID: "google.com", IDToken: "bad"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.KindAuth))
	assert.Equal(t, "INVALID_IDP_RESPONSE", errors.Message(err))
}

// browserFor returns an Open func that plays the sign-in page: it follows
// redirect_uri with the given query.
func browserFor(t *testing.T, extra url.Values, tamperState bool) func(string) error {
	return func(target string) error {
		u, err := url.Parse(target)
		require.NoError(t, err)
		q := u.Query()
		assert.Equal(t, "github.com", q.Get("provider"))

		cb := url.Values{"state": {q.Get("state")}}
		if tamperState {
			cb.Set("state", "wrong")
		}
		for k, v := range extra {
			cb[k] = v
		}
		go func() {
			resp, err := http.Get(q.Get("redirect_uri") + "?" + cb.Encode())
			if err == nil {
				resp.Body.Close()
			}
		}()
		return nil
	}
}

func TestBrowserPopup(t *testing.T) {
	p := NewBrowserPopup("https://ide.example.com/accounts/firebase/popup")
	p.Open = browserFor(t, url.Values{"access_token": {"gh"}}, false)

	cred, err := p.Authorize(context.Background(), Providers[1])
	require.NoError(t, err)
	assert.Equal(t, Credential{ProviderID: "github.com", AccessToken: "gh"}, cred)
}

func TestBrowserPopup_Closed(t *testing.T) {
	p := NewBrowserPopup("https://ide.example.com/popup")
	p.Open = browserFor(t, url.Values{"error": {"popup_closed_by_user"}}, false)

	_, err := p.Authorize(context.Background(), Providers[1])
	assert.ErrorIs(t, err, ErrPopupClosed)
}

func TestBrowserPopup_StateMismatchTimesOut(t *testing.T) {
	p := NewBrowserPopup("https://ide.example.com/popup")
	p.Timeout = 200 * time.Millisecond
	p.Open = browserFor(t, url.Values{"access_token": {"gh"}}, true)

	_, err := p.Authorize(context.Background(), Providers[1])
	assert.True(t, errors.Is(err, errors.KindTimeout), "err = %v", err)
	assert.NotErrorIs(t, err, ErrPopupClosed)
}

func TestBrowserPopup_NoCallbackTimesOut(t *testing.T) {
	p := NewBrowserPopup("https://ide.example.com/popup")
	p.Timeout = 50 * time.Millisecond
	p.Open = func(string) error { return nil }

	_, err := p.Authorize(context.Background(), Providers[0])
	assert.True(t, errors.Is(err, errors.KindTimeout), "err = %v", err)
	assert.Contains(t, errors.Message(err), "not completed")
}

func TestBrowserPopup_BadAuthURL(t *testing.T) {
	p := NewBrowserPopup("not a url")
	p.Open = func(string) error { t.Fatal("browser opened"); return nil }

	_, err := p.Authorize(context.Background(), Providers[0])
	assert.True(t, errors.Is(err, errors.KindConfig))
}
