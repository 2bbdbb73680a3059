package auth

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"os/exec"
	"runtime"
	"time"

	"github.com/google/uuid"

	"github.com/cloudpebble/cptui/internal/errors"
	"github.com/cloudpebble/cptui/internal/logger"
)

const callbackPath = "/callback"

const callbackPage = `<!doctype html><title>cptui</title><p>You can close this window and return to the terminal.</p>`

// BrowserPopup opens the sign-in page in the user's browser and waits for
// it to redirect back to a loopback listener.
type BrowserPopup struct {
	// AuthURL is the page that runs the provider sign-in.
	AuthURL string
	// Open launches a browser. Defaults to OpenBrowser.
	Open func(target string) error
	// Timeout bounds how long the user has to finish. Zero means five minutes.
	Timeout time.Duration

	log *slog.Logger
}

// NewBrowserPopup returns a popup for the sign-in page at authURL.
func NewBrowserPopup(authURL string) *BrowserPopup {
	return &BrowserPopup{AuthURL: authURL, Open: OpenBrowser, log: logger.WithComponent("popup")}
}

type callbackResult struct {
	cred Credential
	err  error
}

// Authorize runs one sign-in round trip for p.
func (b *BrowserPopup) Authorize(ctx context.Context, p Provider) (Credential, error) {
	const op = errors.Op("auth.Authorize")

	timeout := b.Timeout
	if timeout == 0 {
		timeout = 5 * time.Minute
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return Credential{}, errors.E(op, errors.KindIO, err)
	}
	state := uuid.NewString()
	redirect := fmt.Sprintf("http://%s%s", ln.Addr().String(), callbackPath)

	results := make(chan callbackResult, 1)
	mux := http.NewServeMux()
	mux.HandleFunc(callbackPath, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("state") != state {
			http.Error(w, "state mismatch", http.StatusBadRequest)
			return
		}
		res := parseCallback(q, p)
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprint(w, callbackPage)
		select {
		case results <- res:
		default:
		}
	})
	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 10 * time.Second}
	go srv.Serve(ln)
	defer srv.Close()

	target, err := b.pageURL(p, redirect, state)
	if err != nil {
		return Credential{}, errors.E(op, errors.KindConfig, err)
	}
	if b.log != nil {
		b.log.Debug("opening sign-in page", "provider", p.ID, "redirect", redirect)
	}
	open := b.Open
	if open == nil {
		open = OpenBrowser
	}
	if err := open(target); err != nil {
		return Credential{}, errors.E(op, errors.KindIO, "could not open a browser", err)
	}

	select {
	case res := <-results:
		return res.cred, res.err
	case <-ctx.Done():
		if stderrors.Is(ctx.Err(), context.DeadlineExceeded) {
			return Credential{}, errors.E(op, errors.KindTimeout, fmt.Sprintf("sign-in was not completed within %s", timeout))
		}
		return Credential{}, ctx.Err()
	}
}

func (b *BrowserPopup) pageURL(p Provider, redirect, state string) (string, error) {
	u, err := url.Parse(b.AuthURL)
	if err != nil || u.Host == "" {
		return "", fmt.Errorf("invalid sign-in page %q", b.AuthURL)
	}
	q := u.Query()
	q.Set("provider", p.ID)
	q.Set("redirect_uri", redirect)
	q.Set("state", state)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

func parseCallback(q url.Values, p Provider) callbackResult {
	switch e := q.Get("error"); e {
	case "":
	case "popup_closed_by_user", "cancelled", "access_denied":
		return callbackResult{err: ErrPopupClosed}
	default:
		if d := q.Get("error_description"); d != "" {
			e = d
		}
		return callbackResult{err: stderrors.New(e)}
	}

	cred := Credential{
		ProviderID:  q.Get("provider"),
		IDToken:     q.Get("id_token"),
		AccessToken: q.Get("access_token"),
	}
	if cred.ProviderID == "" {
		cred.ProviderID = p.ID
	}
	if cred.IDToken == "" && cred.AccessToken == "" {
		return callbackResult{err: stderrors.New("sign-in page returned no credential")}
	}
	return callbackResult{cred: cred}
}

// OpenBrowser opens target with the platform's URL handler.
func OpenBrowser(target string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", target)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", target)
	default:
		cmd = exec.Command("xdg-open", target)
	}
	return cmd.Start()
}
