package app

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/cloudpebble/cptui/internal/auth"
	"github.com/cloudpebble/cptui/internal/errors"
	"github.com/cloudpebble/cptui/internal/i18n"
	"github.com/cloudpebble/cptui/internal/logger"
	"github.com/cloudpebble/cptui/internal/ui"
)

// startRequest returns a context for a sign-in or import request. It is
// released when the request resolves and cancelled only on quit.
func (m *Model) startRequest() context.Context {
	ctx, cancel := context.WithCancel(m.ctx)
	m.cancelRequest = cancel
	return ctx
}

func (m *Model) endRequest() {
	if m.cancelRequest != nil {
		m.cancelRequest()
		m.cancelRequest = nil
	}
}

func (m *Model) handleSplashSelect(msg ui.SplashSelectMsg) (tea.Model, tea.Cmd) {
	if msg.Password {
		m.modal.Show(ui.NewPasswordLoginState())
		return m, nil
	}
	if m.popup == nil || m.identity == nil {
		return m, m.ShowFlashError("Federated sign-in is not configured; use username and password")
	}

	ctx := m.startRequest()
	bridge := newChooserBridge()
	flow := auth.NewFlow(m.popup, m.identity, bridge, m.svc)
	p := msg.Provider
	logger.Info("App: signing in with %s", p.ID)

	signIn := func() tea.Msg {
		defer bridge.close()
		res, err := flow.SignIn(ctx, p)
		return SignedInMsg{Result: res, Err: err}
	}
	return m, tea.Batch(m.splash.Start(m.loc.T(i18n.MsgLoggingIn)), signIn, bridge.listen())
}

func (m *Model) passwordLogin(s *ui.PasswordLoginState) tea.Cmd {
	user, pass := s.Credentials()
	if err := auth.ValidatePassword(user, pass); err != nil {
		s.Progress.Invalid(errors.Message(err))
		return nil
	}
	ctx := m.startRequest()
	svc := m.svc
	login := func() tea.Msg {
		err := auth.PasswordLogin(ctx, svc, user, pass)
		return SignedInMsg{Username: user, Result: auth.Result{Provider: "password"}, Err: err}
	}
	return tea.Batch(s.Progress.Start(m.loc.T(i18n.MsgLoggingIn)), login)
}

func (m *Model) handleChooseProvider(msg ChooseProviderMsg) (tea.Model, tea.Cmd) {
	req := msg.req
	m.chooser = &req
	m.modal.Show(ui.NewProviderChooserState(req.email, req.options))
	return m, m.ShowFlashInfo(m.loc.T(i18n.MsgLinkAccount, req.email))
}

// answerChooser replies to the pending chooser question and closes the dialog.
func (m *Model) answerChooser(p auth.Provider, err error) {
	if m.chooser != nil {
		m.chooser.reply <- chooseReply{provider: p, err: err}
		m.chooser = nil
	}
	m.modal.Hide()
}

func (m *Model) handleSignedIn(msg SignedInMsg) (tea.Model, tea.Cmd) {
	m.endRequest()
	m.chooser = nil

	pw, fromModal := m.modal.State.(*ui.PasswordLoginState)
	if _, ok := m.modal.State.(*ui.ProviderChooserState); ok {
		m.modal.Hide()
	}

	if msg.Err != nil {
		logger.Warn("App: sign-in failed: %v", msg.Err)
		text := ""
		if !errors.Is(msg.Err, errors.KindCancelled) {
			text = errorText(msg.Err)
		}
		if fromModal {
			pw.Progress.Fail(text)
		}
		m.splash.Done(text)
		return m, nil
	}

	m.splash.Done("")
	if fromModal {
		m.modal.Hide()
	}

	if m.session != nil {
		m.session.Update(m.svc.BaseURL(), msg.Username, msg.Result.Email, msg.Result.Provider, m.svc.Cookies())
		if err := m.session.Save(); err != nil {
			logger.Error("App: failed to save session: %v", err)
		}
		m.header.SetUser(m.session.DisplayName())
	}
	logger.Info("App: signed in via %s", msg.Result.Provider)
	return m, m.enterProjects()
}
