package nav

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jask/modernapp/internal/auth"
	"github.com/jask/modernapp/internal/delay"
)

// ErrLoginPending is returned when credentials are submitted while an
// accepted sign-in is still waiting on its timer.
var ErrLoginPending = errors.New("login already in progress")

// Controller owns the State and applies transitions to it. It is not safe
// for concurrent use; callers drive it from a single goroutine.
type Controller struct {
	state   State
	gate    auth.Checker
	delay   time.Duration
	log     *zap.Logger
	now     func() time.Time
	message string

	pending      *delay.Task
	pendingEmail string
}

type Option func(*Controller)

// WithDelay sets how long an accepted sign-in waits before completing.
func WithDelay(d time.Duration) Option {
	return func(c *Controller) { c.delay = d }
}

func WithLogger(l *zap.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.log = l
		}
	}
}

// WithClock overrides the time source used to stamp sessions.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) { c.now = now }
}

// WithState starts the controller from s instead of Initial().
func WithState(s State) Option {
	return func(c *Controller) { c.state = s }
}

func NewController(gate auth.Checker, opts ...Option) *Controller {
	c := &Controller{
		state: Initial(),
		gate:  gate,
		delay: 500 * time.Millisecond,
		log:   zap.NewNop(),
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) State() State { return c.state }

// Message is the inline text for the login form, empty until a submit.
func (c *Controller) Message() string { return c.message }

// Pending reports whether an accepted sign-in is waiting on its timer.
func (c *Controller) Pending() bool { return c.pending != nil }

func (c *Controller) GoToLogin() {
	c.message = ""
	c.apply("go_to_login", c.state.GoToLogin())
}

// SubmitCredentials checks the pair against the gate. On a match it returns
// an armed timer task; the caller waits on it and then calls FinishLogin.
// On a mismatch the error is returned right away and the page is unchanged.
func (c *Controller) SubmitCredentials(ctx context.Context, email, password string) (*delay.Task, error) {
	if c.pending != nil {
		// the form may have been re-entered since; keep the accepted text up
		c.message = auth.MsgSuccess
		return nil, ErrLoginPending
	}
	err := auth.Verify(c.gate, email, password)
	c.message = auth.Message(err)
	if err != nil {
		c.log.Info("login rejected", zap.String("email", email), zap.Error(err))
		return nil, err
	}
	task := delay.Start(ctx, c.delay)
	c.pending = task
	c.pendingEmail = email
	c.log.Info("login accepted", zap.String("email", email), zap.Uint64("task", task.ID()), zap.Duration("delay", task.Duration()))
	return task, nil
}

// FinishLogin completes the sign-in started by task. It reports false when
// task is not the pending one.
func (c *Controller) FinishLogin(task *delay.Task) bool {
	if task == nil || c.pending != task {
		return false
	}
	sess := Session{
		ID:    uuid.NewString(),
		Email: c.pendingEmail,
		Since: c.now(),
	}
	c.clearPending()
	c.apply("complete_login", c.state.CompleteLogin(sess))
	c.log.Info("session started",
		zap.String("session", sess.ID),
		zap.String("email", sess.Email),
		zap.Time("since", sess.Since),
	)
	return true
}

// AbortLogin drops the pending sign-in after its task was cancelled.
func (c *Controller) AbortLogin(task *delay.Task, cause error) {
	if task == nil || c.pending != task {
		return
	}
	c.log.Info("login aborted", zap.Uint64("task", task.ID()), zap.Error(cause))
	c.clearPending()
}

// CancelPending cancels a waiting sign-in, if any.
func (c *Controller) CancelPending() {
	if c.pending != nil {
		c.pending.Cancel()
	}
}

func (c *Controller) ConfirmSuccess() {
	c.apply("confirm_success", c.state.ConfirmSuccess())
}

func (c *Controller) Logout() {
	if sess := c.state.Session; sess.ID != "" {
		c.log.Info("session ended",
			zap.String("session", sess.ID),
			zap.Duration("duration", c.now().Sub(sess.Since)),
		)
	}
	c.apply("logout", c.state.Logout())
}

func (c *Controller) OpenGrid() {
	c.apply("open_grid", c.state.OpenGrid())
}

func (c *Controller) GoToHome() {
	c.apply("go_to_home", c.state.GoToHome())
}

func (c *Controller) TogglePanel() {
	c.apply("toggle_panel", c.state.TogglePanel())
}

func (c *Controller) ClosePanel() {
	c.apply("close_panel", c.state.ClosePanel())
}

// SelectGridFromPanel is the side panel's menu action.
func (c *Controller) SelectGridFromPanel() {
	c.apply("panel_grid", c.state.OpenGrid().ClosePanel())
}

func (c *Controller) clearPending() {
	c.pending = nil
	c.pendingEmail = ""
}

func (c *Controller) apply(op string, next State) {
	prev := c.state
	c.state = next
	c.log.Debug("transition",
		zap.String("op", op),
		zap.String("from", string(prev.Page)),
		zap.String("to", string(next.Page)),
		zap.Bool("panel_open", next.PanelOpen),
		zap.Bool("authenticated", next.Authenticated()),
	)
}
