package serverutils

import (
	"time"

	"mentorlink-be/internal/repository/memory"
	"mentorlink-be/pkg/store"

	"github.com/gofiber/fiber/v2"
)

// localSession is the ctx.Locals key the resolved session is threaded under.
// Handlers read it via SessionFromCtx and never touch the cookie themselves.
const localSession = "session"

const loginPage = "/login.html"

type SessionMiddleware struct {
	sessions   *memory.SessionRepository
	cookieName string
	maxAge     time.Duration
	secure     bool
}

func NewSessionMiddleware(sessions *memory.SessionRepository, cookieName string, maxAge time.Duration, secure bool) *SessionMiddleware {
	return &SessionMiddleware{
		sessions:   sessions,
		cookieName: cookieName,
		maxAge:     maxAge,
		secure:     secure,
	}
}

// Resolve looks up the session named by the client's cookie, creating a fresh
// unauthenticated one when the token is absent, unknown, or expired. Runs
// before every route so business logic always sees a session.
func (m *SessionMiddleware) Resolve(ctx *fiber.Ctx) error {
	var sess *store.Session

	if token := ctx.Cookies(m.cookieName); token != "" {
		if existing, found := m.sessions.Get(token); found {
			sess = existing
		}
	}

	if sess == nil {
		sess = store.NewSession(m.maxAge)
		m.sessions.Save(sess)
		m.setCookie(ctx, sess)
	}

	ctx.Locals(localSession, sess)
	return ctx.Next()
}

// Destroy removes the server-side state and expires the cookie. Requests that
// still present the old token get a fresh unauthenticated session.
func (m *SessionMiddleware) Destroy(ctx *fiber.Ctx, sess *store.Session) {
	m.sessions.Delete(sess.ID)
	ctx.Cookie(&fiber.Cookie{
		Name:     m.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HTTPOnly: true,
		Secure:   m.secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

// Persist writes the (mutated) session back to the store. The remaining TTL is
// preserved; marking a session authenticated does not extend its life.
func (m *SessionMiddleware) Persist(sess *store.Session) {
	m.sessions.Save(sess)
}

func (m *SessionMiddleware) setCookie(ctx *fiber.Ctx, sess *store.Session) {
	ctx.Cookie(&fiber.Cookie{
		Name:     m.cookieName,
		Value:    sess.ID,
		Path:     "/",
		MaxAge:   int(m.maxAge.Seconds()),
		HTTPOnly: true,
		Secure:   m.secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

// SessionFromCtx returns the session resolved for this request. Safe on any
// route registered behind Resolve.
func SessionFromCtx(ctx *fiber.Ctx) *store.Session {
	sess, _ := ctx.Locals(localSession).(*store.Session)
	return sess
}

// RequireAuth admits the request only when the session is authenticated;
// API routes get a structured 401.
func RequireAuth(ctx *fiber.Ctx) error {
	sess := SessionFromCtx(ctx)
	if sess == nil || !sess.Authenticated {
		return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(401, "Authentication required"))
	}
	return ctx.Next()
}

// RequireAuthPage is the page-route variant: unauthenticated clients are
// redirected to the login page instead of receiving JSON.
func RequireAuthPage(ctx *fiber.Ctx) error {
	sess := SessionFromCtx(ctx)
	if sess == nil || !sess.Authenticated {
		return ctx.Redirect(loginPage, fiber.StatusSeeOther)
	}
	return ctx.Next()
}
