package session

import (
	"encoding/json"
	"errors"
	"time"

	"specs-nexus-web/internal/config"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// Cookie names for the two principal slots. Member and officer sessions
// are fully independent; logging in as one never touches the other.
const (
	memberCookie  = "specs_member_session"
	officerCookie = "specs_officer_session"
)

var ErrCodecInvalid = errors.New("session cookie is invalid")

// Session is the persisted credential pair for one principal kind: the
// remote API bearer token plus the cached profile blob from login time.
type Session struct {
	Token   string
	Profile json.RawMessage
}

// Decode unmarshals the cached profile into v.
func (s Session) Decode(v any) error {
	return json.Unmarshal(s.Profile, v)
}

type claims struct {
	Token   string          `json:"token"`
	Profile json.RawMessage `json:"profile"`
	jwt.RegisteredClaims
}

// Store signs and verifies the session cookies. The wrapper carries no
// expiry of its own: a dead bearer token is only discovered when an API
// call fails with an authorization error.
type Store struct {
	secret []byte
	cfg    config.SessionConfig
}

// NewStore creates a session store from the session configuration.
func NewStore(cfg config.SessionConfig) *Store {
	return &Store{secret: []byte(cfg.Secret), cfg: cfg}
}

// SaveMember stores a member session in the member slot.
func (s *Store) SaveMember(c *fiber.Ctx, token string, profile json.RawMessage) error {
	return s.save(c, memberCookie, token, profile)
}

// SaveOfficer stores an officer session in the officer slot.
func (s *Store) SaveOfficer(c *fiber.Ctx, token string, profile json.RawMessage) error {
	return s.save(c, officerCookie, token, profile)
}

// LoadMember returns the member session, if one is present and intact.
func (s *Store) LoadMember(c *fiber.Ctx) (Session, bool) {
	return s.load(c, memberCookie)
}

// LoadOfficer returns the officer session, if one is present and intact.
func (s *Store) LoadOfficer(c *fiber.Ctx) (Session, bool) {
	return s.load(c, officerCookie)
}

// ClearMember destroys the member session.
func (s *Store) ClearMember(c *fiber.Ctx) {
	s.clear(c, memberCookie)
}

// ClearOfficer destroys the officer session.
func (s *Store) ClearOfficer(c *fiber.Ctx) {
	s.clear(c, officerCookie)
}

func (s *Store) save(c *fiber.Ctx, name, token string, profile json.RawMessage) error {
	value, err := s.Encode(token, profile)
	if err != nil {
		return err
	}
	c.Cookie(&fiber.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		Domain:   s.cfg.Domain,
		Secure:   s.cfg.CookieSecure,
		HTTPOnly: true,
		SameSite: s.cfg.SameSite,
	})
	return nil
}

func (s *Store) load(c *fiber.Ctx, name string) (Session, bool) {
	raw := c.Cookies(name)
	if raw == "" {
		return Session{}, false
	}
	sess, err := s.Decode(raw)
	if err != nil {
		return Session{}, false
	}
	return sess, true
}

func (s *Store) clear(c *fiber.Ctx, name string) {
	c.Cookie(&fiber.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		Domain:   s.cfg.Domain,
		Expires:  time.Now().Add(-time.Hour),
		Secure:   s.cfg.CookieSecure,
		HTTPOnly: true,
		SameSite: s.cfg.SameSite,
	})
}

// Encode signs a session into a cookie value. Exposed for tests.
func (s *Store) Encode(token string, profile json.RawMessage) (string, error) {
	cl := claims{
		Token:   token,
		Profile: profile,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(time.Now()),
			Issuer:   "specs-nexus-web",
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, cl).SignedString(s.secret)
}

// Decode verifies a cookie value and returns the session inside it.
func (s *Store) Decode(value string) (Session, error) {
	parsed, err := jwt.ParseWithClaims(value, &claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrCodecInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		return Session{}, ErrCodecInvalid
	}
	cl, ok := parsed.Claims.(*claims)
	if !ok || !parsed.Valid {
		return Session{}, ErrCodecInvalid
	}
	return Session{Token: cl.Token, Profile: cl.Profile}, nil
}
