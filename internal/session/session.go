package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/diyasingla2299/storefront/internal/model"
)

// Storage is the host's persistent key-value store (localStorage in the
// browser shell, an env-backed map in the CLI driver).
type Storage interface {
	Get(key string) string
}

type MapStorage map[string]string

func (m MapStorage) Get(key string) string { return m[key] }

const (
	keyToken  = "token"
	keyUserID = "userId"
	keyRole   = "role"
	keyEmail  = "email"
	keyUser   = "user"
)

// Load builds the one Session instance that is passed to every workflow.
// Workflows never read storage themselves.
//
// Identity is taken from the plain keys written at login; when they are
// missing, the bearer token's claims are decoded (unverified, the server is
// the authority) as a fallback.
func Load(store Storage) (*model.Session, error) {
	s := &model.Session{
		Token: store.Get(keyToken),
		Email: store.Get(keyEmail),
		Role:  ParseRole(store.Get(keyRole)),
	}

	if raw := store.Get(keyUserID); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("stored user id %q is not numeric", raw)
		}
		s.UserID = id
	}

	if s.UserID == 0 || s.Role == "" || s.Email == "" {
		fillFromUserBlob(s, store.Get(keyUser))
	}
	if s.Token != "" && (s.UserID == 0 || s.Role == "" || s.Email == "") {
		fillFromClaims(s)
	}

	if s.Token == "" && s.UserID != 0 {
		return nil, errors.New("session has a user id but no auth token")
	}
	if s.Token != "" && s.UserID == 0 {
		return nil, errors.New("session has an auth token but no user id")
	}
	if s.LoggedIn() && s.Role == "" {
		s.Role = model.RoleBuyer
	}

	return s, nil
}

func ParseRole(raw string) model.Role {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "":
		return ""
	case "USER", "BUYER":
		return model.RoleBuyer
	case "SELLER":
		return model.RoleSeller
	case "MERCHANT":
		return model.RoleMerchant
	case "ADMIN":
		return model.RoleAdmin
	default:
		return model.Role(strings.ToUpper(strings.TrimSpace(raw)))
	}
}

// fillFromUserBlob reads the login response object some frontends persist
// whole under the "user" key.
func fillFromUserBlob(s *model.Session, raw string) {
	if raw == "" {
		return
	}
	var blob struct {
		UserID int64  `json:"userId"`
		ID     int64  `json:"id"`
		Role   string `json:"role"`
		Email  string `json:"email"`
	}
	if err := json.Unmarshal([]byte(raw), &blob); err != nil {
		return
	}
	if s.UserID == 0 {
		if blob.UserID != 0 {
			s.UserID = blob.UserID
		} else {
			s.UserID = blob.ID
		}
	}
	if s.Role == "" {
		s.Role = ParseRole(blob.Role)
	}
	if s.Email == "" {
		s.Email = blob.Email
	}
}

func fillFromClaims(s *model.Session) {
	token, _, err := jwt.NewParser().ParseUnverified(s.Token, jwt.MapClaims{})
	if err != nil {
		return
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return
	}

	if s.UserID == 0 {
		s.UserID = claimInt(claims, "userId", "id", "user_id", "userid")
	}
	if s.Role == "" {
		if role, ok := claims["role"].(string); ok {
			s.Role = ParseRole(role)
		}
	}
	if s.Email == "" {
		if email, ok := claims["email"].(string); ok {
			s.Email = email
		}
	}
}

func claimInt(claims jwt.MapClaims, keys ...string) int64 {
	for _, key := range keys {
		switch v := claims[key].(type) {
		case float64:
			return int64(v)
		case string:
			if id, err := strconv.ParseInt(v, 10, 64); err == nil {
				return id
			}
		}
	}
	return 0
}
