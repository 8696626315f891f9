package workflow

import (
	"testing"

	"github.com/diyasingla2299/storefront/internal/api"
	"github.com/diyasingla2299/storefront/internal/model"
	"github.com/diyasingla2299/storefront/internal/storetest"
)

func newEnv(t *testing.T, role model.Role) (*storetest.Backend, *api.Client, *model.Session) {
	t.Helper()
	backend := storetest.New()
	t.Cleanup(backend.Close)
	client := api.NewClient(backend.URL(), backend.Token)
	session := &model.Session{
		UserID: 1,
		Role:   role,
		Email:  "user@example.com",
		Token:  backend.Token,
	}
	return backend, client, session
}
