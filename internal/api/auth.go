package api

import (
	"context"
	"net/http"

	"github.com/Spok95/school-admin-client/internal/models"
	"github.com/Spok95/school-admin-client/internal/transport"
)

func Login(ctx context.Context, c *transport.Client, creds models.Credentials) (models.Session, error) {
	raw, err := c.JSON(ctx, http.MethodPost, "/api/users/auth/login/", nil, creds)
	if err != nil {
		return models.Session{}, err
	}
	return unwrap[models.Session](raw)
}
