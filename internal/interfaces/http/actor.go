package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/economit/backoffice/internal/application/directory"
	"github.com/economit/backoffice/internal/domain"
	"github.com/economit/backoffice/internal/domain/entity"
)

// actorFrom resuelve el usuario autenticado contra la DB a partir del email
// del token. Los casos de uso reciben siempre el estado fresco del actor, no
// lo que diga un token viejo.
func actorFrom(c *fiber.Ctx, dir *directory.Directory) (*entity.User, error) {
	email := GetEmail(c)
	if email == "" {
		return nil, domain.ErrUnauthorized
	}
	actor, _, err := dir.ResolveActor(email)
	if err != nil {
		return nil, err
	}
	return actor, nil
}
