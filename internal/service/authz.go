package service

import (
	"github.com/google/uuid"

	"lollyshoppe/internal/auth"
	errs "lollyshoppe/internal/errors"
)

// Authorization rules for every operation: an authenticated actor is always
// required, mutations are reserved for admins, and reads are scoped to the
// owning client unless the actor is an admin.

func requireActor(actor *auth.Actor) error {
	if actor == nil {
		return errs.ErrUnauthenticated
	}
	return nil
}

func requireAdmin(actor *auth.Actor) error {
	if err := requireActor(actor); err != nil {
		return err
	}
	if !actor.IsAdmin() {
		return errs.ErrForbidden
	}
	return nil
}

func requireAdminOrOwner(actor *auth.Actor, clientID uuid.UUID) error {
	if err := requireActor(actor); err != nil {
		return err
	}
	if !actor.IsAdmin() && !actor.Owns(clientID) {
		return errs.ErrForbidden
	}
	return nil
}
