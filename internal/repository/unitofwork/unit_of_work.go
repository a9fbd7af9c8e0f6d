package unitofwork

import (
	"context"

	"dental-assistant-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	PatientRepository() contract.PatientRepository
	ChatMessageRepository() contract.ChatMessageRepository
}
