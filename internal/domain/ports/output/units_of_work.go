package ports

import (
	"context"

	post_repository "studentoffice-service/internal/domain/ports/output/post"
	studentoffice_repository "studentoffice-service/internal/domain/ports/output/studentoffice"
	user_repository "studentoffice-service/internal/domain/ports/output/user"
	vote_repository "studentoffice-service/internal/domain/ports/output/vote"
)

//go:generate mockery --name UnitOfWork --dir . --output ../../../../mocks --outpkg mocks --with-expecter --structname UnitOfWork --filename UnitOfWork.go
type UnitOfWork interface {
	Begin(ctx context.Context) (Transaction, error)
}

//go:generate mockery --name Transaction --dir . --output ../../../../mocks --outpkg mocks --with-expecter --structname Transaction --filename Transaction.go
type Transaction interface {
	PostRepository() post_repository.Repository
	VoteRepository() vote_repository.Repository
	UserRepository() user_repository.Repository
	StudentOfficeRepository() studentoffice_repository.Repository
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}
