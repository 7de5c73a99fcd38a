package repository

import (
	"github.com/jklassic/logistics/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	Parcel  ParcelRepository
	Worker  WorkerRepository
	Admin   AdminRepository
	Session SessionRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Parcel:  NewParcelRepository(db, log),
		Worker:  NewWorkerRepository(db, log),
		Admin:   NewAdminRepository(db, log),
		Session: NewSessionRepository(db, log),
	}
}
