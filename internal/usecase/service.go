package usecase

import (
	"github.com/jklassic/logistics/internal/data/repository"
	"github.com/jklassic/logistics/pkg/mailer"
	"github.com/jklassic/logistics/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Parcel ParcelService
	Auth   AuthService
	Staff  StaffService
}

func NewService(repo *repository.Repository, mail mailer.Mailer, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Parcel: NewParcelService(repo, mail, config, log),
		Auth:   NewAuthService(repo, mail, config, log),
		Staff:  NewStaffService(repo, log),
	}
}
