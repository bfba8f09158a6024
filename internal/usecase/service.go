package usecase

import (
	"webuild-dashboard/internal/data/repository"
	"webuild-dashboard/pkg/mail"
	"webuild-dashboard/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth      AuthService
	User      UserService
	Project   ProjectService
	Task      TaskService
	Resource  ResourceService
	Client    ClientService
	Activity  ActivityService
	Document  DocumentService
	Equipment EquipmentService
}

func NewService(repo *repository.Repository, mailer mail.Mailer, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:      NewAuthService(repo, mailer, config, log),
		User:      NewUserService(repo.User, log),
		Project:   NewProjectService(repo, log),
		Task:      NewTaskService(repo, log),
		Resource:  NewResourceService(repo, log),
		Client:    NewClientService(repo.Client, log),
		Activity:  NewActivityService(repo, log),
		Document:  NewDocumentService(repo, log),
		Equipment: NewEquipmentService(repo, log),
	}
}
