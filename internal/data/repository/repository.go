package repository

import (
	"webuild-dashboard/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User         UserRepository
	Session      SessionRepository
	Verification VerificationRepository
	Project      ProjectRepository
	Task         TaskRepository
	Resource     ResourceRepository
	Client       ClientRepository
	Activity     ActivityRepository
	Document     DocumentRepository
	Equipment    EquipmentRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:         NewUserRepository(db, log),
		Session:      NewSessionRepository(db, log),
		Verification: NewVerificationRepository(db, log),
		Project:      NewProjectRepository(db, log),
		Task:         NewTaskRepository(db, log),
		Resource:     NewResourceRepository(db, log),
		Client:       NewClientRepository(db, log),
		Activity:     NewActivityRepository(db, log),
		Document:     NewDocumentRepository(db, log),
		Equipment:    NewEquipmentRepository(db, log),
	}
}
