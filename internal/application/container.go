package application

import (
	"github.com/ehsworks/safety-go/internal/repository"
	"github.com/ehsworks/safety-go/pkg/mailer"
)

type Services struct {
	User      *UserService
	Workflow  *WorkflowService
	Retrieval *RetrievalService
	Document  *DocumentService
	Option    *OptionService
	Notifier  *NotificationService
}

func New(repos *repository.Repos, mail mailer.Sender, cfg NotifierConfig) *Services {
	notifier := NewNotificationService(repos, mail, cfg)
	return &Services{
		User:      NewUserService(repos),
		Workflow:  NewWorkflowService(repos, notifier),
		Retrieval: NewRetrievalService(repos),
		Document:  NewDocumentService(repos),
		Option:    NewOptionService(repos),
		Notifier:  notifier,
	}
}
