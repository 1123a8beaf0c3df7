package handlers

import (
	"github.com/ehsworks/safety-go/internal/application"
)

type Handlers struct {
	User   *UserHandler
	Form   *FormHandler
	Option *OptionHandler
}

func New(svc *application.Services) *Handlers {
	return &Handlers{
		User:   NewUserHandler(svc.User),
		Form:   NewFormHandler(svc.Workflow, svc.Retrieval, svc.Document),
		Option: NewOptionHandler(svc.Option),
	}
}
