package repository

import (
	"gorm.io/gorm"
)

type Repos struct {
	User         UserRepo
	Form         FormRepo
	Submission   SubmissionRepo
	Document     DocumentRepo
	Option       OptionRepo
	SecurityMail SecurityMailRepo

	db *gorm.DB
}

func NewRepositories(db *gorm.DB) *Repos {
	return &Repos{
		User:         NewUserRepo(db),
		Form:         NewFormRepo(db),
		Submission:   NewSubmissionRepo(db),
		Document:     NewDocumentRepo(db),
		Option:       NewOptionRepo(db),
		SecurityMail: NewSecurityMailRepo(db),
		db:           db,
	}
}

func (r *Repos) WithTx(tx *gorm.DB) *Repos {
	return &Repos{
		User:         r.User.WithTx(tx),
		Form:         r.Form.WithTx(tx),
		Submission:   r.Submission.WithTx(tx),
		Document:     r.Document.WithTx(tx),
		Option:       r.Option.WithTx(tx),
		SecurityMail: r.SecurityMail.WithTx(tx),
		db:           tx,
	}
}

// ExecTx runs fn inside one database transaction. Repos built without a
// connection (unit tests with mocks) run fn directly.
func (r *Repos) ExecTx(fn func(*Repos) error) error {
	if r.db == nil {
		return fn(r)
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(r.WithTx(tx))
	})
}
