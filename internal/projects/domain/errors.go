package domain

import "errors"

var (
	ErrProjectAlreadyExists = errors.New("project already exists")
	ErrProjectNotFound      = errors.New("project does not exist")
	ErrProjectCompleted     = errors.New("project is already completed")
	ErrAccessDenied         = errors.New("access denied, make sure that you are working on your own project")
	ErrDetailsNotRetrieved  = errors.New("project details cannot be retrieved")
	ErrTasksNotCompleted    = errors.New("project tasks cannot be completed")
	ErrTasksNotDeleted      = errors.New("project tasks cannot be deleted")
)
