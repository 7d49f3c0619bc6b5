package db

import "gorm.io/gorm"

type Repositories struct {
	Drafts      *DraftRepository
	Submissions *SubmissionRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Drafts:      NewDraftRepository(database),
		Submissions: NewSubmissionRepository(database),
	}
}
