package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	CollegeRepository     *CollegeRepository
	UserRepository        *UserRepository
	CredentialRepository  *CredentialRepository
	JobRepository         *JobRepository
	ApplicationRepository *ApplicationRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		CollegeRepository:     NewCollegeRepository(db),
		UserRepository:        NewUserRepository(db),
		CredentialRepository:  NewCredentialRepository(db),
		JobRepository:         NewJobRepository(db),
		ApplicationRepository: NewApplicationRepository(db),
	}
}
