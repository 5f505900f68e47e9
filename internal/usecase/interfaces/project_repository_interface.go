package interfaces

import (
	"context"

	"construction_backoffice/internal/domain/entities"
)

// IProjectRepository abstracts DynamoDB persistence for Project.
type IProjectRepository interface {
	Create(ctx context.Context, p entities.Project) (entities.Project, error)
	GetByID(ctx context.Context, id string) (entities.Project, error)
	List(ctx context.Context) ([]entities.Project, error)
	ListIDs(ctx context.Context) ([]string, error)
	UpdateStatus(ctx context.Context, id string, status entities.ProjectStatus, modifiedBy string) (entities.Project, error)
}
