package project

import (
	"time"

	"github.com/jsamuelsen11/go-draft-service/internal/domain/project"
)

// ToDomainProject converts a downstream group to a domain Project.
func ToDomainProject(dto GroupDTO) project.Project {
	createdAt, _ := time.Parse(time.RFC3339, dto.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339, dto.UpdatedAt)

	return project.Project{
		ID:          dto.ID,
		Name:        dto.Name,
		Description: dto.Description,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}
}

// ToCreateGroupRequest converts a committed project draft to a create request.
func ToCreateGroupRequest(p *project.Project) CreateGroupRequestDTO {
	return CreateGroupRequestDTO{
		Name:        p.Name,
		Description: p.Description,
	}
}

// ToUpdateGroupRequest converts a committed project draft to an update
// request that sets every field.
func ToUpdateGroupRequest(p *project.Project) UpdateGroupRequestDTO {
	return UpdateGroupRequestDTO{
		Name:        &p.Name,
		Description: &p.Description,
	}
}
