package repository

import (
	"context"
	"testing"

	"github.com/renovalte/renovalte/internal/apperror"
	"github.com/renovalte/renovalte/internal/constant"
	"github.com/renovalte/renovalte/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectOwnerScope(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	owner := seedUser(t, repo, "owner@example.com")
	other := seedUser(t, repo, "other@example.com")

	project, err := repo.Project.Create(ctx, nil, &model.Project{
		Name:        "Kitchen refresh",
		ProjectType: constant.ProjectTypeKitchen,
		UserID:      owner.ID,
	})
	require.NoError(t, err)

	got, err := repo.Project.GetByIdForUser(ctx, nil, project.ID, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, "Kitchen refresh", got.Name)

	// Someone else's project looks exactly like a missing one.
	_, err = repo.Project.GetByIdForUser(ctx, nil, project.ID, other.ID)
	assert.True(t, apperror.IsNotFound(err))
}

func TestProjectDelete(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	owner := seedUser(t, repo, "owner@example.com")
	other := seedUser(t, repo, "other@example.com")
	project := seedProject(t, repo, owner.ID, "Bathroom remodel")

	err := repo.Project.Delete(ctx, nil, project.ID, other.ID)
	assert.True(t, apperror.IsNotFound(err))

	require.NoError(t, repo.Project.Delete(ctx, nil, project.ID, owner.ID))

	_, err = repo.Project.GetByIdForUser(ctx, nil, project.ID, owner.ID)
	assert.True(t, apperror.IsNotFound(err))
}

func TestProjectListForUser(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	owner := seedUser(t, repo, "owner@example.com")
	other := seedUser(t, repo, "other@example.com")
	seedProject(t, repo, owner.ID, "First")
	seedProject(t, repo, owner.ID, "Second")
	seedProject(t, repo, other.ID, "Not mine")

	projects, err := repo.Project.ListForUser(ctx, nil, owner.ID)
	require.NoError(t, err)
	require.Len(t, projects, 2)
	assert.Equal(t, "First", projects[0].Name)
	assert.Equal(t, "Second", projects[1].Name)
}
