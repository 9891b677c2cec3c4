package repository

import (
	"context"
	"testing"

	"github.com/renovalte/renovalte/internal/apperror"
	"github.com/renovalte/renovalte/internal/constant"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindMatchingByProjectType(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	seedContractor(t, repo, "Bath Pros", "Berlin", "BE", ratingOf(4.0), constant.ProjectTypeBathroom, constant.ProjectTypeKitchen)
	seedContractor(t, repo, "Kitchen Only", "Berlin", "BE", ratingOf(4.8), constant.ProjectTypeKitchen)
	seedContractor(t, repo, "General Works", "Munich", "BY", nil, constant.ProjectTypeGeneral)

	got, err := repo.Contractor.FindMatching(ctx, nil, "bathroom", "", "")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Bath Pros", got[0].Name)
	assert.ElementsMatch(t,
		[]constant.ProjectType{constant.ProjectTypeBathroom, constant.ProjectTypeKitchen},
		got[0].ProjectTypeList())
}

func TestFindMatchingNormalizesProjectType(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	seedContractor(t, repo, "Bath Pros", "Berlin", "BE", ratingOf(4.0), constant.ProjectTypeBathroom)

	got, err := repo.Contractor.FindMatching(ctx, nil, "  Bathroom ", "", "")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Bath Pros", got[0].Name)
}

func TestFindMatchingOrdering(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	// Same rating ties break by name; unrated contractors come last.
	seedContractor(t, repo, "Zeta Renovations", "Berlin", "BE", ratingOf(4.5), constant.ProjectTypeKitchen)
	seedContractor(t, repo, "Alpha Builders", "Berlin", "BE", ratingOf(4.5), constant.ProjectTypeKitchen)
	seedContractor(t, repo, "Beta Crafts", "Berlin", "BE", nil, constant.ProjectTypeKitchen)
	seedContractor(t, repo, "Top Rated", "Berlin", "BE", ratingOf(4.9), constant.ProjectTypeKitchen)

	got, err := repo.Contractor.FindMatching(ctx, nil, "kitchen", "", "")
	require.NoError(t, err)
	require.Len(t, got, 4)

	names := make([]string, 0, len(got))
	for _, c := range got {
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{"Top Rated", "Alpha Builders", "Zeta Renovations", "Beta Crafts"}, names)
}

func TestFindMatchingLocationFilters(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	seedContractor(t, repo, "Berlin Bath", "Berlin", "Berlin", ratingOf(4.0), constant.ProjectTypeBathroom)
	seedContractor(t, repo, "Munich Bath", "Munich", "Bavaria", ratingOf(4.0), constant.ProjectTypeBathroom)

	// City substring match is case-insensitive.
	got, err := repo.Contractor.FindMatching(ctx, nil, "bathroom", "berl", "")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Berlin Bath", got[0].Name)

	// City and state combine with AND.
	got, err = repo.Contractor.FindMatching(ctx, nil, "bathroom", "munich", "berlin")
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = repo.Contractor.FindMatching(ctx, nil, "bathroom", "munich", "BAVARIA")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Munich Bath", got[0].Name)
}

func TestFindMatchingBlankFiltersListAll(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	seedContractor(t, repo, "One", "Berlin", "BE", ratingOf(4.0), constant.ProjectTypeBathroom)
	seedContractor(t, repo, "Two", "Munich", "BY", nil, constant.ProjectTypeKitchen)

	got, err := repo.Contractor.FindMatching(ctx, nil, "", "", "")
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestGetContractorByIdNotFound(t *testing.T) {
	repo := newTestRepository(t)

	_, err := repo.Contractor.GetById(context.Background(), nil, 999)
	assert.True(t, apperror.IsNotFound(err))
}

func TestUpsertByNameReplacesCapabilities(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	first := seedContractor(t, repo, "Bath Pros", "Berlin", "BE", ratingOf(4.0), constant.ProjectTypeBathroom)

	updated := first
	updated.City = "Hamburg"
	created, err := repo.Contractor.UpsertByName(ctx, nil, updated, []constant.ProjectType{constant.ProjectTypeKitchen, constant.ProjectTypeFlooring})
	require.NoError(t, err)
	assert.False(t, created)

	got, err := repo.Contractor.GetById(ctx, nil, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "Hamburg", got.City)
	assert.ElementsMatch(t,
		[]constant.ProjectType{constant.ProjectTypeKitchen, constant.ProjectTypeFlooring},
		got.ProjectTypeList())
}
