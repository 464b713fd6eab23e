package repository

import (
	"context"
	"testing"

	"resume-builder/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportsRepoWithoutPool(t *testing.T) {
	r := NewExportsRepo(nil)
	job := domain.NewExportJob("Jane_Doe_Resume.pdf")

	require.NoError(t, r.Save(context.Background(), job))

	jobs, err := r.Recent(context.Background(), 5)
	require.NoError(t, err)
	assert.Empty(t, jobs)

	var nilRepo *ExportsRepo
	assert.NoError(t, nilRepo.Save(context.Background(), job))
}
