package migration

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunMigrationsWithoutPool(t *testing.T) {
	assert.NoError(t, RunMigrations(context.Background(), nil, nil))
}

func TestMigrationsAreNamed(t *testing.T) {
	seen := map[string]bool{}
	for _, m := range migrations {
		assert.NotEmpty(t, m.Name)
		assert.NotNil(t, m.Up)
		assert.False(t, seen[m.Name], m.Name)
		seen[m.Name] = true
	}
}
