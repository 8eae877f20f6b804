package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequiredIndexes_UserUIDUnique(t *testing.T) {
	var found bool
	for _, spec := range requiredIndexes() {
		if spec.collection != UsersCollection {
			continue
		}
		for _, model := range spec.models {
			require.NotNil(t, model.Options)
			if model.Options.Unique != nil && *model.Options.Unique {
				found = true
			}
		}
	}
	assert.True(t, found, "users collection needs a unique uid index")
}

func TestRequiredIndexes_CoverAllCollections(t *testing.T) {
	collections := map[string]bool{}
	for _, spec := range requiredIndexes() {
		collections[spec.collection] = true
		assert.NotEmpty(t, spec.models)
	}
	assert.Equal(t, map[string]bool{
		ServicesCollection: true,
		BookingsCollection: true,
		UsersCollection:    true,
	}, collections)
}
