package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"finbuddy/internal/model"
)

func TestStageFilterEmptyMatchesAll(t *testing.T) {
	assert.Empty(t, stageFilter(""))
}

func TestStageFilterIncludesGeneral(t *testing.T) {
	f := stageFilter(model.StageStudent)

	or, ok := f["$or"].(bson.A)
	require.True(t, ok)
	require.Len(t, or, 2)
	assert.Equal(t, bson.M{"user_stage": model.StageStudent}, or[0])
	assert.Equal(t, bson.M{"user_stage": model.StageGeneral}, or[1])
}
