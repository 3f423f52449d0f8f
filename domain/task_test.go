package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPriority_Reward(t *testing.T) {
	assert.Equal(t, 50, PriorityHigh.Reward())
	assert.Equal(t, 30, PriorityMedium.Reward())
	assert.Equal(t, 20, PriorityLow.Reward())

	t.Run("unknown priority earns the floor reward", func(t *testing.T) {
		assert.Equal(t, 10, Priority("urgent").Reward())
		assert.Equal(t, 10, Priority("").Reward())
	})
}

func TestPriority_IsValid(t *testing.T) {
	assert.True(t, PriorityLow.IsValid())
	assert.True(t, PriorityMedium.IsValid())
	assert.True(t, PriorityHigh.IsValid())
	assert.False(t, Priority("urgent").IsValid())
}

func TestCategory_IsValid(t *testing.T) {
	for _, c := range []Category{CategoryWork, CategoryPersonal, CategoryStudy, CategoryHealth, CategoryOther} {
		assert.True(t, c.IsValid(), string(c))
	}
	assert.False(t, Category("chores").IsValid())
}

func TestUser_ApplyDelta(t *testing.T) {
	user := &User{ID: "2", Points: 80, Level: 1}

	user.ApplyDelta(50)
	assert.Equal(t, 130, user.Points)
	assert.Equal(t, 2, user.Level, "level is recomputed from the new total")

	t.Run("negative amounts are ignored", func(t *testing.T) {
		user.ApplyDelta(-30)
		assert.Equal(t, 130, user.Points)
		assert.Equal(t, 2, user.Level)
	})
}
