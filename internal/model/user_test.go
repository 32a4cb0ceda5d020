package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUser_DetachTask(t *testing.T) {
	user := &User{ID: 1, Tasks: []Task{
		{ID: 10, Name: "a", UserID: 1},
		{ID: 11, Name: "b", UserID: 1},
		{ID: 12, Name: "c", UserID: 1},
	}}
	earlier := user.Tasks

	user.DetachTask(10)

	assert.Len(t, user.Tasks, 2)
	assert.False(t, user.HasTaskNamed("a"))
	assert.True(t, user.HasTaskNamed("b"))
	assert.Equal(t, []string{"a", "b", "c"}, []string{earlier[0].Name, earlier[1].Name, earlier[2].Name})
}

func TestUser_DetachTaskUnknownID(t *testing.T) {
	user := &User{ID: 1, Tasks: []Task{{ID: 10, Name: "a", UserID: 1}}}

	user.DetachTask(99)

	assert.Len(t, user.Tasks, 1)
	assert.True(t, user.HasTaskNamed("a"))
}

func TestTask_OwnedBy(t *testing.T) {
	task := &Task{ID: 10, UserID: 1}

	assert.True(t, task.OwnedBy(&User{ID: 1}))
	assert.False(t, task.OwnedBy(&User{ID: 2}))
	assert.False(t, task.OwnedBy(nil))
}
