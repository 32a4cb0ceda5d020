package model

import (
	"slices"
	"time"
)

// User represents an account holder and the tasks they own.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Username     string    `json:"username" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Relations
	Tasks []Task `json:"tasks,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// HasTaskNamed reports whether the in-memory task collection holds a task
// with exactly the given name.
func (u *User) HasTaskNamed(name string) bool {
	for _, t := range u.Tasks {
		if t.Name == name {
			return true
		}
	}
	return false
}

// DetachTask removes the task with the given id from the in-memory collection.
// The previous backing array is left untouched, so slices handed out earlier
// keep their contents.
func (u *User) DetachTask(taskID uint) {
	u.Tasks = slices.DeleteFunc(slices.Clone(u.Tasks), func(t Task) bool {
		return t.ID == taskID
	})
}
