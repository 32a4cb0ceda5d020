package model

import "time"

// Task is a named, deadlined unit of work owned by exactly one user.
// The (user_id, name) pair is unique.
type Task struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"size:255;not null;uniqueIndex:idx_tasks_user_name"`
	Deadline  time.Time `json:"deadline" gorm:"not null"`
	UserID    uint      `json:"user_id" gorm:"not null;index;uniqueIndex:idx_tasks_user_name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// OwnedBy reports whether the task belongs to the given user.
func (t *Task) OwnedBy(user *User) bool {
	return user != nil && t.UserID == user.ID
}
