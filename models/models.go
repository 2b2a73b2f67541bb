// Package models holds the gorm row types of the SQL storage backend.
// Deletes are hard deletes, so none of the rows embed gorm.Model.
package models

import "time"

type Member struct {
	ID       int64  `gorm:"primary_key"`
	LoginID  string `gorm:"not null;index"`
	Name     string
	Password string
}

type Post struct {
	ID       int64 `gorm:"primary_key"`
	Title    string
	Content  string `gorm:"type:text"`
	Author   string
	AuthorID int64 `gorm:"index"`

	AttachUploadFileName string
	AttachStoreFileName  string

	ImageFiles []UploadFile `gorm:"foreignkey:PostID"`
}

// UploadFile is one image of a post. Position keeps the order the images
// were attached in.
type UploadFile struct {
	ID             int64 `gorm:"primary_key"`
	PostID         int64 `gorm:"index"`
	Position       int
	UploadFileName string
	StoreFileName  string
}

type Comment struct {
	ID              int64  `gorm:"primary_key"`
	PostID          int64  `gorm:"index"`
	ParentCommentID *int64 `gorm:"index"`
	Author          string
	AuthorID        int64
	Content         string `gorm:"type:text"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// All lists every row type, in migration order.
func All() []interface{} {
	return []interface{}{&Member{}, &Post{}, &UploadFile{}, &Comment{}}
}
