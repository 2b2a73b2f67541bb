package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type Member struct {
	ID       int64  `json:"id"`
	LoginID  string `json:"loginId"`
	Name     string `json:"name"`
	Password string `json:"-"`
}

// UploadFile references a file kept by the web layer. StoreFileName is the
// collision-free name on disk, UploadFileName what the user sent.
type UploadFile struct {
	UploadFileName string `json:"uploadFileName"`
	StoreFileName  string `json:"storeFileName"`
}

// NewUploadFile picks a unique store name for an uploaded file, keeping its
// extension.
func NewUploadFile(originalName string) UploadFile {
	ext := originalName[strings.LastIndex(originalName, ".")+1:]
	return UploadFile{
		UploadFileName: originalName,
		StoreFileName:  uuid.NewString() + "." + ext,
	}
}

type Post struct {
	ID         int64        `json:"id"`
	Title      string       `json:"title"`
	Content    string       `json:"content"`
	Author     string       `json:"author"`
	AuthorID   int64        `json:"authorId"`
	AttachFile *UploadFile  `json:"attachFile,omitempty"`
	ImageFiles []UploadFile `json:"imageFiles,omitempty"`
}

// Clone returns a deep copy so callers never share attachments with a store.
func (p Post) Clone() Post {
	if p.AttachFile != nil {
		f := *p.AttachFile
		p.AttachFile = &f
	}
	if p.ImageFiles != nil {
		p.ImageFiles = append([]UploadFile(nil), p.ImageFiles...)
	}
	return p
}

// Comment is a node of a post's comment forest. ParentCommentID is nil for
// top-level comments.
type Comment struct {
	ID              int64     `json:"id"`
	PostID          int64     `json:"postId"`
	ParentCommentID *int64    `json:"parentCommentId,omitempty"`
	Author          string    `json:"author"`
	AuthorID        int64     `json:"authorId"`
	Content         string    `json:"content"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func (c Comment) Clone() Comment {
	if c.ParentCommentID != nil {
		id := *c.ParentCommentID
		c.ParentCommentID = &id
	}
	return c
}

// IsReply reports whether the comment answers another comment.
func (c Comment) IsReply() bool {
	return c.ParentCommentID != nil
}
