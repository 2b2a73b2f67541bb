package board

import (
	"sort"
	"strings"

	"github.com/VitaminP8/board/internal/model"
	"github.com/VitaminP8/board/internal/pagination"

	"go.uber.org/zap"
)

// CreatePost saves p under its author's current name.
func (s *Service) CreatePost(p *model.Post) (*model.Post, error) {
	if err := required("title", p.Title); err != nil {
		return nil, err
	}
	if err := required("content", p.Content); err != nil {
		return nil, err
	}

	author, err := s.members.FindByID(p.AuthorID)
	if err != nil {
		return nil, err
	}
	p.Author = author.Name

	return s.posts.Save(p)
}

func (s *Service) Post(id int64) (*model.Post, error) {
	return s.posts.FindByID(id)
}

// MemberPosts lists the posts written by one member.
func (s *Service) MemberPosts(memberID int64) ([]*model.Post, error) {
	return s.posts.FindByMemberID(memberID)
}

// EditPost replaces title and content. A nil attachFile or empty imageFiles
// keeps what the post already has.
func (s *Service) EditPost(id int64, title, content string, attachFile *model.UploadFile, imageFiles []model.UploadFile) error {
	if err := required("title", title); err != nil {
		return err
	}
	if err := required("content", content); err != nil {
		return err
	}

	current, err := s.posts.FindByID(id)
	if err != nil {
		return err
	}
	if attachFile == nil {
		attachFile = current.AttachFile
	}
	if len(imageFiles) == 0 {
		imageFiles = current.ImageFiles
	}

	return s.posts.Update(id, title, content, attachFile, imageFiles)
}

// DeletePost removes the post's comments and then the post.
func (s *Service) DeletePost(id int64) error {
	s.threadMu.Lock()
	defer s.threadMu.Unlock()

	if err := s.comments.DeleteByPostID(id); err != nil {
		return err
	}

	p, err := s.posts.Delete(id)
	if err != nil {
		return err
	}

	s.log.Info("post deleted", zap.Int64("post_id", id), zap.Int64("author_id", p.AuthorID))
	return nil
}

const (
	SearchByTitle  = "title"
	SearchByAuthor = "author"
)

type SearchQuery struct {
	Type    string
	Keyword string
	Page    int
	PerPage int
}

type SearchResult struct {
	Posts      []*model.Post     `json:"posts"`
	TotalCount int               `json:"totalCount"`
	Window     pagination.Window `json:"window"`
}

// SearchPosts returns one page of the posts matching q, newest first.
// Keywords match case-insensitively anywhere in the title or author name. A
// blank keyword or an unknown search type matches every post.
func (s *Service) SearchPosts(q SearchQuery) (*SearchResult, error) {
	page := max(q.Page, 1)

	all, err := s.posts.FindAll()
	if err != nil {
		return nil, err
	}

	matched := make([]*model.Post, 0, len(all))
	for _, p := range all {
		if matches(p, q.Type, q.Keyword) {
			matched = append(matched, p)
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID > matched[j].ID })

	window, err := pagination.Compute(len(matched), page, q.PerPage)
	if err != nil {
		return nil, err
	}

	from := min(pagination.Offset(page, q.PerPage), len(matched))
	to := min(from+q.PerPage, len(matched))

	return &SearchResult{
		Posts:      matched[from:to],
		TotalCount: len(matched),
		Window:     window,
	}, nil
}

func matches(p *model.Post, searchType, keyword string) bool {
	keyword = strings.ToLower(strings.TrimSpace(keyword))
	if keyword == "" {
		return true
	}

	switch searchType {
	case SearchByTitle:
		return strings.Contains(strings.ToLower(p.Title), keyword)
	case SearchByAuthor:
		return strings.Contains(strings.ToLower(p.Author), keyword)
	default:
		return true
	}
}
