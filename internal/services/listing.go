package services

import (
	"errors"
	"fmt"
	"moyu/internal/models"

	"gorm.io/gorm"
)

// postOrder 所有列表的统一排序：发布时间倒序，同一时间按 id 倒序。
// 分页依赖这个稳定的全序，任何过滤条件下都不能变。
const postOrder = "created_at DESC, id DESC"

// ListingService 负责生成各类文章列表（全部/小组/作者/关注流）
type ListingService struct {
	db *gorm.DB
}

func NewListingService(db *gorm.DB) *ListingService {
	return &ListingService{db: db}
}

// All 全部文章，最新的在前
func (s *ListingService) All() ([]models.Post, error) {
	var posts []models.Post
	err := s.db.Preload("Author").Preload("Group").
		Order(postOrder).
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// ByGroup 某个小组下的文章，slug 不存在时返回 ErrNotFound
func (s *ListingService) ByGroup(slug string) (models.Group, []models.Post, error) {
	var group models.Group
	if err := s.db.Where("slug = ?", slug).First(&group).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return group, nil, fmt.Errorf("group %q: %w", slug, ErrNotFound)
		}
		return group, nil, err
	}

	var posts []models.Post
	err := s.db.Preload("Author").Preload("Group").
		Where("group_id = ?", group.ID).
		Order(postOrder).
		Find(&posts).Error
	if err != nil {
		return group, nil, err
	}
	return group, posts, nil
}

// ByAuthor 某位作者的文章，用户名不存在时返回 ErrNotFound
func (s *ListingService) ByAuthor(username string) (models.User, []models.Post, error) {
	var author models.User
	if err := s.db.Where("username = ?", username).First(&author).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return author, nil, fmt.Errorf("user %q: %w", username, ErrNotFound)
		}
		return author, nil, err
	}

	var posts []models.Post
	err := s.db.Preload("Author").Preload("Group").
		Where("author_id = ?", author.ID).
		Order(postOrder).
		Find(&posts).Error
	if err != nil {
		return author, nil, err
	}
	return author, posts, nil
}

// ByFollowed 当前用户关注的所有作者的文章；没关注任何人时返回空列表
func (s *ListingService) ByFollowed(userID uint) ([]models.Post, error) {
	sub := s.db.Model(&models.Follow{}).Select("author_id").Where("user_id = ?", userID)

	var posts []models.Post
	err := s.db.Preload("Author").Preload("Group").
		Where("author_id IN (?)", sub).
		Order(postOrder).
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// FillCommentCounts 批量填充文章的评论数量
func (s *ListingService) FillCommentCounts(posts []models.Post) {
	if len(posts) == 0 {
		return
	}

	postIDs := make([]uint, len(posts))
	for i, p := range posts {
		postIDs[i] = p.ID
	}

	type CountResult struct {
		PostID uint
		Count  int
	}
	var results []CountResult
	s.db.Model(&models.Comment{}).
		Select("post_id, COUNT(*) as count").
		Where("post_id IN ?", postIDs).
		Group("post_id").
		Scan(&results)

	countMap := make(map[uint]int)
	for _, r := range results {
		countMap[r.PostID] = r.Count
	}

	for i := range posts {
		posts[i].CommentCount = countMap[posts[i].ID]
	}
}
