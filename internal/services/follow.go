package services

import (
	"moyu/internal/models"

	"gorm.io/gorm"
)

// FollowService 维护用户之间的关注边
type FollowService struct {
	db *gorm.DB
}

func NewFollowService(db *gorm.DB) *FollowService {
	return &FollowService{db: db}
}

// IsFollowing 查询 user 是否已关注 author
func (s *FollowService) IsFollowing(userID, authorID uint) bool {
	var follow models.Follow
	err := s.db.Where("user_id = ? AND author_id = ?", userID, authorID).First(&follow).Error
	return err == nil
}

// Follow 创建关注边。自己关注自己会被拒绝；重复关注是幂等的，
// user_id+author_id 上的唯一索引兜底，并发下也不会产生重复边。
func (s *FollowService) Follow(userID, authorID uint) error {
	if userID == authorID {
		return ErrSelfFollow
	}

	follow := models.Follow{UserID: userID, AuthorID: authorID}
	return s.db.Where("user_id = ? AND author_id = ?", userID, authorID).
		FirstOrCreate(&follow).Error
}

// Unfollow 删除关注边，边不存在时是 no-op
func (s *FollowService) Unfollow(userID, authorID uint) error {
	return s.db.Where("user_id = ? AND author_id = ?", userID, authorID).
		Delete(&models.Follow{}).Error
}

// FollowedAuthors 当前用户关注的作者列表
func (s *FollowService) FollowedAuthors(userID uint) ([]models.User, error) {
	sub := s.db.Model(&models.Follow{}).Select("author_id").Where("user_id = ?", userID)

	var authors []models.User
	err := s.db.Where("id IN (?)", sub).Order("id ASC").Find(&authors).Error
	if err != nil {
		return nil, err
	}
	return authors, nil
}
