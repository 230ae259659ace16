package services

import (
	"errors"
	"testing"

	"moyu/internal/models"
)

func TestFollowAndIsFollowing(t *testing.T) {
	db := setupTestDB(t)
	s := NewFollowService(db)

	reader := createUser(t, db, "reader")
	author := createUser(t, db, "author")

	if s.IsFollowing(reader.ID, author.ID) {
		t.Error("初始状态不应存在关注边")
	}

	if err := s.Follow(reader.ID, author.ID); err != nil {
		t.Fatalf("Follow: %v", err)
	}
	if !s.IsFollowing(reader.ID, author.ID) {
		t.Error("Follow 后 IsFollowing 应为 true")
	}

	// 单向关系：作者并没有反向关注
	if s.IsFollowing(author.ID, reader.ID) {
		t.Error("关注是有方向的")
	}
}

func TestFollowIdempotent(t *testing.T) {
	db := setupTestDB(t)
	s := NewFollowService(db)

	reader := createUser(t, db, "reader")
	author := createUser(t, db, "author")

	if err := s.Follow(reader.ID, author.ID); err != nil {
		t.Fatalf("Follow: %v", err)
	}
	// 重复关注不报错也不产生重复边
	if err := s.Follow(reader.ID, author.ID); err != nil {
		t.Fatalf("重复 Follow: %v", err)
	}

	var count int64
	db.Model(&models.Follow{}).
		Where("user_id = ? AND author_id = ?", reader.ID, author.ID).
		Count(&count)
	if count != 1 {
		t.Errorf("关注边数量 = %d, want 1", count)
	}
}

func TestSelfFollowRejected(t *testing.T) {
	db := setupTestDB(t)
	s := NewFollowService(db)

	user := createUser(t, db, "narcissus")

	err := s.Follow(user.ID, user.ID)
	if !errors.Is(err, ErrForbidden) {
		t.Errorf("自己关注自己 err = %v, want ErrForbidden", err)
	}

	var count int64
	db.Model(&models.Follow{}).Count(&count)
	if count != 0 {
		t.Errorf("自关注不应落库, 边数量 = %d", count)
	}
}

func TestUnfollowIsNoopWhenAbsent(t *testing.T) {
	db := setupTestDB(t)
	s := NewFollowService(db)

	reader := createUser(t, db, "reader")
	author := createUser(t, db, "author")

	// 边不存在时取关是 no-op
	if err := s.Unfollow(reader.ID, author.ID); err != nil {
		t.Fatalf("Unfollow absent edge: %v", err)
	}

	s.Follow(reader.ID, author.ID)
	if err := s.Unfollow(reader.ID, author.ID); err != nil {
		t.Fatalf("Unfollow: %v", err)
	}
	if s.IsFollowing(reader.ID, author.ID) {
		t.Error("Unfollow 后 IsFollowing 应为 false")
	}
}

func TestFollowedAuthors(t *testing.T) {
	db := setupTestDB(t)
	s := NewFollowService(db)

	reader := createUser(t, db, "reader")
	a := createUser(t, db, "a")
	b := createUser(t, db, "b")
	createUser(t, db, "c") // 未关注

	s.Follow(reader.ID, a.ID)
	s.Follow(reader.ID, b.ID)

	authors, err := s.FollowedAuthors(reader.ID)
	if err != nil {
		t.Fatalf("FollowedAuthors: %v", err)
	}
	if len(authors) != 2 {
		t.Fatalf("FollowedAuthors 返回 %d 人, want 2", len(authors))
	}
	names := map[string]bool{}
	for _, u := range authors {
		names[u.Username] = true
	}
	if !names["a"] || !names["b"] {
		t.Errorf("FollowedAuthors = %v, want a 和 b", names)
	}
}
