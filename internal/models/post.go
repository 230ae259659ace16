package models

import (
	"time"
)

type Post struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Text     string `gorm:"type:text;not null" json:"text"`
	AuthorID uint   `gorm:"not null;index" json:"author_id"`
	Author   User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"author"`
	GroupID  *uint  `gorm:"index" json:"group_id"` // Nullable，小组是可选的
	Group    *Group `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"group"`
	Image    string `json:"image"` // Optional，上传后的图片路径
	// 发布时间由服务端写入，列表按它倒序排列
	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// 非数据库字段，用于查询时填充
	CommentCount int `gorm:"-" json:"comment_count"`
}
