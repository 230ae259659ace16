package handlers

import (
	"errors"
	"net/http"

	"moyu/internal/config"
	"moyu/internal/db"
	"moyu/internal/middleware"
	"moyu/internal/models"
	"moyu/internal/services"
	"moyu/internal/utils"

	"github.com/gin-gonic/gin"
)

type FollowHandler struct {
	listing *services.ListingService
	follows *services.FollowService
	perPage int
}

func NewFollowHandler(listing *services.ListingService, follows *services.FollowService, cfg *config.Config) *FollowHandler {
	return &FollowHandler{
		listing: listing,
		follows: follows,
		perPage: cfg.PostsPerPage,
	}
}

// FollowIndex 关注流：我关注的作者们的文章。
// 这一页永远实时计算，关注/取关的效果立刻可见。
func (h *FollowHandler) FollowIndex(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)

	posts, err := h.listing.ByFollowed(user.ID)
	if err != nil {
		RenderError(c, http.StatusInternalServerError, "加载关注流失败")
		return
	}
	h.listing.FillCommentCounts(posts)

	page := utils.PageNumber(c.Query("page"))

	Render(c, http.StatusOK, "posts/follow.html", gin.H{
		"PageObj": utils.Paginate(posts, page, h.perPage),
		"Active":  "follow",
		"Title":   "我的关注",
	})
}

// Follow 关注某位作者后回到其主页
func (h *FollowHandler) Follow(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)
	username := c.Param("username")

	var author models.User
	if err := db.DB.Where("username = ?", username).First(&author).Error; err != nil {
		RenderError(c, http.StatusNotFound, "用户不存在")
		return
	}

	if err := h.follows.Follow(user.ID, author.ID); err != nil {
		if errors.Is(err, services.ErrForbidden) {
			// 自己不能关注自己
			RenderError(c, http.StatusNotFound, "页面不存在")
			return
		}
		RenderError(c, http.StatusInternalServerError, "操作失败")
		return
	}

	c.Redirect(http.StatusFound, "/profile/"+username)
}

// Unfollow 取消关注后回到作者主页
func (h *FollowHandler) Unfollow(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)
	username := c.Param("username")

	var author models.User
	if err := db.DB.Where("username = ?", username).First(&author).Error; err != nil {
		RenderError(c, http.StatusNotFound, "用户不存在")
		return
	}

	if err := h.follows.Unfollow(user.ID, author.ID); err != nil {
		RenderError(c, http.StatusInternalServerError, "操作失败")
		return
	}

	c.Redirect(http.StatusFound, "/profile/"+username)
}
