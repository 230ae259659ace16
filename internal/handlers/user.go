package handlers

import (
	"errors"
	"net/http"

	"moyu/internal/config"
	"moyu/internal/middleware"
	"moyu/internal/models"
	"moyu/internal/services"
	"moyu/internal/utils"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	listing *services.ListingService
	follows *services.FollowService
	perPage int
}

func NewUserHandler(listing *services.ListingService, follows *services.FollowService, cfg *config.Config) *UserHandler {
	return &UserHandler{
		listing: listing,
		follows: follows,
		perPage: cfg.PostsPerPage,
	}
}

// Profile 作者主页：作者信息 + 文章列表 + 当前用户的关注状态
func (h *UserHandler) Profile(c *gin.Context) {
	username := c.Param("username")

	author, posts, err := h.listing.ByAuthor(username)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			RenderError(c, http.StatusNotFound, "用户不存在")
			return
		}
		RenderError(c, http.StatusInternalServerError, "加载文章列表失败")
		return
	}
	h.listing.FillCommentCounts(posts)

	// 登录用户才有关注状态
	following := false
	if user, exists := c.Get(middleware.CheckUserKey); exists {
		following = h.follows.IsFollowing(user.(*models.User).ID, author.ID)
	}

	page := utils.PageNumber(c.Query("page"))

	Render(c, http.StatusOK, "users/profile.html", gin.H{
		"Author":    author,
		"PageObj":   utils.Paginate(posts, page, h.perPage),
		"Following": following,
		"Title":     author.Username,
	})
}
