package handlers

import (
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"strings"

	"moyu/internal/config"
	"moyu/internal/db"
	"moyu/internal/middleware"
	"moyu/internal/models"
	"moyu/internal/services"
	"moyu/internal/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type PostHandler struct {
	listing   *services.ListingService
	cache     *utils.FeedCache
	perPage   int
	uploadDir string
}

func NewPostHandler(listing *services.ListingService, cache *utils.FeedCache, cfg *config.Config) *PostHandler {
	return &PostHandler{
		listing:   listing,
		cache:     cache,
		perPage:   cfg.PostsPerPage,
		uploadDir: cfg.UploadDir,
	}
}

// loadGroups 获取小组列表（用于侧边栏导航和发布表单）
func loadGroups() []models.Group {
	var groups []models.Group
	db.DB.Order("id ASC").Find(&groups)
	return groups
}

// Index 首页 - 全部文章。整页渲染数据走缓存，TTL 内返回的是旧快照，
// 中途有文章增删也不会反映出来，到期或 Clear 后才重新计算。
func (h *PostHandler) Index(c *gin.Context) {
	page := utils.PageNumber(c.Query("page"))

	cacheKey := fmt.Sprintf("feed:index:page:%d", page)
	var listErr error
	cachedData := h.cache.GetOrCompute(cacheKey, func() interface{} {
		posts, err := h.listing.All()
		if err != nil {
			listErr = err
			return nil
		}
		h.listing.FillCommentCounts(posts)

		return gin.H{
			"PageObj": utils.Paginate(posts, page, h.perPage),
			"Groups":  loadGroups(),
			"Active":  "index",
			"Title":   "最新文章",
		}
	})
	if listErr != nil {
		RenderError(c, http.StatusInternalServerError, "加载文章列表失败")
		return
	}

	if hData, ok := cachedData.(gin.H); ok {
		Render(c, http.StatusOK, "posts/index.html", hData)
		return
	}
	RenderError(c, http.StatusInternalServerError, "加载文章列表失败")
}

// GroupPosts 小组页 - 某个小组下的文章，不走缓存
func (h *PostHandler) GroupPosts(c *gin.Context) {
	slug := c.Param("slug")

	group, posts, err := h.listing.ByGroup(slug)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			RenderError(c, http.StatusNotFound, "小组不存在")
			return
		}
		RenderError(c, http.StatusInternalServerError, "加载文章列表失败")
		return
	}
	h.listing.FillCommentCounts(posts)

	page := utils.PageNumber(c.Query("page"))

	Render(c, http.StatusOK, "posts/group.html", gin.H{
		"Group":   group,
		"PageObj": utils.Paginate(posts, page, h.perPage),
		"Groups":  loadGroups(),
		"Active":  "group",
		"Title":   group.Title,
	})
}

// Detail 文章详情页：正文 + 评论（新评论在前）
func (h *PostHandler) Detail(c *gin.Context) {
	id := utils.StringToInt(c.Param("id"))

	var post models.Post
	if err := db.DB.Preload("Author").Preload("Group").First(&post, id).Error; err != nil {
		RenderError(c, http.StatusNotFound, "文章不存在")
		return
	}

	var comments []models.Comment
	db.DB.Preload("Author").Where("post_id = ?", post.ID).Order("created_at DESC, id DESC").Find(&comments)

	type RenderedComment struct {
		models.Comment
		TextHTML template.HTML
	}
	renderedComments := make([]RenderedComment, len(comments))
	for i, com := range comments {
		renderedComments[i] = RenderedComment{
			Comment:  com,
			TextHTML: utils.RenderMarkdown(com.Text),
		}
	}

	Render(c, http.StatusOK, "posts/detail.html", gin.H{
		"Post":     post,
		"PostText": utils.RenderMarkdown(post.Text),
		"Comments": renderedComments,
		"Title":    postTitle(post),
	})
}

// postTitle 取正文首行做页面标题
func postTitle(post models.Post) string {
	title := strings.TrimSpace(post.Text)
	if i := strings.IndexByte(title, '\n'); i > 0 {
		title = title[:i]
	}
	runes := []rune(title)
	if len(runes) > 30 {
		title = string(runes[:30]) + "..."
	}
	return title
}

func (h *PostHandler) ShowCreate(c *gin.Context) {
	Render(c, http.StatusOK, "posts/create.html", gin.H{
		"Title":  "发布",
		"Groups": loadGroups(),
	})
}

func (h *PostHandler) Create(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)

	text := strings.TrimSpace(c.PostForm("text"))
	groupIDStr := c.PostForm("group_id")

	if text == "" {
		Render(c, http.StatusBadRequest, "posts/create.html", gin.H{
			"Error":  "正文不能为空",
			"Groups": loadGroups(),
		})
		return
	}

	// 小组是可选的
	var groupID *uint
	if groupIDStr != "" {
		if id := utils.StringToInt(groupIDStr); id > 0 {
			uGID := uint(id)
			groupID = &uGID
		}
	}

	// 可选配图
	imagePath := ""
	if file, header, err := c.Request.FormFile("image"); err == nil {
		defer file.Close()
		imagePath, err = services.SaveImage(file, header, h.uploadDir)
		if err != nil {
			Render(c, http.StatusBadRequest, "posts/create.html", gin.H{
				"Error":  "图片上传失败",
				"Groups": loadGroups(),
			})
			return
		}
	}

	post := models.Post{
		Text:     text,
		AuthorID: user.ID,
		GroupID:  groupID,
		Image:    imagePath,
	}

	if err := db.DB.Create(&post).Error; err != nil {
		Render(c, http.StatusInternalServerError, "posts/create.html", gin.H{
			"Error":  "发布失败",
			"Groups": loadGroups(),
		})
		return
	}

	c.Redirect(http.StatusFound, "/profile/"+user.Username)
}

func (h *PostHandler) ShowEdit(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)
	id := utils.StringToInt(c.Param("id"))

	var post models.Post
	if err := db.DB.First(&post, id).Error; err != nil {
		RenderError(c, http.StatusNotFound, "文章不存在")
		return
	}

	// 只有作者本人可以编辑，其他人送回详情页
	if post.AuthorID != user.ID {
		c.Redirect(http.StatusFound, fmt.Sprintf("/posts/%d", post.ID))
		return
	}

	Render(c, http.StatusOK, "posts/edit.html", gin.H{
		"Title":  "编辑文章",
		"Post":   post,
		"Groups": loadGroups(),
	})
}

func (h *PostHandler) Update(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)
	id := utils.StringToInt(c.Param("id"))

	var post models.Post
	if err := db.DB.First(&post, id).Error; err != nil {
		RenderError(c, http.StatusNotFound, "文章不存在")
		return
	}

	if post.AuthorID != user.ID {
		c.Redirect(http.StatusFound, fmt.Sprintf("/posts/%d", post.ID))
		return
	}

	text := strings.TrimSpace(c.PostForm("text"))
	if text == "" {
		Render(c, http.StatusBadRequest, "posts/edit.html", gin.H{
			"Error":  "正文不能为空",
			"Post":   post,
			"Groups": loadGroups(),
		})
		return
	}

	var groupID *uint
	if groupIDStr := c.PostForm("group_id"); groupIDStr != "" {
		if gid := utils.StringToInt(groupIDStr); gid > 0 {
			uGID := uint(gid)
			groupID = &uGID
		}
	}

	if file, header, err := c.Request.FormFile("image"); err == nil {
		defer file.Close()
		imagePath, err := services.SaveImage(file, header, h.uploadDir)
		if err != nil {
			Render(c, http.StatusBadRequest, "posts/edit.html", gin.H{
				"Error":  "图片上传失败",
				"Post":   post,
				"Groups": loadGroups(),
			})
			return
		}
		post.Image = imagePath
	}

	post.Text = text
	post.GroupID = groupID

	if err := db.DB.Save(&post).Error; err != nil {
		Render(c, http.StatusInternalServerError, "posts/edit.html", gin.H{
			"Error":  "保存失败",
			"Post":   post,
			"Groups": loadGroups(),
		})
		return
	}

	c.Redirect(http.StatusFound, fmt.Sprintf("/posts/%d", post.ID))
}

// Delete 删除文章，评论一并删除。首页缓存不做主动失效，
// TTL 窗口内首页继续展示旧快照。
func (h *PostHandler) Delete(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)
	id := utils.StringToInt(c.Param("id"))

	var post models.Post
	if err := db.DB.First(&post, id).Error; err != nil {
		RenderError(c, http.StatusNotFound, "文章不存在")
		return
	}

	if post.AuthorID != user.ID {
		c.Redirect(http.StatusFound, fmt.Sprintf("/posts/%d", post.ID))
		return
	}

	// Hard Delete
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", post.ID).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&post).Error
	})
	if err != nil {
		RenderError(c, http.StatusInternalServerError, "删除失败")
		return
	}

	c.Redirect(http.StatusFound, "/profile/"+user.Username)
}

// AddComment 发表评论后回到详情页；空评论直接跳回，不落库
func (h *PostHandler) AddComment(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)
	id := utils.StringToInt(c.Param("id"))

	var post models.Post
	if err := db.DB.First(&post, id).Error; err != nil {
		RenderError(c, http.StatusNotFound, "文章不存在")
		return
	}

	text := strings.TrimSpace(c.PostForm("text"))
	if text == "" {
		c.Redirect(http.StatusFound, fmt.Sprintf("/posts/%d", post.ID))
		return
	}

	comment := models.Comment{
		PostID:   post.ID,
		AuthorID: user.ID,
		Text:     text,
	}
	if err := db.DB.Create(&comment).Error; err != nil {
		RenderError(c, http.StatusInternalServerError, "评论失败")
		return
	}

	c.Redirect(http.StatusFound, fmt.Sprintf("/posts/%d", post.ID))
}

// DeleteComment 删除自己的评论
func (h *PostHandler) DeleteComment(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)
	id := utils.StringToInt(c.Param("id"))

	var comment models.Comment
	if err := db.DB.First(&comment, id).Error; err != nil {
		RenderError(c, http.StatusNotFound, "评论不存在")
		return
	}

	if comment.AuthorID != user.ID {
		c.Redirect(http.StatusFound, fmt.Sprintf("/posts/%d", comment.PostID))
		return
	}

	if err := db.DB.Delete(&comment).Error; err != nil {
		RenderError(c, http.StatusInternalServerError, "删除失败")
		return
	}

	c.Redirect(http.StatusFound, fmt.Sprintf("/posts/%d", comment.PostID))
}
