package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type GroupHandler struct{}

func NewGroupHandler() *GroupHandler {
	return &GroupHandler{}
}

// ListGroups 展示所有小组列表
func (h *GroupHandler) ListGroups(c *gin.Context) {
	Render(c, http.StatusOK, "groups/list.html", gin.H{
		"Groups": loadGroups(),
		"Title":  "小组",
		"Active": "groups",
	})
}
