package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"boardrank/internal/services"

	"github.com/gin-gonic/gin"
)

type LinkForm struct {
	Title       string `form:"title" binding:"required"`
	Description string `form:"description" binding:"required"`
}

func (h *Handler) ShowSubmit(c *gin.Context) {
	c.HTML(http.StatusOK, "submit.html", gin.H{
		"User": currentUserID(c),
	})
}

func (h *Handler) HandleSubmitForm(c *gin.Context) {
	var form LinkForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusBadRequest, "submit.html", gin.H{
			"Error": "Title and description are required",
			"User":  currentUserID(c),
		})
		return
	}

	_, err := h.boardService.CreateLink(services.LinkDTO{
		UserID:      mustUserID(c),
		Title:       form.Title,
		Description: form.Description,
		IPAddress:   c.ClientIP(),
	})
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, services.ErrMissingFields) {
			status = http.StatusBadRequest
		}
		c.HTML(status, "submit.html", gin.H{
			"Error": err.Error(),
			"User":  currentUserID(c),
		})
		return
	}

	c.Redirect(http.StatusFound, "/")
}

func (h *Handler) ShowEdit(c *gin.Context) {
	linkID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.HTML(http.StatusNotFound, "404.html", gin.H{"Error": "Link not found"})
		return
	}

	link, err := h.boardService.GetLink(uint(linkID))
	if err != nil {
		c.HTML(http.StatusNotFound, "404.html", gin.H{"Error": "Link not found"})
		return
	}
	if link.UserID != mustUserID(c) {
		c.Redirect(http.StatusFound, "/")
		return
	}

	c.HTML(http.StatusOK, "edit.html", gin.H{
		"Link": link,
		"User": currentUserID(c),
	})
}

func (h *Handler) HandleEditForm(c *gin.Context) {
	linkID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.HTML(http.StatusNotFound, "404.html", gin.H{"Error": "Link not found"})
		return
	}

	var form LinkForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusBadRequest, "edit.html", gin.H{
			"Error": "Title and description are required",
			"Link":  gin.H{"ID": linkID, "Title": form.Title, "Description": form.Description},
			"User":  currentUserID(c),
		})
		return
	}

	_, err = h.boardService.UpdateLink(mustUserID(c), uint(linkID), services.LinkDTO{
		Title:       form.Title,
		Description: form.Description,
		IPAddress:   c.ClientIP(),
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrLinkNotFound):
			c.HTML(http.StatusNotFound, "404.html", gin.H{"Error": err.Error()})
		case errors.Is(err, services.ErrNotLinkAuthor):
			c.Redirect(http.StatusFound, "/")
		default:
			h.logger.Error("Failed to update link", "error", err)
			c.HTML(http.StatusInternalServerError, "edit.html", gin.H{
				"Error": "Failed to update link",
				"Link":  gin.H{"ID": linkID, "Title": form.Title, "Description": form.Description},
				"User":  currentUserID(c),
			})
		}
		return
	}

	c.Redirect(http.StatusFound, "/")
}

func (h *Handler) HandleDelete(c *gin.Context) {
	linkID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.HTML(http.StatusNotFound, "404.html", gin.H{"Error": "Link not found"})
		return
	}

	if err := h.boardService.DeleteLink(mustUserID(c), uint(linkID), c.ClientIP()); err != nil {
		switch {
		case errors.Is(err, services.ErrLinkNotFound):
			c.HTML(http.StatusNotFound, "404.html", gin.H{"Error": err.Error()})
		case errors.Is(err, services.ErrNotLinkAuthor):
			c.Redirect(http.StatusFound, "/")
		default:
			h.logger.Error("Failed to delete link", "error", err)
			c.HTML(http.StatusInternalServerError, "404.html", gin.H{"Error": "Failed to delete link"})
		}
		return
	}

	c.Redirect(http.StatusFound, "/")
}
