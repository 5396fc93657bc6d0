package http

import (
	"net/http"
	"strconv"

	"campushub/pkg/apperrors"
	"campushub/pkg/logger"
	"campushub/services/network/internal/usecase"

	"github.com/gin-gonic/gin"
)

type NetworkHandler struct {
	networkUseCase usecase.NetworkUseCase
	logger         *logger.Logger
}

func NewNetworkHandler(networkUseCase usecase.NetworkUseCase, logger *logger.Logger) *NetworkHandler {
	return &NetworkHandler{
		networkUseCase: networkUseCase,
		logger:         logger,
	}
}

type postRequest struct {
	Content string `json:"content" binding:"required"`
}

func pageParam(c *gin.Context) int {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		return 1
	}
	return page
}

// CreatePost godoc
// @Summary      Publish a post
// @Tags         network
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body postRequest true "Post content"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Router       /posts [post]
func (h *NetworkHandler) CreatePost(c *gin.Context) {
	var req postRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := c.GetString("user_id")
	post, err := h.networkUseCase.CreatePost(userID, req.Content)
	if err != nil {
		status := apperrors.StatusFor(err)
		if status == http.StatusInternalServerError {
			h.logger.Error("Failed to create post: %v", err)
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"post": post})
}

// EditPost godoc
// @Summary      Edit a post
// @Description  Only the author can edit their post
// @Tags         network
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Post ID"
// @Param        request body postRequest true "New content"
// @Success      200  {object}  map[string]interface{}
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /posts/{id} [put]
func (h *NetworkHandler) EditPost(c *gin.Context) {
	var req postRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := c.GetString("user_id")
	post, err := h.networkUseCase.EditPost(c.Param("id"), userID, req.Content)
	if err != nil {
		c.JSON(apperrors.StatusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"post": post})
}

// GetPost godoc
// @Summary      Single post with like state
// @Tags         network
// @Produce      json
// @Param        id path string true "Post ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Router       /posts/{id} [get]
func (h *NetworkHandler) GetPost(c *gin.Context) {
	viewerID := c.GetString("user_id")

	post, err := h.networkUseCase.GetPost(c.Request.Context(), c.Param("id"), viewerID)
	if err != nil {
		c.JSON(apperrors.StatusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"post": post})
}

// Feed godoc
// @Summary      All posts, newest first
// @Tags         network
// @Produce      json
// @Param        page query int false "Page number"
// @Success      200  {object}  map[string]interface{}
// @Router       /feed [get]
func (h *NetworkHandler) Feed(c *gin.Context) {
	viewerID := c.GetString("user_id")

	page, err := h.networkUseCase.Feed(c.Request.Context(), viewerID, pageParam(c))
	if err != nil {
		c.JSON(apperrors.StatusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, page)
}

// FollowingFeed godoc
// @Summary      Posts from followed users
// @Tags         network
// @Produce      json
// @Security     BearerAuth
// @Param        page query int false "Page number"
// @Success      200  {object}  map[string]interface{}
// @Router       /feed/following [get]
func (h *NetworkHandler) FollowingFeed(c *gin.Context) {
	viewerID := c.GetString("user_id")

	page, err := h.networkUseCase.FollowingFeed(c.Request.Context(), viewerID, pageParam(c))
	if err != nil {
		c.JSON(apperrors.StatusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, page)
}

// UserPosts godoc
// @Summary      Posts by one user
// @Tags         network
// @Produce      json
// @Param        id path string true "User ID"
// @Param        page query int false "Page number"
// @Success      200  {object}  map[string]interface{}
// @Router       /users/{id}/posts [get]
func (h *NetworkHandler) UserPosts(c *gin.Context) {
	viewerID := c.GetString("user_id")

	page, err := h.networkUseCase.UserPosts(c.Request.Context(), c.Param("id"), viewerID, pageParam(c))
	if err != nil {
		c.JSON(apperrors.StatusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, page)
}

// ToggleLike godoc
// @Summary      Like or unlike a post
// @Tags         network
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Post ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Router       /posts/{id}/like [post]
func (h *NetworkHandler) ToggleLike(c *gin.Context) {
	userID := c.GetString("user_id")

	liked, count, err := h.networkUseCase.ToggleLike(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		c.JSON(apperrors.StatusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"liked": liked, "like_count": count})
}

// ToggleFollow godoc
// @Summary      Follow or unfollow a user
// @Tags         network
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "User ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Router       /users/{id}/follow [post]
func (h *NetworkHandler) ToggleFollow(c *gin.Context) {
	userID := c.GetString("user_id")

	following, followers, err := h.networkUseCase.ToggleFollow(userID, c.Param("id"))
	if err != nil {
		c.JSON(apperrors.StatusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"following": following, "followers": followers})
}

// Profile godoc
// @Summary      Social profile with follower counts
// @Tags         network
// @Produce      json
// @Param        id path string true "User ID"
// @Success      200  {object}  map[string]interface{}
// @Router       /users/{id}/profile [get]
func (h *NetworkHandler) Profile(c *gin.Context) {
	viewerID := c.GetString("user_id")

	profile, err := h.networkUseCase.Profile(c.Param("id"), viewerID)
	if err != nil {
		c.JSON(apperrors.StatusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile": profile})
}
