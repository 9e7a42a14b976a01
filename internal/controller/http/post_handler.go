package http

import (
	"errors"
	"net/http"

	"campus-lost-found/internal/entity"
	"campus-lost-found/internal/usecase"
	"campus-lost-found/pkg/logger"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	postUseCase usecase.PostUseCase
	logger      *logger.Logger
}

func NewPostHandler(postUseCase usecase.PostUseCase, logger *logger.Logger) *PostHandler {
	return &PostHandler{
		postUseCase: postUseCase,
		logger:      logger,
	}
}

type CreatePostRequest struct {
	Status       string `json:"status"`
	ItemName     string `json:"itemName"`
	Description  string `json:"description"`
	Location     string `json:"location"`
	ContactInfo  string `json:"contactInfo"`
	ContactPhone string `json:"contactPhone"`
	Image        string `json:"image"`
}

// CreatePost godoc
// @Summary      Submit a lost or found post
// @Description  Create a new lost/found post. Contact fields are trimmed; an optional image must be a base64 data URL of at most 2MB decoded.
// @Tags         posts
// @Accept       json
// @Produce      json
// @Param        post body CreatePostRequest true "Post submission"
// @Success      201  {object}  entity.Post
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /posts [post]
func (h *PostHandler) CreatePost(c *gin.Context) {
	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body."})
		return
	}

	post, err := h.postUseCase.CreatePost(usecase.CreatePostInput{
		Status:       req.Status,
		ItemName:     req.ItemName,
		Description:  req.Description,
		Location:     req.Location,
		ContactInfo:  req.ContactInfo,
		ContactPhone: req.ContactPhone,
		Image:        req.Image,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, post)
}

// ListPosts godoc
// @Summary      List posts
// @Description  List posts newest first. By default only active posts are returned; includeInactive=true widens the result. An unrecognized status value is ignored.
// @Tags         posts
// @Produce      json
// @Param        status query string false "Filter by status" Enums(lost, found)
// @Param        includeInactive query string false "Set to the literal string true to include unlisted posts"
// @Param        q query string false "Case-insensitive substring search over item name, description, location and contact info"
// @Success      200  {array}   entity.Post
// @Failure      500  {object}  map[string]string
// @Router       /posts [get]
func (h *PostHandler) ListPosts(c *gin.Context) {
	posts, err := h.postUseCase.ListPosts(usecase.ListPostsParams{
		Status:          c.Query("status"),
		IncludeInactive: c.Query("includeInactive"),
		Query:           c.Query("q"),
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	if posts == nil {
		posts = []*entity.Post{}
	}
	c.JSON(http.StatusOK, posts)
}

// GetPost godoc
// @Summary      Get post by ID
// @Tags         posts
// @Produce      json
// @Param        id path string true "Post ID"
// @Success      200  {object}  entity.Post
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /posts/{id} [get]
func (h *PostHandler) GetPost(c *gin.Context) {
	post, err := h.postUseCase.GetPost(c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

// UnlistPost godoc
// @Summary      Unlist a post
// @Description  Mark a post as resolved. The post stays in the store but disappears from the default feed; the transition is one-way.
// @Tags         posts
// @Produce      json
// @Param        id path string true "Post ID"
// @Success      200  {object}  entity.Post
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /posts/{id}/unlist [patch]
func (h *PostHandler) UnlistPost(c *gin.Context) {
	post, err := h.postUseCase.UnlistPost(c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

// respondError maps domain errors to status codes. Anything outside the
// known taxonomy is logged and surfaced as a generic 500 so internal detail
// never reaches the client.
func (h *PostHandler) respondError(c *gin.Context, err error) {
	var validationErr *entity.ValidationError

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"message": validationErr.Message})
	case errors.Is(err, entity.ErrInvalidID):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid post ID."})
	case errors.Is(err, entity.ErrPostNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Post not found."})
	default:
		h.logger.Error("Unexpected error handling %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Something went wrong."})
	}
}
