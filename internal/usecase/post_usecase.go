package usecase

import (
	"encoding/base64"
	"fmt"
	"strings"

	"campus-lost-found/internal/entity"
	"campus-lost-found/internal/repo/persistent"
	"campus-lost-found/pkg/logger"
)

// maxImageBytes is the limit on the decoded image payload, not the encoded
// data-URL string.
const maxImageBytes = 2 * 1024 * 1024

const base64Marker = ";base64,"

type CreatePostInput struct {
	Status       string
	ItemName     string
	Description  string
	Location     string
	ContactInfo  string
	ContactPhone string
	Image        string
}

type ListPostsParams struct {
	Status          string
	IncludeInactive string
	Query           string
}

type PostUseCase interface {
	CreatePost(input CreatePostInput) (*entity.Post, error)
	ListPosts(params ListPostsParams) ([]*entity.Post, error)
	GetPost(postID string) (*entity.Post, error)
	UnlistPost(postID string) (*entity.Post, error)
}

type postUseCase struct {
	postRepo persistent.PostRepository
	logger   *logger.Logger
}

func NewPostUseCase(postRepo persistent.PostRepository, logger *logger.Logger) PostUseCase {
	return &postUseCase{
		postRepo: postRepo,
		logger:   logger,
	}
}

func (uc *postUseCase) CreatePost(input CreatePostInput) (*entity.Post, error) {
	post := &entity.Post{
		Status:       entity.PostStatus(input.Status),
		ItemName:     input.ItemName,
		Description:  input.Description,
		Location:     input.Location,
		ContactInfo:  input.ContactInfo,
		ContactPhone: input.ContactPhone,
		Image:        input.Image,
		IsActive:     true,
	}

	post.Normalize()
	if err := post.Validate(); err != nil {
		return nil, err
	}
	if post.Image != "" {
		if err := validateImage(post.Image); err != nil {
			return nil, err
		}
	}

	if err := uc.postRepo.Create(post); err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	uc.logger.Info("Created %s post %s (%s)", post.Status, post.ID, post.ItemName)
	return post, nil
}

// ListPosts is deliberately permissive about the status parameter: a value
// outside {lost, found} is ignored rather than rejected, and only the
// literal string "true" widens the result set to inactive posts.
func (uc *postUseCase) ListPosts(params ListPostsParams) ([]*entity.Post, error) {
	filter := entity.PostFilter{
		IncludeInactive: params.IncludeInactive == "true",
	}

	if status := entity.PostStatus(params.Status); status.Valid() {
		filter.Status = status
	}
	if q := strings.TrimSpace(params.Query); q != "" {
		filter.Search = q
	}

	posts, err := uc.postRepo.FindMany(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	return posts, nil
}

func (uc *postUseCase) GetPost(postID string) (*entity.Post, error) {
	return uc.postRepo.FindByID(postID)
}

func (uc *postUseCase) UnlistPost(postID string) (*entity.Post, error) {
	post, err := uc.postRepo.SetInactive(postID)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("Unlisted post %s", post.ID)
	return post, nil
}

// validateImage enforces the data-URL convention: a data:image/ prefix and a
// base64 payload decoding to at most 2 MiB.
func validateImage(image string) error {
	if !strings.HasPrefix(image, "data:image/") {
		return entity.NewValidationError("Image must be a base64-encoded data URL.")
	}

	idx := strings.Index(image, base64Marker)
	if idx < 0 {
		return entity.NewValidationError("Image must be a base64-encoded data URL.")
	}

	payload, err := base64.StdEncoding.DecodeString(image[idx+len(base64Marker):])
	if err != nil {
		return entity.NewValidationError("Image must be a base64-encoded data URL.")
	}
	if len(payload) > maxImageBytes {
		return entity.NewValidationError("Image must be 2MB or smaller.")
	}
	return nil
}
