package persistent

import (
	"errors"
	"strings"
	"time"

	"campus-lost-found/internal/entity"
	"campus-lost-found/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PostRepository interface {
	Create(post *entity.Post) error
	FindMany(filter entity.PostFilter) ([]*entity.Post, error)
	FindByID(id string) (*entity.Post, error)
	SetInactive(id string) (*entity.Post, error)
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(post *entity.Post) error {
	postModel := ToPostModel(post)
	if postModel.ID == "" {
		postModel.ID = uuid.New().String()
	}
	if postModel.CreatedAt.IsZero() {
		postModel.CreatedAt = time.Now().UTC()
	}

	if err := r.db.Create(postModel).Error; err != nil {
		return err
	}

	*post = *ToPostEntity(postModel)
	return nil
}

func (r *postRepository) FindMany(filter entity.PostFilter) ([]*entity.Post, error) {
	var postModels []model.PostModel

	query := r.db.Model(&model.PostModel{}).Order("created_at DESC")

	if filter.Status != "" {
		query = query.Where("status = ?", string(filter.Status))
	}
	if !filter.IncludeInactive {
		query = query.Where("is_active = ?", true)
	}
	if filter.Search != "" {
		pattern := "%" + escapeLike(filter.Search) + "%"
		query = query.Where(
			"(item_name ILIKE ? OR description ILIKE ? OR location ILIKE ? OR contact_info ILIKE ?)",
			pattern, pattern, pattern, pattern,
		)
	}

	if err := query.Find(&postModels).Error; err != nil {
		return nil, err
	}

	posts := make([]*entity.Post, len(postModels))
	for i := range postModels {
		posts[i] = ToPostEntity(&postModels[i])
	}
	return posts, nil
}

func (r *postRepository) FindByID(id string) (*entity.Post, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, entity.ErrInvalidID
	}

	var postModel model.PostModel
	if err := r.db.Where("id = ?", id).First(&postModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entity.ErrPostNotFound
		}
		return nil, err
	}
	return ToPostEntity(&postModel), nil
}

// SetInactive flips is_active to false in a single UPDATE so concurrent
// unlist calls on the same id cannot race; the row's own atomicity is the
// only synchronization needed.
func (r *postRepository) SetInactive(id string) (*entity.Post, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, entity.ErrInvalidID
	}

	var postModel model.PostModel
	res := r.db.Model(&postModel).
		Clauses(clause.Returning{}).
		Where("id = ?", id).
		Update("is_active", false)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, entity.ErrPostNotFound
	}
	return ToPostEntity(&postModel), nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike escapes LIKE wildcards so user-supplied search text always
// matches as a literal substring.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
