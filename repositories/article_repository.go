package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"fakejournal-reader/models"
)

type ArticleRepository interface {
	Create(ctx context.Context, tx *gorm.DB, article *models.Article) error
	GetByArticleID(ctx context.Context, tx *gorm.DB, articleID int64) (*models.Article, error)
	GetByArticleIDs(ctx context.Context, tx *gorm.DB, articleIDs []int64) ([]models.Article, error)
	Query(ctx context.Context, tx *gorm.DB, props models.ArticleViewProps) ([]models.Article, error)
}

type articleRepository struct {
	db *gorm.DB
}

func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &articleRepository{db: db}
}

func (r *articleRepository) conn(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return r.db
}

func (r *articleRepository) Create(ctx context.Context, tx *gorm.DB, article *models.Article) error {
	return r.conn(tx).WithContext(ctx).Create(article).Error
}

// GetByArticleID returns (nil, nil) when no row exists; storage failures
// are the only error case.
func (r *articleRepository) GetByArticleID(ctx context.Context, tx *gorm.DB, articleID int64) (*models.Article, error) {
	var article models.Article
	err := r.conn(tx).WithContext(ctx).
		Where("article_id = ?", articleID).
		First(&article).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &article, nil
}

func (r *articleRepository) GetByArticleIDs(ctx context.Context, tx *gorm.DB, articleIDs []int64) ([]models.Article, error) {
	articles := []models.Article{}
	if len(articleIDs) == 0 {
		return articles, nil
	}
	err := r.conn(tx).WithContext(ctx).
		Where("article_id IN ?", articleIDs).
		Find(&articles).Error
	return articles, err
}

func (r *articleRepository) Query(ctx context.Context, tx *gorm.DB, props models.ArticleViewProps) ([]models.Article, error) {
	query := r.conn(tx).WithContext(ctx).Model(&models.Article{})

	if len(props.ArticleID) > 0 {
		query = query.Where("article_id IN ?", props.ArticleID)
	}
	if props.MinCreationTime != nil {
		query = query.Where("creation_time >= ?", *props.MinCreationTime)
	}
	if props.MaxCreationTime != nil {
		query = query.Where("creation_time <= ?", *props.MaxCreationTime)
	}
	if len(props.CreatorUserID) > 0 {
		query = query.Where("creator_user_id IN ?", props.CreatorUserID)
	}

	var articles []models.Article
	err := query.Order("article_id").Find(&articles).Error
	return articles, err
}
