package repositories

import (
	"context"

	"gorm.io/gorm"

	"fakejournal-reader/models"
)

type ArticleDataRepository interface {
	Create(ctx context.Context, tx *gorm.DB, articleData *models.ArticleData) error
	Query(ctx context.Context, tx *gorm.DB, props models.ArticleDataViewProps) ([]models.ArticleData, error)
}

type articleDataRepository struct {
	db *gorm.DB
}

func NewArticleDataRepository(db *gorm.DB) ArticleDataRepository {
	return &articleDataRepository{db: db}
}

func (r *articleDataRepository) conn(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return r.db
}

func (r *articleDataRepository) Create(ctx context.Context, tx *gorm.DB, articleData *models.ArticleData) error {
	return r.conn(tx).WithContext(ctx).Create(articleData).Error
}

// Query applies the request filters only. Ownership scoping is the
// caller's job, on purpose: the predicate here stays generic while the
// security-relevant filter lives in one place per endpoint.
func (r *articleDataRepository) Query(ctx context.Context, tx *gorm.DB, props models.ArticleDataViewProps) ([]models.ArticleData, error) {
	query := r.conn(tx).WithContext(ctx).Model(&models.ArticleData{})

	if len(props.ArticleDataID) > 0 {
		query = query.Where("article_data_id IN ?", props.ArticleDataID)
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
	if len(props.ArticleID) > 0 {
		query = query.Where("article_id IN ?", props.ArticleID)
	}
	if len(props.Title) > 0 {
		query = query.Where("title IN ?", props.Title)
	}
	if props.MinDurationEstimate != nil {
		query = query.Where("duration_estimate >= ?", *props.MinDurationEstimate)
	}
	if props.MaxDurationEstimate != nil {
		query = query.Where("duration_estimate <= ?", *props.MaxDurationEstimate)
	}
	if props.Active != nil {
		query = query.Where("active = ?", *props.Active)
	}
	if props.OnlyRecent {
		// Ids are append-only and monotonic, so the max id per article
		// is its newest revision.
		query = query.Where("article_data_id IN (?)",
			r.conn(tx).Model(&models.ArticleData{}).
				Select("MAX(article_data_id)").
				Group("article_id"),
		)
	}

	var articleData []models.ArticleData
	err := query.Order("article_data_id").Find(&articleData).Error
	return articleData, err
}
