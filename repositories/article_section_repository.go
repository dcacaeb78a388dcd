package repositories

import (
	"context"

	"gorm.io/gorm"

	"fakejournal-reader/models"
)

type ArticleSectionRepository interface {
	Create(ctx context.Context, tx *gorm.DB, articleSection *models.ArticleSection) error
	Query(ctx context.Context, tx *gorm.DB, props models.ArticleSectionViewProps) ([]models.ArticleSection, error)
}

type articleSectionRepository struct {
	db *gorm.DB
}

func NewArticleSectionRepository(db *gorm.DB) ArticleSectionRepository {
	return &articleSectionRepository{db: db}
}

func (r *articleSectionRepository) conn(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return r.db
}

func (r *articleSectionRepository) Create(ctx context.Context, tx *gorm.DB, articleSection *models.ArticleSection) error {
	return r.conn(tx).WithContext(ctx).Create(articleSection).Error
}

func (r *articleSectionRepository) Query(ctx context.Context, tx *gorm.DB, props models.ArticleSectionViewProps) ([]models.ArticleSection, error) {
	query := r.conn(tx).WithContext(ctx).Model(&models.ArticleSection{})

	if len(props.ArticleSectionID) > 0 {
		query = query.Where("article_section_id IN ?", props.ArticleSectionID)
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
	if len(props.Position) > 0 {
		query = query.Where("position IN ?", props.Position)
	}
	if len(props.Variant) > 0 {
		query = query.Where("variant IN ?", props.Variant)
	}
	if props.Active != nil {
		query = query.Where("active = ?", *props.Active)
	}
	if props.OnlyRecent {
		// Newest revision per (article, position, variant) slot: a section
		// block is superseded by a later row for the same slot.
		query = query.Where("article_section_id IN (?)",
			r.conn(tx).Model(&models.ArticleSection{}).
				Select("MAX(article_section_id)").
				Group("article_id, position, variant"),
		)
	}

	var articleSections []models.ArticleSection
	err := query.Order("article_section_id").Find(&articleSections).Error
	return articleSections, err
}
