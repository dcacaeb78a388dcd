package services

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"fakejournal-reader/models"
	"fakejournal-reader/repositories"
)

type ArticleService interface {
	CreateArticle(ctx context.Context, user *models.User, props models.ArticleNewProps) (*models.ArticleDataResponse, error)
	CreateArticleData(ctx context.Context, user *models.User, props models.ArticleDataNewProps) (*models.ArticleDataResponse, error)
	CreateArticleSection(ctx context.Context, user *models.User, props models.ArticleSectionNewProps) (*models.ArticleSectionResponse, error)
	ViewArticles(ctx context.Context, user *models.User, props models.ArticleViewProps) ([]models.ArticleResponse, error)
	ViewArticleData(ctx context.Context, user *models.User, props models.ArticleDataViewProps) ([]models.ArticleDataResponse, error)
	ViewArticleSections(ctx context.Context, user *models.User, props models.ArticleSectionViewProps) ([]models.ArticleSectionResponse, error)
	ViewArticleDataPublic(ctx context.Context, props models.ArticleDataViewPublicProps) ([]models.ArticleDataResponse, error)
	ViewArticleSectionsPublic(ctx context.Context, props models.ArticleSectionViewPublicProps) ([]models.ArticleSectionResponse, error)
}

type articleService struct {
	db          *gorm.DB
	articleRepo repositories.ArticleRepository
	dataRepo    repositories.ArticleDataRepository
	sectionRepo repositories.ArticleSectionRepository
	log         *zap.SugaredLogger
}

func NewArticleService(
	db *gorm.DB,
	articleRepo repositories.ArticleRepository,
	dataRepo repositories.ArticleDataRepository,
	sectionRepo repositories.ArticleSectionRepository,
	log *zap.SugaredLogger,
) ArticleService {
	return &articleService{
		db:          db,
		articleRepo: articleRepo,
		dataRepo:    dataRepo,
		sectionRepo: sectionRepo,
		log:         log.With("service", "ArticleService"),
	}
}

// reportDBErr logs the raw storage failure and collapses it to the
// classified error; infrastructure detail never reaches a caller.
func (s *articleService) reportDBErr(op string, err error) models.AppError {
	s.log.Errorw("database failure", "op", op, "cause", err)
	return models.ErrInternalServerError
}

// classify unwraps transaction results: either the classified error we
// put in, or an unanticipated storage failure (e.g. commit).
func (s *articleService) classify(op string, err error) error {
	var appErr models.AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return s.reportDBErr(op, err)
}

func validDuration(durationEstimate *int64) bool {
	return durationEstimate != nil && *durationEstimate > 0
}

func (s *articleService) CreateArticle(ctx context.Context, user *models.User, props models.ArticleNewProps) (*models.ArticleDataResponse, error) {
	if !validDuration(props.DurationEstimate) {
		return nil, models.ErrInvalidDuration
	}

	now := time.Now().UnixMilli()
	var articleData models.ArticleData

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		article := models.Article{
			CreationTime:  now,
			CreatorUserID: user.UserID,
		}
		if err := s.articleRepo.Create(ctx, tx, &article); err != nil {
			return s.reportDBErr("create article", err)
		}

		articleData = models.ArticleData{
			CreationTime:     now,
			CreatorUserID:    user.UserID,
			ArticleID:        article.ArticleID,
			Title:            props.Title,
			DurationEstimate: *props.DurationEstimate,
			Active:           true,
		}
		if err := s.dataRepo.Create(ctx, tx, &articleData); err != nil {
			return s.reportDBErr("create article data", err)
		}
		return nil
	})
	if err != nil {
		return nil, s.classify("create article commit", err)
	}

	return s.fillArticleData(ctx, articleData)
}

func (s *articleService) CreateArticleData(ctx context.Context, user *models.User, props models.ArticleDataNewProps) (*models.ArticleDataResponse, error) {
	if !validDuration(props.DurationEstimate) {
		return nil, models.ErrInvalidDuration
	}

	var articleData models.ArticleData

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		article, err := s.loadOwnedArticle(ctx, tx, props.ArticleID, user.UserID)
		if err != nil {
			return err
		}

		articleData = models.ArticleData{
			CreationTime:     time.Now().UnixMilli(),
			CreatorUserID:    user.UserID,
			ArticleID:        article.ArticleID,
			Title:            props.Title,
			DurationEstimate: *props.DurationEstimate,
			Active:           props.Active,
		}
		if err := s.dataRepo.Create(ctx, tx, &articleData); err != nil {
			return s.reportDBErr("create article data", err)
		}
		return nil
	})
	if err != nil {
		return nil, s.classify("create article data commit", err)
	}

	return s.fillArticleData(ctx, articleData)
}

func (s *articleService) CreateArticleSection(ctx context.Context, user *models.User, props models.ArticleSectionNewProps) (*models.ArticleSectionResponse, error) {
	if props.Position < 0 {
		return nil, models.ErrInvalidPosition
	}

	var articleSection models.ArticleSection

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		article, err := s.loadOwnedArticle(ctx, tx, props.ArticleID, user.UserID)
		if err != nil {
			return err
		}

		articleSection = models.ArticleSection{
			CreationTime:  time.Now().UnixMilli(),
			CreatorUserID: user.UserID,
			ArticleID:     article.ArticleID,
			Position:      props.Position,
			Variant:       props.Variant,
			SectionText:   props.SectionText,
			Active:        props.Active,
		}
		if err := s.sectionRepo.Create(ctx, tx, &articleSection); err != nil {
			return s.reportDBErr("create article section", err)
		}
		return nil
	})
	if err != nil {
		return nil, s.classify("create article section commit", err)
	}

	return s.fillArticleSection(ctx, articleSection)
}

// loadOwnedArticle runs inside the write transaction so the ownership
// check and the subsequent insert are atomic. A missing article and an
// article owned by someone else return the same error: non-owners must
// not be able to probe which ids exist.
func (s *articleService) loadOwnedArticle(ctx context.Context, tx *gorm.DB, articleID, userID int64) (*models.Article, error) {
	article, err := s.articleRepo.GetByArticleID(ctx, tx, articleID)
	if err != nil {
		return nil, s.reportDBErr("get article", err)
	}
	if article == nil || article.CreatorUserID != userID {
		return nil, models.ErrArticleNonexistent
	}
	return article, nil
}

func (s *articleService) ViewArticles(ctx context.Context, user *models.User, props models.ArticleViewProps) ([]models.ArticleResponse, error) {
	articles, err := s.articleRepo.Query(ctx, nil, props)
	if err != nil {
		return nil, s.reportDBErr("query articles", err)
	}

	responses := make([]models.ArticleResponse, 0, len(articles))
	for _, article := range articles {
		if article.CreatorUserID != user.UserID {
			continue
		}
		responses = append(responses, fillArticle(article))
	}
	return responses, nil
}

func (s *articleService) ViewArticleData(ctx context.Context, user *models.User, props models.ArticleDataViewProps) ([]models.ArticleDataResponse, error) {
	articleData, err := s.dataRepo.Query(ctx, nil, props)
	if err != nil {
		return nil, s.reportDBErr("query article data", err)
	}

	owned := make([]models.ArticleData, 0, len(articleData))
	for _, row := range articleData {
		if row.CreatorUserID == user.UserID {
			owned = append(owned, row)
		}
	}
	return s.fillArticleDataList(ctx, owned)
}

func (s *articleService) ViewArticleSections(ctx context.Context, user *models.User, props models.ArticleSectionViewProps) ([]models.ArticleSectionResponse, error) {
	articleSections, err := s.sectionRepo.Query(ctx, nil, props)
	if err != nil {
		return nil, s.reportDBErr("query article sections", err)
	}

	owned := make([]models.ArticleSection, 0, len(articleSections))
	for _, row := range articleSections {
		if row.CreatorUserID == user.UserID {
			owned = append(owned, row)
		}
	}
	return s.fillArticleSectionList(ctx, owned)
}

// Public views carry no identity: no ownership scoping, but the filters
// are pinned to active rows and the newest revision per slot so only the
// current live content is ever exposed.

func (s *articleService) ViewArticleDataPublic(ctx context.Context, props models.ArticleDataViewPublicProps) ([]models.ArticleDataResponse, error) {
	active := true
	articleData, err := s.dataRepo.Query(ctx, nil, models.ArticleDataViewProps{
		ArticleDataID:       props.ArticleDataID,
		MinCreationTime:     props.MinCreationTime,
		MaxCreationTime:     props.MaxCreationTime,
		CreatorUserID:       props.CreatorUserID,
		ArticleID:           props.ArticleID,
		Title:               props.Title,
		MinDurationEstimate: props.MinDurationEstimate,
		MaxDurationEstimate: props.MaxDurationEstimate,
		Active:              &active,
		OnlyRecent:          true,
	})
	if err != nil {
		return nil, s.reportDBErr("query public article data", err)
	}
	return s.fillArticleDataList(ctx, articleData)
}

func (s *articleService) ViewArticleSectionsPublic(ctx context.Context, props models.ArticleSectionViewPublicProps) ([]models.ArticleSectionResponse, error) {
	active := true
	articleSections, err := s.sectionRepo.Query(ctx, nil, models.ArticleSectionViewProps{
		ArticleSectionID: props.ArticleSectionID,
		MinCreationTime:  props.MinCreationTime,
		MaxCreationTime:  props.MaxCreationTime,
		CreatorUserID:    props.CreatorUserID,
		ArticleID:        props.ArticleID,
		Position:         props.Position,
		Variant:          props.Variant,
		Active:           &active,
		OnlyRecent:       true,
	})
	if err != nil {
		return nil, s.reportDBErr("query public article sections", err)
	}
	return s.fillArticleSectionList(ctx, articleSections)
}
