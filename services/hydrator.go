package services

import (
	"context"

	"fakejournal-reader/models"
)

// Hydration resolves foreign keys into embedded response objects so every
// response is self-contained. A child row whose parent article is missing
// is a referential-integrity violation and surfaces as ArticleNonexistent
// rather than a crash.

func fillArticle(article models.Article) models.ArticleResponse {
	return models.ArticleResponse{
		ArticleID:     article.ArticleID,
		CreationTime:  article.CreationTime,
		CreatorUserID: article.CreatorUserID,
	}
}

func (s *articleService) fillArticleData(ctx context.Context, articleData models.ArticleData) (*models.ArticleDataResponse, error) {
	article, err := s.articleRepo.GetByArticleID(ctx, nil, articleData.ArticleID)
	if err != nil {
		return nil, s.reportDBErr("hydrate article data", err)
	}
	if article == nil {
		return nil, models.ErrArticleNonexistent
	}

	return &models.ArticleDataResponse{
		ArticleDataID:    articleData.ArticleDataID,
		CreationTime:     articleData.CreationTime,
		CreatorUserID:    articleData.CreatorUserID,
		Article:          fillArticle(*article),
		Title:            articleData.Title,
		DurationEstimate: articleData.DurationEstimate,
		Active:           articleData.Active,
	}, nil
}

func (s *articleService) fillArticleSection(ctx context.Context, articleSection models.ArticleSection) (*models.ArticleSectionResponse, error) {
	article, err := s.articleRepo.GetByArticleID(ctx, nil, articleSection.ArticleID)
	if err != nil {
		return nil, s.reportDBErr("hydrate article section", err)
	}
	if article == nil {
		return nil, models.ErrArticleNonexistent
	}

	return &models.ArticleSectionResponse{
		ArticleSectionID: articleSection.ArticleSectionID,
		CreationTime:     articleSection.CreationTime,
		CreatorUserID:    articleSection.CreatorUserID,
		Article:          fillArticle(*article),
		Position:         articleSection.Position,
		Variant:          articleSection.Variant,
		SectionText:      articleSection.SectionText,
		Active:           articleSection.Active,
	}, nil
}

// parentArticles batch-fetches the distinct parents for a list of child
// rows: one IN query instead of a lookup per row.
func (s *articleService) parentArticles(ctx context.Context, articleIDs []int64) (map[int64]models.Article, error) {
	seen := make(map[int64]struct{}, len(articleIDs))
	distinct := make([]int64, 0, len(articleIDs))
	for _, id := range articleIDs {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		distinct = append(distinct, id)
	}

	articles, err := s.articleRepo.GetByArticleIDs(ctx, nil, distinct)
	if err != nil {
		return nil, s.reportDBErr("hydrate parents", err)
	}

	byID := make(map[int64]models.Article, len(articles))
	for _, article := range articles {
		byID[article.ArticleID] = article
	}
	return byID, nil
}

func (s *articleService) fillArticleDataList(ctx context.Context, articleData []models.ArticleData) ([]models.ArticleDataResponse, error) {
	articleIDs := make([]int64, 0, len(articleData))
	for _, row := range articleData {
		articleIDs = append(articleIDs, row.ArticleID)
	}
	parents, err := s.parentArticles(ctx, articleIDs)
	if err != nil {
		return nil, err
	}

	responses := make([]models.ArticleDataResponse, 0, len(articleData))
	for _, row := range articleData {
		article, ok := parents[row.ArticleID]
		if !ok {
			return nil, models.ErrArticleNonexistent
		}
		responses = append(responses, models.ArticleDataResponse{
			ArticleDataID:    row.ArticleDataID,
			CreationTime:     row.CreationTime,
			CreatorUserID:    row.CreatorUserID,
			Article:          fillArticle(article),
			Title:            row.Title,
			DurationEstimate: row.DurationEstimate,
			Active:           row.Active,
		})
	}
	return responses, nil
}

func (s *articleService) fillArticleSectionList(ctx context.Context, articleSections []models.ArticleSection) ([]models.ArticleSectionResponse, error) {
	articleIDs := make([]int64, 0, len(articleSections))
	for _, row := range articleSections {
		articleIDs = append(articleIDs, row.ArticleID)
	}
	parents, err := s.parentArticles(ctx, articleIDs)
	if err != nil {
		return nil, err
	}

	responses := make([]models.ArticleSectionResponse, 0, len(articleSections))
	for _, row := range articleSections {
		article, ok := parents[row.ArticleID]
		if !ok {
			return nil, models.ErrArticleNonexistent
		}
		responses = append(responses, models.ArticleSectionResponse{
			ArticleSectionID: row.ArticleSectionID,
			CreationTime:     row.CreationTime,
			CreatorUserID:    row.CreatorUserID,
			Article:          fillArticle(article),
			Position:         row.Position,
			Variant:          row.Variant,
			SectionText:      row.SectionText,
			Active:           row.Active,
		})
	}
	return responses, nil
}
