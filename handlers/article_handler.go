package handlers

import (
	"github.com/gin-gonic/gin"

	"fakejournal-reader/helper"
	"fakejournal-reader/models"
	"fakejournal-reader/services"
)

type ArticleHandler struct {
	articleService services.ArticleService
	authService    services.AuthService
	httpHelper     *helper.HTTPHelper
}

func NewArticleHandler(articleService services.ArticleService, authService services.AuthService, httpHelper *helper.HTTPHelper) *ArticleHandler {
	return &ArticleHandler{
		articleService: articleService,
		authService:    authService,
		httpHelper:     httpHelper,
	}
}

func (h *ArticleHandler) ArticleNew(c *gin.Context) {
	var props models.ArticleNewProps
	if err := c.ShouldBindJSON(&props); err != nil {
		h.httpHelper.SendAppError(c, models.ErrDecodeError)
		return
	}

	user, err := h.authService.GetUserByApiKeyIfValid(c.Request.Context(), props.ApiKey)
	if err != nil {
		h.httpHelper.SendError(c, err)
		return
	}

	articleData, err := h.articleService.CreateArticle(c.Request.Context(), user, props)
	if err != nil {
		h.httpHelper.SendError(c, err)
		return
	}
	h.httpHelper.SendSuccess(c, articleData)
}

func (h *ArticleHandler) ArticleDataNew(c *gin.Context) {
	var props models.ArticleDataNewProps
	if err := c.ShouldBindJSON(&props); err != nil {
		h.httpHelper.SendAppError(c, models.ErrDecodeError)
		return
	}

	user, err := h.authService.GetUserByApiKeyIfValid(c.Request.Context(), props.ApiKey)
	if err != nil {
		h.httpHelper.SendError(c, err)
		return
	}

	articleData, err := h.articleService.CreateArticleData(c.Request.Context(), user, props)
	if err != nil {
		h.httpHelper.SendError(c, err)
		return
	}
	h.httpHelper.SendSuccess(c, articleData)
}

func (h *ArticleHandler) ArticleSectionNew(c *gin.Context) {
	var props models.ArticleSectionNewProps
	if err := c.ShouldBindJSON(&props); err != nil {
		h.httpHelper.SendAppError(c, models.ErrDecodeError)
		return
	}

	user, err := h.authService.GetUserByApiKeyIfValid(c.Request.Context(), props.ApiKey)
	if err != nil {
		h.httpHelper.SendError(c, err)
		return
	}

	articleSection, err := h.articleService.CreateArticleSection(c.Request.Context(), user, props)
	if err != nil {
		h.httpHelper.SendError(c, err)
		return
	}
	h.httpHelper.SendSuccess(c, articleSection)
}

func (h *ArticleHandler) ArticleView(c *gin.Context) {
	var props models.ArticleViewProps
	if err := c.ShouldBindJSON(&props); err != nil {
		h.httpHelper.SendAppError(c, models.ErrDecodeError)
		return
	}

	user, err := h.authService.GetUserByApiKeyIfValid(c.Request.Context(), props.ApiKey)
	if err != nil {
		h.httpHelper.SendError(c, err)
		return
	}

	articles, err := h.articleService.ViewArticles(c.Request.Context(), user, props)
	if err != nil {
		h.httpHelper.SendError(c, err)
		return
	}
	h.httpHelper.SendSuccess(c, articles)
}

func (h *ArticleHandler) ArticleDataView(c *gin.Context) {
	var props models.ArticleDataViewProps
	if err := c.ShouldBindJSON(&props); err != nil {
		h.httpHelper.SendAppError(c, models.ErrDecodeError)
		return
	}

	user, err := h.authService.GetUserByApiKeyIfValid(c.Request.Context(), props.ApiKey)
	if err != nil {
		h.httpHelper.SendError(c, err)
		return
	}

	articleData, err := h.articleService.ViewArticleData(c.Request.Context(), user, props)
	if err != nil {
		h.httpHelper.SendError(c, err)
		return
	}
	h.httpHelper.SendSuccess(c, articleData)
}

func (h *ArticleHandler) ArticleSectionView(c *gin.Context) {
	var props models.ArticleSectionViewProps
	if err := c.ShouldBindJSON(&props); err != nil {
		h.httpHelper.SendAppError(c, models.ErrDecodeError)
		return
	}

	user, err := h.authService.GetUserByApiKeyIfValid(c.Request.Context(), props.ApiKey)
	if err != nil {
		h.httpHelper.SendError(c, err)
		return
	}

	articleSections, err := h.articleService.ViewArticleSections(c.Request.Context(), user, props)
	if err != nil {
		h.httpHelper.SendError(c, err)
		return
	}
	h.httpHelper.SendSuccess(c, articleSections)
}

func (h *ArticleHandler) ArticleDataViewPublic(c *gin.Context) {
	var props models.ArticleDataViewPublicProps
	if err := c.ShouldBindJSON(&props); err != nil {
		h.httpHelper.SendAppError(c, models.ErrDecodeError)
		return
	}

	articleData, err := h.articleService.ViewArticleDataPublic(c.Request.Context(), props)
	if err != nil {
		h.httpHelper.SendError(c, err)
		return
	}
	h.httpHelper.SendSuccess(c, articleData)
}

func (h *ArticleHandler) ArticleSectionViewPublic(c *gin.Context) {
	var props models.ArticleSectionViewPublicProps
	if err := c.ShouldBindJSON(&props); err != nil {
		h.httpHelper.SendAppError(c, models.ErrDecodeError)
		return
	}

	articleSections, err := h.articleService.ViewArticleSectionsPublic(c.Request.Context(), props)
	if err != nil {
		h.httpHelper.SendError(c, err)
		return
	}
	h.httpHelper.SendSuccess(c, articleSections)
}
