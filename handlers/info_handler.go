package handlers

import (
	"github.com/gin-gonic/gin"

	"fakejournal-reader/config"
	"fakejournal-reader/helper"
	"fakejournal-reader/models"
)

type InfoHandler struct {
	cfg        config.Config
	httpHelper *helper.HTTPHelper
}

func NewInfoHandler(cfg config.Config, httpHelper *helper.HTTPHelper) *InfoHandler {
	return &InfoHandler{cfg: cfg, httpHelper: httpHelper}
}

func (h *InfoHandler) Info(c *gin.Context) {
	h.httpHelper.SendSuccess(c, models.InfoResponse{
		Service:                config.ServiceName,
		VersionMajor:           config.VersionMajor,
		VersionMinor:           config.VersionMinor,
		VersionRev:             config.VersionRev,
		AppPubOrigin:           h.cfg.AppPubOrigin,
		AuthServiceExternalUrl: h.cfg.AuthServiceExternalURL,
		AuthPubApiHref:         h.cfg.AuthServiceExternalURL + "/public/",
		AuthAuthenticatorHref:  h.cfg.AuthServiceExternalURL + "/authenticator/",
	})
}
