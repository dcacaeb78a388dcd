package models

type ArticleNewProps struct {
	Title            string `json:"title"`
	DurationEstimate *int64 `json:"durationEstimate"`
	ApiKey           string `json:"apiKey" binding:"required"`
}

// Zero values are legitimate payloads here: an empty title is valid
// content and articleId 0 is an ordinary lookup miss, so only the api key
// is a binding concern.

type ArticleDataNewProps struct {
	ArticleID        int64  `json:"articleId"`
	Title            string `json:"title"`
	DurationEstimate *int64 `json:"durationEstimate"`
	Active           bool   `json:"active"`
	ApiKey           string `json:"apiKey" binding:"required"`
}

type ArticleSectionNewProps struct {
	ArticleID   int64  `json:"articleId"`
	Position    int64  `json:"position"`
	Variant     int64  `json:"variant"`
	SectionText string `json:"sectionText"`
	Active      bool   `json:"active"`
	ApiKey      string `json:"apiKey" binding:"required"`
}

type ArticleViewProps struct {
	ArticleID       []int64 `json:"articleId"`
	MinCreationTime *int64  `json:"minCreationTime"`
	MaxCreationTime *int64  `json:"maxCreationTime"`
	CreatorUserID   []int64 `json:"creatorUserId"`
	ApiKey          string  `json:"apiKey" binding:"required"`
}

type ArticleDataViewProps struct {
	ArticleDataID       []int64  `json:"articleDataId"`
	MinCreationTime     *int64   `json:"minCreationTime"`
	MaxCreationTime     *int64   `json:"maxCreationTime"`
	CreatorUserID       []int64  `json:"creatorUserId"`
	ArticleID           []int64  `json:"articleId"`
	Title               []string `json:"title"`
	MinDurationEstimate *int64   `json:"minDurationEstimate"`
	MaxDurationEstimate *int64   `json:"maxDurationEstimate"`
	Active              *bool    `json:"active"`
	OnlyRecent          bool     `json:"onlyRecent"`
	ApiKey              string   `json:"apiKey" binding:"required"`
}

type ArticleSectionViewProps struct {
	ArticleSectionID []int64 `json:"articleSectionId"`
	MinCreationTime  *int64  `json:"minCreationTime"`
	MaxCreationTime  *int64  `json:"maxCreationTime"`
	CreatorUserID    []int64 `json:"creatorUserId"`
	ArticleID        []int64 `json:"articleId"`
	Position         []int64 `json:"position"`
	Variant          []int64 `json:"variant"`
	Active           *bool   `json:"active"`
	OnlyRecent       bool    `json:"onlyRecent"`
	ApiKey           string  `json:"apiKey" binding:"required"`
}

// Public view props carry no api key; the service pins active/onlyRecent
// so only the current live revision of anything is ever exposed.

type ArticleDataViewPublicProps struct {
	ArticleDataID       []int64  `json:"articleDataId"`
	MinCreationTime     *int64   `json:"minCreationTime"`
	MaxCreationTime     *int64   `json:"maxCreationTime"`
	CreatorUserID       []int64  `json:"creatorUserId"`
	ArticleID           []int64  `json:"articleId"`
	Title               []string `json:"title"`
	MinDurationEstimate *int64   `json:"minDurationEstimate"`
	MaxDurationEstimate *int64   `json:"maxDurationEstimate"`
}

type ArticleSectionViewPublicProps struct {
	ArticleSectionID []int64 `json:"articleSectionId"`
	MinCreationTime  *int64  `json:"minCreationTime"`
	MaxCreationTime  *int64  `json:"maxCreationTime"`
	CreatorUserID    []int64 `json:"creatorUserId"`
	ArticleID        []int64 `json:"articleId"`
	Position         []int64 `json:"position"`
	Variant          []int64 `json:"variant"`
}

// Response shapes are fully hydrated: children embed their parent article
// rather than referencing it by id.

type ArticleResponse struct {
	ArticleID     int64 `json:"articleId"`
	CreationTime  int64 `json:"creationTime"`
	CreatorUserID int64 `json:"creatorUserId"`
}

type ArticleDataResponse struct {
	ArticleDataID    int64           `json:"articleDataId"`
	CreationTime     int64           `json:"creationTime"`
	CreatorUserID    int64           `json:"creatorUserId"`
	Article          ArticleResponse `json:"article"`
	Title            string          `json:"title"`
	DurationEstimate int64           `json:"durationEstimate"`
	Active           bool            `json:"active"`
}

type ArticleSectionResponse struct {
	ArticleSectionID int64           `json:"articleSectionId"`
	CreationTime     int64           `json:"creationTime"`
	CreatorUserID    int64           `json:"creatorUserId"`
	Article          ArticleResponse `json:"article"`
	Position         int64           `json:"position"`
	Variant          int64           `json:"variant"`
	SectionText      string          `json:"sectionText"`
	Active           bool            `json:"active"`
}

type InfoResponse struct {
	Service                string `json:"service"`
	VersionMajor           int64  `json:"versionMajor"`
	VersionMinor           int64  `json:"versionMinor"`
	VersionRev             int64  `json:"versionRev"`
	AppPubOrigin           string `json:"appPubOrigin"`
	AuthServiceExternalUrl string `json:"authServiceExternalUrl"`
	AuthPubApiHref         string `json:"authPubApiHref"`
	AuthAuthenticatorHref  string `json:"authAuthenticatorHref"`
}
