package models

// ArticleData is one metadata revision of an article. New revisions are
// appended with fresh rows; the `active` flag marks which revisions the
// read side should consider live.
type ArticleData struct {
	ArticleDataID    int64  `gorm:"column:article_data_id;primaryKey;autoIncrement"`
	CreationTime     int64  `gorm:"column:creation_time;not null"`
	CreatorUserID    int64  `gorm:"column:creator_user_id;not null;index"`
	ArticleID        int64  `gorm:"column:article_id;not null;index"`
	Title            string `gorm:"column:title;not null"`
	DurationEstimate int64  `gorm:"column:duration_estimate;not null"`
	Active           bool   `gorm:"column:active;not null"`
}

func (ArticleData) TableName() string {
	return "article_data"
}
