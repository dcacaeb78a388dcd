package models

// ArticleSection is a positioned content block revision of an article,
// append-only like ArticleData.
type ArticleSection struct {
	ArticleSectionID int64  `gorm:"column:article_section_id;primaryKey;autoIncrement"`
	CreationTime     int64  `gorm:"column:creation_time;not null"`
	CreatorUserID    int64  `gorm:"column:creator_user_id;not null;index"`
	ArticleID        int64  `gorm:"column:article_id;not null;index"`
	Position         int64  `gorm:"column:position;not null"`
	Variant          int64  `gorm:"column:variant;not null"`
	SectionText      string `gorm:"column:section_text;not null"`
	Active           bool   `gorm:"column:active;not null"`
}

func (ArticleSection) TableName() string {
	return "article_section"
}
