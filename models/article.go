package models

// Article is the ownership anchor for a family of data and section
// revisions. Rows are append-only: never updated, never deleted.
type Article struct {
	ArticleID     int64 `gorm:"column:article_id;primaryKey;autoIncrement"`
	CreationTime  int64 `gorm:"column:creation_time;not null"`
	CreatorUserID int64 `gorm:"column:creator_user_id;not null;index"`
}

func (Article) TableName() string {
	return "article"
}
