package repositories

import (
  "errors"

  "gorm.io/gorm"

  "minter.local/tweet-minter/models"
)

type TweetsRepository struct {
  Db *gorm.DB
}

func (r *TweetsRepository) Get(tweetID string) *models.Tweet {
  var entity models.Tweet
  result := r.Db.Where(
    "tweet_id=?",
    tweetID,
  ).Take(&entity)
  if errors.Is(result.Error, gorm.ErrRecordNotFound) {
    return nil
  }
  return &entity
}

func (r *TweetsRepository) IsExists(tweetID string) bool {
  var entity *models.Tweet
  result := r.Db.Where("tweet_id", tweetID).Take(&entity)
  if errors.Is(result.Error, gorm.ErrRecordNotFound) {
    return false
  }
  return true
}
