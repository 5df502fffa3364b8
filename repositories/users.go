package repositories

import (
  "errors"

  "gorm.io/gorm"

  "minter.local/tweet-minter/models"
)

type UsersRepository struct {
  Db *gorm.DB
}

func (r *UsersRepository) Get(walletAddress string) *models.User {
  var entity models.User
  result := r.Db.Where(
    "wallet_address=?",
    walletAddress,
  ).Take(&entity)
  if errors.Is(result.Error, gorm.ErrRecordNotFound) {
    return nil
  }
  return &entity
}

func (r *UsersRepository) Create(walletAddress string) (*models.User, error) {
  entity := &models.User{
    WalletAddress: walletAddress,
  }
  if err := r.Db.Create(&entity).Error; err != nil {
    return nil, err
  }
  return entity, nil
}
