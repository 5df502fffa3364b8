package repositories

import (
  "errors"

  "gorm.io/gorm"

  "minter.local/tweet-minter/config"
  "minter.local/tweet-minter/models"
)

var ErrTweetAlreadyMinted = errors.New("tweet already minted")

type MintsRepository struct {
  Db *gorm.DB
}

type MintParams struct {
  TweetID     string
  MintAddress string
  OwnerWallet string
  MetadataURI string
  PriceSol    *float64
  TxSignature string
  Likes       int
  Retweets    int
  Replies     int
  Views       int
}

// Save persists one completed mint atomically: the duplicate check, the user
// lookup-or-create, and the tweet/mint/payment inserts either all commit or
// none do. The unique constraint on tweets.tweet_id backs the check when two
// requests race past it.
func (r *MintsRepository) Save(params *MintParams) (mintID uint, userID uint, err error) {
  err = r.Db.Transaction(func(tx *gorm.DB) error {
    tweetsRepository := &TweetsRepository{Db: tx}
    usersRepository := &UsersRepository{Db: tx}

    if tweetsRepository.IsExists(params.TweetID) {
      return ErrTweetAlreadyMinted
    }

    user := usersRepository.Get(params.OwnerWallet)
    if user == nil {
      created, err := usersRepository.Create(params.OwnerWallet)
      if err != nil {
        return err
      }
      user = created
    }

    tweet := models.Tweet{
      TweetID:     params.TweetID,
      MintAddress: params.MintAddress,
      OwnerWallet: params.OwnerWallet,
      MetadataURI: params.MetadataURI,
      PriceSol:    params.PriceSol,
      Likes:       params.Likes,
      Retweets:    params.Retweets,
      Replies:     params.Replies,
      Views:       params.Views,
    }
    if err := tx.Create(&tweet).Error; err != nil {
      return err
    }

    var signature *string
    if params.TxSignature != "" {
      signature = &params.TxSignature
    }

    mint := models.Mint{
      TweetID:     params.TweetID,
      UserID:      &user.ID,
      TxSignature: signature,
      MintStatus:  config.MINT_STATUS_COMPLETED,
    }
    if err := tx.Create(&mint).Error; err != nil {
      return err
    }

    if params.PriceSol != nil && *params.PriceSol > 0 && signature != nil {
      payment := models.Payment{
        UserID:        &user.ID,
        MintID:        mint.ID,
        AmountSol:     *params.PriceSol,
        TxSignature:   signature,
        PaymentStatus: config.MINT_STATUS_COMPLETED,
      }
      if err := tx.Create(&payment).Error; err != nil {
        return err
      }
    }

    mintID = mint.ID
    userID = user.ID
    return nil
  })
  return
}
