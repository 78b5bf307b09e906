package bolt

import (
	"github.com/boltdb/bolt"
)

var (
	sessionBucket = []byte("session")
	tokenKey      = []byte("token")
)

// TokenStore keeps the bearer token of the current session under a single
// key, the way a browser keeps it in local storage.
type TokenStore struct {
	driver *Driver
}

func NewTokenStore(driver *Driver) *TokenStore {
	return &TokenStore{
		driver: driver,
	}
}

func (s *TokenStore) Get() (string, error) {
	var token string
	err := s.driver.store.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(sessionBucket)

		data := bucket.Get(tokenKey)
		if data == nil {
			return nil
		}

		token = string(data)
		return nil
	})
	if err != nil {
		return "", err
	}

	return token, nil
}

func (s *TokenStore) Set(token string) error {
	if token == "" {
		return s.Clear()
	}

	return s.driver.store.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(sessionBucket)
		return bucket.Put(tokenKey, []byte(token))
	})
}

func (s *TokenStore) Clear() error {
	return s.driver.store.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(sessionBucket)
		return bucket.Delete(tokenKey)
	})
}
