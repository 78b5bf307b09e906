package inmem

import (
	"sync"
)

type TokenStore struct {
	mu    sync.Locker
	token string
}

func NewTokenStore() *TokenStore {
	return &TokenStore{
		mu: &sync.Mutex{},
	}
}

func (s *TokenStore) Get() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.token, nil
}

func (s *TokenStore) Set(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = token
	return nil
}

func (s *TokenStore) Clear() error {
	return s.Set("")
}
