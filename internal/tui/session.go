package tui

import "github.com/MKhiriev/go-team-keeper/models"

// Session is a logged-in user with the unlocked private key. The bearer
// token lives in the server adapter.
type Session struct {
	User       models.UserPublic
	PrivateKey *[32]byte
}

// Wipe zeroes the private key.
func (s *Session) Wipe() {
	if s.PrivateKey == nil {
		return
	}
	for i := range s.PrivateKey {
		s.PrivateKey[i] = 0
	}
	s.PrivateKey = nil
}
