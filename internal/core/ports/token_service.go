package ports

// TokenService issues and verifies signed bearer tokens binding a subject
// (the account email) to an expiration instant.
type TokenService interface {
	// Issue returns a compact signed token for the subject.
	Issue(subject string) (string, error)
	// Verify checks signature and expiration and returns the subject.
	// Every failure mode collapses to domain.ErrInvalidToken.
	Verify(token string) (string, error)
}
