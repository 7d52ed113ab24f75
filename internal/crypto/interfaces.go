package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/sealer_mock.go -package=mock

// Sealer protects small secrets (the bearer token) before they are written
// to the local database.
type Sealer interface {
	// Seal encrypts plaintext and returns a base64 blob that is safe to store.
	Seal(plaintext []byte) (string, error)

	// Open reverses Seal. It fails when the blob was produced with a
	// different storage key or has been tampered with.
	Open(sealed string) ([]byte, error)
}
