package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/field_cipher_mock.go -package=mock

// FieldCipher encrypts and decrypts individual sensitive string fields
// (sort codes, account numbers) with a server-held symmetric key.
//
// It knows nothing about HTTP, storage, or the shape of an application
// record. Its single job is to make bank details unreadable at rest.
//
// The empty string is a defined sentinel on both sides: Encrypt("") returns
// "" and Decrypt("") returns "", so absent optional fields round-trip
// without error and without producing ciphertext.
type FieldCipher interface {
	// Encrypt returns a base64 blob (nonce ‖ ciphertext) for plaintext.
	Encrypt(plaintext string) (string, error)

	// Decrypt reverses Encrypt. It is used only by authorized internal
	// readers; nothing on the public submission path ever calls it.
	Decrypt(ciphertext string) (string, error)
}
