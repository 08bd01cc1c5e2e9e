package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testKeyHex = "0000000000000000000000000000000000000000000000000000000000000000"

func newMiniredisClient(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr := miniredis.RunT(t)
	SetClient(goredis.NewClient(&goredis.Options{Addr: mr.Addr()}))
	return mr
}

func TestNewSessionStoreValidation(t *testing.T) {
	_, err := NewSessionStore("zz")
	assert.Error(t, err)

	_, err = NewSessionStore("0011")
	assert.Error(t, err)

	store, err := NewSessionStore(testKeyHex)
	assert.NoError(t, err)
	assert.NotNil(t, store)
}

func TestSessionStoreEncryptDecrypt(t *testing.T) {
	store, err := NewSessionStore(testKeyHex)
	assert.NoError(t, err)

	enc, err := store.encrypt([]byte(`{"x":1}`))
	assert.NoError(t, err)
	assert.NotEmpty(t, enc)

	dec, err := store.decrypt(enc)
	assert.NoError(t, err)
	assert.Contains(t, string(dec), `"x":1`)

	_, err = store.decrypt("00") // too short ciphertext
	assert.Error(t, err)

	_, err = store.decrypt("zz-not-hex")
	assert.Error(t, err)
}

func TestSessionStoreEncryptDecrypt_InvalidKeyMaterial(t *testing.T) {
	store := &SessionStore{encryptionKey: []byte("short-key")}
	_, err := store.encrypt([]byte("x"))
	assert.Error(t, err)
}

func TestSessionStoreCreateGetDelete(t *testing.T) {
	newMiniredisClient(t)

	store, err := NewSessionStore(testKeyHex)
	require.NoError(t, err)
	ctx := context.Background()

	issued := time.Now().Truncate(time.Second)
	err = store.CreateSession(ctx, "dummy-jwt-token-1", &AdminSession{Username: "admin", IssuedAt: issued}, time.Hour)
	require.NoError(t, err)

	got, err := store.GetSession(ctx, "dummy-jwt-token-1")
	require.NoError(t, err)
	assert.Equal(t, "admin", got.Username)
	assert.True(t, got.IssuedAt.Equal(issued))

	require.NoError(t, store.DeleteSession(ctx, "dummy-jwt-token-1"))
	_, err = store.GetSession(ctx, "dummy-jwt-token-1")
	assert.Error(t, err)
}

func TestSessionStoreGetSession_UnknownToken(t *testing.T) {
	newMiniredisClient(t)

	store, err := NewSessionStore(testKeyHex)
	require.NoError(t, err)

	_, err = store.GetSession(context.Background(), "never-issued")
	assert.Error(t, err)
}
