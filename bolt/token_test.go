package bolt

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bobinette/notenet"
)

var _ notenet.TokenStore = (*TokenStore)(nil)

func setUp(t *testing.T) (*Driver, func()) {
	tmpFile, err := os.CreateTemp("", "")
	require.NoError(t, err, "tmp file")
	tmpFile.Close()

	filename := tmpFile.Name()
	driver := &Driver{}
	err = driver.Open(filename)
	require.NoError(t, err, "open driver")

	return driver, func() {
		driver.Close()
		os.Remove(filename)
	}
}

func TestTokenStore(t *testing.T) {
	driver, tearDown := setUp(t)
	defer tearDown()

	store := NewTokenStore(driver)

	// Nothing stored yet
	token, err := store.Get()
	require.NoError(t, err, "get before set")
	assert.Equal(t, "", token)

	require.NoError(t, store.Set("abc.def.ghi"), "set")
	token, err = store.Get()
	require.NoError(t, err, "get after set")
	assert.Equal(t, "abc.def.ghi", token)

	require.NoError(t, store.Set("jkl.mno.pqr"), "overwrite")
	token, err = store.Get()
	require.NoError(t, err, "get after overwrite")
	assert.Equal(t, "jkl.mno.pqr", token)

	require.NoError(t, store.Clear(), "clear")
	token, err = store.Get()
	require.NoError(t, err, "get after clear")
	assert.Equal(t, "", token)

	require.NoError(t, store.Clear(), "clearing twice is fine")
}

func TestTokenStore_SetEmptyClears(t *testing.T) {
	driver, tearDown := setUp(t)
	defer tearDown()

	store := NewTokenStore(driver)
	require.NoError(t, store.Set("abc"))
	require.NoError(t, store.Set(""))

	token, err := store.Get()
	require.NoError(t, err)
	assert.Equal(t, "", token)
}

func TestTokenStore_Persisted(t *testing.T) {
	dir, err := os.MkdirTemp("", "notenet")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "nested", "session.db")

	driver := &Driver{}
	require.NoError(t, driver.Open(path), "open creates the parent directory")
	require.NoError(t, NewTokenStore(driver).Set("abc"))
	require.NoError(t, driver.Close())

	driver = &Driver{}
	require.NoError(t, driver.Open(path), "reopen")
	defer driver.Close()

	token, err := NewTokenStore(driver).Get()
	require.NoError(t, err)
	assert.Equal(t, "abc", token, "token survives a restart")

	assert.Error(t, driver.Open(path), "opening twice fails")
}
