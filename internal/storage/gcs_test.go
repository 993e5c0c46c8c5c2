package storage

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"

	"catalog_service/internal/domain"

	gcs "cloud.google.com/go/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"
)

type fakeUpload struct {
	query string
	body  string
}

// newFakeGCS serves the JSON API upload endpoint and answers with status.
func newFakeGCS(t *testing.T, status int) (*gcs.Client, *[]fakeUpload) {
	t.Helper()
	var (
		mu      sync.Mutex
		uploads []fakeUpload
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		buf := new(bytes.Buffer)
		_, _ = buf.ReadFrom(r.Body)
		mu.Lock()
		uploads = append(uploads, fakeUpload{query: r.URL.RawQuery, body: buf.String()})
		mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if status == http.StatusOK {
			_, _ = w.Write([]byte(`{"bucket":"catalog-images","name":"images/x.png","generation":"1"}`))
			return
		}
		_, _ = w.Write([]byte(`{"error":{"code":412,"message":"conditionNotMet"}}`))
	}))
	t.Cleanup(srv.Close)

	client, err := gcs.NewClient(context.Background(),
		option.WithEndpoint(srv.URL+"/storage/v1/"),
		option.WithoutAuthentication(),
	)
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })
	return client, &uploads
}

func TestGCSFileStore_Store(t *testing.T) {
	client, uploads := newFakeGCS(t, http.StatusOK)
	store := NewGCSFileStore(client, "catalog-images", quietLogger())

	name, err := store.Store(context.Background(), "images/", "shoe.png", []byte("png-bytes"))

	require.NoError(t, err)
	assert.Equal(t, ".png", filepath.Ext(name))
	require.Len(t, *uploads, 1)
	upload := (*uploads)[0]
	assert.Contains(t, upload.query, "ifGenerationMatch=0")
	assert.Contains(t, upload.body, "images/"+name)
	assert.Contains(t, upload.body, "png-bytes")
}

func TestGCSFileStore_ObjectExists(t *testing.T) {
	client, _ := newFakeGCS(t, http.StatusPreconditionFailed)
	store := NewGCSFileStore(client, "catalog-images", quietLogger())

	_, err := store.Store(context.Background(), "images/", "shoe.png", []byte("png-bytes"))

	assert.ErrorIs(t, err, domain.ErrImageStorage)
}

func TestGCSFileStore_EmptyBucket(t *testing.T) {
	store := NewGCSFileStore(nil, "  ", quietLogger())

	_, err := store.Store(context.Background(), "images/", "shoe.png", []byte("png-bytes"))

	assert.ErrorIs(t, err, domain.ErrImageStorage)
	assert.Contains(t, err.Error(), "bucket is empty")
}
