package objectstore_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"model-storage/core/objectstore"
	"model-storage/core/objectstore/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	endpoints := map[string]bool{
		"localhost:9000":           false,
		"http://localhost:9000":    false,
		"https://s3.amazonaws.com": true,
	}
	for endpoint, ssl := range endpoints {
		t.Run(endpoint, func(t *testing.T) {
			client, err := objectstore.NewClient(objectstore.Config{
				Endpoint:  endpoint,
				AccessKey: "testkey",
				SecretKey: "testsecret",
				UseSSL:    ssl,
				Region:    "us-east-1",
			})
			assert.NoError(t, err)
			assert.NotNil(t, client)
		})
	}
}

func TestEnsureBucket(t *testing.T) {
	ctx := context.Background()

	t.Run("Exists", func(t *testing.T) {
		m := new(mocks.Client)
		m.On("BucketExists", ctx, "lists").Return(true, nil)

		require.NoError(t, objectstore.EnsureBucket(ctx, m, "lists"))
		m.AssertNotCalled(t, "MakeBucket", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Creates", func(t *testing.T) {
		m := new(mocks.Client)
		m.On("BucketExists", ctx, "lists").Return(false, nil)
		m.On("MakeBucket", ctx, "lists", minio.MakeBucketOptions{}).Return(nil)

		require.NoError(t, objectstore.EnsureBucket(ctx, m, "lists"))
		m.AssertExpectations(t)
	})

	t.Run("CheckFails", func(t *testing.T) {
		m := new(mocks.Client)
		m.On("BucketExists", ctx, "lists").Return(false, errors.New("unreachable"))

		assert.ErrorContains(t, objectstore.EnsureBucket(ctx, m, "lists"), "unreachable")
	})
}

func TestPutAndGetBytes(t *testing.T) {
	ctx := context.Background()
	m := new(mocks.Client)
	m.On("PutObject", ctx, "lists", "snap.json", mock.Anything, int64(2), minio.PutObjectOptions{ContentType: "application/json"}).
		Return(minio.UploadInfo{}, nil)
	m.On("GetObject", ctx, "lists", "seed.json", mock.Anything).
		Return(io.NopCloser(bytes.NewReader([]byte("{}"))), nil)
	m.On("GetObject", ctx, "lists", "missing.json", mock.Anything).
		Return(nil, errors.New("not found"))

	require.NoError(t, objectstore.PutBytes(ctx, m, "lists", "snap.json", []byte("{}"), "application/json"))

	data, err := objectstore.GetBytes(ctx, m, "lists", "seed.json")
	require.NoError(t, err)
	assert.Equal(t, []byte("{}"), data)

	_, err = objectstore.GetBytes(ctx, m, "lists", "missing.json")
	assert.ErrorContains(t, err, "not found")
}
