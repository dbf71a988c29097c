// Package objectstore provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client behind the small Client interface the lists
// feature needs to read seed documents and write snapshots. The abstraction
// works with both AWS S3 and self-hosted MinIO.
//
// # Client Interface
//
// The Client interface makes storage interactions easy to mock in unit
// tests (see core/objectstore/mocks).
//
// # Operations
//
//   - BucketExists / MakeBucket, wrapped by EnsureBucket.
//   - PutObject, wrapped by PutBytes for in-memory payloads.
//   - GetObject, wrapped by GetBytes.
//
// # Usage
//
//	client, err := objectstore.NewClient(cfg.Storage)
//	err = objectstore.EnsureBucket(ctx, client, cfg.Storage.Bucket)
package objectstore
