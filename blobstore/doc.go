// Package blobstore provides the storage abstraction map data is read from.
//
// A map is a flat namespace of immutable blobs: one header blob and one cell
// blob per map cell. The pipeline only needs to list and read them; Put
// exists so the marker file can be written next to (or into) the same store.
//
// # Built-in Implementations
//
//   - LocalStore: local directory, read through mmap
//   - MemoryStore: in-memory, for tests and synthetic maps
//   - CachingStore: block cache in front of any other store
//   - s3.Store: Amazon S3 with range reads and managed uploads
//   - minio.Store: MinIO and other S3-compatible stores
//
// Implementations must be safe for concurrent use and must return an error
// satisfying errors.Is(err, ErrNotFound) for missing blobs.
package blobstore
