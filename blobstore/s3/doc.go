// Package s3 provides an S3 implementation of the blobstore.BlobStore interface.
//
// # Usage
//
//	store, err := s3.New(ctx, "my-maps",
//	    s3.WithPrefix("worlds/muldraugh/"),
//	    s3.WithRegion("eu-central-1"),
//	)
//
// Map blobs are read with HTTP range requests, listing is paginated, and Put
// goes through the SDK's managed uploader so large marker files are sent as
// multipart uploads.
package s3
