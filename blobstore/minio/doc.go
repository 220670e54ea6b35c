// Package minio provides a BlobStore implementation using the MinIO client.
//
// MinIO is S3-compatible object storage; this package uses the official
// MinIO Go client, so it also works against Ceph, SeaweedFS and Garage
// without pulling in the AWS SDK.
//
// # Basic Usage
//
//	client, err := minio.New("localhost:9000", &minio.Options{
//	    Creds:  credentials.NewStaticV4("minioadmin", "minioadmin", ""),
//	    Secure: false,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	store := minioblob.NewStore(client, "maps", "worlds/muldraugh/")
package minio
