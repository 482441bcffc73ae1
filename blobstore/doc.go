// Package blobstore abstracts durable object storage for sieve run
// artifacts. LocalStore is the default single-host backend; blobstore/s3
// and blobstore/minio implement the same interface against S3-compatible
// object storage for multi-host durability.
package blobstore
