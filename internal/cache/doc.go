// Package cache provides an LRU cache for immutable blob blocks.
//
// Map data on a remote store (S3, MinIO) is fetched block by block; the
// LRUBlockCache keeps recently read blocks in RAM so headers and neighbouring
// cells that share blocks are not fetched twice. When a resource.Controller
// is supplied, cached bytes count against its memory budget.
package cache
