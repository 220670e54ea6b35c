// Package resource implements the Controller that bounds what a locate run
// may consume while reading map data.
//
// Three budgets are managed:
//
//   - Memory: bytes held by the block cache (non-blocking, fail-fast)
//   - Reads: number of blobs open at the same time (blocking semaphore)
//   - IO: bytes per second pulled from the blob store (token bucket)
//
// # Usage
//
//	rc := resource.NewController(resource.Config{
//	    MemoryLimitBytes:   256 << 20,
//	    MaxConcurrentReads: 8,
//	    IOLimitBytesPerSec: 64 << 20,
//	})
//
//	if err := rc.AcquireRead(ctx); err != nil {
//	    return err
//	}
//	defer rc.ReleaseRead()
//	if err := rc.AcquireIO(ctx, len(buf)); err != nil {
//	    return err
//	}
//
// All methods are safe for concurrent use, and a nil *Controller is valid:
// every method becomes a no-op.
package resource
