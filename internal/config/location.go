package config

import (
	"fmt"
	"net/url"
	"path"
	"strings"
)

// LocationKind tells where a location points.
type LocationKind int

const (
	// LocationLocal is a path on the local file system.
	LocationLocal LocationKind = iota
	// LocationS3 is s3://bucket/prefix.
	LocationS3
	// LocationMinIO is minio://host/bucket/prefix (TLS) or
	// minio+http://host/bucket/prefix (plain HTTP).
	LocationMinIO
)

// Location is a parsed map or output location.
type Location struct {
	Kind     LocationKind
	Path     string // local path
	Endpoint string // MinIO host[:port]
	Secure   bool   // MinIO over TLS
	Bucket   string
	Prefix   string // key prefix without leading slash
}

// ParseLocation parses a local path, s3:// or minio:// URL.
func ParseLocation(s string) (Location, error) {
	if s == "" {
		return Location{}, fmt.Errorf("empty location")
	}
	scheme, _, ok := strings.Cut(s, "://")
	if !ok {
		return Location{Kind: LocationLocal, Path: s}, nil
	}

	u, err := url.Parse(s)
	if err != nil {
		return Location{}, fmt.Errorf("invalid location %q: %w", s, err)
	}
	switch scheme {
	case "s3":
		if u.Host == "" {
			return Location{}, fmt.Errorf("location %q has no bucket", s)
		}
		return Location{Kind: LocationS3, Bucket: u.Host, Prefix: strings.TrimPrefix(u.Path, "/")}, nil
	case "minio", "minio+http":
		bucket, prefix, _ := strings.Cut(strings.TrimPrefix(u.Path, "/"), "/")
		if u.Host == "" || bucket == "" {
			return Location{}, fmt.Errorf("location %q must be minio://host/bucket[/prefix]", s)
		}
		return Location{
			Kind:     LocationMinIO,
			Endpoint: u.Host,
			Secure:   scheme == "minio",
			Bucket:   bucket,
			Prefix:   prefix,
		}, nil
	default:
		return Location{}, fmt.Errorf("unsupported location scheme %q", scheme)
	}
}

// Split returns the parent location and the final element, used to turn
// an output file location into a store and a blob name.
func (l Location) Split() (Location, string) {
	parent := l
	if l.Kind == LocationLocal {
		dir, file := path.Split(strings.ReplaceAll(l.Path, "\\", "/"))
		parent.Path = dir
		if parent.Path == "" {
			parent.Path = "."
		}
		return parent, file
	}
	dir, file := path.Split(l.Prefix)
	parent.Prefix = strings.TrimSuffix(dir, "/")
	return parent, file
}
