// Package utils provides helpers for loosely typed provider values: ids that
// arrive as strings, numbers or objects, and protocol-relative URLs.
package utils
