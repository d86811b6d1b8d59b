//go:build tools

package tools

// Pins the mock generator so `go generate` produces consistent output.
import (
	_ "github.com/vektra/mockery/v2"
)
