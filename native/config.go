package native

import "go.uber.org/zap"

// Config holds configuration for library creation.
type Config struct {
	// Logger overrides the package logger for this library.
	Logger *zap.Logger

	// Catalog replaces the built-in type catalog with YAML source.
	// nil means the built-in catalog.
	Catalog []byte

	// InitialPages sets the library memory size at start in pages (64KB each).
	// 0 means 1 page.
	InitialPages uint32

	// MemoryLimitPages sets the maximum library memory in pages.
	// 0 means default (65536 pages = 4GB).
	MemoryLimitPages uint32
}

const defaultInitialPages = 1
