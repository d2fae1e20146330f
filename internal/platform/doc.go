package platform

// Package platform wraps the OS-specific pieces the app needs: export
// file placement, atomic writes, and revealing files in the system file
// manager.
