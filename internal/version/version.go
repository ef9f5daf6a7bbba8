package version

// Version is the pepkit release tag; overridable at build time via
// -ldflags "-X pepkit/internal/version.Version=...".
var Version = "0.4.0"
