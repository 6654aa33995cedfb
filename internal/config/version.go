package config

// Version is the bookingmx binary version.
// Set at build time via: -ldflags "-X github.com/bookingmx/bookingmx/internal/config.Version=<tag>"
// Defaults to "dev" when built without ldflags.
var Version = "dev"
