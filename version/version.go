package version

// BuildVersion is overridden at build time with -ldflags "-X github.com/bloXroute-Labs/geyser-client/version.BuildVersion=..."
var BuildVersion = "0.0.0-dev"
