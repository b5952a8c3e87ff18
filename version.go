package swml

// Version is the module version, set at build time with
// -ldflags "-X github.com/aretw0/swml.Version=v1.2.3".
var Version = "dev"
