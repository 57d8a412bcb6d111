package version

// Version is the current release of the connect CLI
const Version = "0.1.0"
