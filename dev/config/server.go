package config

// SERVER_YML is the default development config, written to
// dev/config/server.yml on first run with --dev.
const SERVER_YML = `
listener:
  port: 3000

sqlite:
  passPhrase: ""

session:
  secret: "dev-only-change-me-in-production"
`
