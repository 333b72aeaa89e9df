package configs

import _ "embed"

// ApplicationYML holds the default application settings.
//
//go:embed application.yml
var ApplicationYML []byte

// MessagesYML holds the log and response message catalogue.
//
//go:embed messages.yml
var MessagesYML []byte
