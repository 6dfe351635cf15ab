// Package cloudshell detects whether the process runs inside Azure Cloud
// Shell, where there is no local shell to re-run az commands in and the
// portal session must be refreshed instead.
package cloudshell

import "github.com/joeshaw/envdecode"

// Config is populated from the environment. Cloud Shell sets ACC_CLOUD to
// the name of the cloud the console is attached to.
type Config struct {
	CloudName string `env:"ACC_CLOUD"`
}

// InConsole reports whether the current process runs inside Azure Cloud
// Shell.
func InConsole() bool {
	var cfg Config
	// Decode errors when no tagged field is set; that just means we are not
	// in Cloud Shell.
	_ = envdecode.Decode(&cfg)
	return cfg.CloudName != ""
}
