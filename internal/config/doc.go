// Package config manages user-level settings stored at ~/.vuedj/config.yaml.
// Values can be overridden with VUEDJ_* environment variables. Settings
// returns the typed view used by the toolchain and project packages: which
// node/npm/vue binaries to call, the minimum vue-cli version, and the
// status policy for project creation.
package config
