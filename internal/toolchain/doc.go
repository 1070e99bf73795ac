// Package toolchain checks that the external programs a Vue.js project needs
// are installed: node and npm for the runtime, and vue-cli at or above a
// minimum version for scaffolding. Probes never fail; every problem
// collapses to false so callers can decide how to report it.
package toolchain
