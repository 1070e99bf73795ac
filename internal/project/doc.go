// Package project creates and drives Vue.js projects: StartProject gates on
// vue-cli, scaffolds a project with "vue init" and installs its dependencies;
// Dev and Build run the project's npm scripts. Every operation returns an
// Outcome carrying a status and the last captured output.
package project
