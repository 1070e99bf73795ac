// Package runtime runs the external programs vuedj drives (node, npm, vue).
// Runner is the capability the toolchain and project packages depend on;
// ExecRunner is the os/exec implementation, and tests substitute a fake.
package runtime
