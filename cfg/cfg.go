// Package cfg handles the gradlefile settings file.
//
// Settings live in .gradlefile.yaml next to the build script, or in
// config.yaml in the gradlefile home directory. They pick the annotation
// marker, the duplicate policy, and where the build script and version
// catalog are. Command line flags override what the file says.
package cfg
