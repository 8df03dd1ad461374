package action

import "github.com/Masterminds/gradlefile/msg"

const aboutMessage = `
gradlefile: read Gradle build scripts as data.

gradlefile parses the plugins, group, version, repositories, dependencies and
task blocks of a build.gradle.kts or build.gradle file without running Gradle.
It lists the declared dependencies, finds the ones a comment marks for
exclusion (// exhortignore by default), exports the build script as yaml or
json, and keeps a lock snapshot so changes to the dependency list show up.

Declarations may be coordinate strings, group/name/version arguments, or
libs.* references into gradle/libs.versions.toml.

Settings are read from .gradlefile.yaml next to the build script, or from
config.yaml in the gradlefile home directory.`

// About prints information about gradlefile.
func About() {
	msg.Puts("%s", aboutMessage)
}
