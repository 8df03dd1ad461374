// Package manifest handles reading Gradle build scripts.
//
// The manifest package parses the declarative parts of a build.gradle.kts or
// build.gradle file (plugins, group and version, repositories, dependencies
// and task blocks) into a Manifest. A Manifest is immutable once parsed and
// may be shared between goroutines without locking.
//
// A dependency line may carry a trailing comment. The words in that comment
// become the dependency's annotations, which tools use to mark dependencies,
// for example to exclude them from analysis:
//
//	dependencies {
//	    implementation("io.quarkus:quarkus-agroal:2.13.5.Final")
//	    implementation(group: "log4j", name: "log4j", version: "1.2.17") // exhortignore
//	}
package manifest
