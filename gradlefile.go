// Package gradlefile holds the command table for the gradlefile tool.
//
// gradlefile reads a Gradle build script (build.gradle.kts or build.gradle)
// as data. The supported subset of the DSL is the plugins block, group and
// version assignments, the repositories block, the dependencies block, and
// task blocks. A build script looks something like this:
//
//	plugins {
//	    id("java")
//	}
//
//	group = "org.acme.dbaas"
//	version = "1.0.0-SNAPSHOT"
//
//	dependencies {
//	    implementation("io.quarkus:quarkus-agroal:2.13.5.Final")
//	    implementation(group: "log4j", name: "log4j", version: "1.2.17") // exhortignore
//	}
//
// Nothing here runs Gradle or touches the network. The implementation of each
// command lives in the action package.
package gradlefile

import (
	"github.com/Masterminds/gradlefile/action"
	"github.com/Masterminds/gradlefile/cfg"

	"github.com/urfave/cli"
)

// Commands returns the commands the gradlefile binary understands.
func Commands() []cli.Command {
	return []cli.Command{
		{
			Name:  "about",
			Usage: "Learn about gradlefile",
			Action: func(c *cli.Context) error {
				action.About()
				return nil
			},
		},
		{
			Name:      "create",
			Aliases:   []string{"init"},
			Usage:     "Write a .gradlefile.yaml settings file next to the build script",
			ArgsUsage: "[marker]",
			Description: `The settings file records the annotation marker, the duplicate policy
   and, when the project has one, the version catalog. It will not overwrite an
   existing settings file.`,
			Action: func(c *cli.Context) error {
				action.Create(c.Args().First())
				return nil
			},
		},
		{
			Name:  "info",
			Usage: "Info prints information about the build script",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "format, f",
					Value: action.DefaultInfoFormat,
					Usage: `Format of the information wanted (required).`,
				},
			},
			Description: `A format containing the text with replacement variables
   has to be passed in. Those variables are:

       %g - group
       %v - version
       %p - plugins, with versions when declared
       %r - repositories
       %m - repositories with mirrors applied
       %t - configured tasks
       %n - number of dependencies
       %f - path to the build script

   For example, given a build script with:

       group = "org.acme.dbaas"
       version = "1.0.0-SNAPSHOT"

   The command 'gradlefile info -f "%g:%v"' would return 'org.acme.dbaas:1.0.0-SNAPSHOT'.`,
			Action: func(c *cli.Context) error {
				action.Info(c.String("format"))
				return nil
			},
		},
		{
			Name:  "list",
			Usage: "List the declared dependencies in declaration order",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "configuration, c",
					Usage: "Only list dependencies in this configuration, e.g. testImplementation.",
				},
				cli.StringFlag{
					Name:  "constraint",
					Usage: "Only list dependencies whose version meets a semantic version constraint, e.g. '>=2.0'.",
				},
				cli.BoolFlag{
					Name:  "purl",
					Usage: "Print Maven package URLs instead of group:artifact:version.",
				},
			},
			Action: func(c *cli.Context) error {
				action.List(c.String("configuration"), c.String("constraint"), c.Bool("purl"))
				return nil
			},
		},
		{
			Name:      "annotated",
			Aliases:   []string{"ignored"},
			Usage:     "List the dependencies whose declaration line carries a marker comment",
			ArgsUsage: "[marker]",
			Description: `The marker defaults to the one in the settings file, which is
   '` + cfg.DefaultMarker + `' unless changed. Markers are matched as whole
   words without regard to case, so 'gradlefile annotated ignore' finds

       implementation("a:b:1.0") // IGNORE

   but not '// exhortignore'.`,
			Action: func(c *cli.Context) error {
				action.Annotated(c.Args().First())
				return nil
			},
		},
		{
			Name:  "tree",
			Usage: "Show the dependencies grouped by configuration",
			Action: func(c *cli.Context) error {
				action.Tree()
				return nil
			},
		},
		{
			Name:  "catalog",
			Usage: "List the libraries of the version catalog with their libs.* accessors",
			Action: func(c *cli.Context) error {
				action.Catalog()
				return nil
			},
		},
		{
			Name:  "export",
			Usage: "Print the whole build script model as yaml or json",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "format",
					Value: "yaml",
					Usage: "Output format: yaml or json.",
				},
			},
			Action: func(c *cli.Context) error {
				action.Export(c.String("format"))
				return nil
			},
		},
		{
			Name:  "mirror",
			Usage: "Manage repository mirrors",
			Description: `Mirrors replace a repository named in a build script, such as
   mavenCentral or a repository URL, with another URL. They are stored in
   mirrors.yaml in the gradlefile home directory and shown by
   'gradlefile info -f %m'.`,
			Subcommands: []cli.Command{
				{
					Name:  "list",
					Usage: "List the current repository mirrors",
					Action: func(c *cli.Context) error {
						return action.MirrorsList()
					},
				},
				{
					Name:      "set",
					Usage:     "Set a mirror for a repository",
					ArgsUsage: "<original> <url>",
					Action: func(c *cli.Context) error {
						return action.MirrorsSet(c.Args().Get(0), c.Args().Get(1))
					},
				},
				{
					Name:      "remove",
					Aliases:   []string{"rm"},
					Usage:     "Remove a repository mirror",
					ArgsUsage: "<original>",
					Action: func(c *cli.Context) error {
						return action.MirrorsRemove(c.Args().First())
					},
				},
			},
		},
		{
			Name:  "lock",
			Usage: "Write a lock snapshot of the declared dependencies",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "output, o",
					Usage: "Where to write the lock file. Defaults to gradlefile.lock next to the build script.",
				},
			},
			Action: func(c *cli.Context) error {
				action.Lock(c.String("output"))
				return nil
			},
		},
		{
			Name:  "verify",
			Usage: "Check the build script against its lock snapshot",
			Description: `Exits non-zero when the declared dependencies no longer match the lock
   file. Edits that do not change any dependency, such as new comments, pass.`,
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "lock, l",
					Usage: "The lock file to check against. Defaults to gradlefile.lock next to the build script.",
				},
			},
			Action: func(c *cli.Context) error {
				action.Verify(c.String("lock"))
				return nil
			},
		},
	}
}
