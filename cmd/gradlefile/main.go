// gradlefile is a command line utility that reads Gradle build scripts as
// data.
//
// It finds the build.gradle.kts or build.gradle closest to the working
// directory, or the one named with --file, and parses its plugins, group,
// version, repositories, dependencies and task blocks. Dependencies may be
// declared as coordinate strings, as group/name/version arguments, or as
// libs.* references into gradle/libs.versions.toml.
//
// For more information use the `gradlefile help` command.
package main

import (
	"github.com/Masterminds/gradlefile"
	"github.com/Masterminds/gradlefile/action"
	"github.com/Masterminds/gradlefile/msg"
	gpath "github.com/Masterminds/gradlefile/path"

	"github.com/urfave/cli"

	"os"
)

var version = "0.1.0-dev"

const usage = `Read Gradle build scripts as data.

   Each project should have a 'build.gradle.kts' or 'build.gradle' file in the
   project directory. The dependencies block looks something like this:

       dependencies {
           implementation("io.quarkus:quarkus-agroal:2.13.5.Final")
           implementation(group: "log4j", name: "log4j", version: "1.2.17") // exhortignore
       }

   Settings live in '.gradlefile.yaml' next to the build script:

       marker: exhortignore
       duplicates: allow
`

func main() {
	app := cli.NewApp()
	app.Name = "gradlefile"
	app.Usage = usage
	app.Version = version
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:   "file, f",
			Value:  "",
			Usage:  "The build script to read. Defaults to the closest build.gradle.kts or build.gradle.",
			EnvVar: "GRADLEFILE_MANIFEST",
		},
		cli.StringFlag{
			Name:   "catalog",
			Value:  "",
			Usage:  "A version catalog for libs.* references. Defaults to gradle/libs.versions.toml.",
			EnvVar: "GRADLEFILE_CATALOG",
		},
		cli.StringFlag{
			Name:   "config",
			Value:  "",
			Usage:  "A settings file. Defaults to .gradlefile.yaml next to the build script.",
			EnvVar: "GRADLEFILE_CONFIG",
		},
		cli.StringFlag{
			Name:  "duplicates",
			Value: "",
			Usage: "What to do with a dependency declared twice: allow, reject or last-wins.",
		},
		cli.BoolFlag{
			Name:  "quiet, q",
			Usage: "Quiet (no info or debug messages)",
		},
		cli.BoolFlag{
			Name:  "debug",
			Usage: "Print debug verbose informational messages",
		},
		cli.StringFlag{
			Name:   "home",
			Value:  gpath.Home(),
			Usage:  "The location of gradlefile files",
			EnvVar: "GRADLEFILE_HOME",
		},
		cli.BoolFlag{
			Name:  "no-color",
			Usage: "Turn off colored output for log messages",
		},
	}
	app.Before = startup
	app.After = shutdown
	app.Commands = gradlefile.Commands()

	// Detect errors from the Before and After calls and exit on them.
	if err := app.Run(os.Args); err != nil {
		msg.Err(err.Error())
		os.Exit(1)
	}

	// If there was an Error message exit non-zero.
	if msg.HasErrored() {
		m := msg.Color(msg.Red, "An Error has occurred")
		msg.Msg(m)
		os.Exit(2)
	}
}

// startup sets up the base environment.
//
// It does not assume the presence of a build script, so it can be used by
// any gradlefile command.
func startup(c *cli.Context) error {
	action.Debug(c.Bool("debug"))
	action.NoColor(c.Bool("no-color"))
	action.Quiet(c.Bool("quiet"))
	action.Init(c.String("file"), c.String("catalog"), c.String("config"), c.String("home"), c.String("duplicates"))
	return nil
}

func shutdown(c *cli.Context) error {
	msg.Debug("Done")
	return nil
}
