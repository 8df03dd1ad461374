/*
Package action provides implementations for every gradlefile command.

The main gradlefile package acts as a Facade, with this package providing the
implementation. This package should know nothing of the command line flags or
runtime characteristics. However, this package is allowed to indicate that a
particular action should be aborted. So actions may call `msg.Die()` to
immediately stop execution of the program.

Actions read the build script, settings and version catalog fresh every time
they run. They are not concurrency-safe functions.
*/
package action
