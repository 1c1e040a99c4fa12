// Command glbind inspects the OpenGL entry points a descriptor selects and
// probes whether a native library provides them.
//
// Usage:
//
//	glbind [-version 4.5] [-profile core] [-surface both] [-list]
//	       [-probe] [-lib libGL.so.1] [-resolver egl] [-schema] [-v]
//
// Flags override the GLBIND_VERSION, GLBIND_PROFILE and GLBIND_SURFACE
// environment variables.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/invopop/jsonschema"

	"github.com/gogpu/glbind"
	"github.com/gogpu/glbind/resolver"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type cliFlags struct {
	version  string
	profile  string
	surface  string
	list     bool
	probe    bool
	lib      string
	resolver string
	schema   bool
	verbose  bool
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("glbind", flag.ContinueOnError)
	fs.SetOutput(stderr)

	env := glbind.ConfigFromEnv()
	var f cliFlags
	fs.StringVar(&f.version, "version", env.Version, "OpenGL version (major.minor)")
	fs.StringVar(&f.profile, "profile", env.Profile, "context profile (core)")
	fs.StringVar(&f.surface, "surface", env.Surface, "exposed surfaces: raw-only, marshaling-only, both")
	fs.BoolVar(&f.list, "list", false, "list the selected entry points with their signatures")
	fs.BoolVar(&f.probe, "probe", false, "resolve the selected entry points and report missing ones")
	fs.StringVar(&f.lib, "lib", "", "comma-separated native libraries to probe (default: platform resolver)")
	fs.StringVar(&f.resolver, "resolver", "", "platform resolver to probe with: "+strings.Join(resolver.Available(), ", "))
	fs.BoolVar(&f.schema, "schema", false, "print the JSON schema of the configuration and exit")
	fs.BoolVar(&f.verbose, "v", false, "verbose logging")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if f.verbose {
		glbind.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	if f.schema {
		if err := writeSchema(stdout); err != nil {
			fmt.Fprintf(stderr, "glbind: %v\n", err)
			return 1
		}
		return 0
	}

	cfg := glbind.Config{Version: f.version, Profile: f.profile, Surface: f.surface}
	d, err := cfg.Descriptor()
	if err != nil {
		fmt.Fprintf(stderr, "glbind: %v\n", err)
		return 2
	}

	specs, err := glbind.Select(d)
	if err != nil {
		fmt.Fprintf(stderr, "glbind: %v\n", err)
		return 2
	}
	fmt.Fprintf(stdout, "%s: %d entry points\n", d, len(specs))
	if f.list {
		for _, s := range specs {
			fmt.Fprintf(stdout, "  %-40s %s  (GL %s)\n", s.Name, s.Signature, s.Since)
		}
	}

	if !f.probe {
		return 0
	}
	return probe(d, f, stdout, stderr)
}

func probe(d glbind.Descriptor, f cliFlags, stdout, stderr io.Writer) int {
	resolve, name, closeFn, err := openResolver(f)
	if err != nil {
		fmt.Fprintf(stderr, "glbind: %v\n", err)
		return 1
	}
	defer closeFn()

	counter := resolver.Counting(resolve)
	_, err = glbind.Bind(d, counter.Resolve)
	var ue *glbind.UnresolvedError
	switch {
	case err == nil:
		fmt.Fprintf(stdout, "%s: all %d entry points resolved\n", name, counter.Total())
		return 0
	case errors.As(err, &ue):
		fmt.Fprintf(stdout, "%s: %d of %d entry points unresolved\n", name, len(ue.Names), counter.Total())
		for _, n := range ue.Names {
			fmt.Fprintf(stdout, "  %s\n", n)
		}
		return 1
	default:
		fmt.Fprintf(stderr, "glbind: %v\n", err)
		return 1
	}
}

func openResolver(f cliFlags) (glbind.Resolver, string, func(), error) {
	noop := func() {}
	switch {
	case f.lib != "":
		lib, err := resolver.Library(strings.Split(f.lib, ",")...)
		if err != nil {
			return nil, "", noop, err
		}
		return lib.Resolve, lib.Name(), func() { _ = lib.Close() }, nil
	case f.resolver != "":
		r, err := resolver.Open(f.resolver)
		return r, f.resolver, noop, err
	default:
		r, name, err := resolver.Best()
		return r, name, noop, err
	}
}

func writeSchema(w io.Writer) error {
	reflector := jsonschema.Reflector{
		ExpandedStruct: true,
	}
	schema := reflector.Reflect(&glbind.Config{})

	b, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal schema: %w", err)
	}
	_, err = fmt.Fprintf(w, "%s\n", b)
	return err
}
