package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/opgraph/opgraph/internal/eventbus"
	"github.com/opgraph/opgraph/internal/language"
	"github.com/opgraph/opgraph/internal/otel"
	"github.com/opgraph/opgraph/internal/reqid"
	"github.com/opgraph/opgraph/internal/schema"
	"github.com/opgraph/opgraph/internal/validation"
)

const rootUsage = `opgraph — static validator for GraphQL operation documents

USAGE:
  opgraph <command> [flags]

COMMANDS:
  check            Validate operation documents against an SDL schema
  help             Show help for any command
`

const checkUsage = `check FLAGS:
  -schema <file>          SDL schema file (required)
  -otel.endpoint <addr>   OTLP collector endpoint
  -otel.service <name>    OpenTelemetry service name (default: opgraph)

ARGS:
  <file>...               Operation documents to validate
  (Exits non-zero when any document fails validation)
`

func main() {
	if err := run(os.Args[1:]); err != nil {
		log.Fatal(err)
	}
}

func run(args []string) error {
	global := flag.NewFlagSet("opgraph", flag.ContinueOnError)
	global.SetOutput(new(bytes.Buffer)) // silence automatic output
	if err := global.Parse(args); err != nil {
		fmt.Fprint(os.Stderr, rootUsage)
		return err
	}
	remaining := global.Args()
	if len(remaining) == 0 {
		fmt.Fprint(os.Stderr, rootUsage)
		return fmt.Errorf("missing command")
	}

	cmd := remaining[0]
	cmdArgs := remaining[1:]
	switch cmd {
	case "check":
		return runCheck(cmdArgs)
	case "help":
		return runHelp(cmdArgs)
	default:
		fmt.Fprint(os.Stderr, rootUsage)
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func runHelp(args []string) error {
	if len(args) == 0 {
		fmt.Print(rootUsage)
		return nil
	}
	switch args[0] {
	case "check":
		fmt.Print(checkUsage)
	default:
		fmt.Print(rootUsage)
	}
	return nil
}

func runCheck(args []string) error {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	fs.SetOutput(new(bytes.Buffer))
	schemaPath := fs.String("schema", "", "")
	otelEndpoint := fs.String("otel.endpoint", "", "")
	otelService := fs.String("otel.service", "opgraph", "")
	if err := fs.Parse(args); err != nil {
		fmt.Fprint(os.Stderr, checkUsage)
		return err
	}
	if *schemaPath == "" {
		fmt.Fprint(os.Stderr, checkUsage)
		return fmt.Errorf("-schema is required")
	}
	files := fs.Args()
	if len(files) == 0 {
		fmt.Fprint(os.Stderr, checkUsage)
		return fmt.Errorf("no operation documents given")
	}

	eventbus.Use(eventbus.New())
	shutdown, err := otel.Setup(*otelEndpoint, *otelService)
	if err != nil {
		return fmt.Errorf("setting up telemetry: %w", err)
	}
	defer shutdown(context.Background())

	sdl, err := os.ReadFile(*schemaPath)
	if err != nil {
		return err
	}
	s, err := schema.FromSDL(*schemaPath, string(sdl))
	if err != nil {
		return fmt.Errorf("building schema: %w", err)
	}
	v := validation.New(s)

	failed := false
	for _, file := range files {
		src, err := os.ReadFile(file)
		if err != nil {
			return err
		}
		if err := checkDocument(v, file, string(src)); err != nil {
			failed = true
			var list validation.ErrorList
			if errors.As(err, &list) {
				for _, e := range list {
					fmt.Fprintln(os.Stderr, e.Error())
				}
			} else {
				fmt.Fprintf(os.Stderr, "%s: %v\n", file, err)
			}
		}
	}
	if failed {
		return fmt.Errorf("validation failed")
	}
	return nil
}

func checkDocument(v *validation.Validator, name, src string) error {
	doc, err := language.ParseQueryFile(name, src)
	if err != nil {
		return err
	}
	ctx, _ := reqid.NewContext(context.Background())
	_, err = v.ValidateDocument(ctx, doc)
	return err
}
