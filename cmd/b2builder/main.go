package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/ByteArena/box2d"
	b2 "github.com/ByteArena/box2d-builder"
	"github.com/ByteArena/box2d-builder/b2cp"
	"github.com/ByteArena/box2d-builder/b2world"
	"github.com/ByteArena/box2d-builder/b2wkt"
	"github.com/ByteArena/box2d-builder/b2yaml"
	"github.com/ByteArena/box2d-builder/internal/config"
	"github.com/jakecoffman/cp"
	"github.com/rs/zerolog"
)

const usage = `usage: b2builder [--config file] <command> <path>

commands:
  inspect <file|dir>  print body definitions, mass data and bounds
  wkt <file|dir>      print the WKT geometry of every fixture
  watch <dir>         inspect documents again whenever they change
`

func newLogger(level string) zerolog.Logger {
	logLevel, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || logLevel == zerolog.NoLevel {
		logLevel = zerolog.InfoLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}).Level(logLevel).With().Timestamp().Logger()
}

func main() {
	configFile := flag.String("config", "", "Optional YAML config file")
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	flag.Parse()

	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(2)
	}

	if err := config.Load(*configFile); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log := newLogger(config.GetString("logLevel"))
	command, path := flag.Arg(0), flag.Arg(1)
	loader := b2yaml.NewLoader(log)

	var err error
	switch command {
	case "inspect":
		err = inspect(os.Stdout, log, loader, path)
	case "wkt":
		err = printWKT(os.Stdout, loader, path)
	case "watch":
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		err = watch(ctx, os.Stdout, log, loader, path)
		stop()
	default:
		flag.Usage()
		os.Exit(2)
	}

	if err != nil {
		log.Error().Err(err).Str("command", command).Msg("Command failed")
		os.Exit(1)
	}
}

func gravity() box2d.B2Vec2 {
	return box2d.MakeB2Vec2(config.GetFloat("world.gravityX"), config.GetFloat("world.gravityY"))
}

func inspect(w io.Writer, log zerolog.Logger, loader *b2yaml.Loader, path string) error {
	bodies, err := loader.Load(path)
	if err != nil {
		return err
	}

	world := box2d.MakeB2World(gravity())
	space := cp.NewSpace()
	space.SetGravity(cp.Vector{X: config.GetFloat("world.gravityX"), Y: config.GetFloat("world.gravityY")})

	for _, body := range bodies {
		inspectBody(w, body)

		runtimeBody, err := b2world.CreateBody(&world, body.Def)
		if err != nil {
			return fmt.Errorf("%s: %w", body.Path, err)
		}
		fixtures := 0
		for f := runtimeBody.GetFixtureList(); f != nil; f = f.GetNext() {
			fixtures++
		}

		cpBody, shapes, err := b2cp.AddBody(space, body.Def)
		if err != nil {
			return fmt.Errorf("%s: %w", body.Path, err)
		}

		log.Info().
			Str("name", body.Doc.Name).
			Int("fixtures", fixtures).
			Float64("box2dMass", runtimeBody.GetMass()).
			Int("cpShapes", len(shapes)).
			Float64("cpMass", cpBody.Mass()).
			Msg("Created runtime body")
	}

	return nil
}

func inspectBody(w io.Writer, body *b2yaml.Body) {
	fmt.Fprintf(w, "# %s (%s)\n", body.Doc.Name, body.Path)
	body.Def.Dump(w)

	massData := body.Def.ComputeMassData()
	fmt.Fprintf(w, "mass: %v center: (%v, %v) inertia: %v\n",
		massData.Mass, massData.Center.X, massData.Center.Y, massData.I)

	if aabb, ok := body.Def.ComputeAABB(); ok {
		fmt.Fprintf(w, "aabb: (%v, %v) - (%v, %v)\n",
			aabb.LowerBound.X, aabb.LowerBound.Y, aabb.UpperBound.X, aabb.UpperBound.Y)
	} else {
		fmt.Fprint(w, "aabb: none\n")
	}

	for i, fd := range body.Def.Fixtures {
		fmt.Fprintf(w, "fixture %d: %s\n", i, b2.B2ShapeTypeName(fd.GetType()))
	}
}

func printWKT(w io.Writer, loader *b2yaml.Loader, path string) error {
	bodies, err := loader.Load(path)
	if err != nil {
		return err
	}

	segments := config.GetInt("circleSegments")
	for _, body := range bodies {
		xf := body.Def.GetTransform()
		for i, fd := range body.Def.Fixtures {
			g, err := b2wkt.FixtureGeometry(fd, xf, segments)
			if err != nil {
				return fmt.Errorf("%s: fixture %d: %w", body.Path, i, err)
			}
			fmt.Fprintf(w, "%s\t%d\t%s\n", body.Doc.Name, i, g.AsText())
		}
	}
	return nil
}

func watch(ctx context.Context, w io.Writer, log zerolog.Logger, loader *b2yaml.Loader, dir string) error {
	if err := inspect(w, log, loader, dir); err != nil {
		log.Warn().Err(err).Msg("Initial inspection failed")
	}

	watcher, err := b2yaml.NewWatcher(log, config.GetDuration("watch.debounce"), dir)
	if err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	defer watcher.Close()

	log.Info().Str("dir", filepath.Clean(dir)).Msg("Watching body documents")

	for {
		select {
		case <-ctx.Done():
			return nil
		case path, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if _, err := os.Stat(path); err != nil {
				log.Info().Str("path", path).Msg("Document removed")
				continue
			}
			if err := inspect(w, log, loader, path); err != nil {
				log.Warn().Err(err).Str("path", path).Msg("Reload failed")
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warn().Err(err).Msg("Watcher error")
		}
	}
}
