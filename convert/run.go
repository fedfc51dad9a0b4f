package convert

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"
	"golang.org/x/text/encoding/ianaindex"
	"gopkg.in/yaml.v3"

	"prosong/config"
	"prosong/song"
	"prosong/state"
)

// Run is the convert subcommand: read one lyrics file, build a document with
// the selected strategy and write it next to where the caller asked.
func Run(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("convert")

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return errors.New("no input source has been specified")
	}
	if src, err = filepath.Abs(src); err != nil {
		return err
	}

	dst := cmd.Args().Get(1)
	if len(dst) == 0 {
		if dst, err = os.Getwd(); err != nil {
			return fmt.Errorf("unable to get working directory: %w", err)
		}
	}
	if dst, err = filepath.Abs(dst); err != nil {
		return err
	}
	if cmd.Args().Len() > 2 {
		log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[2:]))
	}

	env.Overwrite = cmd.Bool("overwrite")

	// Old lyrics collections predate UTF-8, we may need to force an archaic
	// code page on input
	if cp := cmd.String("force-cp"); len(cp) > 0 {
		env.CodePage, err = ianaindex.IANA.Encoding(cp)
		if err != nil {
			log.Warn("Unknown character set specification. Ignoring...", zap.String("charset", cp), zap.Error(err))
			env.CodePage = nil
		} else {
			n, _ := ianaindex.IANA.Name(env.CodePage)
			log.Debug("Forcefully decoding input text", zap.String("charset", n))
		}
	}

	strategy, templatePath, err := resolveStrategy(env.Cfg, cmd.String("strategy"), cmd.String("template"))
	if err != nil {
		return err
	}

	log.Info("Processing starting",
		zap.String("source", src),
		zap.String("destination", dst),
		zap.Stringer("strategy", strategy))
	defer func(start time.Time) {
		log.Info("Processing completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	return process(ctx, src, dst, strategy, templatePath, env, log)
}

// resolveStrategy combines configuration with command line overrides and
// collapses the auto strategy into a concrete one.
func resolveStrategy(cfg *config.Config, flagStrategy, flagTemplate string) (config.Strategy, string, error) {
	strategy := cfg.Document.Strategy
	if len(flagStrategy) > 0 {
		s, err := config.ParseStrategy(flagStrategy)
		if err != nil {
			return strategy, "", fmt.Errorf("bad strategy requested: %w", err)
		}
		strategy = s
	}

	templatePath := cfg.Document.TemplatePath
	if len(flagTemplate) > 0 {
		templatePath = flagTemplate
	}

	switch strategy {
	case config.StrategyAuto:
		if len(templatePath) > 0 {
			strategy = config.StrategyTemplate
		} else {
			strategy = config.StrategyScratch
		}
	case config.StrategyTemplate:
		if len(templatePath) == 0 {
			return strategy, "", errors.New("template strategy requires a template document")
		}
	}
	return strategy, templatePath, nil
}

// process handles the conversion independently of the CLI framework: read and
// decode input, parse, generate, serialize, single write at the end.
func process(ctx context.Context, src, dst string, strategy config.Strategy, templatePath string, env *state.LocalEnv, log *zap.Logger) error {
	text, err := readInput(src, env)
	if err != nil {
		return err
	}
	if env.Rpt != nil {
		env.Rpt.Store("input.txt", src)
	}

	s := song.Parse(text)
	if s.SlideCount() == 0 {
		return fmt.Errorf("%w: %s", ErrEmptySong, src)
	}
	log.Debug("Input parsed",
		zap.String("title", s.Title),
		zap.Int("sections", len(s.Sections)),
		zap.Int("slides", s.SlideCount()))

	var g Generator
	switch strategy {
	case config.StrategyTemplate:
		data, err := os.ReadFile(templatePath)
		if err != nil {
			return fmt.Errorf("unable to read template from %q: %w", templatePath, err)
		}
		g = NewTemplate(data, WithLogger(log))
	default:
		g = NewScratch(WithLogger(log))
	}

	p, err := g.Generate(ctx, s)
	if err != nil {
		return err
	}
	out := p.Marshal()

	path := buildOutputPath(s.Title, dst, env)
	if !env.Overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("output already exists (%s), use overwrite flag", path)
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("unable to create output directory: %w", err)
	}
	if err := os.WriteFile(path, out, 0644); err != nil {
		return fmt.Errorf("unable to write output document: %w", err)
	}
	if env.Rpt != nil {
		env.Rpt.StoreData(filepath.Base(path), out)
	}

	log.Info("Document written", zap.String("file", path), zap.Int("size", len(out)))
	return nil
}

// readInput loads the lyrics file, converting from a forced legacy code page
// when one was requested.
func readInput(src string, env *state.LocalEnv) (string, error) {
	data, err := os.ReadFile(src)
	if err != nil {
		return "", fmt.Errorf("unable to read input from %q: %w", src, err)
	}
	if env.CodePage != nil {
		if data, err = env.CodePage.NewDecoder().Bytes(data); err != nil {
			return "", fmt.Errorf("unable to decode input from %q: %w", src, err)
		}
	}
	return string(data), nil
}

// RunParse is the parse subcommand: show what the parser makes of a lyrics
// file without generating anything.
func RunParse(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return errors.New("no input source has been specified")
	}

	text, err := readInput(src, env)
	if err != nil {
		return err
	}
	s := song.Parse(text)

	type sectionInfo struct {
		Name   string `yaml:"name"`
		Slides int    `yaml:"slides"`
	}
	summary := struct {
		Title    string        `yaml:"title"`
		Sections []sectionInfo `yaml:"sections"`
		Slides   int           `yaml:"total_slides"`
	}{Title: s.Title, Slides: s.SlideCount()}
	for i := range s.Sections {
		summary.Sections = append(summary.Sections, sectionInfo{Name: s.Sections[i].Name, Slides: len(s.Sections[i].Slides)})
	}

	data, err := yaml.Marshal(summary)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}
