package main

import (
	"os"
	"strings"

	"github.com/Alia5/flowstub/internal/config"
	"github.com/Alia5/flowstub/internal/configpaths"
	"github.com/Alia5/flowstub/internal/log"

	"github.com/alecthomas/kong"
	kongtoml "github.com/alecthomas/kong-toml"
	kongyaml "github.com/alecthomas/kong-yaml"
)

func main() {

	userCfg := findUserConfig(os.Args[1:])
	jsonPaths, yamlPaths, tomlPaths := configpaths.ConfigCandidatePaths(userCfg)

	var cli config.CLI
	ctx := kong.Parse(&cli,
		kong.Name("flowstub"),
		kong.Description("Flow node type stub generator"),
		kong.UsageOnError(),
		// Flag defaults from JSON/YAML/TOML in priority order; flags/env override config values.
		kong.Configuration(kong.JSON, jsonPaths...),
		kong.Configuration(kongyaml.Loader, yamlPaths...),
		kong.Configuration(kongtoml.Loader, tomlPaths...),
	)

	logger, closeFiles, err := log.SetupLogger(cli.Log.Level, cli.Log.File)
	if err != nil {
		_, _ = os.Stderr.WriteString("failed to setup logger: " + err.Error() + "\n")
		os.Exit(2)
	}
	defer func() {
		for _, c := range closeFiles {
			_ = c.Close()
		}
	}()

	var sections log.SectionLogger
	if cli.Log.SectionFile != "" {
		f, err := os.OpenFile(cli.Log.SectionFile, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
		if err != nil {
			logger.Error("failed to open section log file", "file", cli.Log.SectionFile, "error", err)
			sections = log.NewSection(nil)
		} else {
			sections = log.NewSection(f)
			closeFiles = append(closeFiles, f)
		}
	} else if cli.Log.Level == "trace" {
		sections = log.NewSection(os.Stdout)
	} else {
		sections = log.NewSection(nil)
	}

	ctx.Bind(logger)
	ctx.BindTo(sections, (*log.SectionLogger)(nil))

	err = ctx.Run()
	if err != nil {
		for _, c := range closeFiles {
			_ = c.Close()
		}
	}
	ctx.FatalIfErrorf(err)
}

func findUserConfig(args []string) string {
	for i := 0; i < len(args); i++ {
		a := args[i]
		if strings.HasPrefix(a, "--config=") {
			return a[len("--config="):]
		}
		if a == "--config" && i+1 < len(args) {
			return args[i+1]
		}
	}
	return os.Getenv("FLOWSTUB_CONFIG")
}
