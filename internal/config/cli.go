package config

import "github.com/Alia5/flowstub/internal/cmd"

// Log holds the logging flags shared by every command.
type Log struct {
	Level       string `help:"Log level" default:"info" enum:"trace,debug,info,warn,error" env:"FLOWSTUB_LOG_LEVEL"`
	File        string `help:"Also write logs to this file" type:"path" env:"FLOWSTUB_LOG_FILE"`
	SectionFile string `help:"Trace every emitted stub section to this file" type:"path" env:"FLOWSTUB_LOG_SECTION_FILE"`
}

// CLI is the root command line of flowstub.
type CLI struct {
	Config string `help:"Configuration file (json, yaml or toml)" type:"path" env:"FLOWSTUB_CONFIG"`
	Log    Log    `embed:"" prefix:"log."`

	Generate      cmd.Generate      `cmd:"" default:"withargs" help:"Generate a node type stub from JSON descriptions"`
	ConfigCommand cmd.ConfigCommand `cmd:"" name:"config" help:"Configuration helpers"`
	Version       cmd.Version       `cmd:"" help:"Print the generator version"`
}
