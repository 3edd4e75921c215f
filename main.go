package main

import (
	"log"

	"github.com/alexflint/go-arg"

	"github.com/StrayDragon/guibot/base"
	"github.com/StrayDragon/guibot/entity"
	"github.com/StrayDragon/guibot/internal"
	"github.com/StrayDragon/guibot/provision"
)

type args struct {
	File     string   `arg:"-f,--file" default:"~/.config/guibot-ci/ci.yml"`
	LogLevel int      `arg:"-l,--loglevel" default:"4"`
	Steps    []string `arg:"-p,--step" help:"run only the named steps"`
}

func (args) Version() string {
	return "guibot-ci 0.1.0"
}

func main() {
	var args args
	arg.MustParse(&args)
	internal.InitLogging(args.LogLevel)

	config, err := base.ReadConfig(args.File)
	if err != nil {
		log.Fatalf("%v\n", err)
	}

	env := entity.LoadEnvironment(config)
	p := provision.Provisioner{Config: config, Env: env, Only: args.Steps}
	if err = p.Apply(); err != nil {
		log.Fatalf("%v\n", err)
	}
}
