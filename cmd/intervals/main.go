// Intervals is an interactive manager for a list of disjoint integer
// intervals. Commands are read from standard input, one per line; type
// help for the command list.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/pkg/profile"

	"github.com/kdious/Manage-Intervals-Challenge/pkg/command"
	"github.com/kdious/Manage-Intervals-Challenge/pkg/config"
)

func main() {
	configPath := flag.String("config", "", "path to an ini config file")
	debug := flag.Bool("debug", false, "start with debugging enabled")
	cpuProfile := flag.Bool("cpuprofile", false, "write a CPU profile to /tmp")
	flag.Parse()

	if *cpuProfile {
		defer profile.Start(profile.ProfilePath("/tmp")).Stop()
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal("Error loading config:", err)
	}

	r := command.New(command.Config{
		Prompt: cfg.Prompt,
		Debug:  cfg.Debug || *debug,
	}, os.Stdout)
	if err := r.Run(os.Stdin); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
