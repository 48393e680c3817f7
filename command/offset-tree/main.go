// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/offsettree/fault"
	"github.com/bitmark-inc/offsettree/script"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
		{Long: "watch", HasArg: getoptions.NO_ARGUMENT, Short: 'w'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 {
		exitwithstatus.Message("usage: %s [--help] [--version] [--verbose] [--quiet] [--watch] --config-file=FILE", program)
	}

	if len(arguments) > 0 {
		exitwithstatus.Message("%s: unexpected arguments: %q", program, arguments)
	}

	if 1 != len(options["config-file"]) {
		exitwithstatus.Message("%s: only one config-file option is required, %d were detected", program, len(options["config-file"]))
	}

	// read options and parse the configuration file
	configurationFile := options["config-file"][0]
	masterConfiguration, err := getConfiguration(configurationFile, map[string]string{})
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	if len(options["verbose"]) > 0 {
		masterConfiguration.Logging.Console = true
	}

	// start logging
	if err = logger.Initialise(masterConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("configuration: %+v", masterConfiguration)

	// set up the fault panic log (now that logging is available
	if err := fault.Initialise(); nil != err {
		log.Criticalf("fault initialise error: %s", err)
		exitwithstatus.Message("%s: fault initialise error: %s", program, err)
	}
	defer fault.Finalise()

	quiet := len(options["quiet"]) > 0
	if err := runScript(masterConfiguration, quiet); nil != err {
		log.Criticalf("script error: %s", err)
		if 0 == len(options["watch"]) {
			exitwithstatus.Message("%s: script error: %s", program, err)
		}
	}

	if 0 == len(options["watch"]) {
		log.Info("finished")
		return
	}

	channels := watcherChannels{
		change: make(chan struct{}, 1),
		remove: make(chan struct{}, 1),
	}
	watcher, err := newFileWatcher(configurationFile, logger.New("file-watcher"), channels)
	if nil != err {
		log.Criticalf("file watcher error: %s", err)
		exitwithstatus.Message("%s: file watcher error: %s", program, err)
	}
	if err := watcher.Start(); nil != err {
		log.Criticalf("file watcher start error: %s", err)
		exitwithstatus.Message("%s: file watcher start error: %s", program, err)
	}
	defer watcher.Stop()

	// wait for changes or a terminating signal
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)

	log.Infof("watching: %s", configurationFile)
loop:
	for {
		select {
		case sig := <-ch:
			log.Infof("received signal: %v", sig)
			break loop

		case <-channels.remove:
			log.Warnf("configuration: %s removed", configurationFile)
			break loop

		case <-channels.change:
			log.Infof("configuration: %s changed", configurationFile)
			c, err := getConfiguration(configurationFile, map[string]string{})
			if nil != err {
				log.Errorf("configuration error: %s", err)
				fmt.Fprintf(os.Stderr, "configuration error: %s\n", err)
				continue loop
			}
			if err := runScript(c, quiet); nil != err {
				log.Errorf("script error: %s", err)
				fmt.Fprintf(os.Stderr, "script error: %s\n", err)
			}
		}
	}

	log.Info("finished")
}

// build a fresh tree from the configured operations and print the
// results
func runScript(c *Configuration, quiet bool) error {
	index := script.NewIndex()
	results, err := script.Run(logger.New("script"), index, c.Operations, c.Check)
	for _, r := range results {
		fmt.Println(r)
	}
	if nil != err {
		return err
	}

	if c.Describe && !quiet {
		fmt.Printf("count: %d\n", index.Count())
		fmt.Println(index.Describe())
	}
	return nil
}
