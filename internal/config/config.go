// Package config loads the server options from flags and an optional yaml file.
// Explicitly set flags win over the file, which wins over the defaults.
package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Options struct {
	ServerAddr      string        `yaml:"serverAddr"`
	Capacity        uint          `yaml:"capacity"`
	ShutdownTimeout time.Duration `yaml:"shutdownTimeout"`
	Verbose         bool          `yaml:"verbose"`
}

func Defaults() Options {
	return Options{
		ServerAddr:      "localhost:8080",
		Capacity:        100,
		ShutdownTimeout: 3 * time.Second,
	}
}

// Load parses args (without the program name) into Options.
func Load(name string, args []string) (Options, error) {
	opts := Defaults()

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	configPath := fs.String("config", "", "Optional yaml config file. Flags set on the command line override it")
	fs.StringVar(&opts.ServerAddr, "server-addr", opts.ServerAddr, "Server addr to serve the http server on")
	fs.UintVar(&opts.Capacity, "capacity", opts.Capacity, "Fixed number of items the queue can hold. Cannot be less than 1")
	fs.DurationVar(&opts.ShutdownTimeout, "shutdown-timeout", opts.ShutdownTimeout, "Grace period for in-flight requests on shutdown")
	fs.BoolVar(&opts.Verbose, "v", opts.Verbose, "Verbose output")
	err := fs.Parse(args)
	if err != nil {
		return Options{}, err
	}

	if *configPath != "" {
		fileOpts, err := LoadFile(*configPath)
		if err != nil {
			return Options{}, err
		}
		opts = merge(fs, fileOpts, opts)
	}

	return opts, opts.Validate()
}

// LoadFile reads options from a yaml file on top of the defaults.
func LoadFile(path string) (Options, error) {
	opts := Defaults()
	data, err := os.ReadFile(path)
	if err != nil {
		return Options{}, fmt.Errorf("read config file: %w", err)
	}
	err = yaml.Unmarshal(data, &opts)
	if err != nil {
		return Options{}, fmt.Errorf("parse config file %q: %w", path, err)
	}
	return opts, nil
}

// merge returns fileOpts overridden by the flags that were explicitly set.
func merge(fs *flag.FlagSet, fileOpts, flagOpts Options) Options {
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "server-addr":
			fileOpts.ServerAddr = flagOpts.ServerAddr
		case "capacity":
			fileOpts.Capacity = flagOpts.Capacity
		case "shutdown-timeout":
			fileOpts.ShutdownTimeout = flagOpts.ShutdownTimeout
		case "v":
			fileOpts.Verbose = flagOpts.Verbose
		}
	})
	return fileOpts
}

func (o Options) Validate() error {
	var errs []error
	if o.ServerAddr == "" {
		errs = append(errs, errors.New("server-addr is required"))
	}
	if o.Capacity < 1 {
		errs = append(errs, errors.New("capacity is too small, it cannot be less than 1"))
	}
	if o.ShutdownTimeout < 0 {
		errs = append(errs, errors.New("shutdown-timeout cannot be negative"))
	}
	return errors.Join(errs...)
}
