package main

import (
	"context"
	"fmt"
	"log"

	"github.com/hashicorp/go-version"
	"github.com/spf13/pflag"

	"github.com/km4yri/fldigi/internal/buildinfo"
)

func versionHandle(_ context.Context, args []string) {
	var check bool
	set := pflag.NewFlagSet("version", pflag.ExitOnError)
	set.BoolVarP(&check, "check", "c", false, "Check server version compatibility.")
	set.Parse(args)

	fmt.Printf("%s %s\n", buildinfo.AppName, buildinfo.VersionString())

	if !check {
		return
	}

	c := connect()
	defer c.Close()

	name, err := c.Name()
	if err != nil {
		log.Fatalf("Unable to reach server at %s: %s", fOptions.Addr, err)
	}
	serverVersion, err := c.Version()
	if err != nil {
		log.Fatalf("Unable to get server version: %s", err)
	}
	fmt.Printf("Server: %s %s at %s\n", name, serverVersion, fOptions.Addr)

	got, err := version.NewVersion(serverVersion)
	if err != nil {
		log.Printf("Warning: Invalid server version format (%s): %v", serverVersion, err)
		return
	}
	want, err := version.NewVersion(config.MinServerVersion)
	if err != nil {
		log.Printf("Warning: Invalid min_server_version (%s): %v", config.MinServerVersion, err)
		return
	}

	if got.LessThan(want) {
		fmt.Printf("Server version %s is older than the minimum supported %s. Some methods may be unavailable.\n", got, want)
		return
	}
	fmt.Println("Server version OK.")
}
