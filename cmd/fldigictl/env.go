package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/km4yri/fldigi/internal/buildinfo"
)

func envHandle(_ context.Context, _ []string) {
	writeEnvAll(os.Stdout)
}

func writeEnvAll(w io.Writer) {
	fmt.Fprintln(w, strings.Join(envAll(), "\n"))
}

func envAll() []string {
	return []string{
		`FLDIGICTL_ADDR="` + fOptions.Addr + `"`,
		`FLDIGICTL_LOCATOR="` + config.Locator + `"`,
		`FLDIGICTL_VERSION="` + buildinfo.Version + `"`,
		`FLDIGICTL_ARCH="` + runtime.GOARCH + `"`,
		`FLDIGICTL_OS="` + runtime.GOOS + `"`,
		`FLDIGICTL_CONFIG_PATH="` + fOptions.ConfigPath + `"`,

		`FLDIGI_DEBUG="` + os.Getenv("FLDIGI_DEBUG") + `"`,
	}
}
