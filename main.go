package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/sethvargo/go-envconfig"

	"github.com/tcs-vetclinic/person-contract-tests/config"
	"github.com/tcs-vetclinic/person-contract-tests/framework"
	"github.com/tcs-vetclinic/person-contract-tests/persontests"
	"github.com/tcs-vetclinic/person-contract-tests/servicedef"
)

func main() {
	var params commandParams
	if !params.Read(os.Args) {
		os.Exit(1)
	}

	if params.envFile != "" {
		if err := config.LoadEnvFile(params.envFile, true); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
	cfg, err := config.Load(context.Background(), config.WithBaseURL(envconfig.OsLookuper(), params.serviceURL))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	mainDebugLogger := framework.NullLogger()
	if params.debugAll {
		mainDebugLogger = log.New(os.Stdout, "", log.LstdFlags)
	}
	mainDebugLogger.Printf("Configuration: %+v", *cfg)

	service := framework.NewServiceClient(cfg.BaseURL, &http.Client{Timeout: cfg.RequestTimeout})
	if cfg.StartupTimeout > 0 {
		if err := service.AwaitService(servicedef.PersonsPath, cfg.StartupTimeout, os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "Service error: %s\n", err)
			os.Exit(1)
		}
	}

	fmt.Println()
	framework.PrintFilterDescription(params.filters, os.Stdout)

	fmt.Println("Running test suite")

	results := persontests.RunTestSuite(
		service,
		persontests.Options{
			AbsentPersonID: cfg.AbsentPersonID,
			SeededPersonID: cfg.SeededPersonID,
		},
		params.filters.AsFilter,
		&ConsoleTestLogger{
			Out:                  os.Stdout,
			DebugOutputOnFailure: params.debug || params.debugAll,
			DebugOutputOnSuccess: params.debugAll,
		},
	)

	fmt.Println()
	framework.PrintResults(results, os.Stdout)
	if !results.OK() {
		os.Exit(1)
	}
}
