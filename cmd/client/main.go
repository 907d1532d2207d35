// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"
	"os"

	"github.com/MKhiriev/go-pass-vault/internal/adapter"
	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	if len(os.Args) > 1 && os.Args[1] == "version" {
		fmt.Print(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit).Banner())
		return
	}

	log := logger.NewClientLogger("vault-client", os.Getenv("VAULT_VERBOSE") != "")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	client, err := adapter.NewHTTPVaultClient(*cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating api client")
	}

	cli := newCLI(client, os.Stdout)
	if err = cli.run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
