// Package config provides configuration parsing for nsgo applications.
//
// The configuration is stored in nsgo.json at the project root.
// This package handles loading, saving, and validating configuration.
//
// # Configuration File Structure
//
//	{
//	  "log": {"level": "info", "format": "text"},
//	  "metrics": {"namespace": "nsgo"},
//	  "inspect": {"addr": "localhost:9191"},
//	  "animations": true,
//	  "elements": [
//	    {"name": "Card", "extends": "StackLayout"}
//	  ],
//	  "manifests": ["elements.yaml", "s3://ui-assets/elements.yaml"],
//	  "s3": {"region": "eu-west-1"}
//	}
//
// # Usage
//
//	cfg, err := config.Load(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	logger := cfg.Logger(os.Stderr)
package config
