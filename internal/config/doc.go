// Package config provides configuration parsing for brickrouge projects.
//
// The configuration is stored in brickrouge.json at the project root.
// This package handles loading, saving, and validating configuration.
//
// # Configuration File Structure
//
//	{
//	  "preview": {
//	    "port": 3100,
//	    "host": "localhost",
//	    "hotReload": true,
//	    "watch": ["assets", "locales"]
//	  },
//	  "assets": {
//	    "dirs": ["assets"],
//	    "prefix": "/assets/",
//	    "manifest": "assets-manifest.json"
//	  },
//	  "i18n": {
//	    "locale": "fr",
//	    "catalogs": "locales"
//	  },
//	  "publish": {
//	    "bucket": "my-assets",
//	    "region": "eu-west-3",
//	    "baseURL": "https://cdn.example.com"
//	  }
//	}
//
// # Environment
//
// BRICKROUGE_PORT, BRICKROUGE_HOST, BRICKROUGE_LOCALE, BRICKROUGE_S3_BUCKET,
// BRICKROUGE_S3_REGION and BRICKROUGE_S3_ENDPOINT override the file. They
// are read from the process environment, then from .env.local and .env
// next to brickrouge.json.
//
// # Usage
//
//	cfg, err := config.Load(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println("Port:", cfg.Preview.Port)
package config
