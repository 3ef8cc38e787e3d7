package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/Bitlatte/docfeed/cmd"
	"github.com/Bitlatte/docfeed/internal/model"
)

var site model.SiteData

// loadSiteParams reads the free-form parameters layouts can reach through
// .Site.Params. A missing file leaves them empty.
func loadSiteParams(filename string) error {
	raw, err := os.ReadFile(filename)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("error reading config file %s: %w", filename, err)
	}

	if err := yaml.Unmarshal(raw, &site.Params); err != nil {
		return fmt.Errorf("error unmarshalling config file %s: %w", filename, err)
	}
	return nil
}

func main() {
	if err := loadSiteParams("config.yaml"); err != nil {
		log.Fatalf("Error loading site configuration: %v", err)
	}
	cmd.Execute(&site)
}
