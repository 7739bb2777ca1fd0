package insertrecords

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

// Insert walks the insert-records directory and upserts every record
// definition it finds. Used to load the reference stations, routes,
// schedules and seed availability snapshots.
func Insert(directory string) {
	err := filepath.Walk(directory,
		func(path string, fileInfo os.FileInfo, err error) error {
			if err != nil {
				return err
			}

			if !fileInfo.IsDir() {
				log.Debug().Str("path", path).Msg("Loading insert-record file")

				recordsYaml, err := os.ReadFile(path)
				if err != nil {
					return err
				}

				decoder := yaml.NewDecoder(bytes.NewReader(recordsYaml))

				for {
					var insertDefinition InsertDefinition
					if decoder.Decode(&insertDefinition) != nil {
						break
					}

					insertDefinition.Upsert()
				}
			}

			return nil
		})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load insert-records directory")
	}
}
