package main

import (
	"gopkg.in/yaml.v2"
	"os"
	"tricktaker-server/internal/config"
)

func main() {
	if err := yaml.NewEncoder(os.Stdout).Encode(config.DefaultConfig()); err != nil {
		panic(err)
	}
}
