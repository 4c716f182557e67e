package command

import (
	"io"

	"github.com/maxmcd/calc/internal/config"
)

type calc struct {
	config config.Config
	stdout io.Writer
	stderr io.Writer
}

func newCalc(configLocation string, stdout, stderr io.Writer) (c calc, err error) {
	if c.config, err = config.Load(configLocation); err != nil {
		return
	}
	c.stdout, c.stderr = stdout, stderr
	return c, nil
}
