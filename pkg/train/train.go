// Package train hands a converted dataset off to the external ultralytics
// trainer. This is the boundary of the conversion pipeline: we build the
// argument list, run the "yolo" CLI, and report how it exited. Everything
// about the model and the training loop lives on the other side.
package train

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"

	"github.com/cyclopcam/logs"
)

// Config is the training configuration bundle passed to the external
// trainer alongside the manifest path.
type Config struct {
	Model     string // weights file, eg models/yolov10l.pt
	Data      string // dataset manifest (data.yaml)
	Name      string // run name
	Project   string // output directory for training runs
	Device    string // compute device, eg "cuda", "cpu", "0"
	Epochs    int
	ImageSize int
	Batch     int
}

// NewConfig returns a Config with the stock training defaults.
func NewConfig() Config {
	return Config{
		Project:   "runs/train",
		Device:    "cuda",
		Epochs:    100,
		ImageSize: 640,
		Batch:     16,
	}
}

// Args builds the ultralytics CLI argument list for this config.
// Empty string fields are omitted so the trainer applies its own defaults.
func (c Config) Args() []string {
	args := []string{"detect", "train"}
	if c.Model != "" {
		args = append(args, "model="+c.Model)
	}
	args = append(args,
		"data="+c.Data,
		"epochs="+strconv.Itoa(c.Epochs),
		"imgsz="+strconv.Itoa(c.ImageSize),
		"batch="+strconv.Itoa(c.Batch),
	)
	if c.Name != "" {
		args = append(args, "name="+c.Name)
	}
	if c.Project != "" {
		args = append(args, "project="+c.Project)
	}
	if c.Device != "" {
		args = append(args, "device="+c.Device)
	}
	return args
}

// Run launches the trainer and blocks until it finishes. The child's output
// is streamed through to ours, and stderr is also captured so that a failure
// returns the trainer's actual complaint instead of just an exit code.
func Run(logger logs.Log, cfg Config) error {
	args := cfg.Args()
	logger.Infof("Starting training: yolo %v", args)
	stderr := &bytes.Buffer{}
	cmd := exec.Command("yolo", args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = newTeeWriter(os.Stderr, stderr)
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && stderr.Len() != 0 {
			return fmt.Errorf("trainer failed: %v", stderr.String())
		}
		return err
	}
	return nil
}
