package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/akamensky/argparse"
	"github.com/cyclopcam/logs"
	"github.com/cyclopcam/voc2yolo/pkg/dataset"
	"github.com/cyclopcam/voc2yolo/pkg/train"
)

func main() {
	defaults := train.NewConfig()

	parser := argparse.NewParser("voc2yolo", "Convert a Pascal VOC dataset to YOLO format and train a model on it")
	root := parser.String("d", "dataset", &argparse.Options{Help: "Dataset root containing train/val/test partitions", Required: true})
	manifest := parser.String("o", "out", &argparse.Options{Help: "Output manifest file", Default: "data.yaml"})
	model := parser.String("m", "model", &argparse.Options{Help: "Model weights to start training from", Default: "models/yolov10l.pt"})
	epochs := parser.Int("", "epochs", &argparse.Options{Help: "Number of training epochs", Default: defaults.Epochs})
	imgsz := parser.Int("", "imgsz", &argparse.Options{Help: "Training image size", Default: defaults.ImageSize})
	batch := parser.Int("", "batch", &argparse.Options{Help: "Training batch size", Default: defaults.Batch})
	name := parser.String("n", "name", &argparse.Options{Help: "Training run name", Default: "yolov10l_trained"})
	project := parser.String("", "project", &argparse.Options{Help: "Training output directory", Default: defaults.Project})
	device := parser.String("", "device", &argparse.Options{Help: "Compute device (cuda, cpu, or a GPU index)", Default: defaults.Device})
	convertOnly := parser.Flag("", "convert-only", &argparse.Options{Help: "Convert and write the manifest, but don't start training", Default: false})
	err := parser.Parse(os.Args)
	if err != nil {
		fmt.Print(parser.Usage(err))
		os.Exit(1)
	}

	logger, err := logs.NewLog()
	if err != nil {
		fmt.Printf("Failed to create logger: %v\n", err)
		os.Exit(1)
	}

	converter := dataset.NewConverter(logger, *root, *manifest)
	_, err = converter.Run()
	if err != nil {
		switch {
		case errors.Is(err, dataset.ErrRootMissing):
			logger.Errorf("Dataset root %v not found", *root)
		case errors.Is(err, dataset.ErrNoClasses):
			logger.Errorf("No classes found. Check the annotation XML files.")
		default:
			logger.Errorf("Conversion failed: %v", err)
		}
		os.Exit(1)
	}

	if *convertOnly {
		return
	}

	cfg := train.Config{
		Model:     *model,
		Data:      *manifest,
		Name:      *name,
		Project:   *project,
		Device:    *device,
		Epochs:    *epochs,
		ImageSize: *imgsz,
		Batch:     *batch,
	}
	if err := train.Run(logger, cfg); err != nil {
		logger.Errorf("%v", err)
		os.Exit(1)
	}
}
