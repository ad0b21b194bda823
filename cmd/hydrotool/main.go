// hydrotool is a CLI utility for the HydroAvia showcase: it generates the
// bundled drone model, inspects STL files and sends contact form messages.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/hydroavia/showcase/internal/config"
	"github.com/hydroavia/showcase/internal/contact"
	"github.com/hydroavia/showcase/internal/logger"
	"github.com/hydroavia/showcase/internal/viewer"
	"github.com/hydroavia/showcase/pkg/drone"
	"github.com/hydroavia/showcase/pkg/stl"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "gen-drone", "gen":
		cmdGenDrone(args)
	case "info":
		cmdInfo(args)
	case "contact":
		cmdContact(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`hydrotool - HydroAvia showcase utility

Usage:
  hydrotool <command> [options]

Commands:
  gen-drone [-o file.stl]            Generate the 14" drone frame model
  info <file.stl>                    Show STL model information
  contact -name N -email E -message M [-company C] [-endpoint URL]
                                     Send a contact form message

Examples:
  hydrotool gen-drone -o public/hydroavia_drone_14inch.stl
  hydrotool info public/hydroavia_drone_14inch.stl
  hydrotool contact -name "Ada" -email ada@example.com -message "Hello"`)
}

func cmdGenDrone(args []string) {
	fs := flag.NewFlagSet("gen-drone", flag.ExitOnError)
	out := fs.String("o", filepath.Join("public", viewer.DefaultAssetPath), "Output STL path")
	fs.Parse(args)

	model, parts := drone.Frame()

	if dir := filepath.Dir(*out); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			fmt.Fprintf(os.Stderr, "Error creating directory: %v\n", err)
			os.Exit(1)
		}
	}
	if err := stl.WriteFile(*out, model); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing model: %v\n", err)
		os.Exit(1)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PART\tTRIANGLES")
	for _, p := range parts {
		fmt.Fprintf(w, "%s\t%d\n", p.Name, p.Triangles)
	}
	w.Flush()

	fmt.Printf("\nWrote %s (%d triangles)\n", *out, len(model.Triangles))
}

func cmdInfo(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: hydrotool info <file.stl>")
		os.Exit(1)
	}

	parsed, err := stl.ReadFile(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	prepared, err := viewer.ModelFromSTL(args[0], parsed)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	src := prepared.Source
	size := src.Size()
	scaled := prepared.Geometry.Bounds.Size()

	fmt.Printf("File:       %s\n", args[0])
	fmt.Printf("Name:       %s\n", parsed.Name)
	fmt.Printf("Triangles:  %d\n", parsed.TriangleCount())
	fmt.Printf("Bounds:     (%.2f, %.2f, %.2f) - (%.2f, %.2f, %.2f)\n",
		src.Min.X, src.Min.Y, src.Min.Z, src.Max.X, src.Max.Y, src.Max.Z)
	fmt.Printf("Size (mm):  %.2f x %.2f x %.2f\n", size.X, size.Y, size.Z)
	fmt.Printf("In viewer:  %.3f x %.3f x %.3f units\n", scaled.X, scaled.Y, scaled.Z)
	fmt.Printf("Edges:      %d feature lines\n", len(prepared.Edges)/6)
}

func cmdContact(args []string) {
	defaults := config.Default().Contact

	fs := flag.NewFlagSet("contact", flag.ExitOnError)
	name := fs.String("name", "", "Your name (required)")
	email := fs.String("email", "", "Your email (required)")
	company := fs.String("company", "", "Company")
	message := fs.String("message", "", "Message (required)")
	endpoint := fs.String("endpoint", defaults.Endpoint, "Form relay URL")
	timeout := fs.Duration("timeout", defaults.Timeout, "Request timeout (0 = none)")
	debug := fs.Bool("debug", false, "Enable debug logging")
	fs.Parse(args)

	level := "info"
	if *debug {
		level = "debug"
	}
	if err := logger.Init(level, ""); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	client := contact.NewClient(*endpoint, *timeout)
	ctrl := contact.NewController(client)
	fields := map[string]string{"name": *name, "email": *email, "company": *company, "message": *message}
	for field, value := range fields {
		if err := ctrl.Set(field, value); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	fmt.Printf("Sending to %s\n", client.Endpoint())
	err := ctrl.Submit(context.Background())
	fmt.Println(ctrl.Banner())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		logger.Sync()
		os.Exit(1)
	}
}
